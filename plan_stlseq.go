package uproot

var stlSeqTargets = map[string]bool{
	"vector": true, "array": true, "list": true,
	"set": true, "multiset": true,
	"unordered_set": true, "unordered_multiset": true,
}

func init() {
	registerFactory(10, tryPlanSTLSeq)
}

func tryPlanSTLSeq(ctx *PlanContext, top string, node Node, schema Schema, path string) (*Plan, bool, error) {
	if !stlSeqTargets[top] {
		return nil, false, nil
	}

	elemType := sequenceElementTypeName(node.TypeName)
	if elemType == "" {
		return nil, false, newSchemaError(path, "sequence type %q has no element type", node.TypeName)
	}
	elemNode := Node{Name: node.Name, TypeName: elemType}

	elemPlan, err := planChild(elemNode, schema, path)
	if err != nil {
		return nil, false, err
	}

	// A nested STL container never carries its own byte-count+version
	// header when stored inside another STL container (python.py's
	// STLSeqFactory sets with_header=False for such elements). A nested
	// std::string is not a container here and keeps its own header.
	if elemTop := topTypeName(elemType); stlContainerNames[elemTop] && elemTop != "string" {
		elemPlan.WithHeader = false
	}

	return &Plan{
		Kind: KindSTLSeq, Name: node.Name, Path: path,
		WithHeader: true, Element: elemPlan,
	}, true, nil
}
