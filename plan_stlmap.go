package uproot

var stlMapTargets = map[string]bool{
	"map": true, "unordered_map": true, "multimap": true, "unordered_multimap": true,
}

func init() {
	registerFactory(10, tryPlanSTLMap)
}

func tryPlanSTLMap(ctx *PlanContext, top string, node Node, schema Schema, path string) (*Plan, bool, error) {
	if !stlMapTargets[top] {
		return nil, false, nil
	}

	keyType, valType := mapKeyValTypeNames(node.TypeName)
	if keyType == "" || valType == "" {
		return nil, false, newSchemaError(path, "map type %q has no key/value pair", node.TypeName)
	}
	keyPlan, err := planChild(Node{Name: "key", TypeName: keyType}, schema, path)
	if err != nil {
		return nil, false, err
	}
	valPlan, err := planChild(Node{Name: "val", TypeName: valType}, schema, path)
	if err != nil {
		return nil, false, err
	}

	return &Plan{
		Kind: KindSTLMap, Name: node.Name, Path: path,
		WithHeader: true, Key: keyPlan, Val: valPlan,
	}, true, nil
}
