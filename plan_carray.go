package uproot

import "strings"

func init() {
	// Tried before every other built-in factory: an fArrayDim>0 or "[]"-suffixed
	// streamer node is always a C-style array of whatever the stripped
	// type name otherwise resolves to.
	registerFactory(20, tryPlanCArray)
}

func tryPlanCArray(ctx *PlanContext, top string, node Node, schema Schema, path string) (*Plan, bool, error) {
	typeName := node.TypeName

	if ctx.CalledFromTop && ctx.BranchJagged && !strings.HasSuffix(typeName, "[]") {
		typeName += "[]"
	}

	if !strings.HasSuffix(typeName, "[]") && node.ArrayDim == 0 {
		return nil, false, nil
	}

	if node.ArrayDim > 0 && len(node.MaxIndex) < int(node.ArrayDim) {
		return nil, false, newSchemaError(path, "C-style array %q has fArrayDim %d but only %d fMaxIndex entries", node.Name, node.ArrayDim, len(node.MaxIndex))
	}

	var flatSize int
	if strings.HasSuffix(typeName, "[]") {
		flatSize = -1
	} else {
		flatSize = 1
		for i := int32(0); i < node.ArrayDim && int(i) < len(node.MaxIndex); i++ {
			flatSize *= int(node.MaxIndex[i])
		}
	}
	if flatSize == 0 {
		return nil, false, newSchemaError(path, "C-style array %q has zero flat size", node.Name)
	}

	elemTypeName := typeName
	for strings.HasSuffix(elemTypeName, "[]") {
		elemTypeName = elemTypeName[:len(elemTypeName)-2]
	}

	elemNode := node
	elemNode.ArrayDim = 0
	elemNode.TypeName = elemTypeName

	elemPlan, err := planChild(elemNode, schema, path)
	if err != nil {
		return nil, false, err
	}

	elemTop := topTypeName(elemTypeName)

	// Stored inside a std::array (fType==82): no header, object-wise.
	if stlContainerNames[elemTop] && node.Type == 82 {
		elemPlan.WithHeader = false
		elemPlan.Mode = ModeObjWise
	}

	plan := &Plan{
		Kind: KindCArray, Name: node.Name, Path: path,
		Element: elemPlan, FlatSize: flatSize,
		ArrayDim: node.ArrayDim, MaxIndex: node.MaxIndex,
	}

	// Fixed array of TString carries its own byte-count+version header
	// wrapping the whole array, unlike other fixed element types.
	if node.ArrayDim != 0 && elemTop == "TString" {
		plan = &Plan{
			Kind: KindNBytesVersion, Name: node.Name, Path: path,
			Element: plan,
		}
	}

	return plan, true, nil
}
