package uproot

func init() {
	registerFactory(10, tryPlanBaseObject)
}

func tryPlanBaseObject(ctx *PlanContext, top string, node Node, schema Schema, path string) (*Plan, bool, error) {
	if top != "BASE" || node.Type != 0 {
		return nil, false, nil
	}

	// For a BASE element fName carries the base class's own name, not a
	// member name: look its streamer members up under that name.
	members, ok := schema.Lookup(node.Name)
	if !ok {
		return nil, false, newSchemaError(path, "base class %q has no streamer info", node.Name)
	}

	sub := make([]*Plan, 0, len(members))
	for _, m := range members {
		p, err := planChild(m, schema, path)
		if err != nil {
			return nil, false, err
		}
		sub = append(sub, p)
	}

	return &Plan{Kind: KindBaseObject, Name: node.Name, Path: path, Sub: sub}, true, nil
}
