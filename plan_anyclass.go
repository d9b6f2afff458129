package uproot

func init() {
	// Lowest priority: tried only when nothing more specific matched.
	registerFactory(0, tryPlanAnyClass)
}

func tryPlanAnyClass(ctx *PlanContext, top string, node Node, schema Schema, path string) (*Plan, bool, error) {
	members, ok := schema.Lookup(top)
	if !ok {
		// Unregistered class name: let dispatch fall through so the
		// caller gets a clean UnknownType error instead of us indexing
		// a missing key. (The Python reference indexes unconditionally
		// here and raises a bare KeyError; this is a deliberate fix.)
		return nil, false, nil
	}

	sub := make([]*Plan, 0, len(members))
	for _, m := range members {
		p, err := planChild(m, schema, path)
		if err != nil {
			return nil, false, err
		}
		sub = append(sub, p)
	}

	return &Plan{Kind: KindAnyClass, Name: top, Path: path, Sub: sub}, true, nil
}
