package uproot

func init() {
	registerFactory(10, tryPlanSTLString)
}

func tryPlanSTLString(ctx *PlanContext, top string, node Node, schema Schema, path string) (*Plan, bool, error) {
	if top != "string" {
		return nil, false, nil
	}
	// A std::string that is itself a branch's top-level item carries no
	// byte-count+version wrapper: the branch's own entry boundary already
	// frames it, the same way TString never carries one. Nested strings
	// (inside a vector, a class member, ...) do.
	return &Plan{Kind: KindSTLString, Name: node.Name, Path: path, WithHeader: !ctx.CalledFromTop}, true, nil
}
