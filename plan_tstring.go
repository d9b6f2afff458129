package uproot

func init() {
	registerFactory(10, tryPlanTString)
}

func tryPlanTString(ctx *PlanContext, top string, node Node, schema Schema, path string) (*Plan, bool, error) {
	if top != "TString" {
		return nil, false, nil
	}
	return &Plan{Kind: KindTString, Name: node.Name, Path: path, WithHeader: false}, true, nil
}
