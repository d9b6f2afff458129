package uproot

var tarrayCType = map[string]string{
	"TArrayC": "i1",
	"TArrayS": "i2",
	"TArrayI": "i4",
	"TArrayL": "i8",
	"TArrayL64": "i8",
	"TArrayF": "f",
	"TArrayD": "d",
}

func init() {
	registerFactory(10, tryPlanTArray)
}

func tryPlanTArray(ctx *PlanContext, top string, node Node, schema Schema, path string) (*Plan, bool, error) {
	ctype, ok := tarrayCType[top]
	if !ok {
		return nil, false, nil
	}
	return &Plan{Kind: KindTArray, Name: node.Name, Path: path, CType: ctype}, true, nil
}
