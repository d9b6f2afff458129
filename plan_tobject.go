package uproot

// keepTObjectData names the item paths whose embedded TObject base
// (fUniqueID/fBits/pidf) should be retained in the assembled Content instead
// of being read-and-discarded. Empty by default; callers populate it before
// planning via SetKeepTObjectData.
var keepTObjectData = map[string]bool{}

// SetKeepTObjectData marks an item path's TObject base as worth keeping.
// Mirrors TObjectFactory.keep_data_itempaths in the original planner.
func SetKeepTObjectData(itemPath string, keep bool) {
	if keep {
		keepTObjectData[itemPath] = true
	} else {
		delete(keepTObjectData, itemPath)
	}
}

func init() {
	registerFactory(10, tryPlanTObject)
}

func tryPlanTObject(ctx *PlanContext, top string, node Node, schema Schema, path string) (*Plan, bool, error) {
	if top != "BASE" || node.Type != 66 {
		return nil, false, nil
	}
	return &Plan{
		Kind: KindTObject, Name: node.Name, Path: path,
		KeepData: keepTObjectData[path],
	}, true, nil
}
