package uproot

// ObjectHeader is never auto-matched during planning; it is constructed
// explicitly by callers (and by overrides, see overrides/tobjarray.go) that
// need to read a standalone fNBytes+fTag(+classname) object header ahead of
// some element plan. No registry entry.

func newObjectHeaderPlan(name, path string, element *Plan) *Plan {
	return &Plan{Kind: KindObjectHeader, Name: name, Path: path, Element: element}
}
