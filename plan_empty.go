package uproot

// Empty never auto-matches; it is a placeholder plan for an item whose data
// a caller wants to skip without dropping it from a Group's member list
// entirely. No registry entry.

func newEmptyPlan(name, path string) *Plan {
	return &Plan{Kind: KindEmpty, Name: name, Path: path}
}
