package uproot

// Group never matches a streamer node on its own; its plan is only ever
// constructed by Build for a BaseObject, to hold the base's member plans.
// No registry entry.

// newGroup and wrapNBytesVersionGroup build the NBytesVersion(Group(members...))
// shape that Build uses for a BaseObject.
func newGroup(name, path string, sub []*Plan) *Plan {
	return &Plan{Kind: KindGroup, Name: name, Path: path, Sub: sub}
}

func wrapNBytesVersionGroup(name, path string, sub []*Plan) *Plan {
	return &Plan{
		Kind: KindNBytesVersion, Name: name, Path: path,
		Element: newGroup(name, path, sub),
	}
}
