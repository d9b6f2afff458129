package uproot

// NBytesVersion never matches a streamer node on its own; it is only ever
// constructed around another plan: by Build for a BaseObject (wrapping a
// Group) and by the CArray factory for a fixed TString array (wrapping the
// CArray). No registry entry.
