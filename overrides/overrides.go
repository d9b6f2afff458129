package overrides

// RegisterAll installs every override in this package. Call once during
// process setup, before any PlanBranch/ReadBranch call that might touch a
// TObjArray branch or a fixed-record streamer member.
func RegisterAll() {
	Register()
	RegisterFixedRecord()
}
