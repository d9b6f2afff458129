package uproot

// UserFactory lets a caller plug a bespoke reader in ahead of the built-in
// dispatch, for classes or fields whose wire layout this package's closed
// Kind taxonomy cannot express (a class split across multiple buffers, a
// field matched by name rather than by path, a streamer variant ROOT itself
// never declares). See overrides/tobjarray.go and overrides/fixedrecord.go
// for worked examples.
type UserFactory interface {
	// TryPlan returns a Plan and true when this override claims the node,
	// or (nil, false, nil) to let dispatch continue. top is the item's
	// top-level type name (the streamer's fTypeName with any trailing
	// "[]" and template arguments stripped).
	TryPlan(ctx *PlanContext, top string, node Node, schema Schema, path string) (*Plan, bool, error)

	// Build constructs the Reader for a Plan this factory produced.
	Build(p *Plan) Reader

	// Assemble converts the raw decode output of this factory's Reader
	// into Content.
	Assemble(p *Plan, raw any) (Content, error)
}

// RegisterOverride installs a UserFactory at the given priority (relative
// to the built-in factories, which run at priorities 0, 10 and 20). An
// override registered above 20 is tried before every built-in factory, so
// it can intercept even plain primitives and C-style arrays if it needs to.
func RegisterOverride(priority int, f UserFactory) {
	registerFactory(priority, func(ctx *PlanContext, top string, node Node, schema Schema, path string) (*Plan, bool, error) {
		plan, ok, err := f.TryPlan(ctx, top, node, schema, path)
		if err != nil || !ok {
			return nil, false, err
		}
		plan.Kind = KindUserOverride
		plan.Override = f
		return plan, true, nil
	})
}
