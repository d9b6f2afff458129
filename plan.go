package uproot

import "sort"

// Kind is the closed set of node kinds a Plan can carry. Build and Assemble
// switch on Kind directly; only planning itself goes through the priority
// ordered factory registry below, since that is the one stage where more
// than one factory might claim a given streamer node.
type Kind int

const (
	KindPrimitive Kind = iota
	KindSTLSeq
	KindSTLMap
	KindSTLString
	KindTArray
	KindTString
	KindTObject
	KindCArray
	KindNBytesVersion
	KindGroup
	KindBaseObject
	KindAnyClass
	KindObjectHeader
	KindEmpty
	KindUserOverride
)

func (k Kind) String() string {
	switch k {
	case KindPrimitive:
		return "Primitive"
	case KindSTLSeq:
		return "STLSeq"
	case KindSTLMap:
		return "STLMap"
	case KindSTLString:
		return "STLString"
	case KindTArray:
		return "TArray"
	case KindTString:
		return "TString"
	case KindTObject:
		return "TObject"
	case KindCArray:
		return "CArray"
	case KindNBytesVersion:
		return "NBytesVersion"
	case KindGroup:
		return "Group"
	case KindBaseObject:
		return "BaseObject"
	case KindAnyClass:
		return "AnyClass"
	case KindObjectHeader:
		return "ObjectHeader"
	case KindEmpty:
		return "Empty"
	case KindUserOverride:
		return "UserOverride"
	default:
		return "UnknownKind"
	}
}

// Mode constrains whether a container must be read object-wise or
// member-wise, or either ("auto"). See STLSeq/STLMap invariant P8.
type Mode int

const (
	ModeAuto Mode = iota
	ModeObjWise
	ModeMemberWise
)

// Plan is an immutable, cacheable description of how to decode one item.
// It is a flat tagged union rather than 15 separate Go types: every kind
// uses a handful of the fields below and the rest stay zero. This keeps
// Build and Assemble simple exhaustive switches instead of a second
// interface hierarchy mirroring the one below.
type Plan struct {
	Kind Kind
	Name string
	Path string // dot-separated item path, for diagnostics and overrides

	// Primitive, TArray
	CType string // "bool","i1","i2","i4","i8","u1","u2","u4","u8","f","d"

	// STLSeq, STLMap, STLString, TString, CArray (jagged element)
	WithHeader bool
	Mode       Mode

	// STLSeq, CArray, NBytesVersion
	Element *Plan

	// STLMap
	Key *Plan
	Val *Plan

	// TObject
	KeepData bool

	// CArray
	FlatSize int // -1 for a jagged ([]-terminated) array
	ArrayDim int32
	MaxIndex []int32

	// Group, BaseObject, AnyClass
	Sub []*Plan

	// UserOverride
	Override UserFactory
}

// PlanContext carries the few pieces of caller context that affect planning
// of the top-level item of a branch: whether we're at the top (so CArray may
// consult branch dimensionality) and the branch's own declared dimensions.
type PlanContext struct {
	CalledFromTop bool
	BranchDims    []int32
	BranchJagged  bool
}

type tryPlanFunc func(ctx *PlanContext, top string, node Node, schema Schema, path string) (*Plan, bool, error)

type registeredFactory struct {
	priority int
	try      tryPlanFunc
}

var planRegistry []registeredFactory

// registerFactory adds a planning factory at the given priority. Higher
// priority factories are tried first. Called from package init() for the
// built-in factories and from RegisterOverride for user overrides.
func registerFactory(priority int, try tryPlanFunc) {
	planRegistry = append(planRegistry, registeredFactory{priority: priority, try: try})
}

func sortedRegistry() []registeredFactory {
	out := make([]registeredFactory, len(planRegistry))
	copy(out, planRegistry)
	sort.SliceStable(out, func(i, j int) bool { return out[i].priority > out[j].priority })
	return out
}

// planItem walks the registry in priority order and returns the first
// factory's match. It is the Go equivalent of factories.gen_tree_config.
func planItem(ctx *PlanContext, node Node, schema Schema, path string, calledFromTop bool) (*Plan, error) {
	top := ""
	if node.TypeName != "" {
		top = topTypeName(node.TypeName)
	}

	itemPath := path
	if !calledFromTop {
		itemPath = path + "." + node.Name
	}

	childCtx := *ctx
	childCtx.CalledFromTop = calledFromTop

	for _, f := range sortedRegistry() {
		plan, ok, err := f.try(&childCtx, top, node, schema, itemPath)
		if err != nil {
			return nil, err
		}
		if ok {
			return plan, nil
		}
	}
	return nil, newUnknownTypeError(itemPath, node.TypeName)
}

// planChild plans a non-top-level item: a member reached from within a
// Group, BaseObject, or AnyClass. PlanChild is its exported form.
func planChild(node Node, schema Schema, path string) (*Plan, error) {
	return planItem(&PlanContext{}, node, schema, path, false)
}

// PlanChild plans a member reached from within a Group, BaseObject,
// AnyClass, or a UserOverride. This is the entry point an out-of-package
// UserFactory uses to recurse into a nested class's own member list (see
// overrides.TObjArrayFactory).
func PlanChild(node Node, schema Schema, path string) (*Plan, error) {
	return planChild(node, schema, path)
}

// PlanBranch is the public entry point for planning a branch's top-level
// item. dims/jagged describe the branch's own declared array shape, per
// spec.md §4.6. CArray consults only jagged, and only when the streamer's
// own fTypeName has no "[]" suffix; dims is stored in PlanContext.BranchDims
// and no built-in factory reads it.
func PlanBranch(node Node, schema Schema, dims []int32, jagged bool) (*Plan, error) {
	ctx := &PlanContext{CalledFromTop: true, BranchDims: dims, BranchJagged: jagged}
	return planItem(ctx, node, schema, "", true)
}
