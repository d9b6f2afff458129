package uproot

// Reader is a single-use, mutable decoder built from a Plan. One Reader
// tree decodes exactly one basket: Build allocates fresh backing buffers,
// Decode calls Read/ReadMany/ReadUntil/ReadManyMemberwise to fill them
// entry by entry, and RawData hands the accumulated buffers to Assemble.
//
// Most readers implement ReadMany/ReadUntil as plain loops: "call Read N
// times" / "call Read until the cursor reaches end_pos". STLSeq, STLMap
// and STLString instead read a single shared byte-count+version header
// ahead of the loop (when built with a header) instead of repeating it per
// element. ReadManyMemberwise is what a member-wise STLSeq calls on its
// element: Group and AnyClass read field by field, the single-field readers
// (Primitive, TArray, TString, STLString, TObject) delegate to ReadMany,
// and STLSeq, ObjectHeader and the readers in overrides/ return an error.
type Reader interface {
	Read(c *Cursor) error
	ReadMany(c *Cursor, count int) (int, error)
	ReadUntil(c *Cursor, endPos int) (int, error)
	ReadManyMemberwise(c *Cursor, count int) (int, error)
	RawData() interface{}
}

// Build constructs a fresh Reader tree from a Plan. Build itself never
// touches a cursor; it only allocates.
func Build(p *Plan) Reader {
	switch p.Kind {
	case KindPrimitive:
		return newPrimitiveReader(p.Name, p.CType)
	case KindTArray:
		return newTArrayReader(p.Name, p.CType)
	case KindTString:
		return newTStringReader(p.Name, false)
	case KindSTLString:
		return newSTLStringReader(p.Name, p.WithHeader)
	case KindSTLSeq:
		return newSTLSeqReader(p.Name, p.WithHeader, p.Mode, Build(p.Element))
	case KindSTLMap:
		return newSTLMapReader(p.Name, p.WithHeader, p.Mode, Build(p.Key), Build(p.Val))
	case KindTObject:
		return newTObjectReader(p.Name, p.KeepData)
	case KindCArray:
		return newCArrayReader(p.Name, p.FlatSize, Build(p.Element))
	case KindNBytesVersion:
		return newNBytesVersionReader(p.Name, Build(p.Element))
	case KindGroup:
		return buildGroupReader(p)
	case KindBaseObject:
		// A base class's members are read in place with no independent
		// byte-count cross-check: its enclosing AnyClass/ObjectHeader
		// already verified the whole object's span.
		return Build(wrapNBytesVersionGroup(p.Name, p.Path, p.Sub))
	case KindAnyClass:
		return newAnyClassReader(p.Name, buildGroupReader(&Plan{Name: p.Name, Sub: p.Sub}))
	case KindObjectHeader:
		return newObjectHeaderReader(p.Name, Build(p.Element))
	case KindEmpty:
		return newEmptyReader(p.Name)
	case KindUserOverride:
		return p.Override.Build(p)
	default:
		panic("uproot: unhandled plan kind in Build")
	}
}

func buildGroupReader(p *Plan) Reader {
	readers := make([]Reader, len(p.Sub))
	for i, s := range p.Sub {
		readers[i] = Build(s)
	}
	return newGroupReader(p.Name, readers)
}
