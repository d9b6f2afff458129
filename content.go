package uproot

// Content is the columnar result of Assemble: a plain tree of typed arrays,
// offset tables and records, deliberately provider-agnostic (this package
// has no awkward-array or Arrow dependency to build against).
type Content interface {
	isContent()
}

// NumericArray is a flat run of one primitive type, one value per logical
// element.
type NumericArray struct {
	Dtype string // one of the ctype tags: "bool","i1","i2","i4","i8","u1","u2","u4","u8","f","d"
	Data  interface{}
}

func (NumericArray) isContent() {}

// StringArray is a ragged run of byte strings: TString and std::string both
// assemble to this shape, distinguished from a plain byte ListOffsetArray
// so callers can tell character data from a numeric byte array.
type StringArray struct {
	Offsets []int64
	Data    []byte
}

func (StringArray) isContent() {}

// ListOffsetArray is a ragged (jagged) list: Offsets has one more entry
// than the number of logical sub-lists, each pair of adjacent offsets
// bounding one sub-list's slice of Elements.
type ListOffsetArray struct {
	Offsets  []int64
	Elements Content
}

func (ListOffsetArray) isContent() {}

// RegularArray is a fixed-size list: every logical sub-list has exactly
// Size elements of Elements.
type RegularArray struct {
	Size     int
	Elements Content
}

func (RegularArray) isContent() {}

// RecordArray is a struct-of-arrays: Fields and Contents are parallel,
// same-length slices.
type RecordArray struct {
	Fields   []string
	Contents []Content
}

func (RecordArray) isContent() {}

// EmptyArray carries no data; it assembles from an Empty Plan, and is
// never itself indexable.
type EmptyArray struct{}

func (EmptyArray) isContent() {}
