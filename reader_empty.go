package uproot

// emptyReader consumes nothing and produces nothing; a placeholder for a
// member a caller wants present in a Group's shape without reading data.
type emptyReader struct{ name string }

func newEmptyReader(name string) *emptyReader { return &emptyReader{name: name} }

func (r *emptyReader) Read(c *Cursor) error { return nil }

func (r *emptyReader) ReadMany(c *Cursor, count int) (int, error) { return count, nil }

func (r *emptyReader) ReadUntil(c *Cursor, endPos int) (int, error) { return 0, nil }

func (r *emptyReader) ReadManyMemberwise(c *Cursor, count int) (int, error) { return count, nil }

func (r *emptyReader) RawData() interface{} { return nil }
