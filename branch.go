package uproot

import "github.com/google/uuid"

// ReadBranch runs all four pipeline stages for one basket of one branch:
// it plans (or reuses a cached plan for) the branch's top-level item,
// builds a fresh Reader tree, decodes every entry against data using
// offsets as the basket's entry-boundary table, and assembles the result.
//
// offsets has one more entry than the basket's entry count; offsets[i+1]
// must equal the cursor position after decoding entry i (invariant P1). If
// offsets is nil, entries are assumed fixed-width at node.Size bytes each
// and a boundary table is synthesized from that (used for plain top-level
// primitive/fixed-size branches with no TBasket entry-offset array).
func ReadBranch(node Node, schema Schema, dims []int32, jagged bool, data []byte, offsets []int) (Content, error) {
	plan, err := cachedPlanBranch(node, schema, dims, jagged)
	if err != nil {
		return nil, err
	}

	if offsets == nil {
		if node.Size <= 0 {
			return nil, newSchemaError("", "branch %q has no fSize and no entry-offset table", node.Name)
		}
		n := len(data) / int(node.Size)
		offsets = make([]int, n+1)
		for i := range offsets {
			offsets[i] = i * int(node.Size)
		}
	}

	session := uuid.New()
	reader := Build(plan)
	c := newCursorWithEntries(data, offsets)

	for i := 0; i < len(offsets)-1; i++ {
		c.entry = i
		start := c.pos
		if err := reader.Read(c); err != nil {
			err = withContext(err, node.Name, c.pos, session)
			if e, ok := err.(*Error); ok && e.Pos >= 0 {
				e.Pos -= start
			}
			return nil, err
		}
		if c.pos != offsets[i+1] {
			return nil, withContext(newFramingError(
				"entry %d: expected %d bytes, read %d", i, offsets[i+1]-start, c.pos-start,
			), node.Name, c.pos-start, session)
		}
	}

	return Assemble(plan, reader.RawData())
}
