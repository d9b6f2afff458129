package uproot

// Assemble converts a Reader tree's accumulated raw decode output into a
// Content tree, following the same Plan that built the Reader. It never
// touches a cursor; the parallel recursion here mirrors Build exactly,
// kind by kind.
func Assemble(p *Plan, raw interface{}) (Content, error) {
	switch p.Kind {
	case KindPrimitive:
		return NumericArray{Dtype: p.CType, Data: raw}, nil

	case KindTArray:
		rl := raw.(rawListOffset)
		return ListOffsetArray{Offsets: rl.Offsets, Elements: NumericArray{Dtype: p.CType, Data: rl.Element}}, nil

	case KindTString, KindSTLString:
		rl := raw.(rawListOffset)
		return StringArray{Offsets: rl.Offsets, Data: rl.Element.([]byte)}, nil

	case KindSTLSeq:
		rl := raw.(rawListOffset)
		elem, err := Assemble(p.Element, rl.Element)
		if err != nil {
			return nil, err
		}
		return ListOffsetArray{Offsets: rl.Offsets, Elements: elem}, nil

	case KindSTLMap:
		rm := raw.(rawMap)
		keyContent, err := Assemble(p.Key, rm.Key)
		if err != nil {
			return nil, err
		}
		valContent, err := Assemble(p.Val, rm.Val)
		if err != nil {
			return nil, err
		}
		return ListOffsetArray{
			Offsets: rm.Offsets,
			Elements: RecordArray{
				Fields:   []string{p.Key.Name, p.Val.Name},
				Contents: []Content{keyContent, valContent},
			},
		}, nil

	case KindTObject:
		if !p.KeepData || raw == nil {
			return nil, nil
		}
		rt := raw.(rawTObject)
		return RecordArray{
			Fields: []string{"fUniqueID", "fBits", "pidf"},
			Contents: []Content{
				NumericArray{Dtype: "i4", Data: rt.UniqueIDs},
				NumericArray{Dtype: "u4", Data: rt.Bits},
				ListOffsetArray{Offsets: rt.PidfOffsets, Elements: NumericArray{Dtype: "u2", Data: rt.Pidf}},
			},
		}, nil

	case KindCArray:
		return assembleCArray(p, raw)

	case KindNBytesVersion:
		return Assemble(p.Element, raw)

	case KindGroup:
		return assembleGroup(p.Sub, raw.([]interface{}))

	case KindBaseObject, KindAnyClass:
		return assembleGroup(p.Sub, raw.([]interface{}))

	case KindObjectHeader:
		return Assemble(p.Element, raw)

	case KindEmpty:
		return EmptyArray{}, nil

	case KindUserOverride:
		return p.Override.Assemble(p, raw)

	default:
		panic("uproot: unhandled plan kind in Assemble")
	}
}

func assembleGroup(sub []*Plan, raw []interface{}) (Content, error) {
	fields := make([]string, 0, len(sub))
	contents := make([]Content, 0, len(sub))
	for i, s := range sub {
		if s.Kind == KindTObject && !s.KeepData {
			continue
		}
		c, err := Assemble(s, raw[i])
		if err != nil {
			return nil, err
		}
		if c == nil {
			continue
		}
		fields = append(fields, s.Name)
		contents = append(contents, c)
	}
	return RecordArray{Fields: fields, Contents: contents}, nil
}

func assembleCArray(p *Plan, raw interface{}) (Content, error) {
	var elemContent Content
	var err error
	var offsets []int64

	if p.FlatSize >= 0 {
		elemContent, err = Assemble(p.Element, raw)
	} else {
		rl := raw.(rawListOffset)
		offsets = rl.Offsets
		elemContent, err = Assemble(p.Element, rl.Element)
	}
	if err != nil {
		return nil, err
	}

	if p.ArrayDim > 0 && len(p.MaxIndex) > 0 {
		shape := make([]int, p.ArrayDim)
		for i := int32(0); i < p.ArrayDim; i++ {
			shape[i] = int(p.MaxIndex[i])
		}
		for i := len(shape) - 1; i >= 0; i-- {
			elemContent = RegularArray{Size: shape[i], Elements: elemContent}
		}
		if p.FlatSize < 0 {
			divisor := 1
			for _, s := range shape {
				divisor *= s
			}
			if divisor > 1 {
				divided := make([]int64, len(offsets))
				for i, o := range offsets {
					divided[i] = o / int64(divisor)
				}
				offsets = divided
			}
		}
	}

	if p.FlatSize < 0 {
		return ListOffsetArray{Offsets: offsets, Elements: elemContent}, nil
	}
	return elemContent, nil
}
