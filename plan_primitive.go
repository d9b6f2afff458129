package uproot

// ctypeByFType mirrors BasicTypeFactory.ftypes: ROOT's streamer fType code
// takes priority over the textual type name, since typedefs (Int_t et al.)
// can vary by generation era while fType is stable.
var ctypeByFType = map[int32]string{
	1:  "i1",
	2:  "i2",
	3:  "i4",
	4:  "i8",
	5:  "f",
	8:  "d",
	11: "u1",
	12: "u2",
	13: "u4",
	14: "u8",
	18: "bool",
}

// ctypeByTypeName mirrors BasicTypeFactory.typenames: C/C++ builtin spellings,
// fixed-width cstdint aliases, and ROOT's own Ttype_t aliases.
var ctypeByTypeName = map[string]string{
	"bool": "bool",
	"char": "i1", "short": "i2", "int": "i4", "long": "i8", "long long": "i8",
	"signed char": "i1", "signed short": "i2", "signed int": "i4",
	"signed long": "i8", "signed long long": "i8",
	"unsigned char": "u1", "unsigned short": "u2", "unsigned int": "u4",
	"unsigned long": "u8", "unsigned long long": "u8",
	"float": "f", "double": "d",
	"int8_t": "i1", "int16_t": "i2", "int32_t": "i4", "int64_t": "i8",
	"uint8_t": "u1", "uint16_t": "u2", "uint32_t": "u4", "uint64_t": "u8",
	"Bool_t": "bool", "Char_t": "i1", "Short_t": "i2", "Int_t": "i4", "Long_t": "i8",
	"UChar_t": "u1", "UShort_t": "u2", "UInt_t": "u4", "ULong_t": "u8",
	"Float_t": "f", "Double_t": "d",
}

func init() {
	registerFactory(10, tryPlanPrimitive)
}

func tryPlanPrimitive(ctx *PlanContext, top string, node Node, schema Schema, path string) (*Plan, bool, error) {
	ctype, ok := ctypeByFType[node.Type]
	if !ok {
		ctype, ok = ctypeByTypeName[top]
	}
	if !ok {
		return nil, false, nil
	}
	return &Plan{Kind: KindPrimitive, Name: node.Name, Path: path, CType: ctype}, true, nil
}
