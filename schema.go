package uproot

import "strings"

// Node is one field's streamer info, matching the ROOT TStreamerElement
// fields a planner needs. Nested/composite types are described by multiple
// Nodes joined through Schema, not by nesting Node itself.
type Node struct {
	Name      string // fName
	TypeName  string // fTypeName, e.g. "vector<int>", "Float_t", "MyClass[]"
	Type      int32  // fType, ROOT's streamer type code (66=TObject base, 0=BASE, 82=std::array marker, ...)
	ArrayDim  int32  // fArrayDim
	MaxIndex  []int32  // fMaxIndex, length >= ArrayDim
	Size      int32  // fSize, byte size of one flat element when known
}

// Schema is the full set of streamer info for a file: class name to the
// ordered list of its member Nodes. AnyClass and BaseObject planning look
// classes up here by name.
type Schema map[string][]Node

// Lookup returns the member list for a class name, or (nil, false) when the
// class was never registered.
func (s Schema) Lookup(className string) ([]Node, bool) {
	n, ok := s[className]
	return n, ok
}

// topTypeName extracts the outermost type token from a streamer fTypeName:
// trailing "[]" is stripped (CStyleArray handles that separately), and a
// templated name is cut at its first '<' so "vector<int>" yields "vector".
func topTypeName(typeName string) string {
	t := typeName
	for strings.HasSuffix(t, "[]") {
		t = t[:len(t)-2]
	}
	if i := strings.IndexByte(t, '<'); i >= 0 {
		return t[:i]
	}
	return t
}

// splitTemplateArgs returns the comma-separated top-level arguments inside
// the outermost '<...>' of a templated type name, ignoring commas nested
// inside further '<...>' pairs (e.g. map<int, vector<int>>).
func splitTemplateArgs(typeName string) []string {
	open := strings.IndexByte(typeName, '<')
	if open < 0 {
		return nil
	}
	close := strings.LastIndexByte(typeName, '>')
	if close < open {
		return nil
	}
	inner := typeName[open+1 : close]

	var args []string
	depth := 0
	start := 0
	for i := 0; i < len(inner); i++ {
		switch inner[i] {
		case '<':
			depth++
		case '>':
			depth--
		case ',':
			if depth == 0 {
				args = append(args, strings.TrimSpace(inner[start:i]))
				start = i + 1
			}
		}
	}
	args = append(args, strings.TrimSpace(inner[start:]))
	return args
}

// sequenceElementTypeName returns the element type of a sequence container's
// fTypeName, e.g. "vector<int>" -> "int", "set<Foo>" -> "Foo".
func sequenceElementTypeName(typeName string) string {
	args := splitTemplateArgs(typeName)
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

// mapKeyValTypeNames returns the key and value type of a map container's
// fTypeName, e.g. "map<int,float>" -> ("int", "float").
func mapKeyValTypeNames(typeName string) (string, string) {
	args := splitTemplateArgs(typeName)
	if len(args) < 2 {
		return "", ""
	}
	return args[0], args[1]
}

// stlContainerNames is the closed set of STL container top-type names this
// package recognizes, used by CStyleArray and STLSeq planning to decide
// whether a nested element itself carries a byte-count+version header
// (STLSeq/STLMap dispatch uses its own stlSeqTargets/stlMapTargets sets).
var stlContainerNames = map[string]bool{
	"vector":              true,
	"array":               true,
	"string":              true,
	"list":                true,
	"set":                 true,
	"multiset":            true,
	"unordered_set":       true,
	"unordered_multiset":  true,
	"map":                 true,
	"multimap":            true,
	"unordered_map":       true,
	"unordered_multimap":  true,
}
