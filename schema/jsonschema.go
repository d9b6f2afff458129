// Package schema loads ROOT streamer info fixtures from JSON into the
// uproot.Schema the planner consults. Test fixtures and cmd/ttreeinspect
// both read streamer info from a single JSON document keyed by class name,
// mirroring the dict-of-lists shape the originating Python tooling dumps
// (see python.py's streamer_info fixtures), rather than parsing ROOT's own
// TStreamerInfo binary records.
package schema

import (
	"fmt"
	"os"

	"github.com/segmentio/encoding/json"

	uproot "github.com/mrzimu/uproot-custom"
)

// classElement is one TStreamerElement as it appears in the JSON document:
// the field names match ROOT's own streamer member names so fixtures can be
// copied verbatim out of an existing streamer-info dump.
type classElement struct {
	FName     string  `json:"fName"`
	FTypeName string  `json:"fTypeName"`
	FType     int32   `json:"fType"`
	FArrayDim int32   `json:"fArrayDim"`
	FMaxIndex []int32 `json:"fMaxIndex"`
	FSize     int32   `json:"fSize"`
}

// Load reads a JSON streamer-info document from path and converts it into a
// uproot.Schema keyed by class name.
func Load(path string) (uproot.Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("schema: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse converts a JSON streamer-info document (class name -> ordered list
// of members) into a uproot.Schema.
func Parse(data []byte) (uproot.Schema, error) {
	var raw map[string][]classElement
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("schema: decode streamer info: %w", err)
	}

	out := make(uproot.Schema, len(raw))
	for className, elems := range raw {
		members := make([]uproot.Node, len(elems))
		for i, e := range elems {
			members[i] = uproot.Node{
				Name:     e.FName,
				TypeName: e.FTypeName,
				Type:     e.FType,
				ArrayDim: e.FArrayDim,
				MaxIndex: e.FMaxIndex,
				Size:     e.FSize,
			}
		}
		out[className] = members
	}
	return out, nil
}

// Dump renders a uproot.Schema back to the same JSON shape Load/Parse
// accept. Used by tests that round-trip a hand-built Schema through the
// fixture format.
func Dump(s uproot.Schema) ([]byte, error) {
	raw := make(map[string][]classElement, len(s))
	for className, members := range s {
		elems := make([]classElement, len(members))
		for i, n := range members {
			elems[i] = classElement{
				FName:     n.Name,
				FTypeName: n.TypeName,
				FType:     n.Type,
				FArrayDim: n.ArrayDim,
				FMaxIndex: n.MaxIndex,
				FSize:     n.Size,
			}
		}
		raw[className] = elems
	}
	return json.Marshal(raw)
}
