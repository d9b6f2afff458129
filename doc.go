// Package uproot synthesizes, at runtime, a tree of decoders for ROOT's
// TTree/TStreamerInfo binary layout and walks it against a flat big-endian
// byte buffer to produce columnar, possibly-ragged content.
//
// The pipeline has four stages, run per branch per basket:
//
//	Plan     schema + item path            -> Plan tree   (pure, cacheable)
//	Build    Plan                          -> Reader tree  (owns buffers)
//	Decode   Reader tree + bytes + offsets  -> raw buffers
//	Assemble Plan + raw buffers             -> Content tree
//
// Plan and Reader are deliberately distinct recursive types: Plan is an
// immutable description keyed by a closed set of Kind values, Reader is the
// mutable, single-use-per-basket tree built from it. See Plan, Reader and
// Content for the three taxonomies, and ReadBranch for the top-level driver
// that ties all four stages together.
package uproot
