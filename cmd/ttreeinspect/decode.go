package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	uproot "github.com/mrzimu/uproot-custom"
	"github.com/mrzimu/uproot-custom/basket"
	"github.com/mrzimu/uproot-custom/schema"
)

var (
	decodeTypeName   string
	decodeName       string
	decodeDims       string
	decodeJagged     bool
	decodeDataPath   string
	decodeOffsets    string
	decodeSize       int32
	decodeCompressed bool
)

var decodeCmd = &cobra.Command{
	Use:   "decode <type>",
	Short: "Run the full plan/build/decode/assemble pipeline against a raw basket and print a summary",
	Args:  cobra.ExactArgs(1),
	RunE:  runDecode,
}

func init() {
	decodeCmd.Flags().StringVar(&decodeName, "name", "branch", "branch name used in diagnostics")
	decodeCmd.Flags().StringVar(&decodeDims, "dims", "", "comma-separated branch array dimensions (fMaxIndex)")
	decodeCmd.Flags().BoolVar(&decodeJagged, "jagged", false, "treat the branch's own array as jagged rather than fixed-size")
	decodeCmd.Flags().StringVar(&decodeDataPath, "data", "", "path to the raw basket payload (required)")
	decodeCmd.Flags().StringVar(&decodeOffsets, "offsets", "", "comma-separated entry-boundary byte offsets; omit for fixed-width entries sized by --entry-size")
	decodeCmd.Flags().Int32Var(&decodeSize, "entry-size", 0, "fixed per-entry byte size, used when --offsets is omitted")
	decodeCmd.Flags().BoolVar(&decodeCompressed, "compressed", false, "the basket payload is RZip-compressed; decompress with the basket package before decoding")
	cobra.CheckErr(decodeCmd.MarkFlagRequired("data"))
}

func runDecode(cmd *cobra.Command, args []string) error {
	decodeTypeName = args[0]

	sch, err := schema.Load(schemaPath)
	if err != nil {
		return err
	}

	dims, err := parseDims(decodeDims)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(decodeDataPath)
	if err != nil {
		return fmt.Errorf("decode: read %s: %w", decodeDataPath, err)
	}
	if decodeCompressed {
		data, err = basket.Decompress(data)
		if err != nil {
			return fmt.Errorf("decode: %w", err)
		}
	}

	offsets, err := parseOffsets(decodeOffsets)
	if err != nil {
		return err
	}

	node := uproot.Node{Name: decodeName, TypeName: decodeTypeName, Size: decodeSize}
	content, err := uproot.ReadBranch(node, sch, dims, decodeJagged, data, offsets)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	fmt.Println(describeContent(content))
	return nil
}

func parseOffsets(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	offsets := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("decode: invalid --offsets %q: %w", s, err)
		}
		offsets[i] = n
	}
	return offsets, nil
}

// describeContent renders a Content tree as a one-line-per-node indented
// summary; it exists for operators eyeballing a decode result, not as a
// stable machine-readable format.
func describeContent(c uproot.Content) string {
	var b strings.Builder
	describeContentIndent(&b, c, 0)
	return strings.TrimRight(b.String(), "\n")
}

func describeContentIndent(b *strings.Builder, c uproot.Content, depth int) {
	pad := strings.Repeat("  ", depth)
	switch v := c.(type) {
	case uproot.NumericArray:
		fmt.Fprintf(b, "%sNumericArray(%s) len=%d\n", pad, v.Dtype, numericLen(v.Data))
	case uproot.StringArray:
		fmt.Fprintf(b, "%sStringArray strings=%d bytes=%d\n", pad, len(v.Offsets)-1, len(v.Data))
	case uproot.ListOffsetArray:
		fmt.Fprintf(b, "%sListOffsetArray lists=%d\n", pad, len(v.Offsets)-1)
		describeContentIndent(b, v.Elements, depth+1)
	case uproot.RegularArray:
		fmt.Fprintf(b, "%sRegularArray size=%d\n", pad, v.Size)
		describeContentIndent(b, v.Elements, depth+1)
	case uproot.RecordArray:
		fmt.Fprintf(b, "%sRecordArray fields=%s\n", pad, strings.Join(v.Fields, ","))
		for i, field := range v.Contents {
			fmt.Fprintf(b, "%s  %s:\n", pad, v.Fields[i])
			describeContentIndent(b, field, depth+2)
		}
	case uproot.EmptyArray:
		fmt.Fprintf(b, "%sEmptyArray\n", pad)
	default:
		fmt.Fprintf(b, "%s%T\n", pad, c)
	}
}

func numericLen(data interface{}) int {
	switch v := data.(type) {
	case []bool:
		return len(v)
	case []int8:
		return len(v)
	case []uint8:
		return len(v)
	case []int16:
		return len(v)
	case []uint16:
		return len(v)
	case []int32:
		return len(v)
	case []uint32:
		return len(v)
	case []int64:
		return len(v)
	case []uint64:
		return len(v)
	case []float32:
		return len(v)
	case []float64:
		return len(v)
	default:
		return -1
	}
}
