// Command ttreeinspect is a minimal front-end over the uproot-custom
// planner: it loads a JSON streamer-info fixture and either prints the
// decode plan for a branch's top-level item or runs the full Plan/Build/
// Decode/Assemble pipeline against a raw basket and summarizes the result.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Blank-imported for their init() side effect of registering a basket
	// decompression Codec; see basket.Register.
	_ "github.com/mrzimu/uproot-custom/basket/brotli"
	_ "github.com/mrzimu/uproot-custom/basket/lz4"
	_ "github.com/mrzimu/uproot-custom/basket/zlib"
	_ "github.com/mrzimu/uproot-custom/basket/zstd"
)

var schemaPath string

var rootCmd = &cobra.Command{
	Use:   "ttreeinspect",
	Short: "Inspect ROOT TTree streamer-info decode plans",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&schemaPath, "schema", "", "path to a JSON streamer-info fixture (required)")
	cobra.CheckErr(rootCmd.MarkPersistentFlagRequired("schema"))

	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(decodeCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "ttreeinspect: "+format+"\n", args...)
	os.Exit(1)
}
