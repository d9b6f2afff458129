package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	uproot "github.com/mrzimu/uproot-custom"
	"github.com/mrzimu/uproot-custom/schema"
)

var (
	planTypeName string
	planName     string
	planDims     string
	planJagged   bool
)

var planCmd = &cobra.Command{
	Use:   "plan <type>",
	Short: "Print the decode plan tree for one branch's top-level streamer element",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runPlan,
}

func init() {
	planCmd.Flags().StringVar(&planName, "name", "branch", "branch name used in diagnostics and as the plan root's path")
	planCmd.Flags().StringVar(&planDims, "dims", "", "comma-separated branch array dimensions (fMaxIndex), e.g. 3,4")
	planCmd.Flags().BoolVar(&planJagged, "jagged", false, "treat the branch's own array as jagged rather than fixed-size")
}

func runPlan(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		planTypeName = args[0]
	}
	if planTypeName == "" {
		return fmt.Errorf("plan: a streamer fTypeName (or registered class name) is required")
	}

	sch, err := schema.Load(schemaPath)
	if err != nil {
		return err
	}

	dims, err := parseDims(planDims)
	if err != nil {
		return err
	}

	node := uproot.Node{Name: planName, TypeName: planTypeName}
	plan, err := uproot.PlanBranch(node, sch, dims, planJagged)
	if err != nil {
		return fmt.Errorf("plan: %w", err)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"path", "kind", "ctype", "mode"})
	table.SetAutoWrapText(false)
	appendPlanRows(table, plan)
	table.Render()
	return nil
}

func parseDims(s string) ([]int32, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	dims := make([]int32, len(parts))
	for i, p := range parts {
		n, err := strconv.ParseInt(strings.TrimSpace(p), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("plan: invalid --dims %q: %w", s, err)
		}
		dims[i] = int32(n)
	}
	return dims, nil
}

// appendPlanRows walks a Plan depth-first, appending one table row per
// node. Sub/Element/Key/Val are the only edges a Plan carries, mirroring
// Build's and Assemble's own traversal.
func appendPlanRows(table *tablewriter.Table, p *uproot.Plan) {
	if p == nil {
		return
	}
	table.Append([]string{p.Path, p.Kind.String(), p.CType, modeString(p.Mode)})

	for _, s := range p.Sub {
		appendPlanRows(table, s)
	}
	appendPlanRows(table, p.Element)
	appendPlanRows(table, p.Key)
	appendPlanRows(table, p.Val)
}

func modeString(m uproot.Mode) string {
	switch m {
	case uproot.ModeObjWise:
		return "obj-wise"
	case uproot.ModeMemberWise:
		return "member-wise"
	default:
		return "auto"
	}
}
