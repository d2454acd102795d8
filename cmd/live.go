package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/holowatch/holodex"
	"github.com/s0up4200/holowatch/watch"
)

// liveCmd represents the live command
var liveCmd = &cobra.Command{
	Use:   "live",
	Short: "List currently live streams",
	Long: `List currently live streams, optionally narrowed to one or more
organizations and filtered with an expression.`,
	RunE: runLive,
}

func init() {
	liveCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
	liveCmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
	liveCmd.Flags().StringVarP(&orgFlag, "org", "o", "", "organization (overrides config orgs)")

	rootCmd.AddCommand(liveCmd)
}

func runLive(cmd *cobra.Command, args []string) error {
	expression, err := getFilterExpression()
	if err != nil {
		return err
	}

	ctx := context.Background()

	orgs := cfg.Holodex.Orgs
	if orgFlag != "" {
		orgs = []string{orgFlag}
	}

	var live []holodex.Video
	switch len(orgs) {
	case 0:
		live, err = operations.Live(ctx, "", expression)
	case 1:
		live, err = operations.Live(ctx, orgs[0], expression)
	default:
		live, err = operations.LiveAcrossOrgs(ctx, orgs, expression)
	}
	if err != nil {
		return err
	}

	fmt.Print(formatter.FormatVideoList(live, formatOptions()))
	return nil
}

func formatOptions() watch.FormatOptions {
	return watch.FormatOptions{ShowDetails: cfg.Output.ShowDetails}
}
