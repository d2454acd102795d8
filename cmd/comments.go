package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/holowatch/holodex"
)

var commentSortFlag string

// commentsCmd represents the comments command
var commentsCmd = &cobra.Command{
	Use:   "comments <query>",
	Short: "Search timestamped comments",
	Long: `Search timestamped comments by text across indexed videos. Results
are the videos whose comments match, with the matching comments attached.`,
	Args: cobra.ExactArgs(1),
	RunE: runComments,
}

func init() {
	commentsCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
	commentsCmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
	commentsCmd.Flags().StringVarP(&orgFlag, "org", "o", "", "organization")
	commentsCmd.Flags().StringVar(&topicFlag, "topic", "", "topic")
	commentsCmd.Flags().StringVar(&commentSortFlag, "sort", "newest", "sort order (oldest|newest|longest)")
	commentsCmd.Flags().IntVarP(&limitFlag, "limit", "n", holodex.MaxCommentLimit, "number of results")

	rootCmd.AddCommand(commentsCmd)
}

func runComments(cmd *cobra.Command, args []string) error {
	expression, err := getFilterExpression()
	if err != nil {
		return err
	}

	opts := holodex.CommentSearchOptions{
		Query: args[0],
		Sort:  holodex.CommentSort(commentSortFlag),
		Limit: limitFlag,
	}
	if orgFlag != "" {
		opts.Orgs = []string{orgFlag}
	}
	if topicFlag != "" {
		opts.Topics = []string{topicFlag}
	}

	videos, err := operations.SearchComments(context.Background(), opts, expression)
	if err != nil {
		return err
	}

	formatOpts := formatOptions()
	formatOpts.ShowComments = true
	fmt.Print(formatter.FormatVideoList(videos, formatOpts))
	return nil
}
