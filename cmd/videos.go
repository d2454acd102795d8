package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/holowatch/holodex"
)

var (
	channelFlag string
	topicFlag   string
	statusFlag  string
	maxFlag     int
)

// videosCmd represents the videos command
var videosCmd = &cobra.Command{
	Use:   "videos",
	Short: "Search videos",
	Long: `Search videos by channel, topic, organization or status. Results are
paged through automatically and can be narrowed with a filter expression.`,
	RunE: runVideos,
}

func init() {
	videosCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
	videosCmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
	videosCmd.Flags().StringVarP(&orgFlag, "org", "o", "", "organization")
	videosCmd.Flags().StringVar(&channelFlag, "channel", "", "channel ID")
	videosCmd.Flags().StringVar(&topicFlag, "topic", "", "topic, e.g. singing")
	videosCmd.Flags().StringVar(&statusFlag, "status", "", "video status (new|upcoming|live|past|missing)")
	videosCmd.Flags().IntVarP(&limitFlag, "limit", "n", holodex.MaxVideoLimit, "page size")
	videosCmd.Flags().IntVar(&maxFlag, "max", 200, "stop after this many results (0 for all)")

	rootCmd.AddCommand(videosCmd)
}

func runVideos(cmd *cobra.Command, args []string) error {
	expression, err := getFilterExpression()
	if err != nil {
		return err
	}

	opts := holodex.VideoListOptions{
		Type:   holodex.VideoTypeStream,
		Status: holodex.VideoStatus(statusFlag),
		Limit:  limitFlag,
	}
	if orgFlag != "" {
		opts.Org = holodex.String(orgFlag)
	}
	if channelFlag != "" {
		opts.ChannelID = holodex.String(channelFlag)
	}
	if topicFlag != "" {
		opts.Topic = holodex.String(topicFlag)
	}

	videos, err := operations.SearchVideos(context.Background(), opts, expression, maxFlag)
	if err != nil {
		return err
	}

	fmt.Print(formatter.FormatVideoList(videos, formatOptions()))
	return nil
}

// videoCmd fetches one video by ID
var videoCmd = &cobra.Command{
	Use:   "video <id>",
	Short: "Show one video, with its timestamped comments",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		video, err := client.GetVideo(context.Background(), args[0], &holodex.VideoOptions{
			IncludeComments: true,
		})
		if err != nil {
			return err
		}

		opts := formatOptions()
		opts.ShowComments = true
		fmt.Print(formatter.FormatVideoList([]holodex.Video{*video}, opts))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(videoCmd)
}
