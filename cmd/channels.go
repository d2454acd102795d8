package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/holowatch/holodex"
)

var (
	sortFlag  string
	orderFlag string
)

// channelsCmd represents the channels command
var channelsCmd = &cobra.Command{
	Use:   "channels",
	Short: "List channels",
	Long:  `List channels, filterable by organization and sortable by any channel field.`,
	RunE:  runChannels,
}

func init() {
	channelsCmd.Flags().StringVarP(&orgFlag, "org", "o", "", "organization")
	channelsCmd.Flags().StringVar(&sortFlag, "sort", "", "sort field, e.g. subscriber_count")
	channelsCmd.Flags().StringVar(&orderFlag, "order", "", "sort order (asc|desc)")
	channelsCmd.Flags().IntVarP(&limitFlag, "limit", "n", 25, "number of channels")

	rootCmd.AddCommand(channelsCmd)
}

func runChannels(cmd *cobra.Command, args []string) error {
	opts := holodex.ChannelListOptions{
		Type:  holodex.ChannelTypeVtuber,
		Order: holodex.SortOrder(orderFlag),
		Limit: limitFlag,
	}
	if orgFlag != "" {
		opts.Org = holodex.String(orgFlag)
	}
	if sortFlag != "" {
		opts.Sort = holodex.String(sortFlag)
	}

	channels, err := client.ListChannels(context.Background(), opts)
	if err != nil {
		return err
	}

	fmt.Print(formatter.FormatChannelList(channels))
	return nil
}

// channelCmd fetches one channel by ID
var channelCmd = &cobra.Command{
	Use:   "channel <id>",
	Short: "Show one channel",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		channel, err := client.GetChannel(context.Background(), args[0])
		if err != nil {
			return err
		}
		fmt.Print(formatter.FormatChannelList([]holodex.Channel{*channel}))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(channelCmd)
}
