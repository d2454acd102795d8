package watch

import (
	"fmt"
	"strings"
	"time"

	"github.com/s0up4200/holowatch/holodex"
)

// FormatOptions controls how much detail the formatter prints.
type FormatOptions struct {
	ShowDetails  bool
	ShowComments bool
}

// ConsoleFormatter provides console output formatting for videos and channels
type ConsoleFormatter struct{}

// NewConsoleFormatter creates a new console formatter
func NewConsoleFormatter() *ConsoleFormatter {
	return &ConsoleFormatter{}
}

// FormatVideoList formats a list of videos for console display
func (f *ConsoleFormatter) FormatVideoList(videos []holodex.Video, options FormatOptions) string {
	if len(videos) == 0 {
		return "No videos found"
	}

	var sb strings.Builder

	sb.WriteString("\nVideo")
	if len(videos) != 1 {
		sb.WriteString("s")
	}
	fmt.Fprintf(&sb, " (%d):\n\n", len(videos))

	for i, video := range videos {
		isLast := i == len(videos)-1
		f.formatVideo(&sb, video, isLast, options)
		if !isLast {
			sb.WriteString("│\n")
		}
	}

	sb.WriteString("\n")
	return sb.String()
}

func (f *ConsoleFormatter) formatVideo(sb *strings.Builder, video holodex.Video, isLast bool, options FormatOptions) {
	prefix := "├"
	if isLast {
		prefix = "╰"
	}

	fmt.Fprintf(sb, "%s── %s\n", prefix, video.Title)

	indent := "│   "
	if isLast {
		indent = "    "
	}

	if video.Channel != nil {
		channel := video.Channel.Name
		if video.Channel.Org != "" {
			channel += fmt.Sprintf(" (%s", video.Channel.Org)
			if video.Channel.Group != "" {
				channel += " / " + video.Channel.Group
			}
			channel += ")"
		}
		fmt.Fprintf(sb, "%sChannel: %s\n", indent, channel)
	}

	var statusParts []string
	statusParts = append(statusParts, string(video.Status))
	if video.Topic != "" {
		statusParts = append(statusParts, "topic: "+video.Topic)
	}
	if video.Status == holodex.VideoStatusLive && video.LiveViewers > 0 {
		statusParts = append(statusParts, fmt.Sprintf("%d watching", video.LiveViewers))
	}
	fmt.Fprintf(sb, "%s%s\n", indent, strings.Join(statusParts, " | "))

	if options.ShowDetails {
		if video.AvailableAt != 0 {
			fmt.Fprintf(sb, "%sAvailable: %s\n", indent, formatEpoch(video.AvailableAt))
		}
		if video.StartActual != 0 {
			fmt.Fprintf(sb, "%sStarted: %s\n", indent, formatEpoch(video.StartActual))
		}
		if video.Duration > 0 {
			fmt.Fprintf(sb, "%sDuration: %s\n", indent, formatDuration(video.Duration))
		}
	}

	if options.ShowComments {
		for _, comment := range video.Comments {
			fmt.Fprintf(sb, "%s> %s\n", indent, comment.Message)
		}
	}
}

// FormatChannelList formats a list of channels for console display
func (f *ConsoleFormatter) FormatChannelList(channels []holodex.Channel) string {
	if len(channels) == 0 {
		return "No channels found"
	}

	var sb strings.Builder

	sb.WriteString("\nChannel")
	if len(channels) != 1 {
		sb.WriteString("s")
	}
	fmt.Fprintf(&sb, " (%d):\n\n", len(channels))

	for i, channel := range channels {
		isLast := i == len(channels)-1
		prefix := "├"
		if isLast {
			prefix = "╰"
		}

		name := channel.Name
		if channel.EnglishName != "" && channel.EnglishName != channel.Name {
			name += " / " + channel.EnglishName
		}
		fmt.Fprintf(&sb, "%s── %s\n", prefix, name)

		indent := "│   "
		if isLast {
			indent = "    "
		}

		var orgParts []string
		if channel.Org != "" {
			orgParts = append(orgParts, channel.Org)
		}
		if channel.Group != "" {
			orgParts = append(orgParts, channel.Group)
		}
		if len(orgParts) > 0 {
			fmt.Fprintf(&sb, "%sOrg: %s\n", indent, strings.Join(orgParts, " / "))
		}

		if channel.Stats != nil {
			fmt.Fprintf(&sb, "%sSubscribers: %d | Videos: %d | Clips: %d\n",
				indent, channel.Stats.SubscriberCount, channel.Stats.VideoCount, channel.Stats.ClipCount)
		}

		if channel.Inactive {
			fmt.Fprintf(&sb, "%s[INACTIVE]\n", indent)
		}

		if !isLast {
			sb.WriteString("│\n")
		}
	}

	sb.WriteString("\n")
	return sb.String()
}

func formatEpoch(seconds int64) string {
	return time.Unix(seconds, 0).UTC().Format("2006-01-02 15:04")
}

func formatDuration(seconds int64) string {
	d := time.Duration(seconds) * time.Second
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
