package watch

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/s0up4200/holowatch/holodex"
)

func TestFormatVideoList(t *testing.T) {
	formatter := NewConsoleFormatter()

	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, "No videos found", formatter.FormatVideoList(nil, FormatOptions{}))
	})

	t.Run("live video with channel", func(t *testing.T) {
		videos := []holodex.Video{
			{
				Title:       "Morning Stream",
				Status:      holodex.VideoStatusLive,
				Topic:       "talk",
				LiveViewers: 4200,
				Channel: &holodex.Channel{
					Name:  "Pekora Ch.",
					Org:   "Hololive",
					Group: "Gen 3",
				},
			},
		}
		out := formatter.FormatVideoList(videos, FormatOptions{})
		assert.Contains(t, out, "Video (1):")
		assert.Contains(t, out, "Morning Stream")
		assert.Contains(t, out, "Pekora Ch. (Hololive / Gen 3)")
		assert.Contains(t, out, "4200 watching")
	})

	t.Run("details and comments", func(t *testing.T) {
		videos := []holodex.Video{
			{
				Title:       "Archive",
				Status:      holodex.VideoStatusPast,
				Duration:    3725,
				AvailableAt: 1700000000,
				Comments:    []holodex.Comment{{Message: "1:02:03 highlight"}},
			},
		}
		out := formatter.FormatVideoList(videos, FormatOptions{ShowDetails: true, ShowComments: true})
		assert.Contains(t, out, "Duration: 1:02:05")
		assert.Contains(t, out, "> 1:02:03 highlight")
	})
}

func TestFormatChannelList(t *testing.T) {
	formatter := NewConsoleFormatter()

	channels := []holodex.Channel{
		{
			Name:        "兎田ぺこら",
			EnglishName: "Usada Pekora",
			Org:         "Hololive",
			Group:       "Gen 3",
			Stats: &holodex.ChannelStats{
				SubscriberCount: 2340000,
				VideoCount:      1523,
				ClipCount:       40210,
			},
		},
		{
			Name:     "Retired Ch.",
			Inactive: true,
		},
	}

	out := formatter.FormatChannelList(channels)
	assert.Contains(t, out, "Channels (2):")
	assert.Contains(t, out, "兎田ぺこら / Usada Pekora")
	assert.Contains(t, out, "Org: Hololive / Gen 3")
	assert.Contains(t, out, "Subscribers: 2340000")
	assert.Contains(t, out, "[INACTIVE]")
}
