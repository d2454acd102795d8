package holodex

import (
	"encoding/json"
	"time"
)

// String returns a pointer to v, for optional filter fields.
func String(v string) *string { return &v }

// Int returns a pointer to v, for optional filter fields.
func Int(v int) *int { return &v }

// Time returns a pointer to v, for optional filter fields.
func Time(v time.Time) *time.Time { return &v }

// ChannelType classifies a channel.
type ChannelType string

const (
	ChannelTypeVtuber ChannelType = "vtuber"
	ChannelTypeSubber ChannelType = "subber"
)

// VideoType classifies a video.
type VideoType string

const (
	VideoTypeStream VideoType = "stream"
	VideoTypeClip   VideoType = "clip"
)

// VideoStatus is the lifecycle state of a video.
type VideoStatus string

const (
	VideoStatusNew      VideoStatus = "new"
	VideoStatusUpcoming VideoStatus = "upcoming"
	VideoStatusLive     VideoStatus = "live"
	VideoStatusPast     VideoStatus = "past"
	VideoStatusMissing  VideoStatus = "missing"
)

// SortOrder is the direction of a sorted listing.
type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// CommentSort selects the ordering of comment search results.
type CommentSort string

const (
	CommentSortOldest  CommentSort = "oldest"
	CommentSortNewest  CommentSort = "newest"
	CommentSortLongest CommentSort = "longest"
)

// ExtraInfo names optional nested data a video listing can include.
type ExtraInfo string

const (
	IncludeClips        ExtraInfo = "clips"
	IncludeRefers       ExtraInfo = "refers"
	IncludeSources      ExtraInfo = "sources"
	IncludeSimulcasts   ExtraInfo = "simulcasts"
	IncludeMentions     ExtraInfo = "mentions"
	IncludeDescription  ExtraInfo = "description"
	IncludeLiveInfo     ExtraInfo = "live_info"
	IncludeChannelStats ExtraInfo = "channel_stats"
	IncludeSongs        ExtraInfo = "songs"
)

// RateLimit reports the server-side request quota as of the most recent
// response. It is overwritten on every call and never merged across calls.
type RateLimit struct {
	// Limit is the maximum number of requests per window.
	Limit int
	// Remaining is the number of requests left in the current window.
	Remaining int
	// Reset is the instant the window rolls over.
	Reset time.Time
}

// ChannelStats holds the counter group of a channel. The group is either
// fully present or fully absent; see mapChannel.
type ChannelStats struct {
	VideoCount      int64
	SubscriberCount int64
	ViewCount       int64
	ClipCount       int64
}

// Channel is the normalized representation of a channel.
type Channel struct {
	ID          string
	Name        string
	EnglishName string
	Type        ChannelType
	Org         string
	// Group is the display group derived from the raw suborg field.
	// Empty when the channel carries no group.
	Group    string
	Photo    string
	Twitter  string
	Inactive bool
	// Stats is nil when the response carried no statistics for this channel.
	Stats *ChannelStats
}

// Comment is one timestamped comment attached to a video.
type Comment struct {
	Key     string
	VideoID string
	Message string
}

// Video is the normalized representation of a video.
type Video struct {
	ID       string
	Title    string
	Type     VideoType
	Topic    string
	Status   VideoStatus
	Duration int64

	// Timestamps are UNIX epoch seconds; zero means the instant is unknown.
	PublishedAt    int64
	AvailableAt    int64
	StartScheduled int64
	StartActual    int64
	EndActual      int64

	LiveViewers int64
	Description string

	// Channel is the uploading channel, when the endpoint includes it.
	Channel *Channel

	// Comments is populated by GetVideo with comments requested, and by
	// comment search results.
	Comments []Comment
}

// VideoList is the "with total" variant of a video listing.
type VideoList struct {
	Total  int64
	Videos []Video
}

// rawChannel is the wire shape of a channel. Counters arrive as decimal
// strings and most fields are optional; mapChannel normalizes it.
type rawChannel struct {
	ID          *string `json:"id"`
	Name        *string `json:"name"`
	EnglishName *string `json:"english_name"`
	Type        *string `json:"type"`
	Org         *string `json:"org"`
	Suborg      *string `json:"suborg"`
	Photo       *string `json:"photo"`
	Twitter     *string `json:"twitter"`
	Inactive    *bool   `json:"inactive"`

	VideoCount      *string `json:"video_count"`
	SubscriberCount *string `json:"subscriber_count"`
	ViewCount       *string `json:"view_count"`
	ClipCount       *string `json:"clip_count"`
}

// rawComment is the wire shape of a timestamped comment.
type rawComment struct {
	CommentKey *string `json:"comment_key"`
	VideoID    *string `json:"video_id"`
	Message    *string `json:"message"`
}

// rawVideo is the wire shape of a video.
type rawVideo struct {
	ID             *string `json:"id"`
	Title          *string `json:"title"`
	Type           *string `json:"type"`
	Topic          *string `json:"topic_id"`
	Status         *string `json:"status"`
	Duration       *int64  `json:"duration"`
	PublishedAt    *string `json:"published_at"`
	AvailableAt    *string `json:"available_at"`
	StartScheduled *string `json:"start_scheduled"`
	StartActual    *string `json:"start_actual"`
	EndActual      *string `json:"end_actual"`
	LiveViewers    *int64  `json:"live_viewers"`
	Description    *string `json:"description"`

	Channel  *rawChannel  `json:"channel"`
	Comments []rawComment `json:"comments"`
}

// rawVideoList accepts both listing shapes the API produces: a bare JSON
// array of videos, or an object {"total": n, "items": [...]} when the
// paginated variant was requested.
type rawVideoList struct {
	Total int64
	Items []rawVideo
}

func (l *rawVideoList) UnmarshalJSON(data []byte) error {
	for _, c := range data {
		switch c {
		case ' ', '\t', '\r', '\n':
			continue
		case '[':
			return json.Unmarshal(data, &l.Items)
		default:
			var obj struct {
				Total int64      `json:"total"`
				Items []rawVideo `json:"items"`
			}
			if err := json.Unmarshal(data, &obj); err != nil {
				return err
			}
			l.Total = obj.Total
			l.Items = obj.Items
			return nil
		}
	}
	return json.Unmarshal(data, &l.Items)
}
