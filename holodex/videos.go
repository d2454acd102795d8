package holodex

import (
	"context"
	"net/http"
	"net/url"
	"time"
)

// Page-size ceilings per endpoint.
const (
	MaxVideoLimit = 50
	MaxLiveLimit  = 9999
)

// VideoListOptions filters a video listing or search. Pointer fields and
// nil slices are unset filters; see ChannelListOptions for the policy.
type VideoListOptions struct {
	IDs                []string
	ChannelID          *string
	Type               VideoType
	Topic              *string
	From               *time.Time
	To                 *time.Time
	Status             VideoStatus
	Lang               []string
	Org                *string
	MentionedChannelID *string
	Include            []ExtraInfo
	MaxUpcomingHours   *int
	Sort               *string
	Order              SortOrder

	Offset int
	Limit  int
}

func (o VideoListOptions) queryFields(paginated bool) []queryValue {
	fields := []queryValue{
		qList("id", o.IDs),
		qOptString("channel_id", o.ChannelID),
		qEnum("type", o.Type),
		qOptString("topic", o.Topic),
		optTimestamp("from", o.From),
		optTimestamp("to", o.To),
		qEnum("status", o.Status),
		qList("lang", o.Lang),
		qOptString("org", o.Org),
		qOptString("mentioned_channel_id", o.MentionedChannelID),
		qList("include", o.Include),
		qOptInt("max_upcoming_hours", o.MaxUpcomingHours),
		qOptString("sort", o.Sort),
		qEnum("order", o.Order),
	}
	if paginated {
		fields = append(fields, qBool("paginated", true))
	}
	return append(fields,
		qInt("offset", o.Offset),
		qInt("limit", o.Limit),
	)
}

func optTimestamp(name string, t *time.Time) queryValue {
	if t == nil {
		return queryValue{name: name, absent: true}
	}
	return qString(name, t.UTC().Format(time.RFC3339))
}

func (c *Client) fetchVideos(ctx context.Context, path string, opts VideoListOptions) ([]Video, *RateLimit, error) {
	var raws []rawVideo
	rate, err := c.do(ctx, http.MethodGet, path, encodeQuery(opts.queryFields(false)), nil, &raws)
	if err != nil {
		return nil, nil, err
	}
	videos, err := mapVideos(raws)
	if err != nil {
		return nil, nil, err
	}
	c.logger.Debug().Str("path", path).Int("count", len(videos)).Msg("Retrieved videos")
	return videos, rate, nil
}

// ListVideos fetches a single page of videos matching opts.
func (c *Client) ListVideos(ctx context.Context, opts VideoListOptions) ([]Video, error) {
	if opts.Limit == 0 {
		opts.Limit = MaxVideoLimit
	}
	if err := validatePage(opts.Offset, opts.Limit, MaxVideoLimit); err != nil {
		return nil, err
	}
	videos, _, err := c.fetchVideos(ctx, "/videos", opts)
	return videos, err
}

// ListVideosWithTotal fetches a single page of videos plus the total match
// count, using the paginated response variant.
func (c *Client) ListVideosWithTotal(ctx context.Context, opts VideoListOptions) (*VideoList, error) {
	if opts.Limit == 0 {
		opts.Limit = MaxVideoLimit
	}
	if err := validatePage(opts.Offset, opts.Limit, MaxVideoLimit); err != nil {
		return nil, err
	}
	var raw rawVideoList
	if _, err := c.do(ctx, http.MethodGet, "/videos", encodeQuery(opts.queryFields(true)), nil, &raw); err != nil {
		return nil, err
	}
	videos, err := mapVideos(raw.Items)
	if err != nil {
		return nil, err
	}
	return &VideoList{Total: raw.Total, Videos: videos}, nil
}

// VideoPager iterates all videos matching opts, fetching pages on demand.
func (c *Client) VideoPager(opts VideoListOptions) (*Pager[Video], error) {
	if opts.Limit == 0 {
		opts.Limit = MaxVideoLimit
	}
	fetch := func(ctx context.Context, page PageOptions) ([]Video, *RateLimit, error) {
		opts.Offset = page.Offset
		opts.Limit = page.Limit
		return c.fetchVideos(ctx, "/videos", opts)
	}
	return NewPager(fetch, PageOptions{Offset: opts.Offset, Limit: opts.Limit}, MaxVideoLimit)
}

// ListLive fetches currently live and upcoming videos matching opts. The
// live endpoint accepts a much larger page size than the video search.
func (c *Client) ListLive(ctx context.Context, opts VideoListOptions) ([]Video, error) {
	if opts.Limit == 0 {
		opts.Limit = MaxLiveLimit
	}
	if err := validatePage(opts.Offset, opts.Limit, MaxLiveLimit); err != nil {
		return nil, err
	}
	videos, _, err := c.fetchVideos(ctx, "/live", opts)
	return videos, err
}

// LiveForChannels fetches live and upcoming videos for an explicit channel
// set in one call. It bypasses the filter surface of ListLive.
func (c *Client) LiveForChannels(ctx context.Context, channelIDs []string) ([]Video, error) {
	if len(channelIDs) == 0 {
		return nil, &ValidationError{Field: "channels", Reason: "at least one channel id required"}
	}
	query := encodeQuery([]queryValue{qList("channels", channelIDs)})
	var raws []rawVideo
	if _, err := c.do(ctx, http.MethodGet, "/users/live", query, nil, &raws); err != nil {
		return nil, err
	}
	return mapVideos(raws)
}

// VideoOptions configures a single-video fetch.
type VideoOptions struct {
	// IncludeComments requests the video's timestamped comments.
	IncludeComments bool
	// Lang restricts included clips to the given translation languages.
	Lang []string
}

// GetVideo fetches one video by its ID.
func (c *Client) GetVideo(ctx context.Context, id string, opts *VideoOptions) (*Video, error) {
	if id == "" {
		return nil, &ValidationError{Field: "video id", Reason: "required"}
	}
	var fields []queryValue
	if opts != nil {
		if opts.IncludeComments {
			fields = append(fields, qString("c", "1"))
		}
		fields = append(fields, qList("lang", opts.Lang))
	}
	var raw rawVideo
	if _, err := c.do(ctx, http.MethodGet, "/videos/"+url.PathEscape(id), encodeQuery(fields), nil, &raw); err != nil {
		return nil, err
	}
	return mapVideo(&raw)
}
