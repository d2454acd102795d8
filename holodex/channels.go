package holodex

import (
	"context"
	"net/http"
	"net/url"
)

// MaxChannelLimit is the largest page size the channel listing accepts.
const MaxChannelLimit = 100

// ChannelListOptions filters a channel listing. Pointer fields and nil
// slices are unset filters and are omitted from the query entirely; an
// empty string behind a pointer is sent as "key=" and counts as set.
type ChannelListOptions struct {
	Type  ChannelType
	Lang  []string
	Org   *string
	Sort  *string
	Order SortOrder

	Offset int
	Limit  int
}

// queryFields renders the options in declaration order.
func (o ChannelListOptions) queryFields() []queryValue {
	return []queryValue{
		qEnum("type", o.Type),
		qList("lang", o.Lang),
		qOptString("org", o.Org),
		qOptString("sort", o.Sort),
		qEnum("order", o.Order),
		qInt("offset", o.Offset),
		qInt("limit", o.Limit),
	}
}

func (c *Client) fetchChannels(ctx context.Context, opts ChannelListOptions) ([]Channel, *RateLimit, error) {
	var raws []rawChannel
	rate, err := c.do(ctx, http.MethodGet, "/channels", encodeQuery(opts.queryFields()), nil, &raws)
	if err != nil {
		return nil, nil, err
	}
	channels, err := mapChannels(raws)
	if err != nil {
		return nil, nil, err
	}
	c.logger.Debug().Int("count", len(channels)).Msg("Retrieved channels")
	return channels, rate, nil
}

// ListChannels fetches a single page of channels.
func (c *Client) ListChannels(ctx context.Context, opts ChannelListOptions) ([]Channel, error) {
	if opts.Limit == 0 {
		opts.Limit = MaxChannelLimit
	}
	if err := validatePage(opts.Offset, opts.Limit, MaxChannelLimit); err != nil {
		return nil, err
	}
	channels, _, err := c.fetchChannels(ctx, opts)
	return channels, err
}

// ChannelPager iterates all channels matching opts, fetching pages on
// demand. opts.Offset and opts.Limit seed the pager; a zero Limit defaults
// to the endpoint maximum.
func (c *Client) ChannelPager(opts ChannelListOptions) (*Pager[Channel], error) {
	if opts.Limit == 0 {
		opts.Limit = MaxChannelLimit
	}
	fetch := func(ctx context.Context, page PageOptions) ([]Channel, *RateLimit, error) {
		opts.Offset = page.Offset
		opts.Limit = page.Limit
		return c.fetchChannels(ctx, opts)
	}
	return NewPager(fetch, PageOptions{Offset: opts.Offset, Limit: opts.Limit}, MaxChannelLimit)
}

// GetChannel fetches one channel by its ID.
func (c *Client) GetChannel(ctx context.Context, id string) (*Channel, error) {
	if id == "" {
		return nil, &ValidationError{Field: "channel id", Reason: "required"}
	}
	var raw rawChannel
	if _, err := c.do(ctx, http.MethodGet, "/channels/"+url.PathEscape(id), "", nil, &raw); err != nil {
		return nil, err
	}
	return mapChannel(&raw)
}

// validatePage rejects out-of-bounds pagination before any network call.
func validatePage(offset, limit, maxLimit int) error {
	if limit <= 0 {
		return &ValidationError{Field: "limit", Value: limit, Reason: "must be positive"}
	}
	if limit > maxLimit {
		return &ValidationError{Field: "limit", Value: limit, Reason: "exceeds endpoint maximum"}
	}
	if offset < 0 {
		return &ValidationError{Field: "offset", Value: offset, Reason: "must not be negative"}
	}
	return nil
}
