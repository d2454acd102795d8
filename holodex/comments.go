package holodex

import (
	"context"
	"net/http"
)

// MaxCommentLimit is the largest page size the comment search accepts.
const MaxCommentLimit = 50

// CommentSearchOptions configures a timestamped-comment search.
type CommentSearchOptions struct {
	// Query is the text to search for. Required.
	Query string
	// Sort defaults to CommentSortNewest.
	Sort CommentSort

	Topics   []string
	Channels []string
	Orgs     []string
	Langs    []string

	Offset int
	Limit  int
}

// commentSearchRequest is the wire shape of the search body. The comment
// text travels as a single-element array; the upstream API requires the
// wrapper even though only one query is ever sent.
type commentSearchRequest struct {
	Sort    string   `json:"sort"`
	Comment []string `json:"comment"`
	Topic   []string `json:"topic,omitempty"`
	Vch     []string `json:"vch,omitempty"`
	Org     []string `json:"org,omitempty"`
	Lang    []string `json:"lang,omitempty"`
	Offset  int      `json:"offset"`
	Limit   int      `json:"limit"`
}

func (o CommentSearchOptions) request() commentSearchRequest {
	sort := o.Sort
	if sort == "" {
		sort = CommentSortNewest
	}
	return commentSearchRequest{
		Sort:    string(sort),
		Comment: []string{o.Query},
		Topic:   o.Topics,
		Vch:     o.Channels,
		Org:     o.Orgs,
		Lang:    o.Langs,
		Offset:  o.Offset,
		Limit:   o.Limit,
	}
}

func (c *Client) fetchCommentSearch(ctx context.Context, opts CommentSearchOptions) ([]Video, *RateLimit, error) {
	var raws []rawVideo
	rate, err := c.do(ctx, http.MethodPost, "/search/commentSearch", "", opts.request(), &raws)
	if err != nil {
		return nil, nil, err
	}
	videos, err := mapVideos(raws)
	if err != nil {
		return nil, nil, err
	}
	c.logger.Debug().Str("query", opts.Query).Int("count", len(videos)).Msg("Searched comments")
	return videos, rate, nil
}

// SearchComments searches timestamped comments by text, returning one page
// of videos with their matching comments attached.
func (c *Client) SearchComments(ctx context.Context, opts CommentSearchOptions) ([]Video, error) {
	if opts.Query == "" {
		return nil, &ValidationError{Field: "query", Reason: "required"}
	}
	if opts.Limit == 0 {
		opts.Limit = MaxCommentLimit
	}
	if err := validatePage(opts.Offset, opts.Limit, MaxCommentLimit); err != nil {
		return nil, err
	}
	videos, _, err := c.fetchCommentSearch(ctx, opts)
	return videos, err
}

// CommentPager iterates all comment search results, fetching pages on demand.
func (c *Client) CommentPager(opts CommentSearchOptions) (*Pager[Video], error) {
	if opts.Query == "" {
		return nil, &ValidationError{Field: "query", Reason: "required"}
	}
	if opts.Limit == 0 {
		opts.Limit = MaxCommentLimit
	}
	fetch := func(ctx context.Context, page PageOptions) ([]Video, *RateLimit, error) {
		opts.Offset = page.Offset
		opts.Limit = page.Limit
		return c.fetchCommentSearch(ctx, opts)
	}
	return NewPager(fetch, PageOptions{Offset: opts.Offset, Limit: opts.Limit}, MaxCommentLimit)
}
