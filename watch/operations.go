package watch

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/s0up4200/holowatch/filter"
	"github.com/s0up4200/holowatch/holodex"
)

// OrgConcurrency bounds how many per-org live lookups run at once. The
// holodex.Client itself is synchronous, so each worker gets its own call
// sequence and results are merged afterwards.
const OrgConcurrency = 4

// Operations handles video lookup and filtering on top of the Holodex client.
type Operations struct {
	client   *holodex.Client
	compiler filter.Compiler
	logger   zerolog.Logger
}

// NewOperations creates a new Operations instance
func NewOperations(client *holodex.Client, logger zerolog.Logger) *Operations {
	return &Operations{
		client:   client,
		compiler: filter.NewExprCompiler(filter.WithCache(32)),
		logger:   logger,
	}
}

// Live fetches currently live videos, optionally narrowed by org and a
// filter expression.
func (o *Operations) Live(ctx context.Context, org string, expression string) ([]holodex.Video, error) {
	opts := holodex.VideoListOptions{}
	if org != "" {
		opts.Org = holodex.String(org)
	}

	videos, err := o.client.ListLive(ctx, opts)
	if err != nil {
		return nil, err
	}
	return o.applyFilter(videos, expression)
}

// LiveAcrossOrgs fetches live videos for several orgs with one client per
// worker, merges the results and sorts them by live viewers, descending.
func (o *Operations) LiveAcrossOrgs(ctx context.Context, orgs []string, expression string) ([]holodex.Video, error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(OrgConcurrency)

	var mu sync.Mutex
	var merged []holodex.Video

	for _, org := range orgs {
		g.Go(func() error {
			// Each worker holds its own client: the holodex.Client is not
			// safe for concurrent use.
			client := o.client.Clone()
			videos, err := client.ListLive(ctx, holodex.VideoListOptions{
				Org: holodex.String(org),
			})
			if err != nil {
				o.logger.Warn().Err(err).Str("org", org).Msg("Failed to fetch live videos")
				return err
			}
			mu.Lock()
			merged = append(merged, videos...)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].LiveViewers > merged[j].LiveViewers
	})
	return o.applyFilter(merged, expression)
}

// SearchVideos pages through the video search, collecting at most maxItems
// results (zero means no cap), and applies the filter expression.
func (o *Operations) SearchVideos(ctx context.Context, opts holodex.VideoListOptions, expression string, maxItems int) ([]holodex.Video, error) {
	pager, err := o.client.VideoPager(opts)
	if err != nil {
		return nil, err
	}
	var videos []holodex.Video
	for maxItems <= 0 || len(videos) < maxItems {
		video, err := pager.Next(ctx)
		if errors.Is(err, holodex.ErrEndOfResults) {
			break
		}
		if err != nil {
			return nil, err
		}
		videos = append(videos, video)
	}
	if rate := pager.Headers(); rate != nil {
		o.logger.Debug().
			Int("remaining", rate.Remaining).
			Time("reset", rate.Reset).
			Msg("Rate limit after search")
	}
	return o.applyFilter(videos, expression)
}

// SearchComments searches timestamped comments and applies the filter
// expression to the returned videos.
func (o *Operations) SearchComments(ctx context.Context, opts holodex.CommentSearchOptions, expression string) ([]holodex.Video, error) {
	videos, err := o.client.SearchComments(ctx, opts)
	if err != nil {
		return nil, err
	}
	return o.applyFilter(videos, expression)
}

func (o *Operations) applyFilter(videos []holodex.Video, expression string) ([]holodex.Video, error) {
	if expression == "" {
		return videos, nil
	}
	f, err := o.compiler.Compile(expression)
	if err != nil {
		return nil, err
	}
	matched := filter.Apply(f, videos)
	o.logger.Debug().
		Str("filter", expression).
		Int("before", len(videos)).
		Int("after", len(matched)).
		Msg("Applied filter")
	return matched, nil
}
