package holodex

import (
	"context"
	"errors"
)

// PageOptions is the evolving request state of one Pager: the offset of the
// next page and the fixed page size. A Pager owns its PageOptions; callers
// must not change Limit after construction.
type PageOptions struct {
	Offset int
	Limit  int
}

// FetchFunc fetches one page of items for the given options, returning the
// items in server order along with the rate-limit headers of the call.
// Endpoint methods provide these; tests can inject their own.
type FetchFunc[T any] func(ctx context.Context, opts PageOptions) ([]T, *RateLimit, error)

// Pager is a forward-only iterator over a paginated list endpoint. It
// fetches pages on demand and yields individual items in server order,
// each exactly once. A page shorter than the configured limit marks the
// end of results: no further fetch is issued after it is drained.
type Pager[T any] struct {
	fetch FetchFunc[T]
	opts  PageOptions

	page    []T
	cursor  int
	fetched bool // at least one page fetched
	final   bool // current page was short: done once drained
	done    bool

	headers *RateLimit
	yielded int
	pages   int
}

// NewPager builds a Pager over an arbitrary page-fetch strategy. maxLimit is
// the endpoint-specific page-size ceiling; option bounds are validated here,
// before any network traffic.
func NewPager[T any](fetch FetchFunc[T], opts PageOptions, maxLimit int) (*Pager[T], error) {
	if opts.Limit <= 0 {
		return nil, &ValidationError{Field: "limit", Value: opts.Limit, Reason: "must be positive"}
	}
	if opts.Limit > maxLimit {
		return nil, &ValidationError{Field: "limit", Value: opts.Limit, Reason: "exceeds endpoint maximum"}
	}
	if opts.Offset < 0 {
		return nil, &ValidationError{Field: "offset", Value: opts.Offset, Reason: "must not be negative"}
	}
	return &Pager[T]{fetch: fetch, opts: opts}, nil
}

// Next yields the next item, fetching a new page when the current one is
// drained. Once all results are consumed it returns ErrEndOfResults, and
// keeps doing so on every subsequent call without refetching.
//
// A fetch failure is returned as-is and leaves the Pager untouched, so the
// caller can retry the same logical step by calling Next again.
func (p *Pager[T]) Next(ctx context.Context) (T, error) {
	var zero T
	if p.done {
		return zero, ErrEndOfResults
	}

	if !p.fetched || p.cursor == len(p.page) {
		items, headers, err := p.fetch(ctx, p.opts)
		if err != nil {
			return zero, err
		}
		p.page = items
		p.cursor = 0
		p.fetched = true
		p.final = len(items) < p.opts.Limit
		// Advance by what actually arrived, not by the nominal limit: the
		// final page may be short and the offset must track server state.
		p.opts.Offset += len(items)
		p.headers = headers
		p.pages++
		if len(items) == 0 {
			p.done = true
			return zero, ErrEndOfResults
		}
	}

	item := p.page[p.cursor]
	p.cursor++
	p.yielded++
	if p.final && p.cursor == len(p.page) {
		p.done = true
	}
	return item, nil
}

// All drains the pager and returns the remaining items.
func (p *Pager[T]) All(ctx context.Context) ([]T, error) {
	var out []T
	for {
		item, err := p.Next(ctx)
		if errors.Is(err, ErrEndOfResults) {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
}

// Headers reports the rate-limit headers of the most recent page fetch, or
// nil before the first one.
func (p *Pager[T]) Headers() *RateLimit {
	return p.headers
}

// ItemIndex reports the number of items yielded so far across all pages,
// which is the zero-based index of the next item.
func (p *Pager[T]) ItemIndex() int {
	return p.yielded
}

// PageNumber reports the zero-based page number the next item falls on.
func (p *Pager[T]) PageNumber() int {
	return p.yielded / p.opts.Limit
}
