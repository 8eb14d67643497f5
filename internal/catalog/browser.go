package catalog

import (
	"context"
	"errors"
	"sync"
)

var ErrStaleQuery = errors.New("product query superseded by a newer one")

type Lister interface {
	ListProducts(ctx context.Context, q Query) ([]Product, error)
}

type Result struct {
	Page
	Categories []string `json:"categories"`
	Sequence   uint64   `json:"sequence"`
}

// Browser runs product queries for one session. Starting a query cancels
// the previous in-flight one, and any response that is not from the latest
// query is discarded with ErrStaleQuery.
type Browser struct {
	lister   Lister
	pageSize int

	mu     sync.Mutex
	seq    uint64
	cancel context.CancelFunc
}

func NewBrowser(lister Lister, pageSize int) *Browser {
	if pageSize <= 0 {
		pageSize = 9
	}
	return &Browser{lister: lister, pageSize: pageSize}
}

func (b *Browser) PageSize() int { return b.pageSize }

func (b *Browser) Browse(ctx context.Context, q Query, page int) (Result, error) {
	if err := q.Validate(); err != nil {
		return Result{}, err
	}

	ctx, cancel := context.WithCancel(ctx)
	seq := b.begin(cancel)
	defer b.finish(seq, cancel)

	// Category is applied locally so the sidebar sees every category
	// within the price range.
	upstream := q
	upstream.Category = ""

	products, err := b.lister.ListProducts(ctx, upstream)
	if !b.isLatest(seq) {
		return Result{}, ErrStaleQuery
	}
	if err != nil {
		return Result{}, err
	}

	base := Filter(products, upstream)
	pg, err := Select(base, q, page, b.pageSize)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Page:       pg,
		Categories: Categories(base),
		Sequence:   seq,
	}, nil
}

func (b *Browser) begin(cancel context.CancelFunc) uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.cancel != nil {
		b.cancel()
	}
	b.seq++
	b.cancel = cancel
	return b.seq
}

func (b *Browser) finish(seq uint64, cancel context.CancelFunc) {
	b.mu.Lock()
	if b.seq == seq {
		b.cancel = nil
	}
	b.mu.Unlock()
	cancel()
}

func (b *Browser) isLatest(seq uint64) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.seq == seq
}
