package catalog

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ListerMock struct {
	mu    sync.Mutex
	calls []Query

	ListProductsFunc func(ctx context.Context, q Query) ([]Product, error)
}

func (m *ListerMock) ListProducts(ctx context.Context, q Query) ([]Product, error) {
	m.mu.Lock()
	m.calls = append(m.calls, q)
	m.mu.Unlock()
	if m.ListProductsFunc != nil {
		return m.ListProductsFunc(ctx, q)
	}
	return nil, nil
}

func (m *ListerMock) Calls() []Query {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Query(nil), m.calls...)
}

func TestBrowserBrowse(t *testing.T) {
	t.Run("applies category locally and derives categories from the wider set", func(t *testing.T) {
		lister := &ListerMock{ListProductsFunc: func(ctx context.Context, q Query) ([]Product, error) {
			return sampleProducts(), nil
		}}
		b := NewBrowser(lister, 9)

		res, err := b.Browse(context.Background(), Query{Category: "Electronics", Sort: SortNameAsc}, 1)
		require.NoError(t, err)

		calls := lister.Calls()
		require.Len(t, calls, 1)
		assert.Empty(t, calls[0].Category)
		assert.Equal(t, SortNameAsc, calls[0].Sort)

		assert.Equal(t, []int64{6, 1}, ids(res.Items))
		assert.Equal(t, []string{"Books", "Electronics", "Grocery"}, res.Categories)
		assert.Equal(t, uint64(1), res.Sequence)
	})

	t.Run("re-applies price bounds when upstream ignores them", func(t *testing.T) {
		lister := &ListerMock{ListProductsFunc: func(ctx context.Context, q Query) ([]Product, error) {
			return sampleProducts(), nil
		}}
		b := NewBrowser(lister, 9)

		res, err := b.Browse(context.Background(), Query{MinPrice: bound("10"), MaxPrice: bound("50")}, 1)
		require.NoError(t, err)
		assert.Equal(t, []int64{4, 6, 7}, ids(res.Items))
		assert.Equal(t, []string{"Books", "Electronics"}, res.Categories)
	})

	t.Run("invalid query never reaches upstream", func(t *testing.T) {
		lister := &ListerMock{}
		b := NewBrowser(lister, 9)

		_, err := b.Browse(context.Background(), Query{MinPrice: bound("5"), MaxPrice: bound("1")}, 1)
		require.ErrorIs(t, err, ErrInvalidQuery)
		assert.Empty(t, lister.Calls())
	})

	t.Run("upstream error surfaces", func(t *testing.T) {
		boom := errors.New("fetch failed")
		lister := &ListerMock{ListProductsFunc: func(ctx context.Context, q Query) ([]Product, error) {
			return nil, boom
		}}
		b := NewBrowser(lister, 9)

		_, err := b.Browse(context.Background(), Query{}, 1)
		require.ErrorIs(t, err, boom)
	})
}

func TestBrowserDiscardsStaleResponses(t *testing.T) {
	firstStarted := make(chan struct{})
	releaseFirst := make(chan struct{})

	var n int
	var mu sync.Mutex
	lister := &ListerMock{ListProductsFunc: func(ctx context.Context, q Query) ([]Product, error) {
		mu.Lock()
		n++
		call := n
		mu.Unlock()

		if call == 1 {
			close(firstStarted)
			// Responds late regardless of cancellation.
			<-releaseFirst
			return []Product{product(1, "old", "1", "a")}, nil
		}
		return []Product{product(2, "new", "1", "a")}, nil
	}}
	b := NewBrowser(lister, 9)

	type outcome struct {
		res Result
		err error
	}
	firstDone := make(chan outcome, 1)
	go func() {
		res, err := b.Browse(context.Background(), Query{}, 1)
		firstDone <- outcome{res, err}
	}()

	<-firstStarted
	second, err := b.Browse(context.Background(), Query{Sort: SortNameAsc}, 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{2}, ids(second.Items))
	assert.Equal(t, uint64(2), second.Sequence)

	close(releaseFirst)
	select {
	case out := <-firstDone:
		require.ErrorIs(t, out.err, ErrStaleQuery)
	case <-time.After(time.Second):
		t.Fatal("first browse did not return")
	}
}

func TestBrowserCancelsSupersededFetch(t *testing.T) {
	firstStarted := make(chan struct{})
	var once sync.Once

	lister := &ListerMock{ListProductsFunc: func(ctx context.Context, q Query) ([]Product, error) {
		if q.Sort == SortDefault {
			once.Do(func() { close(firstStarted) })
			<-ctx.Done()
			return nil, ctx.Err()
		}
		return sampleProducts(), nil
	}}
	b := NewBrowser(lister, 9)

	errCh := make(chan error, 1)
	go func() {
		_, err := b.Browse(context.Background(), Query{}, 1)
		errCh <- err
	}()

	<-firstStarted
	_, err := b.Browse(context.Background(), Query{Sort: SortPriceAsc}, 1)
	require.NoError(t, err)

	select {
	case err := <-errCh:
		require.ErrorIs(t, err, ErrStaleQuery)
	case <-time.After(time.Second):
		t.Fatal("superseded browse was not cancelled")
	}
}
