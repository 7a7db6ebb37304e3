package catalog_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"missingfit/internal/catalog"
	"missingfit/internal/domain"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeFetcher struct {
	items []domain.Item
	err   error
	calls atomic.Int32
	gate  chan struct{}
}

func (f *fakeFetcher) FetchItems(ctx context.Context) ([]domain.Item, error) {
	f.calls.Add(1)
	if f.gate != nil {
		select {
		case <-f.gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return f.items, f.err
}

type countingObserver struct {
	mu     sync.Mutex
	counts []int
	errs   []error
}

func (o *countingObserver) CatalogLoaded(n int, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.counts = append(o.counts, n)
	o.errs = append(o.errs, err)
}

func sampleItems() []domain.Item {
	cats := []string{"gown", "saree", "gown", "lehenga", "gown", "saree", "anarkali", "gown", "sharara", "saree"}
	items := make([]domain.Item, len(cats))
	for i, c := range cats {
		items[i] = domain.Item{
			ID:       string(rune('a' + i)),
			Name:     "Dress " + string(rune('A'+i)),
			Category: c,
			Status:   domain.StatusAvailable,
			Images:   []string{"https://img.test/" + string(rune('a'+i)) + "/1.jpg"},
		}
	}
	return items
}

func TestStoreLoadSuccess(t *testing.T) {
	src := &fakeFetcher{items: sampleItems()}
	obs := &countingObserver{}
	s := catalog.NewStore(src).WithObserver(obs)

	assert.Empty(t, s.Items(), "empty before load")

	got, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 10)
	assert.Equal(t, sampleItems(), s.Items())
	assert.EqualValues(t, 1, src.calls.Load())

	st := s.Status()
	assert.Equal(t, 10, st.Count)
	assert.Equal(t, 1, st.Loads)
	assert.NoError(t, st.Err)
	assert.False(t, st.LoadedAt.IsZero())
	assert.Equal(t, []int{10}, obs.counts)

	select {
	case <-s.Ready():
	default:
		t.Fatal("ready should be closed after the first load")
	}
}

func TestStoreLoadFailureLeavesEmptyCatalog(t *testing.T) {
	boom := errors.New("connection refused")
	s := catalog.NewStore(&fakeFetcher{err: boom})

	got, err := s.Load(context.Background())
	require.ErrorIs(t, err, boom)
	assert.Empty(t, got)
	assert.Empty(t, s.Items())
	assert.ErrorIs(t, s.Status().Err, boom)

	// no grid content and no panic for any derived view
	v := catalog.NewBrowse(catalog.CollectionPager).View(s.Items())
	assert.Empty(t, v.Items)
	assert.False(t, v.CanRevealMore)
}

func TestStoreFailedReloadEmptiesSnapshot(t *testing.T) {
	src := &fakeFetcher{items: sampleItems()}
	s := catalog.NewStore(src)
	_, err := s.Load(context.Background())
	require.NoError(t, err)

	src.items, src.err = nil, errors.New("502 bad gateway")
	_, err = s.Load(context.Background())
	require.Error(t, err)
	assert.Empty(t, s.Items())
	assert.Equal(t, 2, s.Status().Loads)
}

func TestStoreConcurrentLoadsShareOneFetch(t *testing.T) {
	src := &fakeFetcher{items: sampleItems(), gate: make(chan struct{})}
	s := catalog.NewStore(src)

	var wg, started sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		started.Add(1)
		go func() {
			defer wg.Done()
			started.Done()
			_, _ = s.Load(context.Background())
		}()
	}
	started.Wait()
	require.Eventually(t, func() bool { return src.calls.Load() == 1 }, time.Second, time.Millisecond)
	// give the other callers time to join the in-flight fetch
	time.Sleep(50 * time.Millisecond)
	close(src.gate)
	wg.Wait()

	assert.EqualValues(t, 1, src.calls.Load())
	assert.Len(t, s.Items(), 10)
}

func TestStoreCancelledLoadIsDiscarded(t *testing.T) {
	src := &fakeFetcher{items: sampleItems(), gate: make(chan struct{})}
	s := catalog.NewStore(src)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := s.Load(ctx)
		done <- err
	}()
	require.Eventually(t, func() bool { return src.calls.Load() == 1 }, time.Second, time.Millisecond)
	cancel()

	err := <-done
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, s.Items())
	assert.Equal(t, 0, s.Status().Loads)
	<-s.Ready()
}

func TestFind(t *testing.T) {
	items := sampleItems()
	it, ok := catalog.Find(items, "c")
	require.True(t, ok)
	assert.Equal(t, "Dress C", it.Name)

	_, ok = catalog.Find(items, "zz")
	assert.False(t, ok)
}
