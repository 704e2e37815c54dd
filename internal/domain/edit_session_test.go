package domain_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	adaptermocks "hotedit.dev/pkg/hotedit/internal/adapter/mocks"
	"hotedit.dev/pkg/hotedit/internal/domain"
	m "hotedit.dev/pkg/hotedit/internal/model"
)

// blockingProvider serves frames once release is closed and counts calls.
type blockingProvider struct {
	calls   atomic.Int32
	release chan struct{}
	frames  []m.ActiveStatementReport
	err     error
}

func (p *blockingProvider) ActiveStatements(ctx context.Context) ([]m.ActiveStatementReport, error) {
	p.calls.Add(1)

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-p.release:
	}

	if p.err != nil {
		return nil, p.err
	}

	return p.frames, nil
}

func singleDocLookup(t *testing.T) *adaptermocks.MockDocumentLookup {
	lookup := adaptermocks.NewMockDocumentLookup(t)
	lookup.EXPECT().Documents(mock.Anything, mock.Anything).
		Return([]m.DocumentInfo{doc("a", "/src/a.go", "p", true)}, nil).Maybe()

	return lookup
}

func TestEditSession_BaselineIsComputedOnce(t *testing.T) {
	provider := &blockingProvider{
		release: make(chan struct{}),
		frames:  []m.ActiveStatementReport{frame(1, 1, 0, "/src/a.go", m.NewSpan(1, 0, 1, 5), m.FlagLeafFrame)},
	}

	session := domain.NewEditSession("s", provider, singleDocLookup(t), domain.NewResolver(1), nil)

	const callers = 8

	var wg sync.WaitGroup

	results := make([]*m.Baseline, callers)
	errs := make([]error, callers)

	for i := range callers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			results[i], errs[i] = session.Baseline(context.Background())
		}()
	}

	close(provider.release)
	wg.Wait()

	for i := range callers {
		require.NoError(t, errs[i])
		assert.Same(t, results[0], results[i])
	}

	again, err := session.Baseline(context.Background())
	require.NoError(t, err)
	assert.Same(t, results[0], again)
	assert.Equal(t, int32(1), provider.calls.Load())
	assert.Equal(t, 1, again.Len())
}

func TestEditSession_SequentialCallsReuseBaseline(t *testing.T) {
	provider := &blockingProvider{
		release: make(chan struct{}),
		frames:  []m.ActiveStatementReport{frame(1, 1, 0, "/src/a.go", m.NewSpan(1, 0, 1, 5), m.FlagLeafFrame)},
	}
	close(provider.release)

	session := domain.NewEditSession("s", provider, singleDocLookup(t), domain.NewResolver(1), nil)

	first, err := session.Baseline(context.Background())
	require.NoError(t, err)

	second, err := session.Baseline(context.Background())
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, int32(1), provider.calls.Load())
	assert.Equal(t, "s", session.Name())
}

func TestEditSession_FailureIsNotCached(t *testing.T) {
	provider := &blockingProvider{release: make(chan struct{}), err: errors.New("debuggee busy")}
	close(provider.release)

	session := domain.NewEditSession("s", provider, singleDocLookup(t), domain.NewResolver(1), nil)

	_, err := session.Baseline(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read active statements")

	provider.err = nil
	provider.frames = []m.ActiveStatementReport{frame(1, 1, 0, "/src/a.go", m.NewSpan(1, 0, 1, 5), m.FlagLeafFrame)}

	baseline, err := session.Baseline(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, baseline.Len())
	assert.Equal(t, int32(2), provider.calls.Load())
}

func TestEditSession_CallerCancellation(t *testing.T) {
	provider := &blockingProvider{release: make(chan struct{})}
	defer close(provider.release)

	session := domain.NewEditSession("s", provider, singleDocLookup(t), domain.NewResolver(1), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := session.Baseline(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestEditSession_CancelledStarterDoesNotFailOtherCallers(t *testing.T) {
	provider := &blockingProvider{
		release: make(chan struct{}),
		frames:  []m.ActiveStatementReport{frame(1, 1, 0, "/src/a.go", m.NewSpan(1, 0, 1, 5), m.FlagLeafFrame)},
	}

	session := domain.NewEditSession("s", provider, singleDocLookup(t), domain.NewResolver(1), nil)

	starterCtx, cancelStarter := context.WithCancel(context.Background())
	starterErr := make(chan error, 1)

	go func() {
		_, err := session.Baseline(starterCtx)
		starterErr <- err
	}()

	require.Eventually(t, func() bool { return provider.calls.Load() == 1 }, time.Second, time.Millisecond)

	type outcome struct {
		baseline *m.Baseline
		err      error
	}

	other := make(chan outcome, 1)

	go func() {
		baseline, err := session.Baseline(context.Background())
		other <- outcome{baseline: baseline, err: err}
	}()

	cancelStarter()
	require.ErrorIs(t, <-starterErr, context.Canceled)

	close(provider.release)

	result := <-other
	require.NoError(t, result.err)
	assert.Equal(t, 1, result.baseline.Len())
	assert.Equal(t, int32(1), provider.calls.Load())
}

func TestEditSession_BaseExceptionRegions(t *testing.T) {
	provider := &blockingProvider{
		release: make(chan struct{}),
		frames: []m.ActiveStatementReport{
			frame(1, 1, 0, "/src/a.go", m.NewSpan(3, 4, 3, 10), m.FlagLeafFrame),
			frame(2, 2, 0, "/src/b.go", m.NewSpan(8, 4, 8, 10), m.FlagNonLeafFrame),
			frame(3, 3, 0, "/src/c.go", m.NewSpan(1, 0, 1, 2), m.FlagNonLeafFrame),
		},
	}
	close(provider.release)

	lookup := adaptermocks.NewMockDocumentLookup(t)
	lookup.EXPECT().Documents(mock.Anything, m.Path("/src/a.go")).Return([]m.DocumentInfo{doc("a", "/src/a.go", "p", true)}, nil)
	lookup.EXPECT().Documents(mock.Anything, m.Path("/src/b.go")).Return([]m.DocumentInfo{doc("b", "/src/b.go", "p", true)}, nil)
	lookup.EXPECT().Documents(mock.Anything, m.Path("/src/c.go")).Return([]m.DocumentInfo{doc("c", "/src/c.go", "p", true)}, nil)

	oracle := adaptermocks.NewMockDocumentStateOracle(t)
	oracle.EXPECT().DocumentState(mock.Anything, m.DocumentID("a")).Return(m.DocumentMatching, nil)
	oracle.EXPECT().DocumentState(mock.Anything, m.DocumentID("b")).Return(m.DocumentOutOfSync, nil)
	oracle.EXPECT().DocumentState(mock.Anything, m.DocumentID("c")).Return(m.DocumentMatching, nil)

	discovery := adaptermocks.NewMockRegionDiscovery(t)
	discovery.EXPECT().HandlerRegions(mock.Anything, m.DocumentID("a")).Return("1", []m.Span{m.NewSpan(2, 0, 5, 1)}, nil)
	discovery.EXPECT().HandlerRegions(mock.Anything, m.DocumentID("c")).Return("", nil, errors.New("unreadable"))

	session := domain.NewEditSession("s", provider, lookup, domain.NewResolver(2), domain.NewRegionLocator(oracle, discovery))

	regions, err := session.BaseExceptionRegions(context.Background())
	require.NoError(t, err)
	require.Len(t, regions, 3)

	assert.Equal(t, m.AvailableRegions([]m.Span{m.NewSpan(2, 0, 5, 1)}), regions[0])
	assert.False(t, regions[1].Available)
	assert.False(t, regions[2].Available)

	baseline, err := session.Baseline(context.Background())
	require.NoError(t, err)

	first, _ := baseline.Statement(0)
	single, err := session.ExceptionRegions(context.Background(), first)
	require.NoError(t, err)
	assert.Equal(t, regions[0], single)
}
