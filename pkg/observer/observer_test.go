package observer_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ngraph-go/ngraph/pkg/observer"
)

type recordingObserver struct {
	mu     sync.Mutex
	events []observer.Event
}

func (r *recordingObserver) OnEvent(ctx context.Context, event observer.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *recordingObserver) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

func TestManager_NotifyFansOutToEveryObserver(t *testing.T) {
	a := &recordingObserver{}
	b := &recordingObserver{}
	m := observer.NewManagerWithObservers(a, b)

	m.Notify(context.Background(), observer.Event{Type: observer.EventDocumentLoadStart, Status: observer.StatusStarted})

	require.Eventually(t, func() bool {
		return a.count() == 1 && b.count() == 1
	}, time.Second, time.Millisecond)
}

func TestManager_RegisterIgnoresNil(t *testing.T) {
	m := observer.NewManager()
	m.Register(nil)
	assert.False(t, m.HasObservers())
	assert.Equal(t, 0, m.Count())
}

func TestManager_NotifySurvivesPanickingObserver(t *testing.T) {
	m := observer.NewManager()
	m.Register(observerFunc(func(ctx context.Context, event observer.Event) {
		panic("boom")
	}))
	good := &recordingObserver{}
	m.Register(good)

	assert.NotPanics(t, func() {
		m.Notify(context.Background(), observer.Event{Type: observer.EventDocumentLoadEnd})
	})
	require.Eventually(t, func() bool { return good.count() == 1 }, time.Second, time.Millisecond)
}

type observerFunc func(ctx context.Context, event observer.Event)

func (f observerFunc) OnEvent(ctx context.Context, event observer.Event) { f(ctx, event) }

func TestNoOpObserver_DoesNothing(t *testing.T) {
	o := &observer.NoOpObserver{}
	assert.NotPanics(t, func() {
		o.OnEvent(context.Background(), observer.Event{})
	})
}
