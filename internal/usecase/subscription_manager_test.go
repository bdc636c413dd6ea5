package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"lavacar_xpto/internal/domain/entities"
)

// fakeChangeFeed hands out one event channel per Subscribe call and records
// how many are still open.
type fakeChangeFeed struct {
	mu     sync.Mutex
	opened int
	closed int
	events chan entities.OrderChangeEvent
}

func newFakeChangeFeed() *fakeChangeFeed {
	return &fakeChangeFeed{}
}

func (f *fakeChangeFeed) Subscribe(_ context.Context, _ string) (<-chan entities.OrderChangeEvent, func(), error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.opened++
	ch := make(chan entities.OrderChangeEvent, 16)
	f.events = ch
	var once sync.Once
	stop := func() {
		once.Do(func() {
			f.mu.Lock()
			f.closed++
			f.mu.Unlock()
			close(ch)
		})
	}
	return ch, stop, nil
}

func (f *fakeChangeFeed) emit(ev entities.OrderChangeEvent) {
	f.mu.Lock()
	ch := f.events
	f.mu.Unlock()
	ch <- ev
}

// dropFeed simulates the upstream stream dying.
func (f *fakeChangeFeed) drop() {
	f.mu.Lock()
	ch := f.events
	f.mu.Unlock()
	close(ch)
}

func (f *fakeChangeFeed) counts() (opened, closed int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.opened, f.closed
}

func waitUpdate(t *testing.T, ch <-chan TrackedUpdate) TrackedUpdate {
	t.Helper()
	select {
	case u := <-ch:
		return u
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for a tracked update")
		return TrackedUpdate{}
	}
}

func trackedOrder(plate string, status entities.OrderStatus) *entities.WashOrder {
	return &entities.WashOrder{ID: "o-1", TenantID: "t-1", VehiclePlate: plate, Status: status}
}

func TestSubscriptionManager_TrackPlate(t *testing.T) {
	t.Run("updates replace the snapshot, terminal statuses included", func(t *testing.T) {
		feed := newFakeChangeFeed()
		m := NewSubscriptionManager(feed)

		updates := make(chan TrackedUpdate, 16)
		cancel, err := m.TrackPlate(context.Background(), "t-1", "abc-1234", func(u TrackedUpdate) { updates <- u })
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer cancel()

		feed.emit(entities.OrderChangeEvent{
			Type:  entities.OrderChangeUpdate,
			After: trackedOrder("ABC1234", entities.OrderStatusLavando),
		})
		u := waitUpdate(t, updates)
		if u.Order == nil || u.Order.Status != entities.OrderStatusLavando {
			t.Fatalf("expected a lavando snapshot, got %+v", u)
		}

		feed.emit(entities.OrderChangeEvent{
			Type:  entities.OrderChangeUpdate,
			After: trackedOrder("ABC1234", entities.OrderStatusEntregue),
		})
		u = waitUpdate(t, updates)
		if u.Order == nil || u.Order.Status != entities.OrderStatusEntregue {
			t.Fatalf("expected the terminal entregue snapshot, got %+v", u)
		}
		if u.Removed {
			t.Fatalf("a terminal status update is not a removal")
		}
	})

	t.Run("other plates are filtered out", func(t *testing.T) {
		feed := newFakeChangeFeed()
		m := NewSubscriptionManager(feed)

		updates := make(chan TrackedUpdate, 16)
		cancel, err := m.TrackPlate(context.Background(), "t-1", "ABC1234", func(u TrackedUpdate) { updates <- u })
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer cancel()

		feed.emit(entities.OrderChangeEvent{
			Type:  entities.OrderChangeUpdate,
			After: trackedOrder("ZZZ0000", entities.OrderStatusLavando),
		})
		feed.emit(entities.OrderChangeEvent{
			Type:  entities.OrderChangeUpdate,
			After: trackedOrder("ABC1234", entities.OrderStatusSecando),
		})

		u := waitUpdate(t, updates)
		if u.Order == nil || u.Order.VehiclePlate != "ABC1234" {
			t.Fatalf("expected only the tracked plate, got %+v", u)
		}
	})

	t.Run("record deletion is a removal", func(t *testing.T) {
		feed := newFakeChangeFeed()
		m := NewSubscriptionManager(feed)

		updates := make(chan TrackedUpdate, 16)
		cancel, err := m.TrackPlate(context.Background(), "t-1", "ABC1234", func(u TrackedUpdate) { updates <- u })
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer cancel()

		feed.emit(entities.OrderChangeEvent{
			Type:   entities.OrderChangeDelete,
			Before: trackedOrder("ABC1234", entities.OrderStatusAguardando),
		})
		u := waitUpdate(t, updates)
		if !u.Removed {
			t.Fatalf("expected Removed, got %+v", u)
		}
	})

	t.Run("feed drop surfaces as ErrFeedClosed", func(t *testing.T) {
		feed := newFakeChangeFeed()
		m := NewSubscriptionManager(feed)

		updates := make(chan TrackedUpdate, 16)
		cancel, err := m.TrackPlate(context.Background(), "t-1", "ABC1234", func(u TrackedUpdate) { updates <- u })
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer cancel()

		feed.drop()
		u := waitUpdate(t, updates)
		if !errors.Is(u.Err, ErrFeedClosed) {
			t.Fatalf("expected ErrFeedClosed, got %+v", u)
		}
	})

	t.Run("rejects an empty plate", func(t *testing.T) {
		m := NewSubscriptionManager(newFakeChangeFeed())
		_, err := m.TrackPlate(context.Background(), "t-1", " -- ", func(TrackedUpdate) {})
		if !errors.Is(err, ErrInvalidPlate) {
			t.Fatalf("expected ErrInvalidPlate, got %v", err)
		}
	})
}

func TestSubscriptionManager_WatchQueue(t *testing.T) {
	feed := newFakeChangeFeed()
	m := NewSubscriptionManager(feed)

	changes := make(chan struct{}, 16)
	cancel, err := m.WatchQueue(context.Background(), "t-1", func() { changes <- struct{}{} })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer cancel()

	// Queue watchers fire on every change, whatever the plate.
	feed.emit(entities.OrderChangeEvent{
		Type:  entities.OrderChangeInsert,
		After: trackedOrder("ZZZ0000", entities.OrderStatusAguardando),
	})
	select {
	case <-changes:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for a queue change notification")
	}
}

func TestSubscriptionManager_FeedLifecycle(t *testing.T) {
	t.Run("one tenant feed shared across subscribers, released with the last", func(t *testing.T) {
		feed := newFakeChangeFeed()
		m := NewSubscriptionManager(feed)

		cancelA, err := m.TrackPlate(context.Background(), "t-1", "ABC1234", func(TrackedUpdate) {})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		cancelB, err := m.WatchQueue(context.Background(), "t-1", func() {})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if opened, _ := feed.counts(); opened != 1 {
			t.Fatalf("expected one shared tenant feed, got %d", opened)
		}

		cancelA()
		if _, closed := feed.counts(); closed != 0 {
			t.Fatalf("feed released while a subscriber remains")
		}

		cancelB()
		if _, closed := feed.counts(); closed != 1 {
			t.Fatalf("expected the feed released with the last subscriber")
		}
	})

	t.Run("cancel is idempotent", func(t *testing.T) {
		feed := newFakeChangeFeed()
		m := NewSubscriptionManager(feed)

		cancelA, err := m.TrackPlate(context.Background(), "t-1", "ABC1234", func(TrackedUpdate) {})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		cancelB, err := m.TrackPlate(context.Background(), "t-1", "XYZ9876", func(TrackedUpdate) {})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		cancelA()
		cancelA()
		if _, closed := feed.counts(); closed != 0 {
			t.Fatalf("double cancel must not release the feed under subscriber B")
		}

		cancelB()
		if _, closed := feed.counts(); closed != 1 {
			t.Fatalf("expected the feed released once, counts=%v", closed)
		}
	})

	t.Run("a new subscription after release opens a fresh feed", func(t *testing.T) {
		feed := newFakeChangeFeed()
		m := NewSubscriptionManager(feed)

		cancel, err := m.TrackPlate(context.Background(), "t-1", "ABC1234", func(TrackedUpdate) {})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		cancel()

		updates := make(chan TrackedUpdate, 16)
		cancel2, err := m.TrackPlate(context.Background(), "t-1", "ABC1234", func(u TrackedUpdate) { updates <- u })
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer cancel2()

		if opened, _ := feed.counts(); opened != 2 {
			t.Fatalf("expected a second feed subscription, got %d", opened)
		}

		feed.emit(entities.OrderChangeEvent{
			Type:  entities.OrderChangeUpdate,
			After: trackedOrder("ABC1234", entities.OrderStatusLavando),
		})
		if u := waitUpdate(t, updates); u.Order == nil {
			t.Fatalf("expected updates to flow on the fresh feed, got %+v", u)
		}
	})
}
