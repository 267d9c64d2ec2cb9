package dock

import (
	"bytes"
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"dockspace/internal/telemetry"
)

// Store persists serialized layout snapshots.
type Store interface {
	// LoadLayout returns the saved snapshot, or (nil, nil) when none
	// exists yet.
	LoadLayout() ([]byte, error)
	SaveLayout(data []byte) error
}

// NoopStore discards snapshots and never has one to load.
type NoopStore struct{}

func (NoopStore) LoadLayout() ([]byte, error) { return nil, nil }
func (NoopStore) SaveLayout([]byte) error     { return nil }

// StateStore is the keyed read/write hook pair the host installs on a
// DockArea for panel state that lives outside the layout snapshot. The
// engine never chooses the medium; a file, a database, or anything
// key-value shaped works.
type StateStore interface {
	ReadState(ctx context.Context, key string) ([]byte, error)
	WriteState(ctx context.Context, key string, value []byte) error
}

// Saver debounces layout persistence. Notify and Flush must run on the
// goroutine that owns the layout; they encode the snapshot there, so the
// debounce timer only ever touches bytes. Snapshots identical to the
// last persisted one are skipped.
type Saver struct {
	area     *DockArea
	store    Store
	tracer   *telemetry.Tracer
	debounce time.Duration
	onError  func(error)

	mu      sync.Mutex
	timer   *time.Timer
	pending []byte
	last    []byte
	closed  bool
}

// NewSaver wires area to store. A debounce of 0 or less disables the
// timer; saves then only happen through Flush.
func NewSaver(area *DockArea, store Store, debounce time.Duration) *Saver {
	return &Saver{area: area, store: store, debounce: debounce}
}

// WithTracer attaches an optional trace pipeline to save operations.
func (s *Saver) WithTracer(t *telemetry.Tracer) *Saver {
	s.tracer = t
	return s
}

// WithErrorHook sets the callback for save failures on the timer path.
func (s *Saver) WithErrorHook(fn func(error)) *Saver {
	s.onError = fn
	return s
}

// Notify records that the layout changed and (re)arms the debounce
// timer. Consecutive changes within the debounce window coalesce into
// one save.
func (s *Saver) Notify() {
	snap, err := EncodeAreaState(s.area.Dump())
	if err != nil {
		s.fail(err)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	if s.pending == nil && bytes.Equal(snap, s.last) {
		return
	}
	s.pending = snap
	if s.debounce <= 0 {
		return
	}
	if s.timer == nil {
		s.timer = time.AfterFunc(s.debounce, s.flushPending)
	} else {
		s.timer.Reset(s.debounce)
	}
}

// Flush persists the current layout immediately, bypassing the debounce
// window. Unchanged layouts are not rewritten.
func (s *Saver) Flush() error {
	snap, err := EncodeAreaState(s.area.Dump())
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.pending = snap
	s.mu.Unlock()
	return s.save()
}

// Close stops the timer and persists any pending snapshot.
func (s *Saver) Close() error {
	s.mu.Lock()
	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
	}
	s.mu.Unlock()
	return s.save()
}

func (s *Saver) flushPending() {
	if err := s.save(); err != nil {
		s.fail(err)
	}
}

func (s *Saver) save() error {
	s.mu.Lock()
	snap := s.pending
	s.pending = nil
	if snap == nil || bytes.Equal(snap, s.last) {
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()

	_, end := s.tracer.Start(context.Background(), "layout.save",
		attribute.Int("layout.bytes", len(snap)))
	defer end()

	if err := s.store.SaveLayout(snap); err != nil {
		return err
	}
	s.mu.Lock()
	s.last = snap
	s.mu.Unlock()
	return nil
}

func (s *Saver) fail(err error) {
	if s.onError != nil {
		s.onError(err)
	}
}
