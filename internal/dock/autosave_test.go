package dock

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// countingStore is safe for the debounce timer goroutine to write while
// the test polls it.
type countingStore struct {
	mu    sync.Mutex
	data  []byte
	saves int
}

func (s *countingStore) LoadLayout() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data, nil
}

func (s *countingStore) SaveLayout(data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = append([]byte(nil), data...)
	s.saves++
	return nil
}

func (s *countingStore) saveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}

func (s *countingStore) snapshot() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data
}

func TestSaverFlushPersistsSnapshot(t *testing.T) {
	area := newTestArea(t)
	area.AddPanel(newTestPanel("A"), PlacementCenter, 0)
	store := &countingStore{}
	saver := NewSaver(area, store, 0)

	require.NoError(t, saver.Flush())
	require.Equal(t, 1, store.saveCount())

	decoded, err := DecodeAreaState(store.snapshot())
	require.NoError(t, err)
	require.True(t, area.Dump().Root.Equal(decoded.Root))
}

func TestSaverSkipsUnchangedSnapshots(t *testing.T) {
	area := newTestArea(t)
	area.AddPanel(newTestPanel("A"), PlacementCenter, 0)
	store := &countingStore{}
	saver := NewSaver(area, store, 0)

	require.NoError(t, saver.Flush())
	require.NoError(t, saver.Flush())
	require.Equal(t, 1, store.saveCount(), "identical snapshot must not be rewritten")

	area.AddPanel(newTestPanel("B"), PlacementCenter, 0)
	require.NoError(t, saver.Flush())
	require.Equal(t, 2, store.saveCount())
}

func TestSaverDebounceCoalescesBursts(t *testing.T) {
	area := newTestArea(t)
	store := &countingStore{}
	saver := NewSaver(area, store, 20*time.Millisecond)
	area.SetOnLayoutChanged(saver.Notify)

	a := newTestPanel("A")
	area.AddPanel(a, PlacementCenter, 0)
	require.NoError(t, area.SplitPanel(a, SplitRight, newTestPanel("B"), 0.5))
	require.NoError(t, area.SplitPanel(a, SplitBelow, newTestPanel("C"), 0.5))

	require.Equal(t, 0, store.saveCount(), "nothing should persist inside the window")

	require.Eventually(t, func() bool { return store.saveCount() == 1 },
		time.Second, 5*time.Millisecond, "burst should coalesce into one save")

	decoded, err := DecodeAreaState(store.snapshot())
	require.NoError(t, err)
	require.True(t, area.Dump().Root.Equal(decoded.Root), "the final state wins")
}

func TestSaverNotifyWithoutDebounceWaitsForFlush(t *testing.T) {
	area := newTestArea(t)
	store := &countingStore{}
	saver := NewSaver(area, store, 0)
	area.SetOnLayoutChanged(saver.Notify)

	area.AddPanel(newTestPanel("A"), PlacementCenter, 0)
	require.Equal(t, 0, store.saveCount())

	require.NoError(t, saver.Flush())
	require.Equal(t, 1, store.saveCount())
}

func TestSaverClosePersistsPending(t *testing.T) {
	area := newTestArea(t)
	store := &countingStore{}
	saver := NewSaver(area, store, time.Hour)
	area.SetOnLayoutChanged(saver.Notify)

	area.AddPanel(newTestPanel("A"), PlacementCenter, 0)
	require.NoError(t, saver.Close())
	require.Equal(t, 1, store.saveCount(), "Close must not wait out the debounce window")
}

func TestSaverNotifyAfterCloseIsIgnored(t *testing.T) {
	area := newTestArea(t)
	store := &countingStore{}
	saver := NewSaver(area, store, time.Hour)
	require.NoError(t, saver.Close())

	area.SetOnLayoutChanged(saver.Notify)
	area.AddPanel(newTestPanel("A"), PlacementCenter, 0)
	require.NoError(t, saver.Close())
	require.Equal(t, 0, store.saveCount())
}
