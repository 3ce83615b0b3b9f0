package playback

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepAt(t *testing.T) {
	assert.Equal(t, "Dashboard Overview", StepAt(0).Title)
	assert.Equal(t, "Dashboard Overview", StepAt(14).Title)
	assert.Equal(t, "Time Period Filtering", StepAt(15).Title)
	assert.Equal(t, "Interactive Charts", StepAt(44).Title)
	assert.Equal(t, "Advanced Analytics", StepAt(105).Title)
	assert.Equal(t, "Advanced Analytics", StepAt(120).Title)
}

func TestSessionAdvancesAndAutoPauses(t *testing.T) {
	m := NewManager(3 * time.Second)
	m.tick = 2 * time.Millisecond

	st := m.Create()
	assert.True(t, st.Playing)
	assert.Equal(t, 0, st.Position)
	assert.Equal(t, 3, st.Duration)

	s, err := m.Get(st.ID)
	require.NoError(t, err)

	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if !s.State().Playing {
			break
		}
		time.Sleep(time.Millisecond)
	}
	got := s.State()
	assert.False(t, got.Playing, "playback should stop at the end")
	assert.Equal(t, 3, got.Position, "position is clamped at the duration")

	// resuming a finished session is a no-op
	s.Resume()
	assert.False(t, s.State().Playing)
}

func TestPauseStopsAdvancement(t *testing.T) {
	m := NewManager(time.Minute)
	m.tick = 2 * time.Millisecond

	st := m.Create()
	s, err := m.Get(st.ID)
	require.NoError(t, err)

	s.Pause()
	pos := s.State().Position
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, pos, s.State().Position)
	assert.False(t, s.State().Playing)

	// pause is idempotent
	s.Pause()
	assert.False(t, s.State().Playing)
}

func TestSeekClamps(t *testing.T) {
	m := NewManager(120 * time.Second)
	st := m.Create()
	s, _ := m.Get(st.ID)
	s.Pause()

	s.Seek(45)
	assert.Equal(t, 45, s.State().Position)
	assert.Equal(t, "Real-time Updates", s.State().Step.Title)

	s.Seek(-10)
	assert.Equal(t, 0, s.State().Position)

	s.Seek(9999)
	got := s.State()
	assert.Equal(t, 120, got.Position)
	assert.False(t, got.Playing, "seeking to the end pauses")
}

func TestManagerLifecycle(t *testing.T) {
	m := NewManager(0)
	st := m.Create()
	assert.Equal(t, int(DefaultDuration/time.Second), st.Duration)

	_, err := m.Get("nope")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, m.Close(st.ID))
	_, err = m.Get(st.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, m.Close(st.ID), ErrNotFound)
}

func TestShutdownPausesEverything(t *testing.T) {
	m := NewManager(time.Minute)
	m.tick = 2 * time.Millisecond

	a := m.Create()
	b := m.Create()
	sa, _ := m.Get(a.ID)
	sb, _ := m.Get(b.ID)

	m.Shutdown()
	assert.False(t, sa.State().Playing)
	assert.False(t, sb.State().Playing)

	_, err := m.Get(a.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
