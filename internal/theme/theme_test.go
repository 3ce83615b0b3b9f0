package theme

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsDark(t *testing.T) {
	assert.Equal(t, Dark, New(nil).Get())
	assert.Equal(t, Dark, New(&MemStore{}).Get())
	assert.Equal(t, Dark, New(&MemStore{Value: "neon"}).Get())
}

func TestLoadsPersisted(t *testing.T) {
	assert.Equal(t, Light, New(&MemStore{Value: "light"}).Get())
}

func TestDoubleToggleRoundTrips(t *testing.T) {
	st := &MemStore{}
	m := New(st)

	v, err := m.Toggle()
	require.NoError(t, err)
	assert.Equal(t, Light, v)
	assert.Equal(t, "light", st.Value)

	v, err = m.Toggle()
	require.NoError(t, err)
	assert.Equal(t, Dark, v)
	assert.Equal(t, "dark", st.Value)
	assert.Equal(t, Dark, m.Get())
}

func TestSubscribersSeePersistedValue(t *testing.T) {
	st := &MemStore{}
	m := New(st)

	var got []Theme
	unsub := m.Subscribe(func(v Theme) {
		// persistence happens before notification
		assert.Equal(t, string(v), st.Value)
		got = append(got, v)
	})

	m.Toggle()
	m.Toggle()
	require.Equal(t, []Theme{Light, Dark}, got)

	unsub()
	m.Toggle()
	assert.Len(t, got, 2, "unsubscribed callback must not fire")
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.json")
	st := NewFileStore(path)

	_, err := st.Load()
	assert.Error(t, err, "missing file surfaces as an error, caller defaults")

	require.NoError(t, st.Save("light"))
	v, err := st.Load()
	require.NoError(t, err)
	assert.Equal(t, "light", v)

	assert.Equal(t, Light, New(st).Get())
}
