package history

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func open(t *testing.T) {
	t.Helper()

	Open(Config{File: filepath.Join(t.TempDir(), "history.db")})
	t.Cleanup(func() {
		if Enabled() {
			require.NoError(t, Close())
		}
	})
}

func TestOpenCloseEnabled(t *testing.T) {
	assert.False(t, Enabled())
	open(t)
	assert.True(t, Enabled())

	require.NoError(t, Close())
	assert.False(t, Enabled())
}

func TestOpenRequiresFile(t *testing.T) {
	assert.Panics(t, func() {
		Open(Config{})
	})
}

func TestAppendAndAll(t *testing.T) {
	open(t)

	base := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)
	want := []Record{
		{Time: base, Action: "encrypt", Method: "table", Rotation: 3, Chars: 11},
		{Time: base.Add(time.Second), Action: "decrypt", Method: "table", Rotation: 3, Chars: 11},
		{Time: base.Add(2 * time.Second), Action: "encrypt", Method: "modular", Rotation: -15, Chars: 7},
	}

	// Append out of order; the timestamp keys restore chronology.
	require.NoError(t, Append(want[2]))
	require.NoError(t, Append(want[0]))
	require.NoError(t, Append(want[1]))

	var got []Record
	for r := range All() {
		got = append(got, r)
	}
	require.Len(t, got, len(want))
	for i := range want {
		assert.True(t, got[i].Time.Equal(want[i].Time))
		assert.Equal(t, want[i].Action, got[i].Action)
		assert.Equal(t, want[i].Method, got[i].Method)
		assert.Equal(t, want[i].Rotation, got[i].Rotation)
		assert.Equal(t, want[i].Chars, got[i].Chars)
	}
}

func TestAllStopsEarly(t *testing.T) {
	open(t)

	now := time.Now()
	for i := range 5 {
		require.NoError(t, Append(Record{
			Time:   now.Add(time.Duration(i) * time.Second),
			Action: "encrypt", Method: "table", Rotation: 3,
		}))
	}

	n := 0
	for range All() {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}

func TestAppendNotOpenedPanics(t *testing.T) {
	assert.Panics(t, func() {
		Append(Record{Time: time.Now()})
	})
}
