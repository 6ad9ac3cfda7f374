package web

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_CommitReplaces(t *testing.T) {
	st := NewStore(0)
	_, ok := st.Get("a")
	assert.False(t, ok)

	require.True(t, st.Commit("a", st.Begin("a"), Entry{FileName: "one.xlsx"}))
	require.True(t, st.Commit("a", st.Begin("a"), Entry{FileName: "two.xlsx"}))
	e, ok := st.Get("a")
	require.True(t, ok)
	assert.Equal(t, "two.xlsx", e.FileName)

	_, ok = st.Get("b")
	assert.False(t, ok, "sessions are separate")
}

func TestStore_StaleUpload(t *testing.T) {
	st := NewStore(0)
	slow := st.Begin("a")
	fast := st.Begin("a")
	require.True(t, st.Commit("a", fast, Entry{FileName: "fast.xlsx"}))
	assert.False(t, st.Commit("a", slow, Entry{FileName: "slow.xlsx"}))
	e, _ := st.Get("a")
	assert.Equal(t, "fast.xlsx", e.FileName)

	assert.False(t, st.Reject("a", slow, "late failure"))
	assert.Empty(t, st.TakeNotice("a"))
}

func TestStore_RejectKeepsDataset(t *testing.T) {
	st := NewStore(0)
	require.True(t, st.Commit("a", st.Begin("a"), Entry{FileName: "good.xlsx"}))
	require.True(t, st.Reject("a", st.Begin("a"), "bad file"))

	e, ok := st.Get("a")
	require.True(t, ok)
	assert.Equal(t, "good.xlsx", e.FileName)
	assert.Equal(t, "bad file", st.TakeNotice("a"))
	assert.Empty(t, st.TakeNotice("a"), "shown once")
}

func TestStore_Expiry(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	st := NewStore(time.Hour)
	st.now = func() time.Time { return now }

	st.Commit("a", st.Begin("a"), Entry{FileName: "x.xlsx"})
	assert.Equal(t, 1, st.Len())

	now = now.Add(30 * time.Minute)
	_, ok := st.Get("a")
	assert.True(t, ok)

	now = now.Add(61 * time.Minute)
	assert.Equal(t, 0, st.Len())
	_, ok = st.Get("a")
	assert.False(t, ok)
}

func TestStore_Concurrent(t *testing.T) {
	st := NewStore(0)
	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			st.Commit("a", st.Begin("a"), Entry{FileName: string(rune('a' + i%26))})
		}()
	}
	wg.Wait()
	_, ok := st.Get("a")
	assert.True(t, ok)
}

func TestStore_SweepIsThrottled(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	st := NewStore(time.Hour)
	st.now = func() time.Time { return now }

	st.Begin("x") // sweeps, next sweep at 13:00
	now = now.Add(time.Minute)
	st.Commit("old", st.Begin("old"), Entry{FileName: "old.xlsx"})

	now = now.Add(59 * time.Minute) // 13:00
	st.Get("x")                     // sweeps, "old" is not expired yet
	require.Contains(t, st.sessions, "old")

	now = now.Add(30 * time.Minute) // 13:30
	st.Get("x")
	require.Contains(t, st.sessions, "old", "no sweep before 14:00")
	assert.True(t, st.expired(st.sessions["old"], now))

	now = now.Add(31 * time.Minute) // 14:01
	st.Get("x")
	assert.NotContains(t, st.sessions, "old")
	assert.Len(t, st.sessions, 1, "only x survives the sweep")
}

func TestStore_ExpiredSessionIsNotServed(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	st := NewStore(time.Hour)
	st.now = func() time.Time { return now }

	st.Get("b") // sweeps, next sweep at 13:00
	now = now.Add(10 * time.Minute)
	st.Commit("a", st.Begin("a"), Entry{FileName: "a.xlsx"})
	now = now.Add(50 * time.Minute) // 13:00
	st.Get("b")                     // sweeps, next sweep at 14:00
	now = now.Add(11 * time.Minute) // 13:11
	_, ok := st.Get("a")
	assert.False(t, ok)
}
