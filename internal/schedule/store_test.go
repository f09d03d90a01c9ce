package schedule

import (
	"testing"
	"time"

	"confsched/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreBeforeFirstLoad(t *testing.T) {
	t.Parallel()

	store := NewStore()

	assert.False(t, store.Ready())
	assert.Nil(t, store.Index())
	assert.Nil(t, store.Rooms())
	assert.Nil(t, store.RoomsCanonical())
	assert.Nil(t, store.EventsInRoom("larry"))
	assert.Empty(t, store.CurrentByRoom("2000-01-01T01:00:00"))
	assert.Empty(t, store.NextByRoom("2000-01-01T01:00:00"))

	status := store.Status()
	assert.False(t, status.Loaded)
	assert.Zero(t, status.EventCount)
}

func TestStoreSwap(t *testing.T) {
	t.Parallel()

	store := NewStore()
	fetchedAt := time.Date(2000, 1, 1, 0, 30, 0, 0, time.UTC)

	store.Swap(New(stoogeFixture(), Options{}), fetchedAt)

	require.True(t, store.Ready())

	assert.Equal(t, []string{"Larry (Stooge)", "Moe (Stooge)"}, store.Rooms())
	assert.Equal(t, []string{"larry", "moe"}, store.RoomsCanonical())

	events := store.EventsInRoom("Moe")
	require.Len(t, events, 2)
	assert.Equal(t, "Talk Two", events[0].Name)

	current := store.CurrentByRoom("2000-01-01T02:50:00")
	assert.Equal(t, "Room Changeover", current["larry"].Name)

	next := store.NextByRoom("2000-01-01T02:50:00")
	assert.Equal(t, "Talk Four", next["moe"].Name)

	status := store.Status()
	assert.True(t, status.Loaded)
	assert.Equal(t, fetchedAt, status.FetchedAt)
	assert.Equal(t, 5, status.EventCount)
	assert.Equal(t, 2, status.RoomCount)
}

func TestStoreSwapReplacesIndex(t *testing.T) {
	t.Parallel()

	store := NewStore()

	store.Swap(New(stoogeFixture(), Options{}), time.Now())
	store.Swap(New([]models.Event{
		{Start: "2000-01-02T01:00:00", End: "2000-01-02T02:00:00", Name: "Only talk", Kind: models.KindTalk, Rooms: []string{"Curly"}, Abstract: strPtr("x")},
	}, Options{}), time.Now())

	assert.Equal(t, []string{"Curly"}, store.Rooms())
	assert.Equal(t, 1, store.Status().EventCount)
}
