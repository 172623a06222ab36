package client

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedInfo(api *fakeAPI, title string) {
	api.mu.Lock()
	defer api.mu.Unlock()
	api.nextID++
	api.docs["info"] = append(api.docs["info"], map[string]interface{}{
		"id":          "aaaaaaaaaaaaaaaaaaaaaaaa",
		"title":       title,
		"description": "seeded",
		"category":    "info",
		"createdAt":   time.Now().UTC().Format(time.RFC3339),
	})
}

func TestCollection_Fetch(t *testing.T) {
	api := newFakeAPI()
	seedInfo(api, "Jadwal UAS")
	srv := api.server()
	defer srv.Close()

	cache := NewDataCache(New(srv.URL))
	require.NoError(t, cache.Info.Fetch(context.Background()))

	items := cache.Info.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Jadwal UAS", items[0].Title)
	assert.False(t, cache.Info.Loading())
	assert.Empty(t, cache.Info.Err())
}

func TestCollection_FetchFailure_KeepsPreviousItems(t *testing.T) {
	api := newFakeAPI()
	seedInfo(api, "Jadwal UAS")
	srv := api.server()
	defer srv.Close()

	cache := NewDataCache(New(srv.URL))
	require.NoError(t, cache.Info.Fetch(context.Background()))

	api.mu.Lock()
	api.failList["info"] = true
	api.mu.Unlock()

	err := cache.Info.Fetch(context.Background())
	require.Error(t, err)

	assert.Len(t, cache.Info.Items(), 1, "previous records survive a failed refresh")
	assert.Equal(t, "Gagal mengambil data info", cache.Info.Err())
	assert.False(t, cache.Info.Loading())
}

func TestCollection_Create_RefreshesFromServer(t *testing.T) {
	api := newFakeAPI()
	srv := api.server()
	defer srv.Close()

	cache := NewDataCache(New(srv.URL))
	err := cache.Info.Create(context.Background(), map[string]string{
		"title":       "Lomba 17an",
		"description": "Pendaftaran dibuka",
		"category":    "event",
	})
	require.NoError(t, err)

	items := cache.Info.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Lomba 17an", items[0].Title)
	assert.NotEmpty(t, items[0].ID, "id comes from the server, not the caller")
	assert.False(t, items[0].CreatedAt.IsZero())

	api.mu.Lock()
	listCalls := api.listCalls["info"]
	api.mu.Unlock()
	assert.Equal(t, 1, listCalls, "create must be followed by a list refresh")
}

func TestCollection_CreateFailure_SetsBannerAndKeepsItems(t *testing.T) {
	api := newFakeAPI()
	seedInfo(api, "Jadwal UAS")
	srv := api.server()
	defer srv.Close()

	cache := NewDataCache(New(srv.URL))
	require.NoError(t, cache.Info.Fetch(context.Background()))

	err := cache.Info.Create(context.Background(), map[string]string{"title": ""})
	require.Error(t, err)

	assert.Equal(t, "Gagal membuat info baru", cache.Info.Err())
	assert.Len(t, cache.Info.Items(), 1)
	assert.False(t, cache.Info.Loading())
}

func TestCollection_UpdateAndDelete_RefreshFromServer(t *testing.T) {
	api := newFakeAPI()
	srv := api.server()
	defer srv.Close()

	cache := NewDataCache(New(srv.URL))
	ctx := context.Background()

	require.NoError(t, cache.Gallery.Create(ctx, map[string]string{
		"title":    "Makrab 2024",
		"imageUrl": "https://example.com/makrab.jpg",
		"category": "makrab",
	}))
	items := cache.Gallery.Items()
	require.Len(t, items, 1)
	id := items[0].ID

	require.NoError(t, cache.Gallery.Update(ctx, id, map[string]string{"title": "Makrab 2025"}))
	items = cache.Gallery.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Makrab 2025", items[0].Title)

	require.NoError(t, cache.Gallery.Delete(ctx, id))
	assert.Empty(t, cache.Gallery.Items())
}

func TestCollection_DeleteMissing_SurfacesNotFound(t *testing.T) {
	api := newFakeAPI()
	srv := api.server()
	defer srv.Close()

	cache := NewDataCache(New(srv.URL))
	err := cache.Agenda.Delete(context.Background(), "aaaaaaaaaaaaaaaaaaaaaaaa")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "Gagal menghapus agenda", cache.Agenda.Err())
}

func TestDataCache_Start_KindsFailIndependently(t *testing.T) {
	api := newFakeAPI()
	seedInfo(api, "Jadwal UAS")
	api.failList["gallery"] = true
	srv := api.server()
	defer srv.Close()

	cache := NewDataCache(New(srv.URL))
	cache.Start(context.Background())

	assert.Eventually(t, func() bool {
		return len(cache.Info.Items()) == 1 && cache.Gallery.Err() != ""
	}, 2*time.Second, 10*time.Millisecond)

	assert.Equal(t, "Gagal mengambil data galeri", cache.Gallery.Err())
	assert.Empty(t, cache.Info.Err(), "one kind failing does not touch the others")

	assert.Eventually(t, func() bool {
		return !cache.Directory.Loading() && !cache.Agenda.Loading() && !cache.About.Loading()
	}, 2*time.Second, 10*time.Millisecond)
}

func TestDataCache_SubscribeAndUnsubscribe(t *testing.T) {
	api := newFakeAPI()
	srv := api.server()
	defer srv.Close()

	cache := NewDataCache(New(srv.URL))

	var calls atomic.Int64
	unsubscribe := cache.Subscribe(func() { calls.Add(1) })

	require.NoError(t, cache.Info.Fetch(context.Background()))
	assert.Greater(t, calls.Load(), int64(0), "subscribers hear about state changes")

	unsubscribe()
	before := calls.Load()
	require.NoError(t, cache.Info.Fetch(context.Background()))
	assert.Equal(t, before, calls.Load(), "unsubscribed listeners stay silent")
}
