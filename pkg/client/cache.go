package client

import (
	"context"
	"sync"

	"classweb-backend/pkg/logger"
)

// DataCache is the in-memory mirror of the five server collections that
// presentation code reads. It is the single place that performs writes:
// every create/update/delete re-fetches the full collection before it is
// considered complete, so the cache never drifts from server-assigned
// fields like ids and creation timestamps.
type DataCache struct {
	Info      *Collection[Info]
	Gallery   *Collection[Gallery]
	Directory *Collection[Directory]
	Agenda    *Collection[Agenda]
	About     *Collection[About]

	mu     sync.Mutex
	nextID int
	subs   map[int]func()
}

func NewDataCache(c *Client) *DataCache {
	d := &DataCache{subs: make(map[int]func())}

	d.Info = newCollection[Info](c, "/info", "info", d.broadcast)
	d.Gallery = newCollection[Gallery](c, "/gallery", "galeri", d.broadcast)
	d.Directory = newCollection[Directory](c, "/directory", "direktori", d.broadcast)
	d.Agenda = newCollection[Agenda](c, "/agenda", "agenda", d.broadcast)
	d.About = newCollection[About](c, "/about", "data tentang", d.broadcast)

	return d
}

// Subscribe registers fn to run after every state change. The returned
// function removes the subscription.
func (d *DataCache) Subscribe(fn func()) func() {
	d.mu.Lock()
	id := d.nextID
	d.nextID++
	d.subs[id] = fn
	d.mu.Unlock()

	return func() {
		d.mu.Lock()
		delete(d.subs, id)
		d.mu.Unlock()
	}
}

// Start issues the initial fetch for all five kinds concurrently. The
// fetches are independent: one kind failing never blocks the others, and
// there is no joint completion barrier. Errors end up in the per-kind
// error state.
func (d *DataCache) Start(ctx context.Context) {
	go func() { _ = d.Info.Fetch(ctx) }()
	go func() { _ = d.Gallery.Fetch(ctx) }()
	go func() { _ = d.Directory.Fetch(ctx) }()
	go func() { _ = d.Agenda.Fetch(ctx) }()
	go func() { _ = d.About.Fetch(ctx) }()
}

func (d *DataCache) broadcast() {
	d.mu.Lock()
	fns := make([]func(), 0, len(d.subs))
	for _, fn := range d.subs {
		fns = append(fns, fn)
	}
	d.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Collection holds the cached records of one kind together with its
// loading flag and last error banner.
type Collection[T any] struct {
	client *Client
	path   string
	label  string // Indonesian noun used in the user-facing banners
	notify func()

	mu      sync.RWMutex
	items   []T
	loading bool
	errMsg  string
}

func newCollection[T any](c *Client, path, label string, notify func()) *Collection[T] {
	return &Collection[T]{client: c, path: path, label: label, notify: notify}
}

// Items returns a copy of the cached records.
func (col *Collection[T]) Items() []T {
	col.mu.RLock()
	defer col.mu.RUnlock()
	out := make([]T, len(col.items))
	copy(out, col.items)
	return out
}

// Loading reports whether a request for this kind is in flight.
func (col *Collection[T]) Loading() bool {
	col.mu.RLock()
	defer col.mu.RUnlock()
	return col.loading
}

// Err returns the current error banner, or "" when the last operation
// succeeded.
func (col *Collection[T]) Err() string {
	col.mu.RLock()
	defer col.mu.RUnlock()
	return col.errMsg
}

// Fetch replaces the cached collection with the server's current list.
// On failure the previous items are kept, the error banner is set and
// the technical error is logged as well as returned; loading is cleared
// on both paths.
func (col *Collection[T]) Fetch(ctx context.Context) error {
	col.begin()
	defer col.end()

	var items []T
	if err := col.client.get(ctx, col.path, &items); err != nil {
		logger.Error("fetch "+col.label+" failed", err)
		col.setError("Gagal mengambil data " + col.label)
		return err
	}

	col.replace(items)
	return nil
}

// Create sends the new record and then re-fetches the full collection;
// the operation is not complete until the re-fetch resolves. The new
// record is never spliced in locally.
func (col *Collection[T]) Create(ctx context.Context, fields interface{}) error {
	col.begin()
	defer col.end()

	if err := col.client.post(ctx, col.path, fields, nil); err != nil {
		logger.Error("create "+col.label+" failed", err)
		col.setError("Gagal membuat " + col.label + " baru")
		return err
	}

	return col.Fetch(ctx)
}

// Update sends the changed fields and then re-fetches the full collection.
func (col *Collection[T]) Update(ctx context.Context, id string, fields interface{}) error {
	col.begin()
	defer col.end()

	if err := col.client.put(ctx, col.path+"/"+id, fields, nil); err != nil {
		logger.Error("update "+col.label+" failed", err)
		col.setError("Gagal mengupdate " + col.label)
		return err
	}

	return col.Fetch(ctx)
}

// Delete removes the record and then re-fetches the full collection.
func (col *Collection[T]) Delete(ctx context.Context, id string) error {
	col.begin()
	defer col.end()

	if err := col.client.delete(ctx, col.path+"/"+id); err != nil {
		logger.Error("delete "+col.label+" failed", err)
		col.setError("Gagal menghapus " + col.label)
		return err
	}

	return col.Fetch(ctx)
}

func (col *Collection[T]) begin() {
	col.mu.Lock()
	col.loading = true
	col.errMsg = ""
	col.mu.Unlock()
	col.notify()
}

func (col *Collection[T]) end() {
	col.mu.Lock()
	col.loading = false
	col.mu.Unlock()
	col.notify()
}

func (col *Collection[T]) replace(items []T) {
	col.mu.Lock()
	col.items = items
	col.mu.Unlock()
	col.notify()
}

func (col *Collection[T]) setError(msg string) {
	col.mu.Lock()
	col.errMsg = msg
	col.mu.Unlock()
	col.notify()
}
