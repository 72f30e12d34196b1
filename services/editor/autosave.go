// Package editor carries editor-side behaviour that is not part of the
// content model itself, such as auto-save coalescing.
package editor

import (
	"context"
	"sync"
	"time"

	"pagecraft/models"
	"pagecraft/utils"

	"go.uber.org/zap"
)

// SaveFunc persists one block.
type SaveFunc func(ctx context.Context, block models.Block) error

// Autosaver coalesces rapid edits to the same block: only the last edit
// inside the debounce window is persisted. A manual Flush supersedes the
// pending timer, and Close cancels everything so nothing is written after
// the editing surface is gone.
type Autosaver struct {
	window time.Duration
	save   SaveFunc

	mu      sync.Mutex
	pending map[string]*pendingEdit
	closed  bool
}

type pendingEdit struct {
	timer *time.Timer
	block models.Block
}

// NewAutosaver creates an Autosaver with the given debounce window. A zero
// or negative window falls back to 1500ms, the historical default.
func NewAutosaver(window time.Duration, save SaveFunc) *Autosaver {
	if window <= 0 {
		window = 1500 * time.Millisecond
	}
	return &Autosaver{
		window:  window,
		save:    save,
		pending: make(map[string]*pendingEdit),
	}
}

// Submit records an edit. Any pending save for the same block is superseded
// and its timer restarted.
func (a *Autosaver) Submit(block models.Block) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return
	}
	if p, ok := a.pending[block.ID]; ok {
		p.timer.Stop()
		p.block = block
		p.timer.Reset(a.window)
		return
	}
	id := block.ID
	p := &pendingEdit{block: block}
	p.timer = time.AfterFunc(a.window, func() { a.fire(id) })
	a.pending[id] = p
}

func (a *Autosaver) fire(id string) {
	a.mu.Lock()
	p, ok := a.pending[id]
	if ok {
		delete(a.pending, id)
	}
	closed := a.closed
	a.mu.Unlock()
	if !ok || closed {
		return
	}
	if err := a.save(context.Background(), p.block); err != nil {
		utils.GetLogger().Error("autosave failed",
			zap.String("blockID", id), zap.Error(err))
	}
}

// Flush saves the pending edit for a block immediately, cancelling its
// timer. Returns false if nothing was pending.
func (a *Autosaver) Flush(ctx context.Context, id string) (bool, error) {
	a.mu.Lock()
	p, ok := a.pending[id]
	if ok {
		p.timer.Stop()
		delete(a.pending, id)
	}
	a.mu.Unlock()
	if !ok {
		return false, nil
	}
	return true, a.save(ctx, p.block)
}

// FlushAll saves every pending edit immediately. The first error aborts.
func (a *Autosaver) FlushAll(ctx context.Context) error {
	a.mu.Lock()
	edits := make([]*pendingEdit, 0, len(a.pending))
	for id, p := range a.pending {
		p.timer.Stop()
		edits = append(edits, p)
		delete(a.pending, id)
	}
	a.mu.Unlock()

	for _, p := range edits {
		if err := a.save(ctx, p.block); err != nil {
			return err
		}
	}
	return nil
}

// Close cancels all pending saves without writing them. Submissions after
// Close are dropped.
func (a *Autosaver) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.closed = true
	for id, p := range a.pending {
		p.timer.Stop()
		delete(a.pending, id)
	}
}

// PendingCount reports how many blocks have unsaved edits.
func (a *Autosaver) PendingCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.pending)
}
