package persistence

import (
	"context"
	"log"
	"sync"
	"time"

	"certmaster/models"
)

// Bridge coalesces edits into at most one save per quiet window and keeps the
// remote and local stores converging. Store failures are logged, never
// surfaced: during a session the in-memory aggregate is the source of truth.
type Bridge struct {
	remote   RemoteStore
	local    *LocalStore
	tenantID string
	quiet    time.Duration

	mu     sync.Mutex
	timer  *time.Timer
	latest models.CertificateDocument
	dirty  bool
	closed bool
}

func NewBridge(remote RemoteStore, local *LocalStore, tenantID string, quiet time.Duration) *Bridge {
	return &Bridge{
		remote:   remote,
		local:    local,
		tenantID: tenantID,
		quiet:    quiet,
	}
}

// Hydrate resolves the session's initial state: remote wins, the local backup
// is the fallback, defaults last. A successful local fallback is mirrored back
// to the remote store so the two converge.
func (b *Bridge) Hydrate(ctx context.Context) models.CertificateDocument {
	if b.remote != nil {
		doc, ok, err := b.remote.Load(ctx, b.tenantID)
		if err != nil {
			log.Printf("[PERSISTENCE] Remote load failed, falling back to local store: %v", err)
		} else if ok {
			return doc
		}
	}

	if b.local != nil {
		doc, ok, err := b.local.Load(ctx)
		if err != nil {
			log.Printf("[PERSISTENCE] Local load failed: %v", err)
		} else if ok {
			if b.remote != nil {
				if err := b.remote.Save(ctx, b.tenantID, doc); err != nil {
					log.Printf("[PERSISTENCE] Mirror of local backup to remote failed: %v", err)
				}
			}
			return doc
		}
	}

	return models.DefaultDocument()
}

// NotifyChange records the newest state and arms the trailing debounce. Each
// edit resets the single pending timer slot; timers are never stacked.
func (b *Bridge) NotifyChange(doc models.CertificateDocument) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}

	b.latest = doc
	b.dirty = true

	if b.timer != nil {
		b.timer.Stop()
	}
	b.timer = time.AfterFunc(b.quiet, b.flushPending)
}

func (b *Bridge) flushPending() {
	b.mu.Lock()
	if !b.dirty || b.closed {
		b.mu.Unlock()
		return
	}
	doc := b.latest
	b.dirty = false
	b.mu.Unlock()

	if !b.save(context.Background(), doc) {
		b.markDirty()
	}
}

// Flush writes the newest state immediately, pending timer or not. Used by
// the reconcile scheduler and on shutdown.
func (b *Bridge) Flush(ctx context.Context) {
	b.mu.Lock()
	if !b.dirty {
		b.mu.Unlock()
		return
	}
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
	doc := b.latest
	b.dirty = false
	b.mu.Unlock()

	if !b.save(ctx, doc) {
		b.markDirty()
	}
}

// markDirty re-arms the reconcile path after a failed write. The newest state
// is still in latest, so the scheduler's next Flush retries it.
func (b *Bridge) markDirty() {
	b.mu.Lock()
	if !b.closed {
		b.dirty = true
	}
	b.mu.Unlock()
}

// save writes remote then local and reports whether both stores took the
// write. The two writes are not transactional; a divergence window is
// acceptable because the next save reconciles it.
func (b *Bridge) save(ctx context.Context, doc models.CertificateDocument) bool {
	ok := true
	if b.remote != nil {
		if err := b.remote.Save(ctx, b.tenantID, doc); err != nil {
			log.Printf("[PERSISTENCE] Remote save failed: %v", err)
			ok = false
		}
	}
	if b.local != nil {
		if err := b.local.Save(ctx, doc); err != nil {
			log.Printf("[PERSISTENCE] Local save failed: %v", err)
			ok = false
		}
	}
	return ok
}

// Close cancels the pending timer slot and flushes unsaved edits.
func (b *Bridge) Close() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
	doc := b.latest
	dirty := b.dirty
	b.dirty = false
	b.mu.Unlock()

	if dirty {
		b.save(context.Background(), doc)
	}
}
