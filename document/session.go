package document

import (
	"sync"

	"certmaster/models"
)

// Saver receives the aggregate after every mutation; the persistence bridge
// implements it with a trailing debounce.
type Saver interface {
	NotifyChange(doc models.CertificateDocument)
}

// Session owns the single live aggregate of an editing deployment. All
// mutations go through Dispatch so state transitions stay reducer-pure and
// the saver sees every new state.
type Session struct {
	mu    sync.RWMutex
	doc   models.CertificateDocument
	saver Saver
}

// NewSession starts a session from an initial state. saver may be nil.
func NewSession(initial models.CertificateDocument, saver Saver) *Session {
	return &Session{doc: initial, saver: saver}
}

// Document returns a snapshot of the current state.
func (s *Session) Document() models.CertificateDocument {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc
}

// Dispatch applies an action and returns the resulting state.
func (s *Session) Dispatch(action Action) models.CertificateDocument {
	s.mu.Lock()
	s.doc = Reduce(s.doc, action)
	next := s.doc
	s.mu.Unlock()

	if s.saver != nil {
		s.saver.NotifyChange(next)
	}
	return next
}
