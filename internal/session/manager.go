// Package session holds per-session analysis state: the aggregated document
// context, file metadata for the current upload batch, and the chat history.
package session

import (
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/omnifile/backend/internal/models"
)

// MaxSessions caps concurrent sessions to bound memory.
const MaxSessions = 50

// State is the mutable state of one analysis session. All fields are
// guarded by the owning Manager's lock; callers only ever see copies.
type State struct {
	ID           string
	Context      string // aggregated document context, rebuilt per batch
	Files        []models.FileMeta
	History      []models.ChatEntry // newest first
	CreatedAt    time.Time
	LastAccessed time.Time
}

// Manager owns all active sessions.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*State
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*State)}
}

// Create starts a new empty session and returns its snapshot.
func (m *Manager) Create() models.SessionInfo {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.evictOldestLocked()

	now := time.Now()
	st := &State{
		ID:           uuid.New().String(),
		CreatedAt:    now,
		LastAccessed: now,
	}
	m.sessions[st.ID] = st
	return snapshot(st)
}

// Info returns a session snapshot.
func (m *Manager) Info(id string) (models.SessionInfo, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	st, ok := m.sessions[id]
	if !ok {
		return models.SessionInfo{}, false
	}
	return snapshot(st), true
}

// ReplaceFiles installs a new upload batch: metadata and document context
// replace the previous batch wholesale. Chat history is left untouched.
func (m *Manager) ReplaceFiles(id string, files []models.FileMeta, docContext string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	st, ok := m.sessions[id]
	if !ok {
		return false
	}
	st.Files = append([]models.FileMeta(nil), files...)
	st.Context = docContext
	st.LastAccessed = time.Now()
	return true
}

// Files returns the metadata of the current upload batch.
func (m *Manager) Files(id string) ([]models.FileMeta, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	st, ok := m.sessions[id]
	if !ok {
		return nil, false
	}
	return append([]models.FileMeta(nil), st.Files...), true
}

// Context returns the aggregated document context and whether the session
// currently has any uploaded files.
func (m *Manager) Context(id string) (docContext string, hasFiles bool, ok bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	st, found := m.sessions[id]
	if !found {
		return "", false, false
	}
	return st.Context, len(st.Files) > 0, true
}

// AppendEntry prepends a chat entry so the newest exchange is first.
func (m *Manager) AppendEntry(id string, entry models.ChatEntry) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	st, ok := m.sessions[id]
	if !ok {
		return false
	}
	st.History = append([]models.ChatEntry{entry}, st.History...)
	st.LastAccessed = time.Now()
	return true
}

// History returns the chat history, newest first.
func (m *Manager) History(id string) ([]models.ChatEntry, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	st, ok := m.sessions[id]
	if !ok {
		return nil, false
	}
	return append([]models.ChatEntry(nil), st.History...), true
}

// Entry returns one history entry by its newest-first index.
func (m *Manager) Entry(id string, index int) (models.ChatEntry, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	st, ok := m.sessions[id]
	if !ok || index < 0 || index >= len(st.History) {
		return models.ChatEntry{}, false
	}
	return st.History[index], true
}

// Reset clears files, context and history: "new session" semantics with the
// same session ID.
func (m *Manager) Reset(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	st, ok := m.sessions[id]
	if !ok {
		return false
	}
	st.Files = nil
	st.Context = ""
	st.History = nil
	st.LastAccessed = time.Now()
	return true
}

// Delete removes a session entirely.
func (m *Manager) Delete(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[id]; !ok {
		return false
	}
	delete(m.sessions, id)
	return true
}

// Touch refreshes LastAccessed so cleanup keeps an active session alive.
func (m *Manager) Touch(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	st, ok := m.sessions[id]
	if !ok {
		return false
	}
	st.LastAccessed = time.Now()
	return true
}

// Len reports the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// CleanupOldSessions drops sessions idle for longer than maxAge.
func (m *Manager) CleanupOldSessions(maxAge time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := time.Now().Add(-maxAge)
	for id, st := range m.sessions {
		if st.LastAccessed.Before(cutoff) {
			delete(m.sessions, id)
			log.Printf("[session] cleaned up idle session %s (last active %s ago)",
				shortID(id), time.Since(st.LastAccessed).Round(time.Second))
		}
	}
}

// evictOldestLocked makes room when at capacity by dropping the least
// recently used session. Caller holds the write lock.
func (m *Manager) evictOldestLocked() {
	if len(m.sessions) < MaxSessions {
		return
	}
	var oldestID string
	var oldest time.Time
	for id, st := range m.sessions {
		if oldestID == "" || st.LastAccessed.Before(oldest) {
			oldestID = id
			oldest = st.LastAccessed
		}
	}
	if oldestID != "" {
		delete(m.sessions, oldestID)
		log.Printf("[session] evicted session %s to stay under capacity", shortID(oldestID))
	}
}

func snapshot(st *State) models.SessionInfo {
	words := 0
	for _, f := range st.Files {
		words += f.WordCount
	}
	return models.SessionInfo{
		ID:         st.ID,
		FileCount:  len(st.Files),
		WordCount:  words,
		HistoryLen: len(st.History),
		CreatedAt:  st.CreatedAt,
		LastActive: st.LastAccessed,
	}
}

func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}
