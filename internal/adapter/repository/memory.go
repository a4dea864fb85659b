package repository

import (
	"context"
	"sync"

	"resume-builder/internal/domain"

	"github.com/google/uuid"
)

// MemorySessionStore keeps sessions in process memory. Values are copied in
// and out so callers never share a snapshot with the store.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]domain.Session
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: map[uuid.UUID]domain.Session{}}
}

func (m *MemorySessionStore) Get(_ context.Context, id uuid.UUID) (*domain.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	s.Resume = s.Resume.Clone()
	return &s, nil
}

func (m *MemorySessionStore) Save(_ context.Context, s *domain.Session) error {
	cp := *s
	cp.Resume = s.Resume.Clone()
	m.mu.Lock()
	m.sessions[s.ID] = cp
	m.mu.Unlock()
	return nil
}

func (m *MemorySessionStore) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(m.sessions, id)
	return nil
}

type MemoryExportStore struct {
	mu   sync.RWMutex
	jobs map[uuid.UUID]domain.ExportJob
}

func NewMemoryExportStore() *MemoryExportStore {
	return &MemoryExportStore{jobs: map[uuid.UUID]domain.ExportJob{}}
}

func (m *MemoryExportStore) Get(_ context.Context, id uuid.UUID) (*domain.ExportJob, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	j, ok := m.jobs[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &j, nil
}

func (m *MemoryExportStore) Save(_ context.Context, j *domain.ExportJob) error {
	m.mu.Lock()
	m.jobs[j.ID] = *j
	m.mu.Unlock()
	return nil
}
