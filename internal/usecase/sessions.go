package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"

	"github.com/google/uuid"
)

type SessionStore interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Session, error)
	Save(ctx context.Context, s *domain.Session) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// SessionService manages the stored resume snapshots. Every change stores a
// new snapshot built from a clone; a snapshot handed out is never modified.
type SessionService struct {
	store SessionStore
	log   *slog.Logger
	now   func() time.Time
}

func NewSessionService(store SessionStore, log *slog.Logger) *SessionService {
	if log == nil {
		log = slog.Default()
	}
	return &SessionService{store: store, log: log, now: time.Now}
}

// Create starts a session from the default resume.
func (s *SessionService) Create(ctx context.Context) (*domain.Session, error) {
	now := s.now().UTC()
	sess := &domain.Session{
		ID:        uuid.New(),
		Resume:    model.DefaultResume(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	s.log.Info("session created", "session_id", sess.ID)
	return sess, nil
}

func (s *SessionService) Get(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	sess, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get session %s: %w", id, err)
	}
	return sess, nil
}

// Replace stores r as the session's new snapshot.
func (s *SessionService) Replace(ctx context.Context, id uuid.UUID, r model.ResumeData) (*domain.Session, error) {
	if err := model.ValidateIDs(r); err != nil {
		return nil, err
	}
	prev, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.saveSnapshot(ctx, prev, r.Clone())
}

// SetTemplate switches the layout of the stored resume. Only the five known
// tags are accepted here.
func (s *SessionService) SetTemplate(ctx context.Context, id uuid.UUID, t model.Template) (*domain.Session, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTemplate, t)
	}
	prev, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	next := prev.Resume.Clone()
	next.Template = t
	return s.saveSnapshot(ctx, prev, next)
}

// Delete discards the session, i.e. starts over.
func (s *SessionService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete session %s: %w", id, err)
	}
	s.log.Info("session deleted", "session_id", id)
	return nil
}

func (s *SessionService) saveSnapshot(ctx context.Context, prev *domain.Session, r model.ResumeData) (*domain.Session, error) {
	next := &domain.Session{
		ID:        prev.ID,
		Resume:    r,
		CreatedAt: prev.CreatedAt,
		UpdatedAt: s.now().UTC(),
	}
	if err := s.store.Save(ctx, next); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return next, nil
}
