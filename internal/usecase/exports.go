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

type ExportStore interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.ExportJob, error)
	Save(ctx context.Context, j *domain.ExportJob) error
}

// Storage holds exported files under slash-separated keys.
type Storage interface {
	Put(ctx context.Context, key string, data []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
}

// ExportService queues PDF exports of sessions and runs them.
type ExportService struct {
	sessions SessionStore
	jobs     ExportStore
	exporter *Exporter
	storage  Storage
	queue    Queue
	log      *slog.Logger
	now      func() time.Time
}

func NewExportService(sessions SessionStore, jobs ExportStore, exporter *Exporter, storage Storage, queue Queue, log *slog.Logger) *ExportService {
	if log == nil {
		log = slog.Default()
	}
	return &ExportService{
		sessions: sessions,
		jobs:     jobs,
		exporter: exporter,
		storage:  storage,
		queue:    queue,
		log:      log,
		now:      time.Now,
	}
}

// Start creates a pending export of the session's current snapshot and
// queues it. Resumes missing required contact data are refused up front.
func (s *ExportService) Start(ctx context.Context, sessionID uuid.UUID) (*domain.ExportJob, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session %s: %w", sessionID, err)
	}
	if problems := model.CheckExportReady(sess.Resume); len(problems) > 0 {
		return nil, &NotReadyError{Problems: problems}
	}

	now := s.now().UTC()
	job := &domain.ExportJob{
		ID:        uuid.New(),
		SessionID: sessionID,
		Status:    domain.ExportPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.jobs.Save(ctx, job); err != nil {
		return nil, fmt.Errorf("save export job: %w", err)
	}
	if err := s.queue.Enqueue(ctx, job.ID); err != nil {
		s.fail(ctx, job, err)
		return nil, fmt.Errorf("enqueue export job: %w", err)
	}
	s.log.Info("export queued", "job_id", job.ID, "session_id", sessionID)
	return job, nil
}

// Run executes a queued export. Jobs already in a terminal status are left
// alone so redelivered messages are harmless.
func (s *ExportService) Run(ctx context.Context, jobID uuid.UUID) error {
	job, err := s.jobs.Get(ctx, jobID)
	if err != nil {
		return fmt.Errorf("get export job %s: %w", jobID, err)
	}
	if job.Done() {
		s.log.Info("export already finished, skipping", "job_id", jobID, "status", job.Status)
		return nil
	}

	sess, err := s.sessions.Get(ctx, job.SessionID)
	if err != nil {
		return s.abort(ctx, job, fmt.Errorf("get session %s: %w", job.SessionID, err))
	}

	job.Status = domain.ExportProcessing
	job.UpdatedAt = s.now().UTC()
	if err := s.jobs.Save(ctx, job); err != nil {
		return fmt.Errorf("save export job: %w", err)
	}

	art, err := s.exporter.Export(ctx, sess.Resume)
	if err != nil {
		return s.abort(ctx, job, err)
	}

	key := fmt.Sprintf("exports/%s/%s", job.ID, art.FileName)
	if err := s.storage.Put(ctx, key, art.PDF); err != nil {
		return s.abort(ctx, job, fmt.Errorf("store pdf: %w", err))
	}

	job.Status = domain.ExportCompleted
	job.FileName = art.FileName
	job.StorageKey = key
	job.Pages = art.Pages
	job.SizeBytes = len(art.PDF)
	job.Error = ""
	job.UpdatedAt = s.now().UTC()
	if err := s.jobs.Save(ctx, job); err != nil {
		return fmt.Errorf("save export job: %w", err)
	}
	s.log.Info("export completed", "job_id", job.ID, "key", key, "pages", art.Pages, "cached", art.Cached)
	return nil
}

func (s *ExportService) Get(ctx context.Context, jobID uuid.UUID) (*domain.ExportJob, error) {
	job, err := s.jobs.Get(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("get export job %s: %w", jobID, err)
	}
	return job, nil
}

// Download returns the file name and bytes of a completed export.
func (s *ExportService) Download(ctx context.Context, jobID uuid.UUID) (string, []byte, error) {
	job, err := s.Get(ctx, jobID)
	if err != nil {
		return "", nil, err
	}
	if job.Status != domain.ExportCompleted {
		return "", nil, fmt.Errorf("%w: status %s", ErrExportNotReady, job.Status)
	}
	b, err := s.storage.Get(ctx, job.StorageKey)
	if err != nil {
		return "", nil, fmt.Errorf("read %s: %w", job.StorageKey, err)
	}
	return job.FileName, b, nil
}

// abort ends a Run that hit err. When ctx is done the job is left as it is so
// a redelivered message runs it again; otherwise it is marked failed.
func (s *ExportService) abort(ctx context.Context, job *domain.ExportJob, err error) error {
	if ctx.Err() != nil {
		s.log.Warn("export interrupted", "job_id", job.ID, "status", job.Status, "error", err)
		return fmt.Errorf("%w: %w", ErrInterrupted, err)
	}
	s.fail(ctx, job, err)
	return err
}

// fail records cause on the job. Saving is best effort and outlives a
// cancelled ctx.
func (s *ExportService) fail(ctx context.Context, job *domain.ExportJob, cause error) {
	job.Status = domain.ExportFailed
	job.Error = cause.Error()
	job.UpdatedAt = s.now().UTC()
	if err := s.jobs.Save(context.WithoutCancel(ctx), job); err != nil {
		s.log.Error("unable to record export failure", "job_id", job.ID, "error", err)
	}
	s.log.Error("export failed", "job_id", job.ID, "error", cause)
}
