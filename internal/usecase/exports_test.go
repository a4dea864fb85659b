package usecase

import (
	"context"
	"errors"
	"testing"

	"resume-builder/internal/adapter/repository"
	"resume-builder/internal/domain"
	"resume-builder/internal/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type exportFixture struct {
	sessions *SessionService
	svc      *ExportService
	jobs     *repository.MemoryExportStore
	storage  *memStorage
	queue    *InProcessQueue
	renderer *fakeRenderer
}

func newExportFixture(t *testing.T) *exportFixture {
	t.Helper()
	store := repository.NewMemorySessionStore()
	f := &exportFixture{
		sessions: NewSessionService(store, nil),
		jobs:     repository.NewMemoryExportStore(),
		storage:  newMemStorage(),
		queue:    NewInProcessQueue(nil),
		renderer: &fakeRenderer{outputs: [][]byte{testutil.MinimalPDF(1)}},
	}
	f.svc = NewExportService(store, f.jobs, newTestExporter(f.renderer, nil, 2), f.storage, f.queue, nil)
	f.queue.Attach(f.svc.Run)
	return f
}

func (f *exportFixture) readySession(t *testing.T) uuid.UUID {
	t.Helper()
	ctx := context.Background()
	sess, err := f.sessions.Create(ctx)
	require.NoError(t, err)
	_, err = f.sessions.Replace(ctx, sess.ID, readyResume())
	require.NoError(t, err)
	return sess.ID
}

func TestExportService_EndToEnd(t *testing.T) {
	ctx := context.Background()
	f := newExportFixture(t)
	id := f.readySession(t)

	job, err := f.svc.Start(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.ExportPending, job.Status)

	f.queue.Wait()

	done, err := f.svc.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ExportCompleted, done.Status)
	assert.Equal(t, "Jane_Q_Doe_Resume.pdf", done.FileName)
	assert.Equal(t, "exports/"+job.ID.String()+"/Jane_Q_Doe_Resume.pdf", done.StorageKey)
	assert.Equal(t, 1, done.Pages)
	assert.Equal(t, len(testutil.MinimalPDF(1)), done.SizeBytes)

	name, b, err := f.svc.Download(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane_Q_Doe_Resume.pdf", name)
	assert.Equal(t, testutil.MinimalPDF(1), b)
}

func TestExportService_StartRefusesUnreadyResume(t *testing.T) {
	ctx := context.Background()
	f := newExportFixture(t)
	sess, err := f.sessions.Create(ctx)
	require.NoError(t, err)

	_, err = f.svc.Start(ctx, sess.ID)
	var nr *NotReadyError
	require.ErrorAs(t, err, &nr)
	assert.Len(t, nr.Problems, 3)
	assert.Equal(t, 0, f.renderer.Calls())
}

func TestExportService_StartUnknownSession(t *testing.T) {
	f := newExportFixture(t)
	_, err := f.svc.Start(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestExportService_RunRecordsFailure(t *testing.T) {
	ctx := context.Background()
	f := newExportFixture(t)
	f.renderer.errs = []error{errors.New("chrome missing"), errors.New("chrome missing")}
	id := f.readySession(t)

	job, err := f.svc.Start(ctx, id)
	require.NoError(t, err)
	f.queue.Wait()

	failed, err := f.svc.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ExportFailed, failed.Status)
	assert.Contains(t, failed.Error, "chrome missing")

	_, _, err = f.svc.Download(ctx, job.ID)
	assert.ErrorIs(t, err, ErrExportNotReady)
}

func TestExportService_RunStorageFailure(t *testing.T) {
	ctx := context.Background()
	f := newExportFixture(t)
	f.storage.putErr = errors.New("disk full")
	id := f.readySession(t)

	job := &domain.ExportJob{ID: uuid.New(), SessionID: id, Status: domain.ExportPending}
	require.NoError(t, f.jobs.Save(ctx, job))

	err := f.svc.Run(ctx, job.ID)
	require.Error(t, err)

	got, err := f.jobs.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ExportFailed, got.Status)
	assert.Contains(t, got.Error, "disk full")
}

func TestExportService_RunSkipsFinishedJobs(t *testing.T) {
	ctx := context.Background()
	f := newExportFixture(t)
	id := f.readySession(t)

	job := &domain.ExportJob{ID: uuid.New(), SessionID: id, Status: domain.ExportCompleted}
	require.NoError(t, f.jobs.Save(ctx, job))

	require.NoError(t, f.svc.Run(ctx, job.ID))
	assert.Equal(t, 0, f.renderer.Calls())
}

func TestExportService_RunMissingSession(t *testing.T) {
	ctx := context.Background()
	f := newExportFixture(t)

	job := &domain.ExportJob{ID: uuid.New(), SessionID: uuid.New(), Status: domain.ExportPending}
	require.NoError(t, f.jobs.Save(ctx, job))

	err := f.svc.Run(ctx, job.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	got, err := f.jobs.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ExportFailed, got.Status)
}

func TestExportService_ExportsSnapshotAtRunTime(t *testing.T) {
	ctx := context.Background()
	f := newExportFixture(t)
	id := f.readySession(t)

	job := &domain.ExportJob{ID: uuid.New(), SessionID: id, Status: domain.ExportPending}
	require.NoError(t, f.jobs.Save(ctx, job))

	r := readyResume()
	r.PersonalInfo.FullName = "Renamed Person"
	_, err := f.sessions.Replace(ctx, id, r)
	require.NoError(t, err)

	require.NoError(t, f.svc.Run(ctx, job.ID))
	got, err := f.jobs.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed_Person_Resume.pdf", got.FileName)
}

func TestInProcessQueue_WithoutHandler(t *testing.T) {
	q := NewInProcessQueue(nil)
	assert.NoError(t, q.Enqueue(context.Background(), uuid.New()))
	q.Wait()
}

// ctxExportStore refuses writes once ctx is done, like the Postgres store.
type ctxExportStore struct {
	*repository.MemoryExportStore
}

func (s ctxExportStore) Save(ctx context.Context, j *domain.ExportJob) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.MemoryExportStore.Save(ctx, j)
}

// cancellingRenderer cancels the export it is rendering while cancel is set.
type cancellingRenderer struct {
	cancel context.CancelFunc
}

func (r *cancellingRenderer) RenderHTMLToPDF(ctx context.Context, _ string) ([]byte, error) {
	if r.cancel != nil {
		r.cancel()
		return nil, ctx.Err()
	}
	return testutil.MinimalPDF(1), nil
}

func TestExportService_RunInterruptedIsLeftForRedelivery(t *testing.T) {
	bg := context.Background()
	sessStore := repository.NewMemorySessionStore()
	sessions := NewSessionService(sessStore, nil)
	jobs := ctxExportStore{repository.NewMemoryExportStore()}
	renderer := &cancellingRenderer{}
	svc := NewExportService(sessStore, jobs, newTestExporter(renderer, nil, 2), newMemStorage(), NewInProcessQueue(nil), nil)

	sess, err := sessions.Create(bg)
	require.NoError(t, err)
	_, err = sessions.Replace(bg, sess.ID, readyResume())
	require.NoError(t, err)
	job := &domain.ExportJob{ID: uuid.New(), SessionID: sess.ID, Status: domain.ExportPending}
	require.NoError(t, jobs.Save(bg, job))

	ctx, cancel := context.WithCancel(bg)
	defer cancel()
	renderer.cancel = cancel

	err = svc.Run(ctx, job.ID)
	assert.ErrorIs(t, err, ErrInterrupted)
	assert.ErrorIs(t, err, context.Canceled)

	got, err := jobs.Get(bg, job.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ExportProcessing, got.Status)
	assert.Empty(t, got.Error)

	// the redelivered message finishes the job
	renderer.cancel = nil
	require.NoError(t, svc.Run(bg, job.ID))
	got, err = jobs.Get(bg, job.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ExportCompleted, got.Status)
}
