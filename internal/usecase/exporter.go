package usecase

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"resume-builder/internal/model"
	"resume-builder/internal/render"

	"github.com/ledongthuc/pdf"
)

type Renderer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

// PDFCache stores rendered PDFs by the hash of their HTML. A miss is
// (nil, false, nil).
type PDFCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, pdf []byte) error
}

// Artifact is an exported PDF and what is known about it.
type Artifact struct {
	FileName string
	// Hash is the hex SHA-256 of the HTML the PDF was printed from.
	Hash   string
	PDF    []byte
	Pages  int
	Cached bool
}

const DefaultRenderAttempts = 3

// Exporter turns a resume into a PDF: readiness check, layout, HTML and
// headless-browser capture.
type Exporter struct {
	renderer Renderer
	cache    PDFCache
	attempts int
	backoff  time.Duration
	log      *slog.Logger
}

// NewExporter builds an Exporter. cache may be nil; attempts below one fall
// back to DefaultRenderAttempts.
func NewExporter(r Renderer, cache PDFCache, attempts int, log *slog.Logger) *Exporter {
	if attempts < 1 {
		attempts = DefaultRenderAttempts
	}
	if log == nil {
		log = slog.Default()
	}
	return &Exporter{renderer: r, cache: cache, attempts: attempts, backoff: time.Second, log: log}
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// ExportFileName is the download name for a resume owned by fullName.
func ExportFileName(fullName string) string {
	return whitespaceRun.ReplaceAllString(fullName, "_") + "_Resume.pdf"
}

// Export renders r with its selected template and prints it to PDF.
// Unready resumes fail with *NotReadyError before anything is rendered.
func (e *Exporter) Export(ctx context.Context, r model.ResumeData) (*Artifact, error) {
	if problems := model.CheckExportReady(r); len(problems) > 0 {
		return nil, &NotReadyError{Problems: problems}
	}

	html, err := render.RenderHTML(render.Render(r))
	if err != nil {
		return nil, err
	}
	sum := sha256.Sum256([]byte(html))
	art := &Artifact{
		FileName: ExportFileName(r.PersonalInfo.FullName),
		Hash:     hex.EncodeToString(sum[:]),
	}

	if e.cache != nil {
		b, ok, err := e.cache.Get(ctx, art.Hash)
		if err != nil {
			e.log.Warn("pdf cache lookup failed (non-fatal)", "hash", art.Hash, "error", err)
		} else if ok {
			if pages, perr := countPages(b); perr == nil {
				art.PDF, art.Pages, art.Cached = b, pages, true
				e.log.Debug("pdf cache hit", "hash", art.Hash)
				return art, nil
			}
			e.log.Warn("ignoring unreadable cached pdf", "hash", art.Hash)
		}
	}

	b, pages, err := e.print(ctx, html)
	if err != nil {
		return nil, err
	}
	art.PDF, art.Pages = b, pages

	if e.cache != nil {
		if err := e.cache.Set(ctx, art.Hash, b); err != nil {
			e.log.Warn("pdf cache write failed (non-fatal)", "hash", art.Hash, "error", err)
		}
	}
	return art, nil
}

// print runs the renderer with retry and exponential backoff until it
// produces a readable PDF.
func (e *Exporter) print(ctx context.Context, html string) ([]byte, int, error) {
	var lastErr error
	for i := 0; i < e.attempts; i++ {
		b, err := e.renderer.RenderHTMLToPDF(ctx, html)
		if err == nil {
			pages, perr := countPages(b)
			if perr == nil {
				e.log.Info("pdf rendered", "attempt", i+1, "bytes", len(b), "pages", pages)
				return b, pages, nil
			}
			err = perr
		}
		lastErr = err
		e.log.Warn("render attempt failed", "attempt", i+1, "error", err)

		if i < e.attempts-1 {
			backoff := time.Duration(1<<i) * e.backoff
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, 0, ctx.Err()
			}
		}
	}
	return nil, 0, fmt.Errorf("rendering failed after %d attempts: %w", e.attempts, lastErr)
}

// countPages reports the page count of b. The pdf reader panics on some
// corrupt cross-reference tables; that is reported as ErrInvalidPDF too.
func countPages(b []byte) (n int, err error) {
	defer func() {
		if r := recover(); r != nil {
			n, err = 0, fmt.Errorf("%w: %v", ErrInvalidPDF, r)
		}
	}()
	if !bytes.HasPrefix(b, []byte("%PDF")) {
		return 0, ErrInvalidPDF
	}
	r, err := pdf.NewReader(bytes.NewReader(b), int64(len(b)))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidPDF, err)
	}
	n = r.NumPage()
	if n < 1 {
		return 0, ErrInvalidPDF
	}
	return n, nil
}
