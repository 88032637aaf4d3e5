// Package export assembles the final multi-page certificate PDF: one
// rasterized front page per student, in collection order, plus one shared
// back page.
package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"strings"
	"sync/atomic"
	"time"

	"certmaster/models"

	"github.com/jung-kurt/gofpdf"
)

// Landscape A4 in millimeters; every raster page is stretched full-bleed.
const (
	pageWidthMM  = 297
	pageHeightMM = 210
)

// PageRenderer turns the aggregate into page bitmaps, already rasterized at
// the supersampled target resolution. Implementations reuse a single shared
// layout surface, so calls must stay strictly sequential.
type PageRenderer interface {
	RenderFront(doc models.CertificateDocument, student models.Student) (image.Image, error)
	RenderBack(doc models.CertificateDocument) (image.Image, error)
}

// FieldError is one violated export precondition.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates every violated precondition so the UI can report
// all missing fields at once.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Message
	}
	return "export blocked: " + strings.Join(msgs, "; ")
}

// ErrExportInProgress is returned while a previous batch has not settled.
var ErrExportInProgress = errors.New("an export batch is already in progress")

// ValidateDocument checks every export precondition and returns the complete
// list of violations, not just the first.
func ValidateDocument(doc models.CertificateDocument) []FieldError {
	var errs []FieldError

	if len(doc.Students) == 0 {
		errs = append(errs, FieldError{Field: "students", Message: "Adicione pelo menos um aluno"})
	}
	if strings.TrimSpace(doc.CourseName) == "" {
		errs = append(errs, FieldError{Field: "courseName", Message: "Nome do curso é obrigatório"})
	}
	if strings.TrimSpace(doc.CompanyName) == "" {
		errs = append(errs, FieldError{Field: "companyName", Message: "Razão Social da empresa é obrigatória"})
	}
	if len(doc.Instructors) == 0 {
		errs = append(errs, FieldError{Field: "instructors", Message: "Adicione pelo menos um instrutor"})
	}
	if strings.TrimSpace(doc.BaseText) == "" {
		errs = append(errs, FieldError{Field: "baseText", Message: "Texto do certificado é obrigatório"})
	}

	return errs
}

// Result is one finished batch.
type Result struct {
	PDF      []byte
	Filename string
	Pages    int
}

// Exporter runs export batches one at a time. The renderer's shared layout
// surface makes concurrent batches unsafe, so a pending batch suppresses new
// triggers until it settles.
type Exporter struct {
	renderer PageRenderer
	settle   time.Duration
	quality  int
	busy     atomic.Bool
}

// New creates an exporter. settle is the fixed delay before the first capture
// (asynchronous layout/font settling); quality is the embedded JPEG quality,
// tuned small-file over fidelity.
func New(renderer PageRenderer, settle time.Duration, quality int) *Exporter {
	return &Exporter{renderer: renderer, settle: settle, quality: quality}
}

// Export validates the document, then renders and assembles the whole batch.
// Any failure aborts atomically: no partial artifact, document untouched.
func (e *Exporter) Export(ctx context.Context, doc models.CertificateDocument) (*Result, error) {
	if fields := ValidateDocument(doc); len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	if !e.busy.CompareAndSwap(false, true) {
		return nil, ErrExportInProgress
	}
	defer e.busy.Store(false)

	// Settle delay before the first capture.
	if e.settle > 0 {
		select {
		case <-time.After(e.settle):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pages := 0

	// One front page per student, strictly sequential, page i = student i.
	for i, student := range doc.Students {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		page, err := e.renderer.RenderFront(doc, student)
		if err != nil {
			return nil, fmt.Errorf("render front page for student %d: %w", i+1, err)
		}
		if err := e.appendPage(pdf, page, fmt.Sprintf("front-%d", i)); err != nil {
			return nil, fmt.Errorf("append front page for student %d: %w", i+1, err)
		}
		pages++
	}

	// One shared back page for the whole batch.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	back, err := e.renderer.RenderBack(doc)
	if err != nil {
		return nil, fmt.Errorf("render back page: %w", err)
	}
	if err := e.appendPage(pdf, back, "back"); err != nil {
		return nil, fmt.Errorf("append back page: %w", err)
	}
	pages++

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("finalize document: %w", err)
	}

	return &Result{
		PDF:      buf.Bytes(),
		Filename: Filename(doc.CourseName),
		Pages:    pages,
	}, nil
}

// appendPage JPEG-encodes one rasterized page and places it full-bleed on a
// new landscape page.
func (e *Exporter) appendPage(pdf *gofpdf.Fpdf, page image.Image, name string) error {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, page, &jpeg.Options{Quality: e.quality}); err != nil {
		return err
	}

	pdf.AddPage()
	opts := gofpdf.ImageOptions{ImageType: "JPEG"}
	pdf.RegisterImageOptionsReader(name, opts, &buf)
	pdf.ImageOptions(name, 0, 0, pageWidthMM, pageHeightMM, false, opts, 0, "")
	if pdf.Err() {
		return pdf.Error()
	}
	return nil
}

// Filename derives the output name from the course name, whitespace runs
// collapsed to underscores, with a generic label when blank. Cosmetic: never
// empty, never fails.
func Filename(courseName string) string {
	name := strings.Join(strings.Fields(courseName), "_")
	if name == "" {
		name = "Lote"
	}
	return "Certificados_" + name + ".pdf"
}
