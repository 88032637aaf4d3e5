package export

import (
	"context"
	"errors"
	"image"
	"image/color"
	"sync"
	"testing"
	"time"

	"certmaster/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRenderer records render calls. block, when set, holds RenderFront until
// released so tests can observe an in-flight batch.
type fakeRenderer struct {
	mu       sync.Mutex
	fronts   []string
	backs    int
	failOn   string
	started  chan struct{}
	release  chan struct{}
	blockOne sync.Once

	// cancelAfter invokes cancel once that many front pages have rendered.
	cancelAfter int
	cancel      context.CancelFunc
}

func (f *fakeRenderer) RenderFront(doc models.CertificateDocument, student models.Student) (image.Image, error) {
	if f.started != nil {
		f.blockOne.Do(func() {
			close(f.started)
			<-f.release
		})
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failOn == student.Name {
		return nil, errors.New("render failure")
	}
	f.fronts = append(f.fronts, student.Name)
	if f.cancel != nil && len(f.fronts) == f.cancelAfter {
		f.cancel()
	}
	return testPage(), nil
}

func (f *fakeRenderer) RenderBack(doc models.CertificateDocument) (image.Image, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failOn == "back" {
		return nil, errors.New("render failure")
	}
	f.backs++
	return testPage(), nil
}

func testPage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	img.Set(0, 0, color.Black)
	return img
}

func exportableDocument() models.CertificateDocument {
	doc := models.DefaultDocument()
	doc.CourseName = "NR-35 Trabalho em Altura"
	doc.CompanyName = "Construtora Horizonte LTDA"
	doc.Students = []models.Student{
		{ID: "s1", Name: "Ana"},
		{ID: "s2", Name: "Bruno"},
		{ID: "s3", Name: "Carla"},
	}
	doc.Instructors = []models.Instructor{{ID: "i1", Name: "Carlos Pereira"}}
	return doc
}

func TestExport_PageOrderMatchesStudentOrder(t *testing.T) {
	renderer := &fakeRenderer{}
	exporter := New(renderer, 0, 80)

	result, err := exporter.Export(context.Background(), exportableDocument())

	require.NoError(t, err)
	assert.Equal(t, []string{"Ana", "Bruno", "Carla"}, renderer.fronts)
	assert.Equal(t, 1, renderer.backs)
	assert.Equal(t, 4, result.Pages)
	assert.Equal(t, "Certificados_NR-35_Trabalho_em_Altura.pdf", result.Filename)
	require.NotEmpty(t, result.PDF)
	assert.Equal(t, "%PDF", string(result.PDF[:4]))
}

func TestExport_ValidationReportsEveryViolation(t *testing.T) {
	renderer := &fakeRenderer{}
	exporter := New(renderer, 0, 80)

	_, err := exporter.Export(context.Background(), models.CertificateDocument{})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)

	fields := make([]string, len(vErr.Fields))
	for i, f := range vErr.Fields {
		fields[i] = f.Field
	}
	assert.Equal(t, []string{"students", "courseName", "companyName", "instructors", "baseText"}, fields)
	assert.Empty(t, renderer.fronts, "no page may render when validation fails")
	assert.Zero(t, renderer.backs)
}

func TestExport_RenderFailureAbortsWithoutArtifact(t *testing.T) {
	renderer := &fakeRenderer{failOn: "Bruno"}
	exporter := New(renderer, 0, 80)

	result, err := exporter.Export(context.Background(), exportableDocument())

	require.Error(t, err)
	assert.Nil(t, result)
	assert.Equal(t, []string{"Ana"}, renderer.fronts, "rendering stops at the failing page")
}

func TestExport_BackPageFailureAborts(t *testing.T) {
	renderer := &fakeRenderer{failOn: "back"}
	exporter := New(renderer, 0, 80)

	result, err := exporter.Export(context.Background(), exportableDocument())

	require.Error(t, err)
	assert.Nil(t, result)
}

func TestExport_SecondTriggerWhileBusy(t *testing.T) {
	renderer := &fakeRenderer{
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	exporter := New(renderer, 0, 80)

	done := make(chan error, 1)
	go func() {
		_, err := exporter.Export(context.Background(), exportableDocument())
		done <- err
	}()

	<-renderer.started
	_, err := exporter.Export(context.Background(), exportableDocument())
	assert.ErrorIs(t, err, ErrExportInProgress)

	close(renderer.release)
	require.NoError(t, <-done)

	// Once the batch settles the exporter accepts triggers again.
	_, err = exporter.Export(context.Background(), exportableDocument())
	assert.NoError(t, err)
}

func TestExport_CancelledContext(t *testing.T) {
	renderer := &fakeRenderer{}
	exporter := New(renderer, 50*time.Millisecond, 80)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := exporter.Export(ctx, exportableDocument())

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, renderer.fronts)
}

func TestExport_CancellationBeforeBackPage(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	renderer := &fakeRenderer{cancelAfter: 3, cancel: cancel}
	exporter := New(renderer, 0, 80)

	result, err := exporter.Export(ctx, exportableDocument())

	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, result)
	assert.Zero(t, renderer.backs, "a cancelled batch must not render the back page")
}

func TestFilename(t *testing.T) {
	tests := []struct {
		name   string
		course string
		want   string
	}{
		{"spaces collapse to underscores", "NR-35 Trabalho em Altura", "Certificados_NR-35_Trabalho_em_Altura.pdf"},
		{"runs of whitespace", "Curso \t  Básico", "Certificados_Curso_Básico.pdf"},
		{"blank falls back to batch label", "", "Certificados_Lote.pdf"},
		{"whitespace only falls back", "   ", "Certificados_Lote.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Filename(tt.course))
		})
	}
}
