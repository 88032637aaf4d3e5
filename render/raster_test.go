package render

import (
	"image"
	"image/color"
	"testing"

	"certmaster/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderableDocument() models.CertificateDocument {
	doc := models.DefaultDocument()
	doc.CourseName = "NR-35 Trabalho em Altura"
	doc.CompanyName = "Construtora Horizonte LTDA"
	doc.CompanyCNPJ = "11.222.333/0001-81"
	doc.Address = "Av. Paulista, 1000"
	doc.Instructors = []models.Instructor{
		{ID: "i1", Name: "Carlos Pereira", Competencies: "Engenheiro de Segurança"},
	}
	doc.Curriculum = []models.CurriculumItem{
		{ID: "c1", Subject: "Normas e legislação", Hours: 8},
		{ID: "c2", Subject: "Equipamentos de proteção", Hours: 12},
	}
	doc.TotalHours = "20"
	return doc
}

func TestRenderFront_PageGeometry(t *testing.T) {
	r := NewRaster(2)
	student := models.Student{ID: "s1", Name: "Ana Souza", CPF: "52998224725", DisplayName: "Ana Souza"}

	img, err := r.RenderFront(renderableDocument(), student)

	require.NoError(t, err)
	bounds := img.Bounds()
	assert.Equal(t, 1123*2, bounds.Dx())
	assert.Equal(t, 794*2, bounds.Dy())
}

func TestRenderFront_DrawsInk(t *testing.T) {
	r := NewRaster(1)
	student := models.Student{ID: "s1", Name: "Ana Souza", CPF: "52998224725", DisplayName: "Ana Souza"}

	img, err := r.RenderFront(renderableDocument(), student)
	require.NoError(t, err)

	assert.True(t, hasNonWhitePixel(img), "a rendered page can not be blank")
}

func TestRenderBack_PageGeometry(t *testing.T) {
	r := NewRaster(1)

	img, err := r.RenderBack(renderableDocument())

	require.NoError(t, err)
	bounds := img.Bounds()
	assert.Equal(t, 1123, bounds.Dx())
	assert.Equal(t, 794, bounds.Dy())
	assert.True(t, hasNonWhitePixel(img))
}

func TestRender_SnapshotsAreIndependent(t *testing.T) {
	r := NewRaster(1)
	doc := renderableDocument()
	ana := models.Student{ID: "s1", Name: "Ana", DisplayName: "Ana"}
	bruno := models.Student{ID: "s2", Name: "Bruno Albuquerque de Carvalho", DisplayName: "Bruno Albuquerque de Carvalho"}

	first, err := r.RenderFront(doc, ana)
	require.NoError(t, err)
	firstCorner := first.At(10, 10)

	// Rendering the next page must not mutate the previous snapshot even
	// though the layout surface is reused.
	_, err = r.RenderFront(doc, bruno)
	require.NoError(t, err)

	assert.Equal(t, firstCorner, first.At(10, 10))
}

func TestRenderFront_InvalidInlineImageIsSkipped(t *testing.T) {
	r := NewRaster(1)
	doc := renderableDocument()
	doc.BgImage = "data:image/png;base64,not-base64!!"
	student := models.Student{ID: "s1", Name: "Ana", DisplayName: "Ana"}

	_, err := r.RenderFront(doc, student)

	assert.NoError(t, err, "a corrupt background must not abort the page")
}

func hasNonWhitePixel(img image.Image) bool {
	white := color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if color.RGBAModel.Convert(img.At(x, y)) != white {
				return true
			}
		}
	}
	return false
}
