// Package render is the reference rasterizer: it draws front and back
// certificate pages onto RGBA canvases at a supersampled resolution so the
// embedded rasters stay legible in print.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log"

	"certmaster/models"
	"certmaster/template"
	"certmaster/utils"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
)

// Base page geometry in CSS pixels (A4 landscape at 96dpi); the supersampling
// scale multiplies everything.
const (
	baseWidth  = 1123
	baseHeight = 794
)

var (
	ink      = color.RGBA{33, 37, 41, 255}
	faded    = color.RGBA{108, 117, 125, 255}
	borderCl = color.RGBA{52, 58, 64, 255}
	ruleCl   = color.RGBA{206, 212, 218, 255}
)

// Raster renders pages one at a time onto a reused canvas. Not safe for
// concurrent use; the exporter serializes all calls.
type Raster struct {
	scale  int
	canvas *image.RGBA
	faces  map[faceKey]font.Face
}

// NewRaster creates a renderer with the given supersampling factor.
func NewRaster(scale int) *Raster {
	if scale < 1 {
		scale = 1
	}
	return &Raster{
		scale:  scale,
		canvas: image.NewRGBA(image.Rect(0, 0, baseWidth*scale, baseHeight*scale)),
		faces:  make(map[faceKey]font.Face),
	}
}

// px converts a CSS-pixel measure to canvas pixels.
func (r *Raster) px(v int) int { return v * r.scale }

// begin clears the shared canvas to white and returns it.
func (r *Raster) begin() *image.RGBA {
	draw.Draw(r.canvas, r.canvas.Bounds(), image.White, image.Point{}, draw.Src)
	return r.canvas
}

// snapshot copies the shared canvas so the caller owns stable pixels while
// the next page reuses the surface.
func (r *Raster) snapshot() image.Image {
	out := image.NewRGBA(r.canvas.Bounds())
	copy(out.Pix, r.canvas.Pix)
	return out
}

// drawInlineImage decodes and draws an inline asset scaled to fit the target
// box. A missing or undecodable asset is skipped, never a page failure.
func (r *Raster) drawInlineImage(dst draw.Image, uri string, box image.Rectangle, cover bool) {
	if uri == "" {
		return
	}
	img, err := utils.DecodeDataURI(uri)
	if err != nil {
		log.Printf("[RENDER] Skipping undecodable image asset: %v", err)
		return
	}

	if cover {
		img = imaging.Fill(img, box.Dx(), box.Dy(), imaging.Center, imaging.Lanczos)
	} else {
		img = imaging.Fit(img, box.Dx(), box.Dy(), imaging.Lanczos)
	}
	// Center the fitted image inside the box.
	b := img.Bounds()
	offset := image.Pt(box.Min.X+(box.Dx()-b.Dx())/2, box.Min.Y+(box.Dy()-b.Dy())/2)
	draw.Draw(dst, image.Rectangle{Min: offset, Max: offset.Add(b.Size())}, img, b.Min, draw.Over)
}

// fillRect paints a solid rectangle.
func fillRect(dst draw.Image, rect image.Rectangle, col color.Color) {
	draw.Draw(dst, rect, image.NewUniform(col), image.Point{}, draw.Src)
}

// drawBorder paints a frame of the given thickness just inside the bounds.
func drawBorder(dst draw.Image, bounds image.Rectangle, thickness int, col color.Color) {
	if thickness <= 0 {
		return
	}
	fillRect(dst, image.Rect(bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Min.Y+thickness), col)
	fillRect(dst, image.Rect(bounds.Min.X, bounds.Max.Y-thickness, bounds.Max.X, bounds.Max.Y), col)
	fillRect(dst, image.Rect(bounds.Min.X, bounds.Min.Y, bounds.Min.X+thickness, bounds.Max.Y), col)
	fillRect(dst, image.Rect(bounds.Max.X-thickness, bounds.Min.Y, bounds.Max.X, bounds.Max.Y), col)
}

// RenderFront draws one student's certificate front page.
func (r *Raster) RenderFront(doc models.CertificateDocument, student models.Student) (image.Image, error) {
	dst := r.begin()
	bounds := dst.Bounds()

	r.drawInlineImage(dst, doc.BgImage, bounds, true)
	drawBorder(dst, bounds, r.px(doc.FrontBorderWidth), borderCl)

	sidePad := r.px(doc.FrontSidePadding)
	textX := sidePad
	textWidth := bounds.Dx() - 2*sidePad
	if textWidth < r.px(100) {
		return nil, fmt.Errorf("front side padding %d leaves no room for text", doc.FrontSidePadding)
	}

	// Title block.
	y := r.px(doc.FrontHeaderPadding+doc.TitleVerticalOffset) + r.px(doc.TitleFontSize)
	r.drawLine(dst, "CERTIFICADO", r.px(doc.TitleFontSize), true, textX, y, textWidth, models.AlignCenter, ink)
	y += r.px(doc.TitleSpacing) + r.px(doc.SubtitleFontSize)
	r.drawLine(dst, "DE CONCLUSÃO", r.px(doc.SubtitleFontSize), false, textX, y, textWidth, models.AlignCenter, faded)

	// Highlighted (decorative) student name; falls back to the plain name.
	display := student.DisplayName
	if display == "" {
		display = student.Name
	}
	y += r.px(40+doc.HighlightNameVerticalOffset) + r.px(doc.HighlightNameFontSize)
	r.drawLine(dst, display, r.px(doc.HighlightNameFontSize), true, textX, y, textWidth, models.AlignCenter, ink)

	// Substituted body text.
	body := template.Replace(doc.BaseText, doc, &student)
	bodySize := 18
	y += r.px(48+doc.BodyVerticalOffset+doc.MainTextVerticalOffset) + r.px(bodySize)
	y = r.drawParagraph(dst, template.Segments(body), r.px(bodySize), textX, y, textWidth, doc.FrontTextAlign, ink)

	r.drawSignatures(dst, doc, bounds)

	// Seal in the lower right corner, above the border.
	if doc.DigitalSeal != "" {
		sealSize := r.px(110)
		margin := r.px(doc.FrontBorderWidth + 24)
		box := image.Rect(bounds.Max.X-margin-sealSize, bounds.Max.Y-margin-sealSize, bounds.Max.X-margin, bounds.Max.Y-margin)
		r.drawInlineImage(dst, doc.DigitalSeal, box, false)
	}

	return r.snapshot(), nil
}

// drawSignatures renders the signature block: handwritten signature image,
// the first instructor, and the technical responsible when visible.
func (r *Raster) drawSignatures(dst draw.Image, doc models.CertificateDocument, bounds image.Rectangle) {
	sigSize := r.px(doc.SignatureFontSize)
	pad := r.px(doc.SignaturesHorizontalPadding)
	baseY := bounds.Max.Y - r.px(doc.FrontFooterPadding) - r.px(doc.SignaturesVerticalOffset) - sigSize*4

	columns := 1
	if doc.ShowTechResponsible && doc.TechResponsibleName != "" {
		columns = 2
	}
	colWidth := (bounds.Dx() - 2*pad) / columns

	// First instructor in insertion order signs.
	if len(doc.Instructors) > 0 {
		inst := doc.Instructors[0]
		x := pad
		if doc.SignatureImage != "" {
			box := image.Rect(x+colWidth/4, baseY-r.px(60), x+colWidth*3/4, baseY-r.px(8))
			r.drawInlineImage(dst, doc.SignatureImage, box, false)
		}
		fillRect(dst, image.Rect(x+colWidth/6, baseY, x+colWidth*5/6, baseY+r.px(1)), ink)
		r.drawLine(dst, inst.Name, sigSize, true, x, baseY+sigSize+r.px(6), colWidth, models.AlignCenter, ink)
		r.drawLine(dst, inst.Competencies, sigSize*5/6, false, x, baseY+sigSize*2+r.px(12), colWidth, models.AlignCenter, faded)
	}

	if columns == 2 {
		x := pad + colWidth
		fillRect(dst, image.Rect(x+colWidth/6, baseY, x+colWidth*5/6, baseY+r.px(1)), ink)
		r.drawLine(dst, doc.TechResponsibleName, sigSize, true, x, baseY+sigSize+r.px(6), colWidth, models.AlignCenter, ink)
		r.drawLine(dst, doc.TechResponsibleCompetencies, sigSize*5/6, false, x, baseY+sigSize*2+r.px(12), colWidth, models.AlignCenter, faded)
	}
}

// RenderBack draws the shared back page: institution header and curriculum
// grid. No student context.
func (r *Raster) RenderBack(doc models.CertificateDocument) (image.Image, error) {
	dst := r.begin()
	bounds := dst.Bounds()

	sidePad := r.px(64)
	width := bounds.Dx() - 2*sidePad

	// Institution header.
	y := r.px(doc.BackHeaderPadding+doc.BackInstitutionVerticalOffset) + r.px(doc.BackHeaderFontSize)
	headerSize := r.px(doc.BackHeaderFontSize)
	r.drawLine(dst, doc.CompanyName, headerSize, true, sidePad, y, width, models.AlignCenter, ink)
	if doc.CompanyCNPJ != "" {
		y += headerSize * 3 / 2
		r.drawLine(dst, "CNPJ "+doc.CompanyCNPJ, headerSize*3/4, false, sidePad, y, width, models.AlignCenter, faded)
	}
	if doc.Address != "" {
		y += headerSize
		r.drawLine(dst, doc.Address, headerSize*3/4, false, sidePad, y, width, models.AlignCenter, faded)
	}

	// Curriculum grid. The split ratio positions the grid under the header
	// area the same way the editor preview does.
	gridTop := bounds.Dy()*doc.BackSplitRatio/100 + r.px(doc.BackCurriculumVerticalOffset)
	if gridTop < y+r.px(24) {
		gridTop = y + r.px(24)
	}
	rowSize := r.px(doc.BackCurriculumFontSize)
	rowPad := r.px(doc.BackRowPadding)
	hoursWidth := r.px(doc.HoursColumnWidth)

	rowY := gridTop
	r.drawLine(dst, "CONTEÚDO PROGRAMÁTICO", rowSize, true, sidePad, rowY, width, models.AlignCenter, ink)
	rowY += rowSize + rowPad

	for _, item := range doc.Curriculum {
		rowY += rowSize + rowPad
		if rowY > bounds.Max.Y-r.px(doc.BackFooterPadding+40) {
			break
		}
		subjectWidth := width
		if doc.ShowHoursColumn {
			subjectWidth = width - hoursWidth
			r.drawLine(dst, fmt.Sprintf("%dh", item.Hours), rowSize, false, sidePad+subjectWidth, rowY, hoursWidth, models.AlignRight, ink)
		}
		r.drawLine(dst, item.Subject, rowSize, false, sidePad, rowY, subjectWidth, models.AlignLeft, ink)
		fillRect(dst, image.Rect(sidePad, rowY+rowPad/2, sidePad+width, rowY+rowPad/2+r.px(1)), ruleCl)
	}

	if doc.ShowHoursColumn {
		rowY += rowSize + rowPad
		r.drawLine(dst, "Carga horária total: "+doc.TotalHours+"h", rowSize, true, sidePad, rowY, width, models.AlignRight, ink)
	}

	// Footer with the service provider identification.
	footSize := r.px(doc.FooterFontSize)
	footY := bounds.Max.Y - r.px(doc.BackFooterPadding)
	if doc.ProviderName != "" {
		footer := doc.ProviderName
		if doc.ProviderCNPJ != "" {
			footer += " - CNPJ " + doc.ProviderCNPJ
		}
		r.drawLine(dst, footer, footSize, false, sidePad, footY, width, models.AlignCenter, faded)
	}

	return r.snapshot(), nil
}
