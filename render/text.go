package render

import (
	"image"
	"image/color"
	"image/draw"
	"log"
	"strings"

	"certmaster/models"
	"certmaster/template"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

var (
	regularFont *opentype.Font
	boldFont    *opentype.Font
)

func init() {
	var err error
	regularFont, err = opentype.Parse(goregular.TTF)
	if err != nil {
		log.Fatalf("Failed to parse embedded regular font: %v", err)
	}
	boldFont, err = opentype.Parse(gobold.TTF)
	if err != nil {
		log.Fatalf("Failed to parse embedded bold font: %v", err)
	}
}

type faceKey struct {
	size int
	bold bool
}

// face returns a cached opentype face at a pixel size already multiplied by
// the supersampling scale.
func (r *Raster) face(sizePx int, bold bool) font.Face {
	if sizePx < 1 {
		sizePx = 1
	}
	key := faceKey{size: sizePx, bold: bold}
	if f, ok := r.faces[key]; ok {
		return f
	}

	src := regularFont
	if bold {
		src = boldFont
	}
	f, err := opentype.NewFace(src, &opentype.FaceOptions{
		Size:    float64(sizePx),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		// Face creation over a parsed font only fails on absurd options;
		// fall back to whatever face exists rather than aborting a page.
		for _, cached := range r.faces {
			return cached
		}
		log.Fatalf("Failed to create font face: %v", err)
	}
	r.faces[key] = f
	return f
}

// word is one wrappable unit with uniform emphasis.
type word struct {
	text string
	bold bool
}

// line is a laid-out row of words plus its natural (unjustified) width.
type line struct {
	words []word
	width int
}

// splitWords flattens emphasis segments into words, keeping each word's face.
func splitWords(segs []template.Segment) []word {
	var words []word
	for _, seg := range segs {
		for _, w := range strings.Fields(seg.Text) {
			words = append(words, word{text: w, bold: seg.Bold})
		}
	}
	return words
}

func (r *Raster) measure(f font.Face, s string) int {
	return font.MeasureString(f, s).Ceil()
}

// wrap lays words into lines no wider than maxWidth using greedy fill.
func (r *Raster) wrap(words []word, sizePx, maxWidth int) []line {
	space := r.measure(r.face(sizePx, false), " ")

	var lines []line
	var cur line
	for _, w := range words {
		wWidth := r.measure(r.face(sizePx, w.bold), w.text)
		next := cur.width + wWidth
		if len(cur.words) > 0 {
			next += space
		}
		if len(cur.words) > 0 && next > maxWidth {
			lines = append(lines, cur)
			cur = line{}
			next = wWidth
		}
		cur.words = append(cur.words, w)
		cur.width = next
	}
	if len(cur.words) > 0 {
		lines = append(lines, cur)
	}
	return lines
}

// drawParagraph renders wrapped text inside [x, x+maxWidth] starting at
// baseline y, honoring the document alignment. Returns the next baseline.
func (r *Raster) drawParagraph(dst draw.Image, segs []template.Segment, sizePx, x, y, maxWidth int, align models.TextAlign, col color.Color) int {
	words := splitWords(segs)
	if len(words) == 0 {
		return y
	}

	space := r.measure(r.face(sizePx, false), " ")
	lineHeight := sizePx * 3 / 2

	lines := r.wrap(words, sizePx, maxWidth)
	for li, ln := range lines {
		startX := x
		gap := space
		switch align {
		case models.AlignCenter:
			startX = x + (maxWidth-ln.width)/2
		case models.AlignRight:
			startX = x + maxWidth - ln.width
		case models.AlignJustify:
			// Stretch interior gaps; the last line stays natural.
			if li < len(lines)-1 && len(ln.words) > 1 {
				gap = space + (maxWidth-ln.width)/(len(ln.words)-1)
			}
		}

		penX := startX
		for _, w := range ln.words {
			f := r.face(sizePx, w.bold)
			d := font.Drawer{
				Dst:  dst,
				Src:  image.NewUniform(col),
				Face: f,
				Dot:  fixed.P(penX, y),
			}
			d.DrawString(w.text)
			penX += r.measure(f, w.text) + gap
		}
		y += lineHeight
	}
	return y
}

// drawLine renders a single, unwrapped run of text with the given alignment
// inside [x, x+maxWidth]; baseline at y.
func (r *Raster) drawLine(dst draw.Image, text string, sizePx int, bold bool, x, y, maxWidth int, align models.TextAlign, col color.Color) {
	if text == "" {
		return
	}
	f := r.face(sizePx, bold)
	w := r.measure(f, text)

	startX := x
	switch align {
	case models.AlignCenter:
		startX = x + (maxWidth-w)/2
	case models.AlignRight:
		startX = x + maxWidth - w
	}

	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: f,
		Dot:  fixed.P(startX, y),
	}
	d.DrawString(text)
}
