// Package imagecard рисует карточку анализа настроения (PNG 1080x1350).
package imagecard

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/s1edev/trackerFeel/pkg/locales"
	"github.com/s1edev/trackerFeel/pkg/models"
)

const (
	cardWidth  = 1080
	cardHeight = 1350
	padding    = 80
	cardInset  = 50
)

// palette — цвета карточки: фон, акцент, вторичный, фон вставки.
type palette struct {
	bg, accent, secondary, cardBG color.RGBA
}

var palettes = map[string]palette{
	"😄": {hex("FFF9E6"), hex("F57F17"), hex("FFD54F"), hex("FFF3E0")},
	"🙂": {hex("E8F5E9"), hex("2E7D32"), hex("81C784"), hex("C8E6C9")},
	"😐": {hex("ECEFF1"), hex("455A64"), hex("90A4AE"), hex("CFD8DC")},
	"😔": {hex("E3F2FD"), hex("1565C0"), hex("64B5F6"), hex("BBDEFB")},
	"😢": {hex("EDE7F6"), hex("512DA8"), hex("9575CD"), hex("D1C4E9")},
}

var defaultPalette = palette{hex("FAFAFA"), hex("616161"), hex("9E9E9E"), hex("EEEEEE")}

// Пути к системным шрифтам. Первый читаемый берётся для всех размеров.
var fontPaths = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
	"/System/Library/Fonts/Supplemental/Arial.ttf",
}

type fonts struct {
	subtitle font.Face
	text     font.Face
	quote    font.Face
}

// loadFonts ищет системный TTF; без него — растровый запасной шрифт.
func loadFonts() fonts {
	for _, path := range fontPaths {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		ft, err := opentype.Parse(data)
		if err != nil {
			continue
		}
		face := func(size float64) font.Face {
			f, ferr := opentype.NewFace(ft, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
			if ferr != nil {
				return basicfont.Face7x13
			}
			return f
		}
		return fonts{subtitle: face(36), text: face(28), quote: face(32)}
	}
	return fonts{subtitle: basicfont.Face7x13, text: basicfont.Face7x13, quote: basicfont.Face7x13}
}

// Render рисует карточку: настроение, тренд и цитата дня.
func Render(mood string, res models.AnalysisResult) ([]byte, error) {
	pal := defaultPalette
	if fields := strings.Fields(mood); len(fields) > 0 {
		if p, ok := palettes[fields[0]]; ok {
			pal = p
		}
	}

	img := image.NewRGBA(image.Rect(0, 0, cardWidth, cardHeight))
	draw.Draw(img, img.Bounds(), &image.Uniform{pal.bg}, image.Point{}, draw.Src)

	f := loadFonts()
	l := locales.Get().Card

	y := padding + 90

	// заголовок — настроение целиком, по центру
	drawCentered(img, mood, f.subtitle, pal.accent, y)
	y += 80

	// вставка с текстом
	cardTop := y
	fillRect(img, image.Rect(cardInset, cardTop, cardWidth-cardInset, cardHeight-padding), pal.cardBG)

	x := cardInset * 2
	y = cardTop + cardInset
	maxWidth := cardWidth - x*2

	drawText(img, l.TrendLabel, f.text, pal.secondary, x, y)
	y += 45
	for _, line := range wrapText(res.Trend, f.text, maxWidth) {
		drawText(img, line, f.text, hex("212121"), x, y)
		y += lineHeight(f.text) + 6
	}
	y += 30

	// разделитель
	fillRect(img, image.Rect(x, y, cardWidth-x, y+2), pal.secondary)
	y += 40

	drawText(img, l.QuoteLabel, f.text, pal.secondary, x, y)
	y += 45
	for _, line := range wrapText(fmt.Sprintf("«%s»", res.Quote), f.quote, maxWidth) {
		drawText(img, line, f.quote, hex("424242"), x, y)
		y += lineHeight(f.quote) + 8
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("не удалось закодировать карточку: %w", err)
	}
	return buf.Bytes(), nil
}

// wrapText переносит текст по словам под максимальную ширину в пикселях.
func wrapText(text string, face font.Face, maxWidth int) []string {
	var lines []string
	current := ""
	d := font.Drawer{Face: face}
	for _, word := range strings.Fields(text) {
		test := strings.TrimSpace(current + " " + word)
		if d.MeasureString(test).Ceil() <= maxWidth {
			current = test
			continue
		}
		if current != "" {
			lines = append(lines, current)
		}
		current = word
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

func drawText(img *image.RGBA, text string, face font.Face, col color.RGBA, x, y int) {
	d := font.Drawer{
		Dst:  img,
		Src:  &image.Uniform{col},
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

func drawCentered(img *image.RGBA, text string, face font.Face, col color.RGBA, y int) {
	d := font.Drawer{Face: face}
	w := d.MeasureString(text).Ceil()
	drawText(img, text, face, col, (cardWidth-w)/2, y)
}

func fillRect(img *image.RGBA, r image.Rectangle, col color.RGBA) {
	draw.Draw(img, r, &image.Uniform{col}, image.Point{}, draw.Src)
}

func lineHeight(face font.Face) int {
	return face.Metrics().Height.Ceil()
}

func hex(s string) color.RGBA {
	var r, g, b uint8
	fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b)
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
