package imagecard

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s1edev/trackerFeel/pkg/models"
)

func TestRender_ProducesPNG(t *testing.T) {
	res := models.AnalysisResult{
		Trend: "Настроение стабильно улучшается последние несколько дней.",
		Quote: "Believe you can and you're halfway there — Theodore Roosevelt",
	}

	data, err := Render(models.MoodGreat, res)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, cardWidth, img.Bounds().Dx())
	assert.Equal(t, cardHeight, img.Bounds().Dy())
}

func TestRender_UnknownMoodUsesDefaultPalette(t *testing.T) {
	data, err := Render("неизвестно", models.AnalysisResult{Trend: "тренд", Quote: "цитата"})
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestWrapText(t *testing.T) {
	f := loadFonts()
	lines := wrapText("одно два три четыре пять шесть семь восемь девять десять", f.text, 120)

	assert.Greater(t, len(lines), 1, "длинный текст переносится")
	for _, line := range lines {
		assert.NotEmpty(t, line)
	}
}
