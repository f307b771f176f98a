package pdf

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderEmptyDocument(t *testing.T) {
	data, err := Render(nil)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestRenderTextElements(t *testing.T) {
	elements := []Element{
		Paragraph{Text: "Başlık", Size: 24, Color: ColorDarkSlate, Align: AlignCenter},
		Spacer{Height: 10},
		Paragraph{Text: "Sağa dayalı", Size: 12, Align: AlignRight},
		Paragraph{Text: "8690000123457", Size: 12, Align: AlignCenter, Mono: true},
		Table{
			Rows:      [][]string{{"Tarih:", "29.08.2026"}, {"Açıklama:", "Soğuk sıkım"}},
			ColWidths: []float64{2 * Inch, 4 * Inch},
			RowHeight: 12,
			FontSize:  10,
			TextColor: ColorDarkSlate,
			LabelFill: ColorLightGray,
			GridColor: ColorGridGray,
		},
		SignatureBlock{Lines: []string{"Yetkili: Ayşe Demir", "İmza"}, FontSize: 12},
	}

	data, err := Render(elements)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
	assert.Greater(t, len(data), 1000)
}

func TestRenderImageFromReader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 10, 10))))

	elements := []Element{
		Image{Reader: &buf, Name: "bitmap", Width: 2 * Inch, Height: 1 * Inch, Align: AlignCenter},
	}

	data, err := Render(elements)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}
