package barcode

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
)

// Resolución del símbolo rasterizado; el PDF lo reescala al colocarlo
const (
	symbolWidth  = 400
	symbolHeight = 150
)

// EncodeCode128 codifica number como símbolo Code 128 y lo retorna como
// PNG en memoria, sin archivo intermedio
func EncodeCode128(number string) ([]byte, error) {
	symbol, err := code128.Encode(number)
	if err != nil {
		return nil, fmt.Errorf("error encoding barcode: %w", err)
	}

	scaled, err := barcode.Scale(symbol, symbolWidth, symbolHeight)
	if err != nil {
		return nil, fmt.Errorf("error scaling barcode: %w", err)
	}

	// El símbolo escalado usa Gray16; se convierte a 8 bits porque gofpdf
	// no soporta PNG con profundidad de 16 bits
	gray := image.NewGray(scaled.Bounds())
	draw.Draw(gray, gray.Bounds(), scaled, scaled.Bounds().Min, draw.Src)

	var buf bytes.Buffer
	if err := png.Encode(&buf, gray); err != nil {
		return nil, fmt.Errorf("error rasterizing barcode: %w", err)
	}

	return buf.Bytes(), nil
}
