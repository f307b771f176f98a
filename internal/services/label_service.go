package services

import (
	"bytes"
	"fmt"

	"github.com/hypernova-labs/etiket-service/internal/barcode"
	"github.com/hypernova-labs/etiket-service/internal/models"
	"github.com/hypernova-labs/etiket-service/internal/pdf"
	"github.com/sirupsen/logrus"
)

// LabelService genera etiquetas de producto con código de barras
type LabelService struct {
	logger *logrus.Logger
}

// NewLabelService crea una nueva instancia del servicio
func NewLabelService(logger *logrus.Logger) *LabelService {
	return &LabelService{
		logger: logger,
	}
}

// Compose mapea una petición de etiqueta validada sobre la plantilla fija.
// El símbolo Code 128 se codifica en memoria, sin archivo intermedio.
func (s *LabelService) Compose(req *models.LabelRequest, logoPath string) ([]pdf.Element, error) {
	symbol, err := barcode.EncodeCode128(req.BarcodeNumber)
	if err != nil {
		return nil, fmt.Errorf("error encoding barcode %q: %w", req.BarcodeNumber, err)
	}

	var elements []pdf.Element

	// Logo opcional arriba de la página
	if logoPath != "" {
		elements = append(elements,
			pdf.Image{Path: logoPath, Width: 2 * pdf.Inch, Height: 1 * pdf.Inch, Align: pdf.AlignCenter},
			pdf.Spacer{Height: 0.5 * pdf.Inch},
		)
	}

	elements = append(elements,
		pdf.Paragraph{Text: "ÜRÜN ETİKETİ", Size: 24, Color: pdf.ColorDarkSlate, Align: pdf.AlignCenter, Bold: true},
		pdf.Spacer{Height: 0.3 * pdf.Inch},
		pdf.Paragraph{Text: req.ProductName, Size: 16, Color: pdf.ColorSlate, Align: pdf.AlignCenter, Bold: true},
		pdf.Spacer{Height: 0.2 * pdf.Inch},
		pdf.Image{Reader: bytes.NewReader(symbol), Name: "barcode", Width: 4 * pdf.Inch, Height: 1.5 * pdf.Inch, Align: pdf.AlignCenter},
		pdf.Spacer{Height: 0.1 * pdf.Inch},
		pdf.Paragraph{Text: req.BarcodeNumber, Size: 12, Align: pdf.AlignCenter, Mono: true},
		pdf.Spacer{Height: 0.3 * pdf.Inch},
		pdf.Paragraph{Text: fmt.Sprintf("Fiyat: %s TL", req.Price), Size: 20, Color: pdf.ColorRed, Align: pdf.AlignCenter, Bold: true},
		pdf.Spacer{Height: 0.2 * pdf.Inch},
	)

	// Tabla de fecha y descripción; la fila de descripción solo si hay texto
	rows := [][]string{
		{"Tarih:", req.Date},
	}
	if req.Description != "" {
		rows = append(rows, []string{"Açıklama:", req.Description})
	}
	elements = append(elements, pdf.Table{
		Rows:      rows,
		ColWidths: []float64{2 * pdf.Inch, 4 * pdf.Inch},
		RowHeight: 12,
		FontSize:  10,
		TextColor: pdf.ColorDarkSlate,
		LabelFill: pdf.ColorLightGray,
		GridColor: pdf.ColorGridGray,
	})

	return elements, nil
}

// GeneratePDF valida, compone y renderiza una etiqueta
func (s *LabelService) GeneratePDF(req *models.LabelRequest, logoPath string) ([]byte, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	elements, err := s.Compose(req, logoPath)
	if err != nil {
		return nil, err
	}

	data, err := pdf.Render(elements)
	if err != nil {
		return nil, fmt.Errorf("error rendering label PDF: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"product_name": req.ProductName,
		"pdf_size":     len(data),
	}).Info("Label PDF generated successfully")

	return data, nil
}
