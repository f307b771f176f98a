package services

import (
	"fmt"
	"strings"

	"github.com/hypernova-labs/etiket-service/internal/models"
	"github.com/hypernova-labs/etiket-service/internal/pdf"
	"github.com/sirupsen/logrus"
)

// DocumentService genera documentos de empresa firmados
type DocumentService struct {
	logger *logrus.Logger
}

// NewDocumentService crea una nueva instancia del servicio
func NewDocumentService(logger *logrus.Logger) *DocumentService {
	return &DocumentService{
		logger: logger,
	}
}

// splitBodyLines divide el cuerpo en líneas, descartando por completo las
// líneas en blanco: los saltos consecutivos colapsan sin dejar espaciadores
func splitBodyLines(description string) []string {
	var lines []string
	normalized := strings.ReplaceAll(description, "\r\n", "\n")
	for _, line := range strings.Split(normalized, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// Compose mapea una petición de documento validada sobre la plantilla fija
func (s *DocumentService) Compose(req *models.DocumentRequest, logoPath, signaturePath string) []pdf.Element {
	var elements []pdf.Element

	// Logo opcional arriba de la página
	if logoPath != "" {
		elements = append(elements,
			pdf.Image{Path: logoPath, Width: 2 * pdf.Inch, Height: 1 * pdf.Inch, Align: pdf.AlignCenter},
			pdf.Spacer{Height: 0.2 * pdf.Inch},
		)
	}

	elements = append(elements,
		pdf.Paragraph{Text: req.CompanyName, Size: 24, Color: pdf.ColorDarkSlate, Align: pdf.AlignCenter, Bold: true},
		pdf.Spacer{Height: 0.3 * pdf.Inch},
		pdf.Paragraph{Text: req.Title, Size: 18, Color: pdf.ColorSlate, Align: pdf.AlignCenter, Bold: true},
		pdf.Spacer{Height: 0.2 * pdf.Inch},
		pdf.Paragraph{Text: fmt.Sprintf("Tarih: %s", req.Date), Size: 12, Align: pdf.AlignRight},
		pdf.Spacer{Height: 0.2 * pdf.Inch},
	)

	// Cuerpo: un párrafo por línea no vacía
	for _, line := range splitBodyLines(req.Description) {
		elements = append(elements,
			pdf.Paragraph{Text: line, Size: 12, LineHeight: 14, Color: pdf.ColorDarkSlate},
			pdf.Spacer{Height: 0.1 * pdf.Inch},
		)
	}

	// Bloque de firma alineado a la derecha
	elements = append(elements,
		pdf.Spacer{Height: 0.5 * pdf.Inch},
		pdf.SignatureBlock{
			ImagePath: signaturePath,
			ImageW:    2 * pdf.Inch,
			ImageH:    1 * pdf.Inch,
			Lines: []string{
				fmt.Sprintf("Yetkili: %s", req.AuthorizedName),
				"İmza",
			},
			FontSize: 12,
		},
	)

	return elements
}

// GeneratePDF valida, compone y renderiza un documento
func (s *DocumentService) GeneratePDF(req *models.DocumentRequest, logoPath, signaturePath string) ([]byte, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	data, err := pdf.Render(s.Compose(req, logoPath, signaturePath))
	if err != nil {
		return nil, fmt.Errorf("error rendering document PDF: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"company_name": req.CompanyName,
		"pdf_size":     len(data),
	}).Info("Document PDF generated successfully")

	return data, nil
}
