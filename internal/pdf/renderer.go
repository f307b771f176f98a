package pdf

import (
	"bytes"
	_ "embed"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// Mapa cp1254 tomado de gofpdf (font/cp1254.map); embebido para no depender
// del directorio de fuentes en tiempo de ejecución
//
//go:embed cp1254.map
var cp1254Map []byte

// Geometría A4 vertical con márgenes de 2cm
const (
	pageWidth = 210.0
	margin    = 20.0
	contentW  = pageWidth - 2*margin
	ptToMM    = 25.4 / 72.0
)

// Inch en milímetros, para dimensionar elementos
const Inch = 25.4

// page envuelve el documento gofpdf junto con el traductor de caracteres
type page struct {
	fpdf *gofpdf.Fpdf
	tr   func(string) string
}

// Render dibuja la secuencia de elementos sobre páginas A4 y retorna los
// bytes del PDF. El desborde de contenido solo produce un salto de página.
func Render(elements []Element) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetMargins(margin, margin, margin)
	doc.SetAutoPageBreak(true, margin)
	doc.AddPage()

	// cp1254 cubre los caracteres turcos con las fuentes estándar
	tr, err := gofpdf.UnicodeTranslator(bytes.NewReader(cp1254Map))
	if err != nil {
		return nil, fmt.Errorf("error generating PDF: %w", err)
	}
	p := &page{fpdf: doc, tr: tr}
	for _, element := range elements {
		element.draw(p)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("error generating PDF: %w", err)
	}

	return buf.Bytes(), nil
}

func (e Paragraph) draw(p *page) {
	family := "Helvetica"
	if e.Mono {
		family = "Courier"
	}
	style := ""
	if e.Bold {
		style = "B"
	}
	p.fpdf.SetFont(family, style, e.Size)
	p.fpdf.SetTextColor(e.Color.R, e.Color.G, e.Color.B)

	lineHeight := e.LineHeight
	if lineHeight == 0 {
		lineHeight = e.Size * 1.2
	}
	align := e.Align
	if align == "" {
		align = AlignLeft
	}

	p.fpdf.SetX(margin)
	p.fpdf.MultiCell(contentW, lineHeight*ptToMM, p.tr(e.Text), "", align, false)
}

func (e Image) draw(p *page) {
	options := gofpdf.ImageOptions{}
	name := e.Path
	if e.Reader != nil {
		name = e.Name
		options.ImageType = "PNG"
		p.fpdf.RegisterImageOptionsReader(name, options, e.Reader)
	}

	x := margin
	switch e.Align {
	case AlignCenter:
		x = margin + (contentW-e.Width)/2
	case AlignRight:
		x = pageWidth - margin - e.Width
	}

	// flow=true avanza la posición vertical debajo de la imagen
	p.fpdf.ImageOptions(name, x, 0, e.Width, e.Height, true, options, 0, "")
}

func (e Spacer) draw(p *page) {
	p.fpdf.Ln(e.Height)
}

func (e Table) draw(p *page) {
	p.fpdf.SetFont("Helvetica", "", e.FontSize)
	p.fpdf.SetTextColor(e.TextColor.R, e.TextColor.G, e.TextColor.B)
	p.fpdf.SetDrawColor(e.GridColor.R, e.GridColor.G, e.GridColor.B)

	for _, row := range e.Rows {
		p.fpdf.SetX(margin)
		for i, cell := range row {
			// Solo la columna de etiquetas lleva fondo
			fill := i == 0
			if fill {
				p.fpdf.SetFillColor(e.LabelFill.R, e.LabelFill.G, e.LabelFill.B)
			}
			p.fpdf.CellFormat(e.ColWidths[i], e.RowHeight, p.tr(cell), "1", 0, AlignLeft, fill, 0, "")
		}
		p.fpdf.Ln(e.RowHeight)
	}
}

func (e SignatureBlock) draw(p *page) {
	if e.ImagePath != "" {
		x := pageWidth - margin - e.ImageW
		p.fpdf.ImageOptions(e.ImagePath, x, 0, e.ImageW, e.ImageH, true, gofpdf.ImageOptions{}, 0, "")
		p.fpdf.Ln(0.1 * Inch)
	}

	p.fpdf.SetFont("Helvetica", "", e.FontSize)
	p.fpdf.SetTextColor(0, 0, 0)
	lineHeight := e.FontSize * 1.2 * ptToMM
	for _, line := range e.Lines {
		p.fpdf.SetX(margin)
		p.fpdf.CellFormat(contentW, lineHeight, p.tr(line), "", 1, AlignRight, false, 0, "")
	}
}
