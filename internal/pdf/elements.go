package pdf

import "io"

// Alineaciones horizontales dentro del área de contenido
const (
	AlignLeft   = "L"
	AlignCenter = "C"
	AlignRight  = "R"
)

// RGB es un color de 24 bits
type RGB struct {
	R, G, B int
}

// Paleta compartida por las dos plantillas
var (
	ColorDarkSlate = RGB{44, 62, 80}    // #2c3e50
	ColorSlate     = RGB{52, 73, 94}    // #34495e
	ColorRed       = RGB{231, 76, 60}   // #e74c3c
	ColorLightGray = RGB{236, 240, 241} // #ecf0f1
	ColorGridGray  = RGB{189, 195, 199} // #bdc3c7
)

// Element es un bloque de la secuencia ordenada que consume el renderer
type Element interface {
	draw(p *page)
}

// Paragraph es un bloque de texto con estilo
type Paragraph struct {
	Text       string
	Size       float64 // puntos
	LineHeight float64 // puntos; 0 deriva de Size
	Color      RGB
	Align      string
	Bold       bool
	Mono       bool // Courier en lugar de Helvetica
}

// Image coloca un bitmap con tamaño fijo. Se usa Path para archivos en disco
// o Reader (con Name como clave de registro) para bitmaps en memoria.
type Image struct {
	Path   string
	Reader io.Reader
	Name   string
	Width  float64 // mm
	Height float64 // mm
	Align  string
}

// Spacer es espacio vertical en blanco
type Spacer struct {
	Height float64 // mm
}

// Table es una grilla de celdas de texto con la primera columna sombreada
type Table struct {
	Rows      [][]string
	ColWidths []float64 // mm
	RowHeight float64   // mm
	FontSize  float64
	TextColor RGB
	LabelFill RGB
	GridColor RGB
}

// SignatureBlock apila una imagen opcional y líneas de texto contra el
// margen derecho, independiente del ancho del cuerpo del documento
type SignatureBlock struct {
	ImagePath string
	ImageW    float64 // mm
	ImageH    float64 // mm
	Lines     []string
	FontSize  float64
}
