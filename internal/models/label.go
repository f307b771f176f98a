package models

// LabelRequest representa los campos del formulario de etiqueta de producto
type LabelRequest struct {
	ProductName   string
	Price         string // cadena opaca, se imprime tal cual
	BarcodeNumber string
	Date          string
	Description   string // opcional
}

// Validate verifica los campos obligatorios de la etiqueta
func (r *LabelRequest) Validate() error {
	if r.ProductName == "" || r.Price == "" || r.BarcodeNumber == "" || r.Date == "" {
		return NewValidationError(MsgMissingRequiredFields)
	}
	return nil
}
