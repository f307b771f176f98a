package models

// DocumentRequest representa los campos del formulario de documento firmado
type DocumentRequest struct {
	CompanyName    string
	Title          string
	Description    string
	Date           string
	AuthorizedName string
}

// Validate verifica que los cinco campos estén presentes
func (r *DocumentRequest) Validate() error {
	if r.CompanyName == "" || r.Title == "" || r.Description == "" || r.Date == "" || r.AuthorizedName == "" {
		return NewValidationError(MsgMissingFields)
	}
	return nil
}
