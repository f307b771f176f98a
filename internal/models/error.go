package models

// ErrorResponse representa la respuesta de error de la API
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewErrorResponse crea una nueva respuesta de error
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

// Mensajes visibles para el usuario (copia del producto, en turco)
const (
	MsgMissingRequiredFields = "Lütfen tüm zorunlu alanları doldurun"
	MsgMissingFields         = "Lütfen tüm alanları doldurun"
	MsgFileTooLarge          = "Dosya boyutu 5MB limitini aşıyor"
	MsgTooManyRequests       = "Çok fazla istek, lütfen bekleyin"
	MsgGenerationFailed      = "Bir hata oluştu: %v"
)

// ValidationError marca una petición rechazada antes de renderizar
type ValidationError struct {
	Message string
}

// Error implementa la interfaz error
func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError crea un error de validación
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}
