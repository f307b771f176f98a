package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hypernova-labs/etiket-service/internal/cache"
	"github.com/hypernova-labs/etiket-service/internal/config"
	"github.com/hypernova-labs/etiket-service/internal/models"
	"github.com/hypernova-labs/etiket-service/internal/services"
	"github.com/sirupsen/logrus"
)

// API maneja todos los endpoints de la API
type API struct {
	labelService    *services.LabelService
	documentService *services.DocumentService
	uploadService   *services.UploadService
	redis           *cache.Redis
	cfg             *config.Config
	logger          *logrus.Logger
}

// NewAPI crea una nueva instancia de la API
func NewAPI(
	labelService *services.LabelService,
	documentService *services.DocumentService,
	uploadService *services.UploadService,
	redis *cache.Redis,
	cfg *config.Config,
	logger *logrus.Logger,
) *API {
	return &API{
		labelService:    labelService,
		documentService: documentService,
		uploadService:   uploadService,
		redis:           redis,
		cfg:             cfg,
		logger:          logger,
	}
}

// Index ejecuta el barrido de subidas obsoletas y sirve la página principal
func (api *API) Index(c *gin.Context) {
	for _, failure := range api.uploadService.CleanupStale() {
		api.logger.WithError(failure.Err).WithField("path", failure.Path).Warn("Cleanup error")
	}
	c.HTML(http.StatusOK, "index.html", nil)
}

// BarcodeGeneratorPage sirve el formulario de etiquetas
func (api *API) BarcodeGeneratorPage(c *gin.Context) {
	c.HTML(http.StatusOK, "barcode_generator.html", nil)
}

// DocumentGeneratorPage sirve el formulario de documentos
func (api *API) DocumentGeneratorPage(c *gin.Context) {
	c.HTML(http.StatusOK, "document_generator.html", nil)
}

// Health retorna el estado del servicio
func (api *API) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC(),
		"service":   "etiket-service",
		"version":   "1.0.0",
	})
}

// GenerateBarcode genera el PDF de etiqueta de producto a partir del formulario
func (api *API) GenerateBarcode(c *gin.Context) {
	if !api.parseForm(c) {
		return
	}

	req := &models.LabelRequest{
		ProductName:   c.PostForm("product_name"),
		Price:         c.PostForm("price"),
		BarcodeNumber: c.PostForm("barcode_number"),
		Date:          c.PostForm("date"),
		Description:   c.PostForm("description"),
	}

	// Validar antes de persistir cualquier archivo subido
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, models.NewErrorResponse(err.Error()))
		return
	}

	logoPath, ok := api.saveUpload(c, "logo")
	if !ok {
		return
	}

	data, err := api.labelService.GeneratePDF(req, logoPath)
	if err != nil {
		api.fail(c, err)
		return
	}

	api.sendPDF(c, "etiket", data)
}

// GenerateDocument genera el PDF de documento firmado a partir del formulario
func (api *API) GenerateDocument(c *gin.Context) {
	if !api.parseForm(c) {
		return
	}

	req := &models.DocumentRequest{
		CompanyName:    c.PostForm("company_name"),
		Title:          c.PostForm("title"),
		Description:    c.PostForm("description"),
		Date:           c.PostForm("date"),
		AuthorizedName: c.PostForm("authorized_name"),
	}

	// Validar antes de persistir cualquier archivo subido
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, models.NewErrorResponse(err.Error()))
		return
	}

	logoPath, ok := api.saveUpload(c, "logo")
	if !ok {
		return
	}
	signaturePath, ok := api.saveUpload(c, "signature")
	if !ok {
		return
	}

	data, err := api.documentService.GeneratePDF(req, logoPath, signaturePath)
	if err != nil {
		api.fail(c, err)
		return
	}

	api.sendPDF(c, "belge", data)
}

// parseForm parsea el cuerpo multipart, traduciendo un cuerpo sobredimensionado
// a la respuesta 413 antes de leer cualquier campo
func (api *API) parseForm(c *gin.Context) bool {
	if err := c.Request.ParseMultipartForm(api.cfg.Upload.MaxSize); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) || strings.Contains(err.Error(), "request body too large") {
			c.JSON(http.StatusRequestEntityTooLarge, models.NewErrorResponse(models.MsgFileTooLarge))
			return false
		}
		api.fail(c, err)
		return false
	}
	return true
}

// saveUpload persiste el archivo opcional de un slot. Un slot vacío o un
// archivo filtrado por la política de imágenes produce una ruta vacía.
func (api *API) saveUpload(c *gin.Context, slot string) (string, bool) {
	fh, err := c.FormFile(slot)
	if err != nil {
		return "", true
	}

	path, err := api.uploadService.SaveImage(fh, slot)
	if err != nil {
		api.fail(c, err)
		return "", false
	}
	return path, true
}

// fail mapea un error a los códigos de estado: validación a 400, todo lo
// demás a 500 con el mensaje interpolado
func (api *API) fail(c *gin.Context, err error) {
	var validationErr *models.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, models.NewErrorResponse(validationErr.Message))
		return
	}

	api.logger.WithError(err).Error("Error generating PDF")
	c.JSON(http.StatusInternalServerError, models.NewErrorResponse(fmt.Sprintf(models.MsgGenerationFailed, err)))
}

// sendPDF envía el documento como descarga bajo un nombre aleatorizado
func (api *API) sendPDF(c *gin.Context, prefix string, data []byte) {
	filename := fmt.Sprintf("%s_%s.pdf", prefix, uuid.New())

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Length", fmt.Sprintf("%d", len(data)))
	c.Data(http.StatusOK, "application/pdf", data)
}
