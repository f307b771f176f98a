package services

import (
	"bytes"
	"errors"
	"testing"

	"github.com/hypernova-labs/etiket-service/internal/models"
	"github.com/hypernova-labs/etiket-service/internal/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validLabelRequest() *models.LabelRequest {
	return &models.LabelRequest{
		ProductName:   "Zeytinyağı 1L",
		Price:         "249,90",
		BarcodeNumber: "8690000123457",
		Date:          "29.08.2026",
		Description:   "Soğuk sıkım",
	}
}

func TestLabelGeneratePDFMissingFields(t *testing.T) {
	service := NewLabelService(testLogger())

	mutations := map[string]func(*models.LabelRequest){
		"product_name":   func(r *models.LabelRequest) { r.ProductName = "" },
		"price":          func(r *models.LabelRequest) { r.Price = "" },
		"barcode_number": func(r *models.LabelRequest) { r.BarcodeNumber = "" },
		"date":           func(r *models.LabelRequest) { r.Date = "" },
	}

	for field, mutate := range mutations {
		req := validLabelRequest()
		mutate(req)

		data, err := service.GeneratePDF(req, "")
		require.Error(t, err, field)
		assert.Nil(t, data, field)

		var validationErr *models.ValidationError
		require.True(t, errors.As(err, &validationErr), field)
		assert.Equal(t, models.MsgMissingRequiredFields, validationErr.Message, field)
	}
}

func TestLabelDescriptionIsOptional(t *testing.T) {
	service := NewLabelService(testLogger())
	req := validLabelRequest()
	req.Description = ""

	data, err := service.GeneratePDF(req, "")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestLabelComposeOrder(t *testing.T) {
	service := NewLabelService(testLogger())

	elements, err := service.Compose(validLabelRequest(), "")
	require.NoError(t, err)
	require.NotEmpty(t, elements)

	// Sin logo, el primer elemento es el título fijo
	title, ok := elements[0].(pdf.Paragraph)
	require.True(t, ok)
	assert.Equal(t, "ÜRÜN ETİKETİ", title.Text)
	assert.Equal(t, pdf.AlignCenter, title.Align)

	// El símbolo de barras vive en memoria, nunca en disco
	var barcodeImages int
	for _, element := range elements {
		if img, ok := element.(pdf.Image); ok {
			assert.NotNil(t, img.Reader)
			assert.Empty(t, img.Path)
			barcodeImages++
		}
	}
	assert.Equal(t, 1, barcodeImages)

	// La tabla cierra la etiqueta: fecha y descripción
	table, ok := elements[len(elements)-1].(pdf.Table)
	require.True(t, ok)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, []string{"Tarih:", "29.08.2026"}, table.Rows[0])
	assert.Equal(t, []string{"Açıklama:", "Soğuk sıkım"}, table.Rows[1])
}

func TestLabelComposeOmitsEmptyDescriptionRow(t *testing.T) {
	service := NewLabelService(testLogger())
	req := validLabelRequest()
	req.Description = ""

	elements, err := service.Compose(req, "")
	require.NoError(t, err)

	table, ok := elements[len(elements)-1].(pdf.Table)
	require.True(t, ok)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, []string{"Tarih:", "29.08.2026"}, table.Rows[0])
}

func TestLabelComposeIncludesLogo(t *testing.T) {
	service := NewLabelService(testLogger())

	elements, err := service.Compose(validLabelRequest(), "uploads/logo_x.png")
	require.NoError(t, err)

	logo, ok := elements[0].(pdf.Image)
	require.True(t, ok)
	assert.Equal(t, "uploads/logo_x.png", logo.Path)
	assert.Equal(t, 2*pdf.Inch, logo.Width)
	assert.Equal(t, 1*pdf.Inch, logo.Height)
}

func TestLabelGeneratePDFMagic(t *testing.T) {
	service := NewLabelService(testLogger())

	data, err := service.GeneratePDF(validLabelRequest(), "")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
	assert.Greater(t, len(data), 1000)
}
