package barcode

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeCode128ReturnsPNG(t *testing.T) {
	data, err := EncodeCode128("8690000123457")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")))
}

func TestEncodeCode128Empty(t *testing.T) {
	data, err := EncodeCode128("")
	assert.Error(t, err)
	assert.Nil(t, data)
}
