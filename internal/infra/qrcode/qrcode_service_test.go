package qrcode

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngSignature = []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a}

func TestQRCodeService_GenerateOrderQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	png, err := service.GenerateOrderQR("https://wa.me/5511999990000?text=Ol%C3%A1")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngSignature), "output should be a PNG image")
}

func TestQRCodeService_UnknownLevelFallsBackToMedium(t *testing.T) {
	service := NewQRCodeService(128, "X")

	png, err := service.GenerateOrderQR("https://wa.me/5511999990000")
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

func TestQRCodeService_EmptyContent(t *testing.T) {
	service := NewQRCodeService(256, "M")

	png, err := service.GenerateOrderQR("")
	assert.Error(t, err)
	assert.Nil(t, png)
}
