package service

// QRCodeService defines the interface for QR code generation services.
type QRCodeService interface {
	// GenerateOrderQR renders the WhatsApp order deep link for a dish as a
	// PNG QR code.
	GenerateOrderQR(orderLink string) ([]byte, error)
}
