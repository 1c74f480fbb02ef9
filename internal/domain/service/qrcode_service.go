package service

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateProfileQR generates a shareable QR code for a customer profile
	GenerateProfileQR(customerUserID string) ([]byte, error)

	// ParseProfileQR parses QR code data and returns the customer user id
	ParseProfileQR(qrData string) (string, error)
}
