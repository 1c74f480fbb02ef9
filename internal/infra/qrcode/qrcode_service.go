package qrcode

import (
	"encoding/json"
	"fmt"

	"bureau/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	CustomerUserID string `json:"customer_user_id"`
	Type           string `json:"type"`
}

const qrTypeProfile = "profile"

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateProfileQR generates a shareable QR code for a customer profile
func (s *qrcodeService) GenerateProfileQR(customerUserID string) ([]byte, error) {
	data := QRCodeData{
		CustomerUserID: customerUserID,
		Type:           qrTypeProfile,
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseProfileQR parses QR code data and returns the customer user id
func (s *qrcodeService) ParseProfileQR(qrData string) (string, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return "", fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != qrTypeProfile {
		return "", fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	if data.CustomerUserID == "" {
		return "", fmt.Errorf("QR code is missing the customer user id")
	}

	return data.CustomerUserID, nil
}
