// Package ticket renders attendee check-in tickets as QR codes.
package ticket

import (
	"encoding/json"
	"fmt"

	"evently/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

type ticketService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// TicketData represents the QR code payload structure
type TicketData struct {
	UserID string `json:"user_id"`
	Type   string `json:"type"`
}

// NewTicketService creates a new ticket service instance
func NewTicketService(size int, errorCorrectionLevel string) service.TicketService {
	// Set error correction level
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

	return &ticketService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateTicketQR generates a QR code identifying the attendee for check-in.
func (s *ticketService) GenerateTicketQR(userID uuid.UUID) ([]byte, error) {
	data := TicketData{
		UserID: userID.String(),
		Type:   "ticket",
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal ticket data: %w", err)
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

// ParseTicketQR parses ticket payload data and returns the user ID.
func (s *ticketService) ParseTicketQR(qrData string) (uuid.UUID, error) {
	var data TicketData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, fmt.Errorf("failed to unmarshal ticket data: %w", err)
	}

	// Validate type
	if data.Type != "ticket" {
		return uuid.Nil, fmt.Errorf("invalid ticket type: %s", data.Type)
	}

	userID, err := uuid.Parse(data.UserID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse user ID: %w", err)
	}

	return userID, nil
}
