package service

import (
	"github.com/google/uuid"
)

// TicketService defines the interface for generating and parsing attendee
// check-in tickets.
type TicketService interface {
	// GenerateTicketQR renders a PNG QR code identifying the given user.
	GenerateTicketQR(userID uuid.UUID) ([]byte, error)

	// ParseTicketQR decodes ticket QR payload data back into the user id.
	ParseTicketQR(qrData string) (uuid.UUID, error)
}
