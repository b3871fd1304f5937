package service

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateCheeseQR renders a PNG QR code linking to the cheese
	GenerateCheeseQR(cheeseID string) ([]byte, error)

	// ParseCheeseLink extracts the cheese id from a scanned share link
	ParseCheeseLink(link string) (string, error)
}
