package qrcode

import (
	"net/url"
	"strings"

	"cheeserater/config"
	"cheeserater/internal/domain/service"
	"cheeserater/internal/errors"

	"github.com/skip2/go-qrcode"
)

const (
	defaultSize    = 256
	defaultBaseURL = "http://localhost:8080/api/v1/cheeses"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a QR code service from the qrcode config section.
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return New(defaultSize, "M", defaultBaseURL)
	}

	return New(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

// New creates a QR code service encoding links of the form <baseURL>/<cheeseID>.
func New(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}
	if size <= 0 {
		size = defaultSize
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// GenerateCheeseQR renders the share link of the cheese as a PNG.
func (s *qrcodeService) GenerateCheeseQR(cheeseID string) ([]byte, error) {
	if strings.TrimSpace(cheeseID) == "" {
		return nil, errors.New("cheese id is required")
	}

	qrCode, err := qrcode.New(s.link(cheeseID), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseCheeseLink returns the cheese id of a link produced by GenerateCheeseQR.
func (s *qrcodeService) ParseCheeseLink(link string) (string, error) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(link), s.baseURL+"/")
	if !ok {
		return "", errors.Errorf("link %q does not point at this catalog", link)
	}

	cheeseID, err := url.PathUnescape(rest)
	if err != nil {
		return "", errors.Wrap(err, "failed to decode cheese id")
	}
	if cheeseID == "" || strings.Contains(cheeseID, "/") {
		return "", errors.Errorf("invalid cheese id in link %q", link)
	}

	return cheeseID, nil
}

func (s *qrcodeService) link(cheeseID string) string {
	return s.baseURL + "/" + url.PathEscape(cheeseID)
}
