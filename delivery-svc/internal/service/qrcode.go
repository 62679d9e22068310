package service

import (
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Link(token string) string
	Generate(token string) ([]byte, error)
}

// DefaultQRGenerator encodes the public order check page as a PNG.
type DefaultQRGenerator struct {
	BaseURL string
	Size    int
}

func (g DefaultQRGenerator) Link(token string) string {
	return fmt.Sprintf("%s/delivery/orders/%s", strings.TrimRight(g.BaseURL, "/"), token)
}

func (g DefaultQRGenerator) Generate(token string) ([]byte, error) {
	size := g.Size
	if size <= 0 {
		size = 256
	}
	return qrcode.Encode(g.Link(token), qrcode.Medium, size)
}
