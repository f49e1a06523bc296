package service

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(orderID, kitchenID uuid.UUID) ([]byte, error)
}

// DefaultQRGenerator encodes a link to the review page of an order receipt.
type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) Generate(orderID, kitchenID uuid.UUID) ([]byte, error) {
	qrData := fmt.Sprintf("%s/kitchen/%s/review?order_id=%s", g.BaseURL, kitchenID, orderID)
	return qrcode.Encode(qrData, qrcode.Medium, 256)
}
