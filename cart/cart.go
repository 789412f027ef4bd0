// Package cart builds reorder URLs for the Symp shop from a normalized
// product batch. The URL carries the shop catalog ids packed as 8-byte
// big-endian values, base64url encoded.
package cart

import (
	"encoding/base64"
	"encoding/binary"
	"fmt"

	"github.com/symplab/cure-calendar-api/catalogparser/entities"
	"github.com/symplab/cure-calendar-api/posology"
)

const (
	defaultBaseURL  = "https://symp.co/cure_cart"
	defaultClientID = "4666"
)

// GenerateURL builds the reorder URL for the batch. With secondPhase set,
// only products that start (or restart on their second unit) after the first
// month are included; otherwise every product is. Returns "" when no product
// qualifies.
func GenerateURL(products []entities.NormalizedProduct, secondPhase bool) string {
	return GenerateURLAt(defaultBaseURL, defaultClientID, products, secondPhase)
}

// GenerateURLAt is GenerateURL against a configurable shop endpoint.
func GenerateURLAt(baseURL, clientID string, products []entities.NormalizedProduct, secondPhase bool) string {
	var ids []int64
	for i := range products {
		p := &products[i]
		if secondPhase &&
			p.FirstUnitStart < posology.MaxStartingDays-1 &&
			!(p.SecondUnit && p.SecondUnitStart >= posology.MaxStartingDays-1) {
			continue
		}
		ids = append(ids, p.ShopifyID)
	}
	if len(ids) == 0 {
		return ""
	}

	raw := make([]byte, 0, len(ids)*8)
	for _, id := range ids {
		raw = binary.BigEndian.AppendUint64(raw, uint64(id))
	}
	content := base64.URLEncoding.EncodeToString(raw)

	return fmt.Sprintf("%s?content=%s&client=%s", baseURL, content, clientID)
}
