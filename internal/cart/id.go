package cart

import (
	"sort"
	"strings"

	"github.com/aaravmahajanofficial/supplements-storefront/internal/models"
)

// GenerateCartItemID derives the line id for a product and its chosen variants.
// Variants are sorted first, so their input order does not matter.
func GenerateCartItemID(productID string, variants []models.ProductVariant) string {
	if len(variants) == 0 {
		return productID
	}

	parts := make([]string, 0, len(variants))
	for _, v := range variants {
		parts = append(parts, v.Name+":"+v.Option)
	}

	sort.Strings(parts)

	return productID + "-" + strings.Join(parts, "-")
}
