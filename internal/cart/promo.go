package cart

import (
	"fmt"
	"slices"

	"github.com/aaravmahajanofficial/supplements-storefront/internal/models"
	"github.com/shopspring/decimal"
)

const (
	msgBelowMinimum   = "Promo code removed. Order total is below the minimum of ₹%s."
	msgProductsGone   = "Promo code removed as applicable products are no longer in the cart."
	msgCategoriesGone = "Promo code removed as applicable categories are no longer in the cart."
)

var hundred = decimal.NewFromInt(100)

func lineTotal(item models.CartItem) decimal.Decimal {
	return decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(item.Quantity)))
}

func sum(items []models.CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(lineTotal(item))
	}

	return total
}

func toFloat(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()

	return f
}

// Subtotal is the sum of price * quantity over all lines, rounded to cents.
func Subtotal(items []models.CartItem) float64 {
	return toFloat(sum(items))
}

// matchesProducts reports whether a line is one of the remembered applicable
// products. Ids may be product ids or composite line ids.
func matchesProducts(item models.CartItem, ids []string) bool {
	return slices.Contains(ids, item.ID) || slices.Contains(ids, item.ProductID)
}

// ApplicableItems returns the lines the applied promo code discounts.
func ApplicableItems(state models.CartState) []models.CartItem {
	promo := state.AppliedPromoCode
	if promo == nil {
		return nil
	}

	switch promo.AppliesTo {
	case models.PromoScopeProducts:
		ids := state.ApplicableProductIDs
		if len(promo.ProductIDs) > 0 {
			ids = append(slices.Clone(ids), promo.ProductIDs...)
		}

		return slices.DeleteFunc(slices.Clone(state.Items), func(item models.CartItem) bool {
			return !matchesProducts(item, ids)
		})
	case models.PromoScopeCategories:
		return slices.DeleteFunc(slices.Clone(state.Items), func(item models.CartItem) bool {
			return item.Category == "" || !slices.Contains(promo.CategoryNames, item.Category)
		})
	default:
		return state.Items
	}
}

// ValidatePromo re-checks the applied promo code against the current items
// and clears it when it no longer qualifies. reason is the user-facing
// message for an eviction and empty when the code stays.
func ValidatePromo(state models.CartState) (models.CartState, string) {
	promo := state.AppliedPromoCode
	if promo == nil {
		return state, ""
	}

	if promo.MinOrderAmount != nil && *promo.MinOrderAmount > 0 {
		minimum := decimal.NewFromFloat(*promo.MinOrderAmount)
		if sum(state.Items).LessThan(minimum) {
			return ClearPromo(state), fmt.Sprintf(msgBelowMinimum, minimum.String())
		}
	}

	switch promo.AppliesTo {
	case models.PromoScopeProducts:
		if len(state.ApplicableProductIDs) > 0 &&
			!slices.ContainsFunc(state.Items, func(item models.CartItem) bool {
				return matchesProducts(item, state.ApplicableProductIDs)
			}) {
			return ClearPromo(state), msgProductsGone
		}
	case models.PromoScopeCategories:
		if len(promo.CategoryNames) > 0 &&
			!slices.ContainsFunc(state.Items, func(item models.CartItem) bool {
				return slices.Contains(promo.CategoryNames, item.Category)
			}) {
			return ClearPromo(state), msgCategoriesGone
		}
	}

	return state, ""
}

// Summarize derives the order summary. A percentage code discounts its share
// of the applicable subtotal; a fixed code is capped at that subtotal. The
// total never goes below zero.
func Summarize(state models.CartState, shipping, taxes float64) models.OrderSummary {
	subtotal := sum(state.Items)
	discount := decimal.Zero

	if promo := state.AppliedPromoCode; promo != nil {
		applicable := sum(ApplicableItems(state))
		value := decimal.NewFromFloat(promo.DiscountValue)

		switch promo.DiscountType {
		case models.DiscountPercentage:
			discount = applicable.Mul(value).Div(hundred)
		case models.DiscountFixed:
			discount = decimal.Min(applicable, value)
		}

		if discount.IsNegative() {
			discount = decimal.Zero
		}
	}

	ship := decimal.NewFromFloat(shipping)
	tax := decimal.NewFromFloat(taxes)

	total := subtotal.Add(ship).Add(tax).Sub(discount)
	if total.IsNegative() {
		total = decimal.Zero
	}

	return models.OrderSummary{
		Subtotal: toFloat(subtotal),
		Discount: toFloat(discount),
		Shipping: toFloat(ship),
		Taxes:    toFloat(tax),
		Total:    toFloat(total),
	}
}
