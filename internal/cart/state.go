package cart

import (
	"slices"

	"github.com/aaravmahajanofficial/supplements-storefront/internal/models"
)

// NewState returns the empty cart a shopper starts with.
func NewState() models.CartState {
	return models.CartState{
		Items:                []models.CartItem{},
		ApplicableProductIDs: []string{},
	}
}

// Clone deep-copies the parts of a state that transitions mutate.
func Clone(state models.CartState) models.CartState {
	out := state

	out.Items = make([]models.CartItem, len(state.Items))
	copy(out.Items, state.Items)

	out.ApplicableProductIDs = slices.Clone(state.ApplicableProductIDs)
	if out.ApplicableProductIDs == nil {
		out.ApplicableProductIDs = []string{}
	}

	if state.AppliedPromoCode != nil {
		promo := *state.AppliedPromoCode
		out.AppliedPromoCode = &promo
	}

	if state.OrderSummary != nil {
		summary := *state.OrderSummary
		out.OrderSummary = &summary
	}

	return out
}

func indexOf(items []models.CartItem, id string) int {
	return slices.IndexFunc(items, func(item models.CartItem) bool { return item.ID == id })
}

// AddItems merges each item into the cart: an existing line gains one unit,
// otherwise a new line with quantity 1 is appended. It returns how many of
// the items were merged into existing lines.
func AddItems(state models.CartState, items ...models.CartItem) (models.CartState, int) {
	out := Clone(state)
	merged := 0

	for _, item := range items {
		id := GenerateCartItemID(item.ProductID, item.Variants)

		if i := indexOf(out.Items, id); i >= 0 {
			out.Items[i].Quantity++
			merged++
		} else {
			item.ID = id
			item.Quantity = 1
			out.Items = append(out.Items, item)
		}

		out.TotalItems++
	}

	return out, merged
}

// RemoveItem drops the line with the given id. removed is nil when no line matched.
func RemoveItem(state models.CartState, id string) (models.CartState, *models.CartItem) {
	i := indexOf(state.Items, id)
	if i < 0 {
		return state, nil
	}

	out := Clone(state)
	removed := out.Items[i]

	out.Items = slices.Delete(out.Items, i, i+1)
	out.TotalItems = max(0, out.TotalItems-removed.Quantity)

	return out, &removed
}

// UpdateQuantity sets a line's quantity; quantity <= 0 removes the line.
// The returned item carries the new quantity, or is nil when no line matched.
func UpdateQuantity(state models.CartState, id string, quantity int) (models.CartState, *models.CartItem) {
	if quantity <= 0 {
		return RemoveItem(state, id)
	}

	i := indexOf(state.Items, id)
	if i < 0 {
		return state, nil
	}

	out := Clone(state)
	previous := out.Items[i].Quantity

	out.Items[i].Quantity = quantity
	out.TotalItems = max(0, out.TotalItems+quantity-previous)

	updated := out.Items[i]

	return out, &updated
}

// Reset empties the cart and the checkout session. The applied promo code and
// order details survive so a confirmation page can still read them.
func Reset(state models.CartState) models.CartState {
	out := Clone(state)

	out.Items = []models.CartItem{}
	out.TotalItems = 0
	out.UserInfo = nil
	out.OrderSummary = nil
	out.OrderSuccess = false
	out.PaymentMethod = nil

	return out
}

func ApplyPromo(state models.CartState, promo models.PromoCode, applicableIDs []string) models.CartState {
	out := Clone(state)

	out.AppliedPromoCode = &promo
	out.ApplicableProductIDs = slices.Clone(applicableIDs)

	if out.ApplicableProductIDs == nil {
		out.ApplicableProductIDs = []string{}
	}

	return out
}

func ClearPromo(state models.CartState) models.CartState {
	out := Clone(state)

	out.AppliedPromoCode = nil
	out.ApplicableProductIDs = []string{}

	return out
}
