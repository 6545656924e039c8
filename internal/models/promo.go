package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StoredPromoCode is a promo code as kept in the promocodes collection.
type StoredPromoCode struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Code           string             `json:"code" bson:"code"`
	DiscountType   DiscountType       `json:"discountType" bson:"discountType"`
	DiscountValue  float64            `json:"discountValue" bson:"discountValue"`
	MinOrderAmount float64            `json:"minOrderAmount" bson:"minOrderAmount"`
	UsageLimit     *int               `json:"usageLimit,omitempty" bson:"usageLimit,omitempty"`
	UsageCount     int                `json:"usageCount" bson:"usageCount"`
	ExpiresAt      *time.Time         `json:"expiresAt,omitempty" bson:"expiresAt,omitempty"`
	IsActive       bool               `json:"isActive" bson:"isActive"`
	AppliesTo      PromoScope         `json:"appliesTo" bson:"appliesTo"`
	ProductIDs     []string           `json:"productIds,omitempty" bson:"productIds,omitempty"`
	CategoryNames  []string           `json:"categoryNames,omitempty" bson:"categoryNames,omitempty"`
}

// ToPromoCode strips the bookkeeping fields, leaving what a cart carries.
func (p *StoredPromoCode) ToPromoCode() *PromoCode {
	promo := &PromoCode{
		Code:          p.Code,
		DiscountType:  p.DiscountType,
		DiscountValue: p.DiscountValue,
		AppliesTo:     p.AppliesTo,
		ProductIDs:    p.ProductIDs,
		CategoryNames: p.CategoryNames,
	}

	if p.MinOrderAmount > 0 {
		minOrder := p.MinOrderAmount
		promo.MinOrderAmount = &minOrder
	}

	return promo
}
