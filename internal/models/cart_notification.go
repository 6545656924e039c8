package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type EditAction string

const (
	EditActionRemove    EditAction = "remove"
	EditActionUpdateQty EditAction = "updateQty"
)

type CartProduct struct {
	ProductID string           `json:"productId" bson:"productId"`
	Name      string           `json:"name" bson:"name"`
	Price     float64          `json:"price" bson:"price"`
	Quantity  int              `json:"quantity" bson:"quantity"`
	ImageURL  string           `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	Handle    string           `json:"handle" bson:"handle"`
	Variant   *SelectedVariant `json:"variant,omitempty" bson:"variant,omitempty"`
}

// CartNotification is the server-side copy of a shopper's cart, used for abandoned-cart emails.
type CartNotification struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID      string             `json:"userId" bson:"userId"`
	Email       string             `json:"email" bson:"email"`
	UserName    string             `json:"userName" bson:"userName"`
	PhoneNumber string             `json:"phoneNumber,omitempty" bson:"phoneNumber,omitempty"`
	IsSent      bool               `json:"isSent" bson:"isSent"`
	IsActive    bool               `json:"isActive" bson:"isActive"`
	Subtotal    float64            `json:"subtotal" bson:"subtotal"`
	Products    []CartProduct      `json:"products" bson:"products"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type CartSyncRequest struct {
	Items []CartItem `json:"items" validate:"dive"`
}

type CartEditRequest struct {
	Action EditAction `json:"action" validate:"required,oneof=remove updateQty"`
	Item   CartItem   `json:"item"`
}

type AbandonedCartsResult struct {
	Sent int `json:"sent"`
}
