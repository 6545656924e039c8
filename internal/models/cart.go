package models

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

type PromoScope string

const (
	PromoScopeAll        PromoScope = "all"
	PromoScopeProducts   PromoScope = "products"
	PromoScopeCategories PromoScope = "categories"
)

// ProductVariant is one chosen option of a product, e.g. {Name: "Flavor", Option: "Chocolate"}.
type ProductVariant struct {
	Name   string `json:"name" validate:"required"`
	Option string `json:"option" validate:"required"`
}

// SelectedVariant is the catalog variant the shopper picked on the product page.
type SelectedVariant struct {
	ID           string `json:"id" bson:"_id,omitempty"`
	Name         string `json:"name" bson:"name,omitempty"`
	Option1Value string `json:"option1Value,omitempty" bson:"option1Value,omitempty"`
	Option2Value string `json:"option2Value,omitempty" bson:"option2Value,omitempty"`
	Option3Value string `json:"option3Value,omitempty" bson:"option3Value,omitempty"`
}

type CartItem struct {
	ID             string           `json:"id"`
	ProductID      string           `json:"productId"`
	Name           string           `json:"name"`
	Price          float64          `json:"price"`
	ImageURL       string           `json:"imageUrl,omitempty"`
	Variant        *SelectedVariant `json:"variant,omitempty"`
	Variants       []ProductVariant `json:"variants,omitempty"`
	Quantity       int              `json:"quantity"`
	CompareAtPrice *float64         `json:"compareAtPrice,omitempty"`
	Handle         string           `json:"handle"`
	Category       string           `json:"category,omitempty"`
}

// PromoCode is the discount currently applied to a cart.
type PromoCode struct {
	Code           string       `json:"code"`
	DiscountType   DiscountType `json:"discountType"`
	DiscountValue  float64      `json:"discountValue"`
	MinOrderAmount *float64     `json:"minOrderAmount,omitempty"`
	AppliesTo      PromoScope   `json:"appliesTo,omitempty"`
	ProductIDs     []string     `json:"productIds,omitempty"`
	CategoryNames  []string     `json:"categoryNames,omitempty"`
}

type OrderSummary struct {
	Subtotal float64 `json:"subtotal"`
	Discount float64 `json:"discount"`
	Shipping float64 `json:"shipping"`
	Taxes    float64 `json:"taxes"`
	Total    float64 `json:"total"`
}

type UserInfo struct {
	Name     string `json:"name" validate:"required"`
	LastName string `json:"lastName"`
	Phone    string `json:"phone" validate:"required"`
	Address  string `json:"address" validate:"required"`
	Address1 string `json:"address1"`
	Email    string `json:"email" validate:"required,email"`
	City     string `json:"city" validate:"required"`
	State    string `json:"state" validate:"required"`
	Country  string `json:"country" validate:"required"`
	Zipcode  string `json:"zipcode" validate:"required"`
}

type OrderDetails struct {
	OrderID       string     `json:"orderId" validate:"required"`
	Name          string     `json:"name"`
	Phone         string     `json:"phone"`
	Address       string     `json:"address"`
	Email         string     `json:"email"`
	CartItems     []CartItem `json:"cartItems"`
	Price         float64    `json:"price"`
	Discount      float64    `json:"discount"`
	PaymentMethod string     `json:"paymentMethod"`
}

// CartState is the whole persisted cart document, stored under "cart-storage:<userID>".
type CartState struct {
	Items                []CartItem    `json:"items"`
	TotalItems           int           `json:"totalItems"`
	AppliedPromoCode     *PromoCode    `json:"appliedPromoCode"`
	ApplicableProductIDs []string      `json:"applicableProductIds"`
	OrderDetails         *OrderDetails `json:"orderDetails"`
	UserInfo             *UserInfo     `json:"userInfo"`
	OrderSummary         *OrderSummary `json:"orderSummary"`
	OrderSuccess         bool          `json:"orderSuccess"`
	PaymentMethod        *string       `json:"paymentMethod"`
}

// Requests

type AddCartItemRequest struct {
	ProductID      string           `json:"productId" validate:"required"`
	Name           string           `json:"name" validate:"required"`
	Price          float64          `json:"price" validate:"gte=0"`
	ImageURL       string           `json:"imageUrl,omitempty"`
	Variant        *SelectedVariant `json:"variant,omitempty"`
	Variants       []ProductVariant `json:"variants,omitempty" validate:"omitempty,dive"`
	CompareAtPrice *float64         `json:"compareAtPrice,omitempty" validate:"omitempty,gte=0"`
	Handle         string           `json:"handle" validate:"required"`
	Category       string           `json:"category,omitempty"`
}

type AddCartItemsRequest struct {
	Items []AddCartItemRequest `json:"items" validate:"required,min=1,dive"`
}

type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" validate:"required"`
}

type ApplyPromoCodeRequest struct {
	Code string `json:"code" validate:"required,min=1,max=64"`
}

// CheckoutRequest carries the checkout-session setters; nil fields are left untouched.
type CheckoutRequest struct {
	UserInfo      *UserInfo     `json:"userInfo,omitempty" validate:"omitempty"`
	OrderDetails  *OrderDetails `json:"orderDetails,omitempty" validate:"omitempty"`
	OrderSummary  *OrderSummary `json:"orderSummary,omitempty"`
	PaymentMethod *string       `json:"paymentMethod,omitempty" validate:"omitempty,min=1"`
	OrderSuccess  *bool         `json:"orderSuccess,omitempty"`
}

// Responses

type Toast struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

type CartResponse struct {
	Cart          *CartState   `json:"cart"`
	Summary       OrderSummary `json:"summary"`
	Notifications []Toast      `json:"notifications,omitempty"`
}
