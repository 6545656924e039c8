package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type InventoryPolicy string

const (
	InventoryPolicyDeny     InventoryPolicy = "deny"
	InventoryPolicyContinue InventoryPolicy = "continue"
)

type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "active"
	ProductStatusDraft    ProductStatus = "draft"
	ProductStatusArchived ProductStatus = "archived"
)

type ProductOption struct {
	Name   string   `json:"name" bson:"name"`
	Values []string `json:"values" bson:"values"`
}

type ProductVariantRecord struct {
	Option1Value     string          `json:"option1Value" bson:"option1Value"`
	Option2Value     string          `json:"option2Value,omitempty" bson:"option2Value,omitempty"`
	Option3Value     string          `json:"option3Value,omitempty" bson:"option3Value,omitempty"`
	SKU              string          `json:"sku" bson:"sku"`
	Grams            float64         `json:"grams" bson:"grams"`
	InventoryQty     int             `json:"inventoryQty" bson:"inventoryQty"`
	InventoryPolicy  InventoryPolicy `json:"inventoryPolicy" bson:"inventoryPolicy"`
	Price            float64         `json:"price" bson:"price"`
	CompareAtPrice   *float64        `json:"compareAtPrice,omitempty" bson:"compareAtPrice,omitempty"`
	RequiresShipping bool            `json:"requiresShipping" bson:"requiresShipping"`
	Taxable          bool            `json:"taxable" bson:"taxable"`
	Barcode          string          `json:"barcode,omitempty" bson:"barcode,omitempty"`
	Image            string          `json:"image,omitempty" bson:"image,omitempty"`
	WeightUnit       string          `json:"weightUnit" bson:"weightUnit"`
	CostPerItem      *float64        `json:"costPerItem,omitempty" bson:"costPerItem,omitempty"`
}

type ProductImage struct {
	Src      string `json:"src" bson:"src"`
	Position int    `json:"position" bson:"position"`
	AltText  string `json:"altText" bson:"altText"`
}

type SEO struct {
	Title       string `json:"title" bson:"title"`
	Description string `json:"description" bson:"description"`
}

// ParsedProduct is one product folded from all export rows sharing a handle.
type ParsedProduct struct {
	Handle          string                 `json:"handle" bson:"handle" validate:"required"`
	Title           string                 `json:"title" bson:"title"`
	BodyHTML        string                 `json:"bodyHtml" bson:"bodyHtml"`
	Vendor          string                 `json:"vendor" bson:"vendor"`
	ProductCategory string                 `json:"productCategory" bson:"productCategory"`
	Type            string                 `json:"type" bson:"type"`
	Tags            []string               `json:"tags" bson:"tags"`
	Published       bool                   `json:"published" bson:"published"`
	Options         []ProductOption        `json:"options" bson:"options"`
	Variants        []ProductVariantRecord `json:"variants" bson:"variants" validate:"required,min=1"`
	Images          []ProductImage         `json:"images" bson:"images"`
	SEO             SEO                    `json:"seo" bson:"seo"`
	GiftCard        bool                   `json:"giftCard" bson:"giftCard"`
	Status          ProductStatus          `json:"status" bson:"status" validate:"omitempty,oneof=active draft archived"`
}

// Product is the stored catalog document.
type Product struct {
	ID                 primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ParsedProduct      `bson:",inline"`
	FulfillmentService string    `json:"fulfillmentService" bson:"fulfillmentService"`
	InventoryTracker   string    `json:"inventoryTracker" bson:"inventoryTracker"`
	IsDeleted          bool      `json:"isDeleted" bson:"isDeleted"`
	CreatedAt          time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt" bson:"updatedAt"`
}

type ImportProductsRequest struct {
	Products          []ParsedProduct `json:"products" validate:"required,min=1,dive"`
	OverwriteExisting bool            `json:"overwriteExisting"`
}

type ParseResult struct {
	Success  bool            `json:"success"`
	Message  string          `json:"message"`
	Products []ParsedProduct `json:"products,omitempty"`
	Warnings []string        `json:"warnings,omitempty"`
}

type ImportResult struct {
	Success  bool     `json:"success"`
	Message  string   `json:"message"`
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}

type DeleteResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
