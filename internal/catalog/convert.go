package catalog

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/aaravmahajanofficial/supplements-storefront/internal/models"
	"github.com/microcosm-cc/bluemonday"
)

// Column names of the product export.
const (
	ColHandle           = "Handle"
	ColTitle            = "Title"
	ColBodyHTML         = "Body (HTML)"
	ColVendor           = "Vendor"
	ColProductCategory  = "Product Category"
	ColType             = "Type"
	ColTags             = "Tags"
	ColPublished        = "Published"
	ColOption1Name      = "Option1 Name"
	ColOption1Value     = "Option1 Value"
	ColOption2Name      = "Option2 Name"
	ColOption2Value     = "Option2 Value"
	ColOption3Name      = "Option3 Name"
	ColOption3Value     = "Option3 Value"
	ColSKU              = "Variant SKU"
	ColGrams            = "Variant Grams"
	ColInventoryQty     = "Variant Inventory Qty"
	ColInventoryPolicy  = "Variant Inventory Policy"
	ColPrice            = "Variant Price"
	ColCompareAtPrice   = "Variant Compare At Price"
	ColRequiresShipping = "Variant Requires Shipping"
	ColTaxable          = "Variant Taxable"
	ColBarcode          = "Variant Barcode"
	ColWeightUnit       = "Variant Weight Unit"
	ColCostPerItem      = "Cost per item"
	ColImageSrc         = "Image Src"
	ColImagePosition    = "Image Position"
	ColImageAltText     = "Image Alt Text"
	ColGiftCard         = "Gift Card"
	ColSEOTitle         = "SEO Title"
	ColSEODescription   = "SEO Description"
	ColStatus           = "Status"
	ColVariantImage     = "Variant Image"
)

const (
	defaultCategory    = "Uncategorized"
	defaultOptionValue = "Default"
	defaultWeightUnit  = "kg"
)

var (
	sanitizer = bluemonday.UGCPolicy()

	leadingFloat = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
	leadingInt   = regexp.MustCompile(`^[+-]?\d+`)

	// scalar product fields taken from the first row of a handle
	seededColumns = []string{ColTitle, ColBodyHTML, ColVendor, ColProductCategory, ColType, ColTags, ColPublished, ColStatus, ColGiftCard, ColSEOTitle, ColSEODescription}
)

// SanitizeHTML strips scripts, event handlers and other unsafe markup from a product body.
func SanitizeHTML(body string) string {
	return sanitizer.Sanitize(body)
}

// parseFloat reads the longest numeric prefix of s; 0 when there is none.
func parseFloat(s string) float64 {
	m := leadingFloat.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0
	}

	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0
	}

	return f
}

// parseInt reads the leading integer of s; 0 when there is none.
func parseInt(s string) int {
	m := leadingInt.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0
	}

	n, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}

	return n
}

func optionalFloat(s string) *float64 {
	f := parseFloat(s)
	if f == 0 {
		return nil
	}

	return &f
}

func stripQuotePrefix(s string) string {
	return strings.TrimPrefix(s, "'")
}

func parseTags(s string) []string {
	tags := []string{}

	for _, tag := range strings.Split(s, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}

	return tags
}

func parseStatus(s string) (models.ProductStatus, bool) {
	status := models.ProductStatus(strings.ToLower(s))

	switch status {
	case "":
		return models.ProductStatusActive, true
	case models.ProductStatusActive, models.ProductStatusDraft, models.ProductStatusArchived:
		return status, true
	default:
		return models.ProductStatusActive, false
	}
}

func seedProduct(handle string, row Row) *models.ParsedProduct {
	title := row.Get(ColTitle)
	if title == "" {
		title = handle
	}

	category := row.Get(ColProductCategory)
	if category == "" {
		category = defaultCategory
	}

	status, _ := parseStatus(row.Get(ColStatus))

	product := &models.ParsedProduct{
		Handle:          handle,
		Title:           title,
		BodyHTML:        SanitizeHTML(row.Get(ColBodyHTML)),
		Vendor:          row.Get(ColVendor),
		ProductCategory: category,
		Type:            row.Get(ColType),
		Tags:            parseTags(row.Get(ColTags)),
		Published:       strings.EqualFold(row.Get(ColPublished), "true"),
		Options:         []models.ProductOption{},
		Variants:        []models.ProductVariantRecord{},
		Images:          []models.ProductImage{},
		SEO: models.SEO{
			Title:       row.Get(ColSEOTitle),
			Description: row.Get(ColSEODescription),
		},
		GiftCard: strings.EqualFold(row.Get(ColGiftCard), "true"),
		Status:   status,
	}

	for _, col := range []string{ColOption1Name, ColOption2Name, ColOption3Name} {
		if name := row.Get(col); name != "" {
			product.Options = append(product.Options, models.ProductOption{Name: name, Values: []string{}})
		}
	}

	return product
}

func variantFromRow(row Row) models.ProductVariantRecord {
	option1 := strings.TrimSpace(row.Get(ColOption1Value))
	if option1 == "" {
		option1 = defaultOptionValue
	}

	policy := models.InventoryPolicyDeny
	if strings.EqualFold(row.Get(ColInventoryPolicy), string(models.InventoryPolicyContinue)) {
		policy = models.InventoryPolicyContinue
	}

	weightUnit := row.Get(ColWeightUnit)
	if weightUnit == "" {
		weightUnit = defaultWeightUnit
	}

	return models.ProductVariantRecord{
		Option1Value:     option1,
		Option2Value:     strings.TrimSpace(row.Get(ColOption2Value)),
		Option3Value:     strings.TrimSpace(row.Get(ColOption3Value)),
		SKU:              stripQuotePrefix(row.Get(ColSKU)),
		Grams:            parseFloat(row.Get(ColGrams)),
		InventoryQty:     parseInt(row.Get(ColInventoryQty)),
		InventoryPolicy:  policy,
		Price:            parseFloat(row.Get(ColPrice)),
		CompareAtPrice:   optionalFloat(row.Get(ColCompareAtPrice)),
		RequiresShipping: !strings.EqualFold(row.Get(ColRequiresShipping), "false"),
		Taxable:          !strings.EqualFold(row.Get(ColTaxable), "false"),
		Barcode:          stripQuotePrefix(row.Get(ColBarcode)),
		Image:            row.Get(ColVariantImage),
		WeightUnit:       weightUnit,
		CostPerItem:      optionalFloat(row.Get(ColCostPerItem)),
	}
}

func sameOptions(a, b models.ProductVariantRecord) bool {
	return a.Option1Value == b.Option1Value &&
		a.Option2Value == b.Option2Value &&
		a.Option3Value == b.Option3Value
}

func addOptionValue(product *models.ParsedProduct, axis int, value string) {
	if axis >= len(product.Options) || value == "" {
		return
	}

	if !slices.Contains(product.Options[axis].Values, value) {
		product.Options[axis].Values = append(product.Options[axis].Values, value)
	}
}

// ConvertToProducts folds rows into products keyed by handle, in first-seen
// order. The first row of a handle supplies the product-level fields; every
// row may add a variant (unique by option values) and an image (unique by
// source). Products without variants are dropped.
func ConvertToProducts(rows []Row) []models.ParsedProduct {
	products, _ := ConvertToProductsWithWarnings(rows)

	return products
}

// ConvertToProductsWithWarnings is ConvertToProducts plus a warning for every
// later row whose product-level value disagrees with the first row of its
// handle, and for unknown statuses.
func ConvertToProductsWithWarnings(rows []Row) ([]models.ParsedProduct, []string) {
	var (
		order    []string
		warnings []string
		byHandle = make(map[string]*models.ParsedProduct)
		seeds    = make(map[string]Row)
	)

	for i, row := range rows {
		handle := strings.TrimSpace(row.Get(ColHandle))
		if handle == "" {
			continue
		}

		product, ok := byHandle[handle]
		if !ok {
			product = seedProduct(handle, row)
			byHandle[handle] = product
			seeds[handle] = row
			order = append(order, handle)

			if _, known := parseStatus(row.Get(ColStatus)); !known {
				warnings = append(warnings, fmt.Sprintf("%s: unknown status %q, using %q", handle, row.Get(ColStatus), models.ProductStatusActive))
			}
		} else {
			warnings = append(warnings, conflicts(handle, i, seeds[handle], row)...)
		}

		variant := variantFromRow(row)

		if !slices.ContainsFunc(product.Variants, func(v models.ProductVariantRecord) bool { return sameOptions(v, variant) }) {
			product.Variants = append(product.Variants, variant)

			addOptionValue(product, 0, variant.Option1Value)
			addOptionValue(product, 1, variant.Option2Value)
			addOptionValue(product, 2, variant.Option3Value)
		}

		src := strings.TrimSpace(row.Get(ColImageSrc))
		if src != "" && !slices.ContainsFunc(product.Images, func(img models.ProductImage) bool { return img.Src == src }) {
			position := parseInt(row.Get(ColImagePosition))
			if position == 0 {
				position = len(product.Images) + 1
			}

			product.Images = append(product.Images, models.ProductImage{
				Src:      src,
				Position: position,
				AltText:  row.Get(ColImageAltText),
			})
		}
	}

	products := make([]models.ParsedProduct, 0, len(order))

	for _, handle := range order {
		if p := byHandle[handle]; len(p.Variants) > 0 {
			products = append(products, *p)
		}
	}

	return products, warnings
}

// conflicts lists product-level columns where a later row carries a
// different non-empty value than the seeding row. index is the data row
// index; reported line numbers count the header as line 1.
func conflicts(handle string, index int, seed, row Row) []string {
	var out []string

	for _, col := range seededColumns {
		value := row.Get(col)
		if value == "" || value == seed.Get(col) {
			continue
		}

		out = append(out, fmt.Sprintf("%s: row %d has %s %q, keeping %q from the first row", handle, index+2, col, value, seed.Get(col)))
	}

	return out
}
