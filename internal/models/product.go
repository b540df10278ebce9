package models

import (
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Categories is the fixed set of catalog categories accepted at write time.
var Categories = []string{
	"Cakes", "Pastries", "Bread", "Dessert", "Cookies", "Toast",
	"Sandwich", "Biscuits", "Namkeens", "Softdrinks", "Extra More",
}

// ProductTypes is the fixed set of merchandising types.
var ProductTypes = []string{"just-arrived", "just-baked", "regular"}

// WeightOption is an alternate package size for the same product.
type WeightOption struct {
	Label string  `json:"label" bson:"label"`
	Price float64 `json:"price" bson:"price"`
}

// Product is the catalog entity stored in the products collection.
type Product struct {
	ID               primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	Name             string             `json:"name" bson:"name" binding:"required"`
	Category         string             `json:"category" bson:"category" binding:"required"`
	OriginalPrice    float64            `json:"originalPrice" bson:"originalPrice"`
	Price            float64            `json:"price" bson:"price"`
	WeightOptions    []WeightOption     `json:"weightOptions" bson:"weightOptions"`
	Discount         float64            `json:"discount" bson:"discount"`
	Rating           float64            `json:"rating" bson:"rating"`
	Reviews          int                `json:"reviews" bson:"reviews"`
	Image            string             `json:"image" bson:"image" binding:"required"`
	ShortDescription string             `json:"shortDescription" bson:"shortDescription" binding:"required"`
	FullDescription  string             `json:"fullDescription" bson:"fullDescription" binding:"required"`
	Features         []string           `json:"features" bson:"features"`
	Specifications   map[string]string  `json:"specifications" bson:"specifications"`
	ArrivalDate      time.Time          `json:"arrivalDate" bson:"arrivalDate"`
	IsFresh          bool               `json:"isFresh" bson:"isFresh"`
	FreshnessTag     string             `json:"freshnessTag" bson:"freshnessTag"`
	Featured         bool               `json:"featured" bson:"featured"`
	ProductType      string             `json:"productType" bson:"productType"`
	InStock          *bool              `json:"inStock" bson:"inStock"`
	CreatedAt        time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt        time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// ProductUpdate holds the updatable fields of a product. Pointer fields
// distinguish "not provided" from zero values on partial updates.
type ProductUpdate struct {
	Name             *string            `json:"name,omitempty"`
	Category         *string            `json:"category,omitempty"`
	OriginalPrice    *float64           `json:"originalPrice,omitempty"`
	Price            *float64           `json:"price,omitempty"`
	WeightOptions    []WeightOption     `json:"weightOptions,omitempty"`
	Discount         *float64           `json:"discount,omitempty"`
	Rating           *float64           `json:"rating,omitempty"`
	Reviews          *int               `json:"reviews,omitempty"`
	Image            *string            `json:"image,omitempty"`
	ShortDescription *string            `json:"shortDescription,omitempty"`
	FullDescription  *string            `json:"fullDescription,omitempty"`
	Features         []string           `json:"features,omitempty"`
	Specifications   map[string]string  `json:"specifications,omitempty"`
	ArrivalDate      *time.Time         `json:"arrivalDate,omitempty"`
	IsFresh          *bool              `json:"isFresh,omitempty"`
	FreshnessTag     *string            `json:"freshnessTag,omitempty"`
	Featured         *bool              `json:"featured,omitempty"`
	ProductType      *string            `json:"productType,omitempty"`
	InStock          *bool              `json:"inStock,omitempty"`
}

// ValidationError reports a field that failed a schema constraint.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ApplyDefaults fills the schema defaults for fields the payload omitted.
// It must run before Validate so defaulted fields pass the enum checks.
func (p *Product) ApplyDefaults() {
	if p.WeightOptions == nil {
		p.WeightOptions = []WeightOption{}
	}
	if p.Features == nil {
		p.Features = []string{}
	}
	if p.Specifications == nil {
		p.Specifications = map[string]string{}
	}
	if p.ProductType == "" {
		p.ProductType = "regular"
	}
	if p.InStock == nil {
		inStock := true
		p.InStock = &inStock
	}
	if p.ArrivalDate.IsZero() {
		p.ArrivalDate = time.Now()
	}
}

// Validate checks the enum and range constraints of the schema.
func (p *Product) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return &ValidationError{Field: "name", Message: "name is required"}
	}
	if !ValidCategory(p.Category) {
		return &ValidationError{Field: "category", Message: fmt.Sprintf("%q is not a valid category", p.Category)}
	}
	if !ValidProductType(p.ProductType) {
		return &ValidationError{Field: "productType", Message: fmt.Sprintf("%q is not a valid product type", p.ProductType)}
	}
	if p.OriginalPrice < 0 {
		return &ValidationError{Field: "originalPrice", Message: "price cannot be negative"}
	}
	if p.Price < 0 {
		return &ValidationError{Field: "price", Message: "price cannot be negative"}
	}
	if p.Discount < 0 || p.Discount > 100 {
		return &ValidationError{Field: "discount", Message: "discount must be between 0 and 100"}
	}
	if p.Rating < 0 || p.Rating > 5 {
		return &ValidationError{Field: "rating", Message: "rating must be between 0 and 5"}
	}
	if p.Reviews < 0 {
		return &ValidationError{Field: "reviews", Message: "reviews cannot be negative"}
	}
	if p.Image == "" {
		return &ValidationError{Field: "image", Message: "image is required"}
	}
	if p.ShortDescription == "" {
		return &ValidationError{Field: "shortDescription", Message: "shortDescription is required"}
	}
	if p.FullDescription == "" {
		return &ValidationError{Field: "fullDescription", Message: "fullDescription is required"}
	}
	return validateWeightOptions(p.WeightOptions)
}

// Validate re-runs the schema constraints for the fields present in a
// partial update.
func (u *ProductUpdate) Validate() error {
	if u.Name != nil && strings.TrimSpace(*u.Name) == "" {
		return &ValidationError{Field: "name", Message: "name cannot be empty"}
	}
	if u.Category != nil && !ValidCategory(*u.Category) {
		return &ValidationError{Field: "category", Message: fmt.Sprintf("%q is not a valid category", *u.Category)}
	}
	if u.ProductType != nil && !ValidProductType(*u.ProductType) {
		return &ValidationError{Field: "productType", Message: fmt.Sprintf("%q is not a valid product type", *u.ProductType)}
	}
	if u.OriginalPrice != nil && *u.OriginalPrice < 0 {
		return &ValidationError{Field: "originalPrice", Message: "price cannot be negative"}
	}
	if u.Price != nil && *u.Price < 0 {
		return &ValidationError{Field: "price", Message: "price cannot be negative"}
	}
	if u.Discount != nil && (*u.Discount < 0 || *u.Discount > 100) {
		return &ValidationError{Field: "discount", Message: "discount must be between 0 and 100"}
	}
	if u.Rating != nil && (*u.Rating < 0 || *u.Rating > 5) {
		return &ValidationError{Field: "rating", Message: "rating must be between 0 and 5"}
	}
	if u.Reviews != nil && *u.Reviews < 0 {
		return &ValidationError{Field: "reviews", Message: "reviews cannot be negative"}
	}
	if u.Image != nil && *u.Image == "" {
		return &ValidationError{Field: "image", Message: "image cannot be empty"}
	}
	return validateWeightOptions(u.WeightOptions)
}

// Fields returns the set portion of the update as a bson document.
// Identity and createdAt are never part of it, so they cannot be
// overwritten through the update path.
func (u *ProductUpdate) Fields() bson.M {
	set := bson.M{}
	if u.Name != nil {
		set["name"] = *u.Name
	}
	if u.Category != nil {
		set["category"] = *u.Category
	}
	if u.OriginalPrice != nil {
		set["originalPrice"] = *u.OriginalPrice
	}
	if u.Price != nil {
		set["price"] = *u.Price
	}
	if u.WeightOptions != nil {
		set["weightOptions"] = u.WeightOptions
	}
	if u.Discount != nil {
		set["discount"] = *u.Discount
	}
	if u.Rating != nil {
		set["rating"] = *u.Rating
	}
	if u.Reviews != nil {
		set["reviews"] = *u.Reviews
	}
	if u.Image != nil {
		set["image"] = *u.Image
	}
	if u.ShortDescription != nil {
		set["shortDescription"] = *u.ShortDescription
	}
	if u.FullDescription != nil {
		set["fullDescription"] = *u.FullDescription
	}
	if u.Features != nil {
		set["features"] = u.Features
	}
	if u.Specifications != nil {
		set["specifications"] = u.Specifications
	}
	if u.ArrivalDate != nil {
		set["arrivalDate"] = *u.ArrivalDate
	}
	if u.IsFresh != nil {
		set["isFresh"] = *u.IsFresh
	}
	if u.FreshnessTag != nil {
		set["freshnessTag"] = *u.FreshnessTag
	}
	if u.Featured != nil {
		set["featured"] = *u.Featured
	}
	if u.ProductType != nil {
		set["productType"] = *u.ProductType
	}
	if u.InStock != nil {
		set["inStock"] = *u.InStock
	}
	return set
}

func ValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

func ValidProductType(productType string) bool {
	for _, t := range ProductTypes {
		if t == productType {
			return true
		}
	}
	return false
}

func validateWeightOptions(options []WeightOption) error {
	for _, opt := range options {
		if strings.TrimSpace(opt.Label) == "" {
			return &ValidationError{Field: "weightOptions", Message: "weight option label is required"}
		}
		if opt.Price < 0 {
			return &ValidationError{Field: "weightOptions", Message: "weight option price cannot be negative"}
		}
	}
	return nil
}
