package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProduct() Product {
	return Product{
		Name:             "Sourdough Country Loaf",
		Category:         "Bread",
		OriginalPrice:    349,
		Price:            299,
		Image:            "/Sourdough-Country-Loaf.png",
		ShortDescription: "Naturally leavened loaf.",
		FullDescription:  "Fermented for 36 hours with our starter.",
	}
}

func TestApplyDefaults(t *testing.T) {
	p := validProduct()
	p.ApplyDefaults()

	assert.NotNil(t, p.Specifications)
	assert.Empty(t, p.Specifications)
	assert.NotNil(t, p.Features)
	assert.NotNil(t, p.WeightOptions)
	assert.Equal(t, "regular", p.ProductType)
	require.NotNil(t, p.InStock)
	assert.True(t, *p.InStock)
	assert.False(t, p.ArrivalDate.IsZero())
}

func TestApplyDefaultsKeepsExplicitValues(t *testing.T) {
	inStock := false
	arrival := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	p := validProduct()
	p.ProductType = "just-baked"
	p.InStock = &inStock
	p.ArrivalDate = arrival
	p.ApplyDefaults()

	assert.Equal(t, "just-baked", p.ProductType)
	assert.False(t, *p.InStock)
	assert.Equal(t, arrival, p.ArrivalDate)
}

func TestValidateAcceptsValidProduct(t *testing.T) {
	p := validProduct()
	p.ApplyDefaults()
	assert.NoError(t, p.Validate())
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Product)
		field  string
	}{
		{"blank name", func(p *Product) { p.Name = "  " }, "name"},
		{"unknown category", func(p *Product) { p.Category = "Sushi" }, "category"},
		{"unknown product type", func(p *Product) { p.ProductType = "day-old" }, "productType"},
		{"negative original price", func(p *Product) { p.OriginalPrice = -1 }, "originalPrice"},
		{"negative price", func(p *Product) { p.Price = -1 }, "price"},
		{"discount above 100", func(p *Product) { p.Discount = 101 }, "discount"},
		{"negative discount", func(p *Product) { p.Discount = -5 }, "discount"},
		{"rating above 5", func(p *Product) { p.Rating = 5.5 }, "rating"},
		{"negative reviews", func(p *Product) { p.Reviews = -1 }, "reviews"},
		{"missing image", func(p *Product) { p.Image = "" }, "image"},
		{"missing short description", func(p *Product) { p.ShortDescription = "" }, "shortDescription"},
		{"missing full description", func(p *Product) { p.FullDescription = "" }, "fullDescription"},
		{"weight option without label", func(p *Product) {
			p.WeightOptions = []WeightOption{{Label: "", Price: 100}}
		}, "weightOptions"},
		{"weight option negative price", func(p *Product) {
			p.WeightOptions = []WeightOption{{Label: "500g", Price: -1}}
		}, "weightOptions"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProduct()
			p.ApplyDefaults()
			tt.mutate(&p)

			err := p.Validate()
			require.Error(t, err)

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.field, vErr.Field)
		})
	}
}

func TestUpdateValidate(t *testing.T) {
	name := "Renamed"
	assert.NoError(t, (&ProductUpdate{Name: &name}).Validate())

	// An empty update is a legal touch.
	assert.NoError(t, (&ProductUpdate{}).Validate())

	badCategory := "Sushi"
	err := (&ProductUpdate{Category: &badCategory}).Validate()
	require.Error(t, err)

	badDiscount := 150.0
	require.Error(t, (&ProductUpdate{Discount: &badDiscount}).Validate())

	blank := "  "
	require.Error(t, (&ProductUpdate{Name: &blank}).Validate())
}

func TestUpdateFieldsOnlyIncludesSetFields(t *testing.T) {
	price := 550.0
	inStock := false
	u := ProductUpdate{
		Price:   &price,
		InStock: &inStock,
	}

	set := u.Fields()
	assert.Len(t, set, 2)
	assert.Equal(t, 550.0, set["price"])
	assert.Equal(t, false, set["inStock"])
}

func TestUpdateFieldsNeverTouchesIdentityOrCreatedAt(t *testing.T) {
	name := "Renamed"
	now := time.Now()
	u := ProductUpdate{
		Name:        &name,
		ArrivalDate: &now,
	}

	set := u.Fields()
	assert.NotContains(t, set, "_id")
	assert.NotContains(t, set, "createdAt")
	assert.NotContains(t, set, "updatedAt")
}
