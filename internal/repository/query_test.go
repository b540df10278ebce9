package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestListFilterQueryEmpty(t *testing.T) {
	f := ListFilter{}
	assert.Equal(t, bson.M{}, f.Query())
}

func TestListFilterQueryCategorySentinel(t *testing.T) {
	f := ListFilter{Category: AllCategories}
	assert.Equal(t, bson.M{}, f.Query())

	f = ListFilter{Category: "Cakes"}
	assert.Equal(t, bson.M{"category": "Cakes"}, f.Query())
}

func TestListFilterQueryConjunction(t *testing.T) {
	f := ListFilter{
		Category: "Cakes",
		Featured: true,
		Type:     "just-baked",
	}

	assert.Equal(t, bson.M{
		"category":    "Cakes",
		"featured":    true,
		"productType": "just-baked",
	}, f.Query())
}

func TestListFilterQuerySearch(t *testing.T) {
	f := ListFilter{Search: "chocolate"}

	assert.Equal(t, bson.M{
		"$or": []bson.M{
			{"name": bson.M{"$regex": "chocolate", "$options": "i"}},
			{"category": bson.M{"$regex": "chocolate", "$options": "i"}},
			{"shortDescription": bson.M{"$regex": "chocolate", "$options": "i"}},
		},
	}, f.Query())
}

func TestSearchQueryCoversFourFields(t *testing.T) {
	assert.Equal(t, bson.M{
		"$or": []bson.M{
			{"name": bson.M{"$regex": "tart", "$options": "i"}},
			{"category": bson.M{"$regex": "tart", "$options": "i"}},
			{"shortDescription": bson.M{"$regex": "tart", "$options": "i"}},
			{"fullDescription": bson.M{"$regex": "tart", "$options": "i"}},
		},
	}, SearchQuery("tart"))
}

func TestListFilterClamp(t *testing.T) {
	tests := []struct {
		name            string
		page, limit     int
		wantPage        int
		wantLimit       int
	}{
		{"defaults for zero", 0, 0, 1, 100},
		{"negative values", -3, -10, 1, 100},
		{"valid values untouched", 2, 25, 2, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := ListFilter{Page: tt.page, Limit: tt.limit}
			f.Clamp()
			assert.Equal(t, tt.wantPage, f.Page)
			assert.Equal(t, tt.wantLimit, f.Limit)
		})
	}
}

func TestListFilterSkip(t *testing.T) {
	f := ListFilter{Page: 3, Limit: 20}
	assert.Equal(t, int64(40), f.Skip())

	f = ListFilter{Page: 1, Limit: 100}
	assert.Equal(t, int64(0), f.Skip())
}
