package repository

import (
	"go.mongodb.org/mongo-driver/bson"
)

const (
	defaultPage  = 1
	defaultLimit = 100

	// AllCategories is the sentinel category value that imposes no
	// category restriction.
	AllCategories = "All Products"

	// SearchResultCap bounds keyword search results; the search endpoint
	// has no pagination.
	SearchResultCap = 50
)

// ListFilter captures the optional restrictions of a catalog listing.
type ListFilter struct {
	Category string
	Search   string
	Featured bool
	Type     string
	Page     int
	Limit    int
}

// Clamp replaces non-positive pagination values with the defaults.
// Unparsable query values arrive here as zero and take the same path.
func (f *ListFilter) Clamp() {
	if f.Page < 1 {
		f.Page = defaultPage
	}
	if f.Limit < 1 {
		f.Limit = defaultLimit
	}
}

// Skip returns the number of documents to skip for the requested page.
func (f *ListFilter) Skip() int64 {
	return int64((f.Page - 1) * f.Limit)
}

// Query builds the store filter: a conjunction of the restrictions that
// are present. Substring matches are case-insensitive and unanchored.
func (f *ListFilter) Query() bson.M {
	query := bson.M{}

	if f.Category != "" && f.Category != AllCategories {
		query["category"] = f.Category
	}
	if f.Featured {
		query["featured"] = true
	}
	if f.Type != "" {
		query["productType"] = f.Type
	}
	if f.Search != "" {
		query["$or"] = []bson.M{
			{"name": bson.M{"$regex": f.Search, "$options": "i"}},
			{"category": bson.M{"$regex": f.Search, "$options": "i"}},
			{"shortDescription": bson.M{"$regex": f.Search, "$options": "i"}},
		}
	}

	return query
}

// SearchQuery builds the keyword-search filter: a case-insensitive
// substring disjunction over name, category and both descriptions.
func SearchQuery(q string) bson.M {
	return bson.M{
		"$or": []bson.M{
			{"name": bson.M{"$regex": q, "$options": "i"}},
			{"category": bson.M{"$regex": q, "$options": "i"}},
			{"shortDescription": bson.M{"$regex": q, "$options": "i"}},
			{"fullDescription": bson.M{"$regex": q, "$options": "i"}},
		},
	}
}
