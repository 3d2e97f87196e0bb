package store

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
)

// Filter accumulates per-field predicates from optional request parameters and
// combines them into a single conjunctive query. Absent parameters contribute
// no predicate.
type Filter struct {
	query bson.M
}

func NewFilter() *Filter {
	return &Filter{query: bson.M{}}
}

// Eq adds an exact-match predicate. An empty value means "no constraint".
func (f *Filter) Eq(field, value string) *Filter {
	if value != "" {
		f.query[field] = value
	}
	return f
}

// Contains adds a case-insensitive substring match. The input is quoted so it
// is matched literally, not as a regex.
func (f *Filter) Contains(field, substr string) *Filter {
	if substr != "" {
		f.query[field] = bson.M{"$regex": regexp.QuoteMeta(substr), "$options": "i"}
	}
	return f
}

// Range adds an inclusive numeric range predicate. Either bound may be nil;
// both nil adds nothing.
func (f *Filter) Range(field string, min, max *float64) *Filter {
	bounds := bson.M{}
	if min != nil {
		bounds["$gte"] = *min
	}
	if max != nil {
		bounds["$lte"] = *max
	}
	if len(bounds) > 0 {
		f.query[field] = bounds
	}
	return f
}

func (f *Filter) Build() bson.M {
	return f.query
}
