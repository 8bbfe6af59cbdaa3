package query

import "strings"

// Condition pairs a field with a value. A nil value or an empty string means "not given".
type Condition struct {
	Field string
	Value interface{}
}

// Params holds the optional filter parameters of a list request
type Params struct {
	// Equals adds one Eq per present condition
	Equals []Condition
	// Exclude adds one Ne per present condition
	Exclude []Condition
	// Search, when not blank, must be contained (case-insensitively) in at least one SearchFields field
	Search       string
	SearchFields []string
}

// Build turns request parameters into a predicate. Every present parameter is ANDed;
// the search term is ORed across the search fields. No parameters yields an empty And,
// which matches every record.
func Build(params Params) Predicate {
	pred := And{}

	for _, c := range params.Exclude {
		if present(c.Value) {
			pred = append(pred, Ne{Field: c.Field, Value: c.Value})
		}
	}

	for _, c := range params.Equals {
		if present(c.Value) {
			pred = append(pred, Eq{Field: c.Field, Value: c.Value})
		}
	}

	if term := strings.TrimSpace(params.Search); term != "" && len(params.SearchFields) > 0 {
		search := make(Or, 0, len(params.SearchFields))
		for _, field := range params.SearchFields {
			search = append(search, ContainsFold{Field: field, Substr: term})
		}
		pred = append(pred, search)
	}

	return pred
}

func present(v interface{}) bool {
	if v == nil {
		return false
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s) != ""
	}
	return true
}
