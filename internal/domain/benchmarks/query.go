package benchmarks

// Query filters and pages stored results.
type Query struct {
	Implementation string `validate:"omitempty,oneof=textbook library"`
	Operation      string `validate:"omitempty,oneof=key_generation encryption decryption"`
	Name           string `validate:"omitempty,max=255"`

	// Pagination properties
	Limit  int `validate:"omitempty,gt=0"`
	Offset int `validate:"omitempty,gte=0"`

	// Sorting properties
	SortBy    string `validate:"omitempty,oneof=name implementation operation key_size iterations mean date_time_created"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
}

// NewQuery creates a Query with default values
func NewQuery() *Query {
	return &Query{
		Limit:     10,
		Offset:    0,
		SortBy:    "date_time_created",
		SortOrder: "desc",
	}
}

// Validate for validating Query struct
func (q *Query) Validate() error {
	return validateStruct(q)
}
