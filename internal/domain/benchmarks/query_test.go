//go:build unit
// +build unit

package benchmarks

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuery_Validate(t *testing.T) {
	assert.NoError(t, NewQuery().Validate())
	assert.NoError(t, (&Query{}).Validate())

	tests := []struct {
		name   string
		mutate func(q *Query)
	}{
		{"unknown implementation", func(q *Query) { q.Implementation = "gmp" }},
		{"unknown operation", func(q *Query) { q.Operation = "verify" }},
		{"negative limit", func(q *Query) { q.Limit = -1 }},
		{"negative offset", func(q *Query) { q.Offset = -5 }},
		{"unknown sort column", func(q *Query) { q.SortBy = "id; DROP TABLE benchmark_results" }},
		{"unknown sort order", func(q *Query) { q.SortOrder = "sideways" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := NewQuery()
			tt.mutate(q)
			assert.Error(t, q.Validate())
		})
	}
}

func TestRunRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     RunRequest
		wantErr bool
	}{
		{"textbook", RunRequest{"keygen", "textbook", "key_generation", 32, 10}, false},
		{"library", RunRequest{"keygen", "library", "encryption", 2048, 10}, false},
		{"odd textbook size", RunRequest{"keygen", "textbook", "key_generation", 33, 10}, true},
		{"tiny textbook size", RunRequest{"keygen", "textbook", "key_generation", 2, 10}, true},
		{"tiny library size", RunRequest{"keygen", "library", "key_generation", 512, 10}, true},
		{"unknown operation", RunRequest{"keygen", "textbook", "sign", 32, 10}, true},
		{"missing name", RunRequest{"", "textbook", "encryption", 32, 10}, true},
		{"zero iterations", RunRequest{"keygen", "textbook", "decryption", 32, 0}, true},
		{"too many iterations", RunRequest{"keygen", "textbook", "decryption", 32, 100001}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
