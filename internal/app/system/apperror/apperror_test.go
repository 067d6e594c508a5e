package apperror

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorsIs(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		target    error
		wantMatch bool
	}{
		{"NotFound wraps ErrNotFound", NotFound("project"), ErrNotFound, true},
		{"ValidationFailed wraps ErrValidation", ValidationFailed("title", "title is required"), ErrValidation, true},
		{"Unauthorized wraps ErrUnauthorized", Unauthorized(), ErrUnauthorized, true},
		{"Upstream wraps ErrUpstream", Upstream("github", errors.New("boom")), ErrUpstream, true},
		{"NotFound does not match ErrValidation", NotFound("project"), ErrValidation, false},
		{"wrapped twice still matches", fmt.Errorf("store: %w", NotFound("project")), ErrNotFound, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.Is(tt.err, tt.target); got != tt.wantMatch {
				t.Errorf("errors.Is: got %v, want %v", got, tt.wantMatch)
			}
		})
	}
}

func TestMessages(t *testing.T) {
	if got := NotFound("Project").Error(); got != "Project not found" {
		t.Errorf("NotFound message: got %q", got)
	}
	v := ValidationFailed("_id", "Project ID is required")
	if v.Field != "_id" {
		t.Errorf("Field: got %q, want %q", v.Field, "_id")
	}
	up := Upstream("LeetCode API", errors.New("User does not exist"))
	if up.Error() != "LeetCode API: User does not exist" {
		t.Errorf("Upstream message: got %q", up.Error())
	}
}
