package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/poiesic/autointel/core"
)

func TestRoute(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    core.Action
	}{
		{"review keyword", "show me reviews of the BMW X5", core.ActionReview},
		{"comparison keyword", "BMW X5 vs Mercedes GLE", core.ActionReview},
		{"recommendation keyword", "which suv should i buy", core.ActionReview},
		{"recall keyword", "any recalls on my 2019 Elantra?", core.ActionRecall},
		{"nhtsa keyword", "check the NHTSA database for my car", core.ActionRecall},
		{"defect keyword", "is there a known defect in the airbags", core.ActionRecall},
		{"manual default", "what is the recommended tire pressure?", core.ActionManual},
		{"empty message", "", core.ActionManual},
		{"case insensitive", "Any RECALLS for a 2024 Creta?", core.ActionRecall},
		{"review wins over recall", "reviews of recalled models", core.ActionReview},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Route(tt.message))
		})
	}
}
