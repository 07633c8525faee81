package ai

import "strings"

// VehicleDetails is the structured record produced by vehicle extraction.
// Zero values mean the field was absent from the text.
type VehicleDetails struct {
	// Year is the manufacturing year, e.g. 2024. Zero when not mentioned.
	Year int

	// Make is the manufacturer, e.g. "Hyundai". Empty when not mentioned.
	Make string

	// Model is the specific model name, e.g. "Creta". Empty when not
	// mentioned. Extraction services sometimes return placeholder values
	// instead of leaving the field empty; see HasModel.
	Model string
}

// modelPlaceholders are values extraction services return when the model is
// not actually mentioned in the text.
var modelPlaceholders = []string{"unknown", "not specified", "n/a", "none"}

// HasModel reports whether the Model field carries a real model name rather
// than a placeholder.
func (v VehicleDetails) HasModel() bool {
	if v.Model == "" {
		return false
	}
	lowered := strings.ToLower(strings.TrimSpace(v.Model))
	for _, p := range modelPlaceholders {
		if lowered == p {
			return false
		}
	}
	return true
}
