// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package recall

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/poiesic/autointel/ai"
)

const (
	missingYearMessage      = "I need the vehicle year to check for recalls. Please specify the year (e.g., '2024 BMW recalls')."
	missingMakeMessage      = "I need the vehicle make/brand to check for recalls. Please specify the manufacturer."
	extractionFailedMessage = "I couldn't extract the vehicle information. Please provide the year, make, and model."

	maxReportedCampaigns = 3
	summaryTruncateAt    = 200
)

// modelAliases maps model names the registry doesn't index to the
// family name it does. Keys are matched as substrings of the
// uppercased model.
var modelAliases = []struct {
	contains string
	alias    string
}{
	{"330", "3 SERIES"},
	{"340", "3 SERIES"},
	{"M3", "3 SERIES"},
	{"GRAND I10", "I10"},
}

// Lookup resolves a free-form question into a vehicle and queries the
// recall registry for it.
type Lookup struct {
	extractor ai.VehicleExtractor
	registry  *RegistryClient
	logger    *slog.Logger
}

// NewLookup creates a recall lookup.
func NewLookup(extractor ai.VehicleExtractor, registry *RegistryClient) (*Lookup, error) {
	if extractor == nil {
		return nil, ErrExtractorRequired
	}
	if registry == nil {
		return nil, ErrRegistryRequired
	}
	return &Lookup{
		extractor: extractor,
		registry:  registry,
		logger:    slog.Default().With("component", "recall"),
	}, nil
}

// Answer extracts the vehicle from the question and reports its recall
// campaigns. Failures never propagate as errors; the caller always gets
// a user-facing string.
func (l *Lookup) Answer(ctx context.Context, question string) string {
	vehicle, err := l.extractor.ExtractVehicle(ctx, question)
	if err != nil {
		l.logger.Warn("vehicle extraction failed", "err", err)
		return extractionFailedMessage
	}

	if vehicle.Year == 0 {
		return missingYearMessage
	}
	if vehicle.Make == "" {
		return missingMakeMessage
	}
	if !vehicle.HasModel() {
		l.logger.Debug("model not specified, using make as model", "make", vehicle.Make)
		vehicle.Model = vehicle.Make
	}

	makeUp := strings.ToUpper(strings.TrimSpace(vehicle.Make))
	modelUp := strings.ToUpper(strings.TrimSpace(vehicle.Model))

	campaigns, err := l.registry.RecallsByVehicle(ctx, makeUp, modelUp, vehicle.Year)
	if err != nil {
		l.logger.Warn("registry query failed", "make", makeUp, "model", modelUp, "year", vehicle.Year, "err", err)
		campaigns = nil
	}

	// Some models are indexed under their family name
	if len(campaigns) == 0 {
		if alias, ok := aliasFor(modelUp); ok {
			campaigns, err = l.registry.RecallsByVehicle(ctx, makeUp, alias, vehicle.Year)
			if err != nil {
				l.logger.Warn("registry alias query failed", "make", makeUp, "model", alias, "year", vehicle.Year, "err", err)
				campaigns = nil
			}
		}
	}

	if len(campaigns) == 0 {
		return fmt.Sprintf("No safety recalls found in the NHTSA database for the %d %s %s.", vehicle.Year, makeUp, modelUp)
	}

	return formatCampaigns(campaigns, vehicle.Year, makeUp, modelUp)
}

// aliasFor returns the registry family name for a model, if one applies.
func aliasFor(modelUp string) (string, bool) {
	for _, entry := range modelAliases {
		if strings.Contains(modelUp, entry.contains) {
			return entry.alias, true
		}
	}
	return "", false
}

// formatCampaigns renders a numbered summary of up to three campaigns.
func formatCampaigns(campaigns []Campaign, year int, makeUp, modelUp string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d recall(s) for the %d %s %s:\n", len(campaigns), year, makeUp, modelUp)

	reported := campaigns
	if len(reported) > maxReportedCampaigns {
		reported = reported[:maxReportedCampaigns]
	}
	for i, campaign := range reported {
		summary := campaign.Summary
		if len(summary) > summaryTruncateAt {
			cut := summaryTruncateAt
			// Back up so truncation never splits a multi-byte rune
			for cut > 0 && !utf8.RuneStart(summary[cut]) {
				cut--
			}
			summary = summary[:cut] + "..."
		}
		fmt.Fprintf(&sb, "\n%d. %s: %s", i+1, campaign.Component, summary)
	}
	return sb.String()
}
