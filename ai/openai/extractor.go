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


package openai

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/poiesic/autointel/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// VehicleExtractor implements ai.VehicleExtractor using OpenAI-compatible chat APIs.
type VehicleExtractor struct {
	client llms.Model
	logger *slog.Logger
}

// vehicle is an internal type used for JSON unmarshaling.
// It matches the structure expected from the LLM.
type vehicle struct {
	Year  int    `json:"year"`
	Make  string `json:"make"`
	Model string `json:"model"`
}

// newVehicleExtractor is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newVehicleExtractor(config *ai.Config) (*VehicleExtractor, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Use "none" as token for local OpenAI-compatible services that don't require authentication
	client, err := openai.New(
		openai.WithBaseURL(config.ChatHost),
		openai.WithToken("none"),
		openai.WithModel(config.ChatModel),
	)
	if err != nil {
		return nil, err
	}

	return &VehicleExtractor{
		client: client,
		logger: slog.Default().With("component", "openai-extractor"),
	}, nil
}

// NewVehicleExtractor creates a new vehicle extractor using the provided configuration.
//
// Returns ai.VehicleExtractor interface to enforce abstraction.
func NewVehicleExtractor(config *ai.Config) (ai.VehicleExtractor, error) {
	return newVehicleExtractor(config)
}

// ExtractVehicle maps free text to a year/make/model record using an LLM in
// JSON mode. Malformed responses are retried up to 3 times.
func (e *VehicleExtractor) ExtractVehicle(ctx context.Context, text string) (ai.VehicleDetails, error) {
	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(extractionSystemPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(text),
			},
		},
	}

	// Try up to 3 times in case of malformed JSON
	var result vehicle
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		response, err := e.client.GenerateContent(ctx, content, llms.WithTemperature(0.0), llms.WithJSONMode())
		if err != nil {
			e.logger.Error("failed to generate content", "attempt", attempt+1, "err", err)
			return ai.VehicleDetails{}, err
		}

		if len(response.Choices) < 1 {
			e.logger.Debug("no choices returned from model")
			return ai.VehicleDetails{}, nil
		}

		choice := response.Choices[0]

		// Strip markdown code fences if present
		responseText := strings.TrimSpace(choice.Content)
		responseText = strings.TrimPrefix(responseText, "```json")
		responseText = strings.TrimPrefix(responseText, "```")
		responseText = strings.TrimSuffix(responseText, "```")
		responseText = strings.TrimSpace(responseText)

		// Try to repair common JSON issues
		responseText = repairJSON(responseText)

		if err := json.Unmarshal([]byte(responseText), &result); err != nil {
			lastErr = err
			e.logger.Warn("error parsing extraction response",
				"attempt", attempt+1,
				"response", responseText,
				"err", err)
			continue
		}

		// Success
		lastErr = nil
		break
	}

	if lastErr != nil {
		e.logger.Error("failed to parse extraction response after retries", "err", lastErr)
		return ai.VehicleDetails{}, lastErr
	}

	details := ai.VehicleDetails{
		Year:  result.Year,
		Make:  strings.TrimSpace(result.Make),
		Model: strings.TrimSpace(result.Model),
	}

	e.logger.Debug("extracted vehicle details",
		"year", details.Year,
		"make", details.Make,
		"model", details.Model)

	return details, nil
}
