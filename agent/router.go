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


package agent

import (
	"strings"

	"github.com/poiesic/autointel/core"
)

// reviewKeywords route to review synthesis. Checked first; review wins
// ties with the recall set.
var reviewKeywords = []string{
	"review", "reviews",
	"comparison", "compare", "vs", "versus",
	"better", "best", "top",
	"rating", "ratings",
	"opinion", "thoughts",
	"worth it", "worth buying",
	"should i buy", "should i get",
	"recommend", "recommendation",
	"alternatives", "options",
	"which car", "which suv", "which sedan",
	"luxury", "affordable", "budget",
	"reliable", "most reliable",
}

// recallKeywords route to the recall registry lookup.
var recallKeywords = []string{
	"recall", "recalls", "recalled",
	"vin",
	"service history",
	"mileage",
	"safety issue", "safety issues",
	"defect", "defects",
	"nhtsa",
}

// Route picks the information source for a user message.
// Matching is case-insensitive substring; precedence is
// review > recall > manual, and an empty message routes to manual.
func Route(message string) core.Action {
	lowered := strings.ToLower(message)

	for _, keyword := range reviewKeywords {
		if strings.Contains(lowered, keyword) {
			return core.ActionReview
		}
	}

	for _, keyword := range recallKeywords {
		if strings.Contains(lowered, keyword) {
			return core.ActionRecall
		}
	}

	return core.ActionManual
}
