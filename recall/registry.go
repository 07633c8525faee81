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
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	// DefaultRegistryURL is the NHTSA recalls-by-vehicle endpoint.
	DefaultRegistryURL = "https://api.nhtsa.gov/recalls/recallsByVehicle"

	defaultTimeout = 10 * time.Second
)

// Campaign is a single recall campaign as reported by the registry.
type Campaign struct {
	CampaignNumber     string `json:"NHTSACampaignNumber"`
	Component          string `json:"Component"`
	Summary            string `json:"Summary"`
	Consequence        string `json:"Consequence"`
	Remedy             string `json:"Remedy"`
	ReportReceivedDate string `json:"ReportReceivedDate"`
}

// registryResponse is the response payload from the recalls endpoint.
type registryResponse struct {
	Count   int        `json:"Count"`
	Results []Campaign `json:"results"`
}

// RegistryClient queries the NHTSA recall registry.
type RegistryClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewRegistryClient creates a registry client.
// If baseURL is empty, uses the public NHTSA endpoint.
func NewRegistryClient(baseURL string) *RegistryClient {
	if baseURL == "" {
		baseURL = DefaultRegistryURL
	}
	return &RegistryClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

// RecallsByVehicle fetches recall campaigns for a make/model/year triple.
// A non-200 status is treated as no data, not an error.
func (c *RegistryClient) RecallsByVehicle(ctx context.Context, make, model string, year int) ([]Campaign, error) {
	query := url.Values{}
	query.Set("make", make)
	query.Set("model", model)
	query.Set("modelYear", strconv.Itoa(year))

	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil
	}

	var payload registryResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return payload.Results, nil
}
