package gallery

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	// DefaultEndpoint is the Visual Studio Marketplace extension query API.
	DefaultEndpoint = "https://marketplace.visualstudio.com/_apis/public/gallery/extensionquery"

	acceptAPIVersion = "application/json;api-version=6.0-preview.1"
	userAgent        = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

	// filterTypeExtensionName queries by the unique "publisher.name" identifier.
	filterTypeExtensionName = 7

	// VsixAssetType tags the installable package among a version's files.
	VsixAssetType = "Microsoft.VisualStudio.Services.VSIXPackage"
)

type Client struct {
	httpClient *http.Client
	endpoint   string
}

type Option func(*Client)

// WithEndpoint overrides the gallery endpoint, mainly for tests.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		c.endpoint = endpoint
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func New(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		endpoint: DefaultEndpoint,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type queryCriterion struct {
	FilterType int    `json:"filterType"`
	Value      string `json:"value"`
}

type queryFilter struct {
	Criteria []queryCriterion `json:"criteria"`
}

type queryRequest struct {
	Filters []queryFilter `json:"filters"`
	Flags   QueryFlag     `json:"flags"`
}

type queryResponse struct {
	Results []SearchResults `json:"results"`
}

// Query asks the gallery for an extension by publisher and name, with the
// given flags combined into one bitmask. Transport errors and non-200
// statuses come back as plain errors; this client never retries.
func (c *Client) Query(publisher, name string, flags ...QueryFlag) ([]SearchResults, error) {
	request := queryRequest{
		Filters: []queryFilter{
			{
				Criteria: []queryCriterion{
					{
						FilterType: filterTypeExtensionName,
						Value:      fmt.Sprintf("%s.%s", publisher, name),
					},
				},
			},
		},
		Flags: EncodeFlags(flags),
	}

	body, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", acceptAPIVersion)
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request error: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("invalid status: %d, body: %s", resp.StatusCode, string(respBody))
	}

	var response queryResponse
	if err := json.Unmarshal(respBody, &response); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return response.Results, nil
}
