package gallery

import (
	"fmt"
	"strings"
	"time"
)

type PublisherInfo struct {
	PublisherID      string `json:"publisherId"`
	PublisherName    string `json:"publisherName"`
	DisplayName      string `json:"displayName"`
	Flags            string `json:"flags"`
	Domain           string `json:"domain"`
	IsDomainVerified bool   `json:"isDomainVerified"`
}

type ExtensionInfo struct {
	Publisher        PublisherInfo        `json:"publisher"`
	ExtensionID      string               `json:"extensionId"`
	ExtensionName    string               `json:"extensionName"`
	DisplayName      string               `json:"displayName"`
	Flags            string               `json:"flags"`
	LastUpdated      time.Time            `json:"lastUpdated"`
	PublishedDate    time.Time            `json:"publishedDate"`
	ReleaseDate      time.Time            `json:"releaseDate"`
	ShortDescription string               `json:"shortDescription"`
	Versions         []ExtensionVersion   `json:"versions"`
	Categories       []string             `json:"categories"`
	Tags             []string             `json:"tags"`
	Statistics       []ExtensionStatistic `json:"statistics"`
	DeploymentType   int                  `json:"deploymentType"`
}

// UniqueID returns the gallery's "publisher.name" identifier.
func (e *ExtensionInfo) UniqueID() string {
	return fmt.Sprintf("%s.%s", e.Publisher.PublisherName, e.ExtensionName)
}

// Statistic looks up a named statistic. The second return value reports
// whether the gallery included it.
func (e *ExtensionInfo) Statistic(name string) (float64, bool) {
	for _, s := range e.Statistics {
		if s.StatisticName == name {
			return s.Value, true
		}
	}
	return 0, false
}

type ExtensionStatistic struct {
	StatisticName string  `json:"statisticName"`
	Value         float64 `json:"value"`
}

type ExtensionVersion struct {
	Version          string          `json:"version"`
	Flags            string          `json:"flags"`
	LastUpdated      time.Time       `json:"lastUpdated"`
	Files            []ExtensionFile `json:"files"`
	AssetURI         string          `json:"assetUri"`
	FallbackAssetURI string          `json:"fallbackAssetUri"`
}

type ExtensionFile struct {
	AssetType string `json:"assetType"`
	Source    string `json:"source"`
}

// SearchResults is one result group of a gallery query. The gallery orders
// each extension's versions newest first.
type SearchResults struct {
	Extensions []ExtensionInfo `json:"extensions"`
}

// SplitUniqueID splits a "publisher.name" identifier at the first dot.
func SplitUniqueID(id string) (publisher, name string, err error) {
	publisher, name, ok := strings.Cut(id, ".")
	if !ok || publisher == "" || name == "" {
		return "", "", fmt.Errorf("invalid extension ID %q: expected publisher.name", id)
	}
	return publisher, name, nil
}
