package geo

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// IGeo resolves the device's rough position from its public IP.
type IGeo interface {
	Locate(ctx context.Context) (*Location, error)
}

type Location struct {
	Loc     string `json:"loc"`
	City    string `json:"city"`
	Region  string `json:"region"`
	Country string `json:"country"`
}

// Describe renders the location for an alert message, with a Google Maps
// link when coordinates are known.
func (l *Location) Describe() string {
	city := orUnknown(l.City, "Unknown city")
	region := orUnknown(l.Region, "Unknown region")
	country := orUnknown(l.Country, "Unknown country")

	mapsLink := "Location unavailable"
	loc := orUnknown(l.Loc, "Unknown location")
	if l.Loc != "" {
		mapsLink = "https://www.google.com/maps?q=" + l.Loc
	}

	return fmt.Sprintf("%s, %s, %s\nLocation: %s\nGoogle Maps: %s", city, region, country, loc, mapsLink)
}

func orUnknown(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

type geoClient struct {
	endpoint string
	client   *http.Client
}

func New() IGeo {
	return NewWithEndpoint("https://ipinfo.io/json")
}

func NewWithEndpoint(endpoint string) IGeo {
	return &geoClient{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

func (g *geoClient) Locate(ctx context.Context) (*Location, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geolocation endpoint returned %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var loc Location
	if err := json.Unmarshal(body, &loc); err != nil {
		return nil, err
	}

	return &loc, nil
}
