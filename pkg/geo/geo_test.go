package geo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestLocate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"loc":"-6.2,106.8","city":"Jakarta","region":"Jakarta","country":"ID"}`))
	}))
	defer srv.Close()

	loc, err := NewWithEndpoint(srv.URL).Locate(context.Background())
	if err != nil {
		t.Fatalf("Locate() error = %v", err)
	}
	if loc.City != "Jakarta" || loc.Loc != "-6.2,106.8" || loc.Country != "ID" {
		t.Errorf("Locate() = %+v", loc)
	}
}

func TestLocateServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	if _, err := NewWithEndpoint(srv.URL).Locate(context.Background()); err == nil {
		t.Fatal("Locate() succeeded on a 503")
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		name     string
		loc      Location
		contains []string
	}{
		{
			name: "full location",
			loc:  Location{Loc: "-6.2,106.8", City: "Jakarta", Region: "Jakarta", Country: "ID"},
			contains: []string{
				"Jakarta, Jakarta, ID",
				"Location: -6.2,106.8",
				"https://www.google.com/maps?q=-6.2,106.8",
			},
		},
		{
			name: "empty fields fall back to unknown",
			loc:  Location{},
			contains: []string{
				"Unknown city, Unknown region, Unknown country",
				"Location: Unknown location",
				"Google Maps: Location unavailable",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.loc.Describe()
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("Describe() = %q, missing %q", got, want)
				}
			}
		})
	}
}
