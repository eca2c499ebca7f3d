package session

import (
	"reflect"
	"testing"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		name      string
		utterance string
		want      []Category
	}{
		{
			name:      "scene keyword",
			utterance: "describe the scene",
			want:      []Category{CategoryScene},
		},
		{
			name:      "object keyword",
			utterance: "what am i holding",
			want:      []Category{CategoryObjects},
		},
		{
			name:      "ocr keyword",
			utterance: "read this pamphlet",
			want:      []Category{CategoryOCR},
		},
		{
			name:      "sos keyword",
			utterance: "send an emergency alert",
			want:      []Category{CategorySOS},
		},
		{
			name:      "navigation phrase",
			utterance: "show me route to the kitchen",
			want:      []Category{CategoryNavigation},
		},
		{
			name:      "face keyword",
			utterance: "register this face",
			want:      []Category{CategoryFaces},
		},
		{
			name:      "multiple categories keep fixed order",
			utterance: "help me read this",
			want:      []Category{CategoryOCR, CategorySOS},
		},
		{
			name:      "all first three in order",
			utterance: "describe what i am holding and read it",
			want:      []Category{CategoryScene, CategoryObjects, CategoryOCR},
		},
		{
			name:      "substring inside longer word still matches",
			utterance: "unseen things",
			want:      []Category{CategoryScene},
		},
		{
			name:      "no keywords",
			utterance: "hello there",
			want:      nil,
		},
		{
			name:      "empty utterance",
			utterance: "",
			want:      nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Match(tt.utterance)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Match(%q) = %v, want %v", tt.utterance, got, tt.want)
			}
		})
	}
}

func TestIsExit(t *testing.T) {
	tests := []struct {
		utterance string
		want      bool
	}{
		{"exit", true},
		{"describe the scene and exit", true},
		{"exiting now", true},
		{"describe the scene", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsExit(tt.utterance); got != tt.want {
			t.Errorf("IsExit(%q) = %v, want %v", tt.utterance, got, tt.want)
		}
	}
}
