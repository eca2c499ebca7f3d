package session

import "strings"

// Category identifies one of the voice-triggered features.
type Category int

const (
	CategoryScene Category = iota
	CategoryObjects
	CategoryOCR
	CategorySOS
	CategoryNavigation
	CategoryFaces
)

func (c Category) String() string {
	switch c {
	case CategoryScene:
		return "scene"
	case CategoryObjects:
		return "objects"
	case CategoryOCR:
		return "ocr"
	case CategorySOS:
		return "sos"
	case CategoryNavigation:
		return "navigation"
	case CategoryFaces:
		return "faces"
	default:
		return "unknown"
	}
}

// trigger binds a category to the phrases that activate it. Order matters:
// categories are probed and dispatched in the order listed here.
type trigger struct {
	category Category
	keywords []string
}

var triggers = []trigger{
	{CategoryScene, []string{"scene", "describe", "description", "seeing", "see"}},
	{CategoryObjects, []string{"sensory", "search", "holding", "buy"}},
	{CategoryOCR, []string{"read", "book", "notice", "pamphlet"}},
	{CategorySOS, []string{"sos", "emergency", "help"}},
	{CategoryNavigation, []string{"navigation", "route", "navigate", "path", "show me route", "show me"}},
	{CategoryFaces, []string{"face", "recognize", "register"}},
}

// Match returns the categories whose keywords occur anywhere in the
// utterance, in fixed dispatch order. Matching is raw substring search on
// the text as heard, so a keyword inside a longer word still counts.
func Match(utterance string) []Category {
	var matched []Category
	for _, t := range triggers {
		for _, kw := range t.keywords {
			if strings.Contains(utterance, kw) {
				matched = append(matched, t.category)
				break
			}
		}
	}
	return matched
}

// IsExit reports whether the utterance asks to end the session.
func IsExit(utterance string) bool {
	return strings.Contains(utterance, "exit")
}
