package video

import "testing"

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "smart quotes and dashes",
			in:   "“Hello” — it’s fine",
			want: `"Hello" - it's fine`,
		},
		{
			name: "bullets and ellipsis",
			in:   "• first…",
			want: "- first...",
		},
		{
			name: "accents reduced to base letters",
			in:   "café naïve",
			want: "cafe naive",
		},
		{
			name: "plain text untouched",
			in:   "A chair near the window.\nA lamp on the desk.",
			want: "A chair near the window.\nA lamp on the desk.",
		},
		{
			name: "unrenderable runes dropped",
			in:   "price: 5€ 😀",
			want: "price: 5 ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.in); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
