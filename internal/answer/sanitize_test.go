package answer

import "testing"

func TestSanitizeOneWord(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Mumbai", "Mumbai"},
		{"Mumbai.\n", "Mumbai"},
		{"The answer is Mumbai", "The"},
		{"  \tParis!  ", "Paris"},
		{"well-known", "well-known"},
		{"42", "42"},
		{"\n\t", NAAnswer},
		{"", NAAnswer},
		{"?!.,", NAAnswer},
	}
	for _, tc := range tests {
		if got := SanitizeOneWord(tc.input); got != tc.want {
			t.Errorf("SanitizeOneWord(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestNormalizeQuestion(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"What is the capital city of Maharashtra?", "what is the capital city of maharashtra"},
		{"  WHAT   is\tthe capital  of India??  ", "what is the capital of india"},
		{"", ""},
		{"?!", ""},
	}
	for _, tc := range tests {
		if got := NormalizeQuestion(tc.input); got != tc.want {
			t.Errorf("NormalizeQuestion(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}
