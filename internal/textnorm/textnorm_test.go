package textnorm

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases", "Grinning FACE", "grinning face"},
		{"strips acute", "Café", "cafe"},
		{"strips tilde", "Piñata", "pinata"},
		{"keeps punctuation", "Man's Shoe", "man's shoe"},
		{"compatibility form", "ﬁre", "fire"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"Face With Tears Of Joy", []string{"face", "with", "tears", "of", "joy"}},
		{"  --Flag: Côte d’Ivoire--  ", []string{"flag", "cote", "d", "ivoire"}},
		{"Keycap 1", []string{"keycap", "1"}},
		{"emoji_u1f600", []string{"emoji", "u1f600"}},
		{"!!!", nil},
		{"", nil},
	}

	for _, tt := range tests {
		got := Tokenize(tt.in)
		if len(got) == 0 && len(tt.want) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Tokenize(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestTokenize_ReturnsFreshSlice(t *testing.T) {
	first := Tokenize("red heart")
	first[0] = "mutated"

	second := Tokenize("red heart")
	if second[0] != "red" {
		t.Errorf("expected a fresh token slice, got %v", second)
	}
}

func TestStem_RulePrecedence(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"babies", "baby"},  // ies wins over es and s
		{"smiling", "smil"}, // ing
		{"winked", "wink"},  // ed
		{"faces", "fac"},    // es wins over s
		{"hearts", "heart"}, // s with len > 3
		{"bus", "bus"},      // s but len == 3
		{"cat", "cat"},      // no rule
		{"ies", "y"},        // bare suffix
		{"", ""},            // empty
	}

	for _, tt := range tests {
		if got := Stem(tt.in); got != tt.want {
			t.Errorf("Stem(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStem_Idempotent(t *testing.T) {
	words := []string{
		"smiling", "faces", "babies", "hearts", "thinking", "grinning",
		"winked", "eyes", "party", "sun", "tears", "rolled", "dogs", "bus",
		"face", "joy", "cat", "flies",
	}

	for _, w := range words {
		once := Stem(w)
		twice := Stem(once)
		if once != twice {
			t.Errorf("Stem not idempotent for %q: %q then %q", w, once, twice)
		}
	}
}

func TestStemmedTokens(t *testing.T) {
	got := StemmedTokens("Smiling Cats")
	want := []string{"smil", "cat"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("StemmedTokens = %v, want %v", got, want)
	}
}
