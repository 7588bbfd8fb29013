package tokenizer

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tok := New([]string{"the", "and", "is"}, 3)

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty string", "", []string{}},
		{"simple lowercase", "hello world", []string{"hello", "world"}},
		{"uppercase input", "HELLO World", []string{"hello", "world"}},
		{"with punctuation", "hello, world!", []string{"hello", "world"}},
		{"stop words removed", "the cat and the dog", []string{"cat", "dog"}},
		{"short tokens removed", "go is a fun language", []string{"fun", "language"}},
		{"with numbers", "item123 test", []string{"item123", "test"}},
		{"hyphenated", "state-of-the-art design", []string{"state", "art", "design"}},
		{"underscores", "my_variable_name", []string{"variable", "name"}},
		{"multiple spaces", "hello   world", []string{"hello", "world"}},
		{"only symbols", "!@#$%^", []string{}},
		{"only stop words", "the and is", []string{}},
		{"non-ascii treated as separator", "café rating", []string{"caf", "rating"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tok.Tokenize(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestTokenizeIsDeterministic(t *testing.T) {
	tok := New([]string{"the"}, 2)
	input := "The quick brown fox jumps over the lazy dog"

	first := tok.Tokenize(input)
	for i := 0; i < 10; i++ {
		if got := tok.Tokenize(input); !reflect.DeepEqual(got, first) {
			t.Fatalf("Tokenize not deterministic: run %d = %v, first = %v", i, got, first)
		}
	}
}

func TestTokenizeMinLengthBoundary(t *testing.T) {
	tok := New(nil, 2)
	got := tok.Tokenize("a ab abc")
	want := []string{"ab", "abc"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize = %v, want %v", got, want)
	}
}

func TestTermFrequencies(t *testing.T) {
	tok := New(nil, 2)
	got := tok.TermFrequencies("go go gadget go")
	want := map[string]int{"go": 3, "gadget": 1}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TermFrequencies = %v, want %v", got, want)
	}
}
