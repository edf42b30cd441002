package dictionary

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type sliceSink struct {
	words []string
}

func (s *sliceSink) AddWord(word string) {
	s.words = append(s.words, word)
}

func TestLoadReaderTokenization(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "plain words",
			input: "the quick brown fox",
			want:  []string{"the", "quick", "brown", "fox"},
		},
		{
			name:  "trailing punctuation stripped",
			input: "end. stop! really?!",
			want:  []string{"end", "stop", "really"},
		},
		{
			name:  "internal punctuation preserved",
			input: "don't o'clock e-mail",
			want:  []string{"don't", "o'clock", "e-mail"},
		},
		{
			name:  "leading punctuation preserved",
			input: "'quoted (parens",
			want:  []string{"'quoted", "(parens"},
		},
		{
			name:  "multiple lines and extra whitespace",
			input: "one  two\n\n  three\tfour\n",
			want:  []string{"one", "two", "three", "four"},
		},
		{
			// A token that is entirely punctuation trims to "" and is
			// still handed to the sink.
			name:  "pure punctuation token",
			input: "hello -- world",
			want:  []string{"hello", "", "world"},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			loader := NewLoader("", true)
			sink := &sliceSink{}
			count, err := loader.LoadReader(strings.NewReader(tc.input), sink)
			if err != nil {
				t.Fatalf("LoadReader: %v", err)
			}
			if count != len(tc.want) {
				t.Errorf("count = %d, want %d", count, len(tc.want))
			}
			if len(sink.words) != len(tc.want) {
				t.Fatalf("words = %v, want %v", sink.words, tc.want)
			}
			for i := range tc.want {
				if sink.words[i] != tc.want[i] {
					t.Errorf("word %d = %q, want %q", i, sink.words[i], tc.want[i])
				}
			}
		})
	}
}

func TestLoadReaderNoStrip(t *testing.T) {
	loader := NewLoader("", false)
	sink := &sliceSink{}
	if _, err := loader.LoadReader(strings.NewReader("end. stop!"), sink); err != nil {
		t.Fatalf("LoadReader: %v", err)
	}
	want := []string{"end.", "stop!"}
	for i := range want {
		if sink.words[i] != want[i] {
			t.Errorf("word %d = %q, want %q", i, sink.words[i], want[i])
		}
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	content := "cat cat cat\ncap cap.\ncar\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	loader := NewLoader(path, true)
	sink := &sliceSink{}
	count, err := loader.Load(sink)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if count != 6 {
		t.Errorf("count = %d, want 6", count)
	}
	if got := strings.Join(sink.words, " "); got != "cat cat cat cap cap car" {
		t.Errorf("words = %q", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	loader := NewLoader(filepath.Join(t.TempDir(), "nope.txt"), true)
	_, err := loader.Load(&sliceSink{})
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "nope.txt") {
		t.Errorf("error should name the file: %v", err)
	}
}

func TestIsASCIIPunct(t *testing.T) {
	for _, r := range "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~" {
		if !isASCIIPunct(r) {
			t.Errorf("isASCIIPunct(%q) = false", r)
		}
	}
	for _, r := range "aZ09 \téü" {
		if isASCIIPunct(r) {
			t.Errorf("isASCIIPunct(%q) = true", r)
		}
	}
}
