package stoplist

import "testing"

func TestTopEnglishWords(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want int
	}{
		{"full list", 100, 100},
		{"subset", 10, 10},
		{"over cap", 500, 100},
		{"zero", 0, 0},
		{"negative", -3, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := TopEnglishWords(tc.n)
			if len(got) != tc.want {
				t.Fatalf("got %d words, want %d", len(got), tc.want)
			}
		})
	}

	words := TopEnglishWords(3)
	if words[0] != "the" || words[1] != "be" || words[2] != "to" {
		t.Errorf("frequency order broken: %v", words)
	}
}

func TestTopEnglishWordsReturnsCopy(t *testing.T) {
	a := TopEnglishWords(5)
	a[0] = "mutated"
	b := TopEnglishWords(5)
	if b[0] != "the" {
		t.Error("caller mutation leaked into the shared list")
	}
}

func TestSetLookup(t *testing.T) {
	s := NewSet([]string{"The", "cat"})
	if !s.Has("the") {
		t.Error("expected lowercased membership for The")
	}
	if !s.Has("CAT") {
		t.Error("expected case-insensitive lookup")
	}
	if s.Has("dog") {
		t.Error("dog should not be in the set")
	}
	s.Add("Dog")
	if !s.Has("dog") {
		t.Error("Add should normalize case")
	}
	if s.Len() != 3 {
		t.Errorf("Len: got %d, want 3", s.Len())
	}
}

func TestEnglishCoversFunctionWords(t *testing.T) {
	s := English()
	for _, w := range []string{"the", "and", "whereas", "yourselves"} {
		if !s.Has(w) {
			t.Errorf("english set missing %q", w)
		}
	}
	if s.Has("gopher") {
		t.Error("english set should not contain content words")
	}
}

func TestTopEnglishSetMatchesList(t *testing.T) {
	s := TopEnglish()
	for _, w := range TopEnglishWords(100) {
		if !s.Has(w) {
			t.Errorf("set missing %q", w)
		}
	}
}
