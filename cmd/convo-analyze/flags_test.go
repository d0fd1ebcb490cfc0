package main

import (
	"flag"
	"testing"
)

func TestEnglishWordsValueBareFlag(t *testing.T) {
	var v englishWordsValue
	if err := v.Set("true"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if int(v) != 100 {
		t.Errorf("bare flag: got %d, want 100", v)
	}
}

func TestEnglishWordsValueExplicitCount(t *testing.T) {
	var v englishWordsValue
	if err := v.Set("25"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if int(v) != 25 {
		t.Errorf("got %d, want 25", v)
	}
}

func TestEnglishWordsValueRejectsGarbage(t *testing.T) {
	var v englishWordsValue
	if err := v.Set("many"); err == nil {
		t.Error("expected error for non-numeric value")
	}
	if err := v.Set("-5"); err == nil {
		t.Error("expected error for negative count")
	}
}

func TestEnglishWordsValueFalse(t *testing.T) {
	v := englishWordsValue(100)
	if err := v.Set("false"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if int(v) != 0 {
		t.Errorf("false should disable: got %d", v)
	}
}

func TestEnglishWordsFlagParsing(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want int
	}{
		{"bare", []string{"--print-english-words"}, 100},
		{"with value", []string{"--print-english-words=30"}, 30},
		{"absent", nil, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fs := flag.NewFlagSet("test", flag.ContinueOnError)
			var v englishWordsValue
			fs.Var(&v, "print-english-words", "")
			if err := fs.Parse(tc.args); err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if int(v) != tc.want {
				t.Errorf("got %d, want %d", v, tc.want)
			}
		})
	}
}
