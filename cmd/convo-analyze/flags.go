package main

import (
	"fmt"
	"strconv"
)

// englishWordsValue backs --print-english-words, which doubles as a
// switch and an integer: the bare flag means the full top-100 list, an
// explicit value trims it.
type englishWordsValue int

func (v *englishWordsValue) String() string {
	return strconv.Itoa(int(*v))
}

// Set accepts "true"/"false" (bare boolean-style use) or a count.
func (v *englishWordsValue) Set(s string) error {
	switch s {
	case "", "true":
		*v = 100
		return nil
	case "false":
		*v = 0
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("expected a count: %v", err)
	}
	if n < 0 {
		return fmt.Errorf("count must be non-negative, got %d", n)
	}
	*v = englishWordsValue(n)
	return nil
}

// IsBoolFlag lets the flag package accept the bare form.
func (v *englishWordsValue) IsBoolFlag() bool { return true }
