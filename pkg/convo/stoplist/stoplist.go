// Package stoplist holds the fixed stopword lists used by the analyses.
// Both lists are immutable configuration constants loaded once at process
// start; callers get copies or read-only views.
package stoplist

import "strings"

// topEnglish is the 100 most frequent English words, in frequency order.
// Used to filter function words out of the common-words analysis.
var topEnglish = []string{
	"the", "be", "to", "of", "and", "a", "in", "that", "have", "I", "it", "for", "not", "on", "with", "he",
	"as", "you", "do", "at", "this", "but", "his", "by", "from", "they", "we", "say", "her", "she", "or",
	"an", "will", "my", "one", "all", "would", "there", "their", "what", "so", "up", "out", "if", "about",
	"who", "get", "which", "go", "me", "when", "make", "can", "like", "time", "no", "just", "him", "know",
	"take", "people", "into", "year", "your", "good", "some", "could", "them", "see", "other", "than",
	"then", "now", "look", "only", "come", "its", "over", "think", "also", "back", "after", "use", "two",
	"how", "our", "work", "first", "well", "way", "even", "new", "want", "because", "any", "these",
	"give", "day", "most", "us",
}

// english is the standard English stopword set used when building the
// TF-IDF vocabulary. Larger than topEnglish: it covers function words that
// carry no topical signal even when frequent only in some corpora.
var english = []string{
	"a", "about", "above", "across", "after", "afterwards", "again", "against", "all", "almost",
	"alone", "along", "already", "also", "although", "always", "am", "among", "amongst", "amount",
	"an", "and", "another", "any", "anyhow", "anyone", "anything", "anyway", "anywhere", "are",
	"around", "as", "at", "back", "be", "became", "because", "become", "becomes", "becoming",
	"been", "before", "beforehand", "behind", "being", "below", "beside", "besides", "between",
	"beyond", "both", "bottom", "but", "by", "call", "can", "cannot", "cant", "co", "could",
	"couldnt", "describe", "detail", "do", "done", "down", "due", "during", "each", "eg", "eight",
	"either", "eleven", "else", "elsewhere", "empty", "enough", "etc", "even", "ever", "every",
	"everyone", "everything", "everywhere", "except", "few", "fifteen", "fifty", "fill", "find",
	"first", "five", "for", "former", "formerly", "forty", "found", "four", "from", "front",
	"full", "further", "get", "give", "go", "had", "has", "hasnt", "have", "he", "hence", "her",
	"here", "hereafter", "hereby", "herein", "hereupon", "hers", "herself", "him", "himself",
	"his", "how", "however", "hundred", "i", "ie", "if", "in", "indeed", "interest", "into",
	"is", "it", "its", "itself", "keep", "last", "latter", "latterly", "least", "less", "ltd",
	"made", "many", "may", "me", "meanwhile", "might", "mine", "more", "moreover", "most",
	"mostly", "move", "much", "must", "my", "myself", "name", "namely", "neither", "never",
	"nevertheless", "next", "nine", "no", "nobody", "none", "noone", "nor", "not", "nothing",
	"now", "nowhere", "of", "off", "often", "on", "once", "one", "only", "onto", "or", "other",
	"others", "otherwise", "our", "ours", "ourselves", "out", "over", "own", "part", "per",
	"perhaps", "please", "put", "rather", "re", "same", "see", "seem", "seemed", "seeming",
	"seems", "serious", "several", "she", "should", "show", "side", "since", "sincere", "six",
	"sixty", "so", "some", "somehow", "someone", "something", "sometime", "sometimes",
	"somewhere", "still", "such", "system", "take", "ten", "than", "that", "the", "their",
	"them", "themselves", "then", "thence", "there", "thereafter", "thereby", "therefore",
	"therein", "thereupon", "these", "they", "thick", "thin", "third", "this", "those",
	"though", "three", "through", "throughout", "thru", "thus", "to", "together", "too", "top",
	"toward", "towards", "twelve", "twenty", "two", "un", "under", "until", "up", "upon", "us",
	"very", "via", "was", "we", "well", "were", "what", "whatever", "when", "whence",
	"whenever", "where", "whereafter", "whereas", "whereby", "wherein", "whereupon",
	"wherever", "whether", "which", "while", "whither", "who", "whoever", "whole", "whom",
	"whose", "why", "will", "with", "within", "without", "would", "yet", "you", "your",
	"yours", "yourself", "yourselves",
}

// Set is a case-insensitive stopword lookup.
type Set struct {
	words map[string]struct{}
}

// NewSet builds a set from the given words, lowercasing each.
func NewSet(words []string) *Set {
	s := &Set{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		s.Add(w)
	}
	return s
}

// Has reports whether word is in the set. The word is expected to be
// lowercase already; mixed-case input is normalized.
func (s *Set) Has(word string) bool {
	_, ok := s.words[strings.ToLower(word)]
	return ok
}

// Add inserts a word into the set.
func (s *Set) Add(word string) {
	s.words[strings.ToLower(word)] = struct{}{}
}

// Len returns the number of words in the set.
func (s *Set) Len() int {
	return len(s.words)
}

// TopEnglishWords returns the first n entries of the top-100 English word
// list, in frequency order. n outside [0, 100] is clamped.
func TopEnglishWords(n int) []string {
	if n < 0 {
		n = 0
	}
	if n > len(topEnglish) {
		n = len(topEnglish)
	}
	out := make([]string, n)
	copy(out, topEnglish[:n])
	return out
}

// TopEnglish returns the top-100 English words as a lookup set.
func TopEnglish() *Set {
	return NewSet(topEnglish)
}

// English returns the vectorizer's English stopword set.
func English() *Set {
	return NewSet(english)
}
