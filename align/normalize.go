package align

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/divan/num2words"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	nonToken   = regexp.MustCompile(`[^a-z'0-9 ]`)
	nonLetter  = regexp.MustCompile(`[^a-z' ]`)
	multiSpace = regexp.MustCompile(` +`)

	// Decompose, drop combining marks, recompose: "café" -> "cafe".
	foldMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// NormalizeTranscript prepares raw transcript text for the alignment
// tokenizer: lowercase, diacritics folded, everything outside [a-z'0-9 ]
// replaced by spaces, and numeric tokens expanded to words.
func NormalizeTranscript(text string) []string {
	text = strings.ToLower(text)
	text = strings.ReplaceAll(text, "’", "'")
	if folded, _, err := transform.String(foldMarks, text); err == nil {
		text = folded
	}
	text = nonToken.ReplaceAllString(text, " ")
	text = multiSpace.ReplaceAllString(text, " ")

	tokens := strings.Fields(text)
	for i, tok := range tokens {
		if !isNumeric(tok) {
			continue
		}
		n, err := strconv.Atoi(tok)
		if err != nil {
			continue // out of int range, keep the digits
		}
		words := strings.ToLower(num2words.Convert(n))
		words = nonLetter.ReplaceAllString(words, " ")
		tokens[i] = multiSpace.ReplaceAllString(words, "")
	}
	return tokens
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
