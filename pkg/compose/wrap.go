package compose

import (
	"strings"
	"unicode/utf8"

	"github.com/protein-alphabet/proteintext/pkg/utils"
)

// Wrap greedily fills lines with whitespace separated words, joined by single
// spaces, so that no line exceeds maxChars characters. Words are never split:
// a word longer than maxChars occupies a line of its own.
func Wrap(text string, maxChars int) []string {
	return utils.Reduce(strings.Fields(text), func(lines []string, word string) []string {
		if len(lines) == 0 {
			return []string{word}
		}

		lastLine := lines[len(lines)-1]
		if utf8.RuneCountInString(lastLine)+1+utf8.RuneCountInString(word) <= maxChars {
			lines[len(lines)-1] = lastLine + " " + word
			return lines
		}
		return append(lines, word)
	}, []string{})
}
