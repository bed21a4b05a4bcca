package tokens

import (
	"strings"
	"unicode"
)

const commentMarker = ';'

// Tokenize splits the source into keyword tokens line by line.
// Everything from a ';' to the end of its line is ignored.
func Tokenize(src *Source) []Token {
	var ret []Token
	for i, line := range src.Lines {
		line = strings.TrimSuffix(line, "\r")
		if strings.HasPrefix(strings.TrimLeftFunc(line, unicode.IsSpace), string(commentMarker)) {
			continue
		}
		if idx := strings.IndexByte(line, commentMarker); idx >= 0 {
			line = line[:idx]
		}
		ret = appendFields(ret, line, i+1)
	}
	return ret
}

func appendFields(tokens []Token, line string, lineNumber int) []Token {
	column := 1
	start := -1
	startColumn := 0
	for offset, r := range line {
		if unicode.IsSpace(r) {
			if start >= 0 {
				tokens = append(tokens, newToken(line[start:offset], lineNumber, startColumn))
				start = -1
			}
		} else if start < 0 {
			start = offset
			startColumn = column
		}
		column++
	}
	if start >= 0 {
		tokens = append(tokens, newToken(line[start:], lineNumber, startColumn))
	}
	return tokens
}

func newToken(text string, line, column int) Token {
	return Token{
		Text:    text,
		Keyword: Lookup(text),
		Pos: Pos{
			Line:   line,
			Column: column,
		},
	}
}
