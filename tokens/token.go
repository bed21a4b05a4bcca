package tokens

import "fmt"

type Pos struct {
	Line   int
	Column int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

type Token struct {
	Text    string
	Keyword Keyword
	Pos     Pos
}

func (t Token) String() string {
	return fmt.Sprintf("%s@%s", t.Text, t.Pos)
}

type Keyword uint8

const (
	Unknown Keyword = iota
	I
	Use
	Arch
	Linux
	Btw
	By
	The
	Way
	Gentoo
)

var keywordNames = [...]string{
	Unknown: "<unknown>",
	I:       "i",
	Use:     "use",
	Arch:    "arch",
	Linux:   "linux",
	Btw:     "btw",
	By:      "by",
	The:     "the",
	Way:     "way",
	Gentoo:  "gentoo",
}

// Keywords lists the recognized keywords in declaration order.
var Keywords = []Keyword{I, Use, Arch, Linux, Btw, By, The, Way, Gentoo}

var keywordsByText = func() map[string]Keyword {
	ret := make(map[string]Keyword, len(Keywords))
	for _, kw := range Keywords {
		ret[keywordNames[kw]] = kw
	}
	return ret
}()

func (k Keyword) String() string {
	if int(k) < len(keywordNames) {
		return keywordNames[k]
	}
	return keywordNames[Unknown]
}

// Lookup classifies a token text. Matching is case sensitive.
func Lookup(text string) Keyword {
	return keywordsByText[text]
}
