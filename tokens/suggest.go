package tokens

import (
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Suggest returns the keyword closest to an unrecognized token text.
func Suggest(text string) (ret Keyword, ok bool) {
	best := -1
	for _, kw := range Keywords {
		name := kw.String()
		if diff := len(name) - len(text); diff > 2 || diff < -2 {
			continue
		}
		rank := fuzzy.RankMatchNormalizedFold(text, name)
		if rank < 0 {
			rank = fuzzy.RankMatchNormalizedFold(name, text)
		}
		if rank < 0 {
			continue
		}
		if best < 0 || rank < best {
			best = rank
			ret = kw
			ok = true
		}
	}
	return
}
