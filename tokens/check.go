package tokens

import "errors"

var (
	ErrUnexpectedLoopEnd = errors.New("unexpected loop end")
	ErrUnclosedLoop      = errors.New("unclosed loop")
)

// CheckLoops reports the first 'way' without an opening 'the', or the innermost
// 'the' left open at the end of the sequence.
func CheckLoops(src *Source, tokens []Token) error {
	var opens []Token
	for _, token := range tokens {
		switch token.Keyword {
		case The:
			opens = append(opens, token)
		case Way:
			if len(opens) == 0 {
				return WithPos(ErrUnexpectedLoopEnd, src, token.Pos)
			}
			opens = opens[:len(opens)-1]
		}
	}
	if len(opens) > 0 {
		return WithPos(ErrUnclosedLoop, src, opens[len(opens)-1].Pos)
	}
	return nil
}
