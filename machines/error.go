package machines

import (
	"errors"
	"fmt"

	"github.com/reusee/archbtw/tokens"
)

var (
	ErrUnbalancedLoop = errors.New("unbalanced loop")
	ErrInputExhausted = errors.New("end of input")
)

type UnknownKeywordError struct {
	Token      tokens.Token
	Suggestion tokens.Keyword
}

func (u *UnknownKeywordError) Error() string {
	if u.Suggestion != tokens.Unknown {
		return fmt.Sprintf("unknown keyword %q at %s, did you mean %q", u.Token.Text, u.Token.Pos, u.Suggestion)
	}
	return fmt.Sprintf("unknown keyword %q at %s", u.Token.Text, u.Token.Pos)
}
