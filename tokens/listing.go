package tokens

import (
	"fmt"
	"io"
)

func WriteListing(w io.Writer, tokens []Token) error {
	for i, token := range tokens {
		name := token.Keyword.String()
		if token.Keyword == Unknown {
			name = fmt.Sprintf("%q", token.Text)
		}
		if _, err := fmt.Fprintf(w, "[0x%04X] %-8s %s\n", i, name, token.Pos); err != nil {
			return err
		}
	}
	return nil
}
