package machines

import (
	"bufio"
	"io"
	"log/slog"

	"github.com/reusee/archbtw/tokens"
)

const TapeSize = 65536

type Machine struct {
	Memory [TapeSize]byte
	DP     int // data pointer
	IP     int // instruction pointer

	Tokens []tokens.Token
	Source *tokens.Source

	Input      io.ByteReader
	Output     io.Writer
	Debug      io.Writer
	DebugColor bool
	Suggest    bool
	Logger     *slog.Logger
}

func New(src *tokens.Source, toks []tokens.Token) *Machine {
	return &Machine{
		Tokens: toks,
		Source: src,
		Output: io.Discard,
		Debug:  io.Discard,
		Logger: slog.New(slog.DiscardHandler),
	}
}

// SetInput sets the stream read by 'by'.
// Readers without ReadByte are buffered.
func (m *Machine) SetInput(r io.Reader) {
	if br, ok := r.(io.ByteReader); ok {
		m.Input = br
		return
	}
	m.Input = bufio.NewReader(r)
}

// Cell returns the value under the data pointer.
func (m *Machine) Cell() byte {
	return m.Memory[m.DP]
}

// Done reports whether the instruction pointer is past the last token.
func (m *Machine) Done() bool {
	return m.IP >= len(m.Tokens)
}
