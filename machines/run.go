package machines

import (
	"errors"
	"fmt"
	"io"

	"github.com/reusee/archbtw/tokens"
)

type flusher interface {
	Flush() error
}

// Run executes tokens until the instruction pointer passes the last token.
// Unknown keywords are yielded as *UnknownKeywordError and execution goes on if
// yield returns true. Fatal errors are yielded and Run returns.
func (m *Machine) Run(yield func(*Interrupt, error) bool) {
	for !m.Done() {
		token := m.Tokens[m.IP]

		switch token.Keyword {

		case tokens.I:
			if m.DP < TapeSize-1 {
				m.DP++
			}

		case tokens.Use:
			if m.DP > 0 {
				m.DP--
			}

		case tokens.Arch:
			m.Memory[m.DP]++

		case tokens.Linux:
			m.Memory[m.DP]--

		case tokens.Btw:
			if err := m.write(); err != nil {
				yield(nil, tokens.WithPos(err, m.Source, token.Pos))
				return
			}

		case tokens.By:
			if err := m.read(); err != nil {
				yield(nil, tokens.WithPos(err, m.Source, token.Pos))
				return
			}

		case tokens.The:
			if m.Cell() == 0 {
				if err := m.jumpForward(); err != nil {
					yield(nil, tokens.WithPos(err, m.Source, token.Pos))
					return
				}
			}

		case tokens.Way:
			if m.Cell() != 0 {
				if err := m.jumpBackward(); err != nil {
					yield(nil, tokens.WithPos(err, m.Source, token.Pos))
					return
				}
			}

		case tokens.Gentoo:
			if !yield(InterruptDebug, nil) {
				return
			}

		default:
			err := &UnknownKeywordError{
				Token: token,
			}
			if m.Suggest {
				err.Suggestion, _ = tokens.Suggest(token.Text)
			}
			if !yield(nil, err) {
				return
			}

		}

		m.IP++
	}
}

// jumpForward moves IP to the 'way' matching the 'the' at IP.
func (m *Machine) jumpForward() error {
	ip := m.IP
	depth := 1
	for depth > 0 {
		ip++
		if ip >= len(m.Tokens) {
			return ErrUnbalancedLoop
		}
		switch m.Tokens[ip].Keyword {
		case tokens.The:
			depth++
		case tokens.Way:
			depth--
		}
	}
	m.IP = ip
	return nil
}

// jumpBackward moves IP to the 'the' matching the 'way' at IP.
// The scan starts at the token before IP.
func (m *Machine) jumpBackward() error {
	ip := m.IP
	depth := 1
	for depth > 0 {
		ip--
		if ip < 0 {
			return ErrUnbalancedLoop
		}
		switch m.Tokens[ip].Keyword {
		case tokens.Way:
			depth++
		case tokens.The:
			depth--
		}
	}
	m.IP = ip
	return nil
}

func (m *Machine) write() error {
	if _, err := m.Output.Write(m.Memory[m.DP : m.DP+1]); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	if f, ok := m.Output.(flusher); ok {
		if err := f.Flush(); err != nil {
			return fmt.Errorf("flush output: %w", err)
		}
	}
	return nil
}

func (m *Machine) read() error {
	if m.Input == nil {
		return ErrInputExhausted
	}
	b, err := m.Input.ReadByte()
	if errors.Is(err, io.EOF) {
		return ErrInputExhausted
	}
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	m.Memory[m.DP] = b
	return nil
}
