package machines

import (
	"io"

	"gopkg.in/yaml.v3"
)

type Cell struct {
	Index int  `yaml:"index"`
	Value byte `yaml:"value"`
}

type State struct {
	IP     int    `yaml:"ip"`
	DP     int    `yaml:"dp"`
	Tokens int    `yaml:"tokens"`
	Cells  []Cell `yaml:"cells,omitempty"`
}

// State returns the registers and the nonzero tape cells.
func (m *Machine) State() State {
	state := State{
		IP:     m.IP,
		DP:     m.DP,
		Tokens: len(m.Tokens),
	}
	for i, value := range m.Memory {
		if value != 0 {
			state.Cells = append(state.Cells, Cell{
				Index: i,
				Value: value,
			})
		}
	}
	return state
}

func (m *Machine) DumpState(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(m.State()); err != nil {
		return err
	}
	return enc.Close()
}
