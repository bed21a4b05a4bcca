package machines

import "fmt"

const (
	colorOp      = "\x1b[96m"
	colorComment = "\x1b[90m"
	colorLabel   = "\x1b[1;34m"
	colorNumeric = "\x1b[33m"
	colorReset   = "\x1b[0m"
)

// DebugLine describes the machine position. Instruction and data positions are
// logical indexes, not memory addresses.
func (m *Machine) DebugLine(color bool) string {
	at := "end"
	if m.IP >= 0 && m.IP < len(m.Tokens) {
		at = m.Tokens[m.IP].Pos.String()
	}
	if !color {
		return fmt.Sprintf("debug: ip = %d; dp = %d; *dp = %d (%s)", m.IP, m.DP, m.Cell(), at)
	}
	return fmt.Sprintf(
		colorLabel+"debug: "+colorReset+
			"ip "+colorOp+"= "+colorNumeric+"%d"+colorOp+"; "+colorReset+
			"dp "+colorOp+"= "+colorNumeric+"%d"+colorOp+"; "+colorReset+
			colorOp+"*"+colorReset+"dp "+colorOp+"= "+colorNumeric+"%d"+colorReset+
			colorComment+" (%s)"+colorReset,
		m.IP, m.DP, m.Cell(), at,
	)
}

func (m *Machine) writeDebug() error {
	_, err := fmt.Fprintln(m.Debug, m.DebugLine(m.DebugColor))
	return err
}
