package machines

type Interrupt struct {
	Debug bool
}

var (
	InterruptDebug = &Interrupt{
		Debug: true,
	}
)
