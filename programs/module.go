package programs

import (
	"github.com/reusee/archbtw/machines"
	"github.com/reusee/archbtw/settings"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Machines machines.Module
	Settings settings.Module
}
