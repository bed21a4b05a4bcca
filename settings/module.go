package settings

import (
	"github.com/reusee/archbtw/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
