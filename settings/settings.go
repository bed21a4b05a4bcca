package settings

import (
	"github.com/reusee/archbtw/cmds"
	"github.com/reusee/archbtw/configs"
	"github.com/reusee/archbtw/logs"
)

var (
	colorFlag     *bool
	checkFlag     = cmds.Switch("-check")
	noSuggestFlag = cmds.Switch("-no-suggest")
	dumpFlag      = cmds.Var[string]("-dump")
)

func init() {
	cmds.Describe("-check", "check loop balance before running")
	cmds.Describe("-no-suggest", "do not suggest keywords for unknown tokens")
	cmds.Lookup("-dump").Desc("write the final machine state as YAML").Args("file")
	cmds.Define("-color", cmds.Func(func() {
		v := true
		colorFlag = &v
	}).Desc("colorize debug lines"))
	cmds.Define("-no-color", cmds.Func(func() {
		v := false
		colorFlag = &v
	}).Desc("do not colorize debug lines"))
}

// DebugColor enables ANSI colors in the 'gentoo' debug line.
type DebugColor bool

func (Module) DebugColor(
	loader configs.Loader,
	logger logs.Logger,
) DebugColor {
	if colorFlag != nil {
		return DebugColor(*colorFlag)
	}
	return DebugColor(lookup(loader, logger, "debug_color", false))
}

// CheckLoops enables the static loop balance check before execution.
type CheckLoops bool

func (Module) CheckLoops(
	loader configs.Loader,
	logger logs.Logger,
) CheckLoops {
	if *checkFlag {
		return true
	}
	return CheckLoops(lookup(loader, logger, "check_loops", false))
}

// SuggestKeywords adds the nearest keyword to unknown keyword diagnostics.
type SuggestKeywords bool

func (Module) SuggestKeywords(
	loader configs.Loader,
	logger logs.Logger,
) SuggestKeywords {
	if *noSuggestFlag {
		return false
	}
	return SuggestKeywords(lookup(loader, logger, "suggest_keywords", true))
}

// DumpPath is the file receiving the final machine state. Empty disables dumping.
type DumpPath string

func (Module) DumpPath() DumpPath {
	return DumpPath(*dumpFlag)
}

func lookup(loader configs.Loader, logger logs.Logger, path string, defaultValue bool) bool {
	value, err := configs.First[*bool](loader, path)
	if err != nil {
		logger.Error("bad config", "key", path, "error", err)
		return defaultValue
	}
	if value == nil {
		return defaultValue
	}
	return *value
}
