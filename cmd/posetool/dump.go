package main

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"

	"github.com/Faultbox/pose/internal/config"
)

var spewConfig *spew.ConfigState

func init() {
	spewConfig = spew.NewDefaultConfig()
	spewConfig.DisableCapacities = true
	spewConfig.DisablePointerAddresses = true
}

// dump writes a structure dump to stderr when enabled in cfg.
func dump(cfg *config.Config, a ...interface{}) {
	if !cfg.Output.Dump {
		return
	}
	fmt.Fprintln(os.Stderr, spewConfig.Sdump(a...))
}
