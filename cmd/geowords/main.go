// Command geowords converts between coordinates and three-word names.
//
// Usage:
//
//	geowords encode 51.5007,-0.1246
//	geowords encode -- 51.5007 -0.1246
//	geowords decode hogi.dilu.peta
//	geowords roundtrip -n 1000
//
// Defaults come from GEOWORDS_* environment variables; flags override them.
package main

import (
	"os"

	"github.com/andreiashu/geowords/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		config.Exitf("Error: %v", err)
	}
	if err := newRootCmd(cfg).Execute(); err != nil {
		os.Exit(1)
	}
}
