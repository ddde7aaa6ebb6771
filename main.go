package main

import (
	"flag"
	"strings"

	"go.uber.org/fx"

	"github.com/joshuarp/vrf-coordinator/internal/app"
)

var defaultBin string

func selectedModules(binValue string) []fx.Option {
	selected := strings.TrimSpace(strings.ToLower(binValue))

	shared := []fx.Option{
		app.StorageModule(),
		app.ChainModule(),
		app.OracleModule(),
		app.CoordinatorModule(),
	}

	switch selected {
	case "api":
		return append(shared,
			app.RandomnessAPIModule(),
			app.AdminModule(),
			app.AuthModule(),
		)
	case "keeper":
		return append(shared,
			app.KeeperModule(),
		)
	default:
		return append(shared,
			app.RandomnessAPIModule(),
			app.AdminModule(),
			app.AuthModule(),
			app.KeeperModule(),
		)
	}
}

func main() {
	bin := flag.String("bin", defaultBin, "select module binary: api|keeper (default: all)")
	flag.Parse()

	app.New(*bin, selectedModules(*bin)...).Run()
}
