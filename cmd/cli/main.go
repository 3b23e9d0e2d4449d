package main

import (
	"context"
	"os"

	"github.com/ledgerline/taxintake/internal/buildinfo"
	"github.com/ledgerline/taxintake/internal/client/cli"
	"github.com/ledgerline/taxintake/internal/client/config"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	app := cli.NewApp(cfg)
	app.Run(ctx)
}
