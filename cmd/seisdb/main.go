package main

import (
	"context"
	"os"

	"github.com/wavefieldlabs/seisdb/internal/cli"
)

var version = "dev"

func main() {
	deps := cli.Dependencies{Version: version}
	os.Exit(cli.Execute(context.Background(), os.Args[1:], deps, os.Stdout, os.Stderr))
}
