// tokenfmt CLI - command-line interface for the tokenfmt template engine
package main

import "github.com/tokenfmt/tokenfmt/pkg/cli"

// Build-time variables set via ldflags
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

func main() {
	cli.Version = Version
	cli.Commit = Commit
	cli.BuildDate = BuildDate
	cli.Execute()
}
