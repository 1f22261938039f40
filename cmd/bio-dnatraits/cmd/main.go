// Package cmd implements the bio-dnatraits subcommands. Structured like
// cmd/bio-pamtool/cmd: one v.io/x/lib/cmdline.Command per subcommand, a
// cmdutil.RunnerFunc wrapping each one, and a Run() that wires them all
// under a single root command.
package cmd

import (
	"log"

	"v.io/x/lib/cmdline"
)

// Run parses the command line and dispatches to a subcommand. It is called
// from cmd/bio-dnatraits/main.go, after grail.Init().
func Run() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds | log.Lshortfile)
	cmdline.HideGlobalFlagsExcept()
	cmdline.Main(&cmdline.Command{
		Name:  "bio-dnatraits",
		Short: "Load and query 23andMe-style genotype export files",
		Children: []*cmdline.Command{
			newCmdLoad(),
			newCmdLookup(),
			newCmdIntersect(),
			newCmdRange(),
		},
	})
}
