package cmd

import (
	"fmt"

	"github.com/grailbio/base/cmdutil"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/dnatraits"
	"github.com/pkg/errors"
	"v.io/x/lib/cmdline"
)

func newCmdLoad() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:     "load",
		Short:    "Parse a genome file and print its summary",
		ArgsName: "path",
	}
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 1 {
			return fmt.Errorf("load takes one pathname argument, but got %v", argv)
		}
		return load(argv[0])
	})
	return cmd
}

func load(path string) error {
	ctx := vcontext.Background()
	g := dnatraits.New(0)
	if err := dnatraits.ParseFile(ctx, path, g); err != nil {
		return errors.Wrap(err, "load")
	}
	fmt.Printf("size=%d first=%d last=%d y_chromosome=%v load_factor=%.3f checksum=%x\n",
		g.Size(), g.First, g.Last, g.YChromosome, g.LoadFactor(), g.Checksum())
	return nil
}
