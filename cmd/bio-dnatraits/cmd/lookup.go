package cmd

import (
	"fmt"
	"strconv"

	"github.com/grailbio/base/cmdutil"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/dnatraits"
	"github.com/pkg/errors"
	"v.io/x/lib/cmdline"
)

func newCmdLookup() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:     "lookup",
		Short:    "Parse a genome file and print the SNP stored for each given RSID",
		ArgsName: "path rsid...",
	}
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) < 2 {
			return fmt.Errorf("lookup takes a path and at least one rsid, but got %v", argv)
		}
		return lookup(argv[0], argv[1:])
	})
	return cmd
}

func lookup(path string, rawRsids []string) error {
	ctx := vcontext.Background()
	g := dnatraits.New(0)
	if err := dnatraits.ParseFile(ctx, path, g); err != nil {
		return errors.Wrap(err, "lookup")
	}
	for _, raw := range rawRsids {
		n, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			return fmt.Errorf("invalid rsid %q: %v", raw, err)
		}
		rsid := dnatraits.RSID(n)
		if !g.Has(rsid) {
			fmt.Printf("%d\tnot found\n", rsid)
			continue
		}
		snp := g.Lookup(rsid)
		fmt.Printf("%d\t%s\t%d\t%s\n", rsid, snp.Chromosome(), snp.Position, snp.Genotype())
	}
	return nil
}
