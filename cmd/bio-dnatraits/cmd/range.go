package cmd

import (
	"fmt"
	"strconv"

	"github.com/grailbio/base/cmdutil"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/dnatraits"
	"github.com/grailbio/dnatraits/rangeindex"
	"github.com/pkg/errors"
	"v.io/x/lib/cmdline"
)

func newCmdRange() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:     "range",
		Short:    "Parse a genome file and print the RSIDs on a chromosome within a position range",
		ArgsName: "path chromosome start end",
	}
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 4 {
			return fmt.Errorf("range takes path, chromosome, start, end, but got %v", argv)
		}
		return rangeQuery(argv[0], argv[1], argv[2], argv[3])
	})
	return cmd
}

func rangeQuery(path, chrArg, startArg, endArg string) error {
	chr, err := parseChromosomeArg(chrArg)
	if err != nil {
		return err
	}
	start, err := strconv.ParseUint(startArg, 10, 32)
	if err != nil {
		return fmt.Errorf("invalid start %q: %v", startArg, err)
	}
	end, err := strconv.ParseUint(endArg, 10, 32)
	if err != nil {
		return fmt.Errorf("invalid end %q: %v", endArg, err)
	}

	ctx := vcontext.Background()
	g := dnatraits.New(0)
	if err := dnatraits.ParseFile(ctx, path, g); err != nil {
		return errors.Wrap(err, "range")
	}
	idx := rangeindex.Build(g)
	for _, rsid := range idx.InRange(chr, uint32(start), uint32(end)) {
		snp := g.Lookup(rsid)
		fmt.Printf("%d\t%d\t%s\n", rsid, snp.Position, snp.Genotype())
	}
	return nil
}

func parseChromosomeArg(s string) (dnatraits.Chromosome, error) {
	switch s {
	case "X":
		return dnatraits.ChromosomeX, nil
	case "Y":
		return dnatraits.ChromosomeY, nil
	case "MT":
		return dnatraits.ChromosomeMT, nil
	default:
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 || n > 22 {
			return dnatraits.ChromosomeNone, fmt.Errorf("invalid chromosome %q", s)
		}
		return dnatraits.Chromosome(n), nil
	}
}
