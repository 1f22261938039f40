package cmd

import (
	"fmt"
	"sort"

	"github.com/grailbio/base/cmdutil"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/dnatraits"
	"v.io/x/lib/cmdline"
)

func newCmdIntersect() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:     "intersect",
		Short:    "Parse two genome files and print the RSIDs they share",
		ArgsName: "a b",
	}
	bySNP := cmd.Flags.Bool("by-snp", false,
		"Require the full SNP record (chromosome, position, genotype) to match, not just the RSID")
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 2 {
			return fmt.Errorf("intersect takes two pathnames, but got %v", argv)
		}
		return intersect(argv[0], argv[1], *bySNP)
	})
	return cmd
}

func intersect(aPath, bPath string, bySNP bool) error {
	ctx := vcontext.Background()
	cache := dnatraits.NewCache()
	a, err := cache.Get(ctx, aPath)
	if err != nil {
		return err
	}
	b, err := cache.Get(ctx, bPath)
	if err != nil {
		return err
	}

	var rsids []dnatraits.RSID
	if bySNP {
		rsids = dnatraits.IntersectSNP(a, b)
	} else {
		rsids = dnatraits.IntersectRSID(a, b)
	}
	sort.Slice(rsids, func(i, j int) bool { return rsids[i] < rsids[j] })
	for _, r := range rsids {
		fmt.Println(r)
	}
	return nil
}
