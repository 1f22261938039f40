package rangeindex

import (
	"testing"

	"github.com/grailbio/dnatraits"
	"github.com/grailbio/testutil/expect"
)

func TestInRangeFiltersByChromosomeAndPosition(t *testing.T) {
	g := dnatraits.New(8)
	g.Insert(1, dnatraits.NewSNP(dnatraits.Chromosome1, 100, dnatraits.Genotype{First: dnatraits.NucleotideA, Second: dnatraits.NucleotideA}))
	g.Insert(2, dnatraits.NewSNP(dnatraits.Chromosome1, 200, dnatraits.Genotype{First: dnatraits.NucleotideC, Second: dnatraits.NucleotideC}))
	g.Insert(3, dnatraits.NewSNP(dnatraits.Chromosome1, 300, dnatraits.Genotype{First: dnatraits.NucleotideG, Second: dnatraits.NucleotideG}))
	g.Insert(4, dnatraits.NewSNP(dnatraits.Chromosome2, 150, dnatraits.Genotype{First: dnatraits.NucleotideT, Second: dnatraits.NucleotideT}))

	idx := Build(g)

	got := idx.InRange(dnatraits.Chromosome1, 100, 300)
	expect.EQ(t, len(got), 2)
	expect.EQ(t, got[0], dnatraits.RSID(1))
	expect.EQ(t, got[1], dnatraits.RSID(2))
}

func TestInRangeEmptyWhenNoChromosomeMatch(t *testing.T) {
	g := dnatraits.New(8)
	g.Insert(1, dnatraits.NewSNP(dnatraits.Chromosome1, 100, dnatraits.Genotype{First: dnatraits.NucleotideA, Second: dnatraits.NucleotideA}))

	idx := Build(g)
	got := idx.InRange(dnatraits.ChromosomeX, 0, 1000)
	expect.EQ(t, len(got), 0)
}

func TestInRangeEndIsExclusive(t *testing.T) {
	g := dnatraits.New(8)
	g.Insert(1, dnatraits.NewSNP(dnatraits.Chromosome1, 100, dnatraits.Genotype{First: dnatraits.NucleotideA, Second: dnatraits.NucleotideA}))

	idx := Build(g)
	expect.EQ(t, len(idx.InRange(dnatraits.Chromosome1, 0, 100)), 0)
	expect.EQ(t, len(idx.InRange(dnatraits.Chromosome1, 100, 101)), 1)
}
