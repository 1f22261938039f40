package dnatraits

import (
	"testing"

	"github.com/grailbio/testutil/expect"
)

func buildGenome(entries ...RsidSNP) *Genome {
	g := New(8)
	for _, e := range entries {
		g.Insert(e.RSID, e.SNP)
	}
	return g
}

func TestIntersectionScenario(t *testing.T) {
	a := buildGenome(
		RsidSNP{RSID: 1, SNP: NewSNP(Chromosome1, 100, Genotype{NucleotideA, NucleotideG})},
		RsidSNP{RSID: 2, SNP: NewSNP(Chromosome1, 200, Genotype{NucleotideC, NucleotideC})},
	)
	b := buildGenome(
		RsidSNP{RSID: 2, SNP: NewSNP(Chromosome1, 200, Genotype{NucleotideC, NucleotideC})},
		RsidSNP{RSID: 3, SNP: NewSNP(Chromosome1, 300, Genotype{NucleotideT, NucleotideT})},
	)

	expect.EQ(t, IntersectRSID(a, b), []RSID{2})
	expect.EQ(t, IntersectSNP(a, b), []RSID{2})

	bMismatch := buildGenome(
		RsidSNP{RSID: 2, SNP: NewSNP(Chromosome1, 200, Genotype{NucleotideC, NucleotideG})},
		RsidSNP{RSID: 3, SNP: NewSNP(Chromosome1, 300, Genotype{NucleotideT, NucleotideT})},
	)
	expect.EQ(t, IntersectRSID(a, bMismatch), []RSID{2})
	expect.EQ(t, len(IntersectSNP(a, bMismatch)), 0)
}

func TestIntersectionIsCommutative(t *testing.T) {
	a := buildGenome(
		RsidSNP{RSID: 1, SNP: NewSNP(Chromosome1, 100, Genotype{NucleotideA, NucleotideA})},
		RsidSNP{RSID: 2, SNP: NewSNP(Chromosome2, 200, Genotype{NucleotideC, NucleotideC})},
	)
	b := buildGenome(
		RsidSNP{RSID: 2, SNP: NewSNP(Chromosome2, 200, Genotype{NucleotideC, NucleotideC})},
		RsidSNP{RSID: 3, SNP: NewSNP(Chromosome3, 300, Genotype{NucleotideT, NucleotideT})},
	)
	expect.EQ(t, asSet(IntersectRSID(a, b)), asSet(IntersectRSID(b, a)))
	expect.EQ(t, asSet(IntersectSNP(a, b)), asSet(IntersectSNP(b, a)))
}

func TestIntersectSNPIsSubsetOfIntersectRSID(t *testing.T) {
	a := buildGenome(
		RsidSNP{RSID: 1, SNP: NewSNP(Chromosome1, 1, Genotype{NucleotideA, NucleotideA})},
		RsidSNP{RSID: 2, SNP: NewSNP(Chromosome1, 2, Genotype{NucleotideC, NucleotideC})},
	)
	b := buildGenome(
		RsidSNP{RSID: 1, SNP: NewSNP(Chromosome1, 1, Genotype{NucleotideA, NucleotideA})},
		RsidSNP{RSID: 2, SNP: NewSNP(Chromosome1, 2, Genotype{NucleotideG, NucleotideG})},
	)
	rsidSet := asSet(IntersectRSID(a, b))
	for _, r := range IntersectSNP(a, b) {
		expect.True(t, rsidSet[r])
	}
}

func asSet(rsids []RSID) map[RSID]bool {
	out := make(map[RSID]bool, len(rsids))
	for _, r := range rsids {
		out[r] = true
	}
	return out
}
