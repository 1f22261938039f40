package dnatraits

import "testing"

func TestNucleotideComplementIsInvolution(t *testing.T) {
	for n := NucleotideNone; n <= NucleotideI; n++ {
		if got := n.Complement().Complement(); got != n {
			t.Errorf("complement(complement(%v)) = %v, want %v", n, got, n)
		}
	}
}

func TestNucleotideComplementPairs(t *testing.T) {
	cases := []struct {
		n, want Nucleotide
	}{
		{NucleotideA, NucleotideT},
		{NucleotideT, NucleotideA},
		{NucleotideC, NucleotideG},
		{NucleotideG, NucleotideC},
		{NucleotideD, NucleotideD},
		{NucleotideI, NucleotideI},
		{NucleotideNone, NucleotideNone},
	}
	for _, c := range cases {
		if got := c.n.Complement(); got != c.want {
			t.Errorf("%v.Complement() = %v, want %v", c.n, got, c.want)
		}
	}
}

func TestNucleotideString(t *testing.T) {
	cases := map[Nucleotide]string{
		NucleotideA:    "A",
		NucleotideC:    "C",
		NucleotideG:    "G",
		NucleotideT:    "T",
		NucleotideD:    "D",
		NucleotideI:    "I",
		NucleotideNone: "-",
	}
	for n, want := range cases {
		if got := n.String(); got != want {
			t.Errorf("%v.String() = %q, want %q", n, got, want)
		}
	}
}
