package dnatraits

// batchCapacity is the reference size from spec.md section 4.3: large
// enough to amortize hash-table insertion, small enough to stay cache-
// resident.
const batchCapacity = 200

// batch is a small fixed-capacity staging buffer the parser fills while
// sweeping the input. It exists purely for cache locality -- flushing it in
// bulk is semantically identical to inserting one record at a time in the
// same order (spec invariant P8).
type batch struct {
	entries [batchCapacity]RsidSNP
	n       int
}

func (b *batch) add(g *Genome, rsid RSID, snp SNP) {
	b.entries[b.n] = RsidSNP{RSID: rsid, SNP: snp}
	b.n++
	if b.n == batchCapacity {
		b.flush(g)
	}
}

func (b *batch) flush(g *Genome) {
	for i := 0; i < b.n; i++ {
		g.Insert(b.entries[i].RSID, b.entries[i].SNP)
	}
	b.n = 0
}
