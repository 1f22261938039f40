package dnatraits

// IntersectRSID returns the RSIDs present in both a and b. It iterates the
// smaller genome and probes the larger one, so it is O(min(|a|,|b|))
// expected with O(1) probes, per spec.md section 4.6. Return order is
// unspecified. Neither input is mutated.
func IntersectRSID(a, b *Genome) []RSID {
	small, large := a, b
	if b.Size() < a.Size() {
		small, large = b, a
	}
	var out []RSID
	small.Iterate(func(rs RsidSNP) bool {
		if large.Has(rs.RSID) {
			out = append(out, rs.RSID)
		}
		return true
	})
	return out
}

// IntersectSNP returns the RSIDs present in both a and b whose fully
// qualified SNP record (chromosome, position, and genotype) is identical in
// both genomes. It is a subset of IntersectRSID (spec invariant P7).
func IntersectSNP(a, b *Genome) []RSID {
	small, large := a, b
	if b.Size() < a.Size() {
		small, large = b, a
	}
	var out []RSID
	small.Iterate(func(rs RsidSNP) bool {
		if other, ok := large.find(rs.RSID); ok && other.snp.Equal(rs.SNP) {
			out = append(out, rs.RSID)
		}
		return true
	})
	return out
}
