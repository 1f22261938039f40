package dnatraits

// RSID is a reference-SNP-cluster identifier. Positive RSIDs come from
// "rs"-prefixed lines; negative RSIDs are synthesized from "i"-prefixed
// (internal, chip-only) lines by negating the parsed magnitude. Zero is
// reserved as the empty-slot sentinel of Genome's hash index and is never a
// valid stored key.
type RSID int32

// RsidSNP is the (RSID, SNP) pair yielded by Genome.Iterate.
type RsidSNP struct {
	RSID RSID
	SNP  SNP
}
