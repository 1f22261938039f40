package dnatraits

import (
	"encoding/binary"
	"math"
	"math/bits"

	"blainsmith.com/go/seahash"
	"github.com/grailbio/base/log"
)

// DefaultCapacity is the capacity hint used by New() when the caller has no
// better estimate. It is sized to avoid rehashing during a typical
// full-chip load (~600k-900k SNPs).
const DefaultCapacity = 1 << 20

const maxLoadFactor = 0.75

// slot is one bucket of the open-addressed table. rsid == 0 marks an empty
// slot; RSID 0 is never a valid stored key (spec invariant I1).
type slot struct {
	rsid RSID
	snp  SNP
}

// Genome is a mapping from RSID to SNP, plus three scalar aggregates: the
// smallest and largest RSID observed (First, Last) and whether any stored
// SNP on the Y chromosome has a non-none first nucleotide (YChromosome). It is an
// open-addressed hash table with linear probing and an identity hash on
// RSID: RSIDs are already well-distributed small integers, so identity
// hashing removes a measurable cost from the parser's inner loop.
//
// A Genome is owned by a single writer during parsing; once loaded it may
// be read freely by any number of concurrent readers.
type Genome struct {
	First       RSID
	Last        RSID
	YChromosome bool

	slots []slot
	size  int
}

// New constructs an empty Genome. capacityHint sizes the initial table;
// pass 0 to use DefaultCapacity.
func New(capacityHint int) *Genome {
	if capacityHint <= 0 {
		capacityHint = DefaultCapacity
	}
	n := nextPow2(int(float64(capacityHint) / maxLoadFactor))
	return &Genome{
		First: math.MaxInt32,
		Last:  math.MinInt32,
		slots: make([]slot, n),
	}
}

func nextPow2(n int) int {
	if n < 8 {
		return 8
	}
	return 1 << bits.Len(uint(n-1))
}

// identityHash is the reference hash function of spec.md section 4.5:
// RSIDs are small, well-distributed signed integers, so the identity
// function (cast to an unsigned index type) is used directly.
func identityHash(rsid RSID, mask int) int {
	return int(uint32(rsid)) & mask
}

// Insert adds rsid -> snp to the table. rsid must be non-zero; inserting
// RSID 0 is a programmer error (spec.md reserves it as the empty-slot
// sentinel) and panics. Insert does not update First/Last/YChromosome --
// the parser driver maintains those aggregates itself as it streams
// records in, per spec.md section 4.4.
func (g *Genome) Insert(rsid RSID, snp SNP) {
	if rsid == 0 {
		log.Panicf("dnatraits: cannot insert RSID 0, it is reserved as the empty-slot sentinel")
	}
	if float64(g.size+1) > maxLoadFactor*float64(len(g.slots)) {
		g.grow()
	}
	g.insertSlot(rsid, snp)
}

func (g *Genome) insertSlot(rsid RSID, snp SNP) {
	mask := len(g.slots) - 1
	i := identityHash(rsid, mask)
	for {
		s := &g.slots[i]
		if s.rsid == 0 {
			s.rsid = rsid
			s.snp = snp
			g.size++
			return
		}
		if s.rsid == rsid {
			s.snp = snp
			return
		}
		i = (i + 1) & mask
	}
}

func (g *Genome) grow() {
	old := g.slots
	g.slots = make([]slot, len(old)*2)
	g.size = 0
	for _, s := range old {
		if s.rsid != 0 {
			g.insertSlot(s.rsid, s.snp)
		}
	}
}

// Has reports whether rsid is stored in g.
func (g *Genome) Has(rsid RSID) bool {
	_, ok := g.find(rsid)
	return ok
}

// Lookup returns the SNP stored for rsid, or NoneSNP if rsid is absent.
// Lookup never fails.
func (g *Genome) Lookup(rsid RSID) SNP {
	if s, ok := g.find(rsid); ok {
		return s.snp
	}
	return NoneSNP
}

func (g *Genome) find(rsid RSID) (*slot, bool) {
	if rsid == 0 || len(g.slots) == 0 {
		return nil, false
	}
	mask := len(g.slots) - 1
	i := identityHash(rsid, mask)
	for {
		s := &g.slots[i]
		if s.rsid == 0 {
			return nil, false
		}
		if s.rsid == rsid {
			return s, true
		}
		i = (i + 1) & mask
	}
}

// Size returns the number of stored records.
func (g *Genome) Size() int {
	return g.size
}

// LoadFactor is size/capacity, for developer diagnostics.
func (g *Genome) LoadFactor() float64 {
	if len(g.slots) == 0 {
		return 0
	}
	return float64(g.size) / float64(len(g.slots))
}

// RSIDs returns the set of stored keys, in unspecified but stable-within-a-
// traversal order.
func (g *Genome) RSIDs() []RSID {
	r := make([]RSID, 0, g.size)
	g.Iterate(func(rs RsidSNP) bool {
		r = append(r, rs.RSID)
		return true
	})
	return r
}

// SNPs returns a copy of all stored SNPs.
func (g *Genome) SNPs() []SNP {
	r := make([]SNP, 0, g.size)
	g.Iterate(func(rs RsidSNP) bool {
		r = append(r, rs.SNP)
		return true
	})
	return r
}

// Iterate calls fn once per stored entry, in unspecified order, stopping
// early if fn returns false. It is a thin, by-value traversal over the
// table's own backing array -- no heap-allocated iterator object, per
// SPEC_FULL.md's "opaque-handle iterator" re-architecture note.
func (g *Genome) Iterate(fn func(RsidSNP) bool) {
	for _, s := range g.slots {
		if s.rsid == 0 {
			continue
		}
		if !fn(RsidSNP{RSID: s.rsid, SNP: s.snp}) {
			return
		}
	}
}

// Clone returns a deep copy of g. A Genome owns its storage exclusively and
// is freely copyable by deep-copy semantics (spec.md lifecycle note).
func (g *Genome) Clone() *Genome {
	out := &Genome{
		First:       g.First,
		Last:        g.Last,
		YChromosome: g.YChromosome,
		slots:       make([]slot, len(g.slots)),
		size:        g.size,
	}
	copy(out.slots, g.slots)
	return out
}

// Equal reports whether g and o have identical aggregates and the same
// key-value multiset. It cheap-rejects on the aggregates before doing a
// full comparison, and never depends on insertion order (spec invariant
// I4).
func (g *Genome) Equal(o *Genome) bool {
	if g == o {
		return true
	}
	if g.First != o.First || g.Last != o.Last || g.YChromosome != o.YChromosome || g.size != o.size {
		return false
	}
	equal := true
	g.Iterate(func(rs RsidSNP) bool {
		if !o.Lookup(rs.RSID).Equal(rs.SNP) {
			equal = false
			return false
		}
		return true
	})
	return equal
}

// Checksum returns an order-independent content digest of g's entries: the
// XOR of seahash.Sum64 over the byte encoding of every (rsid, snp) pair.
// XOR is commutative and associative, so the result does not depend on
// iteration order, matching the order-independence of Equal (spec
// invariant I4). Grounded in cmd/bio-pamtool/checksum.go's
// "commutative hash" idiom and encoding/bamprovider/concurrentmap.go's use
// of the same seahash package.
func (g *Genome) Checksum() uint64 {
	var buf [10]byte
	var sum uint64
	g.Iterate(func(rs RsidSNP) bool {
		binary.LittleEndian.PutUint32(buf[0:4], uint32(rs.RSID))
		binary.LittleEndian.PutUint16(buf[4:6], rs.SNP.chromGenotype)
		binary.LittleEndian.PutUint32(buf[6:10], rs.SNP.Position)
		sum ^= seahash.Sum64(buf[:])
		return true
	})
	return sum
}
