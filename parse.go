package dnatraits

import (
	"context"
	"time"

	"github.com/grailbio/base/log"
	"github.com/grailbio/dnatraits/provider"
)

// ParseFile reads a 23andMe-formatted genome export (GRCh37, annotation
// release 104) at path and inserts every record into g. g is typically
// freshly constructed with New(), but ParseFile does not require that --
// records are merged into whatever g already contains.
//
// Only I/O failures (the file cannot be opened, stat-ed or mapped) are
// returned as an error. A line whose first byte is not 'r' or 'i' after
// the header is silently skipped: this is deliberate (spec.md section 7) --
// the exporter's schema is versioned externally, and rejecting unrecognized
// lines would break forward compatibility.
func ParseFile(ctx context.Context, path string, g *Genome) error {
	start := time.Now()
	p, err := provider.Open(ctx, path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := p.Close(); cerr != nil {
			log.Error.Printf("dnatraits: closing %s: %v", path, cerr)
		}
	}()

	parseBytes(p.Bytes(), g)

	log.Printf("dnatraits: parsed %s: size=%d first=%d last=%d y_chromosome=%v load_factor=%.3f elapsed=%s content_hash=%x",
		path, g.Size(), g.First, g.Last, g.YChromosome, g.LoadFactor(), time.Since(start), p.ContentHash())
	return nil
}

// parseBytes runs the single linear sweep of spec.md section 4.4 over an
// already-obtained, NUL-terminated byte range.
func parseBytes(buf []byte, g *Genome) {
	s := newScanner(buf)
	s.skipComments()

	var b batch
	for !s.done() {
		var internal bool
		switch s.byte() {
		case 'i':
			internal = true
		case 'r':
			internal = false
		default:
			s.skipLine()
			continue
		}

		if internal {
			s.pos++ // skip "i"
		} else {
			s.pos += 2 // skip "rs"
		}

		magnitude := s.parseInt32()
		rsid := RSID(magnitude)
		if internal {
			rsid = -rsid
		}

		if rsid < g.First {
			g.First = rsid
		}
		if rsid > g.Last {
			g.Last = rsid
		}

		s.skipWhite()
		chromosome := s.parseChromosome()
		s.skipWhite()
		position := s.parseUint32()
		s.skipWhite()
		genotype := s.parseGenotype()

		if chromosome == ChromosomeY && genotype.First != NucleotideNone {
			g.YChromosome = true
		}

		b.add(g, rsid, NewSNP(chromosome, position, genotype))
	}
	b.flush(g)
}
