// Copyright 2020 Grail Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package rangeindex builds a position-ordered index over a dnatraits.Genome
// so callers can slice its SNPs by genomic region, a query Genome itself
// does not support (its only key is RSID). This supplements spec.md's
// closed operation set; see SPEC_FULL.md's RANGEINDEX module.
package rangeindex

import (
	"math"

	"github.com/biogo/store/llrb"
	"github.com/grailbio/dnatraits"
)

// key orders entries by (chromosome, position), then by RSID to break ties
// between co-located SNPs. Grounded in
// encoding/bampair/shard_info.go's llrb.Comparable key pattern.
type key struct {
	chromosome dnatraits.Chromosome
	position   uint32
	rsid       dnatraits.RSID
}

func (k key) Compare(c2 llrb.Comparable) int {
	o := c2.(key)
	if k.chromosome != o.chromosome {
		return int(k.chromosome) - int(o.chromosome)
	}
	if k.position != o.position {
		if k.position < o.position {
			return -1
		}
		return 1
	}
	return int(k.rsid) - int(o.rsid)
}

// Index is an ordered (chromosome, position) -> RSID index built once from
// a fully-loaded Genome.
type Index struct {
	tree llrb.Tree
}

// Build walks g once and indexes every entry by (chromosome, position).
func Build(g *dnatraits.Genome) *Index {
	idx := &Index{}
	g.Iterate(func(rs dnatraits.RsidSNP) bool {
		idx.tree.Insert(key{
			chromosome: rs.SNP.Chromosome(),
			position:   rs.SNP.Position,
			rsid:       rs.RSID,
		})
		return true
	})
	return idx
}

// InRange returns the RSIDs on chromosome chr whose position falls in
// [start, end), ordered by position.
func (idx *Index) InRange(chr dnatraits.Chromosome, start, end uint32) []dnatraits.RSID {
	var out []dnatraits.RSID
	lower := key{chromosome: chr, position: start, rsid: math.MinInt32}
	idx.tree.DoRange(func(c llrb.Comparable) bool {
		k := c.(key)
		if k.chromosome != chr || k.position >= end {
			return true // stop
		}
		out = append(out, k.rsid)
		return false
	}, lower, key{chromosome: chr, position: end})
	return out
}
