// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package annot loads CDS features from a GFF annotation file and
// indexes their end coordinates as ground-truth stop positions.
package annot

import (
	"io"
	"os"

	"github.com/biogo/biogo/io/featio/gff"
	"github.com/biogo/store/interval"
)

// cds is one annotated coding interval, 0-based half-open as stored by
// the GFF reader.
type cds struct {
	id         uintptr
	start, end int
}

func (c *cds) Overlap(b interval.IntRange) bool { return c.end > b.Start && c.start < b.End }
func (c *cds) ID() uintptr                      { return c.id }
func (c *cds) Range() interval.IntRange         { return interval.IntRange{Start: c.start, End: c.end} }

// query is a 0-based half-open overlap query.
type query struct{ start, end int }

func (q query) Overlap(b interval.IntRange) bool { return q.end > b.Start && q.start < b.End }

// Index is the read-only set of annotated CDS positions. All query
// methods are nil-receiver safe; a nil Index behaves as an empty one.
type Index struct {
	ends  map[int]bool
	tree  *interval.IntTree
	count int
}

// Load reads an annotation file from path. See Read.
func Load(path string) (*Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

// Read builds an Index from GFF text. Every feature record of type
// CDS contributes its declared end coordinate; records of other types
// are ignored. A malformed file is a read error, not a partial load.
func Read(r io.Reader) (*Index, error) {
	ix := &Index{ends: make(map[int]bool), tree: &interval.IntTree{}}
	in := gff.NewReader(r)
	var id uintptr
	for {
		f, err := in.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		gf, ok := f.(*gff.Feature)
		if !ok || gf.Feature != "CDS" {
			continue
		}
		// GFF coordinates are 1-based inclusive; the reader keeps
		// FeatEnd numerically equal to the declared end.
		ix.ends[gf.FeatEnd] = true
		err = ix.tree.Insert(&cds{id: id, start: gf.FeatStart, end: gf.FeatEnd}, true)
		if err != nil {
			return nil, err
		}
		id++
		ix.count++
	}
	ix.tree.AdjustRanges()
	return ix, nil
}

// Len returns the number of CDS features loaded.
func (ix *Index) Len() int {
	if ix == nil {
		return 0
	}
	return ix.count
}

// IsStopEnd reports whether end, a 1-based inclusive position, is the
// end coordinate of an annotated CDS.
func (ix *Index) IsStopEnd(end int) bool {
	if ix == nil {
		return false
	}
	return ix.ends[end]
}

// OverlapsCDS reports whether the 1-based inclusive range [start,end]
// overlaps any annotated CDS.
func (ix *Index) OverlapsCDS(start, end int) bool {
	if ix == nil {
		return false
	}
	var hit bool
	ix.tree.DoMatching(func(interval.IntInterface) (done bool) {
		hit = true
		return true
	}, query{start - 1, end})
	return hit
}
