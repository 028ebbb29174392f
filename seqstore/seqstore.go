// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package seqstore provides the immutable nucleotide store scanned by
// the rest of the pipeline, and its lenient FASTA loader.
package seqstore

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
)

// A Warning records one input character outside {A,C,G,T} that was
// coerced to 'T'. Pos is the 1-based position in the assembled
// sequence.
type Warning struct {
	Pos  int
	Char byte
}

func (w Warning) String() string {
	return fmt.Sprintf("position %d: %q coerced to 'T'", w.Pos, w.Char)
}

// Store is an immutable, 0-indexed run of nucleotides over {A,C,G,T}.
type Store struct {
	bases []byte
	index []int8
}

// Len returns the number of stored nucleotides.
func (s *Store) Len() int { return len(s.bases) }

// Base returns the nucleotide at 0-based position i.
func (s *Store) Base(i int) byte { return s.bases[i] }

// Index returns the alphabet index of the nucleotide at 0-based
// position i, following alphabet.DNA ordering: a=0, c=1, g=2, t=3.
func (s *Store) Index(i int) int { return int(s.index[i]) }

// Load reads a sequence file from path. See Read.
func Load(path string) (*Store, []Warning, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	return Read(f)
}

// Read assembles a Store from FASTA-formatted text. Header and comment
// lines are discarded and sequence lines are concatenated in file
// order, across records if there are several. After ASCII case
// folding, any character outside {A,C,G,T} is replaced by 'T' and
// reported as a Warning. Invalid characters are never a read error.
func Read(r io.Reader) (*Store, []Warning, error) {
	in, err := normalise(r)
	if err != nil {
		return nil, nil, err
	}

	var letters []alphabet.Letter
	sc := seqio.NewScanner(fasta.NewReader(in, linear.NewSeq("", nil, alphabet.DNA)))
	for sc.Next() {
		letters = append(letters, sc.Seq().(*linear.Seq).Seq...)
	}
	if err := sc.Error(); err != nil {
		return nil, nil, err
	}

	s := &Store{
		bases: make([]byte, len(letters)),
		index: make([]int8, len(letters)),
	}
	var warns []Warning
	for i, l := range letters {
		b := byte(l)
		if 'a' <= b && b <= 'z' {
			b -= 'a' - 'A'
		}
		idx := alphabet.DNA.IndexOf(alphabet.Letter(b))
		if idx < 0 {
			warns = append(warns, Warning{Pos: i + 1, Char: byte(l)})
			b = 'T'
			idx = alphabet.DNA.IndexOf('T')
		}
		s.bases[i] = b
		s.index[i] = int8(idx)
	}
	return s, warns, nil
}

// normalise drops blank and ';' comment lines and supplies a synthetic
// FASTA header when the input has none, so that plain sequence text is
// accepted too.
func normalise(r io.Reader) (io.Reader, error) {
	var buf bytes.Buffer
	first := true
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 64*1024*1024)
	for sc.Scan() {
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 || line[0] == ';' {
			continue
		}
		if first && line[0] != '>' {
			buf.WriteString(">unnamed\n")
		}
		first = false
		buf.Write(line)
		buf.WriteByte('\n')
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return &buf, nil
}
