// Package chromosome compares two packed chromosomes chunk by chunk,
// leaving out the telomere repeats at either end.
package chromosome

import (
	"errors"
	"fmt"
	"strings"

	"dnadiff-core/base"
	"dnadiff-core/edit"
	"dnadiff-core/stream"
)

var ErrInvalidComparer = errors.New("invalid comparer")

// Comparison is the edit script for one chromosome.
//
// Leading1/Leading2 are the letter offsets where the leading telomere region
// of each sequence ends; Trailing1/Trailing2 where the trailing region
// begins, or the decoded length when none was found. Applying
// Transformations to s1[:Trailing1] gives s1[:Leading1] + s2[Leading2:Trailing2].
type Comparison struct {
	Chromosome      int
	Transformations []edit.Transformation
	Leading1        int
	Leading2        int
	Trailing1       int
	Trailing2       int
}

// Unchanged is the comparison of a chromosome of length letters with an
// identical copy of itself.
func Unchanged(number, length int) Comparison {
	return Comparison{Chromosome: number, Trailing1: length, Trailing2: length}
}

// Comparer diffs two chromosome streams. Compare consumes both streams.
type Comparer struct {
	number int
	c1, c2 *stream.Stream
}

func NewComparer(number int, c1, c2 *stream.Stream) (*Comparer, error) {
	if c1 == nil || c2 == nil {
		return nil, fmt.Errorf("chromosome %d: %w: nil stream", number, ErrInvalidComparer)
	}
	if number < 0 {
		return nil, fmt.Errorf("chromosome %d: %w: negative number", number, ErrInvalidComparer)
	}
	return &Comparer{number: number, c1: c1, c2: c2}, nil
}

func (c *Comparer) Compare() Comparison {
	a, b := stripLeading(c.c1), stripLeading(c.c2)
	cmp := Comparison{Chromosome: c.number, Leading1: a.pos, Leading2: b.pos}

	var ts []edit.Transformation
	at := a.pos // in the first sequence, as edited so far
	for !a.s.AtEnd() && !b.s.AtEnd() {
		s1, s2 := a.next(), b.next()
		for _, t := range edit.Compare(s1, s2) {
			t.Index += at
			ts = append(ts, t)
		}
		at += len(s2)
	}
	switch {
	case a.s.AtEnd() && !b.s.AtEnd():
		if rest := b.drain(); rest != "" {
			ts = append(ts, edit.Transformation{Index: at, Kind: edit.Insertion, Text: rest})
		}
	case b.s.AtEnd() && !a.s.AtEnd():
		if rest := a.drain(); rest != "" {
			ts = append(ts, edit.Transformation{Index: at, Kind: edit.Deletion, Text: rest})
		}
	}

	cmp.Transformations = edit.Merge(Splice(ts))
	cmp.Trailing1 = a.trailingOr(c.c1.Size() * base.PerByte)
	cmp.Trailing2 = b.trailingOr(c.c2.Size() * base.PerByte)
	return cmp
}

// Splice drops each adjacent insertion/deletion pair, in either order, that
// shares index and text. Such pairs appear where a chunk seam splits an
// edit the two chunks see from opposite sides.
func Splice(ts []edit.Transformation) []edit.Transformation {
	out := append([]edit.Transformation(nil), ts...)
	for i := 0; i+1 < len(out); {
		if cancels(out[i], out[i+1]) {
			out = append(out[:i], out[i+2:]...)
			continue
		}
		i++
	}
	return out
}

func cancels(a, b edit.Transformation) bool {
	if a.Index != b.Index || a.Text != b.Text {
		return false
	}
	return (a.Kind == edit.Insertion && b.Kind == edit.Deletion) ||
		(a.Kind == edit.Deletion && b.Kind == edit.Insertion)
}

// side follows one stream through a comparison.
type side struct {
	s        *stream.Stream
	pos      int // letters of the sequence consumed so far
	skip     int // letters to drop from the next read
	trailing int // start of the trailing region, -1 until found
}

// stripLeading reads past the leading telomere region of s and leaves the
// stream at the byte holding the first letter after it.
func stripLeading(s *stream.Stream) *side {
	chars := base.Decode(s.Read())
	read := len(chars)
	rest, more := skipRepeats(chars, leadingFragment(chars))
	for more {
		chunk := s.Read()
		if len(chunk) == 0 {
			break
		}
		chars = base.Decode(chunk)
		read += len(chars)
		rest, more = skipRepeats(rest+chars, 0)
	}
	end := read - len(rest)
	s.Seek(end / base.PerByte)
	return &side{s: s, pos: end, skip: end % base.PerByte, trailing: -1}
}

// next reads and decodes one chunk, cutting it at the trailing region.
func (sd *side) next() string {
	chars := base.Decode(sd.s.Read())
	if sd.skip > 0 {
		chars = chars[min(sd.skip, len(chars)):]
		sd.skip = 0
	}
	if at := trailingStart(chars); at >= 0 {
		sd.trailing = sd.pos + at
		chars = chars[:at]
		sd.s.AdvanceToEnd()
	}
	sd.pos += len(chars)
	return chars
}

func (sd *side) drain() string {
	var sb strings.Builder
	for !sd.s.AtEnd() {
		sb.WriteString(sd.next())
	}
	return sb.String()
}

func (sd *side) trailingOr(length int) int {
	if sd.trailing < 0 {
		return length
	}
	return sd.trailing
}
