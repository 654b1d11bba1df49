// Package fasta reads whole FASTA records, one per chromosome.
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
)

var errSeqBeforeHeader = errors.New("fasta: sequence data before first header")

type Record struct {
	ID  string
	Seq []byte // upper case, no whitespace
}

// maxLine bounds a single sequence line; unwrapped chromosomes can be long.
const maxLine = 256 << 20

// Scan reads records from r in file order and calls emit for each. It stops
// at the first error from emit or when ctx is done.
func Scan(ctx context.Context, r io.Reader, emit func(Record) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64<<10), maxLine)

	var (
		id     string
		seq    []byte
		opened bool
	)
	flush := func() error {
		if !opened {
			return nil
		}
		return emit(Record{ID: id, Seq: seq})
	}

	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 || line[0] == ';' {
			continue
		}
		if line[0] == '>' {
			if err := flush(); err != nil {
				return err
			}
			id, seq, opened = headerID(line[1:]), nil, true
			continue
		}
		if !opened {
			return errSeqBeforeHeader
		}
		seq = append(seq, bytes.ToUpper(stripSpace(line))...)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("fasta scan: %w", err)
	}
	return flush()
}

// LoadRecords reads every record of the file at path (see Open).
func LoadRecords(ctx context.Context, path string) ([]Record, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	var recs []Record
	err = Scan(ctx, rc, func(r Record) error {
		recs = append(recs, r)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return recs, nil
}

func headerID(hdr []byte) string {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i])
	}
	return string(hdr)
}

func stripSpace(b []byte) []byte {
	if bytes.IndexAny(b, " \t\r") < 0 {
		return b
	}
	return bytes.Join(bytes.Fields(b), nil)
}
