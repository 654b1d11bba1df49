// internal/output/text.go
package output

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// TSVHeader names the columns of the text format.
const TSVHeader = "chromosome\tname\tindex\tkind\ttext\ttext2"

// FormatRowsTSV returns one row per transformation, without newlines.
func FormatRowsTSV(l Labeled) []string {
	rows := make([]string, 0, len(l.Transformations))
	for _, t := range l.Transformations {
		rows = append(rows, strings.Join([]string{
			strconv.Itoa(l.Chromosome), l.Name,
			strconv.Itoa(t.Index), t.Kind.String(), t.Text, t.Text2,
		}, "\t"))
	}
	return rows
}

// WriteText writes list as TSV rows.
func WriteText(w io.Writer, list []Labeled, header bool) error {
	bw := bufio.NewWriter(w)
	if header {
		if _, err := fmt.Fprintln(bw, TSVHeader); err != nil {
			return err
		}
	}
	for _, l := range list {
		if err := writeRows(bw, l); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// StreamText writes rows as comparisons arrive on in, until it is closed.
// After a write error the rest of in is drained and discarded.
func StreamText(w io.Writer, in <-chan Labeled, header bool) error {
	bw := bufio.NewWriter(w)
	var err error
	if header {
		_, err = fmt.Fprintln(bw, TSVHeader)
	}
	for l := range in {
		if err == nil {
			err = writeRows(bw, l)
		}
	}
	if err != nil {
		return err
	}
	return bw.Flush()
}

func writeRows(w io.Writer, l Labeled) error {
	for _, row := range FormatRowsTSV(l) {
		if _, err := io.WriteString(w, row+"\n"); err != nil {
			return err
		}
	}
	return nil
}
