// core/edit/compare.go
package edit

// Compare returns the script turning s1 into s2.
func Compare(s1, s2 string) []Transformation {
	return Revise(Collect(s1, s2))
}

// Collect backtracks the Levenshtein table of s1 and s2 and returns the
// edits in discovery order, last position first. Indices are local to s1
// and not yet shifted for earlier edits; see Revise.
func Collect(s1, s2 string) []Transformation {
	switch {
	case s1 == "" && s2 == "":
		return nil
	case s1 == "":
		return []Transformation{{Index: 0, Kind: Insertion, Text: s2}}
	case s2 == "":
		return []Transformation{{Index: 0, Kind: Deletion, Text: s1}}
	}

	t := newTable(s1, s2)
	var out []Transformation
	i, j := len(s1), len(s2)
	for i > 1 || j > 1 {
		switch {
		case i > 1 && j > 1:
			cur, ul, up, left := t.at(i, j), t.at(i-1, j-1), t.at(i-1, j), t.at(i, j-1)
			switch {
			case ul <= up && ul <= left:
				if ul < cur {
					out = append(out, Transformation{Index: i - 1, Kind: Substitution, Text: s1[i-1 : i], Text2: s2[j-1 : j]})
				}
				i--
				j--
			case up < left:
				out = append(out, Transformation{Index: i - 1, Kind: Deletion, Text: s1[i-1 : i]})
				i--
			default:
				out = append(out, Transformation{Index: i, Kind: Insertion, Text: s2[j-1 : j]})
				j--
			}
		case i > 1:
			// First column: everything above the match with s2[0] goes.
			if s1[i-1] == s2[0] {
				out = append(out, Transformation{Index: 0, Kind: Deletion, Text: s1[:i-1]})
				i = 0
			} else {
				out = append(out, Transformation{Index: i - 1, Kind: Deletion, Text: s1[i-1 : i]})
				i--
			}
		default:
			if s2[j-1] == s1[0] {
				out = append(out, Transformation{Index: 0, Kind: Insertion, Text: s2[:j-1]})
				j = 0
			} else {
				out = append(out, Transformation{Index: 1, Kind: Insertion, Text: s2[j-1 : j]})
				j--
			}
		}
	}
	if i == 1 && j == 1 && t.at(1, 1) > 0 {
		out = append(out, Transformation{Index: 0, Kind: Substitution, Text: s1[:1], Text2: s2[:1]})
	}
	return out
}

// Revise turns Collect output into an applyable script: it restores
// left-to-right order, shifts each index by the net length change of the
// edits before it and merges adjacent runs.
func Revise(ts []Transformation) []Transformation {
	if len(ts) == 0 {
		return nil
	}
	out := make([]Transformation, len(ts))
	for i, t := range ts {
		out[len(ts)-1-i] = t
	}
	shift := 0
	for i := range out {
		out[i].Index += shift
		switch out[i].Kind {
		case Insertion:
			shift += len(out[i].Text)
		case Deletion:
			shift -= len(out[i].Text)
		}
	}
	return Merge(out)
}

// Merge joins neighbouring edits of the same kind that touch: insertions
// and substitutions that continue where the previous one ends, deletions at
// the same index. The input is not modified.
func Merge(ts []Transformation) []Transformation {
	out := make([]Transformation, 0, len(ts))
	for _, t := range ts {
		if n := len(out); n > 0 && touches(out[n-1], t) {
			out[n-1].Text += t.Text
			out[n-1].Text2 += t.Text2
			continue
		}
		out = append(out, t)
	}
	return out
}

func touches(a, b Transformation) bool {
	if a.Kind != b.Kind {
		return false
	}
	if a.Kind == Deletion {
		return b.Index == a.Index
	}
	return b.Index == a.Index+len(a.Text)
}

// table is the (len(s1)+1) x (len(s2)+1) edit-distance matrix, row major.
type table struct {
	cells []int32
	width int
}

func newTable(s1, s2 string) table {
	w := len(s2) + 1
	t := table{cells: make([]int32, (len(s1)+1)*w), width: w}
	for j := 0; j < w; j++ {
		t.cells[j] = int32(j)
	}
	for i := 1; i <= len(s1); i++ {
		row := t.cells[i*w : (i+1)*w]
		prev := t.cells[(i-1)*w : i*w]
		row[0] = int32(i)
		for j := 1; j < w; j++ {
			d := prev[j-1]
			if s1[i-1] != s2[j-1] {
				d++
			}
			row[j] = min(row[j-1]+1, prev[j]+1, d)
		}
	}
	return t
}

func (t table) at(i, j int) int32 { return t.cells[i*t.width+j] }
