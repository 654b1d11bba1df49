// core/base/base.go
package base

// Base is a 2-bit nucleotide code.
type Base uint8

const (
	A Base = iota
	C
	G
	T
)

// PerByte is the number of bases packed into one byte.
const PerByte = 4

var letters = [4]byte{'A', 'C', 'G', 'T'}

// unpacked[b] holds the four letters packed into byte b, most-significant pair first.
var unpacked [256][PerByte]byte

func init() {
	for b := 0; b < 256; b++ {
		for i, x := range Unpack(byte(b)) {
			unpacked[b][i] = letters[x]
		}
	}
}

// ToChar returns the letter for b.
func ToChar(b Base) byte { return letters[b&3] }

// ToBase maps a nucleotide letter to its code. Anything that is not C, G or T
// (either case) maps to A.
func ToBase(ch byte) Base {
	switch ch {
	case 'C', 'c':
		return C
	case 'G', 'g':
		return G
	case 'T', 't':
		return T
	default:
		return A
	}
}

func (b Base) String() string { return string(ToChar(b)) }

// Pack stores four bases in one byte; b0 occupies the two highest bits.
func Pack(b0, b1, b2, b3 Base) byte {
	return byte(b0&3)<<6 | byte(b1&3)<<4 | byte(b2&3)<<2 | byte(b3&3)
}

// Unpack is the inverse of Pack.
func Unpack(b byte) [PerByte]Base {
	return [PerByte]Base{Base(b >> 6 & 3), Base(b >> 4 & 3), Base(b >> 2 & 3), Base(b & 3)}
}

// Decode expands packed bytes into letters, four per byte.
func Decode(packed []byte) string {
	if len(packed) == 0 {
		return ""
	}
	out := make([]byte, 0, len(packed)*PerByte)
	for _, b := range packed {
		out = append(out, unpacked[b][:]...)
	}
	return string(out)
}

// Encode packs seq, padding the final byte with A.
func Encode(seq string) []byte {
	return EncodeBytes([]byte(seq))
}

// EncodeBytes is Encode for a byte slice.
func EncodeBytes(seq []byte) []byte {
	out := make([]byte, (len(seq)+PerByte-1)/PerByte)
	for i, ch := range seq {
		out[i/PerByte] |= byte(ToBase(ch)) << (6 - 2*(i%PerByte))
	}
	return out
}

// PaddedLen is the number of letters Decode yields for a sequence of n letters.
func PaddedLen(n int) int {
	return (n + PerByte - 1) / PerByte * PerByte
}
