package plorth

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// NumberKind distinguishes the three representations a Number may hold.
type NumberKind uint8

const (
	NumInt NumberKind = iota
	NumFloat
	NumBig
)

// Number is plorth's tri-modal numeric value: a signed 64-bit integer, an
// IEEE-754 double, or an arbitrary-precision integer. Arithmetic widens
// per spec section 3: int+int overflow promotes to big int, any double
// operand promotes the result to double.
type Number struct {
	kind NumberKind
	i    int64
	f    float64
	big  *big.Int
}

func NewInt(n int64) *Number   { return &Number{kind: NumInt, i: n} }
func NewFloat(f float64) *Number { return &Number{kind: NumFloat, f: f} }

// NewBigInt normalizes n into an int64 Number when it fits, matching the
// original implementation's habit of demoting big ints back to machine
// ints once an operation brings them back into range.
func NewBigInt(n *big.Int) *Number {
	if n.IsInt64() {
		return NewInt(n.Int64())
	}
	return &Number{kind: NumBig, big: new(big.Int).Set(n)}
}

func (n *Number) NumberKind() NumberKind { return n.kind }

func (n *Number) Kind() Kind { return KindNumber }

func (n *Number) Equal(v Value) bool {
	o, ok := v.(*Number)
	if !ok {
		return false
	}
	if n.kind == NumFloat || o.kind == NumFloat {
		return n.AsFloat() == o.AsFloat()
	}
	return n.AsBigInt().Cmp(o.AsBigInt()) == 0
}

func (n *Number) String() string {
	switch n.kind {
	case NumInt:
		return strconv.FormatInt(n.i, 10)
	case NumBig:
		return n.big.String()
	default:
		return formatFloat(n.f)
	}
}

func (n *Number) Source() string { return n.String() }

func formatFloat(f float64) string {
	if math.IsInf(f, 1) {
		return "Infinity"
	}
	if math.IsInf(f, -1) {
		return "-Infinity"
	}
	if math.IsNaN(f) {
		return "NaN"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// AsInt truncates the number to an int64 (big ints wrap via Int64()).
func (n *Number) AsInt() int64 {
	switch n.kind {
	case NumInt:
		return n.i
	case NumBig:
		return n.big.Int64()
	default:
		return int64(n.f)
	}
}

// AsFloat widens the number to float64.
func (n *Number) AsFloat() float64 {
	switch n.kind {
	case NumInt:
		return float64(n.i)
	case NumBig:
		f := new(big.Float).SetInt(n.big)
		v, _ := f.Float64()
		return v
	default:
		return n.f
	}
}

// AsBigInt widens the number to *big.Int, truncating any float.
func (n *Number) AsBigInt() *big.Int {
	switch n.kind {
	case NumInt:
		return big.NewInt(n.i)
	case NumBig:
		return n.big
	default:
		bi, _ := big.NewFloat(n.f).Int(nil)
		return bi
	}
}

func numAdd(a, b *Number) *Number {
	if a.kind == NumFloat || b.kind == NumFloat {
		return NewFloat(a.AsFloat() + b.AsFloat())
	}
	if a.kind == NumInt && b.kind == NumInt {
		sum := a.i + b.i
		if (sum > a.i) == (b.i > 0) || b.i == 0 {
			return NewInt(sum)
		}
	}
	return NewBigInt(new(big.Int).Add(a.AsBigInt(), b.AsBigInt()))
}

func numSub(a, b *Number) *Number {
	if a.kind == NumFloat || b.kind == NumFloat {
		return NewFloat(a.AsFloat() - b.AsFloat())
	}
	if a.kind == NumInt && b.kind == NumInt {
		diff := a.i - b.i
		if (diff < a.i) == (b.i > 0) || b.i == 0 {
			return NewInt(diff)
		}
	}
	return NewBigInt(new(big.Int).Sub(a.AsBigInt(), b.AsBigInt()))
}

func numMul(a, b *Number) *Number {
	if a.kind == NumFloat || b.kind == NumFloat {
		return NewFloat(a.AsFloat() * b.AsFloat())
	}
	if a.kind == NumInt && b.kind == NumInt {
		if a.i == 0 || b.i == 0 {
			return NewInt(0)
		}
		prod := a.i * b.i
		if prod/b.i == a.i {
			return NewInt(prod)
		}
	}
	return NewBigInt(new(big.Int).Mul(a.AsBigInt(), b.AsBigInt()))
}

func numDiv(a, b *Number) (*Number, bool) {
	if a.kind == NumFloat || b.kind == NumFloat {
		return NewFloat(a.AsFloat() / b.AsFloat()), true
	}
	bb := b.AsBigInt()
	if bb.Sign() == 0 {
		return nil, false
	}
	ab := a.AsBigInt()
	q, r := new(big.Int).QuoRem(ab, bb, new(big.Int))
	if r.Sign() == 0 {
		return NewBigInt(q), true
	}
	return NewFloat(a.AsFloat() / b.AsFloat()), true
}

func numMod(a, b *Number) (*Number, bool) {
	if a.kind == NumFloat || b.kind == NumFloat {
		af, bf := a.AsFloat(), b.AsFloat()
		if bf == 0 {
			return nil, false
		}
		return NewFloat(math.Mod(af, bf)), true
	}
	bb := b.AsBigInt()
	if bb.Sign() == 0 {
		return nil, false
	}
	r := new(big.Int).Mod(a.AsBigInt(), bb)
	return NewBigInt(r), true
}

func numCompare(a, b *Number) int {
	if a.kind == NumFloat || b.kind == NumFloat {
		af, bf := a.AsFloat(), b.AsFloat()
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		default:
			return 0
		}
	}
	return a.AsBigInt().Cmp(b.AsBigInt())
}

// ParseNumber recognizes decimal, hexadecimal (0x), octal (0o), binary
// (0b) and scientific-notation numeric literals, per spec section 3. A
// leading sign is permitted. Returns ok=false (not an error) when text is
// not a number at all, so the parser can fall back to treating it as a
// word reference.
func ParseNumber(text string) (*Number, bool) {
	if text == "" {
		return nil, false
	}

	sign := ""
	rest := text
	if rest[0] == '+' || rest[0] == '-' {
		if rest[0] == '-' {
			sign = "-"
		}
		rest = rest[1:]
	}
	if rest == "" {
		return nil, false
	}

	if len(rest) > 2 && rest[0] == '0' && (rest[1] == 'x' || rest[1] == 'X') {
		return parseRadix(sign, rest[2:], 16)
	}
	if len(rest) > 2 && rest[0] == '0' && (rest[1] == 'o' || rest[1] == 'O') {
		return parseRadix(sign, rest[2:], 8)
	}
	if len(rest) > 2 && rest[0] == '0' && (rest[1] == 'b' || rest[1] == 'B') {
		return parseRadix(sign, rest[2:], 2)
	}

	if !looksNumeric(rest) {
		return nil, false
	}

	if strings.ContainsAny(rest, ".eE") {
		f, err := strconv.ParseFloat(sign+rest, 64)
		if err != nil {
			return nil, false
		}
		return NewFloat(f), true
	}

	if i, err := strconv.ParseInt(sign+rest, 10, 64); err == nil {
		return NewInt(i), true
	}
	bi, ok := new(big.Int).SetString(sign+rest, 10)
	if !ok {
		return nil, false
	}
	return NewBigInt(bi), true
}

func looksNumeric(s string) bool {
	sawDigit := false
	for i, r := range s {
		switch {
		case r >= '0' && r <= '9':
			sawDigit = true
		case r == '.' || r == 'e' || r == 'E':
		case (r == '+' || r == '-') && i > 0 && (s[i-1] == 'e' || s[i-1] == 'E'):
		default:
			return false
		}
	}
	return sawDigit
}

func parseRadix(sign, digits string, base int) (*Number, bool) {
	if digits == "" {
		return nil, false
	}
	bi, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return nil, false
	}
	if sign == "-" {
		bi.Neg(bi)
	}
	return NewBigInt(bi), true
}
