package stats

import (
	"encoding/json"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Float is a float64 that survives JSON encoding when it is not finite.
// Ratios are computed without zero guards, so +Inf and NaN are legitimate
// values; they are encoded as the strings "Infinity", "-Infinity" and "NaN".
type Float float64

func (f Float) MarshalJSON() ([]byte, error) {
	v := float64(f)
	switch {
	case math.IsNaN(v):
		return []byte(`"NaN"`), nil
	case math.IsInf(v, 1):
		return []byte(`"Infinity"`), nil
	case math.IsInf(v, -1):
		return []byte(`"-Infinity"`), nil
	}
	return json.Marshal(v)
}

func (f *Float) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		switch s {
		case "NaN":
			*f = Float(math.NaN())
		case "Infinity":
			*f = Float(math.Inf(1))
		case "-Infinity":
			*f = Float(math.Inf(-1))
		default:
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return err
			}
			*f = Float(v)
		}
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = Float(v)
	return nil
}

// Fixed formats v with the given number of decimals, spelling out the
// non-finite cases. Rounding is done on the exact binary value with halves
// going away from zero, so 0.0625 gives "0.063" and 1.005 gives "1.00".
// Negative zero prints as zero.
func Fixed(v float64, digits int) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}

	scaled := new(big.Float).SetPrec(fixedPrec).SetFloat64(math.Abs(v))
	pow := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(digits)), nil)
	scaled.Mul(scaled, new(big.Float).SetPrec(fixedPrec).SetInt(pow))

	n, _ := scaled.Int(nil)
	frac := new(big.Float).SetPrec(fixedPrec).Sub(scaled, new(big.Float).SetPrec(fixedPrec).SetInt(n))
	if frac.Cmp(half) >= 0 {
		n.Add(n, big.NewInt(1))
	}

	out := n.String()
	if digits > 0 {
		if len(out) <= digits {
			out = strings.Repeat("0", digits-len(out)+1) + out
		}
		out = out[:len(out)-digits] + "." + out[len(out)-digits:]
	}
	if v < 0 {
		out = "-" + out
	}
	return out
}

// fixedPrec holds any float64 times a small power of ten exactly.
const fixedPrec = 2048

var half = big.NewFloat(0.5)
