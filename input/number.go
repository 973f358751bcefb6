package input

import (
	"encoding/json"
	"math/big"
)

// parseRat decodes a JSON number literal into an exact rational.
// Integer, decimal and exponent literals all decode exactly through
// big.Rat.SetString; a literal SetString does not accept falls back
// through float64, which is the only case where decoding can lose
// precision.
func parseRat(n json.Number) (*big.Rat, error) {
	r, ok := new(big.Rat).SetString(n.String())
	if ok {
		return r, nil
	}
	f, err := n.Float64()
	if err != nil {
		return nil, ErrInvalidNumber
	}
	r = new(big.Rat).SetFloat64(f)
	if r == nil {
		return nil, ErrInvalidNumber
	}
	return r, nil
}
