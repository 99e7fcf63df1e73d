package services

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/spf13/cast"
)

// Amount is a decimal input that never carries NaN or Inf. Values that fail
// to parse are stored as 0.
type Amount float64

func (a Amount) Float() float64 {
	return float64(a)
}

// ParseAmount converts user or stored input into a finite float64.
// Strings may use a decimal comma. Anything unparsable yields 0.
func ParseAmount(v any) float64 {
	switch t := v.(type) {
	case bool:
		return 0
	case string:
		t = strings.TrimSpace(t)
		if t == "" {
			return 0
		}
		v = strings.ReplaceAll(t, ",", ".")
	}
	f, err := cast.ToFloat64E(v)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		*a = 0
		return nil
	}
	*a = Amount(ParseAmount(raw))
	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	f := float64(a)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		f = 0
	}
	return json.Marshal(f)
}
