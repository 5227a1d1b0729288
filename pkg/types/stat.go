package types

import "encoding/json"

// MarshalJSON encodes an unavailable statistic as null so consumers
// cannot mistake it for a real zero.
func (s Stat) MarshalJSON() ([]byte, error) {
	if !s.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(s.Value)
}

// UnmarshalJSON accepts null as unavailable and a number as a value.
func (s *Stat) UnmarshalJSON(payload []byte) error {
	if string(payload) == "null" {
		*s = Unavailable
		return nil
	}
	var v float64
	if err := json.Unmarshal(payload, &v); err != nil {
		return err
	}
	*s = StatOf(v)
	return nil
}
