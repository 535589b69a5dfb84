package ai

import (
	"encoding/json"
	"fmt"
)

var _ interface {
	json.Marshaler
	json.Unmarshaler
} = &Weights{}

func (w *Weights) features() map[string]*float64 {
	return map[string]*float64{
		"Capture":   &w.Capture,
		"Side":      &w.Side,
		"Potential": &w.Potential,
	}
}

func (w *Weights) MarshalJSON() ([]byte, error) {
	h := make(map[string]float64)
	for k, v := range w.features() {
		if *v != 0 {
			h[k] = *v
		}
	}
	return json.Marshal(h)
}

func (w *Weights) UnmarshalJSON(bs []byte) error {
	h := make(map[string]float64)
	e := json.Unmarshal(bs, &h)
	if e != nil {
		return e
	}
	fs := w.features()
	for k, v := range h {
		f, ok := fs[k]
		if !ok {
			return fmt.Errorf("Unknown feature: %q", k)
		}
		*f = v
	}
	return nil
}
