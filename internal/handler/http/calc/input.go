package calc

import (
	"bytes"
	"encoding/json"
	"errors"
)

// rawInput accepts a JSON string or number and keeps it as text.
type rawInput struct {
	Text string
	Set  bool
}

func (r *rawInput) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		if err := json.Unmarshal(b, &r.Text); err != nil {
			return err
		}
		r.Set = true
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return errors.New("input must be a string or a number")
	}
	r.Text = n.String()
	r.Set = true
	return nil
}
