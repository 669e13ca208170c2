package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
)

// UnmarshalJSON accepts numeric ids and fractional values in the count
// fields, which some feeds emit. Counts are rounded to the nearest integer.
func (p *Property) UnmarshalJSON(data []byte) error {
	type plain Property
	aux := struct {
		ID        json.RawMessage `json:"id"`
		Beds      *float64        `json:"beds"`
		BathsFull *float64        `json:"baths_full"`
		BathsHalf *float64        `json:"baths_half"`
		YearBuilt *float64        `json:"year_built"`
		DaysOnMLS *float64        `json:"days_on_mls"`
		Stories   *float64        `json:"stories"`
		*plain
	}{plain: (*plain)(p)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	id, err := decodeID(aux.ID)
	if err != nil {
		return err
	}
	p.ID = id

	p.Beds = roundCount(aux.Beds)
	p.BathsFull = roundCount(aux.BathsFull)
	p.BathsHalf = roundCount(aux.BathsHalf)
	p.DaysOnMLS = roundCount(aux.DaysOnMLS)
	p.Stories = roundCount(aux.Stories)
	p.YearBuilt = nil
	if aux.YearBuilt != nil {
		year := roundCount(aux.YearBuilt)
		p.YearBuilt = &year
	}
	return nil
}

func decodeID(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", nil
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", err
		}
		return s, nil
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", fmt.Errorf("id must be a string or a number: %w", err)
	}
	return n.String(), nil
}

func roundCount(v *float64) int {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return 0
	}
	return int(math.Round(*v))
}
