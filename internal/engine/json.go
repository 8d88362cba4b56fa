package engine

import (
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/carbonscope/carbonscope/internal/dqi"
)

// sourceEnvelope is the wire shape of a Source. The (category, method) pair
// discriminates which activity variant the data block decodes into.
type sourceEnvelope struct {
	ID         string          `json:"id"`
	FacilityID string          `json:"facilityId,omitempty"`
	Category   Category        `json:"category"`
	Method     Method          `json:"calculationMethod"`
	Data       json.RawMessage `json:"data"`
	Quality    *dqi.Indicator  `json:"quality,omitempty"`
}

// UnmarshalJSON decodes the envelope form, selecting the activity variant
// from the closed (category, method) dispatch table.
func (s *Source) UnmarshalJSON(b []byte) error {
	var env sourceEnvelope
	if err := json.Unmarshal(b, &env); err != nil {
		return fmt.Errorf("decoding emission source: %w", err)
	}
	if !env.Category.Valid() {
		return fmt.Errorf("decoding emission source %q: unknown category %q", env.ID, env.Category)
	}

	activity, ok := newActivity(env.Category, env.Method)
	if !ok {
		return fmt.Errorf("decoding emission source %q: method %q is not valid for category %q",
			env.ID, env.Method, env.Category)
	}
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, activity); err != nil {
			return fmt.Errorf("decoding emission source %q data: %w", env.ID, err)
		}
	}

	s.ID = env.ID
	s.FacilityID = env.FacilityID
	s.Category = env.Category
	s.Activity = activity
	s.Quality = env.Quality
	return nil
}

// MarshalJSON encodes the envelope form with the variant's canonical method
// name.
func (s Source) MarshalJSON() ([]byte, error) {
	env := sourceEnvelope{
		ID:         s.ID,
		FacilityID: s.FacilityID,
		Category:   s.Category,
		Quality:    s.Quality,
	}
	if s.Activity != nil {
		env.Method = s.Activity.Method()
		data, err := json.Marshal(s.Activity)
		if err != nil {
			return nil, fmt.Errorf("encoding emission source %q data: %w", s.ID, err)
		}
		env.Data = data
	}
	return json.Marshal(env)
}
