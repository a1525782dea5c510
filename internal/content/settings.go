package content

import (
	"bytes"

	"github.com/tidwall/gjson"
)

// Settings is a schemaless singleton settings object (home, about, support,
// innovation, contact). Editors add keys freely, so values are read by gjson
// path with a caller-supplied default instead of being decoded into a struct.
type Settings struct {
	raw []byte
}

// NewSettings wraps raw JSON. Invalid or non-object JSON behaves as empty.
func NewSettings(raw []byte) Settings {
	if !gjson.ValidBytes(raw) {
		return Settings{}
	}
	return Settings{raw: bytes.Clone(raw)}
}

// UnmarshalJSON keeps the raw object for path lookups.
func (s *Settings) UnmarshalJSON(b []byte) error {
	*s = NewSettings(b)
	return nil
}

// MarshalJSON returns the raw object, or {} when empty.
func (s Settings) MarshalJSON() ([]byte, error) {
	if len(s.raw) == 0 {
		return []byte("{}"), nil
	}
	return s.raw, nil
}

// Empty reports whether no settings were loaded.
func (s Settings) Empty() bool {
	return !s.get("@this").IsObject()
}

func (s Settings) get(path string) gjson.Result {
	if len(s.raw) == 0 {
		return gjson.Result{}
	}
	return gjson.GetBytes(s.raw, path)
}

// String returns the string at path, or def when missing or blank.
func (s Settings) String(path, def string) string {
	r := s.get(path)
	if !r.Exists() || r.String() == "" {
		return def
	}
	return r.String()
}

// Bool returns the boolean at path, or def when missing.
func (s Settings) Bool(path string, def bool) bool {
	r := s.get(path)
	if !r.Exists() || r.Type == gjson.Null {
		return def
	}
	return r.Bool()
}

// Strings returns the string array at path, or def when missing or empty.
func (s Settings) Strings(path string, def []string) []string {
	r := s.get(path)
	if !r.IsArray() {
		return def
	}
	out := make([]string, 0, len(r.Array()))
	for _, v := range r.Array() {
		out = append(out, v.String())
	}
	if len(out) == 0 {
		return def
	}
	return out
}

// Objects returns each object in the array at path as its own Settings.
func (s Settings) Objects(path string) []Settings {
	r := s.get(path)
	if !r.IsArray() {
		return nil
	}
	var out []Settings
	for _, v := range r.Array() {
		if v.IsObject() {
			out = append(out, Settings{raw: []byte(v.Raw)})
		}
	}
	return out
}

// FacilitiesPage is the aggregate payload of the facilities page endpoint.
type FacilitiesPage struct {
	Settings       Settings         `json:"settings"`
	Pillars        []Pillar         `json:"pillars"`
	Modules        []FacilityModule `json:"modules"`
	TrustBadges    []Badge          `json:"trust_badges"`
	SuccessSignals []Badge          `json:"success_signals"`
}
