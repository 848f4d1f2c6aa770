// Package load defines the records sent when importing normalized locations
// into a downstream location store.
package load

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"vaccine-feed-ingest-schema/internal/validate"
	"vaccine-feed-ingest-schema/location"

	"github.com/zeebo/xxh3"
)

// Well-known match actions.
const (
	MatchActionExisting = "existing"
	MatchActionNew      = "new"
)

// ImportMatchAction tells the importer how to match a source location.
// ID names the existing location when Action is MatchActionExisting.
type ImportMatchAction struct {
	ID     string `json:"id,omitempty"`
	Action string `json:"action" validate:"required"`
}

func (m *ImportMatchAction) normalize() {
	m.ID = strings.TrimSpace(m.ID)
	m.Action = strings.TrimSpace(m.Action)
}

// Validate normalizes m and checks its fields.
func (m *ImportMatchAction) Validate() error {
	m.normalize()
	return validate.Struct("ImportMatchAction", m)
}

// ImportSourceLocation is one source location record to import.
type ImportSourceLocation struct {
	SourceUID   string                      `json:"source_uid" validate:"required"`
	SourceName  string                      `json:"source_name" validate:"required"`
	Name        string                      `json:"name,omitempty"`
	Latitude    *float64                    `json:"latitude,omitempty"`
	Longitude   *float64                    `json:"longitude,omitempty"`
	ImportJSON  location.NormalizedLocation `json:"import_json"`
	ContentHash string                      `json:"content_hash,omitempty"`
	Match       *ImportMatchAction          `json:"match,omitempty"`
}

func (s *ImportSourceLocation) normalize() {
	s.SourceUID = strings.TrimSpace(s.SourceUID)
	s.SourceName = strings.TrimSpace(s.SourceName)
	s.Name = strings.TrimSpace(s.Name)
	s.ContentHash = strings.TrimSpace(s.ContentHash)
	if s.Match != nil {
		s.Match.normalize()
	}
}

// Validate normalizes s, including the embedded location, and checks it.
func (s *ImportSourceLocation) Validate() error {
	s.normalize()
	s.ImportJSON.Normalize()
	return validate.Struct("ImportSourceLocation", s)
}

// NewImportSourceLocation validates a copy of loc and derives an import
// record from it. loc itself is left untouched.
func NewImportSourceLocation(loc location.NormalizedLocation) (*ImportSourceLocation, error) {
	loc, err := cloneLocation(loc)
	if err != nil {
		return nil, err
	}
	if err := loc.Validate(); err != nil {
		return nil, err
	}

	hash, err := ContentHash(loc)
	if err != nil {
		return nil, err
	}

	s := &ImportSourceLocation{
		SourceUID:   loc.ID,
		SourceName:  loc.Source.Source,
		Name:        loc.Name,
		ImportJSON:  loc,
		ContentHash: hash,
	}
	if ll := loc.Location; ll != nil {
		lat, lng := *ll.Latitude, *ll.Longitude
		s.Latitude, s.Longitude = &lat, &lng
	}
	return s, nil
}

// cloneLocation deep-copies loc through its JSON encoding, so that
// normalizing the copy cannot reach the caller's slices and pointers.
func cloneLocation(loc location.NormalizedLocation) (location.NormalizedLocation, error) {
	var out location.NormalizedLocation

	b, err := json.Marshal(loc)
	if err != nil {
		return out, fmt.Errorf("load: failed to encode location %q: %w", loc.ID, err)
	}
	if err := json.Unmarshal(b, &out); err != nil {
		return out, fmt.Errorf("load: failed to copy location %q: %w", loc.ID, err)
	}
	return out, nil
}

// ContentHash returns a hex xxh3-128 digest of loc's JSON encoding. The
// fetch timestamp is left out so rescraping an unchanged site yields the
// same hash.
func ContentHash(loc location.NormalizedLocation) (string, error) {
	loc.Source.FetchedAt = ""

	b, err := json.Marshal(loc)
	if err != nil {
		return "", fmt.Errorf("load: failed to encode location %q: %w", loc.ID, err)
	}

	sum := xxh3.Hash128(b).Bytes()
	return hex.EncodeToString(sum[:]), nil
}

// ParseImportSourceLocation decodes and validates an import record.
func ParseImportSourceLocation(data []byte) (*ImportSourceLocation, error) {
	var s ImportSourceLocation
	if err := location.Parse(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// ParseImportMatchAction decodes and validates a match action.
func ParseImportMatchAction(data []byte) (*ImportMatchAction, error) {
	var m ImportMatchAction
	if err := location.Parse(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}
