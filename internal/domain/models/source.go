package models

import (
	"strings"
)

// Source identifies one of the rate providers tracked by the service.
//
// The set is closed: values are only produced by ParseSource (or the
// constants below), so downstream code can switch over it exhaustively
// without normalizing strings again.
type Source uint8

const (
	// SourceNone is the "not available" sentinel used when no source has data.
	SourceNone Source = iota
	SourceMonex
	SourceSantander
	SourceDOF
)

var sourceNames = [...]string{
	SourceNone:      "N/A",
	SourceMonex:     "MONEX",
	SourceSantander: "Santander",
	SourceDOF:       "DOF",
}

// Sources returns every known source in enumeration order.
// Enumeration order breaks ties in the comparison and orders per-source output.
func Sources() []Source {
	return []Source{SourceMonex, SourceSantander, SourceDOF}
}

// String returns the display name (e.g. "MONEX", "Santander", "DOF").
func (s Source) String() string {
	if int(s) < len(sourceNames) {
		return sourceNames[s]
	}
	return sourceNames[SourceNone]
}

// Key returns the lowercase identifier used in storage filters and bucket fields.
func (s Source) Key() string {
	return strings.ToLower(s.String())
}

// MarshalText renders the display name in JSON payloads.
func (s Source) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// ParseSource validates a raw source name (trimmed, case-insensitive).
func ParseSource(raw string) (Source, error) {
	key := strings.ToLower(strings.TrimSpace(raw))
	for _, s := range Sources() {
		if s.Key() == key {
			return s, nil
		}
	}
	return SourceNone, NewValidationError(KindUnknownSource,
		"unknown source %q, valid sources: %s", raw, validSourceList())
}

// ParseSources validates a list of source filters. Every entry may itself be a
// comma separated list. Unknown names are all reported together and never
// silently dropped. Duplicates are collapsed; the result keeps enumeration order.
// An empty input means "no filter" and returns nil.
func ParseSources(raw []string) ([]Source, error) {
	seen := make(map[Source]bool)
	var invalid []string
	for _, entry := range raw {
		for _, part := range strings.Split(entry, ",") {
			if strings.TrimSpace(part) == "" {
				continue
			}
			s, err := ParseSource(part)
			if err != nil {
				invalid = append(invalid, strings.TrimSpace(part))
				continue
			}
			seen[s] = true
		}
	}
	if len(invalid) > 0 {
		return nil, NewValidationError(KindUnknownSource,
			"unknown sources: %s, valid sources: %s", strings.Join(invalid, ", "), validSourceList())
	}
	if len(seen) == 0 {
		return nil, nil
	}
	out := make([]Source, 0, len(seen))
	for _, s := range Sources() {
		if seen[s] {
			out = append(out, s)
		}
	}
	return out, nil
}

func validSourceList() string {
	names := make([]string, 0, len(Sources()))
	for _, s := range Sources() {
		names = append(names, s.Key())
	}
	return strings.Join(names, ", ")
}
