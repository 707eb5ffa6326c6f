// Package concession encodes and decodes the compact 9-character location
// codes ("Conc" codes) that key every section-township-range record in the
// source database. Layout is SSTTDRRDB: zero-padded section, township +
// direction, range + direction, baseline.
package concession

import (
	"fmt"
	"strconv"
	"strings"
)

// Parts is the decoded form of a location code.
type Parts struct {
	Section     int    `json:"section"`
	Township    int    `json:"township"`
	TownshipDir string `json:"township_dir"` // N or S
	Range       int    `json:"range"`
	RangeDir    string `json:"range_dir"` // E or W
	Baseline    string `json:"baseline"`  // S or U
}

// EncodeError reports a field that could not be turned into a code.
type EncodeError struct {
	Field string
	Value string
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("concession: cannot encode %s %q", e.Field, e.Value)
}

// DecodeError reports a malformed location code. Malformed input is always
// rejected, never passed through.
type DecodeError struct {
	Code   string
	Reason string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("concession: cannot decode %q: %s", e.Code, e.Reason)
}

// The source tables store directions as digits; codes store them as letters.
var numberToDirection = map[string]map[string]string{
	"township": {"1": "N", "2": "S"},
	"rng":      {"1": "E", "2": "W"},
	"baseline": {"1": "S", "2": "U"},
}

var directionToNumber = map[string]map[string]string{
	"township": {"N": "1", "S": "2"},
	"rng":      {"E": "1", "W": "2"},
	"baseline": {"S": "1", "U": "2"},
}

// NormalizeDirection maps a raw direction value (digit or letter, any case)
// to its canonical letter for the given axis ("township", "rng" or
// "baseline"). Unknown values are returned empty.
func NormalizeDirection(axis, val string) string {
	v := strings.ToUpper(strings.TrimSpace(val))
	if mapped, ok := numberToDirection[axis][v]; ok {
		return mapped
	}
	if _, ok := directionToNumber[axis][v]; ok {
		return v
	}
	return ""
}

// DirectionToNumber maps a canonical direction letter back to the digit the
// source tables use. Unknown values pass through unchanged, matching how the
// raw tables are queried.
func DirectionToNumber(axis, val string) string {
	v := strings.ToUpper(strings.TrimSpace(val))
	if mapped, ok := directionToNumber[axis][v]; ok {
		return mapped
	}
	return val
}

// parseField accepts the integer-ish strings found in the raw tables
// ("1", "01", "1.0") and rejects everything else.
func parseField(name, val string) (int, error) {
	s := strings.TrimSpace(val)
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && f == float64(int(f)) {
		return int(f), nil
	}
	return 0, &EncodeError{Field: name, Value: val}
}

// Encode builds a location code from raw table values. Numeric fields are
// zero-padded to two digits; directions may arrive as digits or letters.
func Encode(section, township, townshipDir, rng, rangeDir, baseline string) (string, error) {
	sec, err := parseField("section", section)
	if err != nil {
		return "", err
	}
	twp, err := parseField("township", township)
	if err != nil {
		return "", err
	}
	rg, err := parseField("range", rng)
	if err != nil {
		return "", err
	}

	td := NormalizeDirection("township", townshipDir)
	if td == "" {
		return "", &EncodeError{Field: "township_dir", Value: townshipDir}
	}
	rd := NormalizeDirection("rng", rangeDir)
	if rd == "" {
		return "", &EncodeError{Field: "range_dir", Value: rangeDir}
	}
	bl := NormalizeDirection("baseline", baseline)
	if bl == "" {
		return "", &EncodeError{Field: "baseline", Value: baseline}
	}

	return fmt.Sprintf("%02d%02d%s%02d%s%s", sec, twp, td, rg, rd, bl), nil
}

// EncodeParts is Encode for already-typed parts.
func EncodeParts(p Parts) (string, error) {
	return Encode(
		strconv.Itoa(p.Section),
		strconv.Itoa(p.Township), p.TownshipDir,
		strconv.Itoa(p.Range), p.RangeDir,
		p.Baseline,
	)
}

// Decode parses the fixed SSTTDRRDB layout. Any deviation from the layout
// returns a DecodeError rather than a partial result.
func Decode(code string) (Parts, error) {
	if len(code) != 9 {
		return Parts{}, &DecodeError{Code: code, Reason: "must be 9 characters"}
	}

	sec, err := strconv.Atoi(code[0:2])
	if err != nil {
		return Parts{}, &DecodeError{Code: code, Reason: "section is not numeric"}
	}
	twp, err := strconv.Atoi(code[2:4])
	if err != nil {
		return Parts{}, &DecodeError{Code: code, Reason: "township is not numeric"}
	}
	td := string(code[4])
	if td != "N" && td != "S" {
		return Parts{}, &DecodeError{Code: code, Reason: "township direction must be N or S"}
	}
	rg, err := strconv.Atoi(code[5:7])
	if err != nil {
		return Parts{}, &DecodeError{Code: code, Reason: "range is not numeric"}
	}
	rd := string(code[7])
	if rd != "E" && rd != "W" {
		return Parts{}, &DecodeError{Code: code, Reason: "range direction must be E or W"}
	}
	bl := string(code[8])
	if bl != "S" && bl != "U" {
		return Parts{}, &DecodeError{Code: code, Reason: "baseline must be S or U"}
	}

	return Parts{
		Section:     sec,
		Township:    twp,
		TownshipDir: td,
		Range:       rg,
		RangeDir:    rd,
		Baseline:    bl,
	}, nil
}

// Humanize renders parts the way labels appear in the UI, with leading
// zeros stripped: "1 15N 2W S".
func Humanize(p Parts) string {
	return fmt.Sprintf("%d %d%s %d%s %s", p.Section, p.Township, p.TownshipDir, p.Range, p.RangeDir, p.Baseline)
}

// HumanizeCode decodes and renders in one step.
func HumanizeCode(code string) (string, error) {
	p, err := Decode(code)
	if err != nil {
		return "", err
	}
	return Humanize(p), nil
}
