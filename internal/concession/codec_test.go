package concession_test

import (
	"errors"
	"testing"

	"github.com/WellVis/WV-Backend/internal/concession"
)

// TestEncode_NumericDirections verifies the documented scenario: digit
// directions from the raw tables are translated to letters and numeric
// fields are zero-padded.
func TestEncode_NumericDirections(t *testing.T) {
	code, err := concession.Encode("1", "15", "1", "2", "2", "1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if code != "0115N02WS" {
		t.Errorf("expected 0115N02WS, got %s", code)
	}
}

// TestEncode_LetterDirections verifies that already-translated directions
// encode identically.
func TestEncode_LetterDirections(t *testing.T) {
	code, err := concession.Encode("1", "15", "N", "2", "W", "S")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if code != "0115N02WS" {
		t.Errorf("expected 0115N02WS, got %s", code)
	}
}

// TestEncode_FloatishNumerics verifies that "1.0"-style values from the
// source tables parse as integers.
func TestEncode_FloatishNumerics(t *testing.T) {
	code, err := concession.Encode("1.0", "15.0", "N", "2.0", "W", "S")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if code != "0115N02WS" {
		t.Errorf("expected 0115N02WS, got %s", code)
	}
}

// TestEncode_BadNumeric verifies the EncodeError on a non-numeric field.
func TestEncode_BadNumeric(t *testing.T) {
	_, err := concession.Encode("abc", "15", "N", "2", "W", "S")
	var encErr *concession.EncodeError
	if !errors.As(err, &encErr) {
		t.Fatalf("expected EncodeError, got %v", err)
	}
	if encErr.Field != "section" {
		t.Errorf("expected failing field %q, got %q", "section", encErr.Field)
	}
}

// TestDecode_RoundTrip verifies decode(encode(parts)) == parts for a spread
// of valid parts.
func TestDecode_RoundTrip(t *testing.T) {
	cases := []concession.Parts{
		{Section: 1, Township: 15, TownshipDir: "N", Range: 2, RangeDir: "W", Baseline: "S"},
		{Section: 36, Township: 1, TownshipDir: "S", Range: 24, RangeDir: "E", Baseline: "U"},
		{Section: 9, Township: 9, TownshipDir: "N", Range: 9, RangeDir: "E", Baseline: "S"},
	}
	for _, want := range cases {
		code, err := concession.EncodeParts(want)
		if err != nil {
			t.Fatalf("encode %+v: %v", want, err)
		}
		got, err := concession.Decode(code)
		if err != nil {
			t.Fatalf("decode %s: %v", code, err)
		}
		if got != want {
			t.Errorf("round trip mismatch: %+v -> %s -> %+v", want, code, got)
		}
	}
}

// TestDecode_Malformed verifies that malformed codes are rejected rather
// than passed through.
func TestDecode_Malformed(t *testing.T) {
	bad := []string{
		"",
		"0115N02W",    // too short
		"0115N02WSX",  // too long
		"XX15N02WS",   // non-numeric section
		"0115X02WS",   // bad township direction
		"0115N02XS",   // bad range direction
		"0115N02WQ",   // bad baseline
		"0115011N02W", // prefix-sharing longer junk
	}
	for _, code := range bad {
		if _, err := concession.Decode(code); err == nil {
			t.Errorf("expected DecodeError for %q, got nil", code)
		}
	}
}

// TestHumanize verifies leading-zero stripping in labels.
func TestHumanize(t *testing.T) {
	got, err := concession.HumanizeCode("0115N02WS")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "1 15N 2W S" {
		t.Errorf("expected %q, got %q", "1 15N 2W S", got)
	}
}

// TestDirectionToNumber verifies the inverse translation used when querying
// the raw numeric columns.
func TestDirectionToNumber(t *testing.T) {
	if got := concession.DirectionToNumber("township", "N"); got != "1" {
		t.Errorf("township N: expected 1, got %s", got)
	}
	if got := concession.DirectionToNumber("rng", "W"); got != "2" {
		t.Errorf("rng W: expected 2, got %s", got)
	}
	if got := concession.DirectionToNumber("baseline", "U"); got != "2" {
		t.Errorf("baseline U: expected 2, got %s", got)
	}
}
