package validation

import (
	"strings"
	"testing"
)

func TestParseInsertSighting_Valid(t *testing.T) {
	raw := []byte(`{
		"witnessName": "Jane Doe",
		"location": "Paris",
		"monumentSeen": "Eiffel Tower",
		"description": "saw it hovering",
		"coordinates": "48.8584, 2.2945"
	}`)

	payload, verr := ParseInsertSighting(raw)
	if verr != nil {
		t.Fatalf("unexpected validation error: %v", verr)
	}
	if payload.WitnessName != "Jane Doe" {
		t.Errorf("witnessName = %q", payload.WitnessName)
	}
	if payload.MonumentSeen != "Eiffel Tower" {
		t.Errorf("monumentSeen = %q", payload.MonumentSeen)
	}
	if payload.Coordinates == nil || *payload.Coordinates != "48.8584, 2.2945" {
		t.Errorf("coordinates = %v", payload.Coordinates)
	}
}

func TestParseInsertSighting_OptionalCoordinates(t *testing.T) {
	raw := []byte(`{"witnessName":"A","location":"B","monumentSeen":"C","description":"D"}`)
	payload, verr := ParseInsertSighting(raw)
	if verr != nil {
		t.Fatalf("unexpected validation error: %v", verr)
	}
	if payload.Coordinates != nil {
		t.Errorf("expected nil coordinates, got %q", *payload.Coordinates)
	}

	// A blank coordinates value collapses to "not provided".
	raw = []byte(`{"witnessName":"A","location":"B","monumentSeen":"C","description":"D","coordinates":"   "}`)
	payload, verr = ParseInsertSighting(raw)
	if verr != nil {
		t.Fatalf("unexpected validation error: %v", verr)
	}
	if payload.Coordinates != nil {
		t.Errorf("expected blank coordinates to become nil, got %q", *payload.Coordinates)
	}
}

func TestParseInsertSighting_MissingFieldsAllEnumerated(t *testing.T) {
	_, verr := ParseInsertSighting([]byte(`{"location":"Paris"}`))
	if verr == nil {
		t.Fatal("expected validation error")
	}
	if len(verr.Fields) != 3 {
		t.Fatalf("expected 3 field errors, got %d: %v", len(verr.Fields), verr)
	}
	msg := verr.Error()
	for _, field := range []string{"witnessName", "monumentSeen", "description"} {
		if !strings.Contains(msg, field) {
			t.Errorf("message %q missing field %s", msg, field)
		}
	}
	if strings.Contains(msg, "location ") {
		t.Errorf("message %q should not flag location", msg)
	}
}

func TestParseInsertSighting_EmptyAndBlankStringsRejected(t *testing.T) {
	cases := map[string]string{
		"empty":     `{"witnessName":"","location":"B","monumentSeen":"C","description":"D"}`,
		"blank":     `{"witnessName":"   ","location":"B","monumentSeen":"C","description":"D"}`,
		"only html": `{"witnessName":"<b></b>","location":"B","monumentSeen":"C","description":"D"}`,
	}
	for name, raw := range cases {
		if _, verr := ParseInsertSighting([]byte(raw)); verr == nil {
			t.Errorf("%s witnessName accepted, want rejection", name)
		}
	}
}

func TestParseInsertSighting_IgnoresIDAndTimestamp(t *testing.T) {
	raw := []byte(`{
		"id": 999,
		"timestamp": "1999-01-01T00:00:00Z",
		"witnessName": "A",
		"location": "B",
		"monumentSeen": "C",
		"description": "D"
	}`)
	payload, verr := ParseInsertSighting(raw)
	if verr != nil {
		t.Fatalf("unexpected validation error: %v", verr)
	}
	// The payload has no id/timestamp fields at all; the keys are dropped.
	if payload.WitnessName != "A" || payload.Description != "D" {
		t.Errorf("unexpected payload: %+v", payload)
	}
}

func TestParseInsertSighting_WrongType(t *testing.T) {
	_, verr := ParseInsertSighting([]byte(`{"witnessName":5,"location":"B","monumentSeen":"C","description":"D"}`))
	if verr == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(verr.Error(), "witnessName") {
		t.Errorf("message %q should name witnessName", verr.Error())
	}
}

func TestParseInsertSighting_MalformedJSON(t *testing.T) {
	_, verr := ParseInsertSighting([]byte(`{not json`))
	if verr == nil {
		t.Fatal("expected validation error")
	}
	if verr.Error() == "" {
		t.Error("expected a non-empty message")
	}
}

func TestParseInsertSighting_StripsHTML(t *testing.T) {
	raw := []byte(`{"witnessName":"<script>alert(1)</script>Jane","location":"B","monumentSeen":"C","description":"D"}`)
	payload, verr := ParseInsertSighting(raw)
	if verr != nil {
		t.Fatalf("unexpected validation error: %v", verr)
	}
	if strings.Contains(payload.WitnessName, "<script>") {
		t.Errorf("script tag survived: %q", payload.WitnessName)
	}
	if !strings.Contains(payload.WitnessName, "Jane") {
		t.Errorf("text content lost: %q", payload.WitnessName)
	}
}
