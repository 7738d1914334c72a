package models

import (
	"encoding/json"
	"testing"
	"time"
)

type tsWrapper struct{ t time.Time }

func (w tsWrapper) ToDate() time.Time { return w.t }

func TestNormalizeDateEquivalentShapes(t *testing.T) {
	instant := time.Date(2025, time.March, 5, 10, 30, 0, 0, time.UTC)

	shapes := map[string]any{
		"time.Time":      instant,
		"pointer":        &instant,
		"ToDate wrapper": tsWrapper{t: instant},
		"epoch millis":   instant.UnixMilli(),
		"float millis":   float64(instant.UnixMilli()),
		"RFC3339 string": instant.Format(time.RFC3339),
		"seconds map":    map[string]any{"seconds": float64(instant.Unix()), "nanoseconds": float64(0)},
	}

	for name, shape := range shapes {
		got, ok := NormalizeDate(shape)
		if !ok {
			t.Errorf("%s: normalization failed", name)
			continue
		}
		if !got.Equal(instant) {
			t.Errorf("%s: got %v, want %v", name, got, instant)
		}
	}
}

func TestNormalizeDateCalendarString(t *testing.T) {
	got, ok := NormalizeDate("2025-03-05")
	if !ok {
		t.Fatal("calendar string should normalize")
	}
	want := time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestNormalizeDateInvalid(t *testing.T) {
	invalid := map[string]any{
		"nil":              nil,
		"garbage string":   "not-a-date",
		"zero time":        time.Time{},
		"nil pointer":      (*time.Time)(nil),
		"negative number":  int64(-5),
		"bool":             true,
		"empty map":        map[string]any{},
		"slice":            []string{"2025-03-05"},
	}
	for name, shape := range invalid {
		if _, ok := NormalizeDate(shape); ok {
			t.Errorf("%s: expected invalid sentinel", name)
		}
	}
}

func TestFlexTimeUnmarshalNeverErrors(t *testing.T) {
	payloads := []string{
		`{"date": "2025-03-05"}`,
		`{"date": 1741168200000}`,
		`{"date": {"seconds": 1741168200, "nanoseconds": 0}}`,
		`{"date": "complete nonsense"}`,
		`{"date": null}`,
		`{"date": true}`,
	}
	for _, payload := range payloads {
		var out struct {
			Date FlexTime `json:"date"`
		}
		if err := json.Unmarshal([]byte(payload), &out); err != nil {
			t.Errorf("payload %s: unmarshal returned error %v", payload, err)
		}
	}

	var valid struct {
		Date FlexTime `json:"date"`
	}
	if err := json.Unmarshal([]byte(`{"date": "2025-03-05"}`), &valid); err != nil || !valid.Date.Valid() {
		t.Errorf("valid date payload should produce a valid FlexTime, err=%v valid=%v", err, valid.Date.Valid())
	}

	var bad struct {
		Date FlexTime `json:"date"`
	}
	if err := json.Unmarshal([]byte(`{"date": "nonsense"}`), &bad); err != nil || bad.Date.Valid() {
		t.Errorf("unparseable date should leave the invalid sentinel, err=%v valid=%v", err, bad.Date.Valid())
	}
}

func TestFlexTimeMarshal(t *testing.T) {
	valid := NewFlexTime(time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC))
	b, err := json.Marshal(valid)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"2025-03-05T00:00:00Z"` {
		t.Errorf("marshal = %s", b)
	}

	var invalid FlexTime
	b, err = json.Marshal(invalid)
	if err != nil {
		t.Fatalf("marshal invalid: %v", err)
	}
	if string(b) != "null" {
		t.Errorf("invalid FlexTime should marshal to null, got %s", b)
	}
}
