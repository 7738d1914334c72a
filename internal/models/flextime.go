package models

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"time"
)

// dateLayouts are tried in order when normalizing a string date. The
// strict calendar form comes first so "2025-01-15" never falls through
// to a looser parse.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"01/02/2006",
}

// dateWrapper matches document-store timestamp wrappers that expose the
// underlying time through a ToDate accessor.
type dateWrapper interface {
	ToDate() time.Time
}

// NormalizeDate converts any of the stored date representations into a
// canonical UTC time. It is pure and total: malformed input yields
// (zero time, false), never a panic or an error. Every aggregation
// consumer treats the invalid sentinel as "exclude this record".
//
// Accepted shapes: time.Time and *time.Time, values with a
// ToDate() accessor, numeric milliseconds since epoch, a map carrying
// "seconds"/"nanoseconds" fields (serialized timestamp wrappers), and
// strings in a handful of calendar/ISO layouts.
func NormalizeDate(v any) (time.Time, bool) {
	switch d := v.(type) {
	case nil:
		return time.Time{}, false
	case time.Time:
		if d.IsZero() {
			return time.Time{}, false
		}
		return d.UTC(), true
	case *time.Time:
		if d == nil || d.IsZero() {
			return time.Time{}, false
		}
		return d.UTC(), true
	case dateWrapper:
		return NormalizeDate(d.ToDate())
	case int:
		return fromEpochMillis(int64(d))
	case int64:
		return fromEpochMillis(d)
	case float64:
		return fromEpochMillis(int64(d))
	case json.Number:
		f, err := d.Float64()
		if err != nil {
			return time.Time{}, false
		}
		return fromEpochMillis(int64(f))
	case map[string]any:
		return fromSecondsMap(d)
	case string:
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, d); err == nil {
				return t.UTC(), true
			}
		}
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}

func fromEpochMillis(ms int64) (time.Time, bool) {
	if ms <= 0 {
		return time.Time{}, false
	}
	return time.UnixMilli(ms).UTC(), true
}

// fromSecondsMap handles the JSON export shape of document-store
// timestamps: {"seconds": 1700000000, "nanoseconds": 0}.
func fromSecondsMap(m map[string]any) (time.Time, bool) {
	secs, ok := numberField(m, "seconds", "_seconds")
	if !ok {
		return time.Time{}, false
	}
	nanos, _ := numberField(m, "nanoseconds", "_nanoseconds")
	if secs <= 0 {
		return time.Time{}, false
	}
	return time.Unix(int64(secs), int64(nanos)).UTC(), true
}

func numberField(m map[string]any, names ...string) (float64, bool) {
	for _, name := range names {
		switch n := m[name].(type) {
		case float64:
			return n, true
		case int64:
			return float64(n), true
		case int:
			return float64(n), true
		case json.Number:
			if f, err := n.Float64(); err == nil {
				return f, true
			}
		}
	}
	return 0, false
}

// FlexTime is a time value deserialized through NormalizeDate. The zero
// value is the invalid sentinel; callers check Valid before using it.
type FlexTime struct {
	time.Time
}

// NewFlexTime wraps t as a valid FlexTime.
func NewFlexTime(t time.Time) FlexTime {
	return FlexTime{Time: t.UTC()}
}

// Valid reports whether the value carries a real date.
func (f FlexTime) Valid() bool {
	return !f.IsZero()
}

// UnmarshalJSON never returns an error: any shape NormalizeDate cannot
// handle leaves the value invalid rather than failing the whole payload.
func (f *FlexTime) UnmarshalJSON(data []byte) error {
	var raw any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		f.Time = time.Time{}
		return nil
	}
	t, ok := NormalizeDate(raw)
	if !ok {
		f.Time = time.Time{}
		return nil
	}
	f.Time = t
	return nil
}

func (f FlexTime) MarshalJSON() ([]byte, error) {
	if !f.Valid() {
		return []byte("null"), nil
	}
	return json.Marshal(f.Time.Format(time.RFC3339))
}

// Value stores invalid dates as SQL NULL.
func (f FlexTime) Value() (driver.Value, error) {
	if !f.Valid() {
		return nil, nil
	}
	return f.Time, nil
}

func (f *FlexTime) Scan(src any) error {
	t, ok := NormalizeDate(src)
	if !ok {
		f.Time = time.Time{}
		return nil
	}
	f.Time = t
	return nil
}
