package service

import (
	"reflect"
	"testing"
)

func TestNormalizeReminderDays(t *testing.T) {
	tests := []struct {
		name string
		in   []int
		want []int
	}{
		{name: "sorted descending", in: []int{1, 7, 3}, want: []int{7, 3, 1}},
		{name: "duplicates dropped", in: []int{3, 3, 7}, want: []int{7, 3}},
		{name: "non-positive dropped", in: []int{0, -2, 5}, want: []int{5}},
		{name: "empty", in: nil, want: []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeReminderDays(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("normalizeReminderDays(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestValidBillFrequency(t *testing.T) {
	for _, f := range []string{"weekly", "monthly", "quarterly", "yearly", "one-time"} {
		if !validBillFrequency(f) {
			t.Errorf("expected %q to be valid", f)
		}
	}
	if validBillFrequency("fortnightly") {
		t.Error("did not expect fortnightly to be valid")
	}
}
