package dateutil

import (
	"reflect"
	"testing"
)

func TestExpandRange_Inclusive(t *testing.T) {
	got, err := ExpandRange("2024-01-01", "2024-01-03")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"2024-01-01", "2024-01-02", "2024-01-03"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestExpandRange_SingleDay(t *testing.T) {
	got, err := ExpandRange("2024-06-15", "2024-06-15")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0] != "2024-06-15" {
		t.Fatalf("expected single date, got %v", got)
	}
}

func TestExpandRange_StartAfterEnd(t *testing.T) {
	if _, err := ExpandRange("2024-01-03", "2024-01-01"); err == nil {
		t.Fatal("expected error when start is after end")
	}
}

func TestExpandRange_MonthBoundary(t *testing.T) {
	got, err := ExpandRange("2024-02-28", "2024-03-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 2024 is a leap year
	want := []string{"2024-02-28", "2024-02-29", "2024-03-01"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, bad := range []string{"2024-13-01", "01-01-2024", "yesterday", ""} {
		if _, err := Parse(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}
