package schedule

import (
	"reflect"
	"testing"
)

func TestGenerateDaySlots_FullDay(t *testing.T) {
	slots := GenerateDaySlots("09:00", "17:00", 60)

	want := []string{"09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00"}
	if !reflect.DeepEqual(slots, want) {
		t.Fatalf("expected %v, got %v", want, slots)
	}
}

func TestGenerateDaySlots_WindowSmallerThanSlot(t *testing.T) {
	if slots := GenerateDaySlots("09:00", "09:30", 60); len(slots) != 0 {
		t.Fatalf("expected no slots, got %v", slots)
	}
}

func TestGenerateDaySlots_EmptyWindow(t *testing.T) {
	if slots := GenerateDaySlots("09:00", "09:00", 60); len(slots) != 0 {
		t.Fatalf("expected no slots, got %v", slots)
	}
}

func TestGenerateDaySlots_TruncatesPartialSlot(t *testing.T) {
	slots := GenerateDaySlots("09:00", "10:30", 60)

	want := []string{"09:00"}
	if !reflect.DeepEqual(slots, want) {
		t.Fatalf("expected %v, got %v", want, slots)
	}
}

func TestGenerateDaySlots_InvalidInput(t *testing.T) {
	if slots := GenerateDaySlots("9am", "17:00", 60); slots != nil {
		t.Fatalf("expected nil for invalid start, got %v", slots)
	}
	if slots := GenerateDaySlots("09:00", "17:00", 0); slots != nil {
		t.Fatalf("expected nil for zero duration, got %v", slots)
	}
}

func TestDifference_PreservesOrder(t *testing.T) {
	generated := []string{"09:00", "10:00", "11:00", "12:00"}
	occupied := []string{"10:00", "12:00"}

	want := []string{"09:00", "11:00"}
	if got := Difference(generated, occupied); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestContains(t *testing.T) {
	slots := []string{"09:00", "10:00"}

	if !Contains(slots, "10:00") {
		t.Fatal("expected 10:00 to be contained")
	}
	if Contains(slots, "10:30") {
		t.Fatal("did not expect 10:30 to be contained")
	}
}
