package models

import "testing"

func TestPhaseConstants(t *testing.T) {
	if PhaseWork != "work" {
		t.Fatalf("PhaseWork = %q", PhaseWork)
	}
	if PhaseBreak != "break" {
		t.Fatalf("PhaseBreak = %q", PhaseBreak)
	}
}

func TestPhaseNextAlternates(t *testing.T) {
	if PhaseWork.Next() != PhaseBreak {
		t.Fatalf("work should be followed by break")
	}
	if PhaseBreak.Next() != PhaseWork {
		t.Fatalf("break should be followed by work")
	}
}

func TestPhaseLabelsAndValidity(t *testing.T) {
	if PhaseWork.Label() != "Work Time" || PhaseBreak.Label() != "Break Time" {
		t.Fatalf("unexpected labels %q / %q", PhaseWork.Label(), PhaseBreak.Label())
	}
	if !PhaseWork.Valid() || !PhaseBreak.Valid() {
		t.Fatalf("expected known phases to be valid")
	}
	if Phase("nap").Valid() || Phase("").Valid() {
		t.Fatalf("expected unknown phases to be invalid")
	}
}

func TestPhaseRecordZeroValue(t *testing.T) {
	var r PhaseRecord
	if r.ID != 0 || r.Phase != "" || r.Seconds != 0 || !r.CompletedAt.IsZero() {
		t.Fatalf("expected zero PhaseRecord, got %+v", r)
	}
}
