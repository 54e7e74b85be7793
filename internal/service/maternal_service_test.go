package service

import (
	"testing"
	"time"
)

func TestComputeEDD(t *testing.T) {
	lmp := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	edd := ComputeEDD(lmp)
	want := time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)
	if !edd.Equal(want) {
		t.Fatalf("EDD = %s, want %s", edd, want)
	}
	if got := edd.Sub(lmp); got != 280*24*time.Hour {
		t.Fatalf("gestation = %s, want 280 days", got)
	}
}

func TestANCSchedule(t *testing.T) {
	lmp := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	checkups := ANCSchedule(lmp)
	if len(checkups) != 4 {
		t.Fatalf("got %d checkups, want 4", len(checkups))
	}
	wantWeeks := []int{12, 20, 28, 36}
	for i, c := range checkups {
		if c.Number != i+1 {
			t.Errorf("checkup %d: number = %d", i, c.Number)
		}
		want := lmp.AddDate(0, 0, wantWeeks[i]*7)
		if !c.DueDate.Equal(want) {
			t.Errorf("checkup %d: due = %s, want %s", i+1, c.DueDate, want)
		}
	}
	// все осмотры до предполагаемой даты родов
	edd := ComputeEDD(lmp)
	for _, c := range checkups {
		if !c.DueDate.Before(edd) {
			t.Errorf("checkup %d due after EDD", c.Number)
		}
	}
}
