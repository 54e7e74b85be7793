package service

import (
	"testing"
	"time"
)

func TestImmunizationSchedule(t *testing.T) {
	dob := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	schedule := ImmunizationSchedule("p-1", dob)

	if len(schedule) != len(immunizationCalendar) {
		t.Fatalf("got %d doses, want %d", len(schedule), len(immunizationCalendar))
	}

	byVaccine := make(map[string]time.Time, len(schedule))
	for _, d := range schedule {
		if d.PatientID != "p-1" {
			t.Errorf("%s: patient = %q", d.Vaccine, d.PatientID)
		}
		byVaccine[d.Vaccine] = d.DueDate
	}

	cases := []struct {
		vaccine string
		days    int
	}{
		{"BCG", 0},
		{"HepB-0", 0},
		{"Penta-1", 42},
		{"OPV-2", 70},
		{"Penta-3", 98},
		{"MR-1", 270},
		{"DPT-Booster", 480},
	}
	for _, c := range cases {
		due, ok := byVaccine[c.vaccine]
		if !ok {
			t.Errorf("%s missing from schedule", c.vaccine)
			continue
		}
		want := dob.AddDate(0, 0, c.days)
		if !due.Equal(want) {
			t.Errorf("%s: due = %s, want %s", c.vaccine, due, want)
		}
	}

	// дозы идут в порядке неубывания срока
	for i := 1; i < len(schedule); i++ {
		if schedule[i].DueDate.Before(schedule[i-1].DueDate) {
			t.Errorf("dose %s due before previous %s", schedule[i].Vaccine, schedule[i-1].Vaccine)
		}
	}
}
