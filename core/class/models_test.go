package class

import (
	"encoding/json"
	"testing"
	"time"
)

func TestWeekday(t *testing.T) {
	tests := []struct {
		day       Weekday
		wantValid bool
		wantName  string
	}{
		{Monday, true, "Segunda-feira"},
		{Wednesday, true, "Quarta-feira"},
		{Sunday, true, "Domingo"},
		{Weekday(0), false, "?"},
		{Weekday(8), false, "?"},
	}
	for _, tt := range tests {
		if got := tt.day.Valid(); got != tt.wantValid {
			t.Errorf("Weekday(%d).Valid() = %v, want %v", tt.day, got, tt.wantValid)
		}
		if got := tt.day.String(); got != tt.wantName {
			t.Errorf("Weekday(%d).String() = %q, want %q", tt.day, got, tt.wantName)
		}
	}
}

func TestClassSlot(t *testing.T) {
	day := Friday
	tests := []struct {
		name    string
		cls     Class
		want    TimeSlot
		wantErr bool
	}{
		{
			name: "recurring",
			cls:  Class{ID: "c1", IsRecurring: true, DayOfWeek: &day, StartTime: "08:00"},
			want: Recurring{Day: Friday, At: "08:00"},
		},
		{
			name:    "recurring without day",
			cls:     Class{ID: "c2", IsRecurring: true, StartTime: "08:00"},
			wantErr: true,
		},
		{
			name:    "recurring with full timestamp",
			cls:     Class{ID: "c3", IsRecurring: true, DayOfWeek: &day, StartTime: "2026-03-10T08:00:00Z"},
			wantErr: true,
		},
		{
			name: "one-off",
			cls:  Class{ID: "c4", StartTime: "2026-03-10T08:00:00Z", EndTime: "2026-03-10T10:00:00Z"},
			want: OneOff{
				Start: time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC),
				End:   time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC),
			},
		},
		{
			name:    "one-off missing end",
			cls:     Class{ID: "c5", StartTime: "2026-03-10T08:00:00Z"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slot, err := tt.cls.Slot()
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Slot() = %v, want error", slot)
				}
				return
			}
			if err != nil {
				t.Fatalf("Slot() error = %v", err)
			}
			switch want := tt.want.(type) {
			case Recurring:
				if slot != want {
					t.Errorf("Slot() = %v, want %v", slot, want)
				}
			case OneOff:
				got, ok := slot.(OneOff)
				if !ok {
					t.Fatalf("Slot() = %T, want OneOff", slot)
				}
				if !got.Start.Equal(want.Start) || !got.End.Equal(want.End) {
					t.Errorf("Slot() = %+v, want %+v", got, want)
				}
			}
		})
	}
}

// Each branch's payload serializes only its own fields; the other branch's
// keys must not appear at all, not even as empty strings.
func TestScheduleClassJSON(t *testing.T) {
	oneOff := NewScheduleClass("sub-1", "tch-1", "B204", OneOff{
		Start: time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC),
	})
	raw, err := json.Marshal(oneOff)
	if err != nil {
		t.Fatal(err)
	}
	var keys map[string]interface{}
	if err := json.Unmarshal(raw, &keys); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"subjectId", "teacherId", "room", "startTime", "endTime", "date"} {
		if _, ok := keys[key]; !ok {
			t.Errorf("one-off payload missing %q: %s", key, raw)
		}
	}
	if _, ok := keys["dayOfWeek"]; ok {
		t.Errorf("one-off payload carries dayOfWeek: %s", raw)
	}
	if keys["isRecurring"] != false {
		t.Errorf("one-off payload isRecurring = %v, want false", keys["isRecurring"])
	}

	recurring := NewScheduleClass("sub-2", "tch-2", "A101", Recurring{Day: Wednesday, At: "14:30"})
	raw, err = json.Marshal(recurring)
	if err != nil {
		t.Fatal(err)
	}
	keys = nil
	if err := json.Unmarshal(raw, &keys); err != nil {
		t.Fatal(err)
	}
	if keys["dayOfWeek"] != float64(Wednesday) || keys["startTime"] != "14:30" {
		t.Errorf("recurring payload = %s", raw)
	}
	for _, key := range []string{"endTime", "date"} {
		if _, ok := keys[key]; ok {
			t.Errorf("recurring payload carries %q: %s", key, raw)
		}
	}
	if keys["isRecurring"] != true {
		t.Errorf("recurring payload isRecurring = %v, want true", keys["isRecurring"])
	}
}
