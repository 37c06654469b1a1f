package class

import (
	"time"

	"github.com/pkg/errors"

	"github.com/meucampus/planner/core/subject"
	"github.com/meucampus/planner/core/teacher"
)

// Weekday tags a weekly recurring class; numbering follows the API (1 = Monday).
type Weekday int

const (
	Monday Weekday = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = map[Weekday]string{
	Monday:    "Segunda-feira",
	Tuesday:   "Terça-feira",
	Wednesday: "Quarta-feira",
	Thursday:  "Quinta-feira",
	Friday:    "Sexta-feira",
	Saturday:  "Sábado",
	Sunday:    "Domingo",
}

func (d Weekday) Valid() bool {
	return d >= Monday && d <= Sunday
}

func (d Weekday) String() string {
	if name, ok := weekdayNames[d]; ok {
		return name
	}
	return "?"
}

const (
	// timestampLayout is the form's full date+time input shape (one-off branch).
	timestampLayout = "2006-01-02T15:04"
	// timeOfDayLayout is the form's time-of-day input shape (recurring branch).
	timeOfDayLayout = "15:04"
)

// Class is the wire model. For a one-off class StartTime/EndTime are full
// timestamps and DayOfWeek is absent; for a recurring class StartTime is a
// time of day, DayOfWeek is set and EndTime is absent.
type Class struct {
	ID          string           `json:"id"`
	SubjectID   string           `json:"subjectId"`
	TeacherID   string           `json:"teacherId"`
	Room        string           `json:"room"`
	IsRecurring bool             `json:"isRecurring"`
	StartTime   string           `json:"startTime,omitempty"`
	EndTime     string           `json:"endTime,omitempty"`
	DayOfWeek   *Weekday         `json:"dayOfWeek,omitempty"`
	Subject     *subject.Subject `json:"subject,omitempty"`
	Teacher     *teacher.Teacher `json:"teacher,omitempty"`
}

// Slot projects the flat wire fields into the TimeSlot union.
func (c Class) Slot() (TimeSlot, error) {
	if c.IsRecurring {
		var day Weekday
		if c.DayOfWeek != nil {
			day = *c.DayOfWeek
		}
		if !day.Valid() {
			return nil, errors.Errorf("class %s: invalid day of week %d", c.ID, day)
		}
		at, err := parseTimeOfDay(c.StartTime)
		if err != nil {
			return nil, errors.Wrapf(err, "class %s", c.ID)
		}
		return Recurring{Day: day, At: at}, nil
	}

	start, err := parseTimestamp(c.StartTime)
	if err != nil {
		return nil, errors.Wrapf(err, "class %s", c.ID)
	}
	end, err := parseTimestamp(c.EndTime)
	if err != nil {
		return nil, errors.Wrapf(err, "class %s", c.ID)
	}
	return OneOff{Start: start, End: end}, nil
}

// TimeSlot is when a class happens: exactly one of OneOff or Recurring.
// Each variant serializes only its own branch's wire fields, so a payload
// can never carry stale fields from the other branch.
type TimeSlot interface {
	apply(p *ScheduleClass)
}

// OneOff is a class held once, over a concrete time window on a specific date.
type OneOff struct {
	Start time.Time
	End   time.Time
}

// Recurring is a class repeating weekly on Day at time of day At ("HH:MM").
// No end date is stored; the server interprets the rule.
type Recurring struct {
	Day Weekday
	At  string
}

func (s OneOff) apply(p *ScheduleClass) {
	start := s.Start.UTC().Format(time.RFC3339)
	p.StartTime = start
	p.EndTime = s.End.UTC().Format(time.RFC3339)
	p.Date = start
}

func (s Recurring) apply(p *ScheduleClass) {
	day := s.Day
	p.DayOfWeek = &day
	p.StartTime = s.At
}

// ScheduleClass is the create payload: the validated field set with the
// active branch's time fields applied by a TimeSlot.
type ScheduleClass struct {
	SubjectID   string   `json:"subjectId"`
	TeacherID   string   `json:"teacherId"`
	Room        string   `json:"room"`
	IsRecurring bool     `json:"isRecurring"`
	StartTime   string   `json:"startTime,omitempty"`
	EndTime     string   `json:"endTime,omitempty"`
	Date        string   `json:"date,omitempty"`
	DayOfWeek   *Weekday `json:"dayOfWeek,omitempty"`
}

// NewScheduleClass builds a create payload with slot's branch applied.
func NewScheduleClass(subjectID, teacherID, room string, slot TimeSlot) ScheduleClass {
	p := ScheduleClass{
		SubjectID: subjectID,
		TeacherID: teacherID,
		Room:      room,
	}
	if _, ok := slot.(Recurring); ok {
		p.IsRecurring = true
	}
	slot.apply(&p)
	return p
}

// UpdateClass is the update payload; same shape as ScheduleClass, keyed by id.
type UpdateClass struct {
	ID string `json:"id"`
	ScheduleClass
}

func parseTimestamp(v string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, timestampLayout, "2006-01-02T15:04:05"} {
		if t, err := time.ParseInLocation(layout, v, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.Errorf("invalid timestamp %q", v)
}

func parseTimeOfDay(v string) (string, error) {
	if _, err := time.Parse(timeOfDayLayout, v); err != nil {
		return "", errors.Errorf("invalid time of day %q", v)
	}
	return v, nil
}
