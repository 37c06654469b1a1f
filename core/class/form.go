package class

import (
	"context"

	"github.com/pkg/errors"

	"github.com/meucampus/planner/core"
	"github.com/meucampus/planner/core/subject"
	"github.com/meucampus/planner/core/teacher"
)

const (
	invalidSubjectText = "disciplina inválida"
	invalidTeacherText = "professor inválido"
)

// Values holds the scheduling form's raw input. Both branches' time fields
// are kept, so toggling IsRecurring back and forth loses nothing; only the
// active branch is validated and serialized.
type Values struct {
	SubjectID   string `json:"subjectId" validate:"required"`
	TeacherID   string `json:"teacherId" validate:"required"`
	Room        string `json:"room" validate:"required"`
	IsRecurring bool   `json:"isRecurring"`

	// one-off branch, full date+times ("2006-01-02T15:04")
	Start string `json:"startTime"`
	End   string `json:"endTime"`

	// recurring branch
	Day Weekday `json:"dayOfWeek"`
	At  string  `json:"timeOfDay"` // "HH:MM"
}

// Slot resolves the active branch into the TimeSlot union.
func (v Values) Slot() (TimeSlot, error) {
	if v.IsRecurring {
		at, err := parseTimeOfDay(v.At)
		if err != nil {
			return nil, err
		}
		return Recurring{Day: v.Day, At: at}, nil
	}
	start, err := parseTimestamp(v.Start)
	if err != nil {
		return nil, err
	}
	end, err := parseTimestamp(v.End)
	if err != nil {
		return nil, err
	}
	return OneOff{Start: start, End: end}, nil
}

type (
	// Scheduler is the slice of the class service the form submits through.
	Scheduler interface {
		Schedule(ctx context.Context, sc ScheduleClass) (Class, error)
		Update(ctx context.Context, uc UpdateClass) (Class, error)
	}

	SubjectSource interface {
		All(ctx context.Context) ([]subject.Subject, error)
	}

	TeacherSource interface {
		All(ctx context.Context) ([]teacher.Teacher, error)
	}

	// Form produces a valid Class create/update payload from user input,
	// branching on the IsRecurring flag. It creates when no initial record
	// was supplied and updates otherwise.
	Form struct {
		subjects []subject.Subject
		teachers []teacher.Teacher
		initial  *Class
		vals     Values
	}
)

// Open fetches the two reference lists the form depends on and only then
// builds it; callers show a placeholder until Open returns.
func Open(ctx context.Context, subjects SubjectSource, teachers TeacherSource, initial *Class) (*Form, error) {
	subjs, err := subjects.All(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "loading subjects")
	}
	tchrs, err := teachers.All(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "loading teachers")
	}
	return NewForm(subjs, tchrs, initial), nil
}

func NewForm(subjects []subject.Subject, teachers []teacher.Teacher, initial *Class) *Form {
	f := &Form{subjects: subjects, teachers: teachers}
	f.SetInitial(initial)
	return f
}

// SetInitial re-initializes the form's values (not just its defaults) from
// the given record, so one open form instance can edit successive records.
func (f *Form) SetInitial(initial *Class) {
	f.initial = initial
	if initial != nil {
		f.vals = valuesFrom(*initial)
		return
	}
	f.Reset()
}

// Reset restores the form to its defaults.
func (f *Form) Reset() {
	f.vals = Values{}
}

func (f *Form) Values() Values { return f.vals }

func (f *Form) SetValues(vals Values) { f.vals = vals }

// SetRecurring switches between the one-off and recurring branches. The
// inactive branch's fields stay in place but are excluded from validation
// and from the outgoing payload.
func (f *Form) SetRecurring(recurring bool) {
	f.vals.IsRecurring = recurring
}

// Validate applies the submission rules synchronously; a non-nil result is a
// field-scoped *core.ValidationError and no network call may be made.
func (f *Form) Validate() error {
	flds := make([]core.FieldError, 0, 4)
	if err := core.CheckStruct(f.vals); err != nil {
		vErr, ok := err.(*core.ValidationError)
		if !ok {
			return err
		}
		flds = append(flds, vErr.Fields...)
	}
	if f.vals.SubjectID != "" && !f.hasSubject(f.vals.SubjectID) {
		flds = append(flds, core.FieldError{Field: "subjectId", Error: invalidSubjectText})
	}
	if f.vals.TeacherID != "" && !f.hasTeacher(f.vals.TeacherID) {
		flds = append(flds, core.FieldError{Field: "teacherId", Error: invalidTeacherText})
	}
	if len(flds) > 0 {
		return core.NewValidationError(errors.New("dados inválidos"), flds...)
	}
	return nil
}

// Submit validates and fires exactly one of schedule (create) or update.
// On success the form resets (create path only) and onDone is invoked; on
// failure the entered values are kept so the user can correct and resubmit.
func (f *Form) Submit(ctx context.Context, svc Scheduler, onDone func()) error {
	if err := f.Validate(); err != nil {
		return err
	}
	payload, err := f.Payload()
	if err != nil {
		return err
	}

	if f.initial != nil {
		if _, err := svc.Update(ctx, UpdateClass{ID: f.initial.ID, ScheduleClass: payload}); err != nil {
			return err
		}
	} else {
		if _, err := svc.Schedule(ctx, payload); err != nil {
			return err
		}
		f.Reset()
	}
	if onDone != nil {
		onDone()
	}
	return nil
}

// Payload normalizes the validated field set; recurring fields are present
// only when applicable and the inactive branch's fields are never carried
// over from a prior toggle.
func (f *Form) Payload() (ScheduleClass, error) {
	slot, err := f.vals.Slot()
	if err != nil {
		return ScheduleClass{}, err
	}
	return NewScheduleClass(f.vals.SubjectID, f.vals.TeacherID, f.vals.Room, slot), nil
}

func (f *Form) hasSubject(id string) bool {
	for _, subj := range f.subjects {
		if subj.ID == id {
			return true
		}
	}
	return false
}

func (f *Form) hasTeacher(id string) bool {
	for _, tchr := range f.teachers {
		if tchr.ID == id {
			return true
		}
	}
	return false
}

// valuesFrom maps an existing record into the appropriate branch's input
// shape: time-of-day projection when recurring, date+time otherwise.
func valuesFrom(c Class) Values {
	vals := Values{
		SubjectID:   c.SubjectID,
		TeacherID:   c.TeacherID,
		Room:        c.Room,
		IsRecurring: c.IsRecurring,
	}
	if c.IsRecurring {
		if c.DayOfWeek != nil {
			vals.Day = *c.DayOfWeek
		}
		vals.At = c.StartTime
		return vals
	}
	if t, err := parseTimestamp(c.StartTime); err == nil {
		vals.Start = t.Format(timestampLayout)
	}
	if t, err := parseTimestamp(c.EndTime); err == nil {
		vals.End = t.Format(timestampLayout)
	}
	return vals
}
