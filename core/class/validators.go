package class

import (
	"github.com/go-playground/validator/v10"

	"github.com/meucampus/planner/core"
)

var (
	badTimeTag  = "timeformat"
	badTimeText = "data ou horário inválido"
)

func init() {
	core.Validate.RegisterStructValidation(valuesStructValidation, Values{})
	core.RegisterCustomTranslation(badTimeTag, badTimeText)
}

// valuesStructValidation checks the branch selected by IsRecurring; the
// inactive branch's fields are ignored entirely.
func valuesStructValidation(sl validator.StructLevel) {
	vals := sl.Current().Interface().(Values)

	if vals.IsRecurring {
		if !vals.Day.Valid() {
			sl.ReportError(vals.Day, "dayOfWeek", "Day", "required", "")
		}
		if vals.At == "" {
			sl.ReportError(vals.At, "startTime", "At", "required", "")
		} else if _, err := parseTimeOfDay(vals.At); err != nil {
			sl.ReportError(vals.At, "startTime", "At", badTimeTag, "")
		}
		return
	}

	if vals.Start == "" {
		sl.ReportError(vals.Start, "startTime", "Start", "required", "")
	} else if _, err := parseTimestamp(vals.Start); err != nil {
		sl.ReportError(vals.Start, "startTime", "Start", badTimeTag, "")
	}
	if vals.End == "" {
		sl.ReportError(vals.End, "endTime", "End", "required", "")
	} else if _, err := parseTimestamp(vals.End); err != nil {
		sl.ReportError(vals.End, "endTime", "End", badTimeTag, "")
	}
	// start < end is deliberately not checked: the server's behavior for an
	// inverted window is unconfirmed
}
