package task

import (
	"github.com/volatiletech/null/v8"

	"github.com/meucampus/planner/core/subject"
)

type Task struct {
	ID          string           `json:"id"`
	SubjectID   string           `json:"subjectId"`
	Title       string           `json:"title"`
	Description null.String      `json:"description,omitempty"`
	DueDate     string           `json:"dueDate"` // RFC 3339
	IsDelivered null.Bool        `json:"isDelivered,omitempty"`
	Subject     *subject.Subject `json:"subject,omitempty"`
}

// NewTask contains information needed to create a new Task.
type NewTask struct {
	SubjectID   string      `json:"subjectId" validate:"required"`
	Title       string      `json:"title" validate:"required"`
	Description null.String `json:"description,omitempty"`
	DueDate     string      `json:"dueDate" validate:"required"`
}

// UpdateTask carries a partial edit of an existing Task.
type UpdateTask struct {
	ID          string      `json:"id" validate:"required"`
	SubjectID   string      `json:"subjectId,omitempty"`
	Title       string      `json:"title,omitempty"`
	Description null.String `json:"description,omitempty"`
	DueDate     string      `json:"dueDate,omitempty"`
	IsDelivered null.Bool   `json:"isDelivered,omitempty"`
}
