package assignment

import (
	"time"

	"github.com/volatiletech/null/v8"

	"github.com/huyanluanyuing/LMS/core"
)

// DefaultMaxScore applies when a draft leaves the max score unset.
const DefaultMaxScore = 100

type Assignment struct {
	ID          int       `json:"id" db:"id"`
	CourseID    int       `json:"course_id" db:"course_id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	DueDate     null.Time `json:"due_date" db:"due_date"`
	MaxScore    int       `json:"max_score" db:"max_score"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"` // UTC
}

// NewAssignment contains information needed to create a new Assignment.
type NewAssignment struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description"`
	DueDate     null.Time `json:"due_date"`
	MaxScore    int       `json:"max_score" validate:"omitempty,gt=0"`
}

func (na *NewAssignment) Validate() error {
	na.Title = core.CleanString(na.Title)
	na.Description = core.CleanString(na.Description)
	return core.Validate.Struct(na)
}
