package submission

import (
	"time"

	"github.com/volatiletech/null/v8"

	"github.com/huyanluanyuing/LMS/core"
)

// Submission lifecycle. PENDING exists only between creation and the first
// submit; grading is terminal for the normal flow but may be repeated.
const (
	StatusPending   = "PENDING"
	StatusSubmitted = "SUBMITTED"
	StatusGraded    = "GRADED"
)

type Submission struct {
	ID           int       `json:"id" db:"id"`
	AssignmentID int       `json:"assignment_id" db:"assignment_id"`
	StudentID    int       `json:"student_id" db:"student_id"`
	Content      string    `json:"content" db:"content"`
	Grade        null.Int  `json:"grade" db:"grade"`
	Feedback     string    `json:"feedback" db:"feedback"`
	Status       string    `json:"status" db:"status"`
	SubmittedAt  time.Time `json:"submitted_at" db:"submitted_at"` // UTC
}

// NewSubmission contains the student's submitted work.
type NewSubmission struct {
	Content string `json:"content" validate:"required"`
}

func (ns *NewSubmission) Validate() error {
	ns.Content = core.CleanString(ns.Content)
	return core.Validate.Struct(ns)
}

// GradeInput contains the teacher's review of a submission.
type GradeInput struct {
	Grade    int    `json:"grade" validate:"gte=0"`
	Feedback string `json:"feedback"`
}

func (gi *GradeInput) Validate() error {
	gi.Feedback = core.CleanString(gi.Feedback)
	return core.Validate.Struct(gi)
}
