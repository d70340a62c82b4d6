package submission

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/huyanluanyuing/LMS/core"
	"github.com/huyanluanyuing/LMS/core/assignment"
	"github.com/huyanluanyuing/LMS/core/user"
)

var (
	// errors
	ErrNotFound = core.NewNotFoundError("submission not found")

	errGradeTooHigh = errors.New("grade exceeds the assignment's max score")
)

type (
	Repository interface {
		GetSubmissionByID(id int) (Submission, error)
		GetSubmissionByAssignmentAndStudent(assignmentID, studentID int) (Submission, error)
		QuerySubmissionsByAssignmentID(assignmentID int) ([]Submission, error)
		// UpsertSubmission inserts or updates the one submission keyed by
		// (assignmentID, studentID). A missing row starts as a zero Submission
		// with StatusPending before mutate is applied. The whole
		// lookup-mutate-write sequence runs as a single atomic operation.
		UpsertSubmission(assignmentID, studentID int, mutate func(*Submission)) (Submission, error)
		UpdateSubmission(sub Submission) (Submission, error)
	}

	Service struct {
		repo    Repository
		usrRepo user.Repository
		asgRepo assignment.Repository
	}
)

func NewService(repo Repository, usrRepo user.Repository, asgRepo assignment.Repository) *Service {
	return &Service{repo: repo, usrRepo: usrRepo, asgRepo: asgRepo}
}

// Submit stores the student's work for the assignment, replacing the content
// and timestamp of any earlier submission for the same pair. Resubmitting
// after grading drops the status back to SUBMITTED; the prior grade and
// feedback are kept for the teacher to revise.
func (svc *Service) Submit(studentID, assignmentID int, ns NewSubmission) (Submission, error) {
	if _, err := svc.asgRepo.GetAssignmentByID(assignmentID); err != nil {
		return Submission{}, err
	}
	if _, err := svc.usrRepo.GetUserByID(studentID); err != nil {
		return Submission{}, err
	}

	now := time.Now().UTC()
	return svc.repo.UpsertSubmission(assignmentID, studentID, func(sub *Submission) {
		sub.Content = ns.Content
		sub.Status = StatusSubmitted
		sub.SubmittedAt = now
	})
}

func (svc *Service) GetByID(id int) (Submission, error) {
	return svc.repo.GetSubmissionByID(id)
}

func (svc *Service) QueryByAssignment(assignmentID int) ([]Submission, error) {
	return svc.repo.QuerySubmissionsByAssignmentID(assignmentID)
}

// Grade sets the grade and feedback and marks the submission GRADED.
// Repeated calls overwrite the previous review; no history is kept.
func (svc *Service) Grade(submissionID int, gi GradeInput) (Submission, error) {
	sub, err := svc.repo.GetSubmissionByID(submissionID)
	if err != nil {
		return Submission{}, err
	}
	asg, err := svc.asgRepo.GetAssignmentByID(sub.AssignmentID)
	if err != nil {
		return Submission{}, err
	}
	if gi.Grade > asg.MaxScore {
		return Submission{}, core.NewValidationError(errGradeTooHigh, core.FieldError{
			Field: "grade",
			Error: fmt.Sprintf("grade must not exceed the max score of %d", asg.MaxScore),
		})
	}

	sub.Grade = null.IntFrom(gi.Grade)
	sub.Feedback = gi.Feedback
	sub.Status = StatusGraded
	return svc.repo.UpdateSubmission(sub)
}
