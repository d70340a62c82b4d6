package sqlxrepos

import (
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/huyanluanyuing/LMS/core/submission"
)

type submissionRepository struct {
	db *sqlx.DB
}

func NewSubmissionRepository(db *sqlx.DB) submission.Repository {
	return &submissionRepository{db: db}
}

func (repo *submissionRepository) GetSubmissionByID(id int) (submission.Submission, error) {
	var sub submission.Submission
	err := repo.db.Get(&sub, `SELECT * FROM submissions WHERE id = $1`, id)
	if err == sql.ErrNoRows {
		return submission.Submission{}, submission.ErrNotFound
	}
	return sub, err
}

func (repo *submissionRepository) GetSubmissionByAssignmentAndStudent(assignmentID, studentID int) (submission.Submission, error) {
	var sub submission.Submission
	err := repo.db.Get(&sub,
		`SELECT * FROM submissions WHERE assignment_id = $1 AND student_id = $2`,
		assignmentID, studentID)
	if err == sql.ErrNoRows {
		return submission.Submission{}, submission.ErrNotFound
	}
	return sub, err
}

func (repo *submissionRepository) QuerySubmissionsByAssignmentID(assignmentID int) ([]submission.Submission, error) {
	subs := make([]submission.Submission, 0)
	err := repo.db.Select(&subs, `SELECT * FROM submissions WHERE assignment_id = $1 ORDER BY id`, assignmentID)
	return subs, err
}

// UpsertSubmission runs the lookup-mutate-write sequence in one transaction,
// locking the existing row so concurrent submits for the same
// (assignment, student) pair serialize; the unique constraint on the pair
// catches concurrent first inserts.
func (repo *submissionRepository) UpsertSubmission(
	assignmentID, studentID int,
	mutate func(*submission.Submission),
) (submission.Submission, error) {
	tx, err := repo.db.Beginx()
	if err != nil {
		return submission.Submission{}, errors.Wrap(err, "beginning upsert tx")
	}
	defer func() { _ = tx.Rollback() }()

	var sub submission.Submission
	err = tx.Get(&sub,
		`SELECT * FROM submissions WHERE assignment_id = $1 AND student_id = $2 FOR UPDATE`,
		assignmentID, studentID)
	switch err {
	case sql.ErrNoRows:
		sub = submission.Submission{
			AssignmentID: assignmentID,
			StudentID:    studentID,
			Status:       submission.StatusPending,
		}
		mutate(&sub)
		err = tx.QueryRowx(
			`INSERT INTO submissions (assignment_id, student_id, content, grade, feedback, status, submitted_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)
			 ON CONFLICT (assignment_id, student_id) DO UPDATE
			 SET content = EXCLUDED.content, status = EXCLUDED.status, submitted_at = EXCLUDED.submitted_at
			 RETURNING id`,
			sub.AssignmentID, sub.StudentID, sub.Content, sub.Grade, sub.Feedback, sub.Status, sub.SubmittedAt,
		).Scan(&sub.ID)
		if err != nil {
			return submission.Submission{}, errors.Wrap(err, "inserting submission")
		}
	case nil:
		mutate(&sub)
		_, err = tx.Exec(
			`UPDATE submissions SET content = $1, grade = $2, feedback = $3, status = $4, submitted_at = $5
			 WHERE id = $6`,
			sub.Content, sub.Grade, sub.Feedback, sub.Status, sub.SubmittedAt, sub.ID,
		)
		if err != nil {
			return submission.Submission{}, errors.Wrap(err, "updating submission")
		}
	default:
		return submission.Submission{}, errors.Wrap(err, "looking up submission")
	}

	if err = tx.Commit(); err != nil {
		return submission.Submission{}, errors.Wrap(err, "committing upsert tx")
	}
	return sub, nil
}

func (repo *submissionRepository) UpdateSubmission(sub submission.Submission) (submission.Submission, error) {
	res, err := repo.db.Exec(
		`UPDATE submissions SET content = $1, grade = $2, feedback = $3, status = $4, submitted_at = $5
		 WHERE id = $6`,
		sub.Content, sub.Grade, sub.Feedback, sub.Status, sub.SubmittedAt, sub.ID,
	)
	if err != nil {
		return submission.Submission{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return submission.Submission{}, submission.ErrNotFound
	}
	return sub, nil
}
