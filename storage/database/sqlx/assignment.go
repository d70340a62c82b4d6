package sqlxrepos

import (
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/huyanluanyuing/LMS/core/assignment"
)

type assignmentRepository struct {
	db *sqlx.DB
}

func NewAssignmentRepository(db *sqlx.DB) assignment.Repository {
	return &assignmentRepository{db: db}
}

func (repo *assignmentRepository) CreateAssignment(asg assignment.Assignment) (assignment.Assignment, error) {
	err := repo.db.QueryRowx(
		`INSERT INTO assignments (course_id, title, description, due_date, max_score, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		asg.CourseID, asg.Title, asg.Description, asg.DueDate, asg.MaxScore, asg.CreatedAt,
	).Scan(&asg.ID)
	return asg, err
}

func (repo *assignmentRepository) GetAssignmentByID(id int) (assignment.Assignment, error) {
	var asg assignment.Assignment
	err := repo.db.Get(&asg, `SELECT * FROM assignments WHERE id = $1`, id)
	if err == sql.ErrNoRows {
		return assignment.Assignment{}, assignment.ErrNotFound
	}
	return asg, err
}

func (repo *assignmentRepository) QueryAssignmentsByCourseID(courseID int) ([]assignment.Assignment, error) {
	assignments := make([]assignment.Assignment, 0)
	err := repo.db.Select(&assignments, `SELECT * FROM assignments WHERE course_id = $1 ORDER BY id`, courseID)
	return assignments, err
}
