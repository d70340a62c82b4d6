package sqlxrepos

import (
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/huyanluanyuing/LMS/core/course"
)

type courseRepository struct {
	db *sqlx.DB
}

func NewCourseRepository(db *sqlx.DB) course.Repository {
	return &courseRepository{db: db}
}

func (repo *courseRepository) CreateCourse(crs course.Course) (course.Course, error) {
	err := repo.db.QueryRowx(
		`INSERT INTO courses (title, description, subject, invite_code, teacher_id, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		crs.Title, crs.Description, crs.Subject, crs.InviteCode, crs.TeacherID, crs.CreatedAt,
	).Scan(&crs.ID)
	return crs, err
}

func (repo *courseRepository) GetCourseByID(id int) (course.Course, error) {
	var crs course.Course
	err := repo.db.Get(&crs, `SELECT * FROM courses WHERE id = $1`, id)
	if err == sql.ErrNoRows {
		return course.Course{}, course.ErrNotFound
	}
	return crs, err
}

func (repo *courseRepository) GetCourseByInviteCode(code string) (course.Course, error) {
	var crs course.Course
	err := repo.db.Get(&crs, `SELECT * FROM courses WHERE invite_code = $1`, code)
	if err == sql.ErrNoRows {
		return course.Course{}, course.ErrNotFound
	}
	return crs, err
}

func (repo *courseRepository) QueryCoursesByTeacherID(teacherID int) ([]course.Course, error) {
	courses := make([]course.Course, 0)
	err := repo.db.Select(&courses, `SELECT * FROM courses WHERE teacher_id = $1 ORDER BY id`, teacherID)
	return courses, err
}

func (repo *courseRepository) QueryCoursesByStudentID(studentID int) ([]course.Course, error) {
	courses := make([]course.Course, 0)
	err := repo.db.Select(&courses,
		`SELECT c.* FROM courses c
		 JOIN course_students cs ON cs.course_id = c.id
		 WHERE cs.student_id = $1 ORDER BY c.id`, studentID)
	return courses, err
}

func (repo *courseRepository) AddStudent(courseID, studentID int) error {
	_, err := repo.db.Exec(
		`INSERT INTO course_students (course_id, student_id) VALUES ($1, $2)
		 ON CONFLICT (course_id, student_id) DO NOTHING`,
		courseID, studentID,
	)
	return err
}
