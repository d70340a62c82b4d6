package course

import (
	"strings"
	"time"

	"github.com/huyanluanyuing/LMS/core"
	"github.com/huyanluanyuing/LMS/core/user"
)

var (
	// errors
	ErrNotFound    = core.NewNotFoundError("course not found")
	ErrNotTeacher  = core.NewForbiddenError("only teachers can create courses")
	ErrTeacherJoin = core.NewForbiddenError("teachers cannot join courses")
)

// inviteCodeAttempts bounds the collision retries on generated invite codes;
// uniqueness stays best-effort beyond that.
const inviteCodeAttempts = 5

type (
	Repository interface {
		CreateCourse(course Course) (Course, error)
		GetCourseByID(id int) (Course, error)
		GetCourseByInviteCode(code string) (Course, error)
		QueryCoursesByTeacherID(teacherID int) ([]Course, error)
		// QueryCoursesByStudentID is the derived "enrolled courses" view of the
		// course-side membership mapping.
		QueryCoursesByStudentID(studentID int) ([]Course, error)
		// AddStudent records membership; adding an already enrolled student is a no-op.
		AddStudent(courseID, studentID int) error
	}

	Service struct {
		repo    Repository
		usrRepo user.Repository
	}
)

func NewService(repo Repository, usrRepo user.Repository) *Service {
	return &Service{repo: repo, usrRepo: usrRepo}
}

// ListForUser returns the courses the user teaches, or is enrolled in.
func (svc *Service) ListForUser(userID int) ([]Course, error) {
	usr, err := svc.usrRepo.GetUserByID(userID)
	if err != nil {
		return nil, err
	}
	if usr.IsTeacher() {
		return svc.repo.QueryCoursesByTeacherID(usr.ID)
	}
	return svc.repo.QueryCoursesByStudentID(usr.ID)
}

func (svc *Service) GetByID(id int) (Course, error) {
	return svc.repo.GetCourseByID(id)
}

// Create registers a new course owned by the given teacher. An invite code is
// generated when the draft does not carry one.
func (svc *Service) Create(teacherID int, nc NewCourse) (Course, error) {
	usr, err := svc.usrRepo.GetUserByID(teacherID)
	if err != nil {
		return Course{}, err
	}
	if !usr.IsTeacher() {
		return Course{}, ErrNotTeacher
	}

	code := nc.InviteCode
	if code == "" {
		code = svc.generateInviteCode()
	}
	crs := Course{
		Title:       nc.Title,
		Description: nc.Description,
		Subject:     nc.Subject,
		InviteCode:  code,
		TeacherID:   usr.ID,
		CreatedAt:   time.Now().UTC(),
	}
	return svc.repo.CreateCourse(crs)
}

// Join enrolls the student in the course matching the invite code and returns it.
func (svc *Service) Join(studentID int, inviteCode string) (Course, error) {
	usr, err := svc.usrRepo.GetUserByID(studentID)
	if err != nil {
		return Course{}, err
	}
	if usr.IsTeacher() {
		return Course{}, ErrTeacherJoin
	}

	crs, err := svc.repo.GetCourseByInviteCode(strings.ToUpper(core.CleanString(inviteCode)))
	if err != nil {
		return Course{}, err
	}
	if err := svc.repo.AddStudent(crs.ID, usr.ID); err != nil {
		return Course{}, err
	}
	return crs, nil
}

func (svc *Service) generateInviteCode() string {
	var code string
	for i := 0; i < inviteCodeAttempts; i++ {
		code = randomInviteCode()
		if _, err := svc.repo.GetCourseByInviteCode(code); core.IsNotFound(err) {
			break
		}
	}
	return code
}
