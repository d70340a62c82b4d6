package assignment

import (
	"time"

	"github.com/huyanluanyuing/LMS/core"
	"github.com/huyanluanyuing/LMS/core/course"
	"github.com/huyanluanyuing/LMS/core/user"
)

var (
	// errors
	ErrNotFound       = core.NewNotFoundError("assignment not found")
	ErrNotCourseOwner = core.NewForbiddenError("not the teacher of this course")
)

type (
	Repository interface {
		CreateAssignment(asg Assignment) (Assignment, error)
		GetAssignmentByID(id int) (Assignment, error)
		// QueryAssignmentsByCourseID returns an empty slice for an unknown course.
		QueryAssignmentsByCourseID(courseID int) ([]Assignment, error)
	}

	Service struct {
		repo    Repository
		usrRepo user.Repository
		crsRepo course.Repository
	}
)

func NewService(repo Repository, usrRepo user.Repository, crsRepo course.Repository) *Service {
	return &Service{repo: repo, usrRepo: usrRepo, crsRepo: crsRepo}
}

func (svc *Service) QueryByCourse(courseID int) ([]Assignment, error) {
	return svc.repo.QueryAssignmentsByCourseID(courseID)
}

func (svc *Service) GetByID(id int) (Assignment, error) {
	return svc.repo.GetAssignmentByID(id)
}

// Create registers a new assignment under the course. Ownership, not role,
// gates the action: the actor must be the course's teacher.
func (svc *Service) Create(teacherID, courseID int, na NewAssignment) (Assignment, error) {
	usr, err := svc.usrRepo.GetUserByID(teacherID)
	if err != nil {
		return Assignment{}, err
	}
	crs, err := svc.crsRepo.GetCourseByID(courseID)
	if err != nil {
		return Assignment{}, err
	}
	if crs.TeacherID != usr.ID {
		return Assignment{}, ErrNotCourseOwner
	}

	maxScore := na.MaxScore
	if maxScore == 0 {
		maxScore = DefaultMaxScore
	}
	asg := Assignment{
		CourseID:    crs.ID,
		Title:       na.Title,
		Description: na.Description,
		DueDate:     na.DueDate,
		MaxScore:    maxScore,
		CreatedAt:   time.Now().UTC(),
	}
	return svc.repo.CreateAssignment(asg)
}
