package testutil

import (
	"testing"
	"time"

	"github.com/huyanluanyuing/LMS/core/assignment"
	"github.com/huyanluanyuing/LMS/core/course"
	"github.com/huyanluanyuing/LMS/core/user"
)

func CreateUser(t *testing.T, repo user.Repository, uname, fullName, role string) user.User {
	t.Helper()
	usr := user.User{
		Username:  uname,
		FullName:  fullName,
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}
	usr, err := repo.CreateUser(usr)
	if err != nil {
		t.Fatalf("CreateUser() failed: %v", err)
	}
	return usr
}

func CreateCourse(t *testing.T, repo course.Repository, title, subject, code string, teacherID int) course.Course {
	t.Helper()
	crs := course.Course{
		Title:      title,
		Subject:    subject,
		InviteCode: code,
		TeacherID:  teacherID,
		CreatedAt:  time.Now().UTC(),
	}
	crs, err := repo.CreateCourse(crs)
	if err != nil {
		t.Fatalf("CreateCourse() failed: %v", err)
	}
	return crs
}

func CreateAssignment(t *testing.T, repo assignment.Repository, courseID int, title string, maxScore int) assignment.Assignment {
	t.Helper()
	asg := assignment.Assignment{
		CourseID:  courseID,
		Title:     title,
		MaxScore:  maxScore,
		CreatedAt: time.Now().UTC(),
	}
	asg, err := repo.CreateAssignment(asg)
	if err != nil {
		t.Fatalf("CreateAssignment() failed: %v", err)
	}
	return asg
}
