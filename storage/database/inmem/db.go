package inmemdb

import (
	"sync"

	"github.com/huyanluanyuing/LMS/core/assignment"
	"github.com/huyanluanyuing/LMS/core/course"
	"github.com/huyanluanyuing/LMS/core/submission"
	"github.com/huyanluanyuing/LMS/core/user"
)

type (
	DB struct {
		user       *userTable
		course     *courseTable
		assignment *assignmentTable
		submission *submissionTable
	}

	userTable struct {
		sync.RWMutex
		table map[int]*user.User
		pk    int
	}

	courseTable struct {
		sync.RWMutex
		table map[int]*course.Course
		// enrollment is the authoritative membership mapping: course id -> student id set.
		enrollment map[int]map[int]bool
		pk         int
	}

	assignmentTable struct {
		sync.RWMutex
		table map[int]*assignment.Assignment
		pk    int
	}

	submissionTable struct {
		sync.RWMutex
		table map[int]*submission.Submission
		pk    int
	}
)

func Open() (*DB, error) {
	db := &DB{
		user:       &userTable{table: make(map[int]*user.User)},
		course:     &courseTable{table: make(map[int]*course.Course), enrollment: make(map[int]map[int]bool)},
		assignment: &assignmentTable{table: make(map[int]*assignment.Assignment)},
		submission: &submissionTable{table: make(map[int]*submission.Submission)},
	}
	return db, nil
}
