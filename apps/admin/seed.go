package main

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/huyanluanyuing/LMS/core/assignment"
	"github.com/huyanluanyuing/LMS/core/course"
	"github.com/huyanluanyuing/LMS/core/submission"
	"github.com/huyanluanyuing/LMS/core/user"
)

// seed loads a demo classroom into an empty database: two teachers, two
// students, two courses with assignments, and one graded submission.
func (cli *commandLine) seed() error {
	if users, err := cli.usrSvc.QueryAll(); err != nil {
		return err
	} else if len(users) > 0 {
		fmt.Println("data already present, skipping seed")
		return nil
	}

	teacherMath, err := cli.usrSvc.Create(user.NewUser{
		Username: "teacher_math", FullName: "Mr. Anderson", Role: user.RoleTeacher, Password: "password",
	})
	if err != nil {
		return errors.Wrap(err, "seeding teachers")
	}
	teacherScience, err := cli.usrSvc.Create(user.NewUser{
		Username: "teacher_science", FullName: "Ms. Frizzle", Role: user.RoleTeacher, Password: "password",
	})
	if err != nil {
		return errors.Wrap(err, "seeding teachers")
	}

	student1, err := cli.usrSvc.Create(user.NewUser{
		Username: "student1", FullName: "Timmy Turner", Role: user.RoleStudent, Password: "password",
	})
	if err != nil {
		return errors.Wrap(err, "seeding students")
	}
	student2, err := cli.usrSvc.Create(user.NewUser{
		Username: "student2", FullName: "Jimmy Neutron", Role: user.RoleStudent, Password: "password",
	})
	if err != nil {
		return errors.Wrap(err, "seeding students")
	}

	mathCourse, err := cli.crsSvc.Create(teacherMath.ID, course.NewCourse{
		Title:       "Grade 5 Math: Fractions",
		Description: "Learn how to add and subtract fractions.",
		Subject:     "Math",
		InviteCode:  "MATH01",
	})
	if err != nil {
		return errors.Wrap(err, "seeding courses")
	}
	scienceCourse, err := cli.crsSvc.Create(teacherScience.ID, course.NewCourse{
		Title:       "Junior Science: Photosynthesis",
		Description: "Understanding how plants eat sunlight.",
		Subject:     "Science",
		InviteCode:  "SCI202",
	})
	if err != nil {
		return errors.Wrap(err, "seeding courses")
	}

	// enroll both students in math, one in science
	for _, studentID := range []int{student1.ID, student2.ID} {
		if _, err = cli.crsSvc.Join(studentID, mathCourse.InviteCode); err != nil {
			return errors.Wrap(err, "seeding enrollment")
		}
	}
	if _, err = cli.crsSvc.Join(student1.ID, scienceCourse.InviteCode); err != nil {
		return errors.Wrap(err, "seeding enrollment")
	}

	fractions, err := cli.asgSvc.Create(teacherMath.ID, mathCourse.ID, assignment.NewAssignment{
		Title:       "Adding Fractions Worksheet",
		Description: "Complete problems 1-10.",
		DueDate:     null.TimeFrom(time.Now().UTC().AddDate(0, 0, 7)),
	})
	if err != nil {
		return errors.Wrap(err, "seeding assignments")
	}
	if _, err = cli.asgSvc.Create(teacherScience.ID, scienceCourse.ID, assignment.NewAssignment{
		Title:       "Leaf Observation Journal",
		Description: "Record your observations over one week.",
		MaxScore:    50,
	}); err != nil {
		return errors.Wrap(err, "seeding assignments")
	}

	sub, err := cli.subSvc.Submit(student1.ID, fractions.ID, submission.NewSubmission{
		Content: "1/2 + 1/4 = 3/4",
	})
	if err != nil {
		return errors.Wrap(err, "seeding submissions")
	}
	if _, err = cli.subSvc.Grade(sub.ID, submission.GradeInput{
		Grade: 95, Feedback: "Great work!",
	}); err != nil {
		return errors.Wrap(err, "seeding submissions")
	}

	fmt.Println("seed data loaded")
	return nil
}
