package main

import (
	"database/sql"
	"log"
	"os"

	"github.com/jmoiron/sqlx"

	"github.com/huyanluanyuing/LMS/core"
	"github.com/huyanluanyuing/LMS/core/assignment"
	"github.com/huyanluanyuing/LMS/core/course"
	"github.com/huyanluanyuing/LMS/core/submission"
	"github.com/huyanluanyuing/LMS/core/user"
	"github.com/huyanluanyuing/LMS/storage/database"
	sqlxrepos "github.com/huyanluanyuing/LMS/storage/database/sqlx"
)

func main() {
	sdb, err := database.Open()
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = sdb.Close() }()

	cli := newCommandLine(sdb)
	if err := cli.run(os.Args); err != nil && err != errHelp {
		log.Fatal(err)
	}
}

func newCommandLine(sdb *sql.DB) *commandLine {
	db := sqlx.NewDb(sdb, core.Conf.GetString("database.engine"))
	usrRepo := sqlxrepos.NewUserRepository(db)
	crsRepo := sqlxrepos.NewCourseRepository(db)
	asgRepo := sqlxrepos.NewAssignmentRepository(db)
	subRepo := sqlxrepos.NewSubmissionRepository(db)

	return &commandLine{
		db:     sdb,
		usrSvc: user.NewService(usrRepo),
		crsSvc: course.NewService(crsRepo, usrRepo),
		asgSvc: assignment.NewService(asgRepo, usrRepo, crsRepo),
		subSvc: submission.NewService(subRepo, usrRepo, asgRepo),
	}
}
