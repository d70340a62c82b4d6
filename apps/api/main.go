package main

import (
	"log"
	"os"

	"github.com/jmoiron/sqlx"

	echoapi "github.com/huyanluanyuing/LMS/apps/api/echo"
	"github.com/huyanluanyuing/LMS/core"
	"github.com/huyanluanyuing/LMS/core/assignment"
	"github.com/huyanluanyuing/LMS/core/course"
	"github.com/huyanluanyuing/LMS/core/submission"
	"github.com/huyanluanyuing/LMS/core/user"
	logsvc "github.com/huyanluanyuing/LMS/services/logger"
	"github.com/huyanluanyuing/LMS/storage/database"
	inmemdb "github.com/huyanluanyuing/LMS/storage/database/inmem"
	sqlxrepos "github.com/huyanluanyuing/LMS/storage/database/sqlx"
)

func main() {
	debug := core.Conf.GetBool("debug")

	logger := logsvc.NewRollbarLogger(log.New(os.Stdout, "API : ", log.LstdFlags|log.Lshortfile))
	logger.Enable(!debug) // do not report to rollbar in DEV mode

	// set up repos; DEV mode runs on the in-memory store
	var (
		usrRepo user.Repository
		crsRepo course.Repository
		asgRepo assignment.Repository
		subRepo submission.Repository
	)
	if debug {
		db, err := inmemdb.Open()
		if err != nil {
			logger.Fatal("opening in-memory database", err)
		}
		usrRepo = inmemdb.NewUserRepository(db)
		crsRepo = inmemdb.NewCourseRepository(db)
		asgRepo = inmemdb.NewAssignmentRepository(db)
		subRepo = inmemdb.NewSubmissionRepository(db)
	} else {
		sdb, err := database.Open()
		if err != nil {
			logger.Fatal("opening database", err)
		}
		defer func() { _ = sdb.Close() }()
		db := sqlx.NewDb(sdb, core.Conf.GetString("database.engine"))
		usrRepo = sqlxrepos.NewUserRepository(db)
		crsRepo = sqlxrepos.NewCourseRepository(db)
		asgRepo = sqlxrepos.NewAssignmentRepository(db)
		subRepo = sqlxrepos.NewSubmissionRepository(db)
	}

	// set up services
	usrSvc := user.NewService(usrRepo)
	crsSvc := course.NewService(crsRepo, usrRepo)
	asgSvc := assignment.NewService(asgRepo, usrRepo, crsRepo)
	subSvc := submission.NewService(subRepo, usrRepo, asgRepo)

	// start API server
	app := echoapi.NewServer(&echoapi.Options{
		Address:       core.Conf.GetString("serverAddress"),
		Logger:        logger,
		UserSvc:       usrSvc,
		CourseSvc:     crsSvc,
		AssignmentSvc: asgSvc,
		SubmissionSvc: subSvc,
	})
	app.Start()
}
