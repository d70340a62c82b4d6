package main

import (
	"database/sql"
	"fmt"
	"testing"

	"github.com/huyanluanyuing/LMS/core/assignment"
	"github.com/huyanluanyuing/LMS/core/course"
	"github.com/huyanluanyuing/LMS/core/submission"
	"github.com/huyanluanyuing/LMS/core/user"
	inmemdb "github.com/huyanluanyuing/LMS/storage/database/inmem"
)

func setup(t *testing.T) (*commandLine, user.Repository) {
	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("setup() failed: %v", err)
	}
	usrRepo := inmemdb.NewUserRepository(db)
	crsRepo := inmemdb.NewCourseRepository(db)
	asgRepo := inmemdb.NewAssignmentRepository(db)
	subRepo := inmemdb.NewSubmissionRepository(db)

	cli := &commandLine{
		usrSvc: user.NewService(usrRepo),
		crsSvc: course.NewService(crsRepo, usrRepo),
		asgSvc: assignment.NewService(asgRepo, usrRepo, crsRepo),
		subSvc: submission.NewService(subRepo, usrRepo, asgRepo),
	}
	return cli, usrRepo
}

type cliTest struct {
	name       string
	args       []string // without program name
	wantErr    error
	wantErrStr string
}

func Test_commandLine_run(t *testing.T) {
	cli, _ := setup(t)

	gooseRunFunc = func(command string, db *sql.DB, dir string, args ...string) error {
		switch command {
		case "up", "down", "status", "version": // pass
		default:
			return fmt.Errorf("%q: no such command", command)
		}
		return nil
	}
	readPasswordFunc = func(fd int) ([]byte, error) { return []byte("password"), nil }

	tests := []cliTest{
		{name: "no subcommand", args: []string{"admin"}, wantErr: errHelp},
		{name: "unknown subcommand", args: []string{"admin", "lol"}, wantErr: errHelp},
		{name: "migrate: no args", args: []string{"admin", "migrate"}, wantErr: errHelp},
		{name: "migrate: unknown command", args: []string{"admin", "migrate", "lol"}, wantErrStr: "\"lol\": no such command"},
		{name: "migrate: up", args: []string{"admin", "migrate", "up"}},
		{name: "adduser: missing flags", args: []string{"admin", "adduser"}, wantErr: errHelp},
		{name: "adduser", args: []string{"admin", "adduser", "-username", "teacher_art", "-fullname", "Bob Ross", "-teacher"}},
		{name: "seed", args: []string{"admin", "seed"}},
		{name: "seed: already seeded", args: []string{"admin", "seed"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := cli.run(tt.args)
			switch {
			case tt.wantErr != nil:
				if err != tt.wantErr {
					t.Errorf("run() error = %v, wantErr %v", err, tt.wantErr)
				}
			case tt.wantErrStr != "":
				if err == nil || err.Error() != tt.wantErrStr {
					t.Errorf("run() error = %v, wantErr %q", err, tt.wantErrStr)
				}
			case err != nil:
				t.Errorf("run() error = %v", err)
			}
		})
	}
}

func Test_commandLine_addUser(t *testing.T) {
	cli, usrRepo := setup(t)

	if err := cli.addUser("teacher_art", "Bob Ross", "password", true); err != nil {
		t.Fatalf("addUser() error = %v", err)
	}
	usr, err := usrRepo.GetUserByUsername("teacher_art")
	if err != nil {
		t.Fatalf("GetUserByUsername() error = %v", err)
	}
	if !usr.IsTeacher() {
		t.Errorf("addUser() role = %q, want %q", usr.Role, user.RoleTeacher)
	}
	if err := usr.CheckPassword("password"); err != nil {
		t.Errorf("CheckPassword() error = %v", err)
	}

	// username uniqueness
	if err := cli.addUser("teacher_art", "Bob Ross", "password", true); err == nil {
		t.Error("addUser() expected a uniqueness error")
	}
}
