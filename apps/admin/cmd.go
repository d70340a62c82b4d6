package main

import (
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"syscall"

	"golang.org/x/term"

	"github.com/huyanluanyuing/LMS/core/assignment"
	"github.com/huyanluanyuing/LMS/core/course"
	"github.com/huyanluanyuing/LMS/core/submission"
	"github.com/huyanluanyuing/LMS/core/user"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	db     *sql.DB
	usrSvc *user.Service
	crsSvc *course.Service
	asgSvc *assignment.Service
	subSvc *submission.Service
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  migrate COMMAND [ARGS] - run database migrations")
	fmt.Println("  adduser -username USERNAME -fullname NAME [-teacher] - create a user; the password is prompted next")
	fmt.Println("  seed - load demo data into an empty database")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	addUserCmd := flag.NewFlagSet("adduser", flag.ExitOnError)
	addUserUname := addUserCmd.String("username", "", "The user's username.")
	addUserName := addUserCmd.String("fullname", "", "The user's display name.")
	addUserTeacher := addUserCmd.Bool("teacher", false, "Create a teacher instead of a student.")

	switch args[1] {
	case "migrate":
		if len(args) < 3 {
			cli.printUsage()
			return errHelp
		}
		return cli.migrate(args[2:])
	case "adduser":
		if err := addUserCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *addUserUname == "" || *addUserName == "" {
			addUserCmd.Usage()
			return errHelp
		}
		fmt.Print("Enter password:")
		pwd, err := readPasswordFunc(syscall.Stdin)
		fmt.Println()
		if err != nil {
			return err
		}
		if len(pwd) == 0 {
			addUserCmd.Usage()
			return errHelp
		}
		return cli.addUser(*addUserUname, *addUserName, string(pwd), *addUserTeacher)
	case "seed":
		return cli.seed()
	default:
		cli.printUsage()
		return errHelp
	}
}
