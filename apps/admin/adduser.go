package main

import "github.com/huyanluanyuing/LMS/core/user"

// addUser creates a new user.User with the given role.
func (cli *commandLine) addUser(uname, fullName, pwd string, isTeacher bool) error {
	role := user.RoleStudent
	if isTeacher {
		role = user.RoleTeacher
	}

	nu := user.NewUser{
		Username: uname,
		FullName: fullName,
		Role:     role,
		Password: pwd,
	}
	if err := nu.Validate(); err != nil {
		return err
	}
	_, err := cli.usrSvc.Create(nu)
	return err
}
