package user

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/huyanluanyuing/LMS/core"
)

// Roles
const (
	RoleTeacher = "TEACHER"
	RoleStudent = "STUDENT"
)

type User struct {
	ID           int       `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	FullName     string    `json:"full_name" db:"full_name"`
	Role         string    `json:"role" db:"role"`
	PasswordHash []byte    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // UTC
}

func (u *User) SetPassword(pwd string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(pwd), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	return nil
}

func (u *User) CheckPassword(pwd string) error {
	return bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(pwd))
}

func (u *User) IsTeacher() bool {
	return u.Role == RoleTeacher
}

func (u *User) IsStudent() bool {
	return u.Role == RoleStudent
}

// NewUser contains information needed to create a new User.
type NewUser struct {
	Username string `json:"username" validate:"required,min=3,alphanum_"`
	FullName string `json:"full_name" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=TEACHER STUDENT"`
	Password string `json:"password" validate:"required"`
}

func (nu *NewUser) Validate() error {
	nu.Username = core.CleanString(nu.Username, true /* lower */)
	nu.FullName = core.CleanString(nu.FullName)
	nu.Role = core.CleanString(nu.Role)
	return core.Validate.Struct(nu)
}
