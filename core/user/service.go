package user

import (
	"time"

	"github.com/huyanluanyuing/LMS/core"
)

var (
	// errors
	ErrNotFound       = core.NewNotFoundError("user not found")
	ErrUsernameExists = core.NewValidationError(nil, core.FieldError{
		Field: "username", Error: "a user with this username already exists",
	})
)

type (
	Repository interface {
		CheckUsernameUniqueness(username string) error
		CreateUser(user User) (User, error)
		QueryAllUsers() ([]User, error)
		GetUserByID(id int) (User, error)
		GetUserByUsername(username string) (User, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(nu NewUser) (User, error) {
	if err := svc.repo.CheckUsernameUniqueness(nu.Username); err != nil {
		return User{}, err
	}
	usr := User{
		Username:  nu.Username,
		FullName:  nu.FullName,
		Role:      nu.Role,
		CreatedAt: time.Now().UTC(),
	}
	if err := usr.SetPassword(nu.Password); err != nil {
		return User{}, err
	}
	return svc.repo.CreateUser(usr)
}

func (svc *Service) QueryAll() ([]User, error) {
	return svc.repo.QueryAllUsers()
}

func (svc *Service) GetByID(id int) (User, error) {
	return svc.repo.GetUserByID(id)
}

func (svc *Service) GetByUsername(uname string) (User, error) {
	return svc.repo.GetUserByUsername(core.CleanString(uname, true /* lower */))
}
