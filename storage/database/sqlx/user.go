package sqlxrepos

import (
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/huyanluanyuing/LMS/core/user"
)

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) user.Repository {
	return &userRepository{db: db}
}

func (repo *userRepository) CheckUsernameUniqueness(username string) error {
	var exists bool
	err := repo.db.Get(&exists, `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`, username)
	if err != nil {
		return err
	}
	if exists {
		return user.ErrUsernameExists
	}
	return nil
}

func (repo *userRepository) CreateUser(usr user.User) (user.User, error) {
	err := repo.db.QueryRowx(
		`INSERT INTO users (username, full_name, role, password_hash, created_at)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		usr.Username, usr.FullName, usr.Role, usr.PasswordHash, usr.CreatedAt,
	).Scan(&usr.ID)
	return usr, err
}

func (repo *userRepository) QueryAllUsers() ([]user.User, error) {
	users := make([]user.User, 0)
	err := repo.db.Select(&users, `SELECT * FROM users ORDER BY id`)
	return users, err
}

func (repo *userRepository) GetUserByID(id int) (user.User, error) {
	var usr user.User
	err := repo.db.Get(&usr, `SELECT * FROM users WHERE id = $1`, id)
	if err == sql.ErrNoRows {
		return user.User{}, user.ErrNotFound
	}
	return usr, err
}

func (repo *userRepository) GetUserByUsername(username string) (user.User, error) {
	var usr user.User
	err := repo.db.Get(&usr, `SELECT * FROM users WHERE username = $1`, username)
	if err == sql.ErrNoRows {
		return user.User{}, user.ErrNotFound
	}
	return usr, err
}
