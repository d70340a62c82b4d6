package course

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/huyanluanyuing/LMS/core"
)

const inviteCodeLen = 6

type Course struct {
	ID          int       `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Subject     string    `json:"subject" db:"subject"`
	InviteCode  string    `json:"invite_code" db:"invite_code"`
	TeacherID   int       `json:"teacher_id" db:"teacher_id"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"` // UTC
}

// NewCourse contains information needed to create a new Course.
type NewCourse struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Subject     string `json:"subject" validate:"required"`
	InviteCode  string `json:"invite_code" validate:"omitempty,len=6,alphanum"`
}

func (nc *NewCourse) Validate() error {
	nc.Title = core.CleanString(nc.Title)
	nc.Description = core.CleanString(nc.Description)
	nc.Subject = core.CleanString(nc.Subject)
	nc.InviteCode = strings.ToUpper(core.CleanString(nc.InviteCode))
	return core.Validate.Struct(nc)
}

// randomInviteCode derives a short public join token from a random UUID.
func randomInviteCode() string {
	return strings.ToUpper(uuid.New().String()[:inviteCodeLen])
}
