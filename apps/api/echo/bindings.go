package echoapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/huyanluanyuing/LMS/core"
)

type JoinCourseRequest struct {
	InviteCode string `json:"invite_code" validate:"required"`
}

func (r *JoinCourseRequest) Validate() error {
	r.InviteCode = core.CleanString(r.InviteCode)
	return core.Validate.Struct(r)
}

// intQueryParam parses a required integer query parameter.
func intQueryParam(ctx echo.Context, name string) (int, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return 0, echo.NewHTTPError(http.StatusBadRequest, name+" query parameter is required")
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, name+" must be an integer")
	}
	return val, nil
}

// intPathParam parses an integer path parameter.
func intPathParam(ctx echo.Context, name string) (int, error) {
	val, err := strconv.Atoi(ctx.Param(name))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, name+" must be an integer")
	}
	return val, nil
}
