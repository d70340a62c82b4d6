package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/huyanluanyuing/LMS/core/user"
)

type userApi struct {
	svc *user.Service
}

func registerUserAPI(g *echo.Group, svc *user.Service) {
	api := userApi{svc: svc}

	ug := g.Group("/users")
	ug.GET("", api.query)
	ug.POST("", api.create)
}

// Handlers

func (api *userApi) query(ctx echo.Context) error {
	users, err := api.svc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "listing users")
	}
	return ctx.JSON(http.StatusOK, users)
}

func (api *userApi) create(ctx echo.Context) error {
	var data user.NewUser
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewUser")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	usr, err := api.svc.Create(data)
	if err != nil {
		return errors.Wrap(err, "creating user")
	}
	return ctx.JSON(http.StatusCreated, usr)
}
