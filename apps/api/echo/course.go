package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/huyanluanyuing/LMS/core/course"
)

type courseApi struct {
	svc *course.Service
}

func registerCourseAPI(g *echo.Group, svc *course.Service) {
	api := courseApi{svc: svc}

	cg := g.Group("/courses")
	cg.GET("", api.query)
	cg.POST("", api.create)
	cg.POST("/join", api.join)
	cg.GET("/:id", api.retrieve)
}

// Handlers

// query lists the courses the acting user teaches or is enrolled in.
func (api *courseApi) query(ctx echo.Context) error {
	userID, err := intQueryParam(ctx, "userId")
	if err != nil {
		return err
	}

	courses, err := api.svc.ListForUser(userID)
	if err != nil {
		return errors.Wrap(err, "listing courses")
	}
	return ctx.JSON(http.StatusOK, courses)
}

func (api *courseApi) retrieve(ctx echo.Context) error {
	id, err := intPathParam(ctx, "id")
	if err != nil {
		return err
	}

	crs, err := api.svc.GetByID(id)
	if err != nil {
		return errors.Wrap(err, "getting course")
	}
	return ctx.JSON(http.StatusOK, crs)
}

func (api *courseApi) create(ctx echo.Context) error {
	userID, err := intQueryParam(ctx, "userId")
	if err != nil {
		return err
	}

	var data course.NewCourse
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewCourse")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	crs, err := api.svc.Create(userID, data)
	if err != nil {
		return errors.Wrap(err, "creating course")
	}
	return ctx.JSON(http.StatusCreated, crs)
}

func (api *courseApi) join(ctx echo.Context) error {
	userID, err := intQueryParam(ctx, "userId")
	if err != nil {
		return err
	}

	var data JoinCourseRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to JoinCourseRequest")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	crs, err := api.svc.Join(userID, data.InviteCode)
	if err != nil {
		return errors.Wrap(err, "joining course")
	}
	return ctx.JSON(http.StatusOK, crs)
}
