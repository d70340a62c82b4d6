package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/huyanluanyuing/LMS/core/assignment"
)

type assignmentApi struct {
	svc *assignment.Service
}

func registerAssignmentAPI(g *echo.Group, svc *assignment.Service) {
	api := assignmentApi{svc: svc}

	ag := g.Group("/assignments")
	ag.GET("", api.query)
	ag.POST("", api.create)
	ag.GET("/:id", api.retrieve)
}

// Handlers

func (api *assignmentApi) query(ctx echo.Context) error {
	courseID, err := intQueryParam(ctx, "courseId")
	if err != nil {
		return err
	}

	assignments, err := api.svc.QueryByCourse(courseID)
	if err != nil {
		return errors.Wrap(err, "listing assignments")
	}
	return ctx.JSON(http.StatusOK, assignments)
}

func (api *assignmentApi) retrieve(ctx echo.Context) error {
	id, err := intPathParam(ctx, "id")
	if err != nil {
		return err
	}

	asg, err := api.svc.GetByID(id)
	if err != nil {
		return errors.Wrap(err, "getting assignment")
	}
	return ctx.JSON(http.StatusOK, asg)
}

func (api *assignmentApi) create(ctx echo.Context) error {
	userID, err := intQueryParam(ctx, "userId")
	if err != nil {
		return err
	}
	courseID, err := intQueryParam(ctx, "courseId")
	if err != nil {
		return err
	}

	var data assignment.NewAssignment
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewAssignment")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	asg, err := api.svc.Create(userID, courseID, data)
	if err != nil {
		return errors.Wrap(err, "creating assignment")
	}
	return ctx.JSON(http.StatusCreated, asg)
}
