package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/huyanluanyuing/LMS/core/submission"
)

type submissionApi struct {
	svc *submission.Service
}

func registerSubmissionAPI(g *echo.Group, svc *submission.Service) {
	api := submissionApi{svc: svc}

	ag := g.Group("/assignments/:id")
	ag.POST("/submit", api.submit)
	ag.GET("/submissions", api.query)

	sg := g.Group("/submissions/:id")
	sg.PUT("/grade", api.grade)
}

// Handlers

func (api *submissionApi) submit(ctx echo.Context) error {
	assignmentID, err := intPathParam(ctx, "id")
	if err != nil {
		return err
	}
	studentID, err := intQueryParam(ctx, "studentId")
	if err != nil {
		return err
	}

	var data submission.NewSubmission
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewSubmission")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	sub, err := api.svc.Submit(studentID, assignmentID, data)
	if err != nil {
		return errors.Wrap(err, "submitting assignment")
	}
	return ctx.JSON(http.StatusOK, sub)
}

// query lists an assignment's submissions for the grading teacher's review.
func (api *submissionApi) query(ctx echo.Context) error {
	assignmentID, err := intPathParam(ctx, "id")
	if err != nil {
		return err
	}

	subs, err := api.svc.QueryByAssignment(assignmentID)
	if err != nil {
		return errors.Wrap(err, "listing submissions")
	}
	return ctx.JSON(http.StatusOK, subs)
}

func (api *submissionApi) grade(ctx echo.Context) error {
	submissionID, err := intPathParam(ctx, "id")
	if err != nil {
		return err
	}

	var data submission.GradeInput
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to GradeInput")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	sub, err := api.svc.Grade(submissionID, data)
	if err != nil {
		return errors.Wrap(err, "grading submission")
	}
	return ctx.JSON(http.StatusOK, sub)
}
