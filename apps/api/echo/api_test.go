package echoapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huyanluanyuing/LMS/core/assignment"
	"github.com/huyanluanyuing/LMS/core/course"
	"github.com/huyanluanyuing/LMS/core/submission"
	"github.com/huyanluanyuing/LMS/core/user"
	inmemdb "github.com/huyanluanyuing/LMS/storage/database/inmem"
	testutil "github.com/huyanluanyuing/LMS/tests"
)

type nopLogger struct{}

func (nopLogger) Enable(bool)                  {}
func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Fatal(string, ...interface{}) {}

type testEnv struct {
	srv     Server
	usrRepo user.Repository
	crsRepo course.Repository
	asgRepo assignment.Repository
}

func setup(t *testing.T) testEnv {
	db, err := inmemdb.Open()
	require.NoError(t, err)

	usrRepo := inmemdb.NewUserRepository(db)
	crsRepo := inmemdb.NewCourseRepository(db)
	asgRepo := inmemdb.NewAssignmentRepository(db)
	subRepo := inmemdb.NewSubmissionRepository(db)

	srv := NewServer(&Options{
		DisableReqLogs: true,
		Logger:         nopLogger{},
		UserSvc:        user.NewService(usrRepo),
		CourseSvc:      course.NewService(crsRepo, usrRepo),
		AssignmentSvc:  assignment.NewService(asgRepo, usrRepo, crsRepo),
		SubmissionSvc:  submission.NewService(subRepo, usrRepo, asgRepo),
	})
	return testEnv{srv: srv, usrRepo: usrRepo, crsRepo: crsRepo, asgRepo: asgRepo}
}

func (env testEnv) request(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buff bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buff).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buff)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	env.srv.ServeHTTP(rec, req)
	return rec
}

func Test_courseApi(t *testing.T) {
	env := setup(t)
	teacher := testutil.CreateUser(t, env.usrRepo, "teacher_math", "Mr. Anderson", user.RoleTeacher)
	student := testutil.CreateUser(t, env.usrRepo, "student1", "Timmy Turner", user.RoleStudent)

	t.Run("create", func(t *testing.T) {
		body := map[string]string{"title": "Fractions", "subject": "Math"}
		rec := env.request(t, http.MethodPost, fmt.Sprintf("/v1/courses?userId=%d", teacher.ID), body)
		require.Equal(t, http.StatusCreated, rec.Code)

		var crs course.Course
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &crs))
		assert.Equal(t, teacher.ID, crs.TeacherID)
		assert.Len(t, crs.InviteCode, 6)
	})

	t.Run("create forbidden for students", func(t *testing.T) {
		body := map[string]string{"title": "Hacking", "subject": "Fun"}
		rec := env.request(t, http.MethodPost, fmt.Sprintf("/v1/courses?userId=%d", student.ID), body)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("create rejects empty title", func(t *testing.T) {
		body := map[string]string{"subject": "Math"}
		rec := env.request(t, http.MethodPost, fmt.Sprintf("/v1/courses?userId=%d", teacher.ID), body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("query requires userId", func(t *testing.T) {
		rec := env.request(t, http.MethodGet, "/v1/courses", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("query unknown user", func(t *testing.T) {
		rec := env.request(t, http.MethodGet, "/v1/courses?userId=999", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("join", func(t *testing.T) {
		crs := testutil.CreateCourse(t, env.crsRepo, "Photosynthesis", "Science", "SCI202", teacher.ID)

		body := map[string]string{"invite_code": "SCI202"}
		rec := env.request(t, http.MethodPost, fmt.Sprintf("/v1/courses/join?userId=%d", student.ID), body)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = env.request(t, http.MethodGet, fmt.Sprintf("/v1/courses?userId=%d", student.ID), nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var courses []course.Course
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &courses))
		require.Len(t, courses, 1)
		assert.Equal(t, crs.ID, courses[0].ID)
	})

	t.Run("retrieve unknown course", func(t *testing.T) {
		rec := env.request(t, http.MethodGet, "/v1/courses/999", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func Test_assignmentApi(t *testing.T) {
	env := setup(t)
	owner := testutil.CreateUser(t, env.usrRepo, "teacher_math", "Mr. Anderson", user.RoleTeacher)
	other := testutil.CreateUser(t, env.usrRepo, "teacher_science", "Ms. Frizzle", user.RoleTeacher)
	crs := testutil.CreateCourse(t, env.crsRepo, "Fractions", "Math", "MATH01", owner.ID)

	t.Run("create", func(t *testing.T) {
		body := map[string]interface{}{"title": "Worksheet", "description": "Problems 1-10"}
		rec := env.request(t, http.MethodPost, fmt.Sprintf("/v1/assignments?userId=%d&courseId=%d", owner.ID, crs.ID), body)
		require.Equal(t, http.StatusCreated, rec.Code)

		var asg assignment.Assignment
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &asg))
		assert.Equal(t, assignment.DefaultMaxScore, asg.MaxScore)
	})

	t.Run("create forbidden for non-owner", func(t *testing.T) {
		body := map[string]interface{}{"title": "Hijack"}
		rec := env.request(t, http.MethodPost, fmt.Sprintf("/v1/assignments?userId=%d&courseId=%d", other.ID, crs.ID), body)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("query is permissive", func(t *testing.T) {
		rec := env.request(t, http.MethodGet, "/v1/assignments?courseId=999", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var assignments []assignment.Assignment
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &assignments))
		assert.Empty(t, assignments)
	})
}

func Test_submissionApi(t *testing.T) {
	env := setup(t)
	teacher := testutil.CreateUser(t, env.usrRepo, "teacher_math", "Mr. Anderson", user.RoleTeacher)
	student := testutil.CreateUser(t, env.usrRepo, "student1", "Timmy Turner", user.RoleStudent)
	crs := testutil.CreateCourse(t, env.crsRepo, "Fractions", "Math", "MATH01", teacher.ID)
	asg := testutil.CreateAssignment(t, env.asgRepo, crs.ID, "Worksheet", 100)

	t.Run("submit and resubmit", func(t *testing.T) {
		body := map[string]string{"content": "1/2+1/4=3/4"}
		rec := env.request(t, http.MethodPost, fmt.Sprintf("/v1/assignments/%d/submit?studentId=%d", asg.ID, student.ID), body)
		require.Equal(t, http.StatusOK, rec.Code)

		body = map[string]string{"content": "3/4 final"}
		rec = env.request(t, http.MethodPost, fmt.Sprintf("/v1/assignments/%d/submit?studentId=%d", asg.ID, student.ID), body)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = env.request(t, http.MethodGet, fmt.Sprintf("/v1/assignments/%d/submissions", asg.ID), nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var subs []submission.Submission
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &subs))
		require.Len(t, subs, 1)
		assert.Equal(t, "3/4 final", subs[0].Content)
		assert.Equal(t, submission.StatusSubmitted, subs[0].Status)
	})

	t.Run("submit to unknown assignment", func(t *testing.T) {
		body := map[string]string{"content": "?"}
		rec := env.request(t, http.MethodPost, fmt.Sprintf("/v1/assignments/999/submit?studentId=%d", student.ID), body)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("grade", func(t *testing.T) {
		rec := env.request(t, http.MethodGet, fmt.Sprintf("/v1/assignments/%d/submissions", asg.ID), nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var subs []submission.Submission
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &subs))
		require.Len(t, subs, 1)

		body := map[string]interface{}{"grade": 50, "feedback": "check denominator"}
		rec = env.request(t, http.MethodPut, fmt.Sprintf("/v1/submissions/%d/grade", subs[0].ID), body)
		require.Equal(t, http.StatusOK, rec.Code)

		var graded submission.Submission
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &graded))
		assert.Equal(t, submission.StatusGraded, graded.Status)
		assert.True(t, graded.Grade.Valid)
		assert.Equal(t, 50, graded.Grade.Int)
	})

	t.Run("grade above max score", func(t *testing.T) {
		rec := env.request(t, http.MethodGet, fmt.Sprintf("/v1/assignments/%d/submissions", asg.ID), nil)
		var subs []submission.Submission
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &subs))
		require.Len(t, subs, 1)

		body := map[string]interface{}{"grade": 200}
		rec = env.request(t, http.MethodPut, fmt.Sprintf("/v1/submissions/%d/grade", subs[0].ID), body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("grade unknown submission", func(t *testing.T) {
		body := map[string]interface{}{"grade": 10}
		rec := env.request(t, http.MethodPut, "/v1/submissions/999/grade", body)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
