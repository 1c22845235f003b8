package service

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/taskflow-server/internal/apierror"
	"github.com/dtroode/taskflow-server/internal/model"
	"github.com/dtroode/taskflow-server/internal/testutil"
)

func echoTask(_ context.Context, task model.Task) (model.Task, error) {
	return task, nil
}

func TestTask_AnonymousCallsTouchNoStore(t *testing.T) {
	t.Parallel()

	title := "T"
	tests := []struct {
		name string
		call func(s *Task) error
	}{
		{
			name: "getByProject",
			call: func(s *Task) error {
				_, err := s.GetByProject(context.Background(), model.ProjectScopeParams{ProjectID: uuid.NewString()})
				return err
			},
		},
		{
			name: "create",
			call: func(s *Task) error {
				_, err := s.Create(context.Background(), model.CreateTaskParams{
					ProjectID: uuid.NewString(), Title: title, Priority: "LOW", Status: "TODO",
				})
				return err
			},
		},
		{
			name: "update",
			call: func(s *Task) error {
				_, err := s.Update(context.Background(), model.UpdateTaskParams{ID: uuid.NewString(), Title: &title})
				return err
			},
		},
		{
			name: "delete",
			call: func(s *Task) error {
				_, err := s.Delete(context.Background(), model.DeleteTaskParams{ID: "t1"})
				return err
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture(t)
			err := tt.call(f.taskService(false))

			assert.True(t, apierror.IsKind(err, apierror.Unauthorized), "got %v", err)
			assert.Empty(t, f.tasks.Calls)
			assert.Empty(t, f.projects.Calls)
		})
	}
}

func TestTask_Create_MissingTitleWritesNothing(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx := testutil.ContextWithSession(context.Background(), uuid.New())

	for _, title := range []string{"", "   "} {
		_, err := f.taskService(false).Create(ctx, model.CreateTaskParams{
			ProjectID: uuid.NewString(),
			Title:     title,
			Priority:  "MEDIUM",
			Status:    "TODO",
		})
		require.True(t, apierror.IsKind(err, apierror.InvalidInput))
		assert.Contains(t, err.Error(), "title")
	}

	assert.Empty(t, f.tasks.Calls)
	assert.Empty(t, f.projects.Calls)
}

func TestTask_Create_Validation(t *testing.T) {
	t.Parallel()

	valid := func() model.CreateTaskParams {
		return model.CreateTaskParams{ProjectID: uuid.NewString(), Title: "T", Priority: "LOW", Status: "DONE"}
	}

	tests := []struct {
		name   string
		mutate func(*model.CreateTaskParams)
		field  string
	}{
		{name: "priority enum", mutate: func(p *model.CreateTaskParams) { p.Priority = "URGENT" }, field: "priority"},
		{name: "status enum", mutate: func(p *model.CreateTaskParams) { p.Status = "BLOCKED" }, field: "status"},
		{name: "missing priority", mutate: func(p *model.CreateTaskParams) { p.Priority = "" }, field: "priority"},
		{name: "project id", mutate: func(p *model.CreateTaskParams) { p.ProjectID = "p1" }, field: "projectId"},
		{name: "deadline format", mutate: func(p *model.CreateTaskParams) { p.Deadline = testutil.StrPtr("15/04/2025") }, field: "deadline"},
		{name: "assignee id", mutate: func(p *model.CreateTaskParams) { p.UserID = testutil.StrPtr("bob") }, field: "userId"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture(t)
			params := valid()
			tt.mutate(&params)

			_, err := f.taskService(false).Create(testutil.ContextWithSession(context.Background(), uuid.New()), params)
			require.True(t, apierror.IsKind(err, apierror.InvalidInput), "got %v", err)
			assert.Contains(t, err.Error(), tt.field)
			assert.Empty(t, f.tasks.Calls)
		})
	}
}

func TestTask_Create_PersistsOneTaskOwnedBySession(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	me, projectID := uuid.New(), uuid.New()

	f.projects.On("IsMember", mock.Anything, projectID, me).Return(true, nil)
	f.tasks.On("Create", mock.Anything, mock.Anything).Return(echoTask).Once()

	task, err := f.taskService(false).Create(testutil.ContextWithSession(context.Background(), me), model.CreateTaskParams{
		ProjectID: projectID.String(),
		Title:     "  Write docs ",
		Priority:  "HIGH",
		Status:    "IN_PROGRESS",
		Tags:      []string{" docs ", "", "  ", "q2"},
	})
	require.NoError(t, err)

	f.tasks.AssertNumberOfCalls(t, "Create", 1)
	assert.Equal(t, me, task.CreatedByID)
	assert.Equal(t, "Write docs", task.Title)
	assert.Equal(t, []string{"docs", "q2"}, task.Tags)
	assert.Nil(t, task.UserID)
	assert.Nil(t, task.Deadline)
}

func TestTask_Create_UnknownAssigneeIsNotFound(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	me, projectID := uuid.New(), uuid.New()

	f.projects.On("IsMember", mock.Anything, projectID, me).Return(true, nil)
	f.tasks.On("Create", mock.Anything, mock.Anything).
		Return(model.Task{}, fmt.Errorf("failed to create task: %w", model.ErrReferenceNotFound)).Once()

	_, err := f.taskService(false).Create(testutil.ContextWithSession(context.Background(), me), model.CreateTaskParams{
		ProjectID: projectID.String(),
		Title:     "Review",
		Priority:  "LOW",
		Status:    "TODO",
		UserID:    testutil.StrPtr(uuid.NewString()),
	})

	require.True(t, apierror.IsKind(err, apierror.NotFound), "got %v", err)
	assert.False(t, apierror.IsKind(err, apierror.Conflict))
}

func TestTask_Create_DeadlineRoundTrip(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	me, projectID := uuid.New(), uuid.New()

	f.projects.On("IsMember", mock.Anything, projectID, me).Return(true, nil)
	f.tasks.On("Create", mock.Anything, mock.Anything).Return(echoTask)

	task, err := f.taskService(false).Create(testutil.ContextWithSession(context.Background(), me), model.CreateTaskParams{
		ProjectID: projectID.String(),
		Title:     "T",
		Priority:  "MEDIUM",
		Status:    "TODO",
		Deadline:  testutil.StrPtr("2025-04-15"),
	})
	require.NoError(t, err)
	require.NotNil(t, task.Deadline)
	assert.Equal(t, "2025-04-15", task.Deadline.Format("2006-01-02"))

	raw, err := json.Marshal(task)
	require.NoError(t, err)
	var decoded model.Task
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "2025-04-15", decoded.Deadline.UTC().Format("2006-01-02"))
}

func TestTask_Scenario_CreateInOwnProject(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	a := uuid.New()
	ctx := testutil.ContextWithSession(context.Background(), a)

	var stored model.Project
	f.projects.On("Create", mock.Anything, mock.Anything, []uuid.UUID{a}).
		Return(func(_ context.Context, p model.Project, _ []uuid.UUID) (model.Project, error) {
			stored = p
			return p, nil
		})

	project, err := f.projectService(false).Create(ctx, model.CreateProjectParams{Name: "P"})
	require.NoError(t, err)

	f.projects.On("IsMember", mock.Anything, project.ID, a).Return(true, nil)
	f.tasks.On("Create", mock.Anything, mock.Anything).Return(echoTask)

	task, err := f.taskService(false).Create(ctx, model.CreateTaskParams{
		ProjectID: project.ID.String(),
		Title:     "T",
		Priority:  "MEDIUM",
		Status:    "TODO",
		Deadline:  nil,
		Tags:      []string{},
	})
	require.NoError(t, err)

	assert.Equal(t, stored.ID, task.ProjectID)
	assert.Equal(t, a, task.CreatedByID)
	assert.Nil(t, task.UserID)
	assert.Equal(t, model.TaskStatusTodo, task.Status)
	assert.Equal(t, []string{}, task.Tags)
}

func TestTask_Create_StrangerForbidden(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	me, projectID := uuid.New(), uuid.New()
	f.projects.On("IsMember", mock.Anything, projectID, me).Return(false, nil)

	_, err := f.taskService(false).Create(testutil.ContextWithSession(context.Background(), me), model.CreateTaskParams{
		ProjectID: projectID.String(), Title: "T", Priority: "LOW", Status: "TODO",
	})
	assert.True(t, apierror.IsKind(err, apierror.Forbidden))
	assert.Empty(t, f.tasks.Calls)
}

func TestTask_Update_TriStateFields(t *testing.T) {
	t.Parallel()

	me, taskID, projectID, assignee := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	deadline := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		body   string
		expect model.TaskPatch
	}{
		{
			name:   "absent fields keep values",
			body:   `{"status":"DONE"}`,
			expect: model.TaskPatch{Status: statusPtr(model.TaskStatusDone)},
		},
		{
			name:   "null clears deadline and assignee",
			body:   `{"deadline":null,"userId":null}`,
			expect: model.TaskPatch{Deadline: model.Null[time.Time](), UserID: model.Null[uuid.UUID]()},
		},
		{
			name:   "empty assignee clears",
			body:   `{"userId":""}`,
			expect: model.TaskPatch{UserID: model.Null[uuid.UUID]()},
		},
		{
			name:   "values set fields",
			body:   `{"deadline":"2025-05-01T14:00:00+02:00","userId":"` + assignee.String() + `","tags":[" a "]}`,
			expect: model.TaskPatch{Deadline: model.Some(deadline), UserID: model.Some(assignee), Tags: []string{"a"}},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var params model.UpdateTaskParams
			require.NoError(t, json.Unmarshal([]byte(tt.body), &params))
			params.ID = taskID.String()

			f := newFixture(t)
			f.tasks.On("GetByID", mock.Anything, taskID).Return(model.Task{ID: taskID, ProjectID: projectID}, nil)
			f.projects.On("IsMember", mock.Anything, projectID, me).Return(true, nil)
			f.tasks.On("Update", mock.Anything, taskID, tt.expect).Return(model.Task{ID: taskID}, nil)

			_, err := f.taskService(false).Update(testutil.ContextWithSession(context.Background(), me), params)
			require.NoError(t, err)
		})
	}
}

func TestTask_Update_Permissive(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	taskID := uuid.New()
	f.tasks.On("Update", mock.Anything, taskID, model.TaskPatch{Title: testutil.StrPtr("Renamed")}).Return(model.Task{ID: taskID, Title: "Renamed"}, nil)

	task, err := f.taskService(true).Update(testutil.ContextWithSession(context.Background(), uuid.New()), model.UpdateTaskParams{
		ID:    taskID.String(),
		Title: testutil.StrPtr(" Renamed "),
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", task.Title)
	assert.Empty(t, f.projects.Calls)
}

func TestTask_Delete(t *testing.T) {
	t.Parallel()

	me, taskID, projectID := uuid.New(), uuid.New(), uuid.New()
	ctx := testutil.ContextWithSession(context.Background(), me)

	t.Run("missing task", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		f.tasks.On("GetByID", mock.Anything, taskID).Return(model.Task{}, model.ErrNotFound)

		_, err := f.taskService(false).Delete(ctx, model.DeleteTaskParams{ID: taskID.String()})
		assert.True(t, apierror.IsKind(err, apierror.NotFound))
	})

	t.Run("stranger forbidden", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		f.tasks.On("GetByID", mock.Anything, taskID).Return(model.Task{ID: taskID, ProjectID: projectID}, nil)
		f.projects.On("IsMember", mock.Anything, projectID, me).Return(false, nil)

		_, err := f.taskService(false).Delete(ctx, model.DeleteTaskParams{ID: taskID.String()})
		assert.True(t, apierror.IsKind(err, apierror.Forbidden))
		f.tasks.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("member deletes", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		f.tasks.On("GetByID", mock.Anything, taskID).Return(model.Task{ID: taskID, ProjectID: projectID}, nil)
		f.projects.On("IsMember", mock.Anything, projectID, me).Return(true, nil)
		f.tasks.On("Delete", mock.Anything, taskID).Return(model.Task{ID: taskID}, nil)

		deleted, err := f.taskService(false).Delete(ctx, model.DeleteTaskParams{ID: taskID.String()})
		require.NoError(t, err)
		assert.Equal(t, taskID, deleted.ID)
	})
}

func TestTask_GetByProject(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	me, projectID := uuid.New(), uuid.New()
	tasks := []model.Task{{ID: uuid.New(), ProjectID: projectID, CreatedBy: &model.UserSummary{ID: me, Name: "Me"}}}

	f.projects.On("IsMember", mock.Anything, projectID, me).Return(true, nil)
	f.tasks.On("ListByProject", mock.Anything, projectID).Return(tasks, nil)

	got, err := f.taskService(false).GetByProject(testutil.ContextWithSession(context.Background(), me), model.ProjectScopeParams{ProjectID: projectID.String()})
	require.NoError(t, err)
	assert.Equal(t, tasks, got)
}

func statusPtr(s model.TaskStatus) *model.TaskStatus {
	return &s
}
