package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/taskflow-server/internal/apierror"
	"github.com/dtroode/taskflow-server/internal/model"
	"github.com/dtroode/taskflow-server/internal/testutil"
)

func TestUser_GetProjectMembers(t *testing.T) {
	t.Parallel()

	me, projectID := uuid.New(), uuid.New()
	ctx := testutil.ContextWithSession(context.Background(), me)
	members := []model.UserSummary{{ID: me, Name: "Me"}, {ID: uuid.New(), Name: "Bob"}}

	t.Run("member lists", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		f.projects.On("IsMember", mock.Anything, projectID, me).Return(true, nil)
		f.users.On("ListByProject", mock.Anything, projectID).Return(members, nil)

		got, err := f.userService(false).GetProjectMembers(ctx, model.ProjectScopeParams{ProjectID: projectID.String()})
		require.NoError(t, err)
		assert.Equal(t, members, got)
	})

	t.Run("stranger forbidden", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		f.projects.On("IsMember", mock.Anything, projectID, me).Return(false, nil)

		_, err := f.userService(false).GetProjectMembers(ctx, model.ProjectScopeParams{ProjectID: projectID.String()})
		assert.True(t, apierror.IsKind(err, apierror.Forbidden))
		assert.Empty(t, f.users.Calls)
	})

	t.Run("permissive lists for anyone", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		f.users.On("ListByProject", mock.Anything, projectID).Return(members, nil)

		got, err := f.userService(true).GetProjectMembers(ctx, model.ProjectScopeParams{ProjectID: projectID.String()})
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("anonymous", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		_, err := f.userService(false).GetProjectMembers(context.Background(), model.ProjectScopeParams{ProjectID: projectID.String()})
		assert.True(t, apierror.IsKind(err, apierror.Unauthorized))
	})
}
