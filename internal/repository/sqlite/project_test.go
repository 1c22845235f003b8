package sqlite

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/taskflow-server/internal/model"
)

var projectCols = []string{"id", "name", "description", "status", "created_by_id", "created_at", "updated_at"}

func TestProjectRepository_Create(t *testing.T) {
	projectID, owner, member := uuid.New(), uuid.New(), uuid.New()
	project := model.Project{ID: projectID, Name: "Launch", Status: model.ProjectStatusActive, CreatedByID: owner}
	insertProject := regexp.QuoteMeta(`INSERT INTO projects (id, name, description, status, created_by_id, created_at, updated_at)`)
	insertMember := regexp.QuoteMeta(`INSERT INTO project_members (project_id, user_id) VALUES (?, ?) ON CONFLICT DO NOTHING`)

	t.Run("writes project and members in one transaction", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectBegin()
		mock.ExpectQuery(insertProject).
			WithArgs(projectID, "Launch", nil, "ACTIVE", owner, fixedStamp, fixedStamp).
			WillReturnRows(sqlmock.NewRows(projectCols).
				AddRow(projectID.String(), "Launch", nil, "ACTIVE", owner.String(), fixedStamp, fixedStamp))
		mock.ExpectExec(insertMember).WithArgs(projectID, owner).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(insertMember).WithArgs(projectID, member).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(regexp.QuoteMeta(`WHERE pm.project_id IN (?)`)).
			WithArgs(projectID).
			WillReturnRows(sqlmock.NewRows([]string{"project_id", "id", "name"}).
				AddRow(projectID.String(), member.String(), "Member").
				AddRow(projectID.String(), owner.String(), "Owner"))
		mock.ExpectCommit()

		saved, err := NewProjectRepository(db).Create(context.Background(), project, []uuid.UUID{owner, member})
		require.NoError(t, err)
		assert.Equal(t, projectID, saved.ID)
		assert.Nil(t, saved.Description)
		assert.Len(t, saved.Members, 2)
		assert.NotNil(t, saved.Tasks)
	})

	t.Run("rolls back when a member insert fails", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectBegin()
		mock.ExpectQuery(insertProject).
			WillReturnRows(sqlmock.NewRows(projectCols).
				AddRow(projectID.String(), "Launch", nil, "ACTIVE", owner.String(), fixedStamp, fixedStamp))
		mock.ExpectExec(insertMember).WithArgs(projectID, owner).WillReturnError(errors.New("disk full"))
		mock.ExpectRollback()

		_, err := NewProjectRepository(db).Create(context.Background(), project, []uuid.UUID{owner})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "add project member")
	})
}

func TestProjectRepository_IsMember(t *testing.T) {
	query := regexp.QuoteMeta(`SELECT p.created_by_id = ?`)
	projectID, userID := uuid.New(), uuid.New()

	t.Run("member", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(query).
			WithArgs(userID, userID, projectID).
			WillReturnRows(sqlmock.NewRows([]string{"member"}).AddRow(int64(1)))

		ok, err := NewProjectRepository(db).IsMember(context.Background(), projectID, userID)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("missing project", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(query).
			WithArgs(userID, userID, projectID).
			WillReturnRows(sqlmock.NewRows([]string{"member"}))

		_, err := NewProjectRepository(db).IsMember(context.Background(), projectID, userID)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

func TestProjectRepository_Update_ReaddsCreator(t *testing.T) {
	db, mock := newMockDB(t)
	projectID, owner, other := uuid.New(), uuid.New(), uuid.New()
	name := "Renamed"

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE projects SET`)).
		WithArgs(name, nil, nil, fixedStamp, projectID).
		WillReturnRows(sqlmock.NewRows(projectCols).
			AddRow(projectID.String(), name, nil, "ACTIVE", owner.String(), fixedStamp, fixedStamp))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM project_members WHERE project_id = ?`)).
		WithArgs(projectID).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO project_members`)).WithArgs(projectID, owner).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO project_members`)).WithArgs(projectID, other).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE pm.project_id IN (?)`)).
		WithArgs(projectID).
		WillReturnRows(sqlmock.NewRows([]string{"project_id", "id", "name"}).
			AddRow(projectID.String(), owner.String(), "Owner").
			AddRow(projectID.String(), other.String(), "Other"))
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE t.project_id IN (?)`)).
		WithArgs(projectID).
		WillReturnRows(sqlmock.NewRows(taskCols))

	updated, err := NewProjectRepository(db).Update(context.Background(), projectID, model.ProjectPatch{
		Name:      &name,
		MemberIDs: []uuid.UUID{other},
	})
	require.NoError(t, err)
	assert.Equal(t, name, updated.Name)
	assert.Len(t, updated.Members, 2)
	assert.Empty(t, updated.Tasks)
}

func TestProjectRepository_Delete_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`DELETE FROM projects WHERE id = ?`)).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(projectCols))

	_, err := NewProjectRepository(db).Delete(context.Background(), id)
	assert.ErrorIs(t, err, model.ErrNotFound)
}
