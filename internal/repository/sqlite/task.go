package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/dtroode/taskflow-server/internal/model"
)

var _ model.TaskStore = (*TaskRepository)(nil)

const (
	taskColumns = `t.id, t.project_id, t.title, t.description, t.priority, t.status,
	t.deadline, t.tags, t.user_id, t.created_by_id, t.created_at, t.updated_at`
	taskReturning = `id, project_id, title, description, priority, status,
	deadline, tags, user_id, created_by_id, created_at, updated_at`
)

type TaskRepository struct {
	db *DB
}

func NewTaskRepository(db *DB) *TaskRepository {
	return &TaskRepository{
		db: db,
	}
}

// taskRow holds the raw columns of a task until they are decoded.
type taskRow struct {
	task                 model.Task
	description          sql.NullString
	deadline             sql.NullString
	tags                 string
	userID               uuid.NullUUID
	createdAt, updatedAt string
}

func (r *taskRow) dest() []any {
	return []any{
		&r.task.ID, &r.task.ProjectID, &r.task.Title, &r.description, &r.task.Priority, &r.task.Status,
		&r.deadline, &r.tags, &r.userID, &r.task.CreatedByID, &r.createdAt, &r.updatedAt,
	}
}

func (r *taskRow) decode() (model.Task, error) {
	t := r.task
	t.Description = nullString(r.description)
	if r.userID.Valid {
		id := r.userID.UUID
		t.UserID = &id
	}

	t.Tags = []string{}
	if err := json.Unmarshal([]byte(r.tags), &t.Tags); err != nil {
		return model.Task{}, fmt.Errorf("invalid stored tags: %w", err)
	}

	var err error
	if t.Deadline, err = parseNullTime(r.deadline); err != nil {
		return model.Task{}, err
	}
	if t.CreatedAt, err = parseTime(r.createdAt); err != nil {
		return model.Task{}, err
	}
	if t.UpdatedAt, err = parseTime(r.updatedAt); err != nil {
		return model.Task{}, err
	}
	return t, nil
}

func scanTask(row rowScanner) (model.Task, error) {
	var r taskRow
	if err := row.Scan(r.dest()...); err != nil {
		return model.Task{}, err
	}
	return r.decode()
}

func encodeTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return "", fmt.Errorf("failed to encode tags: %w", err)
	}
	return string(b), nil
}

func (r *TaskRepository) Create(ctx context.Context, task model.Task) (model.Task, error) {
	query := `INSERT INTO tasks (id, project_id, title, description, priority, status, deadline, tags, user_id, created_by_id, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			  RETURNING ` + taskReturning

	if task.ID == uuid.Nil {
		task.ID = uuid.New()
	}
	tags, err := encodeTags(task.Tags)
	if err != nil {
		return model.Task{}, err
	}
	now := r.db.timestamp()

	saved, err := scanTask(r.db.QueryRowContext(ctx, query,
		task.ID, task.ProjectID, task.Title, task.Description, string(task.Priority), string(task.Status),
		nullTime(task.Deadline), tags, nullUUID(task.UserID), task.CreatedByID, now, now,
	))
	if err != nil {
		return model.Task{}, mapError(err, "create task")
	}
	return saved, nil
}

func (r *TaskRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks t WHERE t.id = ?`

	task, err := scanTask(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return model.Task{}, mapError(err, "get task")
	}
	return task, nil
}

func (r *TaskRepository) ListByProject(ctx context.Context, projectID uuid.UUID) ([]model.Task, error) {
	query := `SELECT ` + taskColumns + `, a.name, c.name
			  FROM tasks t
			  LEFT JOIN users a ON a.id = t.user_id
			  JOIN users c ON c.id = t.created_by_id
			  WHERE t.project_id = ?
			  ORDER BY t.created_at DESC, t.id`

	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, mapError(err, "list tasks")
	}
	defer rows.Close()

	tasks := []model.Task{}
	for rows.Next() {
		var (
			raw          taskRow
			assigneeName sql.NullString
			creatorName  string
		)
		if err := rows.Scan(append(raw.dest(), &assigneeName, &creatorName)...); err != nil {
			return nil, mapError(err, "scan task")
		}
		task, err := raw.decode()
		if err != nil {
			return nil, err
		}
		if task.UserID != nil && assigneeName.Valid {
			task.AssignedTo = &model.UserSummary{ID: *task.UserID, Name: assigneeName.String}
		}
		task.CreatedBy = &model.UserSummary{ID: task.CreatedByID, Name: creatorName}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "list tasks")
	}

	return tasks, nil
}

// Update writes the present patch fields. Deadline and UserID are written only when Set.
func (r *TaskRepository) Update(ctx context.Context, id uuid.UUID, patch model.TaskPatch) (model.Task, error) {
	query := `UPDATE tasks SET
			      title = COALESCE(?, title),
			      description = COALESCE(?, description),
			      priority = COALESCE(?, priority),
			      status = COALESCE(?, status),
			      tags = COALESCE(?, tags),
			      deadline = CASE WHEN ? THEN ? ELSE deadline END,
			      user_id = CASE WHEN ? THEN ? ELSE user_id END,
			      updated_at = ?
			  WHERE id = ?
			  RETURNING ` + taskReturning

	var tags any
	if patch.Tags != nil {
		encoded, err := encodeTags(patch.Tags)
		if err != nil {
			return model.Task{}, err
		}
		tags = encoded
	}
	var priority, status any
	if patch.Priority != nil {
		priority = string(*patch.Priority)
	}
	if patch.Status != nil {
		status = string(*patch.Status)
	}

	task, err := scanTask(r.db.QueryRowContext(ctx, query,
		patch.Title, patch.Description, priority, status, tags,
		patch.Deadline.Present(), nullTime(patch.Deadline.Ptr()),
		patch.UserID.Present(), nullUUID(patch.UserID.Ptr()),
		r.db.timestamp(), id,
	))
	if err != nil {
		return model.Task{}, mapError(err, "update task")
	}
	return task, nil
}

func (r *TaskRepository) Delete(ctx context.Context, id uuid.UUID) (model.Task, error) {
	query := `DELETE FROM tasks WHERE id = ? RETURNING ` + taskReturning

	task, err := scanTask(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return model.Task{}, mapError(err, "delete task")
	}
	return task, nil
}

// listByProjects loads the plain tasks of several projects keyed by project id.
func listByProjects(ctx context.Context, q querier, projectIDs []uuid.UUID) (map[uuid.UUID][]model.Task, error) {
	query := `SELECT ` + taskColumns + `
			  FROM tasks t
			  WHERE t.project_id IN (` + placeholders(len(projectIDs)) + `)
			  ORDER BY t.created_at DESC, t.id`

	rows, err := q.QueryContext(ctx, query, idArgs(projectIDs)...)
	if err != nil {
		return nil, mapError(err, "list project tasks")
	}
	defer rows.Close()

	byProject := make(map[uuid.UUID][]model.Task, len(projectIDs))
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, mapError(err, "scan project task")
		}
		byProject[task.ProjectID] = append(byProject[task.ProjectID], task)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "list project tasks")
	}

	return byProject, nil
}

func nullUUID(id *uuid.UUID) any {
	if id == nil {
		return nil
	}
	return id.String()
}

func idArgs(ids []uuid.UUID) []any {
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	return args
}
