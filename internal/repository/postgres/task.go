package postgres

import (
	"context"

	"github.com/google/uuid"

	"github.com/dtroode/taskflow-server/internal/model"
)

var _ model.TaskStore = (*TaskRepository)(nil)

const taskColumns = `t.id, t.project_id, t.title, t.description, t.priority, t.status,
	t.deadline, t.tags, t.user_id, t.created_by_id, t.created_at, t.updated_at`

type TaskRepository struct {
	db *Connection
}

func NewTaskRepository(db *Connection) *TaskRepository {
	return &TaskRepository{
		db: db,
	}
}

func taskDest(t *model.Task) []any {
	return []any{
		&t.ID, &t.ProjectID, &t.Title, &t.Description, &t.Priority, &t.Status,
		&t.Deadline, &t.Tags, &t.UserID, &t.CreatedByID, &t.CreatedAt, &t.UpdatedAt,
	}
}

func (r *TaskRepository) Create(ctx context.Context, task model.Task) (model.Task, error) {
	query := `INSERT INTO tasks AS t (id, project_id, title, description, priority, status, deadline, tags, user_id, created_by_id)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			  RETURNING ` + taskColumns

	if task.ID == uuid.Nil {
		task.ID = uuid.New()
	}
	tags := task.Tags
	if tags == nil {
		tags = []string{}
	}

	var saved model.Task
	err := r.db.QueryRow(ctx, query,
		task.ID, task.ProjectID, task.Title, task.Description, task.Priority, task.Status,
		task.Deadline, tags, task.UserID, task.CreatedByID,
	).Scan(taskDest(&saved)...)
	if err != nil {
		return model.Task{}, mapError(err, "create task")
	}

	return saved, nil
}

func (r *TaskRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks t WHERE t.id = $1`

	var task model.Task
	if err := r.db.QueryRow(ctx, query, id).Scan(taskDest(&task)...); err != nil {
		return model.Task{}, mapError(err, "get task")
	}

	return task, nil
}

func (r *TaskRepository) ListByProject(ctx context.Context, projectID uuid.UUID) ([]model.Task, error) {
	query := `SELECT ` + taskColumns + `, a.name, c.name
			  FROM tasks t
			  LEFT JOIN users a ON a.id = t.user_id
			  JOIN users c ON c.id = t.created_by_id
			  WHERE t.project_id = $1
			  ORDER BY t.created_at DESC, t.id`

	rows, err := r.db.Query(ctx, query, projectID)
	if err != nil {
		return nil, mapError(err, "list tasks")
	}
	defer rows.Close()

	tasks := []model.Task{}
	for rows.Next() {
		var (
			task         model.Task
			assigneeName *string
			creatorName  string
		)
		dest := append(taskDest(&task), &assigneeName, &creatorName)
		if err := rows.Scan(dest...); err != nil {
			return nil, mapError(err, "scan task")
		}
		if task.UserID != nil && assigneeName != nil {
			task.AssignedTo = &model.UserSummary{ID: *task.UserID, Name: *assigneeName}
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
	query := `UPDATE tasks t SET
			      title = COALESCE($2, t.title),
			      description = COALESCE($3, t.description),
			      priority = COALESCE($4, t.priority),
			      status = COALESCE($5, t.status),
			      tags = COALESCE($6::text[], t.tags),
			      deadline = CASE WHEN $7::boolean THEN $8::timestamptz ELSE t.deadline END,
			      user_id = CASE WHEN $9::boolean THEN $10::uuid ELSE t.user_id END,
			      updated_at = NOW()
			  WHERE t.id = $1
			  RETURNING ` + taskColumns

	var task model.Task
	err := r.db.QueryRow(ctx, query,
		id, patch.Title, patch.Description, patch.Priority, patch.Status, patch.Tags,
		patch.Deadline.Present(), patch.Deadline.Ptr(), patch.UserID.Present(), patch.UserID.Ptr(),
	).Scan(taskDest(&task)...)
	if err != nil {
		return model.Task{}, mapError(err, "update task")
	}

	return task, nil
}

func (r *TaskRepository) Delete(ctx context.Context, id uuid.UUID) (model.Task, error) {
	query := `DELETE FROM tasks t WHERE t.id = $1 RETURNING ` + taskColumns

	var task model.Task
	if err := r.db.QueryRow(ctx, query, id).Scan(taskDest(&task)...); err != nil {
		return model.Task{}, mapError(err, "delete task")
	}

	return task, nil
}

// listByProjects loads the plain tasks of several projects keyed by project id.
func listByProjects(ctx context.Context, q querier, projectIDs []uuid.UUID) (map[uuid.UUID][]model.Task, error) {
	query := `SELECT ` + taskColumns + `
			  FROM tasks t
			  WHERE t.project_id = ANY($1)
			  ORDER BY t.created_at DESC, t.id`

	rows, err := q.Query(ctx, query, projectIDs)
	if err != nil {
		return nil, mapError(err, "list project tasks")
	}
	defer rows.Close()

	byProject := make(map[uuid.UUID][]model.Task, len(projectIDs))
	for rows.Next() {
		var task model.Task
		if err := rows.Scan(taskDest(&task)...); err != nil {
			return nil, mapError(err, "scan project task")
		}
		byProject[task.ProjectID] = append(byProject[task.ProjectID], task)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "list project tasks")
	}

	return byProject, nil
}
