package sqlite

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/dtroode/taskflow-server/internal/model"
)

var _ model.ProjectStore = (*ProjectRepository)(nil)

const (
	projectColumns   = `p.id, p.name, p.description, p.status, p.created_by_id, p.created_at, p.updated_at`
	projectReturning = `id, name, description, status, created_by_id, created_at, updated_at`
)

type ProjectRepository struct {
	db *DB
}

func NewProjectRepository(db *DB) *ProjectRepository {
	return &ProjectRepository{
		db: db,
	}
}

func scanProject(row rowScanner) (model.Project, error) {
	var (
		p                    model.Project
		description          sql.NullString
		createdAt, updatedAt string
	)
	if err := row.Scan(&p.ID, &p.Name, &description, &p.Status, &p.CreatedByID, &createdAt, &updatedAt); err != nil {
		return model.Project{}, err
	}

	p.Description = nullString(description)
	var err error
	if p.CreatedAt, err = parseTime(createdAt); err != nil {
		return model.Project{}, err
	}
	if p.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return model.Project{}, err
	}
	return p, nil
}

// Create inserts the project and its members in one transaction.
func (r *ProjectRepository) Create(ctx context.Context, project model.Project, memberIDs []uuid.UUID) (model.Project, error) {
	query := `INSERT INTO projects (id, name, description, status, created_by_id, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?)
			  RETURNING ` + projectReturning

	if project.ID == uuid.Nil {
		project.ID = uuid.New()
	}
	now := r.db.timestamp()

	var saved model.Project
	err := r.db.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		saved, err = scanProject(tx.QueryRowContext(ctx, query,
			project.ID, project.Name, project.Description, string(project.Status), project.CreatedByID, now, now,
		))
		if err != nil {
			return mapError(err, "create project")
		}

		if err := addMembers(ctx, tx, saved.ID, memberIDs); err != nil {
			return err
		}

		members, err := listMembers(ctx, tx, []uuid.UUID{saved.ID})
		if err != nil {
			return err
		}
		saved.Members = members[saved.ID]
		return nil
	})
	if err != nil {
		return model.Project{}, err
	}

	if saved.Members == nil {
		saved.Members = []model.UserSummary{}
	}
	saved.Tasks = []model.Task{}
	return saved, nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects p WHERE p.id = ?`

	project, err := scanProject(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return model.Project{}, mapError(err, "get project")
	}

	projects, err := r.withRelations(ctx, []model.Project{project})
	if err != nil {
		return model.Project{}, err
	}
	return projects[0], nil
}

func (r *ProjectRepository) ListForUser(ctx context.Context, userID uuid.UUID) ([]model.Project, error) {
	query := `SELECT ` + projectColumns + `
			  FROM projects p
			  WHERE p.created_by_id = ?
			     OR EXISTS (SELECT 1 FROM project_members pm WHERE pm.project_id = p.id AND pm.user_id = ?)
			  ORDER BY p.created_at DESC, p.id`

	rows, err := r.db.QueryContext(ctx, query, userID, userID)
	if err != nil {
		return nil, mapError(err, "list projects")
	}
	defer rows.Close()

	projects := []model.Project{}
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, mapError(err, "scan project")
		}
		projects = append(projects, project)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "list projects")
	}

	return r.withRelations(ctx, projects)
}

// Update applies the patch in one transaction. A non-nil MemberIDs replaces the
// member set, and the creator always stays a member.
func (r *ProjectRepository) Update(ctx context.Context, id uuid.UUID, patch model.ProjectPatch) (model.Project, error) {
	query := `UPDATE projects SET
			      name = COALESCE(?, name),
			      description = COALESCE(?, description),
			      status = COALESCE(?, status),
			      updated_at = ?
			  WHERE id = ?
			  RETURNING ` + projectReturning

	var status any
	if patch.Status != nil {
		status = string(*patch.Status)
	}

	var saved model.Project
	err := r.db.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		saved, err = scanProject(tx.QueryRowContext(ctx, query,
			patch.Name, patch.Description, status, r.db.timestamp(), id,
		))
		if err != nil {
			return mapError(err, "update project")
		}

		if patch.MemberIDs != nil {
			if _, err := tx.ExecContext(ctx, `DELETE FROM project_members WHERE project_id = ?`, id); err != nil {
				return mapError(err, "clear project members")
			}
			memberIDs := append([]uuid.UUID{saved.CreatedByID}, patch.MemberIDs...)
			if err := addMembers(ctx, tx, id, memberIDs); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return model.Project{}, err
	}

	projects, err := r.withRelations(ctx, []model.Project{saved})
	if err != nil {
		return model.Project{}, err
	}
	return projects[0], nil
}

// Delete removes the project; tasks and memberships cascade.
func (r *ProjectRepository) Delete(ctx context.Context, id uuid.UUID) (model.Project, error) {
	query := `DELETE FROM projects WHERE id = ? RETURNING ` + projectReturning

	project, err := scanProject(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return model.Project{}, mapError(err, "delete project")
	}
	return project, nil
}

// IsMember reports whether the user created or belongs to the project.
// A missing project yields model.ErrNotFound.
func (r *ProjectRepository) IsMember(ctx context.Context, projectID, userID uuid.UUID) (bool, error) {
	query := `SELECT p.created_by_id = ?
			      OR EXISTS (SELECT 1 FROM project_members pm WHERE pm.project_id = p.id AND pm.user_id = ?)
			  FROM projects p
			  WHERE p.id = ?`

	var member bool
	if err := r.db.QueryRowContext(ctx, query, userID, userID, projectID).Scan(&member); err != nil {
		return false, mapError(err, "check project membership")
	}
	return member, nil
}

func (r *ProjectRepository) withRelations(ctx context.Context, projects []model.Project) ([]model.Project, error) {
	if len(projects) == 0 {
		return projects, nil
	}

	ids := make([]uuid.UUID, len(projects))
	for i, p := range projects {
		ids[i] = p.ID
	}

	members, err := listMembers(ctx, r.db, ids)
	if err != nil {
		return nil, err
	}
	tasks, err := listByProjects(ctx, r.db, ids)
	if err != nil {
		return nil, err
	}

	for i := range projects {
		projects[i].Members = members[projects[i].ID]
		if projects[i].Members == nil {
			projects[i].Members = []model.UserSummary{}
		}
		projects[i].Tasks = tasks[projects[i].ID]
		if projects[i].Tasks == nil {
			projects[i].Tasks = []model.Task{}
		}
	}
	return projects, nil
}

func addMembers(ctx context.Context, q querier, projectID uuid.UUID, memberIDs []uuid.UUID) error {
	for _, userID := range memberIDs {
		_, err := q.ExecContext(ctx,
			`INSERT INTO project_members (project_id, user_id) VALUES (?, ?) ON CONFLICT DO NOTHING`,
			projectID, userID)
		if err != nil {
			return mapError(err, "add project member")
		}
	}
	return nil
}

func listMembers(ctx context.Context, q querier, projectIDs []uuid.UUID) (map[uuid.UUID][]model.UserSummary, error) {
	query := `SELECT pm.project_id, u.id, u.name
			  FROM project_members pm
			  JOIN users u ON u.id = pm.user_id
			  WHERE pm.project_id IN (` + placeholders(len(projectIDs)) + `)
			  ORDER BY u.name, u.id`

	rows, err := q.QueryContext(ctx, query, idArgs(projectIDs)...)
	if err != nil {
		return nil, mapError(err, "list project members")
	}
	defer rows.Close()

	byProject := make(map[uuid.UUID][]model.UserSummary, len(projectIDs))
	for rows.Next() {
		var (
			projectID uuid.UUID
			member    model.UserSummary
		)
		if err := rows.Scan(&projectID, &member.ID, &member.Name); err != nil {
			return nil, mapError(err, "scan project member")
		}
		byProject[projectID] = append(byProject[projectID], member)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "list project members")
	}
	return byProject, nil
}
