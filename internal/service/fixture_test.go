package service

import (
	"testing"

	httpctx "github.com/dtroode/taskflow-server/internal/api/http/context"
	"github.com/dtroode/taskflow-server/internal/mocks"
	"github.com/dtroode/taskflow-server/internal/testutil"
)

type fixture struct {
	users    *mocks.UserStore
	profiles *mocks.ProfileStore
	projects *mocks.ProjectStore
	tasks    *mocks.TaskStore
	storage  *mocks.Storage
	gate     *Gate
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	return &fixture{
		users:    mocks.NewUserStore(t),
		profiles: mocks.NewProfileStore(t),
		projects: mocks.NewProjectStore(t),
		tasks:    mocks.NewTaskStore(t),
		storage:  mocks.NewStorage(t),
		gate:     NewGate(httpctx.NewManager()),
	}
}

func (f *fixture) projectService(permissive bool) *Project {
	return NewProject(f.projects, f.gate, NewAccessPolicy(f.projects, permissive), testutil.MakeNoopLogger())
}

func (f *fixture) taskService(permissive bool) *Task {
	return NewTask(f.tasks, f.gate, NewAccessPolicy(f.projects, permissive), testutil.MakeNoopLogger())
}

func (f *fixture) userService(permissive bool) *User {
	return NewUser(f.users, f.gate, NewAccessPolicy(f.projects, permissive), testutil.MakeNoopLogger())
}

func (f *fixture) profileService() *Profile {
	return NewProfile(f.profiles, f.storage, f.gate, testutil.MakeNoopLogger())
}
