package service_test

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Jupiter-12/kanban/internal/core/domain"
	"github.com/Jupiter-12/kanban/internal/core/ports"
)

// memStore is a shared in-memory backing for the repository fakes. The shift
// primitives apply position deltas verbatim; the range arithmetic under test
// lives in the services.
type memStore struct {
	mu       sync.Mutex
	users    map[uint64]domain.User
	projects map[uint64]domain.Project
	columns  map[uint64]domain.Column
	tasks    map[uint64]domain.Task
	comments map[uint64]domain.Comment
	nextID   uint64
}

func newMemStore() *memStore {
	return &memStore{
		users:    make(map[uint64]domain.User),
		projects: make(map[uint64]domain.Project),
		columns:  make(map[uint64]domain.Column),
		tasks:    make(map[uint64]domain.Task),
		comments: make(map[uint64]domain.Comment),
	}
}

func (s *memStore) id() uint64 {
	s.nextID++
	return s.nextID
}

// noopTx satisfies ports.Transactor; the fakes have no transactional state.
type noopTx struct{}

func (noopTx) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeUserRepo struct{ store *memStore }

var _ ports.UserRepository = (*fakeUserRepo)(nil)

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	user.ID = r.store.id()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	r.store.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uint64) (domain.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	user, ok := r.store.users[id]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (domain.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, user := range r.store.users {
		if user.Username == username {
			return user, nil
		}
	}
	return domain.User{}, domain.ErrUserNotFound
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (domain.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, user := range r.store.users {
		if user.Email == email {
			return user, nil
		}
	}
	return domain.User{}, domain.ErrUserNotFound
}

func (r *fakeUserRepo) List(_ context.Context, onlyActive bool) ([]domain.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	users := make([]domain.User, 0, len(r.store.users))
	for _, user := range r.store.users {
		if onlyActive && !user.Active {
			continue
		}
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (r *fakeUserRepo) Count(_ context.Context) (int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return len(r.store.users), nil
}

func (r *fakeUserRepo) UpdateRole(_ context.Context, id uint64, role domain.Role) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	user, ok := r.store.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	user.Role = role
	r.store.users[id] = user
	return nil
}

func (r *fakeUserRepo) SetActive(_ context.Context, id uint64, active bool) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	user, ok := r.store.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	user.Active = active
	r.store.users[id] = user
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id uint64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.store.users, id)
	return nil
}

type fakeProjectRepo struct{ store *memStore }

var _ ports.ProjectRepository = (*fakeProjectRepo)(nil)

func (r *fakeProjectRepo) Create(_ context.Context, project *domain.Project) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	project.ID = r.store.id()
	project.CreatedAt = time.Now()
	project.UpdatedAt = project.CreatedAt
	r.store.projects[project.ID] = *project
	return nil
}

func (r *fakeProjectRepo) GetByID(_ context.Context, id uint64) (domain.Project, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	project, ok := r.store.projects[id]
	if !ok {
		return domain.Project{}, domain.ErrProjectNotFound
	}
	return project, nil
}

func (r *fakeProjectRepo) list(ownerID *uint64) []domain.Project {
	projects := make([]domain.Project, 0, len(r.store.projects))
	for _, project := range r.store.projects {
		if ownerID != nil && project.OwnerID != *ownerID {
			continue
		}
		projects = append(projects, project)
	}
	// Newest first, matching the repository ordering contract.
	sort.Slice(projects, func(i, j int) bool { return projects[i].ID > projects[j].ID })
	return projects
}

func page(projects []domain.Project, limit, offset int) []domain.Project {
	if offset >= len(projects) {
		return nil
	}
	end := offset + limit
	if end > len(projects) {
		end = len(projects)
	}
	return projects[offset:end]
}

func (r *fakeProjectRepo) ListByOwner(_ context.Context, ownerID uint64, limit, offset int) ([]domain.Project, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return page(r.list(&ownerID), limit, offset), nil
}

func (r *fakeProjectRepo) CountByOwner(_ context.Context, ownerID uint64) (int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return len(r.list(&ownerID)), nil
}

func (r *fakeProjectRepo) ListAll(_ context.Context, limit, offset int) ([]domain.Project, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return page(r.list(nil), limit, offset), nil
}

func (r *fakeProjectRepo) CountAll(_ context.Context) (int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return len(r.store.projects), nil
}

func (r *fakeProjectRepo) Update(_ context.Context, project domain.Project) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.projects[project.ID]; !ok {
		return domain.ErrProjectNotFound
	}
	r.store.projects[project.ID] = project
	return nil
}

func (r *fakeProjectRepo) Delete(_ context.Context, id uint64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.projects[id]; !ok {
		return domain.ErrProjectNotFound
	}
	delete(r.store.projects, id)
	for columnID, column := range r.store.columns {
		if column.ProjectID != id {
			continue
		}
		delete(r.store.columns, columnID)
		for taskID, task := range r.store.tasks {
			if task.ColumnID == columnID {
				delete(r.store.tasks, taskID)
			}
		}
	}
	return nil
}

type fakeColumnRepo struct{ store *memStore }

var _ ports.ColumnRepository = (*fakeColumnRepo)(nil)

func (r *fakeColumnRepo) Create(_ context.Context, column *domain.Column) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	column.ID = r.store.id()
	r.store.columns[column.ID] = *column
	return nil
}

func (r *fakeColumnRepo) GetByID(_ context.Context, id uint64) (domain.Column, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	column, ok := r.store.columns[id]
	if !ok {
		return domain.Column{}, domain.ErrColumnNotFound
	}
	return column, nil
}

func (r *fakeColumnRepo) ListByProject(_ context.Context, projectID uint64) ([]domain.Column, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	columns := make([]domain.Column, 0)
	for _, column := range r.store.columns {
		if column.ProjectID == projectID {
			columns = append(columns, column)
		}
	}
	sort.Slice(columns, func(i, j int) bool { return columns[i].Position < columns[j].Position })
	return columns, nil
}

func (r *fakeColumnRepo) CountByProject(_ context.Context, projectID uint64) (int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	count := 0
	for _, column := range r.store.columns {
		if column.ProjectID == projectID {
			count++
		}
	}
	return count, nil
}

func (r *fakeColumnRepo) Rename(_ context.Context, id uint64, name string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	column, ok := r.store.columns[id]
	if !ok {
		return domain.ErrColumnNotFound
	}
	column.Name = name
	r.store.columns[id] = column
	return nil
}

func (r *fakeColumnRepo) Delete(_ context.Context, id uint64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.columns[id]; !ok {
		return domain.ErrColumnNotFound
	}
	delete(r.store.columns, id)
	for taskID, task := range r.store.tasks {
		if task.ColumnID == id {
			delete(r.store.tasks, taskID)
		}
	}
	return nil
}

func (r *fakeColumnRepo) ShiftPositions(_ context.Context, projectID uint64, from, to, delta int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for id, column := range r.store.columns {
		if column.ProjectID != projectID {
			continue
		}
		if column.Position >= from && (to < 0 || column.Position <= to) {
			column.Position += delta
			r.store.columns[id] = column
		}
	}
	return nil
}

func (r *fakeColumnRepo) SetPositions(_ context.Context, projectID uint64, orderedIDs []uint64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for index, id := range orderedIDs {
		column, ok := r.store.columns[id]
		if !ok || column.ProjectID != projectID {
			continue
		}
		column.Position = index
		r.store.columns[id] = column
	}
	return nil
}

type fakeTaskRepo struct{ store *memStore }

var _ ports.TaskRepository = (*fakeTaskRepo)(nil)

func (r *fakeTaskRepo) Create(_ context.Context, task *domain.Task) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	task.ID = r.store.id()
	r.store.tasks[task.ID] = *task
	return nil
}

func (r *fakeTaskRepo) GetByID(_ context.Context, id uint64) (domain.Task, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	task, ok := r.store.tasks[id]
	if !ok {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	return task, nil
}

func (r *fakeTaskRepo) ListByColumn(_ context.Context, columnID uint64) ([]domain.Task, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	tasks := make([]domain.Task, 0)
	for _, task := range r.store.tasks {
		if task.ColumnID == columnID {
			tasks = append(tasks, task)
		}
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].Position < tasks[j].Position })
	return tasks, nil
}

func (r *fakeTaskRepo) CountByColumn(_ context.Context, columnID uint64) (int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	count := 0
	for _, task := range r.store.tasks {
		if task.ColumnID == columnID {
			count++
		}
	}
	return count, nil
}

func (r *fakeTaskRepo) ListByProject(_ context.Context, projectID uint64, filter domain.TaskFilter) ([]domain.Task, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	tasks := make([]domain.Task, 0)
	for _, task := range r.store.tasks {
		column, ok := r.store.columns[task.ColumnID]
		if !ok || column.ProjectID != projectID {
			continue
		}
		if matchesFilter(task, filter) {
			tasks = append(tasks, task)
		}
	}
	sort.Slice(tasks, func(i, j int) bool {
		if tasks[i].ColumnID != tasks[j].ColumnID {
			return tasks[i].ColumnID < tasks[j].ColumnID
		}
		return tasks[i].Position < tasks[j].Position
	})
	return tasks, nil
}

func matchesFilter(task domain.Task, filter domain.TaskFilter) bool {
	if filter.Keyword != "" && !strings.Contains(strings.ToLower(task.Title), strings.ToLower(filter.Keyword)) {
		return false
	}
	if filter.AssigneeID != nil && (task.AssigneeID == nil || *task.AssigneeID != *filter.AssigneeID) {
		return false
	}
	if filter.Priority != nil && task.Priority != *filter.Priority {
		return false
	}
	if filter.DueFrom != nil && (task.DueDate == nil || task.DueDate.Before(*filter.DueFrom)) {
		return false
	}
	if filter.DueTo != nil && (task.DueDate == nil || task.DueDate.After(*filter.DueTo)) {
		return false
	}
	return true
}

func (r *fakeTaskRepo) Update(_ context.Context, task domain.Task) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.tasks[task.ID]; !ok {
		return domain.ErrTaskNotFound
	}
	r.store.tasks[task.ID] = task
	return nil
}

func (r *fakeTaskRepo) Delete(_ context.Context, id uint64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.tasks[id]; !ok {
		return domain.ErrTaskNotFound
	}
	delete(r.store.tasks, id)
	return nil
}

func (r *fakeTaskRepo) ShiftPositions(_ context.Context, columnID uint64, from, to, delta int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for id, task := range r.store.tasks {
		if task.ColumnID != columnID {
			continue
		}
		if task.Position >= from && (to < 0 || task.Position <= to) {
			task.Position += delta
			r.store.tasks[id] = task
		}
	}
	return nil
}

func (r *fakeTaskRepo) SetColumnAndPosition(_ context.Context, id, columnID uint64, position int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	task, ok := r.store.tasks[id]
	if !ok {
		return domain.ErrTaskNotFound
	}
	task.ColumnID = columnID
	task.Position = position
	r.store.tasks[id] = task
	return nil
}

type fakeCommentRepo struct{ store *memStore }

var _ ports.CommentRepository = (*fakeCommentRepo)(nil)

func (r *fakeCommentRepo) Create(_ context.Context, comment *domain.Comment) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	comment.ID = r.store.id()
	comment.CreatedAt = time.Now()
	r.store.comments[comment.ID] = *comment
	return nil
}

func (r *fakeCommentRepo) GetByID(_ context.Context, id uint64) (domain.Comment, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	comment, ok := r.store.comments[id]
	if !ok {
		return domain.Comment{}, domain.ErrCommentNotFound
	}
	return comment, nil
}

func (r *fakeCommentRepo) ListByTask(_ context.Context, taskID uint64) ([]domain.Comment, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	comments := make([]domain.Comment, 0)
	for _, comment := range r.store.comments {
		if comment.TaskID == taskID {
			comments = append(comments, comment)
		}
	}
	sort.Slice(comments, func(i, j int) bool { return comments[i].ID > comments[j].ID })
	return comments, nil
}

func (r *fakeCommentRepo) Delete(_ context.Context, id uint64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.comments[id]; !ok {
		return domain.ErrCommentNotFound
	}
	delete(r.store.comments, id)
	return nil
}
