package v1

import (
	"context"
	"sort"
	"sync"

	"github.com/rdmitr/todo-api/internal/models"
	"github.com/rdmitr/todo-api/internal/stores"
)

// fakeStores is an in-memory implementation of both store interfaces,
// including the delete cascade from tasks to done markers.
type fakeStores struct {
	mu     sync.Mutex
	nextID int64
	tasks  map[int64]*models.Task
	dones  map[int64]struct{}
}

func newFakeStores() *fakeStores {
	return &fakeStores{
		tasks: make(map[int64]*models.Task),
		dones: make(map[int64]struct{}),
	}
}

func (f *fakeStores) CreateTask(_ context.Context, params stores.TaskParams) (*models.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.nextID++
	task := &models.Task{
		ID:      f.nextID,
		Title:   params.Title,
		DueDate: params.DueDate,
	}
	f.tasks[task.ID] = task

	copied := *task
	return &copied, nil
}

func (f *fakeStores) GetTask(_ context.Context, id int64) (*models.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	task, ok := f.tasks[id]
	if !ok {
		return nil, stores.ErrTaskNotFound
	}

	copied := *task
	return &copied, nil
}

func (f *fakeStores) UpdateTask(_ context.Context, id int64, params stores.TaskParams) (*models.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	task, ok := f.tasks[id]
	if !ok {
		return nil, stores.ErrTaskNotFound
	}
	task.Title = params.Title
	task.DueDate = params.DueDate

	copied := *task
	return &copied, nil
}

func (f *fakeStores) DeleteTask(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.tasks[id]; !ok {
		return stores.ErrTaskNotFound
	}
	delete(f.tasks, id)
	delete(f.dones, id)
	return nil
}

func (f *fakeStores) ListTasksWithDone(_ context.Context) ([]*models.TaskWithDone, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	ids := make([]int64, 0, len(f.tasks))
	for id := range f.tasks {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	list := make([]*models.TaskWithDone, 0, len(ids))
	for _, id := range ids {
		task := f.tasks[id]
		_, done := f.dones[id]
		list = append(list, &models.TaskWithDone{
			ID:      task.ID,
			Title:   task.Title,
			DueDate: task.DueDate,
			Done:    done,
		})
	}
	return list, nil
}

func (f *fakeStores) GetDone(_ context.Context, taskID int64) (*models.Done, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.dones[taskID]; !ok {
		return nil, stores.ErrDoneNotFound
	}
	return &models.Done{ID: taskID}, nil
}

func (f *fakeStores) CreateDone(_ context.Context, taskID int64) (*models.Done, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.dones[taskID]; ok {
		return nil, stores.ErrDoneAlreadyExists
	}
	if _, ok := f.tasks[taskID]; !ok {
		return nil, stores.ErrTaskNotFound
	}
	f.dones[taskID] = struct{}{}
	return &models.Done{ID: taskID}, nil
}

func (f *fakeStores) DeleteDone(_ context.Context, taskID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.dones[taskID]; !ok {
		return stores.ErrDoneNotFound
	}
	delete(f.dones, taskID)
	return nil
}
