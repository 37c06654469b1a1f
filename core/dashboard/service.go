package dashboard

import (
	"context"

	"github.com/meucampus/planner/core"
	"github.com/meucampus/planner/core/class"
	"github.com/meucampus/planner/core/task"
)

const (
	classesKind       = "dashboard-classes"
	upcomingTasksKind = "dashboard-upcoming-tasks"
)

// Service backs the dashboard summary: today's classes and upcoming tasks.
type Service struct {
	api   core.Requester
	cache core.ListCache
}

func NewService(api core.Requester, cache core.ListCache) *Service {
	return &Service{api: api, cache: cache}
}

// Classes returns today's classes, paginated.
func (s *Service) Classes(ctx context.Context, page, perPage int) (core.Page[class.Class], error) {
	// key off the same defaults the query applies, so Classes(0, 0) and
	// Classes(1, 10) share an entry
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}
	filter := core.ListFilter{Page: page, PerPage: perPage}
	key := core.ListKey{Kind: classesKind, Page: page, PerPage: perPage}
	if val, ok := s.cache.Get(key); ok {
		if cached, ok := val.(core.Page[class.Class]); ok {
			return cached, nil
		}
	}
	var classes core.Page[class.Class]
	if err := s.api.Get(ctx, "/classes/dashboard", filter.Query(), &classes); err != nil {
		return core.Page[class.Class]{}, err
	}
	s.cache.Set(key, classes)
	return classes, nil
}

// UpcomingTasks returns the next due tasks, unpaginated.
func (s *Service) UpcomingTasks(ctx context.Context) ([]task.Task, error) {
	key := core.ListKey{Kind: upcomingTasksKind}
	if val, ok := s.cache.Get(key); ok {
		if cached, ok := val.([]task.Task); ok {
			return cached, nil
		}
	}
	var tasks []task.Task
	if err := s.api.Get(ctx, "/tasks/upcoming", nil, &tasks); err != nil {
		return nil, err
	}
	s.cache.Set(key, tasks)
	return tasks, nil
}
