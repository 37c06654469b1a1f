package task

import (
	"context"
	"net/url"

	"github.com/meucampus/planner/core"
)

const kind = "tasks"

const (
	createdMsg = "Tarefa criada com sucesso!"
	updatedMsg = "Tarefa atualizada com sucesso!"
	deletedMsg = "Tarefa deletada com sucesso!"

	createErrMsg = "Ocorreu um erro ao criar a tarefa."
	updateErrMsg = "Ocorreu um erro ao atualizar a tarefa."
	deleteErrMsg = "Ocorreu um erro ao deletar a tarefa."
)

type Service struct {
	api    core.Requester
	cache  core.ListCache
	notify core.Notifier
}

func NewService(api core.Requester, cache core.ListCache, notify core.Notifier) *Service {
	return &Service{api: api, cache: cache, notify: notify}
}

func (s *Service) List(ctx context.Context, filter core.ListFilter) (core.Page[Task], error) {
	key := core.ListKey{Kind: kind, Page: filter.Page, PerPage: filter.PerPage, Search: filter.Search}
	if val, ok := s.cache.Get(key); ok {
		if page, ok := val.(core.Page[Task]); ok {
			return page, nil
		}
	}
	var page core.Page[Task]
	if err := s.api.Get(ctx, "/tasks", filter.Query(), &page); err != nil {
		return core.Page[Task]{}, err
	}
	s.cache.Set(key, page)
	return page, nil
}

// All returns the unpaginated tasks list.
func (s *Service) All(ctx context.Context) ([]Task, error) {
	key := core.ListKey{Kind: kind}
	if val, ok := s.cache.Get(key); ok {
		if all, ok := val.([]Task); ok {
			return all, nil
		}
	}
	var all []Task
	if err := s.api.Get(ctx, "/tasks/all", nil, &all); err != nil {
		return nil, err
	}
	s.cache.Set(key, all)
	return all, nil
}

func (s *Service) Create(ctx context.Context, nt NewTask) (Task, error) {
	if err := core.CheckStruct(nt); err != nil {
		return Task{}, err
	}
	var tsk Task
	if err := s.api.Post(ctx, "/tasks", nt, &tsk); err != nil {
		s.notify.Error(core.UserMessage(err, createErrMsg))
		return Task{}, err
	}
	s.cache.Invalidate(kind)
	s.notify.Success(createdMsg)
	return tsk, nil
}

func (s *Service) Update(ctx context.Context, ut UpdateTask) (Task, error) {
	if err := core.CheckStruct(ut); err != nil {
		return Task{}, err
	}
	var tsk Task
	if err := s.api.Put(ctx, "/tasks", url.Values{"id": {ut.ID}}, ut, &tsk); err != nil {
		s.notify.Error(core.UserMessage(err, updateErrMsg))
		return Task{}, err
	}
	s.cache.Invalidate(kind)
	s.notify.Success(updatedMsg)
	return tsk, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.api.Delete(ctx, "/tasks", url.Values{"id": {id}}); err != nil {
		s.notify.Error(core.UserMessage(err, deleteErrMsg))
		return err
	}
	s.cache.Invalidate(kind)
	s.notify.Success(deletedMsg)
	return nil
}
