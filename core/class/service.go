package class

import (
	"context"
	"net/url"

	"github.com/meucampus/planner/core"
)

const kind = "classes"

const (
	scheduledMsg = "Aula agendada com sucesso!"
	updatedMsg   = "Aula atualizada com sucesso!"
	deletedMsg   = "Aula deletada com sucesso!"

	scheduleErrMsg = "Ocorreu um erro ao agendar a aula."
	updateErrMsg   = "Ocorreu um erro ao atualizar a aula."
	deleteErrMsg   = "Ocorreu um erro ao deletar a aula."
)

type Service struct {
	api    core.Requester
	cache  core.ListCache
	notify core.Notifier
}

var _ Scheduler = (*Service)(nil)

func NewService(api core.Requester, cache core.ListCache, notify core.Notifier) *Service {
	return &Service{api: api, cache: cache, notify: notify}
}

func (s *Service) List(ctx context.Context, filter core.ListFilter) (core.Page[Class], error) {
	key := core.ListKey{Kind: kind, Page: filter.Page, PerPage: filter.PerPage, Search: filter.Search}
	if val, ok := s.cache.Get(key); ok {
		if page, ok := val.(core.Page[Class]); ok {
			return page, nil
		}
	}
	var page core.Page[Class]
	if err := s.api.Get(ctx, "/classes", filter.Query(), &page); err != nil {
		return core.Page[Class]{}, err
	}
	s.cache.Set(key, page)
	return page, nil
}

// All returns the unpaginated classes list.
func (s *Service) All(ctx context.Context) ([]Class, error) {
	key := core.ListKey{Kind: kind}
	if val, ok := s.cache.Get(key); ok {
		if all, ok := val.([]Class); ok {
			return all, nil
		}
	}
	var all []Class
	if err := s.api.Get(ctx, "/classes/all", nil, &all); err != nil {
		return nil, err
	}
	s.cache.Set(key, all)
	return all, nil
}

// Schedule creates a class from a validated payload.
func (s *Service) Schedule(ctx context.Context, sc ScheduleClass) (Class, error) {
	var cls Class
	if err := s.api.Post(ctx, "/classes", sc, &cls); err != nil {
		s.notify.Error(core.UserMessage(err, scheduleErrMsg))
		return Class{}, err
	}
	s.cache.Invalidate(kind)
	s.notify.Success(scheduledMsg)
	return cls, nil
}

func (s *Service) Update(ctx context.Context, uc UpdateClass) (Class, error) {
	var cls Class
	if err := s.api.Put(ctx, "/classes", url.Values{"id": {uc.ID}}, uc, &cls); err != nil {
		s.notify.Error(core.UserMessage(err, updateErrMsg))
		return Class{}, err
	}
	s.cache.Invalidate(kind)
	s.notify.Success(updatedMsg)
	return cls, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.api.Delete(ctx, "/classes", url.Values{"id": {id}}); err != nil {
		s.notify.Error(core.UserMessage(err, deleteErrMsg))
		return err
	}
	s.cache.Invalidate(kind)
	s.notify.Success(deletedMsg)
	return nil
}
