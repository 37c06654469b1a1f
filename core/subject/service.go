package subject

import (
	"context"
	"net/url"

	"github.com/meucampus/planner/core"
)

const kind = "subjects"

const (
	createdMsg = "Disciplina criada com sucesso!"
	updatedMsg = "Disciplina atualizada com sucesso!"
	deletedMsg = "Disciplina excluída com sucesso!"

	createErrMsg = "Ocorreu um erro ao criar a disciplina."
	updateErrMsg = "Ocorreu um erro ao atualizar a disciplina."
	deleteErrMsg = "Ocorreu um erro ao excluir a disciplina."
)

type Service struct {
	api    core.Requester
	cache  core.ListCache
	notify core.Notifier
}

func NewService(api core.Requester, cache core.ListCache, notify core.Notifier) *Service {
	return &Service{api: api, cache: cache, notify: notify}
}

func (s *Service) List(ctx context.Context, filter core.ListFilter) (core.Page[Subject], error) {
	key := core.ListKey{Kind: kind, Page: filter.Page, PerPage: filter.PerPage, Search: filter.Search}
	if val, ok := s.cache.Get(key); ok {
		if page, ok := val.(core.Page[Subject]); ok {
			return page, nil
		}
	}
	var page core.Page[Subject]
	if err := s.api.Get(ctx, "/subjects", filter.Query(), &page); err != nil {
		return core.Page[Subject]{}, err
	}
	s.cache.Set(key, page)
	return page, nil
}

// All returns the unpaginated subjects list, used to populate selects.
func (s *Service) All(ctx context.Context) ([]Subject, error) {
	key := core.ListKey{Kind: kind}
	if val, ok := s.cache.Get(key); ok {
		if all, ok := val.([]Subject); ok {
			return all, nil
		}
	}
	var all []Subject
	if err := s.api.Get(ctx, "/subjects/all", nil, &all); err != nil {
		return nil, err
	}
	s.cache.Set(key, all)
	return all, nil
}

func (s *Service) Create(ctx context.Context, ns NewSubject) (Subject, error) {
	if err := core.CheckStruct(ns); err != nil {
		return Subject{}, err
	}
	var subj Subject
	if err := s.api.Post(ctx, "/subjects", ns, &subj); err != nil {
		s.notify.Error(core.UserMessage(err, createErrMsg))
		return Subject{}, err
	}
	s.cache.Invalidate(kind)
	s.notify.Success(createdMsg)
	return subj, nil
}

func (s *Service) Update(ctx context.Context, us UpdateSubject) (Subject, error) {
	if err := core.CheckStruct(us); err != nil {
		return Subject{}, err
	}
	var subj Subject
	if err := s.api.Put(ctx, "/subjects", url.Values{"id": {us.ID}}, us, &subj); err != nil {
		s.notify.Error(core.UserMessage(err, updateErrMsg))
		return Subject{}, err
	}
	s.cache.Invalidate(kind)
	s.notify.Success(updatedMsg)
	return subj, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.api.Delete(ctx, "/subjects", url.Values{"id": {id}}); err != nil {
		s.notify.Error(core.UserMessage(err, deleteErrMsg))
		return err
	}
	s.cache.Invalidate(kind)
	s.notify.Success(deletedMsg)
	return nil
}
