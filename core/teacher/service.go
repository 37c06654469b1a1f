package teacher

import (
	"context"
	"net/url"

	"github.com/meucampus/planner/core"
)

// kind keys the teachers list cache; every write invalidates it wholesale.
const kind = "teachers"

const (
	createdMsg = "Professor criado com sucesso!"
	updatedMsg = "Professor atualizado com sucesso!"
	deletedMsg = "Professor excluído com sucesso!"

	createErrMsg = "Ocorreu um erro ao criar o professor."
	updateErrMsg = "Ocorreu um erro ao atualizar o professor."
	deleteErrMsg = "Ocorreu um erro ao excluir o professor."
)

type Service struct {
	api    core.Requester
	cache  core.ListCache
	notify core.Notifier
}

func NewService(api core.Requester, cache core.ListCache, notify core.Notifier) *Service {
	return &Service{api: api, cache: cache, notify: notify}
}

func (s *Service) List(ctx context.Context, filter core.ListFilter) (core.Page[Teacher], error) {
	key := core.ListKey{Kind: kind, Page: filter.Page, PerPage: filter.PerPage, Search: filter.Search}
	if val, ok := s.cache.Get(key); ok {
		if page, ok := val.(core.Page[Teacher]); ok {
			return page, nil
		}
	}
	var page core.Page[Teacher]
	if err := s.api.Get(ctx, "/teachers", filter.Query(), &page); err != nil {
		return core.Page[Teacher]{}, err
	}
	s.cache.Set(key, page)
	return page, nil
}

// All returns the unpaginated teachers list, used to populate selects.
func (s *Service) All(ctx context.Context) ([]Teacher, error) {
	key := core.ListKey{Kind: kind}
	if val, ok := s.cache.Get(key); ok {
		if all, ok := val.([]Teacher); ok {
			return all, nil
		}
	}
	var all []Teacher
	if err := s.api.Get(ctx, "/teachers/all", nil, &all); err != nil {
		return nil, err
	}
	s.cache.Set(key, all)
	return all, nil
}

func (s *Service) Create(ctx context.Context, nt NewTeacher) (Teacher, error) {
	if err := core.CheckStruct(nt); err != nil {
		return Teacher{}, err
	}
	var tchr Teacher
	if err := s.api.Post(ctx, "/teachers", nt, &tchr); err != nil {
		s.notify.Error(core.UserMessage(err, createErrMsg))
		return Teacher{}, err
	}
	s.cache.Invalidate(kind)
	s.notify.Success(createdMsg)
	return tchr, nil
}

func (s *Service) Update(ctx context.Context, ut UpdateTeacher) (Teacher, error) {
	if err := core.CheckStruct(ut); err != nil {
		return Teacher{}, err
	}
	var tchr Teacher
	if err := s.api.Put(ctx, "/teachers", url.Values{"id": {ut.ID}}, ut, &tchr); err != nil {
		s.notify.Error(core.UserMessage(err, updateErrMsg))
		return Teacher{}, err
	}
	s.cache.Invalidate(kind)
	s.notify.Success(updatedMsg)
	return tchr, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.api.Delete(ctx, "/teachers", url.Values{"id": {id}}); err != nil {
		s.notify.Error(core.UserMessage(err, deleteErrMsg))
		return err
	}
	s.cache.Invalidate(kind)
	s.notify.Success(deletedMsg)
	return nil
}
