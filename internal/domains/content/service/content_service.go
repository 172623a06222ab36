package service

import (
	"context"
	"fmt"
	"time"

	"classweb-backend/internal/domains/content"
	"classweb-backend/pkg/cache"
	"classweb-backend/pkg/logger"
)

// listTTL bounds staleness of the cached list between writes coming from
// outside this process (e.g. a second instance).
const listTTL = 5 * time.Minute

// contentService implements content.Service for one kind. The list
// response is cached in Redis and invalidated on every write; cache
// failures are logged and never fail the request.
type contentService[T any, C content.CreateRequest[T], U content.UpdateRequest] struct {
	kind  string
	repo  content.Repository[T]
	cache cache.Cache
}

func NewContentService[T any, C content.CreateRequest[T], U content.UpdateRequest](
	kind string,
	repo content.Repository[T],
	c cache.Cache,
) content.Service[T, C, U] {
	return &contentService[T, C, U]{kind: kind, repo: repo, cache: c}
}

func (s *contentService[T, C, U]) listKey() string {
	return fmt.Sprintf("content:%s:list", s.kind)
}

func (s *contentService[T, C, U]) List(ctx context.Context) ([]T, error) {
	var cached []T
	if found, err := s.cache.Get(ctx, s.listKey(), &cached); err != nil {
		logger.Error("list cache read failed", err)
	} else if found {
		return cached, nil
	}

	docs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, s.listKey(), docs, listTTL); err != nil {
		logger.Error("list cache write failed", err)
	}
	return docs, nil
}

func (s *contentService[T, C, U]) Get(ctx context.Context, id string) (*T, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *contentService[T, C, U]) Create(ctx context.Context, req C) (*T, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	doc, err := s.repo.Create(ctx, req.ToModel())
	if err != nil {
		return nil, err
	}

	s.invalidateList(ctx)
	return doc, nil
}

func (s *contentService[T, C, U]) Update(ctx context.Context, id string, req U) (*T, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	doc, err := s.repo.Update(ctx, id, req.Fields())
	if err != nil {
		return nil, err
	}

	s.invalidateList(ctx)
	return doc, nil
}

func (s *contentService[T, C, U]) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateList(ctx)
	return nil
}

func (s *contentService[T, C, U]) invalidateList(ctx context.Context) {
	if err := s.cache.Delete(ctx, s.listKey()); err != nil {
		logger.Error("list cache invalidation failed", err)
	}
}
