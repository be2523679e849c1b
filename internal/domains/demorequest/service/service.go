package service

import (
	"context"
	"fmt"

	"intake/config"
	"intake/infras/otel"
	calendarService "intake/internal/domains/calendar/service"
	"intake/internal/domains/demorequest/model"
	"intake/internal/domains/demorequest/model/dto"
	"intake/internal/domains/demorequest/repository"
	"intake/internal/events"
	"intake/shared"
	"intake/shared/cache"
	"intake/shared/constant"
	gDto "intake/shared/dto"
	"intake/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetDemoRequest    = "demorequest:get"
	cacheGetAllDemoRequest = "demorequest:gets"
	cacheCountDemoRequest  = "demorequest:count"
	cacheStatsDemoRequest  = "demorequest:stats"
)

type DemoRequest interface {
	Submit(ctx context.Context, req dto.SubmitDemoRequestRequest) (dto.DemoRequestResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetDemoRequestsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.DemoRequestResponse, error)
	Update(ctx context.Context, req dto.UpdateDemoRequestRequest, id string) error
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (dto.DemoRequestStatsResponse, error)
}

type serviceImpl struct {
	repo      repository.DemoRequest
	calendar  calendarService.Calendar
	cfg       *config.Config
	cache     cache.RedisCache
	publisher events.Publisher
	otel      otel.Otel
}

func New(repo repository.DemoRequest, calendar calendarService.Calendar, cfg *config.Config, cache cache.RedisCache, publisher events.Publisher, otel otel.Otel) DemoRequest {
	return &serviceImpl{
		repo:      repo,
		calendar:  calendar,
		cfg:       cfg,
		cache:     cache,
		publisher: publisher,
		otel:      otel,
	}
}

// Submit persists a public intake submission. When a preferred date is given,
// one unit of that date's capacity is reserved before the row is written;
// a failed reservation rejects the whole request and leaves no state behind.
func (s *serviceImpl) Submit(ctx context.Context, req dto.SubmitDemoRequestRequest) (res dto.DemoRequestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Submit")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if req.PreferredDate != constant.Empty {
		if err = s.calendar.Reserve(ctx, req.PreferredDate); err != nil {
			log.Warn().Err(err).Str("date", req.PreferredDate).Msg("demo request rejected by calendar")

			return res, err
		}
	}

	demoRequest := req.ToModel(user)

	if err = s.repo.Insert(ctx, demoRequest); err != nil {
		log.Error().Err(err).Msg("failed to create demo request")

		return res, fmt.Errorf("failed to create demo request: %w", err)
	}

	res.FromModel(demoRequest)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.publisher.DemoRequestCreated(c, res); err != nil {
			log.Error().Err(err).Str("id", res.ID).Msg("failed to publish demo request created event")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllDemoRequest)
		shared.InvalidateCaches(c, s.cache, cacheCountDemoRequest)
		shared.InvalidateCaches(c, s.cache, cacheStatsDemoRequest)
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetDemoRequestsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllDemoRequest, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for demo requests")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count demo requests")

		return res, fmt.Errorf("failed to count demo requests: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get demo requests")

		return res, fmt.Errorf("failed to get demo requests: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save demo requests to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountDemoRequest, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for demo request count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count demo requests")

		return res, fmt.Errorf("failed to count demo requests: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save demo request count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.DemoRequestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetDemoRequest, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for demo request")

		return res, nil
	}

	demoRequest, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get demo request")

		return res, fmt.Errorf("failed to get demo request: %w", err)
	}

	if demoRequest.ID == constant.Empty {
		return res, failure.NotFound("demo request not found") // nolint:wrapcheck
	}

	res.FromModel(demoRequest)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save demo request to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateDemoRequestRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateDemoRequestRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if demo request exists")

		return fmt.Errorf("failed to check if demo request exists: %w", err)
	}

	if !exist {
		log.Error().Msg("demo request not found")

		return failure.NotFound("demo request not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update demo request")

		return fmt.Errorf("failed to update demo request: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		updated, err := s.repo.Get(c, filter)
		if err == nil && updated.ID != constant.Empty {
			var res dto.DemoRequestResponse
			res.FromModel(updated)

			if err := s.publisher.DemoRequestUpdated(c, res); err != nil {
				log.Error().Err(err).Str("id", id).Msg("failed to publish demo request updated event")
			}
		}

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetDemoRequest, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete demo request from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllDemoRequest)
		shared.InvalidateCaches(c, s.cache, cacheCountDemoRequest)
		shared.InvalidateCaches(c, s.cache, cacheStatsDemoRequest)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if demo request exists")

		return fmt.Errorf("failed to check if demo request exists: %w", err)
	}

	if !exist {
		log.Error().Msg("demo request not found")

		return failure.NotFound("demo request not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete demo request")

		return fmt.Errorf("failed to delete demo request: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetDemoRequest, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete demo request from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllDemoRequest)
		shared.InvalidateCaches(c, s.cache, cacheCountDemoRequest)
		shared.InvalidateCaches(c, s.cache, cacheStatsDemoRequest)
	}()

	return nil
}

func (s *serviceImpl) Stats(ctx context.Context) (res dto.DemoRequestStatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Stats")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheStatsDemoRequest)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for demo request stats")

		return res, nil
	}

	counts, err := s.repo.CountByStatus(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to count demo requests by status")

		return res, fmt.Errorf("failed to count demo requests by status: %w", err)
	}

	res.FromCounts(counts)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save demo request stats to cache")
		}
	}()

	return res, nil
}
