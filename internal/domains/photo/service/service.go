package service

import (
	"context"
	"fmt"
	"lodgy/config"
	"lodgy/infras/otel"
	"lodgy/infras/s3"
	"lodgy/internal/domains/photo/model"
	"lodgy/internal/domains/photo/model/dto"
	"lodgy/internal/domains/photo/repository"
	propertyModel "lodgy/internal/domains/property/model"
	propertyRepo "lodgy/internal/domains/property/repository"
	"lodgy/shared"
	"lodgy/shared/cache"
	"lodgy/shared/constant"
	gDto "lodgy/shared/dto"
	"lodgy/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllPhoto = "photo:get_all"
)

type Photo interface {
	Upload(ctx context.Context, req dto.UploadPhotoRequest, propertyID string) (dto.PhotoResponse, error)
	GetAllByProperty(ctx context.Context, req gDto.QueryParams, propertyID string) (dto.GetPhotosResponse, error)
	Delete(ctx context.Context, propertyID, photoID string) error
}

type serviceImpl struct {
	repo         repository.Photo
	propertyRepo propertyRepo.Property
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
	s3           s3.S3
}

func New(repo repository.Photo, propertyRepo propertyRepo.Property, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Photo {
	return &serviceImpl{
		repo:         repo,
		propertyRepo: propertyRepo,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
		s3:           s3,
	}
}

func (s *serviceImpl) Upload(ctx context.Context, req dto.UploadPhotoRequest, propertyID string) (res dto.PhotoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Upload")
	defer scope.End()
	defer scope.TraceIfError(err)

	property, err := s.getOwnedProperty(ctx, propertyID)
	if err != nil {
		return res, err
	}

	email, _ := ctx.Value(constant.ContextKeyUserEmail).(string)
	bucketName := s.cfg.External.S3.BucketName

	url, err := s.s3.UploadFile(ctx, bucketName, model.EntityName, req.PhotoFile, req.Photo, req.Photo.Filename)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload photo to S3")

		return res, fmt.Errorf("failed to upload photo to S3: %w", err)
	}

	photo := req.ToModel(email, property.ID, url)

	if err = s.repo.Insert(ctx, photo); err != nil {
		log.Error().Err(err).Msg("failed to create photo")

		return res, fmt.Errorf("failed to create photo: %w", err)
	}

	res.FromModel(photo)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllPhoto)
	}()

	return res, nil
}

func (s *serviceImpl) GetAllByProperty(ctx context.Context, req gDto.QueryParams, propertyID string) (res dto.GetPhotosResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllByProperty")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(propertyID, model.FieldPropertyID, model.TableName)
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllPhoto, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for photos")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count photos")

		return res, fmt.Errorf("failed to count photos: %w", err)
	}

	photos, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get photos")

		return res, fmt.Errorf("failed to get photos: %w", err)
	}

	res.FromModels(photos, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save photos to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, propertyID, photoID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err := s.getOwnedProperty(ctx, propertyID); err != nil {
		return err
	}

	filter := shared.FilterByID(photoID, model.FieldID, model.TableName)

	photo, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get photo")

		return fmt.Errorf("failed to get photo: %w", err)
	}

	if photo.ID == constant.Empty || photo.PropertyID != propertyID {
		return failure.NotFound("photo not found")
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete photo")

		return fmt.Errorf("failed to delete photo: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllPhoto)

		bucketName := s.cfg.External.S3.BucketName

		objectName := s.s3.GetObjectNameFromURL(bucketName, photo.URL)
		if objectName == constant.Empty {
			log.Warn().Str("url", photo.URL).Msg("failed to extract object name from URL")

			return
		}

		if err := s.s3.DeleteFile(c, bucketName, model.EntityName, objectName); err != nil {
			log.Error().Err(err).Str("objectName", objectName).Msg("failed to delete photo from S3")
		}
	}()

	return nil
}

func (s *serviceImpl) getOwnedProperty(ctx context.Context, propertyID string) (propertyModel.Property, error) {
	property, err := s.propertyRepo.Get(ctx, shared.FilterByID(propertyID, propertyModel.FieldID, propertyModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get property")

		return property, fmt.Errorf("failed to get property: %w", err)
	}

	if property.ID == constant.Empty {
		return property, failure.NotFound("property not found")
	}

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	if userID != property.OwnerID && role != constant.RoleAdmin && role != constant.RoleAdminMaster {
		return property, failure.ResourceRestrictedError
	}

	return property, nil
}
