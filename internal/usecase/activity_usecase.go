package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/classroom-ai/assessment-api/internal/apperror"
	"github.com/classroom-ai/assessment-api/internal/model"
	"github.com/classroom-ai/assessment-api/internal/repository"
	"github.com/google/uuid"
)

type ActivityUsecase struct {
	activityRepo repository.ActivityRepositoryInterface
}

func NewActivityUsecase(activityRepo repository.ActivityRepositoryInterface) *ActivityUsecase {
	return &ActivityUsecase{activityRepo: activityRepo}
}

func (uc *ActivityUsecase) List(ctx context.Context) ([]model.Activity, error) {
	return uc.activityRepo.List(ctx)
}

func (uc *ActivityUsecase) ListByTeacher(ctx context.Context, teacherID string) ([]model.Activity, error) {
	if strings.TrimSpace(teacherID) == "" {
		return nil, apperror.Validationf("teacher id cannot be empty")
	}
	return uc.activityRepo.ListByTeacher(ctx, teacherID)
}

func (uc *ActivityUsecase) ListByCourse(ctx context.Context, courseID string) ([]model.Activity, error) {
	if strings.TrimSpace(courseID) == "" {
		return nil, apperror.Validationf("course id cannot be empty")
	}
	return uc.activityRepo.ListByCourse(ctx, courseID)
}

func (uc *ActivityUsecase) Get(ctx context.Context, id string) (*model.Activity, error) {
	if strings.TrimSpace(id) == "" {
		return nil, apperror.Validationf("activity id cannot be empty")
	}
	return uc.activityRepo.Get(ctx, id)
}

func (uc *ActivityUsecase) LastUpdatedByTeacher(ctx context.Context, teacherID string) (*model.Activity, error) {
	if strings.TrimSpace(teacherID) == "" {
		return nil, apperror.Validationf("teacher id cannot be empty")
	}
	return uc.activityRepo.LastUpdatedByTeacher(ctx, teacherID)
}

func (uc *ActivityUsecase) GenerateID() string {
	return uuid.NewString()
}

func (uc *ActivityUsecase) Add(ctx context.Context, activity *model.Activity) (*model.Activity, error) {
	if activity == nil || strings.TrimSpace(activity.ID) == "" {
		return nil, apperror.Validationf("activity id cannot be empty")
	}
	now := time.Now()
	if activity.CreatedAt.IsZero() {
		activity.CreatedAt = now
	}
	activity.LastUpdate = now
	if err := uc.activityRepo.Create(ctx, activity); err != nil {
		return nil, err
	}
	return activity, nil
}

func (uc *ActivityUsecase) Edit(ctx context.Context, id string, activity *model.Activity) (*model.Activity, error) {
	if activity == nil || strings.TrimSpace(id) == "" {
		return nil, apperror.Validationf("activity id cannot be empty")
	}
	if activity.ID != id {
		return nil, apperror.Validationf("activity id mismatch with the id provided in the path")
	}
	if _, err := uc.activityRepo.Get(ctx, id); err != nil {
		return nil, err
	}
	activity.LastUpdate = time.Now()
	if err := uc.activityRepo.Set(ctx, activity); err != nil {
		return nil, err
	}
	return activity, nil
}

// Delete removes an activity and returns the record as it was.
func (uc *ActivityUsecase) Delete(ctx context.Context, id string) (*model.Activity, error) {
	if strings.TrimSpace(id) == "" {
		return nil, apperror.Validationf("activity id cannot be empty")
	}
	activity, err := uc.activityRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := uc.activityRepo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return activity, nil
}
