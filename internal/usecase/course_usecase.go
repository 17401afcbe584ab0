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

type CourseUsecase struct {
	courseRepo repository.CourseRepositoryInterface
}

func NewCourseUsecase(courseRepo repository.CourseRepositoryInterface) *CourseUsecase {
	return &CourseUsecase{courseRepo: courseRepo}
}

func (uc *CourseUsecase) List(ctx context.Context) ([]model.Course, error) {
	return uc.courseRepo.List(ctx)
}

func (uc *CourseUsecase) ListByTeacher(ctx context.Context, teacherID string) ([]model.Course, error) {
	if strings.TrimSpace(teacherID) == "" {
		return nil, apperror.Validationf("teacher id cannot be empty")
	}
	return uc.courseRepo.ListByTeacher(ctx, teacherID)
}

func (uc *CourseUsecase) Get(ctx context.Context, id string) (*model.Course, error) {
	if strings.TrimSpace(id) == "" {
		return nil, apperror.Validationf("course id cannot be empty")
	}
	return uc.courseRepo.Get(ctx, id)
}

func (uc *CourseUsecase) GenerateID() string {
	return uuid.NewString()
}

func (uc *CourseUsecase) Add(ctx context.Context, course *model.Course) (*model.Course, error) {
	if course == nil || strings.TrimSpace(course.ID) == "" {
		return nil, apperror.Validationf("course id cannot be empty")
	}
	if course.CreatedAt.IsZero() {
		course.CreatedAt = time.Now()
	}
	if err := uc.courseRepo.Create(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

func (uc *CourseUsecase) Edit(ctx context.Context, id string, course *model.Course) (*model.Course, error) {
	if course == nil || strings.TrimSpace(course.ID) == "" {
		return nil, apperror.Validationf("course id cannot be empty")
	}
	if course.ID != id {
		return nil, apperror.Validationf("course id mismatch with the id provided in the path")
	}
	if _, err := uc.courseRepo.Get(ctx, id); err != nil {
		return nil, err
	}
	if err := uc.courseRepo.Set(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

func (uc *CourseUsecase) Delete(ctx context.Context, id string) (*model.Course, error) {
	if strings.TrimSpace(id) == "" {
		return nil, apperror.Validationf("course id cannot be empty")
	}
	course, err := uc.courseRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := uc.courseRepo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return course, nil
}
