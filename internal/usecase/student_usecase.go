package usecase

import (
	"context"
	"strings"

	"github.com/classroom-ai/assessment-api/internal/apperror"
	"github.com/classroom-ai/assessment-api/internal/model"
	"github.com/classroom-ai/assessment-api/internal/repository"
)

type StudentUsecase struct {
	courseRepo  repository.CourseRepositoryInterface
	studentRepo repository.StudentRepositoryInterface
}

func NewStudentUsecase(courseRepo repository.CourseRepositoryInterface, studentRepo repository.StudentRepositoryInterface) *StudentUsecase {
	return &StudentUsecase{courseRepo: courseRepo, studentRepo: studentRepo}
}

// ListByCourse distinguishes an absent course (not found) from a course
// with an empty roster (valid empty list).
func (uc *StudentUsecase) ListByCourse(ctx context.Context, courseID string) ([]model.Student, error) {
	if strings.TrimSpace(courseID) == "" {
		return nil, apperror.Validationf("course id cannot be empty")
	}
	if _, err := uc.courseRepo.Get(ctx, courseID); err != nil {
		return nil, err
	}
	return uc.studentRepo.ListByCourse(ctx, courseID)
}

func (uc *StudentUsecase) Add(ctx context.Context, courseID string, student *model.Student) (*model.Student, error) {
	if student == nil || strings.TrimSpace(student.ID) == "" {
		return nil, apperror.Validationf("student id cannot be empty")
	}
	if _, err := uc.courseRepo.Get(ctx, courseID); err != nil {
		return nil, err
	}
	if err := uc.studentRepo.Create(ctx, courseID, student); err != nil {
		return nil, err
	}
	return student, nil
}

// AddStudents enrolls a batch and reports the ids that failed instead of
// aborting on the first bad one.
func (uc *StudentUsecase) AddStudents(ctx context.Context, courseID string, students []model.Student) ([]string, error) {
	if len(students) == 0 {
		return nil, apperror.Validationf("students list cannot be empty")
	}
	if _, err := uc.courseRepo.Get(ctx, courseID); err != nil {
		return nil, err
	}

	failed := []string{}
	for i := range students {
		if err := uc.studentRepo.Create(ctx, courseID, &students[i]); err != nil {
			failed = append(failed, students[i].ID)
		}
	}
	return failed, nil
}

func (uc *StudentUsecase) Edit(ctx context.Context, courseID string, student *model.Student) (*model.Student, error) {
	if student == nil || strings.TrimSpace(student.ID) == "" {
		return nil, apperror.Validationf("student id cannot be empty")
	}
	if _, err := uc.courseRepo.Get(ctx, courseID); err != nil {
		return nil, err
	}
	if _, err := uc.studentRepo.Get(ctx, courseID, student.ID); err != nil {
		return nil, err
	}
	if err := uc.studentRepo.Set(ctx, courseID, student); err != nil {
		return nil, err
	}
	return student, nil
}

func (uc *StudentUsecase) Delete(ctx context.Context, courseID, studentID string) (*model.Student, error) {
	if strings.TrimSpace(studentID) == "" {
		return nil, apperror.Validationf("student id cannot be empty")
	}
	if _, err := uc.courseRepo.Get(ctx, courseID); err != nil {
		return nil, err
	}
	student, err := uc.studentRepo.Get(ctx, courseID, studentID)
	if err != nil {
		return nil, err
	}
	if err := uc.studentRepo.Delete(ctx, courseID, studentID); err != nil {
		return nil, err
	}
	return student, nil
}
