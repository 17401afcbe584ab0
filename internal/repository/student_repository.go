package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/classroom-ai/assessment-api/internal/apperror"
	"github.com/classroom-ai/assessment-api/internal/model"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type StudentRepositoryInterface interface {
	Get(ctx context.Context, courseID, studentID string) (*model.Student, error)
	ListByCourse(ctx context.Context, courseID string) ([]model.Student, error)
	Create(ctx context.Context, courseID string, student *model.Student) error
	Set(ctx context.Context, courseID string, student *model.Student) error
	Delete(ctx context.Context, courseID, studentID string) error
}

// StudentRepository is the Firestore gateway for the students
// subcollection nested under a course document.
type StudentRepository struct {
	client *firestore.Client
}

func NewStudentRepository(client *firestore.Client) *StudentRepository {
	return &StudentRepository{client: client}
}

func (r *StudentRepository) col(courseID string) *firestore.CollectionRef {
	return r.client.Collection("courses").Doc(courseID).Collection("students")
}

func (r *StudentRepository) Get(ctx context.Context, courseID, studentID string) (*model.Student, error) {
	snap, err := r.col(courseID).Doc(studentID).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, apperror.NotFound("student", studentID)
	}
	if err != nil {
		return nil, apperror.Upstream("get student "+studentID, err)
	}
	var student model.Student
	if err := snap.DataTo(&student); err != nil {
		return nil, apperror.Upstream("decode student "+studentID, err)
	}
	student.ID = snap.Ref.ID
	return &student, nil
}

// ListByCourse returns the roster in document order. An empty roster is a
// valid empty slice, not an error; course existence is the caller's check.
func (r *StudentRepository) ListByCourse(ctx context.Context, courseID string) ([]model.Student, error) {
	iter := r.col(courseID).Documents(ctx)
	defer iter.Stop()

	students := []model.Student{}
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, apperror.Upstream("list students for course "+courseID, err)
		}
		var student model.Student
		if err := snap.DataTo(&student); err != nil {
			return nil, apperror.Upstream("decode student in course "+courseID, err)
		}
		student.ID = snap.Ref.ID
		students = append(students, student)
	}
	return students, nil
}

func (r *StudentRepository) Create(ctx context.Context, courseID string, student *model.Student) error {
	_, err := r.col(courseID).Doc(student.ID).Create(ctx, student)
	if status.Code(err) == codes.AlreadyExists {
		return apperror.Validationf("student %s already exists in course %s", student.ID, courseID)
	}
	if err != nil {
		return apperror.Upstream("create student "+student.ID, err)
	}
	return nil
}

func (r *StudentRepository) Set(ctx context.Context, courseID string, student *model.Student) error {
	if _, err := r.col(courseID).Doc(student.ID).Set(ctx, student); err != nil {
		return apperror.Upstream("set student "+student.ID, err)
	}
	return nil
}

func (r *StudentRepository) Delete(ctx context.Context, courseID, studentID string) error {
	if _, err := r.col(courseID).Doc(studentID).Delete(ctx); err != nil {
		return apperror.Upstream("delete student "+studentID, err)
	}
	return nil
}
