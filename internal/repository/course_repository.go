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

type CourseRepositoryInterface interface {
	Get(ctx context.Context, id string) (*model.Course, error)
	List(ctx context.Context) ([]model.Course, error)
	ListByTeacher(ctx context.Context, teacherID string) ([]model.Course, error)
	Create(ctx context.Context, course *model.Course) error
	Set(ctx context.Context, course *model.Course) error
	Delete(ctx context.Context, id string) error
}

type CourseRepository struct {
	client *firestore.Client
}

func NewCourseRepository(client *firestore.Client) *CourseRepository {
	return &CourseRepository{client: client}
}

func (r *CourseRepository) col() *firestore.CollectionRef {
	return r.client.Collection("courses")
}

func (r *CourseRepository) Get(ctx context.Context, id string) (*model.Course, error) {
	snap, err := r.col().Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, apperror.NotFound("course", id)
	}
	if err != nil {
		return nil, apperror.Upstream("get course "+id, err)
	}
	var course model.Course
	if err := snap.DataTo(&course); err != nil {
		return nil, apperror.Upstream("decode course "+id, err)
	}
	course.ID = snap.Ref.ID
	return &course, nil
}

func (r *CourseRepository) List(ctx context.Context) ([]model.Course, error) {
	return r.queryCourses(ctx, r.col().Query, "list courses")
}

func (r *CourseRepository) ListByTeacher(ctx context.Context, teacherID string) ([]model.Course, error) {
	q := r.col().Where("teacherId", "==", teacherID)
	return r.queryCourses(ctx, q, "list courses for teacher "+teacherID)
}

func (r *CourseRepository) Create(ctx context.Context, course *model.Course) error {
	_, err := r.col().Doc(course.ID).Create(ctx, course)
	if status.Code(err) == codes.AlreadyExists {
		return apperror.Validationf("course %s already exists", course.ID)
	}
	if err != nil {
		return apperror.Upstream("create course "+course.ID, err)
	}
	return nil
}

func (r *CourseRepository) Set(ctx context.Context, course *model.Course) error {
	if _, err := r.col().Doc(course.ID).Set(ctx, course); err != nil {
		return apperror.Upstream("set course "+course.ID, err)
	}
	return nil
}

func (r *CourseRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.col().Doc(id).Delete(ctx); err != nil {
		return apperror.Upstream("delete course "+id, err)
	}
	return nil
}

func (r *CourseRepository) queryCourses(ctx context.Context, q firestore.Query, op string) ([]model.Course, error) {
	iter := q.Documents(ctx)
	defer iter.Stop()

	courses := []model.Course{}
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, apperror.Upstream(op, err)
		}
		var course model.Course
		if err := snap.DataTo(&course); err != nil {
			return nil, apperror.Upstream(op, err)
		}
		course.ID = snap.Ref.ID
		courses = append(courses, course)
	}
	return courses, nil
}
