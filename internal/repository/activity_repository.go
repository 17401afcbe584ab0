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

type ActivityRepositoryInterface interface {
	Get(ctx context.Context, id string) (*model.Activity, error)
	List(ctx context.Context) ([]model.Activity, error)
	ListByTeacher(ctx context.Context, teacherID string) ([]model.Activity, error)
	ListByCourse(ctx context.Context, courseID string) ([]model.Activity, error)
	LastUpdatedByTeacher(ctx context.Context, teacherID string) (*model.Activity, error)
	Create(ctx context.Context, activity *model.Activity) error
	Set(ctx context.Context, activity *model.Activity) error
	Delete(ctx context.Context, id string) error
}

// ActivityRepository is the Firestore gateway for the top-level
// "activities" collection.
type ActivityRepository struct {
	client *firestore.Client
}

func NewActivityRepository(client *firestore.Client) *ActivityRepository {
	return &ActivityRepository{client: client}
}

func (r *ActivityRepository) col() *firestore.CollectionRef {
	return r.client.Collection("activities")
}

func (r *ActivityRepository) Get(ctx context.Context, id string) (*model.Activity, error) {
	snap, err := r.col().Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, apperror.NotFound("activity", id)
	}
	if err != nil {
		return nil, apperror.Upstream("get activity "+id, err)
	}
	var activity model.Activity
	if err := snap.DataTo(&activity); err != nil {
		return nil, apperror.Upstream("decode activity "+id, err)
	}
	activity.ID = snap.Ref.ID
	return &activity, nil
}

func (r *ActivityRepository) List(ctx context.Context) ([]model.Activity, error) {
	return r.queryActivities(ctx, r.col().Query, "list activities")
}

func (r *ActivityRepository) ListByTeacher(ctx context.Context, teacherID string) ([]model.Activity, error) {
	q := r.col().Where("teacherId", "==", teacherID)
	return r.queryActivities(ctx, q, "list activities for teacher "+teacherID)
}

func (r *ActivityRepository) ListByCourse(ctx context.Context, courseID string) ([]model.Activity, error) {
	q := r.col().Where("courseId", "==", courseID)
	return r.queryActivities(ctx, q, "list activities for course "+courseID)
}

// LastUpdatedByTeacher returns the teacher's most recently updated
// activity, or ErrNotFound when the teacher has none.
func (r *ActivityRepository) LastUpdatedByTeacher(ctx context.Context, teacherID string) (*model.Activity, error) {
	q := r.col().
		Where("teacherId", "==", teacherID).
		OrderBy("lastUpdate", firestore.Desc).
		Limit(1)
	activities, err := r.queryActivities(ctx, q, "last updated activity for teacher "+teacherID)
	if err != nil {
		return nil, err
	}
	if len(activities) == 0 {
		return nil, apperror.NotFound("activity for teacher", teacherID)
	}
	return &activities[0], nil
}

func (r *ActivityRepository) Create(ctx context.Context, activity *model.Activity) error {
	_, err := r.col().Doc(activity.ID).Create(ctx, activity)
	if status.Code(err) == codes.AlreadyExists {
		return apperror.Validationf("activity %s already exists", activity.ID)
	}
	if err != nil {
		return apperror.Upstream("create activity "+activity.ID, err)
	}
	return nil
}

func (r *ActivityRepository) Set(ctx context.Context, activity *model.Activity) error {
	if _, err := r.col().Doc(activity.ID).Set(ctx, activity); err != nil {
		return apperror.Upstream("set activity "+activity.ID, err)
	}
	return nil
}

func (r *ActivityRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.col().Doc(id).Delete(ctx); err != nil {
		return apperror.Upstream("delete activity "+id, err)
	}
	return nil
}

func (r *ActivityRepository) queryActivities(ctx context.Context, q firestore.Query, op string) ([]model.Activity, error) {
	iter := q.Documents(ctx)
	defer iter.Stop()

	activities := []model.Activity{}
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, apperror.Upstream(op, err)
		}
		var activity model.Activity
		if err := snap.DataTo(&activity); err != nil {
			return nil, apperror.Upstream(op, err)
		}
		activity.ID = snap.Ref.ID
		activities = append(activities, activity)
	}
	return activities, nil
}
