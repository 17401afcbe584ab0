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

type AssessmentRepositoryInterface interface {
	Get(ctx context.Context, activityID, studentID string) (*model.Assessment, error)
	ListByActivity(ctx context.Context, activityID string) ([]model.Assessment, error)
	Set(ctx context.Context, activityID string, assessment *model.Assessment) error
}

// AssessmentRepository is the Firestore gateway for the assessments
// subcollection nested under an activity document. Document id equals the
// student id. The pipeline mutates assessments in place and never deletes
// them, so the gateway exposes no delete.
type AssessmentRepository struct {
	client *firestore.Client
}

func NewAssessmentRepository(client *firestore.Client) *AssessmentRepository {
	return &AssessmentRepository{client: client}
}

func (r *AssessmentRepository) col(activityID string) *firestore.CollectionRef {
	return r.client.Collection("activities").Doc(activityID).Collection("assessments")
}

func (r *AssessmentRepository) Get(ctx context.Context, activityID, studentID string) (*model.Assessment, error) {
	snap, err := r.col(activityID).Doc(studentID).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, apperror.NotFound("assessment", studentID)
	}
	if err != nil {
		return nil, apperror.Upstream("get assessment "+studentID, err)
	}
	var assessment model.Assessment
	if err := snap.DataTo(&assessment); err != nil {
		return nil, apperror.Upstream("decode assessment "+studentID, err)
	}
	assessment.ID = snap.Ref.ID
	return &assessment, nil
}

func (r *AssessmentRepository) ListByActivity(ctx context.Context, activityID string) ([]model.Assessment, error) {
	iter := r.col(activityID).Documents(ctx)
	defer iter.Stop()

	assessments := []model.Assessment{}
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, apperror.Upstream("list assessments for activity "+activityID, err)
		}
		var assessment model.Assessment
		if err := snap.DataTo(&assessment); err != nil {
			return nil, apperror.Upstream("decode assessment in activity "+activityID, err)
		}
		assessment.ID = snap.Ref.ID
		assessments = append(assessments, assessment)
	}
	return assessments, nil
}

func (r *AssessmentRepository) Set(ctx context.Context, activityID string, assessment *model.Assessment) error {
	if _, err := r.col(activityID).Doc(assessment.ID).Set(ctx, assessment); err != nil {
		return apperror.Upstream("set assessment "+assessment.ID, err)
	}
	return nil
}
