package usecase

import (
	"context"
	"strings"

	"github.com/classroom-ai/assessment-api/internal/apperror"
	"github.com/classroom-ai/assessment-api/internal/model"
	"github.com/classroom-ai/assessment-api/internal/repository"
	"github.com/classroom-ai/assessment-api/internal/service"
)

// AssessmentUsecase drives the grading pipeline: roster resolution,
// prompt building, model invocation, tolerant parsing, branch merge and
// persistence. All collaborators arrive through the constructor; the
// composition root owns their lifecycle.
type AssessmentUsecase struct {
	activityRepo   repository.ActivityRepositoryInterface
	courseRepo     repository.CourseRepositoryInterface
	studentRepo    repository.StudentRepositoryInterface
	assessmentRepo repository.AssessmentRepositoryInterface
	model          service.ModelService
}

func NewAssessmentUsecase(
	activityRepo repository.ActivityRepositoryInterface,
	courseRepo repository.CourseRepositoryInterface,
	studentRepo repository.StudentRepositoryInterface,
	assessmentRepo repository.AssessmentRepositoryInterface,
	model service.ModelService,
) *AssessmentUsecase {
	return &AssessmentUsecase{
		activityRepo:   activityRepo,
		courseRepo:     courseRepo,
		studentRepo:    studentRepo,
		assessmentRepo: assessmentRepo,
		model:          model,
	}
}

// roster is the consistent per-activity working set a generation run
// operates on: one snapshot, read before any model call.
type roster struct {
	activity    *model.Activity
	course      *model.Course
	students    []model.Student
	assessments map[string]model.Assessment
}

// resolveRoster loads the activity, its course, the course roster and any
// existing assessments. Read-only composition; validation failures happen
// before any document is fetched, rubric check right after the activity
// arrives so no model call can ever run against an ungraded rubric.
func (uc *AssessmentUsecase) resolveRoster(ctx context.Context, activityID string) (*roster, error) {
	if strings.TrimSpace(activityID) == "" {
		return nil, apperror.Validationf("activity id cannot be empty")
	}
	activity, err := uc.activityRepo.Get(ctx, activityID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(activity.AssessmentRubric) == "" {
		return nil, apperror.Validationf("assessment rubric is required for activity %s", activityID)
	}
	course, err := uc.courseRepo.Get(ctx, activity.CourseID)
	if err != nil {
		return nil, err
	}
	students, err := uc.studentRepo.ListByCourse(ctx, activity.CourseID)
	if err != nil {
		return nil, err
	}
	existing, err := uc.assessmentRepo.ListByActivity(ctx, activityID)
	if err != nil {
		return nil, err
	}
	byStudent := make(map[string]model.Assessment, len(existing))
	for _, a := range existing {
		byStudent[a.ID] = a
	}
	return &roster{
		activity:    activity,
		course:      course,
		students:    students,
		assessments: byStudent,
	}, nil
}

// needsGeneration is the skip condition of the batch path: nothing to
// grade without a submission, and an assessment that already carries a
// generation is final until a teacher re-assesses it. Re-running a batch
// is therefore idempotent per student.
func needsGeneration(assessment *model.Assessment) bool {
	if assessment.Submission == "" {
		return false
	}
	if assessment.AIAssessment != nil && assessment.AIAssessment.AIGeneration != "" {
		return false
	}
	return true
}

// mergeAIAssessment writes a grading result into the AIAssessment branch.
// The ReAssessment branch is never touched here.
func mergeAIAssessment(assessment *model.Assessment, generation string, grading gradingResult) {
	if assessment.AIAssessment == nil {
		assessment.AIAssessment = &model.AIAssessment{}
	}
	assessment.AIAssessment.AIGeneration = generation
	assessment.AIAssessment.GlobalGrade = grading.GlobalGrade
	assessment.AIAssessment.ComponentsGrades = grading.ComponentsGrades
}

// mergeReassessment writes a grading result and the triggering teacher
// comment into the ReAssessment branch, leaving AIAssessment untouched.
func mergeReassessment(assessment *model.Assessment, comment, generation string, grading gradingResult) {
	if assessment.ReAssessment == nil {
		assessment.ReAssessment = &model.ReAssessment{}
	}
	assessment.ReAssessment.AIGeneration = generation
	assessment.ReAssessment.TeacherComment = comment
	assessment.ReAssessment.GlobalGrade = grading.GlobalGrade
	assessment.ReAssessment.ComponentsGrades = grading.ComponentsGrades
}

// GenerateForActivity grades every student in the activity's course that
// has a submission and no prior generation, strictly sequentially, and
// returns the processed assessments. The first store or model failure
// aborts the whole batch; students already persisted stay persisted.
// The batch AddStudents path shows the per-student isolation
// alternative, should this ever switch.
func (uc *AssessmentUsecase) GenerateForActivity(ctx context.Context, activityID string) ([]model.Assessment, error) {
	ros, err := uc.resolveRoster(ctx, activityID)
	if err != nil {
		return nil, err
	}

	processed := []model.Assessment{}
	for _, student := range ros.students {
		assessment, ok := ros.assessments[student.ID]
		if !ok {
			assessment = model.Assessment{ID: student.ID}
		}
		if !needsGeneration(&assessment) {
			continue
		}

		prompt := buildPrompt(ros.course, ros.activity, &assessment)
		generation, err := uc.model.GenerateAssessment(ctx, prompt)
		if err != nil {
			return nil, err
		}

		mergeAIAssessment(&assessment, generation, parseGrading(generation))

		if err := uc.assessmentRepo.Set(ctx, activityID, &assessment); err != nil {
			return nil, err
		}
		processed = append(processed, assessment)
	}
	return processed, nil
}

// StudentReassessment re-grades one student with the teacher's comment
// folded into the prompt. Activity, existing assessment and course must
// all be present; a miss on any of them returns not-found with nothing
// mutated.
func (uc *AssessmentUsecase) StudentReassessment(ctx context.Context, activityID, studentID, comment string) (*model.Assessment, error) {
	if strings.TrimSpace(activityID) == "" {
		return nil, apperror.Validationf("activity id cannot be empty")
	}
	if strings.TrimSpace(studentID) == "" {
		return nil, apperror.Validationf("student id cannot be empty")
	}
	if strings.TrimSpace(comment) == "" {
		return nil, apperror.Validationf("re-assessment comment cannot be empty")
	}

	activity, err := uc.activityRepo.Get(ctx, activityID)
	if err != nil {
		return nil, err
	}
	assessment, err := uc.assessmentRepo.Get(ctx, activityID, studentID)
	if err != nil {
		return nil, err
	}
	course, err := uc.courseRepo.Get(ctx, activity.CourseID)
	if err != nil {
		return nil, err
	}

	prompt := buildReassessmentPrompt(course, activity, assessment, comment)
	generation, err := uc.model.GenerateAssessment(ctx, prompt)
	if err != nil {
		return nil, err
	}

	mergeReassessment(assessment, comment, generation, parseGrading(generation))

	if err := uc.assessmentRepo.Set(ctx, activityID, assessment); err != nil {
		return nil, err
	}
	return assessment, nil
}

// ListByActivity returns every assessment under an existing activity. An
// activity with no assessments yet is a valid empty list.
func (uc *AssessmentUsecase) ListByActivity(ctx context.Context, activityID string) ([]model.Assessment, error) {
	if strings.TrimSpace(activityID) == "" {
		return nil, apperror.Validationf("activity id cannot be empty")
	}
	if _, err := uc.activityRepo.Get(ctx, activityID); err != nil {
		return nil, err
	}
	return uc.assessmentRepo.ListByActivity(ctx, activityID)
}

// GetByActivityAndStudent returns one student's assessment record.
func (uc *AssessmentUsecase) GetByActivityAndStudent(ctx context.Context, activityID, studentID string) (*model.Assessment, error) {
	if strings.TrimSpace(activityID) == "" {
		return nil, apperror.Validationf("activity id cannot be empty")
	}
	if strings.TrimSpace(studentID) == "" {
		return nil, apperror.Validationf("student id cannot be empty")
	}
	return uc.assessmentRepo.Get(ctx, activityID, studentID)
}

// AddSubmissions upserts submission records under an existing activity
// and returns the ones written.
func (uc *AssessmentUsecase) AddSubmissions(ctx context.Context, activityID string, assessments []model.Assessment) ([]model.Assessment, error) {
	if strings.TrimSpace(activityID) == "" {
		return nil, apperror.Validationf("activity id cannot be empty")
	}
	if len(assessments) == 0 {
		return nil, apperror.Validationf("assessments list cannot be empty")
	}
	if _, err := uc.activityRepo.Get(ctx, activityID); err != nil {
		return nil, err
	}

	added := []model.Assessment{}
	for i := range assessments {
		if strings.TrimSpace(assessments[i].ID) == "" {
			return nil, apperror.Validationf("assessment id cannot be empty")
		}
		if err := uc.assessmentRepo.Set(ctx, activityID, &assessments[i]); err != nil {
			return nil, err
		}
		added = append(added, assessments[i])
	}
	return added, nil
}

// UploadSubmission stores extracted submission text for one student,
// creating the assessment record if it does not exist yet.
func (uc *AssessmentUsecase) UploadSubmission(ctx context.Context, activityID, studentID, text, fileType string) (*model.Assessment, error) {
	if strings.TrimSpace(activityID) == "" {
		return nil, apperror.Validationf("activity id cannot be empty")
	}
	if strings.TrimSpace(studentID) == "" {
		return nil, apperror.Validationf("student id cannot be empty")
	}
	if strings.TrimSpace(text) == "" {
		return nil, apperror.Validationf("submission text cannot be empty")
	}
	if _, err := uc.activityRepo.Get(ctx, activityID); err != nil {
		return nil, err
	}

	assessment, err := uc.assessmentRepo.Get(ctx, activityID, studentID)
	if apperror.IsNotFound(err) {
		assessment = &model.Assessment{ID: studentID, Status: model.StatusPending}
	} else if err != nil {
		return nil, err
	}

	assessment.Submission = text
	assessment.FileType = fileType
	if assessment.Status == "" {
		assessment.Status = model.StatusPending
	}
	if err := uc.assessmentRepo.Set(ctx, activityID, assessment); err != nil {
		return nil, err
	}
	return assessment, nil
}

// Update replaces one assessment document. The path student id and the
// body id must agree, and the document must already exist.
func (uc *AssessmentUsecase) Update(ctx context.Context, activityID, studentID string, assessment *model.Assessment) (*model.Assessment, error) {
	if strings.TrimSpace(activityID) == "" {
		return nil, apperror.Validationf("activity id cannot be empty")
	}
	if strings.TrimSpace(studentID) == "" {
		return nil, apperror.Validationf("student id cannot be empty")
	}
	if assessment == nil || assessment.ID == "" {
		return nil, apperror.Validationf("assessment id cannot be empty")
	}
	if assessment.ID != studentID {
		return nil, apperror.Validationf("student id and assessment id must be the same")
	}
	if _, err := uc.assessmentRepo.Get(ctx, activityID, studentID); err != nil {
		return nil, err
	}
	if err := uc.assessmentRepo.Set(ctx, activityID, assessment); err != nil {
		return nil, err
	}
	return assessment, nil
}
