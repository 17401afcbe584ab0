package usecase

import (
	"context"
	"testing"

	"github.com/classroom-ai/assessment-api/internal/apperror"
	"github.com/classroom-ai/assessment-api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeActivityRepo struct {
	activities map[string]model.Activity
}

func (f *fakeActivityRepo) Get(_ context.Context, id string) (*model.Activity, error) {
	a, ok := f.activities[id]
	if !ok {
		return nil, apperror.NotFound("activity", id)
	}
	return &a, nil
}

func (f *fakeActivityRepo) List(_ context.Context) ([]model.Activity, error) { return nil, nil }
func (f *fakeActivityRepo) ListByTeacher(_ context.Context, _ string) ([]model.Activity, error) {
	return nil, nil
}
func (f *fakeActivityRepo) ListByCourse(_ context.Context, _ string) ([]model.Activity, error) {
	return nil, nil
}
func (f *fakeActivityRepo) LastUpdatedByTeacher(_ context.Context, _ string) (*model.Activity, error) {
	return nil, apperror.NotFound("activity", "")
}
func (f *fakeActivityRepo) Create(_ context.Context, _ *model.Activity) error { return nil }
func (f *fakeActivityRepo) Set(_ context.Context, _ *model.Activity) error    { return nil }
func (f *fakeActivityRepo) Delete(_ context.Context, _ string) error          { return nil }

type fakeCourseRepo struct {
	courses map[string]model.Course
}

func (f *fakeCourseRepo) Get(_ context.Context, id string) (*model.Course, error) {
	c, ok := f.courses[id]
	if !ok {
		return nil, apperror.NotFound("course", id)
	}
	return &c, nil
}

func (f *fakeCourseRepo) List(_ context.Context) ([]model.Course, error) { return nil, nil }
func (f *fakeCourseRepo) ListByTeacher(_ context.Context, _ string) ([]model.Course, error) {
	return nil, nil
}
func (f *fakeCourseRepo) Create(_ context.Context, _ *model.Course) error { return nil }
func (f *fakeCourseRepo) Set(_ context.Context, _ *model.Course) error    { return nil }
func (f *fakeCourseRepo) Delete(_ context.Context, _ string) error        { return nil }

type fakeStudentRepo struct {
	byCourse map[string][]model.Student
}

func (f *fakeStudentRepo) Get(_ context.Context, courseID, studentID string) (*model.Student, error) {
	for _, s := range f.byCourse[courseID] {
		if s.ID == studentID {
			return &s, nil
		}
	}
	return nil, apperror.NotFound("student", studentID)
}

func (f *fakeStudentRepo) ListByCourse(_ context.Context, courseID string) ([]model.Student, error) {
	return f.byCourse[courseID], nil
}

func (f *fakeStudentRepo) Create(_ context.Context, courseID string, student *model.Student) error {
	for _, s := range f.byCourse[courseID] {
		if s.ID == student.ID {
			return apperror.Validationf("student %s already exists", student.ID)
		}
	}
	f.byCourse[courseID] = append(f.byCourse[courseID], *student)
	return nil
}

func (f *fakeStudentRepo) Set(_ context.Context, courseID string, student *model.Student) error {
	for i, s := range f.byCourse[courseID] {
		if s.ID == student.ID {
			f.byCourse[courseID][i] = *student
			return nil
		}
	}
	f.byCourse[courseID] = append(f.byCourse[courseID], *student)
	return nil
}

func (f *fakeStudentRepo) Delete(_ context.Context, courseID, studentID string) error {
	students := f.byCourse[courseID]
	for i, s := range students {
		if s.ID == studentID {
			f.byCourse[courseID] = append(students[:i], students[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeAssessmentRepo struct {
	byActivity map[string]map[string]model.Assessment
	setCalls   int
}

func (f *fakeAssessmentRepo) Get(_ context.Context, activityID, studentID string) (*model.Assessment, error) {
	a, ok := f.byActivity[activityID][studentID]
	if !ok {
		return nil, apperror.NotFound("assessment", studentID)
	}
	return &a, nil
}

func (f *fakeAssessmentRepo) ListByActivity(_ context.Context, activityID string) ([]model.Assessment, error) {
	out := []model.Assessment{}
	for _, a := range f.byActivity[activityID] {
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeAssessmentRepo) Set(_ context.Context, activityID string, assessment *model.Assessment) error {
	f.setCalls++
	if f.byActivity[activityID] == nil {
		f.byActivity[activityID] = map[string]model.Assessment{}
	}
	f.byActivity[activityID][assessment.ID] = *assessment
	return nil
}

type fakeModel struct {
	response string
	err      error
	calls    int
	prompts  []string
}

func (f *fakeModel) GenerateAssessment(_ context.Context, prompt string) (string, error) {
	f.calls++
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

type fixture struct {
	uc          *AssessmentUsecase
	activities  *fakeActivityRepo
	courses     *fakeCourseRepo
	students    *fakeStudentRepo
	assessments *fakeAssessmentRepo
	model       *fakeModel
}

func newFixture(modelResponse string) *fixture {
	activities := &fakeActivityRepo{activities: map[string]model.Activity{
		"act1": {ID: "act1", CourseID: "c1", Name: "Lab 1", AssessmentRubric: "logic 0-10"},
	}}
	courses := &fakeCourseRepo{courses: map[string]model.Course{
		"c1": {ID: "c1", Subject: "Algorithms"},
	}}
	students := &fakeStudentRepo{byCourse: map[string][]model.Student{
		"c1": {{ID: "s1"}, {ID: "s2"}},
	}}
	assessments := &fakeAssessmentRepo{byActivity: map[string]map[string]model.Assessment{}}
	m := &fakeModel{response: modelResponse}
	return &fixture{
		uc:          NewAssessmentUsecase(activities, courses, students, assessments, m),
		activities:  activities,
		courses:     courses,
		students:    students,
		assessments: assessments,
		model:       m,
	}
}

const gradedResponse = `{"globalGrade":8.5,"componentsGrades":{"logic":{"content":"solid","grade":8,"maxGrade":10}}}`

func TestGenerateForActivitySkipsMissingSubmission(t *testing.T) {
	f := newFixture(gradedResponse)
	f.assessments.byActivity["act1"] = map[string]model.Assessment{
		"s2": {ID: "s2", Submission: "my answer"},
	}

	processed, err := f.uc.GenerateForActivity(context.Background(), "act1")

	require.NoError(t, err)
	require.Len(t, processed, 1)
	assert.Equal(t, "s2", processed[0].ID)
	assert.Equal(t, 1, f.model.calls)
	require.NotNil(t, processed[0].AIAssessment)
	assert.Equal(t, gradedResponse, processed[0].AIAssessment.AIGeneration)
	require.NotNil(t, processed[0].AIAssessment.GlobalGrade)
	assert.Equal(t, 8.5, *processed[0].AIAssessment.GlobalGrade)

	// Nothing was written for the student without a submission.
	_, ok := f.assessments.byActivity["act1"]["s1"]
	assert.False(t, ok)
}

func TestGenerateForActivityIdempotent(t *testing.T) {
	f := newFixture(gradedResponse)
	f.assessments.byActivity["act1"] = map[string]model.Assessment{
		"s1": {ID: "s1", Submission: "answer one"},
		"s2": {ID: "s2", Submission: "answer two", AIAssessment: &model.AIAssessment{AIGeneration: "prior run"}},
	}

	processed, err := f.uc.GenerateForActivity(context.Background(), "act1")

	require.NoError(t, err)
	require.Len(t, processed, 1)
	assert.Equal(t, "s1", processed[0].ID)
	assert.Equal(t, 1, f.model.calls)

	// The already-graded record keeps its original generation.
	assert.Equal(t, "prior run", f.assessments.byActivity["act1"]["s2"].AIAssessment.AIGeneration)

	// A second run finds nothing left to grade.
	processed, err = f.uc.GenerateForActivity(context.Background(), "act1")
	require.NoError(t, err)
	assert.Empty(t, processed)
	assert.Equal(t, 1, f.model.calls)
}

func TestGenerateForActivityBlankRubric(t *testing.T) {
	f := newFixture(gradedResponse)
	f.activities.activities["act1"] = model.Activity{ID: "act1", CourseID: "c1", AssessmentRubric: "   "}
	f.assessments.byActivity["act1"] = map[string]model.Assessment{
		"s1": {ID: "s1", Submission: "answer"},
	}

	_, err := f.uc.GenerateForActivity(context.Background(), "act1")

	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
	assert.Zero(t, f.model.calls)
}

func TestGenerateForActivityValidation(t *testing.T) {
	f := newFixture(gradedResponse)

	_, err := f.uc.GenerateForActivity(context.Background(), "  ")
	assert.True(t, apperror.IsValidation(err))

	_, err = f.uc.GenerateForActivity(context.Background(), "missing")
	assert.True(t, apperror.IsNotFound(err))
	assert.Zero(t, f.model.calls)
}

func TestGenerateForActivityModelFailureAborts(t *testing.T) {
	f := newFixture("")
	f.model.err = apperror.Upstream("chat completion", assert.AnError)
	f.assessments.byActivity["act1"] = map[string]model.Assessment{
		"s1": {ID: "s1", Submission: "answer one"},
		"s2": {ID: "s2", Submission: "answer two"},
	}

	processed, err := f.uc.GenerateForActivity(context.Background(), "act1")

	require.Error(t, err)
	assert.True(t, apperror.IsUpstream(err))
	assert.Nil(t, processed)
	assert.Equal(t, 1, f.model.calls)
	assert.Zero(t, f.assessments.setCalls)
}

func TestGenerateForActivityUnparseableOutput(t *testing.T) {
	f := newFixture("the grade is eight out of ten")
	f.assessments.byActivity["act1"] = map[string]model.Assessment{
		"s1": {ID: "s1", Submission: "answer"},
	}

	processed, err := f.uc.GenerateForActivity(context.Background(), "act1")

	require.NoError(t, err)
	require.Len(t, processed, 1)
	require.NotNil(t, processed[0].AIAssessment)
	assert.Equal(t, "the grade is eight out of ten", processed[0].AIAssessment.AIGeneration)
	assert.Nil(t, processed[0].AIAssessment.GlobalGrade)
	assert.Nil(t, processed[0].AIAssessment.ComponentsGrades)
}

func TestStudentReassessment(t *testing.T) {
	f := newFixture(gradedResponse)
	f.assessments.byActivity["act1"] = map[string]model.Assessment{
		"s1": {
			ID:           "s1",
			Submission:   "answer",
			AIAssessment: &model.AIAssessment{AIGeneration: "first pass"},
		},
	}

	result, err := f.uc.StudentReassessment(context.Background(), "act1", "s1", "focus on edge cases")

	require.NoError(t, err)
	require.NotNil(t, result.ReAssessment)
	assert.Equal(t, gradedResponse, result.ReAssessment.AIGeneration)
	assert.Equal(t, "focus on edge cases", result.ReAssessment.TeacherComment)
	require.NotNil(t, result.ReAssessment.GlobalGrade)
	assert.Equal(t, 8.5, *result.ReAssessment.GlobalGrade)

	// The first-pass branch is untouched.
	assert.Equal(t, "first pass", result.AIAssessment.AIGeneration)

	// The teacher's comment made it into the prompt.
	require.Len(t, f.model.prompts, 1)
	assert.Contains(t, f.model.prompts[0], "focus on edge cases")
}

func TestStudentReassessmentMissingAssessment(t *testing.T) {
	f := newFixture(gradedResponse)

	_, err := f.uc.StudentReassessment(context.Background(), "act1", "ghost", "comment")

	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
	assert.Zero(t, f.model.calls)
	assert.Zero(t, f.assessments.setCalls)
}

func TestStudentReassessmentValidation(t *testing.T) {
	f := newFixture(gradedResponse)

	tests := []struct {
		name                          string
		activityID, studentID, remark string
	}{
		{"blank activity", "", "s1", "c"},
		{"blank student", "act1", "  ", "c"},
		{"blank comment", "act1", "s1", "   "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.uc.StudentReassessment(context.Background(), tt.activityID, tt.studentID, tt.remark)
			assert.True(t, apperror.IsValidation(err))
		})
	}
	assert.Zero(t, f.model.calls)
}

func TestMergeIsolation(t *testing.T) {
	grade := 9.0
	assessment := model.Assessment{
		ID: "s1",
		AIAssessment: &model.AIAssessment{
			AIGeneration: "original",
			GlobalGrade:  &grade,
		},
	}

	mergeReassessment(&assessment, "comment", "re-run", gradingResult{})

	assert.Equal(t, "original", assessment.AIAssessment.AIGeneration)
	assert.Equal(t, 9.0, *assessment.AIAssessment.GlobalGrade)
	assert.Equal(t, "re-run", assessment.ReAssessment.AIGeneration)

	mergeAIAssessment(&assessment, "second pass", gradingResult{})

	assert.Equal(t, "second pass", assessment.AIAssessment.AIGeneration)
	assert.Equal(t, "re-run", assessment.ReAssessment.AIGeneration)
	assert.Equal(t, "comment", assessment.ReAssessment.TeacherComment)
}

func TestAddSubmissions(t *testing.T) {
	f := newFixture(gradedResponse)

	added, err := f.uc.AddSubmissions(context.Background(), "act1", []model.Assessment{
		{ID: "s1", Submission: "answer one"},
		{ID: "s2", Submission: "answer two"},
	})

	require.NoError(t, err)
	assert.Len(t, added, 2)
	assert.Len(t, f.assessments.byActivity["act1"], 2)

	_, err = f.uc.AddSubmissions(context.Background(), "act1", nil)
	assert.True(t, apperror.IsValidation(err))

	_, err = f.uc.AddSubmissions(context.Background(), "act1", []model.Assessment{{ID: " "}})
	assert.True(t, apperror.IsValidation(err))
}

func TestUploadSubmissionCreatesRecord(t *testing.T) {
	f := newFixture(gradedResponse)

	result, err := f.uc.UploadSubmission(context.Background(), "act1", "s1", "extracted text", "pdf")

	require.NoError(t, err)
	assert.Equal(t, "extracted text", result.Submission)
	assert.Equal(t, "pdf", result.FileType)
	assert.Equal(t, model.StatusPending, result.Status)

	stored := f.assessments.byActivity["act1"]["s1"]
	assert.Equal(t, "extracted text", stored.Submission)
}

func TestUploadSubmissionKeepsExistingStatus(t *testing.T) {
	f := newFixture(gradedResponse)
	f.assessments.byActivity["act1"] = map[string]model.Assessment{
		"s1": {ID: "s1", Status: model.StatusReviewed},
	}

	result, err := f.uc.UploadSubmission(context.Background(), "act1", "s1", "new text", "txt")

	require.NoError(t, err)
	assert.Equal(t, model.StatusReviewed, result.Status)
	assert.Equal(t, "new text", result.Submission)
}

func TestUpdateRejectsIDMismatch(t *testing.T) {
	f := newFixture(gradedResponse)
	f.assessments.byActivity["act1"] = map[string]model.Assessment{
		"s1": {ID: "s1"},
	}

	_, err := f.uc.Update(context.Background(), "act1", "s1", &model.Assessment{ID: "s2"})
	assert.True(t, apperror.IsValidation(err))

	_, err = f.uc.Update(context.Background(), "act1", "ghost", &model.Assessment{ID: "ghost"})
	assert.True(t, apperror.IsNotFound(err))

	updated, err := f.uc.Update(context.Background(), "act1", "s1", &model.Assessment{ID: "s1", Status: model.StatusReviewed})
	require.NoError(t, err)
	assert.Equal(t, model.StatusReviewed, updated.Status)
}

func TestListByActivity(t *testing.T) {
	f := newFixture(gradedResponse)

	assessments, err := f.uc.ListByActivity(context.Background(), "act1")
	require.NoError(t, err)
	assert.Empty(t, assessments)

	_, err = f.uc.ListByActivity(context.Background(), "missing")
	assert.True(t, apperror.IsNotFound(err))
}
