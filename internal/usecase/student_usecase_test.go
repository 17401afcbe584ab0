package usecase

import (
	"context"
	"testing"

	"github.com/classroom-ai/assessment-api/internal/apperror"
	"github.com/classroom-ai/assessment-api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStudentFixture() (*StudentUsecase, *fakeStudentRepo) {
	courses := &fakeCourseRepo{courses: map[string]model.Course{
		"c1": {ID: "c1", Subject: "Algorithms"},
	}}
	students := &fakeStudentRepo{byCourse: map[string][]model.Student{
		"c1": {{ID: "s1", Name: "Ana"}},
	}}
	return NewStudentUsecase(courses, students), students
}

func TestListByCourseDistinguishesMissingCourse(t *testing.T) {
	uc, repo := newStudentFixture()
	repo.byCourse["c1"] = nil

	listed, err := uc.ListByCourse(context.Background(), "c1")
	require.NoError(t, err)
	assert.Empty(t, listed)

	_, err = uc.ListByCourse(context.Background(), "ghost")
	assert.True(t, apperror.IsNotFound(err))
}

func TestAddStudentsReportsFailedIDs(t *testing.T) {
	uc, repo := newStudentFixture()

	failed, err := uc.AddStudents(context.Background(), "c1", []model.Student{
		{ID: "s1", Name: "Ana"},
		{ID: "s2", Name: "Ben"},
		{ID: "s3", Name: "Cloe"},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"s1"}, failed)
	assert.Len(t, repo.byCourse["c1"], 3)
}

func TestAddStudentsEmptyBatch(t *testing.T) {
	uc, _ := newStudentFixture()

	_, err := uc.AddStudents(context.Background(), "c1", nil)
	assert.True(t, apperror.IsValidation(err))
}

func TestEditRequiresExistingStudent(t *testing.T) {
	uc, repo := newStudentFixture()

	_, err := uc.Edit(context.Background(), "c1", &model.Student{ID: "ghost"})
	assert.True(t, apperror.IsNotFound(err))

	edited, err := uc.Edit(context.Background(), "c1", &model.Student{ID: "s1", Name: "Ana Maria"})
	require.NoError(t, err)
	assert.Equal(t, "Ana Maria", edited.Name)
	assert.Equal(t, "Ana Maria", repo.byCourse["c1"][0].Name)
}

func TestDeleteReturnsRemovedStudent(t *testing.T) {
	uc, repo := newStudentFixture()

	deleted, err := uc.Delete(context.Background(), "c1", "s1")
	require.NoError(t, err)
	assert.Equal(t, "Ana", deleted.Name)
	assert.Empty(t, repo.byCourse["c1"])

	_, err = uc.Delete(context.Background(), "c1", "s1")
	assert.True(t, apperror.IsNotFound(err))
}
