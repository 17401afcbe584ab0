package dto

import "github.com/classroom-ai/assessment-api/internal/model"

type ActivityPayload struct {
	ID                       string `json:"id" validate:"required"`
	Name                     string `json:"name" validate:"required"`
	TeacherID                string `json:"teacher_id" validate:"required"`
	CourseID                 string `json:"course_id" validate:"required"`
	TypeActivity             string `json:"type_activity"`
	LearningComponent        string `json:"learning_component"`
	AcademicLevel            string `json:"academic_level"`
	UnitTheme                string `json:"unit_theme"`
	ExpectedLearningOutcomes string `json:"expected_learning_outcomes"`
	DidacticStrategies       string `json:"didactic_strategies"`
	AssessmentRubric         string `json:"assessment_rubric"`
	Solution                 string `json:"solution"`
}

func (p *ActivityPayload) ToModel() model.Activity {
	return model.Activity{
		ID:                       p.ID,
		Name:                     p.Name,
		TeacherID:                p.TeacherID,
		CourseID:                 p.CourseID,
		TypeActivity:             p.TypeActivity,
		LearningComponent:        p.LearningComponent,
		AcademicLevel:            p.AcademicLevel,
		UnitTheme:                p.UnitTheme,
		ExpectedLearningOutcomes: p.ExpectedLearningOutcomes,
		DidacticStrategies:       p.DidacticStrategies,
		AssessmentRubric:         p.AssessmentRubric,
		Solution:                 p.Solution,
	}
}
