package model

import "time"

// Activity is a gradable assignment. AssessmentRubric must be non-empty
// before any grading run is attempted against it.
type Activity struct {
	ID                       string    `firestore:"id" json:"id"`
	Name                     string    `firestore:"name" json:"name"`
	TeacherID                string    `firestore:"teacherId" json:"teacher_id"`
	CourseID                 string    `firestore:"courseId" json:"course_id"`
	TypeActivity             string    `firestore:"typeActivity" json:"type_activity"`
	LearningComponent        string    `firestore:"learningComponent" json:"learning_component"`
	AcademicLevel            string    `firestore:"academicLevel" json:"academic_level"`
	UnitTheme                string    `firestore:"unitTheme" json:"unit_theme"`
	ExpectedLearningOutcomes string    `firestore:"expectedLearningOutcomes" json:"expected_learning_outcomes"`
	DidacticStrategies       string    `firestore:"didacticStrategies" json:"didactic_strategies"`
	AssessmentRubric         string    `firestore:"assessmentRubric" json:"assessment_rubric"`
	Solution                 string    `firestore:"solution" json:"solution"`
	CreatedAt                time.Time `firestore:"createdAt" json:"created_at"`
	LastUpdate               time.Time `firestore:"lastUpdate" json:"last_update"`
}
