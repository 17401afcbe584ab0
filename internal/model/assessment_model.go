package model

// Assessment status values. The grading pipeline never transitions these
// on its own; they describe what the teacher sees.
const (
	StatusPending  = "pending"
	StatusReviewed = "reviewed"
	StatusMissing  = "missing"
)

// Generation rating values for an AI-produced grading.
const (
	RatingGood = "good"
	RatingBad  = "bad"
)

// Assessment is the per-student grading record for one activity. Its
// document id equals the student id within the activity's assessments
// subcollection. The two grading branches are independent: writing one
// must never disturb the other.
type Assessment struct {
	ID           string        `firestore:"id" json:"id"`
	Submission   string        `firestore:"submission" json:"submission"`
	FileType     string        `firestore:"fileType" json:"file_type"`
	Status       string        `firestore:"status" json:"status"`
	Feedback     string        `firestore:"feedback" json:"feedback"`
	AIAssessment *AIAssessment `firestore:"aiAssessment" json:"ai_assessment,omitempty"`
	ReAssessment *ReAssessment `firestore:"reAssessment" json:"re_assessment,omitempty"`
}

// AIAssessment holds the first-pass automated grading. GlobalGrade is a
// pointer: a nil grade means the model output could not be parsed, which
// is distinct from a grade of zero.
type AIAssessment struct {
	AIGeneration     string                    `firestore:"aiGeneration" json:"ai_generation"`
	GenerationRating string                    `firestore:"generationRating" json:"generation_rating"`
	GlobalGrade      *float64                  `firestore:"globalGrade" json:"global_grade"`
	ComponentsGrades map[string]ComponentGrade `firestore:"componentsGrades" json:"components_grades"`
}

// ReAssessment is a teacher-triggered re-grading that also records the
// comment that guided it.
type ReAssessment struct {
	AIGeneration     string                    `firestore:"aiGeneration" json:"ai_generation"`
	GenerationRating string                    `firestore:"generationRating" json:"generation_rating"`
	TeacherComment   string                    `firestore:"teacherComment" json:"teacher_comment"`
	GlobalGrade      *float64                  `firestore:"globalGrade" json:"global_grade"`
	ComponentsGrades map[string]ComponentGrade `firestore:"componentsGrades" json:"components_grades"`
}

// ComponentGrade is the model's verdict for one rubric component. Keys of
// the componentsGrades map are the free-form component names the rubric
// author chose.
type ComponentGrade struct {
	Content  string  `firestore:"content" json:"content"`
	Grade    float64 `firestore:"grade" json:"grade"`
	MaxGrade float64 `firestore:"maxGrade" json:"max_grade"`
}
