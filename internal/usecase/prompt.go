package usecase

import (
	"fmt"

	"github.com/classroom-ai/assessment-api/internal/model"
)

const promptTemplate = "You are the teacher of the subject: %s, acting as the reviewer of student work. " +
	"Within the thematic unit: %s, the activity: %s was assigned, aiming at the following expected learning outcomes: %s. " +
	"The activity was presented as follows: %s. " + "The student's submission is the following: %s. " +
	"Give me the result of your analysis of the student's answer against the following rubric: %s, " +
	"and in addition to the analysis include a grade that falls within the range the rubric specifies. " +
	"Provide a specific analysis for every component of the rubric. " +
	"Include clear and complete observations, with concrete examples backing your evaluation. " +
	"Provide detailed recommendations even for components done correctly, and justify the grade assigned within the rubric's range. " +
	"verbosity has 3 values: 'low' gives brief feedback with general observations; " +
	"'medium' gives feedback with observations and key examples; " +
	"'high' gives detailed feedback with complete observations and specific examples. "

const responseSchema = `{ "type": "json_object",
    "properties": {
        "componentsGrades": {
            "item component of rubric evaluation": {
                "type": "json_object",
                "properties": {
                    "content": {"type": "string", "verbosity": "medium", "feedbackType": "constructive"},
                    "grade": {"type": "number", "strictnessLevel": "lenient"},
                    "maxGrade": {"type": "number"}
                },
                "required": ["content", "grade", "maxGrade"],
                "additionalProperties": false
            }
        },
        "globalGrade": {"type": "number"}
    },
    "required": ["componentsGrades", "globalGrade"],
    "strictnessGradesLevel": "moderate",
    "additionalProperties": false }`

// buildPrompt renders the rubric-grounded grading instruction for one
// submission. Pure string assembly: identical inputs yield byte-identical
// prompts, which is what makes generation runs reproducible and testable.
func buildPrompt(course *model.Course, activity *model.Activity, assessment *model.Assessment) string {
	return fmt.Sprintf(
		promptTemplate,
		course.Subject,
		activity.UnitTheme,
		activity.Name,
		activity.ExpectedLearningOutcomes,
		activity.DidacticStrategies,
		assessment.Submission,
		activity.AssessmentRubric,
	) + "The response must be structured as follows: " + responseSchema
}

// buildReassessmentPrompt appends the teacher's guidance to the standard
// prompt so the model weighs it for every rubric component.
func buildReassessmentPrompt(course *model.Course, activity *model.Activity, assessment *model.Assessment, comment string) string {
	return buildPrompt(course, activity, assessment) +
		"\nTake these additional details into account when evaluating each of the components of the assessment rubric: " + comment
}
