package usecase

import (
	"github.com/classroom-ai/assessment-api/internal/model"
	"github.com/tidwall/gjson"
)

// gradingResult is what could be recovered from one model completion. A
// nil GlobalGrade and nil ComponentsGrades mean the output did not match
// the requested schema.
type gradingResult struct {
	GlobalGrade      *float64
	ComponentsGrades map[string]model.ComponentGrade
}

// parseGrading extracts the global grade and per-component grades from
// the model's JSON text. Models sometimes echo the schema directive back,
// nesting the values under a "properties" level, and sometimes answer
// with bare top-level keys; both shapes are accepted. Malformed or
// mismatched output yields an empty result, never an error: the model is
// not contractually bound to the schema, and one bad completion must not
// fail a batch. Grades are passed through unchanged, even when they fall
// outside the component's declared maximum.
func parseGrading(text string) gradingResult {
	var result gradingResult
	if !gjson.Valid(text) {
		return result
	}

	root := gjson.Parse(text)
	if props := root.Get("properties"); props.IsObject() {
		root = props
	}

	if g := root.Get("globalGrade"); g.Type == gjson.Number {
		grade := g.Float()
		result.GlobalGrade = &grade
	}

	components := root.Get("componentsGrades")
	if !components.IsObject() {
		return result
	}

	grades := make(map[string]model.ComponentGrade)
	components.ForEach(func(key, value gjson.Result) bool {
		data := value
		if props := value.Get("properties"); props.IsObject() {
			data = props
		}
		grades[key.String()] = model.ComponentGrade{
			Content:  data.Get("content").String(),
			Grade:    data.Get("grade").Float(),
			MaxGrade: data.Get("maxGrade").Float(),
		}
		return true
	})
	if len(grades) > 0 {
		result.ComponentsGrades = grades
	}
	return result
}
