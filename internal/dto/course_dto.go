package dto

import "github.com/classroom-ai/assessment-api/internal/model"

type CoursePayload struct {
	ID             string `json:"id" validate:"required"`
	Faculty        string `json:"faculty"`
	Department     string `json:"department"`
	Degree         string `json:"degree"`
	Subject        string `json:"subject" validate:"required"`
	SubjectCode    string `json:"subject_code"`
	Modality       string `json:"modality"`
	TeacherID      string `json:"teacher_id" validate:"required"`
	AcademicPeriod string `json:"academic_period"`
	AcademicLevel  int    `json:"academic_level"`
}

func (p *CoursePayload) ToModel() model.Course {
	return model.Course{
		ID:             p.ID,
		Faculty:        p.Faculty,
		Department:     p.Department,
		Degree:         p.Degree,
		Subject:        p.Subject,
		SubjectCode:    p.SubjectCode,
		Modality:       p.Modality,
		TeacherID:      p.TeacherID,
		AcademicPeriod: p.AcademicPeriod,
		AcademicLevel:  p.AcademicLevel,
	}
}
