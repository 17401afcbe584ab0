package dto

import "github.com/classroom-ai/assessment-api/internal/model"

type StudentPayload struct {
	ID       string `json:"id" validate:"required"`
	Email    string `json:"email" validate:"omitempty,email"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

func (p *StudentPayload) ToModel() model.Student {
	return model.Student{
		ID:       p.ID,
		Email:    p.Email,
		Username: p.Username,
		Name:     p.Name,
	}
}
