package dto

import "github.com/classroom-ai/assessment-api/internal/model"

// SubmissionPayload is one entry of the add-submissions request body.
type SubmissionPayload struct {
	ID         string `json:"id" validate:"required"`
	Submission string `json:"submission"`
	FileType   string `json:"file_type"`
	Status     string `json:"status" validate:"omitempty,oneof=pending reviewed missing"`
	Feedback   string `json:"feedback"`
}

func (p *SubmissionPayload) ToModel() model.Assessment {
	status := p.Status
	if status == "" {
		status = model.StatusPending
	}
	return model.Assessment{
		ID:         p.ID,
		Submission: p.Submission,
		FileType:   p.FileType,
		Status:     status,
		Feedback:   p.Feedback,
	}
}
