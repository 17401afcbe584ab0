package handler

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/classroom-ai/assessment-api/internal/dto"
	"github.com/classroom-ai/assessment-api/internal/middleware"
	"github.com/classroom-ai/assessment-api/internal/model"
	"github.com/classroom-ai/assessment-api/internal/response"
	"github.com/classroom-ai/assessment-api/internal/usecase"
	"github.com/classroom-ai/assessment-api/internal/util"
	"github.com/gofiber/fiber/v2"
)

const maxSubmissionFileSize = 5 * 1024 * 1024

// plainTextExts are submission file types read verbatim; anything else
// except PDF is rejected.
var plainTextExts = map[string]bool{
	"txt": true, "md": true, "java": true, "py": true, "js": true,
	"ts": true, "go": true, "c": true, "cpp": true, "sql": true,
}

type AssessmentHandler struct {
	uc *usecase.AssessmentUsecase
}

func NewAssessmentHandler(uc *usecase.AssessmentUsecase) *AssessmentHandler {
	return &AssessmentHandler{uc: uc}
}

func (h *AssessmentHandler) RegisterRoutes(app *fiber.App) {
	api := app.Group("/ai-assessment")
	// Generation runs can take minutes of model time; keep them behind a
	// tighter limiter than the rest of the API.
	api.Get("/activity/:id/assess", middleware.RateLimiter(2, 1*time.Minute), h.Generate)
	api.Get("/activity/:id/list", h.ListByActivity)
	api.Post("/activity/:id/add-submissions", h.AddSubmissions)
	api.Post("/activity/:activityId/student/:studentId/re-assessment", middleware.RateLimiter(5, 1*time.Minute), h.Reassess)
	api.Get("/activity/:activityId/student/:studentId", h.GetOne)
	api.Put("/activity/:activityId/student/:studentId/update", h.Update)
	api.Post("/activity/:activityId/student/:studentId/upload-submission", h.UploadSubmission)
}

func (h *AssessmentHandler) Generate(c *fiber.Ctx) error {
	processed, err := h.uc.GenerateForActivity(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if len(processed) == 0 {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Assessments generated successfully",
		Data:    processed,
	})
}

func (h *AssessmentHandler) ListByActivity(c *fiber.Ctx) error {
	assessments, err := h.uc.ListByActivity(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if len(assessments) == 0 {
		return c.SendStatus(fiber.StatusNoContent)
	}
	page, pageSize := pageParams(c)
	paged, pagination := response.Paginate(assessments, page, pageSize)
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message:    "Assessments found",
		Data:       paged,
		Pagination: pagination,
	})
}

func (h *AssessmentHandler) AddSubmissions(c *fiber.Ctx) error {
	var payloads []dto.SubmissionPayload
	if err := c.BodyParser(&payloads); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	assessments := make([]model.Assessment, 0, len(payloads))
	for i := range payloads {
		if err := util.ValidateStruct(&payloads[i]); err != nil {
			return validationError(c, err)
		}
		assessments = append(assessments, payloads[i].ToModel())
	}

	added, err := h.uc.AddSubmissions(c.Context(), c.Params("id"), assessments)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Submissions added successfully",
		Data:    added,
	})
}

// Reassess takes the teacher's comment as the raw request body.
func (h *AssessmentHandler) Reassess(c *fiber.Ctx) error {
	comment := strings.TrimSpace(string(c.Body()))
	assessment, err := h.uc.StudentReassessment(c.Context(), c.Params("activityId"), c.Params("studentId"), comment)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Re-assessment generated successfully",
		Data:    assessment,
	})
}

func (h *AssessmentHandler) GetOne(c *fiber.Ctx) error {
	assessment, err := h.uc.GetByActivityAndStudent(c.Context(), c.Params("activityId"), c.Params("studentId"))
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Assessment found",
		Data:    assessment,
	})
}

func (h *AssessmentHandler) Update(c *fiber.Ctx) error {
	var assessment model.Assessment
	if err := c.BodyParser(&assessment); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	updated, err := h.uc.Update(c.Context(), c.Params("activityId"), c.Params("studentId"), &assessment)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Assessment updated successfully",
		Data:    updated,
	})
}

func (h *AssessmentHandler) UploadSubmission(c *fiber.Ctx) error {
	file, err := c.FormFile("submission")
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "submission file is required",
		}, err)
	}
	if file.Size > maxSubmissionFileSize {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "submission file is too large (max 5MB)",
		})
	}

	tmp, err := os.CreateTemp("", "submission-*"+filepath.Ext(file.Filename))
	if err != nil {
		return respondError(c, err)
	}
	tmpPath := tmp.Name()
	tmp.Close()
	defer os.Remove(tmpPath)

	if err := c.SaveFile(file, tmpPath); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "cannot save submission file",
		}, err)
	}

	ext := fileExt(file.Filename)
	var text string
	switch {
	case ext == "pdf":
		text, err = util.ExtractPDFText(tmpPath)
	case plainTextExts[ext]:
		text, err = util.ExtractPlainText(tmpPath)
	default:
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "unsupported submission file type",
		})
	}
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "failed to extract submission text",
		}, err)
	}

	assessment, err := h.uc.UploadSubmission(c.Context(), c.Params("activityId"), c.Params("studentId"), text, ext)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Submission uploaded successfully",
		Data:    assessment,
	})
}
