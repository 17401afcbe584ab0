package handler

import (
	"github.com/classroom-ai/assessment-api/internal/dto"
	"github.com/classroom-ai/assessment-api/internal/model"
	"github.com/classroom-ai/assessment-api/internal/usecase"
	"github.com/classroom-ai/assessment-api/internal/util"
	"github.com/gofiber/fiber/v2"
)

type StudentHandler struct {
	uc *usecase.StudentUsecase
}

func NewStudentHandler(uc *usecase.StudentUsecase) *StudentHandler {
	return &StudentHandler{uc: uc}
}

func (h *StudentHandler) RegisterRoutes(app *fiber.App) {
	api := app.Group("/courses/:courseId/students")
	api.Get("/", h.ListByCourse)
	api.Post("/", h.Add)
	api.Post("/batch", h.AddStudents)
	api.Put("/:studentId", h.Edit)
	api.Delete("/:studentId", h.Delete)
}

func (h *StudentHandler) ListByCourse(c *fiber.Ctx) error {
	students, err := h.uc.ListByCourse(c.Context(), c.Params("courseId"))
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Students found",
		Data:    students,
	})
}

func (h *StudentHandler) Add(c *fiber.Ctx) error {
	var payload dto.StudentPayload
	if err := c.BodyParser(&payload); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	if err := util.ValidateStruct(&payload); err != nil {
		return validationError(c, err)
	}
	student := payload.ToModel()
	added, err := h.uc.Add(c.Context(), c.Params("courseId"), &student)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Student added successfully",
		Data:    added,
	})
}

// AddStudents enrolls a batch and reports which ids failed instead of
// failing the whole request.
func (h *StudentHandler) AddStudents(c *fiber.Ctx) error {
	var payloads []dto.StudentPayload
	if err := c.BodyParser(&payloads); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	students := make([]model.Student, 0, len(payloads))
	for i := range payloads {
		if err := util.ValidateStruct(&payloads[i]); err != nil {
			return validationError(c, err)
		}
		students = append(students, payloads[i].ToModel())
	}

	failed, err := h.uc.AddStudents(c.Context(), c.Params("courseId"), students)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Students added",
		Data:    fiber.Map{"failed_ids": failed},
	})
}

func (h *StudentHandler) Edit(c *fiber.Ctx) error {
	var payload dto.StudentPayload
	if err := c.BodyParser(&payload); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	if err := util.ValidateStruct(&payload); err != nil {
		return validationError(c, err)
	}
	if payload.ID != c.Params("studentId") {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "student id mismatch with the id provided in the path",
		})
	}
	student := payload.ToModel()
	updated, err := h.uc.Edit(c.Context(), c.Params("courseId"), &student)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Student updated successfully",
		Data:    updated,
	})
}

func (h *StudentHandler) Delete(c *fiber.Ctx) error {
	deleted, err := h.uc.Delete(c.Context(), c.Params("courseId"), c.Params("studentId"))
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Student deleted successfully",
		Data:    deleted,
	})
}
