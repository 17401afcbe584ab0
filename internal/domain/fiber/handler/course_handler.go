package handler

import (
	"github.com/classroom-ai/assessment-api/internal/dto"
	"github.com/classroom-ai/assessment-api/internal/response"
	"github.com/classroom-ai/assessment-api/internal/usecase"
	"github.com/classroom-ai/assessment-api/internal/util"
	"github.com/gofiber/fiber/v2"
)

type CourseHandler struct {
	uc *usecase.CourseUsecase
}

func NewCourseHandler(uc *usecase.CourseUsecase) *CourseHandler {
	return &CourseHandler{uc: uc}
}

func (h *CourseHandler) RegisterRoutes(app *fiber.App) {
	api := app.Group("/courses")
	api.Get("/", h.List)
	api.Get("/generate-id", h.GenerateID)
	api.Get("/teacher/:teacherId", h.ListByTeacher)
	api.Get("/:id", h.Get)
	api.Post("/", h.Add)
	api.Put("/:id", h.Edit)
	api.Delete("/:id", h.Delete)
}

func (h *CourseHandler) List(c *fiber.Ctx) error {
	courses, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	page, pageSize := pageParams(c)
	paged, pagination := response.Paginate(courses, page, pageSize)
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message:    "Courses found",
		Data:       paged,
		Pagination: pagination,
	})
}

func (h *CourseHandler) ListByTeacher(c *fiber.Ctx) error {
	courses, err := h.uc.ListByTeacher(c.Context(), c.Params("teacherId"))
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Courses found",
		Data:    courses,
	})
}

func (h *CourseHandler) Get(c *fiber.Ctx) error {
	course, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Course found",
		Data:    course,
	})
}

func (h *CourseHandler) GenerateID(c *fiber.Ctx) error {
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "ID generated",
		Data:    fiber.Map{"id": h.uc.GenerateID()},
	})
}

func (h *CourseHandler) Add(c *fiber.Ctx) error {
	var payload dto.CoursePayload
	if err := c.BodyParser(&payload); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	if err := util.ValidateStruct(&payload); err != nil {
		return validationError(c, err)
	}
	course := payload.ToModel()
	added, err := h.uc.Add(c.Context(), &course)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Course added successfully",
		Data:    added,
	})
}

func (h *CourseHandler) Edit(c *fiber.Ctx) error {
	var payload dto.CoursePayload
	if err := c.BodyParser(&payload); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	if err := util.ValidateStruct(&payload); err != nil {
		return validationError(c, err)
	}
	course := payload.ToModel()
	updated, err := h.uc.Edit(c.Context(), c.Params("id"), &course)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Course updated successfully",
		Data:    updated,
	})
}

func (h *CourseHandler) Delete(c *fiber.Ctx) error {
	deleted, err := h.uc.Delete(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Course deleted successfully",
		Data:    deleted,
	})
}
