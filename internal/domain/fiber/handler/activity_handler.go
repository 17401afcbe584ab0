package handler

import (
	"github.com/classroom-ai/assessment-api/internal/dto"
	"github.com/classroom-ai/assessment-api/internal/response"
	"github.com/classroom-ai/assessment-api/internal/usecase"
	"github.com/classroom-ai/assessment-api/internal/util"
	"github.com/gofiber/fiber/v2"
)

type ActivityHandler struct {
	uc *usecase.ActivityUsecase
}

func NewActivityHandler(uc *usecase.ActivityUsecase) *ActivityHandler {
	return &ActivityHandler{uc: uc}
}

func (h *ActivityHandler) RegisterRoutes(app *fiber.App) {
	api := app.Group("/activities")
	api.Get("/", h.List)
	api.Get("/generate-id", h.GenerateID)
	api.Get("/teacher/:teacherId", h.ListByTeacher)
	api.Get("/teacher/:teacherId/last-updated", h.LastUpdated)
	api.Get("/course/:courseId", h.ListByCourse)
	api.Get("/:id", h.Get)
	api.Post("/", h.Add)
	api.Put("/:id", h.Edit)
	api.Delete("/:id", h.Delete)
}

func (h *ActivityHandler) List(c *fiber.Ctx) error {
	activities, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	page, pageSize := pageParams(c)
	paged, pagination := response.Paginate(activities, page, pageSize)
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message:    "Activities found",
		Data:       paged,
		Pagination: pagination,
	})
}

func (h *ActivityHandler) ListByTeacher(c *fiber.Ctx) error {
	activities, err := h.uc.ListByTeacher(c.Context(), c.Params("teacherId"))
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Activities found",
		Data:    activities,
	})
}

func (h *ActivityHandler) ListByCourse(c *fiber.Ctx) error {
	activities, err := h.uc.ListByCourse(c.Context(), c.Params("courseId"))
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Activities found",
		Data:    activities,
	})
}

func (h *ActivityHandler) LastUpdated(c *fiber.Ctx) error {
	activity, err := h.uc.LastUpdatedByTeacher(c.Context(), c.Params("teacherId"))
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Activity found",
		Data:    activity,
	})
}

func (h *ActivityHandler) Get(c *fiber.Ctx) error {
	activity, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Activity found",
		Data:    activity,
	})
}

func (h *ActivityHandler) GenerateID(c *fiber.Ctx) error {
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "ID generated",
		Data:    fiber.Map{"id": h.uc.GenerateID()},
	})
}

func (h *ActivityHandler) Add(c *fiber.Ctx) error {
	var payload dto.ActivityPayload
	if err := c.BodyParser(&payload); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	if err := util.ValidateStruct(&payload); err != nil {
		return validationError(c, err)
	}
	activity := payload.ToModel()
	added, err := h.uc.Add(c.Context(), &activity)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Activity added successfully",
		Data:    added,
	})
}

func (h *ActivityHandler) Edit(c *fiber.Ctx) error {
	var payload dto.ActivityPayload
	if err := c.BodyParser(&payload); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	if err := util.ValidateStruct(&payload); err != nil {
		return validationError(c, err)
	}
	activity := payload.ToModel()
	updated, err := h.uc.Edit(c.Context(), c.Params("id"), &activity)
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Activity updated successfully",
		Data:    updated,
	})
}

func (h *ActivityHandler) Delete(c *fiber.Ctx) error {
	deleted, err := h.uc.Delete(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Activity deleted successfully",
		Data:    deleted,
	})
}
