package http

import (
	"errors"

	"github.com/Drko99-0/goodcall-crm/internal/application/dto"
	"github.com/Drko99-0/goodcall-crm/internal/application/usecase"
	"github.com/Drko99-0/goodcall-crm/internal/domain"
	"github.com/gofiber/fiber/v2"
)

// GoalHandler maneja las peticiones HTTP para el recurso Goal. Todas las
// respuestas incluyen currentSales calculado sobre las ventas del mes.
type GoalHandler struct {
	uc *usecase.GoalUseCase
}

// NewGoalHandler construye el handler inyectando el caso de uso.
func NewGoalHandler(uc *usecase.GoalUseCase) *GoalHandler {
	return &GoalHandler{uc: uc}
}

// Create godoc
// @Summary      Crear objetivo de ventas
// @Tags         goals
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateGoalRequest  true  "Datos del objetivo"
// @Success      201   {object}  dto.GoalResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/goals [post]
func (h *GoalHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateGoalRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return goalError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar objetivos con progreso
// @Tags         goals
// @Produce      json
// @Security     BearerAuth
// @Param        year       query  int     false  "Año"
// @Param        month      query  int     false  "Mes (1-12)"
// @Param        user_id    query  string  false  "Usuario objetivo"
// @Param        goal_type  query  string  false  "global | coordinador | asesor"
// @Success      200  {array}  dto.GoalResponse
// @Router       /api/goals [get]
func (h *GoalHandler) List(c *fiber.Ctx) error {
	var q dto.QueryGoalsRequest
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "filtros inválidos"})
	}
	out, err := h.uc.List(q)
	if err != nil {
		return goalError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener objetivo por ID
// @Tags         goals
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID del objetivo"
// @Success      200  {object}  dto.GoalResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/goals/{id} [get]
func (h *GoalHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return goalError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar la meta de un objetivo
// @Tags         goals
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                 true  "ID del objetivo"
// @Param        body  body  dto.UpdateGoalRequest  true  "targetSales"
// @Success      200   {object}  dto.GoalResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/goals/{id} [patch]
func (h *GoalHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateGoalRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return goalError(c, err)
	}
	return c.JSON(out)
}

func goalError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "objetivo no encontrado"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos de objetivo inválidos"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe un objetivo para ese tipo, usuario y mes"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
