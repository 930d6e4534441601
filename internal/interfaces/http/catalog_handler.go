package http

import (
	"errors"

	"github.com/Drko99-0/goodcall-crm/internal/application/dto"
	"github.com/Drko99-0/goodcall-crm/internal/application/usecase"
	"github.com/Drko99-0/goodcall-crm/internal/domain"
	"github.com/gofiber/fiber/v2"
)

// TechnologyHandler catálogo de tecnologías (solo lectura).
type TechnologyHandler struct {
	uc *usecase.TechnologyUseCase
}

// NewTechnologyHandler construye el handler de tecnologías.
func NewTechnologyHandler(uc *usecase.TechnologyUseCase) *TechnologyHandler {
	return &TechnologyHandler{uc: uc}
}

// List godoc
// @Summary      Listar tecnologías
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.TechnologyResponse
// @Router       /api/technologies [get]
func (h *TechnologyHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener tecnología por ID
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID de la tecnología"
// @Success      200  {object}  dto.TechnologyResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/technologies/{id} [get]
func (h *TechnologyHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "tecnología no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// SaleStatusHandler catálogo de estados de venta (solo lectura).
type SaleStatusHandler struct {
	uc *usecase.SaleStatusUseCase
}

// NewSaleStatusHandler construye el handler de estados de venta.
func NewSaleStatusHandler(uc *usecase.SaleStatusUseCase) *SaleStatusHandler {
	return &SaleStatusHandler{uc: uc}
}

// List godoc
// @Summary      Listar estados de venta
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.SaleStatusResponse
// @Router       /api/sale-statuses [get]
func (h *SaleStatusHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener estado de venta por ID
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID del estado"
// @Success      200  {object}  dto.SaleStatusResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sale-statuses/{id} [get]
func (h *SaleStatusHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "estado de venta no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
