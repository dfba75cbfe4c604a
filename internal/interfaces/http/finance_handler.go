package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/materiales-pro/internal/application/dto"
	"github.com/tu-usuario/materiales-pro/internal/application/usecase"
)

// FinanceHandler maneja registros de ingresos y egresos (protegido).
type FinanceHandler struct {
	uc *usecase.FinanceUseCase
}

// NewFinanceHandler construye el handler.
func NewFinanceHandler(uc *usecase.FinanceUseCase) *FinanceHandler {
	return &FinanceHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar ingreso o egreso
// @Tags         registros
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateFinanceRecordRequest  true  "Datos del registro"
// @Success      201   {object}  dto.FinanceRecordResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/registros [post]
func (h *FinanceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateFinanceRecordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.BranchID == "" {
		in.BranchID = GetBranchID(c)
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID obtiene un registro.
func (h *FinanceHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar registros
// @Tags         registros
// @Security     Bearer
// @Produce      json
// @Param        tipo         query  string  false  "ingreso o egreso"
// @Param        sucursal_id  query  string  false  "Filtrar por sucursal"
// @Param        limit        query  int     false  "Límite"   default(50)
// @Param        offset       query  int     false  "Offset"   default(0)
// @Success      200          {array}  dto.FinanceRecordResponse
// @Router       /api/registros [get]
func (h *FinanceHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Query("tipo"), c.Query("sucursal_id"),
		c.QueryInt("limit", 50), c.QueryInt("offset", 0))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update actualiza un registro.
func (h *FinanceHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateFinanceRecordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete elimina un registro.
func (h *FinanceHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Summary godoc
// @Summary      Resumen de ingresos y egresos
// @Tags         registros
// @Security     Bearer
// @Produce      json
// @Param        sucursal_id  query  string  false  "Filtrar por sucursal"
// @Param        desde        query  string  false  "Fecha inicial YYYY-MM-DD"
// @Param        hasta        query  string  false  "Fecha final YYYY-MM-DD"
// @Success      200          {object}  dto.FinanceSummaryResponse
// @Router       /api/registros/resumen [get]
func (h *FinanceHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary(c.Query("sucursal_id"), c.Query("desde"), c.Query("hasta"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
