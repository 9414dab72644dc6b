package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/cafe-pos/internal/application/dto"
	"github.com/tu-usuario/cafe-pos/internal/application/sales"
	"github.com/tu-usuario/cafe-pos/internal/domain/entity"
	"github.com/tu-usuario/cafe-pos/internal/domain/repository"
)

// SaleHandler maneja las peticiones HTTP del libro de ventas.
type SaleHandler struct {
	uc       *sales.PostSaleUseCase
	receipts sales.ReceiptGenerator
	settings repository.SettingsRepository
}

// NewSaleHandler construye el handler.
func NewSaleHandler(uc *sales.PostSaleUseCase, receipts sales.ReceiptGenerator, settings repository.SettingsRepository) *SaleHandler {
	return &SaleHandler{uc: uc, receipts: receipts, settings: settings}
}

// Create godoc
// @Summary      Registrar venta
// @Description  Registra la venta y descuenta las recetas del stock en una sola transacción.
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSaleRequest  true  "Carrito y método de pago"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.PostSale(c.UserContext(), in, GetUserID(c), GetFullName(c))
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar ventas
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        date  query  string  false  "Día calendario YYYY-MM-DD"
// @Success      200   {array}  dto.SaleResponse
// @Router       /api/sales [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Query("date"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Receipt godoc
// @Summary      Ticket PDF de una venta
// @Tags         sales
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/receipt [get]
func (h *SaleHandler) Receipt(c *fiber.Ctx) error {
	saleDTO, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}

	cfg, err := h.settings.Get()
	if err != nil {
		return domainError(c, err)
	}

	sale := &entity.Sale{
		ID:            saleDTO.ID,
		Items:         saleDTO.Items,
		Subtotal:      saleDTO.Subtotal,
		TotalCost:     saleDTO.TotalCost,
		TotalProfit:   saleDTO.TotalProfit,
		PaymentMethod: saleDTO.PaymentMethod,
		Timestamp:     saleDTO.Timestamp,
		CashierID:     saleDTO.CashierID,
		CashierName:   saleDTO.CashierName,
	}
	pdfBytes, err := h.receipts.GenerateReceipt(c.UserContext(), sale, cfg)
	if err != nil {
		return domainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="ticket-`+sale.ID+`.pdf"`)
	return c.Send(pdfBytes)
}
