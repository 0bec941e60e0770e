package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/customer-api/internal/application/customer"
	"github.com/jhoicas/customer-api/internal/application/dto"
	"github.com/jhoicas/customer-api/internal/domain/entity"
)

// CustomerResourcePath ruta base del recurso de clientes.
const CustomerResourcePath = "/educama/v1/customers"

// CustomerHandler maneja las peticiones HTTP de clientes.
type CustomerHandler struct {
	uc        *customer.CustomerUseCase
	validator *RequestValidator
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *customer.CustomerUseCase, validator *RequestValidator) *CustomerHandler {
	return &CustomerHandler{uc: uc, validator: validator}
}

// Create godoc
// @Summary      Crear cliente
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaveCustomerRequest  true  "Nombre y dirección"
// @Success      201   {object}  dto.CustomerResource
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /educama/v1/customers [post]
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	in, ok, err := h.parseSaveRequest(c)
	if !ok {
		return err
	}
	created, err := h.uc.Create(c.UserContext(), in.Name, in.Address.ToAddress())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToCustomerResource(created))
}

// Update godoc
// @Summary      Actualizar cliente
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        uuid  path  string                   true  "UUID del cliente"
// @Param        body  body  dto.SaveCustomerRequest  true  "Nombre y dirección"
// @Success      200   {object}  dto.CustomerResource
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /educama/v1/customers/{uuid} [put]
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	id, ok, err := parseUUID(c)
	if !ok {
		return err
	}
	in, ok, err := h.parseSaveRequest(c)
	if !ok {
		return err
	}
	updated, err := h.uc.Update(c.UserContext(), id, in.Name, in.Address.ToAddress())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.ToCustomerResource(updated))
}

// Delete godoc
// @Summary      Eliminar cliente
// @Description  Eliminar un UUID inexistente también responde 200.
// @Tags         customers
// @Param        uuid  path  string  true  "UUID del cliente"
// @Success      200
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /educama/v1/customers/{uuid} [delete]
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	id, ok, err := parseUUID(c)
	if !ok {
		return err
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusOK).Send(nil)
}

// List godoc
// @Summary      Listar clientes
// @Tags         customers
// @Produce      json
// @Param        page  query  int  false  "Página (desde 0)"  default(0)
// @Param        size  query  int  false  "Tamaño de página"  default(20)
// @Success      200   {object}  dto.CustomerListResource
// @Router       /educama/v1/customers [get]
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	page, ok, err := parsePage(c)
	if !ok {
		return err
	}
	out, err := h.uc.FindAll(c.UserContext(), page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.ToCustomerListResource(out))
}

// GetByID godoc
// @Summary      Obtener cliente por UUID
// @Tags         customers
// @Produce      json
// @Param        uuid  path  string  true  "UUID del cliente"
// @Success      200   {object}  dto.CustomerResource
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /educama/v1/customers/{uuid} [get]
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	id, ok, err := parseUUID(c)
	if !ok {
		return err
	}
	found, err := h.uc.FindByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.ToCustomerResource(found))
}

// Suggestions godoc
// @Summary      Sugerencias de clientes por nombre
// @Description  Coincidencia parcial sin distinguir mayúsculas.
// @Tags         customers
// @Produce      json
// @Param        term  query  string  true   "Texto a buscar en el nombre"
// @Param        page  query  int     false  "Página (desde 0)"  default(0)
// @Param        size  query  int     false  "Tamaño de página"  default(20)
// @Success      200   {object}  dto.CustomerListResource
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /educama/v1/customers/suggestions [get]
func (h *CustomerHandler) Suggestions(c *fiber.Ctx) error {
	if !c.Context().QueryArgs().Has("term") {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_TERM", Message: "term es requerido"})
	}
	page, ok, err := parsePage(c)
	if !ok {
		return err
	}
	out, err := h.uc.FindSuggestions(c.UserContext(), c.Query("term"), page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.ToCustomerListResource(out))
}

// parseSaveRequest lee y valida el cuerpo. Si ok es false la respuesta ya fue escrita y err es lo que debe retornar el handler.
func (h *CustomerHandler) parseSaveRequest(c *fiber.Ctx) (*dto.SaveCustomerRequest, bool, error) {
	var in dto.SaveCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return nil, false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.validator.Validate(&in); err != nil {
		return nil, false, writeError(c, err)
	}
	return &in, true, nil
}

func parseUUID(c *fiber.Ctx) (uuid.UUID, bool, error) {
	raw := c.Params("uuid")
	if raw == "" {
		return uuid.Nil, false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "uuid es requerido"})
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "uuid inválido"})
	}
	return id, true, nil
}

func parsePage(c *fiber.Ctx) (entity.PageRequest, bool, error) {
	in := dto.PageRequest{Page: 0, Size: entity.DefaultPageSize}
	if err := c.QueryParser(&in); err != nil {
		return entity.PageRequest{}, false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "page y size deben ser enteros"})
	}
	return entity.PageRequest{Page: in.Page, Size: in.Size}, true, nil
}
