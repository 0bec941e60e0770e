package dto

import (
	"github.com/jhoicas/customer-api/internal/domain/entity"
)

// SaveCustomerRequest entrada para crear o actualizar un cliente.
type SaveCustomerRequest struct {
	Name    string          `json:"name" validate:"required,notblank,max=255"`
	Address *AddressRequest `json:"address" validate:"required"`
}

// AddressRequest dirección postal en la entrada.
type AddressRequest struct {
	Street      string `json:"street" validate:"required,max=255"`
	HouseNumber string `json:"houseNumber" validate:"required,max=32"`
	PostalCode  string `json:"postalCode" validate:"required,max=32"`
	City        string `json:"city" validate:"required,max=255"`
}

// ToAddress convierte la entrada al objeto valor del dominio.
func (a *AddressRequest) ToAddress() entity.Address {
	if a == nil {
		return entity.Address{}
	}
	return entity.Address{
		Street:      a.Street,
		HouseNumber: a.HouseNumber,
		PostalCode:  a.PostalCode,
		City:        a.City,
	}
}

// CustomerResource salida de un cliente.
type CustomerResource struct {
	UUID    string          `json:"uuid"`
	Name    string          `json:"name"`
	Address AddressResource `json:"address"`
}

// AddressResource dirección postal en la salida.
type AddressResource struct {
	Street      string `json:"street"`
	HouseNumber string `json:"houseNumber"`
	PostalCode  string `json:"postalCode"`
	City        string `json:"city"`
}

// CustomerListResource lista paginada de clientes.
type CustomerListResource struct {
	Content []CustomerResource `json:"content"`
	Page    PageResponse       `json:"page"`
}

// ToCustomerResource copia los campos de la entidad a su representación JSON.
func ToCustomerResource(c *entity.Customer) CustomerResource {
	return CustomerResource{
		UUID: c.ID.String(),
		Name: c.Name,
		Address: AddressResource{
			Street:      c.Address.Street,
			HouseNumber: c.Address.HouseNumber,
			PostalCode:  c.Address.PostalCode,
			City:        c.Address.City,
		},
	}
}

// ToCustomerListResource arma la lista paginada; content nunca es null.
func ToCustomerListResource(p *entity.CustomerPage) CustomerListResource {
	content := make([]CustomerResource, 0, len(p.Items))
	for _, c := range p.Items {
		content = append(content, ToCustomerResource(c))
	}
	return CustomerListResource{
		Content: content,
		Page: PageResponse{
			Number:        p.Page,
			Size:          p.Size,
			TotalElements: p.Total,
			TotalPages:    p.TotalPages(),
		},
	}
}
