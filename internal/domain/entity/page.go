package entity

import "math"

// Límites de paginación.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// PageRequest solicitud de página (Page empieza en 0).
type PageRequest struct {
	Page int
	Size int
}

// Normalize aplica valores por defecto y límites.
func (p PageRequest) Normalize() PageRequest {
	if p.Size <= 0 {
		p.Size = DefaultPageSize
	}
	if p.Size > MaxPageSize {
		p.Size = MaxPageSize
	}
	if p.Page < 0 {
		p.Page = 0
	}
	return p
}

// Offset devuelve la cantidad de filas a saltar. Si Page*Size no cabe en un int
// devuelve math.MaxInt: la página queda más allá del final y sale vacía.
func (p PageRequest) Offset() int {
	if p.Page <= 0 || p.Size <= 0 {
		return 0
	}
	if p.Page > math.MaxInt/p.Size {
		return math.MaxInt
	}
	return p.Page * p.Size
}

// CustomerPage ventana ordenada de clientes más el total de la colección consultada.
type CustomerPage struct {
	Items []*Customer
	Page  int
	Size  int
	Total int
}

// HasContent indica si la página trae al menos un cliente.
func (p *CustomerPage) HasContent() bool {
	return len(p.Items) > 0
}

// TotalPages número de páginas para el tamaño actual.
func (p *CustomerPage) TotalPages() int {
	if p.Size <= 0 {
		return 0
	}
	return (p.Total + p.Size - 1) / p.Size
}
