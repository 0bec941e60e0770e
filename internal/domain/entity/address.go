package entity

// Address dirección postal de un cliente (objeto valor, sin identidad propia).
type Address struct {
	Street      string
	HouseNumber string
	PostalCode  string
	City        string
}
