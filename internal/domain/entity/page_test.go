package entity_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/customer-api/internal/domain/entity"
)

func TestPageRequest_Normalize(t *testing.T) {
	tests := []struct {
		name string
		in   entity.PageRequest
		want entity.PageRequest
	}{
		{name: "valores por defecto", in: entity.PageRequest{}, want: entity.PageRequest{Page: 0, Size: 20}},
		{name: "size máximo", in: entity.PageRequest{Page: 2, Size: 500}, want: entity.PageRequest{Page: 2, Size: 100}},
		{name: "página negativa", in: entity.PageRequest{Page: -3, Size: 5}, want: entity.PageRequest{Page: 0, Size: 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Normalize())
		})
	}
}

func TestPageRequest_Offset(t *testing.T) {
	assert.Equal(t, 0, entity.PageRequest{Page: 0, Size: 10}.Offset())
	assert.Equal(t, 30, entity.PageRequest{Page: 3, Size: 10}.Offset())
}

func TestPageRequest_Offset_PaginaEnormeNoDesborda(t *testing.T) {
	huge := entity.PageRequest{Page: 922337203685477580, Size: 20}.Normalize()

	assert.Equal(t, math.MaxInt, huge.Offset())
	assert.Equal(t, math.MaxInt, entity.PageRequest{Page: math.MaxInt, Size: entity.MaxPageSize}.Offset())
	assert.Equal(t, (math.MaxInt/20)*20, entity.PageRequest{Page: math.MaxInt / 20, Size: 20}.Offset())
}

func TestCustomerPage_TotalPages(t *testing.T) {
	p := &entity.CustomerPage{Size: 4, Total: 9}
	assert.Equal(t, 3, p.TotalPages())
	assert.False(t, p.HasContent())

	empty := &entity.CustomerPage{Size: 4}
	assert.Equal(t, 0, empty.TotalPages())
}
