package news

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name        string
		page        int
		totalPages  int
		hasNext     bool
		hasPrevious bool
	}{
		{"FirstOfMany", 1, 6, true, false},
		{"MiddlePage", 3, 6, true, true},
		{"LastPage", 6, 6, false, true},
		{"SinglePage", 1, 1, false, false},
		{"EmptyResult", 1, 0, false, false},
		{"BeyondLast", 9, 6, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(tt.page, 10, tt.totalPages*10, tt.totalPages)
			assert.Equal(t, tt.hasNext, p.HasNext)
			assert.Equal(t, tt.hasPrevious, p.HasPrevious)
			assert.Equal(t, tt.page, p.Page)
			assert.Equal(t, 10, p.PageSize)
		})
	}
}

func TestEmptyPage(t *testing.T) {
	page := EmptyPage[Article](10)

	assert.NotNil(t, page.Data)
	assert.Empty(t, page.Data)
	assert.Equal(t, Pagination{Page: 1, PageSize: 10}, page.Pagination)
}
