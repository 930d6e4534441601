package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuerySalesRequest_DefaultPage(t *testing.T) {
	var q QuerySalesRequest
	q.DefaultPage()
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 100, q.Limit)
}

func TestDefaultPage_RespetaValoresExplicitos(t *testing.T) {
	q := QuerySalesRequest{PageRequest: PageRequest{Page: 3, Limit: 25}}
	q.DefaultPage()
	assert.Equal(t, 3, q.Page)
	assert.Equal(t, 25, q.Limit)
}
