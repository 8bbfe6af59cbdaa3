package helpers

import (
	"math"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPaginationInfo(t *testing.T) {
	p := NewPaginationInfo(12, 2, 5)
	assert.Equal(t, 2, p.CurrentPage)
	assert.Equal(t, 3, p.TotalPages)
	assert.Equal(t, 5, p.PageSize)
	assert.EqualValues(t, 12, p.TotalItems)

	p = NewPaginationInfo(12, 9, 5)
	assert.Equal(t, 3, p.CurrentPage)

	p = NewPaginationInfo(0, 1, 5)
	assert.Equal(t, 1, p.TotalPages)
}

func TestCalculateSliceIndices(t *testing.T) {
	tests := []struct {
		page, size, total int
		start, end        int
	}{
		{page: 1, size: 5, total: 12, start: 0, end: 5},
		{page: 3, size: 5, total: 12, start: 10, end: 12},
		{page: 4, size: 5, total: 12, start: 12, end: 12},
		{page: 0, size: 0, total: 3, start: 0, end: 3},
		{page: 2, size: 5, total: 0, start: 0, end: 0},
		{page: math.MaxInt / 10, size: 10, total: 1, start: 1, end: 1},
		{page: math.MaxInt, size: MaxPageSize, total: 250, start: 250, end: 250},
	}
	for _, tt := range tests {
		start, end := CalculateSliceIndices(tt.page, tt.size, tt.total)
		assert.Equal(t, tt.start, start)
		assert.Equal(t, tt.end, end)
	}
}

func TestParsePaginationParams(t *testing.T) {
	gin.SetMode(gin.TestMode)

	parse := func(rawQuery string) (int, int, bool) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest("GET", "/api/students?"+rawQuery, nil)
		return ParsePaginationParams(c)
	}

	_, _, ok := parse("status=Pending")
	assert.False(t, ok)

	page, size, ok := parse("page=2&size=5")
	assert.True(t, ok)
	assert.Equal(t, 2, page)
	assert.Equal(t, 5, size)

	page, size, ok = parse("page=abc&size=1000")
	assert.True(t, ok)
	assert.Equal(t, DefaultPage, page)
	assert.Equal(t, DefaultPageSize, size)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2004-05-17")
	require.NoError(t, err)
	assert.True(t, time.Date(2004, 5, 17, 0, 0, 0, 0, time.UTC).Equal(d))

	d, err = ParseDate("2004-05-17T10:00:00+05:30")
	require.NoError(t, err)
	assert.True(t, time.Date(2004, 5, 17, 4, 30, 0, 0, time.UTC).Equal(d))

	_, err = ParseDate("17/05/2004")
	assert.Error(t, err)
}

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 2*time.Hour, ParseDuration("2h", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("soon", time.Minute))
}
