package httpx

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ClampInt - ограничение значения v в диапазоне [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// OptionalPositiveInt читает необязательный положительный параметр query.
// Отсутствующий или пустой параметр даёт 0 («не задан»); всё остальное,
// что не является целым > 0, считается ошибкой клиента.
func OptionalPositiveInt(c *gin.Context, name string) (int, error) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("query parameter %q must be a positive integer, got %q", name, raw)
	}
	return v, nil
}

// ParsePage читает page/page_size; page_size прижимается к maxPageSize.
func ParsePage(c *gin.Context, maxPageSize int) (page, pageSize int, err error) {
	if page, err = OptionalPositiveInt(c, "page"); err != nil {
		return 0, 0, err
	}
	if pageSize, err = OptionalPositiveInt(c, "page_size"); err != nil {
		return 0, 0, err
	}
	if pageSize > 0 {
		pageSize = ClampInt(pageSize, 1, maxPageSize)
	}
	return page, pageSize, nil
}
