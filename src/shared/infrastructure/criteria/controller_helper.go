package criteria

import (
	"strconv"

	domainCriteria "github.com/iquintero24/Firmeza-project/src/shared/domain/criteria"

	"github.com/gin-gonic/gin"
)

// ControllerHelper proporciona funciones base para trabajar con criterios en controllers
type ControllerHelper struct{}

// NewControllerHelper crea una nueva instancia del helper
func NewControllerHelper() *ControllerHelper {
	return &ControllerHelper{}
}

// BuildListCriteria construye un criteria de listado desde query parameters de Gin.
// Soporta: ?search=<texto> (ILIKE sobre searchField), ?page=N, ?page_size=N.
func (h *ControllerHelper) BuildListCriteria(c *gin.Context, searchField, defaultOrderField string) domainCriteria.Criteria {
	var filters domainCriteria.Filters
	if search := c.Query("search"); search != "" && searchField != "" {
		filters = domainCriteria.NewFilters(
			domainCriteria.NewFilter(searchField, domainCriteria.OpLike, search),
		)
	}

	order := domainCriteria.NewOrder(defaultOrderField, domainCriteria.OrderAsc)

	page := parsePositiveInt(c.Query("page"), 1)
	pageSize := parsePositiveInt(c.Query("page_size"), 50)
	if pageSize > 200 {
		pageSize = 200
	}

	limit, offset := domainCriteria.NewPagination(pageSize, (page-1)*pageSize)

	return domainCriteria.NewCriteria(filters, order, limit, offset)
}

func parsePositiveInt(s string, fallback int) int {
	if s == "" {
		return fallback
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
