package criteria

import (
	"testing"

	"github.com/stretchr/testify/assert"

	domainCriteria "github.com/iquintero24/Firmeza-project/src/shared/domain/criteria"
)

func TestToSelectSQLNoCriteria(t *testing.T) {
	conv := NewSQLCriteriaConverter()

	query, params := conv.ToSelectSQL("SELECT * FROM products", domainCriteria.Criteria{})

	assert.Equal(t, "SELECT * FROM products", query)
	assert.Empty(t, params)
}

func TestToSelectSQLFull(t *testing.T) {
	conv := NewSQLCriteriaConverter()
	limit, offset := domainCriteria.NewPagination(50, 100)

	c := domainCriteria.NewCriteria(
		domainCriteria.NewFilters(
			domainCriteria.NewFilter("name", domainCriteria.OpLike, "cemento"),
			domainCriteria.NewFilter("stock", domainCriteria.OpGreaterThan, 0),
		),
		domainCriteria.NewOrder("name", domainCriteria.OrderAsc),
		limit, offset,
	)

	query, params := conv.ToSelectSQL("SELECT * FROM products", c)

	assert.Equal(t,
		"SELECT * FROM products WHERE name ILIKE $1 AND stock > $2 ORDER BY name ASC LIMIT 50 OFFSET 100",
		query)
	assert.Equal(t, []interface{}{"%cemento%", 0}, params)
}

func TestToSelectSQLLikeKeepsExplicitWildcards(t *testing.T) {
	conv := NewSQLCriteriaConverter()

	c := domainCriteria.NewCriteria(
		domainCriteria.NewFilters(
			domainCriteria.NewFilter("name", domainCriteria.OpLike, "cem%"),
		),
		domainCriteria.Order{}, nil, nil,
	)

	_, params := conv.ToSelectSQL("SELECT * FROM products", c)
	assert.Equal(t, []interface{}{"cem%"}, params)
}

func TestToSelectSQLNullOperatorsTakeNoParams(t *testing.T) {
	conv := NewSQLCriteriaConverter()

	c := domainCriteria.NewCriteria(
		domainCriteria.NewFilters(
			domainCriteria.NewFilter("auth_user_id", domainCriteria.OpIsNull, nil),
			domainCriteria.NewFilter("email", domainCriteria.OpEqual, "a@firmeza.co"),
		),
		domainCriteria.Order{}, nil, nil,
	)

	query, params := conv.ToSelectSQL("SELECT * FROM customers", c)

	assert.Equal(t, "SELECT * FROM customers WHERE auth_user_id IS NULL AND email = $1", query)
	assert.Equal(t, []interface{}{"a@firmeza.co"}, params)
}

func TestToCountSQLDropsOrderAndPagination(t *testing.T) {
	conv := NewSQLCriteriaConverter()
	limit, offset := domainCriteria.NewPagination(10, 0)

	c := domainCriteria.NewCriteria(
		domainCriteria.NewFilters(
			domainCriteria.NewFilter("name", domainCriteria.OpLike, "varilla"),
		),
		domainCriteria.NewOrder("name", domainCriteria.OrderDesc),
		limit, offset,
	)

	query, params := conv.ToCountSQL("SELECT COUNT(*) FROM products", c)

	assert.Equal(t, "SELECT COUNT(*) FROM products WHERE name ILIKE $1", query)
	assert.Equal(t, []interface{}{"%varilla%"}, params)
}
