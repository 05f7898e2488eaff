package queries

import (
	"context"
	"strings"

	"gorm.io/gorm"
)

// SearchOrdersQueryHandler retrieves orders matching filter criteria from
// the database.
type SearchOrdersQueryHandler struct {
	db *gorm.DB
}

// NewSearchOrdersQueryHandler creates a handler for order searches.
// Requires a GORM database connection for query execution.
func NewSearchOrdersQueryHandler(db *gorm.DB) SearchOrdersQueryHandler {
	return SearchOrdersQueryHandler{db: db}
}

// likeEscaper neutralizes LIKE metacharacters so the email filter matches
// literally rather than as a pattern.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Handle executes the search. The email filter matches by case-sensitive
// substring containment, date bounds are inclusive, and results are sorted
// by order date descending. No matches yields an empty slice, not an error.
func (h SearchOrdersQueryHandler) Handle(ctx context.Context, query SearchOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	conditions := make([]string, 0, 4)
	args := make([]any, 0, 4)

	if email := query.CustomerEmail(); email != nil {
		conditions = append(conditions, "customer_email LIKE ?")
		args = append(args, "%"+likeEscaper.Replace(*email)+"%")
	}
	if status := query.Status(); status != nil {
		conditions = append(conditions, "status = ?")
		args = append(args, int(*status))
	}
	if fromDate := query.FromDate(); fromDate != nil {
		conditions = append(conditions, "order_date >= ?")
		args = append(args, *fromDate)
	}
	if toDate := query.ToDate(); toDate != nil {
		conditions = append(conditions, "order_date <= ?")
		args = append(args, *toDate)
	}

	sqlQuery := `
		SELECT ` + orderColumns + `
		FROM orders
	`
	if len(conditions) > 0 {
		sqlQuery += " WHERE " + strings.Join(conditions, " AND ")
	}
	sqlQuery += " ORDER BY order_date DESC"

	orders := make([]OrderResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		orderResp, scanErr := scanOrderRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
