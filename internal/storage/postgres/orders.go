package postgres

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	domainErrors "github.com/amanshrivastava28/Sneako/internal/domain/errors"
	"github.com/amanshrivastava28/Sneako/internal/domain/model"
	"github.com/amanshrivastava28/Sneako/internal/domain/repository"
)

const (
	orderColumns = "order_id, user_id, COALESCE(shipping_address, ''), order_status, COALESCE(total_price, 0)::text, order_date"
	itemColumns  = "order_item_id, order_id, product_id, quantity, unit_price::text, total_price::text, COALESCE(size, 0)"

	insertOrderSQL   = "INSERT INTO orders (user_id, shipping_address, order_status, total_price, order_date) VALUES ($1, $2, $3, $4, $5) RETURNING order_id"
	insertItemSQL    = "INSERT INTO order_items (order_id, product_id, quantity, unit_price, total_price, size) VALUES ($1, $2, $3, $4, $5, $6) RETURNING order_item_id"
	selectOrderSQL   = "SELECT " + orderColumns + " FROM orders WHERE order_id = $1"
	lockOrderSQL     = "SELECT order_status FROM orders WHERE order_id = $1 FOR UPDATE"
	updateStatusSQL  = "UPDATE orders SET order_status = $1 WHERE order_id = $2"
	deleteOrderSQL   = "DELETE FROM orders WHERE order_id = $1"
	sumTotalPriceSQL = "SELECT COALESCE(SUM(total_price), 0)::text FROM orders"
)

type orderRepository struct {
	storage *Storage
}

var _ repository.OrderRepository = (*orderRepository)(nil)

func (r *orderRepository) Create(ctx context.Context, order model.Order) (*model.Order, error) {
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		if err := tx.QueryRow(ctx, insertOrderSQL,
			order.UserID,
			order.ShippingAddress,
			string(order.Status),
			order.TotalPrice.String(),
			order.OrderDate,
		).Scan(&order.ID); err != nil {
			return err
		}

		for i := range order.Items {
			item := &order.Items[i]
			item.OrderID = order.ID
			if err := tx.QueryRow(ctx, insertItemSQL,
				item.OrderID,
				item.ProductID,
				item.Quantity,
				item.UnitPrice.String(),
				item.TotalPrice.String(),
				item.Size,
			).Scan(&item.ID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, r.storage.wrapErr("create order", err)
	}
	return &order, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	order, err := r.getByID(ctx, r.storage.pool, id)
	if err != nil {
		return nil, r.storage.wrapErr("get order", err)
	}
	return order, nil
}

func (r *orderRepository) getByID(ctx context.Context, q querier, id int64) (*model.Order, error) {
	order, err := scanOrder(q.QueryRow(ctx, selectOrderSQL, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("order %d: %w", id, domainErrors.ErrNotFound)
		}
		return nil, err
	}

	items, err := loadItems(ctx, q, []int64{id})
	if err != nil {
		return nil, err
	}
	order.Items = items[id]
	return &order, nil
}

func (r *orderRepository) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	query, args, err := psql.Select(orderColumns).
		From("orders").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("order_id").
		ToSql()
	if err != nil {
		return nil, r.storage.wrapErr("list user orders", err)
	}

	orders, err := r.selectOrders(ctx, query, args...)
	if err != nil {
		return nil, r.storage.wrapErr("list user orders", err)
	}
	return orders, nil
}

func (r *orderRepository) List(ctx context.Context, req model.PageRequest) ([]model.Order, int64, error) {
	query, args, err := psql.Select(orderColumns).
		From("orders").
		OrderBy("order_id").
		Limit(uint64(req.Size)).
		Offset(req.Offset()).
		ToSql()
	if err != nil {
		return nil, 0, r.storage.wrapErr("list orders", err)
	}

	orders, err := r.selectOrders(ctx, query, args...)
	if err != nil {
		return nil, 0, r.storage.wrapErr("list orders", err)
	}

	total, err := r.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

func (r *orderRepository) selectOrders(ctx context.Context, query string, args ...any) ([]model.Order, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]model.Order, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return orders, nil
	}

	ids := make([]int64, len(orders))
	for i, order := range orders {
		ids[i] = order.ID
	}
	items, err := loadItems(ctx, r.storage.pool, ids)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].Items = items[orders[i].ID]
	}
	return orders, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id int64, next model.OrderStatus, guard repository.StatusGuard) (*model.Order, error) {
	var updated *model.Order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		var current string
		if err := tx.QueryRow(ctx, lockOrderSQL, id).Scan(&current); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return fmt.Errorf("order %d: %w", id, domainErrors.ErrNotFound)
			}
			return err
		}

		if guard != nil {
			if err := guard(model.OrderStatus(current)); err != nil {
				return err
			}
		}

		if _, err := tx.Exec(ctx, updateStatusSQL, string(next), id); err != nil {
			return err
		}

		order, err := r.getByID(ctx, tx, id)
		if err != nil {
			return err
		}
		updated = order
		return nil
	})
	if err != nil {
		return nil, r.storage.wrapErr("update order status", err)
	}
	return updated, nil
}

func (r *orderRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.storage.pool.Exec(ctx, deleteOrderSQL, id)
	if err != nil {
		return r.storage.wrapErr("delete order", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("order %d: %w", id, domainErrors.ErrNotFound)
	}
	return nil
}

func (r *orderRepository) Count(ctx context.Context) (int64, error) {
	query, args, err := psql.Select("COUNT(*)").From("orders").ToSql()
	if err != nil {
		return 0, r.storage.wrapErr("count orders", err)
	}

	var total int64
	if err := r.storage.pool.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, r.storage.wrapErr("count orders", err)
	}
	return total, nil
}

func (r *orderRepository) SumTotalPrice(ctx context.Context) (decimal.Decimal, error) {
	var raw string
	if err := r.storage.pool.QueryRow(ctx, sumTotalPriceSQL).Scan(&raw); err != nil {
		return decimal.Zero, r.storage.wrapErr("sum total price", err)
	}

	sum, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, r.storage.wrapErr("sum total price", err)
	}
	return sum, nil
}

func loadItems(ctx context.Context, q querier, orderIDs []int64) (map[int64][]model.OrderItem, error) {
	query, args, err := psql.Select(itemColumns).
		From("order_items").
		Where(sq.Eq{"order_id": orderIDs}).
		OrderBy("order_id", "order_item_id").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make(map[int64][]model.OrderItem, len(orderIDs))
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items[item.OrderID] = append(items[item.OrderID], item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func scanOrder(row pgx.Row) (model.Order, error) {
	var (
		order  model.Order
		status string
		total  string
	)
	if err := row.Scan(&order.ID, &order.UserID, &order.ShippingAddress, &status, &total, &order.OrderDate); err != nil {
		return model.Order{}, err
	}

	price, err := decimal.NewFromString(total)
	if err != nil {
		return model.Order{}, fmt.Errorf("order %d total price: %w", order.ID, err)
	}
	order.Status = model.OrderStatus(status)
	order.TotalPrice = price
	return order, nil
}

func scanItem(row pgx.Row) (model.OrderItem, error) {
	var (
		item       model.OrderItem
		unitPrice  string
		totalPrice string
	)
	if err := row.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Quantity, &unitPrice, &totalPrice, &item.Size); err != nil {
		return model.OrderItem{}, err
	}

	var err error
	if item.UnitPrice, err = decimal.NewFromString(unitPrice); err != nil {
		return model.OrderItem{}, fmt.Errorf("order item %d unit price: %w", item.ID, err)
	}
	if item.TotalPrice, err = decimal.NewFromString(totalPrice); err != nil {
		return model.OrderItem{}, fmt.Errorf("order item %d total price: %w", item.ID, err)
	}
	return item, nil
}
