package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/cart-widget/internal/db"
	"github.com/nikolayk812/cart-widget/internal/domain"
	"github.com/nikolayk812/cart-widget/internal/port"
	"golang.org/x/text/currency"
)

var ErrOrderNotFound = errors.New("order not found")

type orderRepository struct {
	q    *db.Queries
	pool *pgxpool.Pool
}

func NewOrders(pool *pgxpool.Pool) (port.OrderRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pool is nil")
	}

	return &orderRepository{
		q:    db.New(pool),
		pool: pool,
	}, nil
}

func NewOrdersWithTx(tx pgx.Tx) port.OrderRepository {
	return &orderRepository{
		q:    db.New(tx),
		pool: nil, // use provided transaction instead
	}
}

func (r *orderRepository) SaveOrder(ctx context.Context, order domain.Order) error {
	if order.ID == uuid.Nil {
		return fmt.Errorf("orderID is empty")
	}
	if len(order.Lines) == 0 {
		return fmt.Errorf("order has no lines")
	}

	_, err := withTx(ctx, r.pool, r.q, func(q *db.Queries) (struct{}, error) {
		err := q.InsertOrder(ctx, db.InsertOrderParams{
			ID:            order.ID,
			TotalAmount:   order.Total.Amount,
			TotalCurrency: order.Total.Currency.String(),
			PlacedAt:      order.PlacedAt,
		})
		if err != nil {
			return struct{}{}, fmt.Errorf("q.InsertOrder: %w", err)
		}

		for i, line := range order.Lines {
			err := q.InsertOrderLine(ctx, db.InsertOrderLineParams{
				OrderID:           order.ID,
				Position:          int32(i),
				ProductID:         line.ProductID,
				ProductName:       line.ProductName,
				UnitPriceAmount:   line.UnitPrice.Amount,
				UnitPriceCurrency: line.UnitPrice.Currency.String(),
				Quantity:          int32(line.Quantity),
			})
			if err != nil {
				return struct{}{}, fmt.Errorf("q.InsertOrderLine: %w", err)
			}
		}

		return struct{}{}, nil
	})

	return err
}

func (r *orderRepository) GetOrder(ctx context.Context, orderID uuid.UUID) (domain.Order, error) {
	if orderID == uuid.Nil {
		return domain.Order{}, fmt.Errorf("orderID is empty")
	}

	row, err := r.q.GetOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Order{}, fmt.Errorf("%w: %s", ErrOrderNotFound, orderID)
		}
		return domain.Order{}, fmt.Errorf("q.GetOrder: %w", err)
	}

	lineRows, err := r.q.GetOrderLines(ctx, orderID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("q.GetOrderLines: %w", err)
	}

	order, err := mapOrderRowToDomain(row)
	if err != nil {
		return domain.Order{}, fmt.Errorf("mapOrderRowToDomain: %w", err)
	}

	order.Lines, err = mapOrderLineRowsToDomain(lineRows)
	if err != nil {
		return domain.Order{}, fmt.Errorf("mapOrderLineRowsToDomain: %w", err)
	}

	return order, nil
}

// ListOrders returns the most recent orders without their lines.
func (r *orderRepository) ListOrders(ctx context.Context, limit int) ([]domain.Order, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("limit[%d] is not positive", limit)
	}

	rows, err := r.q.ListOrders(ctx, int32(limit))
	if err != nil {
		return nil, fmt.Errorf("q.ListOrders: %w", err)
	}

	orders := make([]domain.Order, 0, len(rows))
	for _, row := range rows {
		order, err := mapOrderRowToDomain(row)
		if err != nil {
			return nil, fmt.Errorf("mapOrderRowToDomain: %w", err)
		}
		orders = append(orders, order)
	}

	return orders, nil
}

func mapOrderRowToDomain(row db.Order) (domain.Order, error) {
	parsedCurrency, err := currency.ParseISO(row.TotalCurrency)
	if err != nil {
		return domain.Order{}, fmt.Errorf("currency[%s] is not valid: %w", row.TotalCurrency, err)
	}

	return domain.Order{
		ID:       row.ID,
		Total:    domain.Money{Amount: row.TotalAmount, Currency: parsedCurrency},
		PlacedAt: row.PlacedAt,
	}, nil
}

func mapOrderLineRowToDomain(row db.GetOrderLinesRow) (domain.OrderLine, error) {
	parsedCurrency, err := currency.ParseISO(row.UnitPriceCurrency)
	if err != nil {
		return domain.OrderLine{}, fmt.Errorf("currency[%s] is not valid: %w", row.UnitPriceCurrency, err)
	}

	return domain.OrderLine{
		ProductID:   row.ProductID,
		ProductName: row.ProductName,
		UnitPrice:   domain.Money{Amount: row.UnitPriceAmount, Currency: parsedCurrency},
		Quantity:    int(row.Quantity),
	}, nil
}

func mapOrderLineRowsToDomain(rows []db.GetOrderLinesRow) ([]domain.OrderLine, error) {
	var lines []domain.OrderLine

	for _, row := range rows {
		line, err := mapOrderLineRowToDomain(row)
		if err != nil {
			return nil, fmt.Errorf("mapOrderLineRowToDomain: %w", err)
		}

		lines = append(lines, line)
	}

	return lines, nil
}
