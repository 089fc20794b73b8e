package repository_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/nikolayk812/cart-widget/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"golang.org/x/text/currency"
)

func startPostgres(ctx context.Context) (*postgres.PostgresContainer, string, error) {
	postgresContainer, err := postgres.Run(ctx, "postgres:17.6-alpine3.22",
		postgres.BasicWaitStrategies(),
		postgres.WithInitScripts(
			"../migrations/01_orders.up.sql"),
	)
	if err != nil {
		return nil, "", fmt.Errorf("postgres.Run: %w", err)
	}

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, "", fmt.Errorf("pc.ConnectionString: %w", err)
	}

	return postgresContainer, connStr, nil
}

func randomOrder(placedAt time.Time) domain.Order {
	n := gofakeit.IntRange(1, 4)

	lines := make([]domain.OrderLine, 0, n)
	total := domain.Zero(currency.EUR)
	for range n {
		line := domain.OrderLine{
			ProductID:   gofakeit.UUID(),
			ProductName: gofakeit.ProductName(),
			UnitPrice: domain.Money{
				Amount:   decimal.NewFromFloat(gofakeit.Price(1, 100)).Round(2),
				Currency: currency.EUR,
			},
			Quantity: gofakeit.IntRange(1, 5),
		}
		total.Amount = total.Amount.Add(line.LineTotal().Amount)
		lines = append(lines, line)
	}

	return domain.Order{
		ID:       uuid.New(),
		Lines:    lines,
		Total:    total,
		PlacedAt: placedAt,
	}
}

func assertOrder(t *testing.T, expected, actual domain.Order) {
	t.Helper()

	currencyComparer := cmp.Comparer(func(x, y currency.Unit) bool {
		return x.String() == y.String()
	})

	// database timestamps are truncated to microseconds and come back in local time
	opts := cmp.Options{
		cmpopts.EquateApproxTime(time.Millisecond),
		cmpopts.EquateEmpty(),
		currencyComparer,
	}

	diff := cmp.Diff(expected, actual, opts)
	assert.Empty(t, diff)
}
