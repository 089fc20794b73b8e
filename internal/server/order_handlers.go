package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nikolayk812/cart-widget/internal/domain"
)

const defaultOrdersLimit = 20

type productView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price string `json:"price"`
}

type orderLineView struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	UnitPrice   string `json:"unit_price"`
	Quantity    int    `json:"quantity"`
}

type orderView struct {
	ID       string          `json:"id"`
	Total    string          `json:"total"`
	Currency string          `json:"currency"`
	PlacedAt time.Time       `json:"placed_at"`
	Lines    []orderLineView `json:"lines,omitempty"`
}

func mapOrderToView(o domain.Order) orderView {
	v := orderView{
		ID:       o.ID.String(),
		Total:    o.Total.Amount.StringFixed(2),
		Currency: o.Total.Currency.String(),
		PlacedAt: o.PlacedAt,
	}
	for _, l := range o.Lines {
		v.Lines = append(v.Lines, orderLineView{
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			UnitPrice:   l.UnitPrice.Amount.StringFixed(2),
			Quantity:    l.Quantity,
		})
	}
	return v
}

func (s *Server) listProducts(c *gin.Context) {
	products, err := s.catalog.List(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}

	views := make([]productView, 0, len(products))
	for _, p := range products {
		views = append(views, productView{
			ID:    p.ID,
			Name:  p.Name,
			Price: s.cart.FormatMoney(p.Price),
		})
	}

	c.JSON(http.StatusOK, Response{Status: "success", Data: views})
}

func (s *Server) listOrders(c *gin.Context) {
	limit := defaultOrdersLimit
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			badRequest(c, "limit must be a positive number")
			return
		}
		limit = n
	}

	orders, err := s.orders.ListOrders(c.Request.Context(), limit)
	if err != nil {
		s.fail(c, err)
		return
	}

	views := make([]orderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, mapOrderToView(o))
	}

	c.JSON(http.StatusOK, Response{Status: "success", Data: views})
}

func (s *Server) getOrder(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, "order id is not a valid UUID")
		return
	}

	order, err := s.orders.GetOrder(c.Request.Context(), orderID)
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, Response{Status: "success", Data: mapOrderToView(order)})
}
