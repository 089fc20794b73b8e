package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nikolayk812/cart-widget/internal/domain"
	"github.com/nikolayk812/cart-widget/internal/widget"
)

const pageTemplate = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Cart</title></head>
<body>
%s
<button id="order-btn" type="button">Order</button>
<script>
document.addEventListener('click', async (e) => {
  if (!e.target.closest('.cart')) return;
  const item = e.target.closest('.item');
  const role = ['plus', 'minus', 'delete-btn', 'like-btn'].find((r) => e.target.classList.contains(r));
  if (!item || !role) return;
  const res = await fetch('/cart/click', {
    method: 'POST',
    headers: {'Content-Type': 'application/json'},
    body: JSON.stringify({product_id: item.dataset.id, role: role}),
  });
  if (res.ok) document.querySelector('.cart').outerHTML = await res.text();
});
document.getElementById('order-btn').addEventListener('click', async () => {
  const res = await fetch('/cart/order', {method: 'POST'});
  const body = await res.json();
  alert(body.message);
  location.reload();
});
</script>
</body>
</html>
`

type addItemRequest struct {
	ProductID string `json:"product_id" form:"product_id" binding:"required"`
	Quantity  *int   `json:"quantity" form:"quantity"`
}

type clickRequest struct {
	ProductID string `json:"product_id" form:"product_id" binding:"required"`
	Role      string `json:"role" form:"role" binding:"required"`
}

type totalView struct {
	Amount    string `json:"amount"`
	Currency  string `json:"currency"`
	Formatted string `json:"formatted"`
}

type orderPlacedView struct {
	Kind  domain.NotificationKind `json:"kind"`
	Total totalView               `json:"total"`
}

func (s *Server) page(c *gin.Context) {
	s.mu.Lock()
	fragment, err := s.cart.HTML()
	s.mu.Unlock()
	if err != nil {
		s.fail(c, err)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", fmt.Appendf(nil, pageTemplate, fragment))
}

func (s *Server) fragment(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.writeFragment(c)
}

// writeFragment must be called with mu held.
func (s *Server) writeFragment(c *gin.Context) {
	fragment, err := s.cart.HTML()
	if err != nil {
		s.fail(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(fragment))
}

func (s *Server) total(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c.JSON(http.StatusOK, Response{Status: "success", Data: s.totalView()})
}

func (s *Server) totalView() totalView {
	total := s.cart.GetTotal()
	return totalView{
		Amount:    total.Amount.StringFixed(2),
		Currency:  total.Currency.String(),
		Formatted: s.cart.FormatMoney(total),
	}
}

func (s *Server) addItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	product, err := s.catalog.GetByID(c.Request.Context(), req.ProductID)
	if err != nil {
		s.fail(c, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.cart.AddItem(product, quantity); err != nil {
		s.fail(c, err)
		return
	}
	s.writeFragment(c)
}

func (s *Server) removeItem(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart.RemoveItem(c.Param("id"))
	s.writeFragment(c)
}

func (s *Server) increment(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.cart.IncrementQuantity(c.Param("id")); err != nil {
		s.fail(c, err)
		return
	}
	s.writeFragment(c)
}

func (s *Server) decrement(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.cart.DecrementQuantity(c.Param("id")); err != nil {
		s.fail(c, err)
		return
	}
	s.writeFragment(c)
}

// click replays a click on the rendered element with class role inside the
// line of product_id through the cart's delegated listener.
func (s *Server) click(c *gin.Context) {
	var req clickRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	target, ok := s.cart.Element(req.ProductID, req.Role)
	if !ok {
		s.fail(c, fmt.Errorf("%w: %s in %s", widget.ErrTargetDetached, req.Role, req.ProductID))
		return
	}

	if err := s.cart.Click(target); err != nil {
		s.fail(c, err)
		return
	}
	s.writeFragment(c)
}

func (s *Server) placeOrder(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, err := s.cart.PlaceOrder(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}

	status := "success"
	if n.Kind == domain.NotificationCartEmpty {
		status = "rejected"
	}

	c.JSON(http.StatusOK, Response{
		Status:  status,
		Message: n.Message,
		Data: orderPlacedView{
			Kind: n.Kind,
			Total: totalView{
				Amount:    n.Total.Amount.StringFixed(2),
				Currency:  n.Total.Currency.String(),
				Formatted: s.cart.FormatMoney(n.Total),
			},
		},
	})
}
