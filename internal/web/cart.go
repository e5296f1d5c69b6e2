package web

import (
	"net/http"

	"restofresh-web/internal/cart"

	"github.com/gorilla/mux"
)

// cartResponse is the cart plus its derived numbers, so the page never has to
// recompute totals itself.
type cartResponse struct {
	Items     []cart.Line `json:"items"`
	ItemCount int         `json:"item_count"`
	Total     float64     `json:"total"`
}

func cartView(c *cart.Store) cartResponse {
	items := c.Lines()
	if items == nil {
		items = []cart.Line{}
	}
	return cartResponse{
		Items:     items,
		ItemCount: c.ItemCount(),
		Total:     c.Total(),
	}
}

func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	s, ok := sess(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, cartView(s.Cart))
}

type addCartItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Size      string `json:"size"`
}

// AddCartItem resolves the dish against the live menu so the cart line
// carries the price in force when it was added.
func (h *Handler) AddCartItem(w http.ResponseWriter, r *http.Request) {
	s, ok := sess(w, r)
	if !ok {
		return
	}

	var req addCartItemRequest
	if !decode(w, r, &req) {
		return
	}
	if req.ProductID == "" {
		writeServiceError(w, cart.ErrMissingProduct)
		return
	}

	item, err := h.menu.Get(r.Context(), req.ProductID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if err := s.Cart.AddItem(*item, req.Quantity, req.Size); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cartView(s.Cart))
}

type updateCartItemRequest struct {
	ProductID string `json:"product_id"`
	Size      string `json:"size"`
	Quantity  int    `json:"quantity"`
}

func (h *Handler) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	s, ok := sess(w, r)
	if !ok {
		return
	}

	var req updateCartItemRequest
	if !decode(w, r, &req) {
		return
	}

	s.Cart.UpdateQuantity(req.ProductID, req.Size, req.Quantity)
	writeJSON(w, http.StatusOK, cartView(s.Cart))
}

func (h *Handler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	s, ok := sess(w, r)
	if !ok {
		return
	}

	size := r.URL.Query().Get("size")
	s.Cart.RemoveItem(mux.Vars(r)["productID"], size)
	writeJSON(w, http.StatusOK, cartView(s.Cart))
}

func (h *Handler) ClearCart(w http.ResponseWriter, r *http.Request) {
	s, ok := sess(w, r)
	if !ok {
		return
	}

	s.Cart.Clear()
	writeJSON(w, http.StatusOK, cartView(s.Cart))
}
