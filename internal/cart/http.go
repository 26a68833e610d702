package cart

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"Elegante/internal/catalog"
	"Elegante/pkg/kit"
)

// ProductSource resolves the products cart rows point at. The catalog store
// satisfies it.
type ProductSource interface {
	GetProductByID(ctx context.Context, id int) (catalog.Product, bool, error)
}

// Server serves the cart of a single fixed user; there is no session model.
type Server struct {
	Store    Store
	Products ProductSource
	Log      *zap.Logger

	// UserID is the demo user every request operates on.
	UserID int
}

// DetailedItem is a cart row joined with its product. Product is null when
// the referenced product no longer exists.
type DetailedItem struct {
	Item
	Product *catalog.Product `json:"product"`
}

type Summary struct {
	Count    int    `json:"count"`
	Subtotal string `json:"subtotal"`
}

// Register mounts the cart routes onto r.
func (s *Server) Register(r chi.Router) {
	r.Get("/cart", s.list)
	r.Get("/cart/summary", s.summary)
	r.Post("/cart", s.add)
	r.Put("/cart/{id}", s.update)
	r.Delete("/cart/{id}", s.remove)
	r.Delete("/cart", s.clear)
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	detailed, err := s.detailedItems(r.Context())
	if err != nil {
		s.serverError(w, r, "list cart failed", err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, detailed)
}

func (s *Server) summary(w http.ResponseWriter, r *http.Request) {
	detailed, err := s.detailedItems(r.Context())
	if err != nil {
		s.serverError(w, r, "cart summary failed", err)
		return
	}

	count := 0
	subtotal := decimal.Zero
	for _, d := range detailed {
		count += d.Quantity
		if d.Product == nil {
			continue
		}

		price, err := decimal.NewFromString(d.Product.Price)
		if err != nil {
			s.serverError(w, r, "bad product price", err, zap.Int("product_id", d.ProductID))
			return
		}
		subtotal = subtotal.Add(price.Mul(decimal.NewFromInt(int64(d.Quantity))))
	}

	kit.WriteJSON(w, http.StatusOK, Summary{
		Count:    count,
		Subtotal: subtotal.StringFixed(2),
	})
}

type addReq struct {
	ProductID int     `json:"productId" validate:"required,gt=0"`
	Quantity  int     `json:"quantity" validate:"omitempty,gte=1"`
	Size      *string `json:"size"`
	Color     *string `json:"color"`
}

func (s *Server) add(w http.ResponseWriter, r *http.Request) {
	var req addReq
	if err := kit.DecodeJSON(w, r, &req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", map[string]any{"cause": err.Error()})
		return
	}
	if fieldErrs := kit.ValidateStruct(req); fieldErrs != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "validation error", fieldErrs)
		return
	}

	it, err := s.Store.AddItem(r.Context(), NewItem{
		UserID:    s.UserID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		Size:      req.Size,
		Color:     req.Color,
	})
	if err != nil {
		s.serverError(w, r, "add to cart failed", err, zap.Int("product_id", req.ProductID))
		return
	}

	kit.WriteJSON(w, http.StatusCreated, it)
}

type updateReq struct {
	Quantity int `json:"quantity" validate:"required,gt=0"`
}

func (s *Server) update(w http.ResponseWriter, r *http.Request) {
	id, ok := s.itemID(w, r)
	if !ok {
		return
	}

	var req updateReq
	if err := kit.DecodeJSON(w, r, &req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", map[string]any{"cause": err.Error()})
		return
	}
	if fieldErrs := kit.ValidateStruct(req); fieldErrs != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "validation error", fieldErrs)
		return
	}

	it, found, err := s.Store.UpdateQuantity(r.Context(), id, req.Quantity)
	if err != nil {
		s.serverError(w, r, "update cart item failed", err, zap.Int("cart_item_id", id))
		return
	}
	if !found {
		kit.WriteError(w, r, http.StatusNotFound, "cart item not found", map[string]any{"id": id})
		return
	}

	kit.WriteJSON(w, http.StatusOK, it)
}

func (s *Server) remove(w http.ResponseWriter, r *http.Request) {
	id, ok := s.itemID(w, r)
	if !ok {
		return
	}

	removed, err := s.Store.RemoveItem(r.Context(), id)
	if err != nil {
		s.serverError(w, r, "remove cart item failed", err, zap.Int("cart_item_id", id))
		return
	}
	if !removed {
		kit.WriteError(w, r, http.StatusNotFound, "cart item not found", map[string]any{"id": id})
		return
	}

	kit.WriteNoContent(w)
}

func (s *Server) clear(w http.ResponseWriter, r *http.Request) {
	if err := s.Store.ClearItems(r.Context(), s.UserID); err != nil {
		s.serverError(w, r, "clear cart failed", err)
		return
	}
	kit.WriteNoContent(w)
}

func (s *Server) detailedItems(ctx context.Context) ([]DetailedItem, error) {
	items, err := s.Store.ListItems(ctx, s.UserID)
	if err != nil {
		return nil, err
	}

	out := make([]DetailedItem, 0, len(items))
	for _, it := range items {
		d := DetailedItem{Item: it}

		p, ok, err := s.Products.GetProductByID(ctx, it.ProductID)
		if err != nil {
			return nil, err
		}
		if ok {
			d.Product = &p
		}

		out = append(out, d)
	}
	return out, nil
}

func (s *Server) itemID(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := chi.URLParam(r, "id")

	id, err := strconv.Atoi(raw)
	if err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "invalid cart item id", map[string]any{"id": raw})
		return 0, false
	}
	return id, true
}

func (s *Server) serverError(w http.ResponseWriter, r *http.Request, msg string, err error, fields ...zap.Field) {
	if s.Log != nil {
		s.Log.Error(msg, append(fields, zap.Error(err))...)
	}
	kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
}
