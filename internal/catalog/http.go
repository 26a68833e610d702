package catalog

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"Elegante/pkg/kit"
)

type Server struct {
	Store Store
	Log   *zap.Logger
}

// Register mounts the catalog routes onto r.
func (s *Server) Register(r chi.Router) {
	r.Get("/categories", s.listCategories)
	r.Get("/categories/{slug}", s.getCategory)

	r.Get("/products", s.listProducts)
	r.Get("/products/featured", s.listFeatured)
	r.Get("/products/category/{categoryID}", s.listByCategory)
	r.Get("/products/{slug}", s.getProduct)
}

func (s *Server) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := s.Store.ListCategories(r.Context())
	if err != nil {
		s.serverError(w, r, "list categories failed", err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, categories)
}

func (s *Server) getCategory(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	c, ok, err := s.Store.GetCategoryBySlug(r.Context(), slug)
	if err != nil {
		s.serverError(w, r, "get category failed", err, zap.String("slug", slug))
		return
	}
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "category not found", map[string]any{"slug": slug})
		return
	}
	kit.WriteJSON(w, http.StatusOK, c)
}

func (s *Server) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := s.Store.ListProducts(r.Context())
	if err != nil {
		s.serverError(w, r, "list products failed", err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, products)
}

func (s *Server) listFeatured(w http.ResponseWriter, r *http.Request) {
	products, err := s.Store.ListFeaturedProducts(r.Context())
	if err != nil {
		s.serverError(w, r, "list featured products failed", err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, products)
}

func (s *Server) listByCategory(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "categoryID")

	categoryID, err := strconv.Atoi(raw)
	if err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "invalid category id", map[string]any{"categoryId": raw})
		return
	}

	products, err := s.Store.ListProductsByCategory(r.Context(), categoryID)
	if err != nil {
		s.serverError(w, r, "list products by category failed", err, zap.Int("category_id", categoryID))
		return
	}
	kit.WriteJSON(w, http.StatusOK, products)
}

func (s *Server) getProduct(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	p, ok, err := s.Store.GetProductBySlug(r.Context(), slug)
	if err != nil {
		s.serverError(w, r, "get product failed", err, zap.String("slug", slug))
		return
	}
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "product not found", map[string]any{"slug": slug})
		return
	}
	kit.WriteJSON(w, http.StatusOK, p)
}

func (s *Server) serverError(w http.ResponseWriter, r *http.Request, msg string, err error, fields ...zap.Field) {
	if s.Log != nil {
		s.Log.Error(msg, append(fields, zap.Error(err))...)
	}
	kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
}
