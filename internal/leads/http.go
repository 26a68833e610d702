package leads

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"Elegante/pkg/kit"
)

type Server struct {
	Store Store
	Log   *zap.Logger

	// FormLimiter throttles the public forms when non-nil.
	FormLimiter *kit.IPRateLimiter
}

// Register mounts the lead-generation routes onto r.
func (s *Server) Register(r chi.Router) {
	r.Get("/testimonials", s.listTestimonials)

	r.Group(func(fr chi.Router) {
		if s.FormLimiter != nil {
			fr.Use(s.FormLimiter.Middleware)
		}
		fr.Post("/custom-order", s.createCustomOrder)
		fr.Post("/subscribe", s.subscribe)
	})
}

type customOrderReq struct {
	Name        string  `json:"name" validate:"required"`
	Email       string  `json:"email" validate:"required,email"`
	Phone       *string `json:"phone"`
	JewelryType string  `json:"jewelryType" validate:"required"`
	Budget      string  `json:"budget" validate:"required"`
	Description string  `json:"description" validate:"required,min=10"`
}

func (s *Server) createCustomOrder(w http.ResponseWriter, r *http.Request) {
	var req customOrderReq
	if err := kit.DecodeJSON(w, r, &req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", map[string]any{"cause": err.Error()})
		return
	}
	if fieldErrs := kit.ValidateStruct(req); fieldErrs != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "validation error", fieldErrs)
		return
	}

	o, err := s.Store.CreateCustomOrder(r.Context(), NewCustomOrder{
		Reference:   "co_" + uuid.NewString(),
		Name:        req.Name,
		Email:       strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:       req.Phone,
		JewelryType: req.JewelryType,
		Budget:      req.Budget,
		Description: req.Description,
	})
	if err != nil {
		s.serverError(w, r, "create custom order failed", err)
		return
	}

	kit.WriteJSON(w, http.StatusCreated, o)
}

func (s *Server) listTestimonials(w http.ResponseWriter, r *http.Request) {
	testimonials, err := s.Store.ListTestimonials(r.Context())
	if err != nil {
		s.serverError(w, r, "list testimonials failed", err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, testimonials)
}

type subscribeReq struct {
	Email string `json:"email" validate:"required,email"`
}

func (s *Server) subscribe(w http.ResponseWriter, r *http.Request) {
	var req subscribeReq
	if err := kit.DecodeJSON(w, r, &req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", map[string]any{"cause": err.Error()})
		return
	}
	if fieldErrs := kit.ValidateStruct(req); fieldErrs != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "validation error", fieldErrs)
		return
	}

	// Duplicate emails come back as the existing row, still 201.
	sub, err := s.Store.Subscribe(r.Context(), strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		s.serverError(w, r, "subscribe failed", err)
		return
	}

	kit.WriteJSON(w, http.StatusCreated, sub)
}

func (s *Server) serverError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	if s.Log != nil {
		s.Log.Error(msg, zap.Error(err))
	}
	kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
}
