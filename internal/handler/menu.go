package handler

import (
	"context"
	"log/slog"
	"net/http"

	"pizza-platform/internal/entities"
	"pizza-platform/internal/service"
	"pizza-platform/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type MenuService interface {
	CreatePizza(ctx context.Context, in service.CreatePizzaInput) (entities.Pizza, error)
	GetPizzaByID(ctx context.Context, id string) (entities.Pizza, error)
	ListPizzas(ctx context.Context) ([]entities.Pizza, error)
	UpdatePizza(ctx context.Context, pizza entities.Pizza) (entities.Pizza, error)
	DeletePizza(ctx context.Context, id string) error
}

type MenuHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      MenuService
}

func NewMenuHandler(logger *slog.Logger, svc MenuService) *MenuHandler {
	return &MenuHandler{
		logger:   logger.With(slog.String("handler", "menu")),
		validate: validator.New(),
		svc:      svc,
	}
}

func (h *MenuHandler) Init(r chi.Router) {
	r.Route("/api/menu", func(r chi.Router) {
		r.Get("/", h.ListPizzas)
		r.Post("/", h.CreatePizza)
		r.Get("/{id}", h.GetPizzaByID)
		r.Put("/{id}", h.UpdatePizza)
		r.Delete("/{id}", h.DeletePizza)
	})
}

func (h *MenuHandler) ListPizzas(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	pizzas, err := h.svc.ListPizzas(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list pizzas", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteList(w, PizzasEntityToJSON(pizzas), len(pizzas))
}

func (h *MenuHandler) GetPizzaByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	pizza, err := h.svc.GetPizzaByID(ctx, id)
	if err != nil {
		if !writeDomainError(w, err) {
			h.logger.ErrorContext(ctx, "failed to get pizza", slog.Any("error", err), slog.String("pizza_id", id))
			utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	utils.WriteData(w, PizzaEntityToJSON(pizza), http.StatusOK)
}

func (h *MenuHandler) CreatePizza(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreatePizzaRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	// new pizzas default to available unless the request says otherwise
	available := true
	if req.Available != nil {
		available = *req.Available
	}

	pizza, err := h.svc.CreatePizza(ctx, service.CreatePizzaInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		Category:    entities.PizzaCategory(req.Category),
		Ingredients: req.Ingredients,
		Available:   available,
	})
	if err != nil {
		if !writeDomainError(w, err) {
			h.logger.ErrorContext(ctx, "failed to create pizza", slog.Any("error", err))
			utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	utils.WriteData(w, PizzaEntityToJSON(pizza), http.StatusCreated)
}

func (h *MenuHandler) UpdatePizza(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	var req UpdatePizzaRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	pizza, err := h.svc.UpdatePizza(ctx, entities.Pizza{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		Category:    entities.PizzaCategory(req.Category),
		Ingredients: req.Ingredients,
		Available:   req.Available,
	})
	if err != nil {
		if !writeDomainError(w, err) {
			h.logger.ErrorContext(ctx, "failed to update pizza", slog.Any("error", err), slog.String("pizza_id", id))
			utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	utils.WriteData(w, PizzaEntityToJSON(pizza), http.StatusOK)
}

func (h *MenuHandler) DeletePizza(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	if err := h.svc.DeletePizza(ctx, id); err != nil {
		if !writeDomainError(w, err) {
			h.logger.ErrorContext(ctx, "failed to delete pizza", slog.Any("error", err), slog.String("pizza_id", id))
			utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	utils.WriteMessage(w, "pizza deleted successfully", http.StatusOK)
}
