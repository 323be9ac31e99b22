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

type AuthService interface {
	Register(ctx context.Context, in service.RegisterInput) (entities.User, error)
	Login(ctx context.Context, email, password string) (string, entities.User, error)
	Profile(ctx context.Context, id string) (entities.User, error)
}

type AuthHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      AuthService
}

func NewAuthHandler(logger *slog.Logger, svc AuthService) *AuthHandler {
	return &AuthHandler{
		logger:   logger.With(slog.String("handler", "auth")),
		validate: validator.New(),
		svc:      svc,
	}
}

func (h *AuthHandler) Init(r chi.Router) {
	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)
		r.Get("/profile/{id}", h.Profile)
	})
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req RegisterRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	user, err := h.svc.Register(ctx, service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		Address:  req.Address,
	})
	if err != nil {
		if !writeDomainError(w, err) {
			h.logger.ErrorContext(ctx, "failed to register user", slog.Any("error", err))
			utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	utils.WriteData(w, UserEntityToJSON(user), http.StatusCreated)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req LoginRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	token, user, err := h.svc.Login(ctx, req.Email, req.Password)
	if err != nil {
		if !writeDomainError(w, err) {
			h.logger.ErrorContext(ctx, "failed to login user", slog.Any("error", err))
			utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	utils.WriteData(w, LoginResponse{Token: token, User: UserEntityToJSON(user)}, http.StatusOK)
}

func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	user, err := h.svc.Profile(ctx, id)
	if err != nil {
		if !writeDomainError(w, err) {
			h.logger.ErrorContext(ctx, "failed to get profile", slog.Any("error", err), slog.String("user_id", id))
			utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	utils.WriteData(w, UserEntityToJSON(user), http.StatusOK)
}
