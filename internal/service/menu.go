package service

import (
	"context"
	"log/slog"
	"time"

	"pizza-platform/internal/entities"

	"github.com/google/uuid"
)

type MenuRepo interface {
	CreatePizza(ctx context.Context, pizza entities.Pizza) error
	GetPizzaByID(ctx context.Context, id string) (entities.Pizza, error)
	ListPizzas(ctx context.Context) ([]entities.Pizza, error)
	UpdatePizza(ctx context.Context, pizza entities.Pizza) error
	DeletePizza(ctx context.Context, id string) error
}

type menuService struct {
	logger *slog.Logger
	repo   MenuRepo
}

func NewMenuService(logger *slog.Logger, repo MenuRepo) *menuService {
	return &menuService{
		logger: logger.With(slog.String("service", "menu")),
		repo:   repo,
	}
}

type CreatePizzaInput struct {
	Name        string
	Description string
	Price       float64
	Image       string
	Category    entities.PizzaCategory
	Ingredients []string
	Available   bool
}

func (s *menuService) CreatePizza(ctx context.Context, in CreatePizzaInput) (entities.Pizza, error) {
	pizza := entities.Pizza{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Image:       in.Image,
		Category:    in.Category,
		Ingredients: in.Ingredients,
		Available:   in.Available,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.CreatePizza(ctx, pizza); err != nil {
		return entities.Pizza{}, err
	}

	s.logger.Info("pizza created", slog.String("pizza_id", pizza.ID), slog.String("name", pizza.Name))
	return pizza, nil
}

func (s *menuService) GetPizzaByID(ctx context.Context, id string) (entities.Pizza, error) {
	return s.repo.GetPizzaByID(ctx, id)
}

func (s *menuService) ListPizzas(ctx context.Context) ([]entities.Pizza, error) {
	return s.repo.ListPizzas(ctx)
}

func (s *menuService) UpdatePizza(ctx context.Context, pizza entities.Pizza) (entities.Pizza, error) {
	if err := s.repo.UpdatePizza(ctx, pizza); err != nil {
		return entities.Pizza{}, err
	}
	return s.repo.GetPizzaByID(ctx, pizza.ID)
}

func (s *menuService) DeletePizza(ctx context.Context, id string) error {
	return s.repo.DeletePizza(ctx, id)
}
