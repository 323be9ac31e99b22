package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pizza-platform/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const uniqueViolation = "23505"

var pizzaColumns = []string{
	"id", "name", "description", "price", "image",
	"category", "ingredients", "available", "created_at",
}

type menuRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewMenuRepo(db *sqlx.DB) *menuRepo {
	return &menuRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *menuRepo) CreatePizza(ctx context.Context, p entities.Pizza) error {
	query, args := r.qb.Insert("pizzas").
		Columns(pizzaColumns...).
		Values(
			p.ID, p.Name, p.Description, p.Price, nullString(p.Image),
			string(p.Category), pq.StringArray(p.Ingredients), p.Available, p.CreatedAt,
		).
		MustSql()

	_, err := r.db.ExecContext(ctx, query, args...)
	if isUniqueViolation(err) {
		return entities.ErrPizzaNameTaken
	}
	if err != nil {
		return fmt.Errorf("failed to insert pizza: %w", err)
	}
	return nil
}

func (r *menuRepo) GetPizzaByID(ctx context.Context, id string) (entities.Pizza, error) {
	query, args := r.qb.Select(pizzaColumns...).
		From("pizzas").
		Where(sq.Eq{"id": id}).
		MustSql()

	var pizza Pizza
	err := r.db.GetContext(ctx, &pizza, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Pizza{}, entities.ErrPizzaNotFound
	}
	if err != nil {
		return entities.Pizza{}, fmt.Errorf("failed to get pizza: %w", err)
	}
	return PizzaToEntity(pizza), nil
}

func (r *menuRepo) ListPizzas(ctx context.Context) ([]entities.Pizza, error) {
	query, args := r.qb.Select(pizzaColumns...).
		From("pizzas").
		OrderBy("name ASC").
		MustSql()

	var pizzas []Pizza
	if err := r.db.SelectContext(ctx, &pizzas, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select pizzas: %w", err)
	}

	result := make([]entities.Pizza, 0, len(pizzas))
	for _, p := range pizzas {
		result = append(result, PizzaToEntity(p))
	}
	return result, nil
}

func (r *menuRepo) UpdatePizza(ctx context.Context, p entities.Pizza) error {
	query, args := r.qb.Update("pizzas").
		Set("name", p.Name).
		Set("description", p.Description).
		Set("price", p.Price).
		Set("image", nullString(p.Image)).
		Set("category", string(p.Category)).
		Set("ingredients", pq.StringArray(p.Ingredients)).
		Set("available", p.Available).
		Where(sq.Eq{"id": p.ID}).
		MustSql()

	res, err := r.db.ExecContext(ctx, query, args...)
	if isUniqueViolation(err) {
		return entities.ErrPizzaNameTaken
	}
	if err != nil {
		return fmt.Errorf("failed to update pizza: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return entities.ErrPizzaNotFound
	}
	return nil
}

func (r *menuRepo) DeletePizza(ctx context.Context, id string) error {
	query, args := r.qb.Delete("pizzas").
		Where(sq.Eq{"id": id}).
		MustSql()

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete pizza: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return entities.ErrPizzaNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
