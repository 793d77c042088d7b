package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/taskboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/taskboard-api/internal/domain"
)

const (
	salesStatsTable = "sales_stats ss"
)

type SalesStatRepository interface {
	ListAll() ([]*domain.SalesStat, error)
	GetByKey(year, month int, week *int, day *time.Time, product domain.ProductCategory) (*domain.SalesStat, error)
	Insert(stat *domain.SalesStat) (*domain.SalesStat, error)
	UpdateQuantity(statID int, quantity *int) error
}

type salesStatRepository struct {
	conn *postgres.Connection
}

func NewSalesStatRepository(conn *postgres.Connection) SalesStatRepository {
	return &salesStatRepository{
		conn: conn,
	}
}

const salesStatColumns = "ss.id, ss.year, ss.month, ss.week, ss.day, ss.product, ss.quantity, ss.created_at, ss.updated_at"

func (r *salesStatRepository) ListAll() ([]*domain.SalesStat, error) {
	query, args, err := squirrel.
		Select(salesStatColumns).
		From(salesStatsTable).
		OrderBy("ss.year ASC", "ss.month ASC", "ss.day ASC NULLS FIRST").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	stats := make([]*domain.SalesStat, 0)
	for rows.Next() {
		var stat domain.SalesStat
		if err := rows.Scan(
			&stat.ID,
			&stat.Year,
			&stat.Month,
			&stat.Week,
			&stat.Day,
			&stat.Product,
			&stat.Quantity,
			&stat.CreatedAt,
			&stat.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear observação: %w", err)
		}
		stats = append(stats, &stat)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return stats, nil
}

// GetByKey busca uma observação pela chave única
// (ano, mês, semana, dia, produto). Week e Day nulos casam com colunas NULL.
func (r *salesStatRepository) GetByKey(year, month int, week *int, day *time.Time, product domain.ProductCategory) (*domain.SalesStat, error) {
	cond := squirrel.Eq{
		"ss.year":    year,
		"ss.month":   month,
		"ss.product": product,
	}

	if week != nil {
		cond["ss.week"] = *week
	} else {
		cond["ss.week"] = nil
	}

	if day != nil {
		cond["ss.day"] = day.Format(time.DateOnly)
	} else {
		cond["ss.day"] = nil
	}

	query, args, err := squirrel.
		Select(salesStatColumns).
		From(salesStatsTable).
		Where(cond).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var stat domain.SalesStat
	err = r.conn.QueryRow(query, args...).Scan(
		&stat.ID,
		&stat.Year,
		&stat.Month,
		&stat.Week,
		&stat.Day,
		&stat.Product,
		&stat.Quantity,
		&stat.CreatedAt,
		&stat.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear observação: %w", err)
	}

	return &stat, nil
}

func (r *salesStatRepository) Insert(stat *domain.SalesStat) (*domain.SalesStat, error) {
	var day interface{}
	if stat.Day != nil {
		day = stat.Day.Format(time.DateOnly)
	}

	query, args, err := squirrel.
		Insert("sales_stats").
		Columns("year", "month", "week", "day", "product", "quantity").
		Values(stat.Year, stat.Month, stat.Week, day, stat.Product, stat.Quantity).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRow(query, args...).Scan(&stat.ID, &stat.CreatedAt, &stat.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return stat, nil
}

func (r *salesStatRepository) UpdateQuantity(statID int, quantity *int) error {
	query, args, err := squirrel.
		Update("sales_stats").
		Set("quantity", quantity).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": statID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err == nil && affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}
