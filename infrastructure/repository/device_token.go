package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/taskboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/taskboard-api/internal/domain"
)

const (
	deviceTokensTable = "device_tokens dt"
)

type DeviceTokenRepository interface {
	Register(userID int, token string) error
	Unregister(userID int, token string) error
	ListByUserIDs(userIDs []int) ([]*domain.DeviceToken, error)
}

type deviceTokenRepository struct {
	conn *postgres.Connection
}

func NewDeviceTokenRepository(conn *postgres.Connection) DeviceTokenRepository {
	return &deviceTokenRepository{
		conn: conn,
	}
}

// Register grava o vínculo usuário/token. Re-registros do mesmo token são
// ignorados (o frontend reenvia o token a cada retorno à aplicação).
func (r *deviceTokenRepository) Register(userID int, token string) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("device_tokens").
		Columns("user_id", "token").
		Values(userID, token).
		Suffix("ON CONFLICT (user_id, token) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	return err
}

func (r *deviceTokenRepository) Unregister(userID int, token string) error {
	query, args, err := squirrel.
		Delete("device_tokens").
		Where(squirrel.Eq{"user_id": userID, "token": token}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	return err
}

func (r *deviceTokenRepository) ListByUserIDs(userIDs []int) ([]*domain.DeviceToken, error) {
	if len(userIDs) == 0 {
		return []*domain.DeviceToken{}, nil
	}

	query, args, err := squirrel.
		Select("dt.id, dt.user_id, dt.token, dt.created_at").
		From(deviceTokensTable).
		Where(squirrel.Eq{"dt.user_id": userIDs}).
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

	tokens := make([]*domain.DeviceToken, 0)
	for rows.Next() {
		var token domain.DeviceToken
		if err := rows.Scan(&token.ID, &token.UserID, &token.Token, &token.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao escanear token: %w", err)
		}
		tokens = append(tokens, &token)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return tokens, nil
}
