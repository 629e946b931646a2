package repository

import (
	"context"
	"database/sql"

	"github.com/a2sh3r/stablex/internal/apperrors"
	"github.com/a2sh3r/stablex/internal/logger"
	"github.com/a2sh3r/stablex/internal/models"
	"go.uber.org/zap"
)

type RestrictionRepository interface {
	GetActive(ctx context.Context, userID int64, kind models.RestrictionType) (*models.SellRestriction, error)
	GetByID(ctx context.Context, id int64) (*models.SellRestriction, error)
	Upsert(ctx context.Context, rs *models.SellRestriction) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]models.SellRestriction, error)
}

type restrictionRepo struct {
	db *sql.DB
}

func NewRestrictionRepository(db *sql.DB) RestrictionRepository {
	return &restrictionRepo{db: db}
}

const restrictionColumns = `id, user_id, type, active, message, redirect_to, created_by, created_at, updated_at`

func scanRestriction(row rowScanner) (*models.SellRestriction, error) {
	var rs models.SellRestriction
	err := row.Scan(&rs.ID, &rs.UserID, &rs.Type, &rs.Active, &rs.Message, &rs.RedirectTo, &rs.CreatedBy,
		&rs.CreatedAt, &rs.UpdatedAt)
	if isNoRows(err) {
		return nil, apperrors.ErrRestrictionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rs, nil
}

func (r *restrictionRepo) GetActive(ctx context.Context, userID int64, kind models.RestrictionType) (*models.SellRestriction, error) {
	return scanRestriction(r.db.QueryRowContext(ctx,
		`SELECT `+restrictionColumns+` FROM sell_restrictions WHERE user_id = $1 AND type = $2 AND active`,
		userID, kind))
}

func (r *restrictionRepo) GetByID(ctx context.Context, id int64) (*models.SellRestriction, error) {
	return scanRestriction(r.db.QueryRowContext(ctx,
		`SELECT `+restrictionColumns+` FROM sell_restrictions WHERE id = $1`, id))
}

func (r *restrictionRepo) Upsert(ctx context.Context, rs *models.SellRestriction) error {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO sell_restrictions (user_id, type, active, message, redirect_to, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, type) DO UPDATE
		SET active = EXCLUDED.active, message = EXCLUDED.message, redirect_to = EXCLUDED.redirect_to,
		    updated_at = now()
		RETURNING id, created_by, created_at, updated_at
	`, rs.UserID, rs.Type, rs.Active, rs.Message, rs.RedirectTo, rs.CreatedBy).
		Scan(&rs.ID, &rs.CreatedBy, &rs.CreatedAt, &rs.UpdatedAt)
	if pgCode(err) == pgForeignKeyViolation {
		return apperrors.ErrUserNotFound
	}
	return err
}

func (r *restrictionRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM sell_restrictions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return apperrors.ErrRestrictionNotFound
	}
	return nil
}

func (r *restrictionRepo) List(ctx context.Context) ([]models.SellRestriction, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+restrictionColumns+` FROM sell_restrictions ORDER BY updated_at DESC`)
	if err != nil {
		logger.Log.Error("failed to query restrictions", zap.Error(err))
		return nil, err
	}
	defer closeRows(rows)

	var list []models.SellRestriction
	for rows.Next() {
		rs, err := scanRestriction(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *rs)
	}
	return list, rows.Err()
}
