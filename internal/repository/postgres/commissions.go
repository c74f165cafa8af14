package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/atelierdahl/atelier-go/internal/domain"
	"github.com/atelierdahl/atelier-go/internal/repository"
)

type CommissionRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *CommissionRepo) With(db DB) *CommissionRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *CommissionRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

func (r *CommissionRepo) CreateCommissionRequest(ctx context.Context, cr *domain.CommissionRequest) error {
	const op = "postgres.CommissionRepo.CreateCommissionRequest"

	db := r.handle()

	if cr.ID == uuid.Nil {
		cr.ID = uuid.New()
	}
	if cr.CreatedAt.IsZero() {
		cr.CreatedAt = time.Now().UTC()
	}
	if cr.Status == "" {
		cr.Status = domain.CommissionNew
	}

	if _, err := db.Exec(ctx,
		`INSERT INTO commission_requests(id, customer_name, customer_email, customer_phone,
		                                 description, budget, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		cr.ID, cr.CustomerName, cr.CustomerEmail, cr.CustomerPhone,
		cr.Description, cr.Budget, cr.Status, cr.CreatedAt,
	); err != nil {
		return fmt.Errorf("%s: %w", op, translateDBErr(err))
	}

	return nil
}

func (r *CommissionRepo) ListCommissionRequests(ctx context.Context) ([]domain.CommissionRequest, error) {
	const op = "postgres.CommissionRepo.ListCommissionRequests"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT id, customer_name, customer_email, customer_phone,
		        description, budget, status, created_at
		 FROM commission_requests
		 ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, translateDBErr(err))
	}

	defer rows.Close()

	var out []domain.CommissionRequest
	for rows.Next() {
		var cr domain.CommissionRequest
		if err := rows.Scan(
			&cr.ID, &cr.CustomerName, &cr.CustomerEmail, &cr.CustomerPhone,
			&cr.Description, &cr.Budget, &cr.Status, &cr.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%s: %w", op, translateDBErr(err))
		}

		out = append(out, cr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

func (r *CommissionRepo) UpdateCommissionStatus(ctx context.Context, id uuid.UUID, status domain.CommissionStatus) error {
	const op = "postgres.CommissionRepo.UpdateCommissionStatus"

	db := r.handle()

	tag, err := db.Exec(ctx,
		`UPDATE commission_requests SET status = $2 WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, translateDBErr(err))
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, repository.ErrNotFound)
	}

	return nil
}
