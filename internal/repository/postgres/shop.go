package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/atelierdahl/atelier-go/internal/domain"
	"github.com/atelierdahl/atelier-go/internal/repository"
)

// ShopRepo covers the storefront side tables: products and gallery images.
type ShopRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *ShopRepo) With(db DB) *ShopRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *ShopRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

func (r *ShopRepo) ListProducts(ctx context.Context) ([]domain.Product, error) {
	const op = "postgres.ShopRepo.ListProducts"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT id, name, description, price, category, image_url, available, created_at
		 FROM products
		 ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, translateDBErr(err))
	}

	defer rows.Close()

	var out []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Description, &p.Price, &p.Category,
			&p.ImageURL, &p.Available, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%s: %w", op, translateDBErr(err))
		}

		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

func (r *ShopRepo) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	const op = "postgres.ShopRepo.GetProduct"

	db := r.handle()

	var p domain.Product
	err := db.QueryRow(ctx,
		`SELECT id, name, description, price, category, image_url, available, created_at
		 FROM products WHERE id = $1`,
		id,
	).Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Category,
		&p.ImageURL, &p.Available, &p.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, translateDBErr(err))
	}

	return &p, nil
}

func (r *ShopRepo) CreateProduct(ctx context.Context, p *domain.Product) (int64, error) {
	const op = "postgres.ShopRepo.CreateProduct"

	db := r.handle()

	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}

	var id int64
	if err := db.QueryRow(ctx,
		`INSERT INTO products(name, description, price, category, image_url, available, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		p.Name, p.Description, p.Price, p.Category, p.ImageURL, p.Available, p.CreatedAt,
	).Scan(&id); err != nil {
		return 0, fmt.Errorf("%s: %w", op, translateDBErr(err))
	}

	return id, nil
}

func (r *ShopRepo) UpdateProduct(ctx context.Context, p *domain.Product) error {
	const op = "postgres.ShopRepo.UpdateProduct"

	db := r.handle()

	tag, err := db.Exec(ctx,
		`UPDATE products
		 SET name = $2, description = $3, price = $4, category = $5,
		     image_url = $6, available = $7
		 WHERE id = $1`,
		p.ID, p.Name, p.Description, p.Price, p.Category, p.ImageURL, p.Available,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, translateDBErr(err))
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, repository.ErrNotFound)
	}

	return nil
}

func (r *ShopRepo) DeleteProduct(ctx context.Context, id int64) error {
	const op = "postgres.ShopRepo.DeleteProduct"

	db := r.handle()

	tag, err := db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, translateDBErr(err))
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, repository.ErrNotFound)
	}

	return nil
}

func (r *ShopRepo) ListGalleryImages(ctx context.Context) ([]domain.GalleryImage, error) {
	const op = "postgres.ShopRepo.ListGalleryImages"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT id, title, description, category, image_url, created_at
		 FROM gallery_images
		 ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, translateDBErr(err))
	}

	defer rows.Close()

	var out []domain.GalleryImage
	for rows.Next() {
		var img domain.GalleryImage
		if err := rows.Scan(
			&img.ID, &img.Title, &img.Description, &img.Category, &img.ImageURL, &img.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%s: %w", op, translateDBErr(err))
		}

		out = append(out, img)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

func (r *ShopRepo) CreateGalleryImage(ctx context.Context, img *domain.GalleryImage) (int64, error) {
	const op = "postgres.ShopRepo.CreateGalleryImage"

	db := r.handle()

	if img.CreatedAt.IsZero() {
		img.CreatedAt = time.Now().UTC()
	}

	var id int64
	if err := db.QueryRow(ctx,
		`INSERT INTO gallery_images(title, description, category, image_url, created_at)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		img.Title, img.Description, img.Category, img.ImageURL, img.CreatedAt,
	).Scan(&id); err != nil {
		return 0, fmt.Errorf("%s: %w", op, translateDBErr(err))
	}

	return id, nil
}

func (r *ShopRepo) DeleteGalleryImage(ctx context.Context, id int64) error {
	const op = "postgres.ShopRepo.DeleteGalleryImage"

	db := r.handle()

	tag, err := db.Exec(ctx, `DELETE FROM gallery_images WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, translateDBErr(err))
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, repository.ErrNotFound)
	}

	return nil
}
