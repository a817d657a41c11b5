package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/adboard/adboard-go/internal/model"
)

var ErrListingNotFound = errors.New("listing not found")

// ListingRepository handles listing persistence operations.
type ListingRepository struct {
	db *sql.DB
}

// NewListingRepository creates a new ListingRepository.
func NewListingRepository(db *sql.DB) *ListingRepository {
	return &ListingRepository{db: db}
}

// Create inserts a new listing. created_at is assigned by the store.
func (r *ListingRepository) Create(ctx context.Context, l *model.Listing) error {
	query := `INSERT INTO listings (id, user_id, title, description, price, city, image_base64)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		l.ID, l.UserID, l.Title, l.Description, l.Price, l.City, l.ImageBase64,
	)
	return err
}

// ListAll retrieves every listing joined with its seller's name and email,
// newest first. The result is unbounded; there is no pagination.
func (r *ListingRepository) ListAll(ctx context.Context) ([]model.ListingWithSeller, error) {
	query := `SELECT l.id, l.user_id, l.title, l.description, l.price, l.city, l.image_base64, l.created_at,
			u.name, u.email
		FROM listings l
		JOIN users u ON l.user_id = u.id
		ORDER BY l.created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var listings []model.ListingWithSeller
	for rows.Next() {
		var l model.ListingWithSeller
		if err := rows.Scan(
			&l.ID, &l.UserID, &l.Title, &l.Description, &l.Price, &l.City, &l.ImageBase64, &l.CreatedAt,
			&l.SellerName, &l.SellerEmail,
		); err != nil {
			return nil, err
		}
		listings = append(listings, l)
	}

	return listings, rows.Err()
}

// GetByID retrieves a single listing by its identifier.
func (r *ListingRepository) GetByID(ctx context.Context, id string) (*model.Listing, error) {
	query := `SELECT id, user_id, title, description, price, city, image_base64, created_at
		FROM listings WHERE id = ?`

	l := &model.Listing{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&l.ID, &l.UserID, &l.Title, &l.Description, &l.Price, &l.City, &l.ImageBase64, &l.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}

	return l, nil
}
