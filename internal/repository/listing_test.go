package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/adboard/adboard-go/internal/model"
)

func newTestListingRepo(t *testing.T) (*ListingRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewListingRepository(db), mock
}

var listingColumns = []string{"id", "user_id", "title", "description", "price", "city", "image_base64", "created_at"}

var joinedColumns = []string{"id", "user_id", "title", "description", "price", "city", "image_base64", "created_at", "name", "email"}

func TestListingCreate(t *testing.T) {
	repo, mock := newTestListingRepo(t)

	l := &model.Listing{
		ID:          "l-1",
		UserID:      "u-1",
		Title:       "Bike",
		Description: "A red bike",
		Price:       125.50,
		City:        "Istanbul",
		ImageBase64: "aW1n",
	}

	mock.ExpectExec("INSERT INTO listings").
		WithArgs(l.ID, l.UserID, l.Title, l.Description, l.Price, l.City, l.ImageBase64).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), l))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListingListAllOrderPreserved(t *testing.T) {
	repo, mock := newTestListingRepo(t)

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(joinedColumns).
		AddRow("l-3", "u-1", "C", "", 3.0, "", "", base.Add(2*time.Hour), "Ada", "a@x.com").
		AddRow("l-2", "u-1", "B", "", 2.0, "", "", base.Add(time.Hour), "Ada", "a@x.com").
		AddRow("l-1", "u-1", "A", "", 1.0, "", "", base, "Ada", "a@x.com")

	mock.ExpectQuery("SELECT l.id, l.user_id, l.title").
		WillReturnRows(rows)

	listings, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, listings, 3)

	// Newest first, as ordered by the store.
	require.Equal(t, "l-3", listings[0].ID)
	require.Equal(t, "l-2", listings[1].ID)
	require.Equal(t, "l-1", listings[2].ID)
	require.Equal(t, "Ada", listings[0].SellerName)
	require.Equal(t, "a@x.com", listings[0].SellerEmail)
}

func TestListingListAllEmpty(t *testing.T) {
	repo, mock := newTestListingRepo(t)

	mock.ExpectQuery("SELECT l.id, l.user_id, l.title").
		WillReturnRows(sqlmock.NewRows(joinedColumns))

	listings, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Empty(t, listings)
}

func TestListingGetByID(t *testing.T) {
	repo, mock := newTestListingRepo(t)

	created := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(listingColumns).
		AddRow("l-1", "u-1", "Bike", "A red bike", 125.50, "Istanbul", "aW1n", created)

	mock.ExpectQuery("SELECT id, user_id, title, description, price, city, image_base64, created_at").
		WithArgs("l-1").
		WillReturnRows(rows)

	l, err := repo.GetByID(context.Background(), "l-1")
	require.NoError(t, err)
	require.Equal(t, "Bike", l.Title)
	require.Equal(t, 125.50, l.Price)
	require.Equal(t, created, l.CreatedAt)
}

func TestListingGetByIDNotFound(t *testing.T) {
	repo, mock := newTestListingRepo(t)

	mock.ExpectQuery("SELECT id, user_id, title, description, price, city, image_base64, created_at").
		WithArgs("nope").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "nope")
	require.ErrorIs(t, err, ErrListingNotFound)
}
