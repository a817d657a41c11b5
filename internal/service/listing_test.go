package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/adboard/adboard-go/internal/model"
	"github.com/adboard/adboard-go/internal/repository"
)

func errNoRows() error {
	return sql.ErrNoRows
}

func mockTime() time.Time {
	return time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
}

func duplicateEntryErr() error {
	return &mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'a@x.com' for key 'uniq_users_email'"}
}

func newMockListingService(t *testing.T, strictOwners bool) (*ListingService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	svc := NewListingService(repository.NewListingRepository(db), repository.NewUserRepository(db), strictOwners)
	return svc, mock
}

func TestCreateListingMissingTitle(t *testing.T) {
	svc := NewListingService(nil, nil, false)

	_, err := svc.Create(context.Background(), "u-1", model.CreateListingRequest{})
	require.ErrorIs(t, err, ErrTitleRequired)
}

func TestCreateListingOwnerMismatch(t *testing.T) {
	svc := NewListingService(nil, nil, false)

	_, err := svc.Create(context.Background(), "u-1", model.CreateListingRequest{
		UserID: "someone-else",
		Title:  "Bike",
	})
	require.ErrorIs(t, err, ErrOwnerMismatch)
}

func TestCreateListingSuccess(t *testing.T) {
	svc, mock := newMockListingService(t, false)

	mock.ExpectExec("INSERT INTO listings").
		WithArgs(sqlmock.AnyArg(), "u-1", "Bike", "A red bike", 125.50, "Istanbul", "aW1n").
		WillReturnResult(sqlmock.NewResult(0, 1))

	resp, err := svc.Create(context.Background(), "u-1", model.CreateListingRequest{
		UserID:      "u-1",
		Title:       "Bike",
		Description: "A red bike",
		Price:       125.50,
		City:        "Istanbul",
		ImageBase64: "aW1n",
	})
	require.NoError(t, err)

	require.True(t, resp.Success)
	_, err = uuid.Parse(resp.ID)
	require.NoError(t, err, "listing id should be a generated uuid")

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateListingStrictOwnerUnknown(t *testing.T) {
	svc, mock := newMockListingService(t, true)

	mock.ExpectQuery("SELECT id, name, email, password_hash FROM users WHERE id").
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := svc.Create(context.Background(), "ghost", model.CreateListingRequest{Title: "Bike"})
	require.ErrorIs(t, err, ErrOwnerNotFound)
}

func TestCreateListingStrictOwnerKnown(t *testing.T) {
	svc, mock := newMockListingService(t, true)

	userRows := sqlmock.NewRows([]string{"id", "name", "email", "password_hash"}).
		AddRow("u-1", "Ada", "a@x.com", "digest")

	mock.ExpectQuery("SELECT id, name, email, password_hash FROM users WHERE id").
		WithArgs("u-1").
		WillReturnRows(userRows)

	mock.ExpectExec("INSERT INTO listings").
		WithArgs(sqlmock.AnyArg(), "u-1", "Bike", "", 0.0, "", "").
		WillReturnResult(sqlmock.NewResult(0, 1))

	resp, err := svc.Create(context.Background(), "u-1", model.CreateListingRequest{Title: "Bike"})
	require.NoError(t, err)
	require.True(t, resp.Success)
}

func TestListMapsSellerInfo(t *testing.T) {
	svc, mock := newMockListingService(t, false)

	rows := sqlmock.NewRows([]string{"id", "user_id", "title", "description", "price", "city", "image_base64", "created_at", "name", "email"}).
		AddRow("l-1", "u-1", "Bike", "A red bike", 125.50, "Istanbul", "", mockTime(), "Ada", "a@x.com")

	mock.ExpectQuery("SELECT l.id, l.user_id, l.title").WillReturnRows(rows)

	resp, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Listings, 1)
	require.Equal(t, "Bike", resp.Listings[0].Title)
	require.Equal(t, "Ada", resp.Listings[0].SellerName)
	require.Equal(t, "a@x.com", resp.Listings[0].SellerEmail)
}

func TestListEmptyIsNotNil(t *testing.T) {
	svc, mock := newMockListingService(t, false)

	mock.ExpectQuery("SELECT l.id, l.user_id, l.title").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "title", "description", "price", "city", "image_base64", "created_at", "name", "email"}))

	resp, err := svc.List(context.Background())
	require.NoError(t, err)
	require.NotNil(t, resp.Listings, "listings must encode as [] rather than null")
	require.Empty(t, resp.Listings)
}

func TestGetListingNotFound(t *testing.T) {
	svc, mock := newMockListingService(t, false)

	mock.ExpectQuery("SELECT id, user_id, title, description, price, city, image_base64, created_at").
		WithArgs("nope").
		WillReturnError(sql.ErrNoRows)

	_, err := svc.Get(context.Background(), "nope")
	require.ErrorIs(t, err, ErrListingNotFound)
}
