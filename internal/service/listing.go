package service

import (
	"context"
	"errors"

	"github.com/adboard/adboard-go/internal/crypto"
	"github.com/adboard/adboard-go/internal/model"
	"github.com/adboard/adboard-go/internal/repository"
)

var (
	ErrTitleRequired   = errors.New("title is required")
	ErrOwnerMismatch   = errors.New("user_id does not match the authenticated user")
	ErrOwnerNotFound   = errors.New("owner does not exist")
	ErrListingNotFound = errors.New("listing not found")
)

// ListingService handles classified ad business logic.
type ListingService struct {
	listings     *repository.ListingRepository
	users        *repository.UserRepository
	strictOwners bool
}

// NewListingService creates a new ListingService. With strictOwners enabled,
// listing creation verifies the owner row exists before insert; otherwise
// the owner reference is taken on trust, matching the schema, which carries
// no foreign key.
func NewListingService(listings *repository.ListingRepository, users *repository.UserRepository, strictOwners bool) *ListingService {
	return &ListingService{
		listings:     listings,
		users:        users,
		strictOwners: strictOwners,
	}
}

// Create inserts a new listing owned by ownerID, the identity carried by the
// verified session token. A user_id in the request body is accepted for wire
// compatibility but must match ownerID when present.
func (s *ListingService) Create(ctx context.Context, ownerID string, req model.CreateListingRequest) (model.CreateListingResponse, error) {
	if req.Title == "" {
		return model.CreateListingResponse{}, ErrTitleRequired
	}
	if req.UserID != "" && req.UserID != ownerID {
		return model.CreateListingResponse{}, ErrOwnerMismatch
	}

	if s.strictOwners {
		if _, err := s.users.GetByID(ctx, ownerID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return model.CreateListingResponse{}, ErrOwnerNotFound
			}
			return model.CreateListingResponse{}, err
		}
	}

	listing := &model.Listing{
		ID:          crypto.NewID(),
		UserID:      ownerID,
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		City:        req.City,
		ImageBase64: req.ImageBase64,
	}

	if err := s.listings.Create(ctx, listing); err != nil {
		return model.CreateListingResponse{}, err
	}

	return model.CreateListingResponse{Success: true, ID: listing.ID}, nil
}

// List returns every listing with seller info, newest first. The slice in
// the response is never nil so the JSON field encodes as [] rather than null.
func (s *ListingService) List(ctx context.Context) (model.ListingsResponse, error) {
	listings, err := s.listings.ListAll(ctx)
	if err != nil {
		return model.ListingsResponse{}, err
	}

	resp := model.ListingsResponse{Listings: make([]model.ListingResponse, len(listings))}
	for i, l := range listings {
		resp.Listings[i] = model.ListingResponse{
			ID:          l.ID,
			UserID:      l.UserID,
			Title:       l.Title,
			Description: l.Description,
			Price:       l.Price,
			City:        l.City,
			ImageBase64: l.ImageBase64,
			CreatedAt:   l.CreatedAt,
			SellerName:  l.SellerName,
			SellerEmail: l.SellerEmail,
		}
	}

	return resp, nil
}

// Get returns a single listing by id.
func (s *ListingService) Get(ctx context.Context, id string) (model.ListingDetailResponse, error) {
	l, err := s.listings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return model.ListingDetailResponse{}, ErrListingNotFound
		}
		return model.ListingDetailResponse{}, err
	}

	return model.ListingDetailResponse{
		Listing: model.ListingResponse{
			ID:          l.ID,
			UserID:      l.UserID,
			Title:       l.Title,
			Description: l.Description,
			Price:       l.Price,
			City:        l.City,
			ImageBase64: l.ImageBase64,
			CreatedAt:   l.CreatedAt,
		},
	}, nil
}
