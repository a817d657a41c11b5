package model

import "time"

// Listing represents a classified ad row in the listings table.
// CreatedAt is assigned by the store on insert.
type Listing struct {
	ID          string
	UserID      string
	Title       string
	Description string
	Price       float64
	City        string
	ImageBase64 string
	CreatedAt   time.Time
}

// ListingWithSeller is a listing joined with its seller's public info.
type ListingWithSeller struct {
	Listing
	SellerName  string
	SellerEmail string
}

// CreateListingRequest represents a listing submission. UserID is optional;
// when present it must match the authenticated user.
type CreateListingRequest struct {
	UserID      string  `json:"user_id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	City        string  `json:"city"`
	ImageBase64 string  `json:"image_base64"`
}

// CreateListingResponse acknowledges a stored listing with its new id.
type CreateListingResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

// ListingResponse is the JSON shape of a single listing. Seller fields are
// only populated in the collection view.
type ListingResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	City        string    `json:"city"`
	ImageBase64 string    `json:"image_base64,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	SellerName  string    `json:"seller_name,omitempty"`
	SellerEmail string    `json:"seller_email,omitempty"`
}

// ListingsResponse wraps the full collection for GET /api/listings.
type ListingsResponse struct {
	Listings []ListingResponse `json:"listings"`
}

// ListingDetailResponse wraps a single listing for GET /api/listings/{listing_id}.
type ListingDetailResponse struct {
	Listing ListingResponse `json:"listing"`
}
