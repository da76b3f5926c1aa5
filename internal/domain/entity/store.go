package entity

import (
	"time"

	"github.com/google/uuid"
)

// StoreStatus is the moderation state of a store request.
type StoreStatus string

const (
	StoreStatusPending  StoreStatus = "pending"
	StoreStatusApproved StoreStatus = "approved"
	StoreStatusRejected StoreStatus = "rejected"
)

func (s StoreStatus) String() string {
	return string(s)
}

// IsValid checks if the status is one of the known values.
func (s StoreStatus) IsValid() bool {
	switch s {
	case StoreStatusPending, StoreStatusApproved, StoreStatusRejected:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether moderation may move a store from s to next.
// Only pending stores can be decided, and approved/rejected are terminal.
func (s StoreStatus) CanTransitionTo(next StoreStatus) bool {
	return s == StoreStatusPending && (next == StoreStatusApproved || next == StoreStatusRejected)
}

// Address locates a store. All fields are required.
type Address struct {
	Area     string
	City     string
	District string
}

// Review is embedded in a store.
type Review struct {
	AccountID uuid.UUID
	// Name is the reviewer's display name at the time of writing.
	Name      string
	Rating    int
	Comment   string
	CreatedAt time.Time
}

// Store is a vendor's shop. Rating and ReviewCount are derived from Reviews.
type Store struct {
	ID          uuid.UUID
	VendorID    uuid.UUID
	Name        string
	Image       string
	Category    string
	Address     Address
	Status      StoreStatus
	Reviews     []Review
	Rating      float64
	ReviewCount int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsApproved reports whether the store is visible and accepts products and reviews.
func (s *Store) IsApproved() bool {
	return s.Status == StoreStatusApproved
}

// HasReviewBy reports whether accountID already reviewed the store.
func (s *Store) HasReviewBy(accountID uuid.UUID) bool {
	for i := range s.Reviews {
		if s.Reviews[i].AccountID == accountID {
			return true
		}
	}

	return false
}

// AppendReview adds a review and recomputes the aggregates.
func (s *Store) AppendReview(review Review) {
	s.Reviews = append(s.Reviews, review)
	s.RecomputeRating()
}

// RecomputeRating sets ReviewCount and Rating (plain arithmetic mean) from Reviews.
func (s *Store) RecomputeRating() {
	s.ReviewCount = len(s.Reviews)
	if s.ReviewCount == 0 {
		s.Rating = 0

		return
	}

	sum := 0
	for i := range s.Reviews {
		sum += s.Reviews[i].Rating
	}
	s.Rating = float64(sum) / float64(s.ReviewCount)
}

// AssetRefs returns the store's own image reference, if any.
func (s *Store) AssetRefs() []string {
	if s.Image == "" {
		return nil
	}

	return []string{s.Image}
}
