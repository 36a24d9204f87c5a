package stubserver

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"auction-console/internal/models"
)

// wireTimeLayout is the timestamp layout used on the wire.
const wireTimeLayout = "2006-01-02 15:04:05"

// ErrUserExists is returned when a username is already registered.
var ErrUserExists = errors.New("Username already exists")

type user struct {
	Username string
	Email    string
	IsSeller bool
}

// Store is a concurrency-safe in-memory implementation of the auction
// backend's data and bidding rules. It is the authoritative side the client
// talks to in demo mode and in the integration tests.
type Store struct {
	mu       sync.RWMutex
	auctions map[int64]*models.Auction
	bids     map[int64][]models.Bid
	users    map[string]user

	nextAuctionID int64
	nextBidID     int64
	startTime     time.Time

	now func() time.Time
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		auctions:      make(map[int64]*models.Auction),
		bids:          make(map[int64][]models.Bid),
		users:         make(map[string]user),
		nextAuctionID: 1,
		nextBidID:     1,
		startTime:     time.Now(),
		now:           time.Now,
	}
}

// CreateAuction stores a new listing and returns its id. The current
// highest bid starts at the starting price with no bidder.
func (s *Store) CreateAuction(req models.CreateAuctionRequest) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextAuctionID
	s.nextAuctionID++

	now := s.now()
	s.auctions[id] = &models.Auction{
		AuctionID:         id,
		ItemName:          req.ItemName,
		Description:       req.Description,
		SellerName:        req.SellerName,
		StartingPrice:     req.StartingPrice,
		CurrentHighestBid: req.StartingPrice,
		BidIncrement:      req.BidIncrement,
		StartTime:         now.Format(wireTimeLayout),
		EndTime:           now.Add(time.Duration(req.DurationMinutes) * time.Minute).Format(wireTimeLayout),
		IsActive:          true,
	}
	s.bids[id] = nil
	return id
}

// ListAuctions returns the active listings, closing any whose end time has
// passed along the way.
func (s *Store) ListAuctions() []models.Auction {
	s.mu.Lock()
	defer s.mu.Unlock()

	active := make([]models.Auction, 0, len(s.auctions))
	for _, a := range s.auctions {
		if a.IsActive && s.expired(a) {
			a.IsActive = false
		}
		if a.IsActive {
			active = append(active, *a)
		}
	}
	return active
}

func (s *Store) expired(a *models.Auction) bool {
	end, err := time.Parse(wireTimeLayout, a.EndTime)
	if err != nil {
		return false
	}
	return s.now().After(end)
}

// PlaceBid applies the authoritative bidding rules: the auction must exist,
// be active and unexpired, and the amount must reach the current highest
// bid plus the increment.
func (s *Store) PlaceBid(auctionID int64, bidderName string, amount float64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.auctions[auctionID]
	if !ok {
		return 0, fmt.Errorf("Auction with ID %d not found", auctionID)
	}
	if !a.IsActive {
		return 0, fmt.Errorf("Auction %d is no longer active", auctionID)
	}
	if s.expired(a) {
		a.IsActive = false
		return 0, fmt.Errorf("Auction %d has expired", auctionID)
	}

	minimum := a.CurrentHighestBid + a.BidIncrement
	if amount < minimum {
		return 0, fmt.Errorf("Bid amount %.2f is too low. Minimum bid is %.2f", amount, minimum)
	}

	id := s.nextBidID
	s.nextBidID++

	s.bids[auctionID] = append(s.bids[auctionID], models.Bid{
		BidID:      id,
		AuctionID:  auctionID,
		BidderName: bidderName,
		Amount:     amount,
		Timestamp:  s.now().Format(wireTimeLayout),
	})

	a.CurrentHighestBid = amount
	a.HighestBidder = bidderName
	a.TotalBids++
	return id, nil
}

// BidsFor returns the bid history of one auction. An unknown auction is an
// error, an empty history is not.
func (s *Store) BidsFor(auctionID int64) ([]models.Bid, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.auctions[auctionID]; !ok {
		return nil, fmt.Errorf("Auction with ID %d not found", auctionID)
	}
	return append([]models.Bid(nil), s.bids[auctionID]...), nil
}

// RegisterUser records a participant. Usernames are unique.
func (s *Store) RegisterUser(username, email string, isSeller bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[username]; ok {
		return ErrUserExists
	}
	s.users[username] = user{Username: username, Email: email, IsSeller: isSeller}
	return nil
}

// StatusSummary reports the backend health string served by the status
// endpoint.
func (s *Store) StatusSummary() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	activeCount := 0
	totalBids := 0
	for _, a := range s.auctions {
		if a.IsActive && !s.expired(a) {
			activeCount++
		}
	}
	for _, bids := range s.bids {
		totalBids += len(bids)
	}

	return fmt.Sprintf(
		"=== Auction Server Status ===\nServer Start Time: %s\nCurrent Time: %s\nTotal Auctions: %d\nActive Auctions: %d\nTotal Bids: %d\nRegistered Users: %d\nServer Status: RUNNING",
		s.startTime.Format(wireTimeLayout),
		s.now().Format(wireTimeLayout),
		len(s.auctions),
		activeCount,
		totalBids,
		len(s.users),
	)
}

// Seed loads the sample users, listings and bids the demo starts with.
func (s *Store) Seed() {
	_ = s.RegisterUser("alice", "alice@email.com", true)
	_ = s.RegisterUser("bob", "bob@email.com", false)
	_ = s.RegisterUser("charlie", "charlie@email.com", false)
	_ = s.RegisterUser("diana", "diana@email.com", true)

	s.CreateAuction(models.CreateAuctionRequest{
		ItemName: "Vintage Watch", Description: "Beautiful vintage Rolex watch from 1960s",
		SellerName: "alice", StartingPrice: 500, BidIncrement: 25, DurationMinutes: 60,
	})
	s.CreateAuction(models.CreateAuctionRequest{
		ItemName: "Gaming Laptop", Description: "High-performance gaming laptop with RTX 4080",
		SellerName: "diana", StartingPrice: 1200, BidIncrement: 50, DurationMinutes: 120,
	})
	s.CreateAuction(models.CreateAuctionRequest{
		ItemName: "Art Painting", Description: "Original oil painting by local artist",
		SellerName: "alice", StartingPrice: 200, BidIncrement: 15, DurationMinutes: 90,
	})
	s.CreateAuction(models.CreateAuctionRequest{
		ItemName: "Antique Vase", Description: "Ming dynasty style ceramic vase",
		SellerName: "diana", StartingPrice: 300, BidIncrement: 20, DurationMinutes: 150,
	})

	_, _ = s.PlaceBid(1, "bob", 525)
	_, _ = s.PlaceBid(1, "charlie", 550)
	_, _ = s.PlaceBid(2, "bob", 1250)
	_, _ = s.PlaceBid(3, "charlie", 215)
}
