package app

import "auction-console/internal/models"

// Intent is a message routed by the application dispatcher. UI events
// produce the exported intents; network completions arrive as the
// unexported ones. A single goroutine handles them all, which is the only
// serialization the client has or needs.
type Intent interface {
	isIntent()
}

// ShowSection switches the visible top-level view.
type ShowSection struct {
	Section Section
}

// RefreshList re-reads the auction collection from the backend.
type RefreshList struct{}

// OpenDialog opens the bid dialog for one auction.
type OpenDialog struct {
	AuctionID int64
}

// SubmitBid proposes a bid from the open dialog.
type SubmitBid struct {
	AuctionID  int64
	BidderName string
	Amount     float64
}

// CloseDialog dismisses the bid dialog.
type CloseDialog struct{}

// Register submits a user registration.
type Register struct {
	Username string
	Email    string
	IsSeller bool
}

// CreateListing submits a new auction.
type CreateListing struct {
	Req models.CreateAuctionRequest
}

// CheckStatus queries the backend health summary.
type CheckStatus struct{}

// Completion intents posted by fetch goroutines and timers.

type listFetched struct {
	seq      uint64
	auctions []models.Auction
	err      error
}

type dialogFetched struct {
	auction models.Auction
	bids    []models.Bid
	err     error
}

type bidPlaced struct {
	result models.WriteResult
	err    error
}

type writeOp int

const (
	opRegister writeOp = iota
	opCreate
)

type writeFinished struct {
	op     writeOp
	result models.WriteResult
	err    error
}

type statusFetched struct {
	status string
	err    error
}

type noticeExpired struct {
	seq uint64
}

type tick struct{}

func (ShowSection) isIntent()   {}
func (RefreshList) isIntent()   {}
func (OpenDialog) isIntent()    {}
func (SubmitBid) isIntent()     {}
func (CloseDialog) isIntent()   {}
func (Register) isIntent()      {}
func (CreateListing) isIntent() {}
func (CheckStatus) isIntent()   {}
func (listFetched) isIntent()   {}
func (dialogFetched) isIntent() {}
func (bidPlaced) isIntent()     {}
func (writeFinished) isIntent() {}
func (statusFetched) isIntent() {}
func (noticeExpired) isIntent() {}
func (tick) isIntent()          {}
