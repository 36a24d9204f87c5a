package models

// Auction is the client-side snapshot of a listing as served by the auction
// backend. Snapshots are disposable: a newer fetch always replaces them.
type Auction struct {
	AuctionID         int64   `json:"auctionId"`
	ItemName          string  `json:"itemName"`
	Description       string  `json:"description"`
	SellerName        string  `json:"sellerName"`
	StartingPrice     float64 `json:"startingPrice"`
	CurrentHighestBid float64 `json:"currentHighestBid"`
	HighestBidder     string  `json:"highestBidder"`
	BidIncrement      float64 `json:"bidIncrement"`
	StartTime         string  `json:"startTime"`
	EndTime           string  `json:"endTime"`
	IsActive          bool    `json:"isActive"`
	TotalBids         int64   `json:"totalBids"`
}

// MinimumBid returns the smallest amount the client will propose for this
// auction. Every render path and the dialog prefill go through here.
func (a Auction) MinimumBid() float64 {
	return a.CurrentHighestBid + a.BidIncrement
}

// HasBids reports whether anyone has outbid the starting price yet.
func (a Auction) HasBids() bool {
	return a.HighestBidder != ""
}

// Bid is a recorded monetary proposal against an auction. Bids are read-only
// to the client; they are only listed and sorted for display.
type Bid struct {
	BidID      int64   `json:"bidId"`
	AuctionID  int64   `json:"auctionId"`
	BidderName string  `json:"bidderName"`
	Amount     float64 `json:"amount"`
	Timestamp  string  `json:"timestamp"`
}

// WriteResult is the uniform envelope returned by every write endpoint.
// Callers must branch on Success, not on the transport status alone.
type WriteResult struct {
	Success   bool   `json:"success"`
	Error     string `json:"error,omitempty"`
	AuctionID int64  `json:"auctionId,omitempty"`
	BidID     int64  `json:"bidId,omitempty"`
}

// ServerStatus is the payload of the status endpoint.
type ServerStatus struct {
	Status string `json:"status"`
}

// CreateAuctionRequest carries the form fields for creating a listing.
type CreateAuctionRequest struct {
	ItemName        string
	Description     string
	SellerName      string
	StartingPrice   float64
	BidIncrement    float64
	DurationMinutes int64
}
