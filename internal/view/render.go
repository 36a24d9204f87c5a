// Package view turns auction records into display-ready HTML fragments.
// Everything here is a pure mapping; interpolated text is escaped by the
// template engine.
package view

import (
	"fmt"
	"html/template"
	"sort"
	"strings"
	"time"

	"auction-console/internal/models"
)

// Placeholder fragments for regions whose data is missing or failed to load.
const (
	LoadingFragment            = `<div class="loading"><p>Loading...</p></div>`
	AuctionsUnavailableMessage = `<p class="error">Failed to load auctions</p>`
	NoAuctionsMessage          = `<p class="no-data">No active auctions found.</p>`
	NoBidsMessage              = `<p class="no-data">No bids yet.</p>`
	StatusUnavailableMessage   = "Failed to load server status"
)

// wireTimeLayout is the timestamp layout the backend serves.
const wireTimeLayout = "2006-01-02 15:04:05"

// FuncMap returns the template function map.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"money": func(amount float64) string {
			return fmt.Sprintf("$%.2f", amount)
		},
		"formatTime": formatTime,
	}
}

// formatTime reformats a wire timestamp for display, falling back to the
// raw string when it does not parse.
func formatTime(raw string) string {
	ts, err := time.Parse(wireTimeLayout, raw)
	if err != nil {
		return raw
	}
	return ts.Format("Jan 2, 2006 15:04")
}

var (
	auctionCardTmpl = template.Must(template.New("auctionCard").Funcs(FuncMap()).Parse(`<div class="auction-card">
  <div class="auction-header">
    <div class="auction-title">{{.Auction.ItemName}}</div>
    <div class="auction-status">{{if .Auction.IsActive}}Active{{else}}Closed{{end}}</div>
  </div>
  <div class="auction-description">{{.Auction.Description}}</div>
  <div class="auction-details">
    <span class="detail-item">Seller: {{.Auction.SellerName}}</span>
    <span class="detail-item">Starting: {{money .Auction.StartingPrice}}</span>
    <span class="detail-item">Increment: {{money .Auction.BidIncrement}}</span>
    <span class="detail-item">Total Bids: {{.Auction.TotalBids}}</span>
    <span class="detail-item">Ends: {{formatTime .Auction.EndTime}}</span>
  </div>
  <div class="current-bid">
    <span class="bid-amount">{{money .Auction.CurrentHighestBid}}</span>
    <span class="bid-info">{{if .Auction.HasBids}}by {{.Auction.HighestBidder}}{{else}}Starting price{{end}}</span>
  </div>
  {{if .Auction.IsActive}}<button class="bid-btn" data-auction-id="{{.Auction.AuctionID}}">Place Bid (Min: {{money .MinimumBid}})</button>{{else}}<div class="auction-closed">Auction Closed</div>{{end}}
</div>
`))

	auctionDetailsTmpl = template.Must(template.New("auctionDetails").Funcs(FuncMap()).Parse(`<h4>{{.Auction.ItemName}}</h4>
<p><strong>Description:</strong> {{.Auction.Description}}</p>
<p><strong>Seller:</strong> {{.Auction.SellerName}}</p>
<p><strong>Current Highest Bid:</strong> {{money .Auction.CurrentHighestBid}}</p>
<p><strong>Minimum Next Bid:</strong> {{money .MinimumBid}}</p>
<p><strong>Bid Increment:</strong> {{money .Auction.BidIncrement}}</p>
`))

	bidHistoryTmpl = template.Must(template.New("bidHistory").Funcs(FuncMap()).Parse(`{{range .}}<div class="bid-item">
  <span class="bid-user">{{.BidderName}}</span>
  <span class="bid-time">{{formatTime .Timestamp}}</span>
  <span class="bid-amount-display">{{money .Amount}}</span>
</div>
{{end}}`))

	bidFormTmpl = template.Must(template.New("bidForm").Funcs(FuncMap()).Parse(`<form id="bid-form">
  <input type="hidden" name="auctionId" value="{{.Auction.AuctionID}}">
  <input type="text" name="bidderName" placeholder="Your username" required>
  <input type="number" name="bidAmount" step="0.01" min="{{printf "%.2f" .MinimumBid}}" value="{{printf "%.2f" .MinimumBid}}" required>
  <button type="submit">Place Bid</button>
</form>
`))
)

// cardData feeds auction templates; the minimum bid is computed once so the
// card, the details pane and the form prefill can never disagree.
type cardData struct {
	Auction    models.Auction
	MinimumBid float64
}

// RenderAuctionCard renders a single listing card. Active auctions get a bid
// affordance labelled with the minimum next bid, closed ones a closed marker.
func RenderAuctionCard(a models.Auction) (string, error) {
	return execute(auctionCardTmpl, cardData{Auction: a, MinimumBid: a.MinimumBid()})
}

// RenderAuctionList renders the whole auction collection, with an explicit
// empty state when nothing is active.
func RenderAuctionList(auctions []models.Auction) (string, error) {
	if len(auctions) == 0 {
		return NoAuctionsMessage, nil
	}

	var b strings.Builder
	for _, a := range auctions {
		card, err := RenderAuctionCard(a)
		if err != nil {
			return "", err
		}
		b.WriteString(card)
	}
	return b.String(), nil
}

// RenderAuctionDetails renders the dialog's summary pane for one auction.
func RenderAuctionDetails(a models.Auction) (string, error) {
	return execute(auctionDetailsTmpl, cardData{Auction: a, MinimumBid: a.MinimumBid()})
}

// RenderBidHistory renders a bid history sorted by amount, highest first.
// The input slice is not modified.
func RenderBidHistory(bids []models.Bid) (string, error) {
	if len(bids) == 0 {
		return NoBidsMessage, nil
	}

	sorted := append([]models.Bid(nil), bids...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Amount > sorted[j].Amount
	})
	return execute(bidHistoryTmpl, sorted)
}

// RenderBidForm renders the bid entry form prefilled with the minimum
// acceptable amount for the auction.
func RenderBidForm(a models.Auction) (string, error) {
	return execute(bidFormTmpl, cardData{Auction: a, MinimumBid: a.MinimumBid()})
}

func execute(tmpl *template.Template, data any) (string, error) {
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("view: rendering %s: %w", tmpl.Name(), err)
	}
	return b.String(), nil
}
