package view

import (
	"strings"
	"testing"

	"auction-console/internal/models"

	"github.com/stretchr/testify/require"
)

func activeAuction() models.Auction {
	return models.Auction{
		AuctionID:         42,
		ItemName:          "Vintage Watch",
		Description:       "Beautiful vintage Rolex watch from 1960s",
		SellerName:        "alice",
		StartingPrice:     500,
		CurrentHighestBid: 100,
		BidIncrement:      5,
		HighestBidder:     "charlie",
		EndTime:           "2024-06-01 12:00:00",
		IsActive:          true,
		TotalBids:         2,
	}
}

func TestRenderAuctionCard_ActiveShowsBidControl(t *testing.T) {
	out, err := RenderAuctionCard(activeAuction())
	require.NoError(t, err)

	require.Contains(t, out, "bid-btn")
	require.Contains(t, out, "Place Bid (Min: $105.00)")
	require.Contains(t, out, "Active")
	require.NotContains(t, out, "Auction Closed")
}

func TestRenderAuctionCard_InactiveShowsClosedMarker(t *testing.T) {
	a := activeAuction()
	a.IsActive = false

	out, err := RenderAuctionCard(a)
	require.NoError(t, err)

	require.Contains(t, out, "Auction Closed")
	require.NotContains(t, out, "bid-btn")
}

func TestRenderAuctionCard_MinimumBidArithmetic(t *testing.T) {
	tests := []struct {
		name      string
		highest   float64
		increment float64
		expected  string
	}{
		{"round_numbers", 100, 5, "$105.00"},
		{"fractions", 10.50, 0.25, "$10.75"},
		{"zero_increment", 42, 0, "$42.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := activeAuction()
			a.CurrentHighestBid = tt.highest
			a.BidIncrement = tt.increment

			out, err := RenderAuctionCard(a)
			require.NoError(t, err)
			require.Contains(t, out, "Place Bid (Min: "+tt.expected+")")
		})
	}
}

func TestRenderAuctionCard_NoBidderShowsStartingPrice(t *testing.T) {
	a := activeAuction()
	a.HighestBidder = ""

	out, err := RenderAuctionCard(a)
	require.NoError(t, err)
	require.Contains(t, out, "Starting price")
	require.NotContains(t, out, "by charlie")
}

func TestRenderAuctionCard_EscapesMarkup(t *testing.T) {
	a := activeAuction()
	a.ItemName = `<script>alert("x")</script>`
	a.Description = `<img src=x onerror=alert(1)>`
	a.SellerName = `bob & "mallory"`

	out, err := RenderAuctionCard(a)
	require.NoError(t, err)

	require.NotContains(t, out, "<script>")
	require.NotContains(t, out, "<img")
	require.Contains(t, out, "&lt;script&gt;")
}

func TestRenderAuctionList_EmptyState(t *testing.T) {
	out, err := RenderAuctionList(nil)
	require.NoError(t, err)
	require.Equal(t, NoAuctionsMessage, out)
}

func TestRenderAuctionList_RendersEveryCard(t *testing.T) {
	a := activeAuction()
	b := activeAuction()
	b.AuctionID = 43
	b.ItemName = "Gaming Laptop"

	out, err := RenderAuctionList([]models.Auction{a, b})
	require.NoError(t, err)
	require.Contains(t, out, "Vintage Watch")
	require.Contains(t, out, "Gaming Laptop")
}

func TestRenderBidHistory_SortsByAmountDescending(t *testing.T) {
	bids := []models.Bid{
		{BidderName: "bob", Amount: 525, Timestamp: "2024-06-01 10:00:00"},
		{BidderName: "diana", Amount: 600, Timestamp: "2024-06-01 10:02:00"},
		{BidderName: "charlie", Amount: 550, Timestamp: "2024-06-01 10:01:00"},
	}

	out, err := RenderBidHistory(bids)
	require.NoError(t, err)

	first := strings.Index(out, "$600.00")
	second := strings.Index(out, "$550.00")
	third := strings.Index(out, "$525.00")
	require.True(t, first >= 0 && second >= 0 && third >= 0)
	require.Less(t, first, second)
	require.Less(t, second, third)

	// input order untouched
	require.Equal(t, float64(525), bids[0].Amount)
}

func TestRenderBidHistory_EmptyState(t *testing.T) {
	out, err := RenderBidHistory(nil)
	require.NoError(t, err)
	require.Equal(t, NoBidsMessage, out)
}

func TestRenderBidHistory_EscapesBidderName(t *testing.T) {
	out, err := RenderBidHistory([]models.Bid{
		{BidderName: "<b>loud</b>", Amount: 10, Timestamp: "2024-06-01 10:00:00"},
	})
	require.NoError(t, err)
	require.NotContains(t, out, "<b>")
	require.Contains(t, out, "&lt;b&gt;")
}

func TestRenderBidForm_PrefillsMinimum(t *testing.T) {
	out, err := RenderBidForm(activeAuction())
	require.NoError(t, err)

	require.Contains(t, out, `min="105.00"`)
	require.Contains(t, out, `value="105.00"`)
	require.Contains(t, out, `value="42"`)
}

func TestRenderAuctionDetails_SharesMinimumWithCard(t *testing.T) {
	out, err := RenderAuctionDetails(activeAuction())
	require.NoError(t, err)

	require.Contains(t, out, "Minimum Next Bid:</strong> $105.00")
	require.Contains(t, out, "Current Highest Bid:</strong> $100.00")
}

func TestFormatTime(t *testing.T) {
	require.Equal(t, "Jun 1, 2024 12:00", formatTime("2024-06-01 12:00:00"))
	// unparseable input falls back to the raw string
	require.Equal(t, "soon", formatTime("soon"))
}
