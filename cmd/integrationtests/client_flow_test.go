package integrationtests

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"auction-console/internal/app"
	"auction-console/internal/clienterrors"

	"github.com/stretchr/testify/require"
)

func TestListPlaceBidAndRelist(t *testing.T) {
	client, _ := startBackend(t)
	ctx := context.Background()

	auctions, err := client.ListAuctions(ctx)
	require.NoError(t, err)
	require.Len(t, auctions, 4)

	var watchMin float64
	for _, a := range auctions {
		if a.AuctionID == 1 {
			watchMin = a.MinimumBid()
		}
	}
	require.Equal(t, float64(575), watchMin)

	result, err := client.PlaceBid(ctx, 1, "diana", watchMin)
	require.NoError(t, err)
	require.True(t, result.Success)

	auctions, err = client.ListAuctions(ctx)
	require.NoError(t, err)
	for _, a := range auctions {
		if a.AuctionID == 1 {
			require.Equal(t, watchMin, a.CurrentHighestBid)
			require.Equal(t, "diana", a.HighestBidder)
		}
	}
}

func TestPlaceBid_BackendRejectionReachesClient(t *testing.T) {
	client, _ := startBackend(t)

	result, err := client.PlaceBid(context.Background(), 1, "diana", 1)
	require.True(t, errors.Is(err, clienterrors.ErrRejected))
	require.Contains(t, result.Error, "too low")
}

func TestBidHistoryRoundTrip(t *testing.T) {
	client, _ := startBackend(t)

	bids, err := client.ListBids(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, bids, 2)
}

func TestRegisterAndDuplicate(t *testing.T) {
	client, _ := startBackend(t)
	ctx := context.Background()

	result, err := client.RegisterUser(ctx, "eve", "eve@email.com", false)
	require.NoError(t, err)
	require.True(t, result.Success)

	result, err = client.RegisterUser(ctx, "eve", "eve@email.com", false)
	require.True(t, errors.Is(err, clienterrors.ErrRejected))
	require.Equal(t, "Username already exists", result.Error)
}

func TestStatusEndpoint(t *testing.T) {
	client, _ := startBackend(t)

	status, err := client.Status(context.Background())
	require.NoError(t, err)
	require.Contains(t, status, "Server Status: RUNNING")
}

// TestAppEndToEnd runs the whole client, dispatcher and all, against the
// stub backend.
func TestAppEndToEnd(t *testing.T) {
	client, _ := startBackend(t)
	display := newRecordingDisplay()

	a := app.New(app.Config{
		API:     client,
		Display: display,

		// long enough that ticks never interfere with the assertions
		RefreshPeriod: time.Hour,
	})
	go a.Run()
	defer a.Dispose()

	// the initial load renders the seeded listings
	require.Eventually(t, func() bool {
		return strings.Contains(display.region(app.RegionAuctionList), "Vintage Watch")
	}, 5*time.Second, 10*time.Millisecond)

	// open the dialog for auction 1: minimum is 550 + 25
	a.Post(app.OpenDialog{AuctionID: 1})
	require.Eventually(t, func() bool {
		return strings.Contains(display.region(app.RegionBidForm), `value="575.00"`)
	}, 5*time.Second, 10*time.Millisecond)
	require.Equal(t, 1, display.dialogCount())

	// place the minimum bid; the dialog closes and the list re-renders with
	// the new highest bid
	a.Post(app.SubmitBid{AuctionID: 1, BidderName: "diana", Amount: 575})
	require.Eventually(t, func() bool {
		return display.hideCount() == 1
	}, 5*time.Second, 10*time.Millisecond)
	require.Eventually(t, func() bool {
		list := display.region(app.RegionAuctionList)
		return strings.Contains(list, "$575.00") && strings.Contains(list, "by diana")
	}, 5*time.Second, 10*time.Millisecond)

	require.Eventually(t, func() bool {
		return strings.Contains(display.region(app.RegionNotice), "Bid placed successfully!")
	}, 5*time.Second, 10*time.Millisecond)
}
