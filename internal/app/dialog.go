package app

import (
	"context"
	"errors"
	"fmt"

	"auction-console/internal/api"
	"auction-console/internal/clienterrors"
	"auction-console/internal/models"
	"auction-console/internal/view"
	"auction-console/utils"
)

// DialogState is the lifecycle state of the bid dialog.
type DialogState int

const (
	DialogClosed DialogState = iota
	DialogLoading
	DialogReady
	DialogSubmitting
)

// BidDialog drives the bounded-lifetime modal used to place a bid: load the
// auction and its history, prefill the minimum acceptable amount, submit,
// and close. The backend stays authoritative; a rejection keeps the dialog
// open so the user can correct and resubmit.
type BidDialog struct {
	api      api.AuctionAPI
	display  Display
	notifier *Notifier
	post     func(Intent)
	spawn    func(func())

	state   DialogState
	auction models.Auction
}

// NewBidDialog creates a closed dialog.
func NewBidDialog(client api.AuctionAPI, display Display, notifier *Notifier, post func(Intent), spawn func(func())) *BidDialog {
	return &BidDialog{
		api:      client,
		display:  display,
		notifier: notifier,
		post:     post,
		spawn:    spawn,
	}
}

// State returns the dialog's lifecycle state.
func (d *BidDialog) State() DialogState {
	return d.state
}

// Auction returns the auction shown by a ready dialog.
func (d *BidDialog) Auction() models.Auction {
	return d.auction
}

// Open loads the auction and its bid history. There is no single-auction
// endpoint, so the full collection is fetched and searched; a missing id is
// a non-fatal user error and leaves the dialog closed. A failed history
// fetch is tolerated and shown as an empty history.
func (d *BidDialog) Open(auctionID int64) {
	if d.state == DialogSubmitting {
		return
	}
	d.state = DialogLoading

	d.spawn(func() {
		auctions, err := d.api.ListAuctions(context.Background())
		if err != nil {
			d.post(dialogFetched{err: err})
			return
		}

		var found *models.Auction
		for i := range auctions {
			if auctions[i].AuctionID == auctionID {
				found = &auctions[i]
				break
			}
		}
		if found == nil {
			d.post(dialogFetched{err: fmt.Errorf("%w: id %d", clienterrors.ErrAuctionNotFound, auctionID)})
			return
		}

		bids, err := d.api.ListBids(context.Background(), auctionID)
		if err != nil {
			utils.Warn("bid history unavailable, opening with empty history", map[string]any{
				"auction_id": auctionID,
				"error":      err.Error(),
			})
			bids = nil
		}

		d.post(dialogFetched{auction: *found, bids: bids})
	})
}

// applyFetched opens the dialog with the loaded auction, or surfaces the
// load failure and stays closed.
func (d *BidDialog) applyFetched(in dialogFetched) {
	if d.state != DialogLoading {
		// closed while the fetch was in flight
		return
	}

	if in.err != nil {
		d.state = DialogClosed
		if errors.Is(in.err, clienterrors.ErrAuctionNotFound) {
			d.notifier.Notify("Auction not found", SeverityError)
		} else {
			utils.Error("failed to load auction details", map[string]any{"error": in.err.Error()})
			d.notifier.Notify("Failed to load auction details", SeverityError)
		}
		return
	}

	details, derr := view.RenderAuctionDetails(in.auction)
	history, herr := view.RenderBidHistory(in.bids)
	form, ferr := view.RenderBidForm(in.auction)
	if err := errors.Join(derr, herr, ferr); err != nil {
		d.state = DialogClosed
		utils.Error("failed to render bid dialog", map[string]any{"error": err.Error()})
		d.notifier.Notify("Failed to load auction details", SeverityError)
		return
	}

	d.auction = in.auction
	d.state = DialogReady
	d.display.SetRegion(RegionAuctionDetails, details)
	d.display.SetRegion(RegionBidHistory, history)
	d.display.SetRegion(RegionBidForm, form)
	d.display.ShowDialog()
}

// Submit proposes a bid. No numeric validation happens here beyond what the
// form's minimum bound already hinted; acceptance belongs to the backend.
func (d *BidDialog) Submit(auctionID int64, bidderName string, amount float64) {
	if d.state != DialogReady {
		return
	}
	d.state = DialogSubmitting

	d.spawn(func() {
		result, err := d.api.PlaceBid(context.Background(), auctionID, bidderName, amount)
		d.post(bidPlaced{result: result, err: err})
	})
}

// applyPlaced closes the dialog on success and asks for a list refresh so
// the new highest bid becomes visible. A failure keeps the dialog ready
// with its input intact.
func (d *BidDialog) applyPlaced(in bidPlaced) {
	if d.state != DialogSubmitting {
		return
	}

	if in.err != nil {
		d.state = DialogReady
		reason := failureReason(in.result, in.err, "bid rejected")
		d.notifier.Notify("Failed to place bid: "+reason, SeverityError)
		return
	}

	// the submission is settled, so Close's mid-submission guard no longer
	// applies
	d.state = DialogReady
	d.Close()
	d.notifier.Notify("Bid placed successfully!", SeveritySuccess)
	d.post(RefreshList{})
}

// Close clears the form and hides the dialog. It is legal from any state
// except mid-submission, including when the dialog is already closed.
func (d *BidDialog) Close() {
	if d.state == DialogSubmitting {
		return
	}
	d.state = DialogClosed
	d.display.ClearRegion(RegionAuctionDetails)
	d.display.ClearRegion(RegionBidHistory)
	d.display.ClearRegion(RegionBidForm)
	d.display.HideDialog()
}

// failureReason picks the user-facing reason for a failed write: the
// backend's verbatim reason when it sent one, the fallback for a bare
// rejection, and a generic message for transport failures.
func failureReason(result models.WriteResult, err error, fallback string) string {
	switch {
	case errors.Is(err, clienterrors.ErrRejected) && result.Error != "":
		return result.Error
	case errors.Is(err, clienterrors.ErrRejected):
		return fallback
	default:
		return "server unreachable"
	}
}
