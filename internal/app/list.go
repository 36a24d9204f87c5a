package app

import (
	"context"

	"auction-console/internal/api"
	"auction-console/internal/models"
	"auction-console/internal/view"
	"auction-console/utils"
)

// AuctionList keeps the rendered auction collection in step with the
// backend. Fetches run off the dispatcher goroutine; their completions come
// back as intents, so all state here is mutated from one goroutine only.
type AuctionList struct {
	api      api.AuctionAPI
	display  Display
	notifier *Notifier
	post     func(Intent)
	spawn    func(func())

	nextSeq    uint64
	appliedSeq uint64
	current    []models.Auction
}

// NewAuctionList creates the list synchronizer.
func NewAuctionList(client api.AuctionAPI, display Display, notifier *Notifier, post func(Intent), spawn func(func())) *AuctionList {
	return &AuctionList{
		api:      client,
		display:  display,
		notifier: notifier,
		post:     post,
		spawn:    spawn,
	}
}

// Refresh re-reads the auction collection. Overlapping refreshes are not
// serialized; each carries a sequence number so a completion that has been
// overtaken by a later refresh is discarded instead of rendered.
func (l *AuctionList) Refresh() {
	l.nextSeq++
	seq := l.nextSeq

	l.display.SetRegion(RegionAuctionList, view.LoadingFragment)

	l.spawn(func() {
		auctions, err := l.api.ListAuctions(context.Background())
		l.post(listFetched{seq: seq, auctions: auctions, err: err})
	})
}

// apply renders a completed fetch, or the failure placeholder. Stale
// completions are dropped.
func (l *AuctionList) apply(in listFetched) {
	if in.seq <= l.appliedSeq {
		utils.Info("discarding stale auction list response", map[string]any{
			"seq":     in.seq,
			"applied": l.appliedSeq,
		})
		return
	}
	l.appliedSeq = in.seq

	if in.err != nil {
		utils.Error("failed to load auctions", map[string]any{"error": in.err.Error()})
		l.notifier.Notify("Failed to load auctions", SeverityError)
		l.display.SetRegion(RegionAuctionList, view.AuctionsUnavailableMessage)
		return
	}

	fragment, err := view.RenderAuctionList(in.auctions)
	if err != nil {
		utils.Error("failed to render auction list", map[string]any{"error": err.Error()})
		l.display.SetRegion(RegionAuctionList, view.AuctionsUnavailableMessage)
		return
	}

	l.current = in.auctions
	l.display.SetRegion(RegionAuctionList, fragment)
}

// Auctions returns the last successfully fetched collection.
func (l *AuctionList) Auctions() []models.Auction {
	return l.current
}
