// Package app holds the client's controllers: section navigation, auction
// list synchronization, the bid dialog workflow, auto-refresh, and transient
// notifications. A single dispatcher goroutine owns every piece of mutable
// state; fetches run in their own goroutines and report back as intents.
package app

import (
	"context"
	"html/template"
	"sync"
	"time"

	"auction-console/internal/api"
	"auction-console/internal/view"
	"auction-console/utils"
)

// Config carries the collaborators of an App.
type Config struct {
	API     api.AuctionAPI
	Display Display

	// RefreshPeriod overrides the auction list polling cadence. Zero means
	// the default 30 seconds.
	RefreshPeriod time.Duration
}

// App is the application context. It is created once, run once, and
// disposed once; there is no global instance.
type App struct {
	api     api.AuctionAPI
	display Display

	nav      *Navigator
	notifier *Notifier
	list     *AuctionList
	dialog   *BidDialog
	refresh  *AutoRefresh

	intents     chan Intent
	done        chan struct{}
	disposeOnce sync.Once

	// spawn runs fetch work off the dispatcher goroutine. Tests replace it
	// with a direct call to make completions deterministic.
	spawn func(func())
}

// New wires an App from its collaborators.
func New(cfg Config) *App {
	period := cfg.RefreshPeriod
	if period == 0 {
		period = refreshPeriod
	}

	a := &App{
		api:     cfg.API,
		display: cfg.Display,
		intents: make(chan Intent, 64),
		done:    make(chan struct{}),
		spawn:   func(fn func()) { go fn() },
	}

	a.nav = NewNavigator(cfg.Display)
	a.notifier = NewNotifier(cfg.Display, a.post)
	a.list = NewAuctionList(cfg.API, cfg.Display, a.notifier, a.post, a.async)
	a.dialog = NewBidDialog(cfg.API, cfg.Display, a.notifier, a.post, a.async)
	a.refresh = NewAutoRefresh(period, a.post)
	return a
}

// Post hands an intent to the dispatcher. It never blocks a caller past
// disposal.
func (a *App) Post(in Intent) {
	a.post(in)
}

func (a *App) post(in Intent) {
	select {
	case a.intents <- in:
	case <-a.done:
	}
}

func (a *App) async(fn func()) {
	a.spawn(fn)
}

// Run performs the initial load, starts auto-refresh, and processes intents
// until Dispose is called.
func (a *App) Run() {
	a.list.Refresh()
	a.refresh.Start()

	for {
		select {
		case in := <-a.intents:
			a.handle(in)
		case <-a.done:
			return
		}
	}
}

// Dispose stops the auto-refresh timer and the dispatcher. It is safe to
// call more than once.
func (a *App) Dispose() {
	a.disposeOnce.Do(func() {
		a.refresh.Stop()
		close(a.done)
	})
}

// Dialog exposes the bid dialog for UI code that needs its current state.
func (a *App) Dialog() *BidDialog {
	return a.dialog
}

// handle routes one intent to the owning component. It runs only on the
// dispatcher goroutine.
func (a *App) handle(in Intent) {
	switch in := in.(type) {
	case ShowSection:
		a.showSection(in.Section)
	case RefreshList:
		a.list.Refresh()
	case tick:
		// ticks outside the auctions section are a cheap skip
		if a.nav.Current() == SectionAuctions {
			a.list.Refresh()
		}
	case listFetched:
		a.list.apply(in)
	case OpenDialog:
		a.dialog.Open(in.AuctionID)
	case dialogFetched:
		a.dialog.applyFetched(in)
	case SubmitBid:
		a.dialog.Submit(in.AuctionID, in.BidderName, in.Amount)
	case bidPlaced:
		a.dialog.applyPlaced(in)
	case CloseDialog:
		a.dialog.Close()
	case Register:
		a.register(in)
	case CreateListing:
		a.createListing(in)
	case writeFinished:
		a.applyWrite(in)
	case CheckStatus:
		a.checkStatus()
	case statusFetched:
		a.applyStatus(in)
	case noticeExpired:
		a.notifier.handleExpired(in)
	}
}

func (a *App) showSection(section Section) {
	a.nav.Show(section)

	switch section {
	case SectionAuctions:
		a.list.Refresh()
	case SectionStatus:
		a.checkStatus()
	}
}

func (a *App) checkStatus() {
	a.display.SetRegion(RegionStatus, view.LoadingFragment)
	a.async(func() {
		status, err := a.api.Status(context.Background())
		a.post(statusFetched{status: status, err: err})
	})
}

func (a *App) applyStatus(in statusFetched) {
	if in.err != nil {
		utils.Error("failed to load server status", map[string]any{"error": in.err.Error()})
		a.notifier.Notify("Failed to load server status", SeverityError)
		a.display.SetRegion(RegionStatus, view.StatusUnavailableMessage)
		return
	}
	a.display.SetRegion(RegionStatus, template.HTMLEscapeString(in.status))
}

func (a *App) register(in Register) {
	a.async(func() {
		result, err := a.api.RegisterUser(context.Background(), in.Username, in.Email, in.IsSeller)
		a.post(writeFinished{op: opRegister, result: result, err: err})
	})
}

func (a *App) createListing(in CreateListing) {
	a.async(func() {
		result, err := a.api.CreateAuction(context.Background(), in.Req)
		a.post(writeFinished{op: opCreate, result: result, err: err})
	})
}

func (a *App) applyWrite(in writeFinished) {
	switch in.op {
	case opRegister:
		if in.err != nil {
			reason := failureReason(in.result, in.err, "Username already exists")
			a.notifier.Notify("Failed to register user: "+reason, SeverityError)
			return
		}
		a.notifier.Notify("User registered successfully!", SeveritySuccess)
	case opCreate:
		if in.err != nil {
			reason := failureReason(in.result, in.err, "auction rejected")
			a.notifier.Notify("Failed to create auction: "+reason, SeverityError)
			return
		}
		a.notifier.Notify("Auction created successfully!", SeveritySuccess)
		a.showSection(SectionAuctions)
	}
}
