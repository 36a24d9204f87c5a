package app

// Region names an addressable area of the rendered view.
type Region string

const (
	RegionAuctionList    Region = "auctions-list"
	RegionAuctionDetails Region = "auction-details"
	RegionBidHistory     Region = "bids-list"
	RegionBidForm        Region = "bid-form"
	RegionStatus         Region = "server-status"
	RegionNotice         Region = "toast"
)

// Display is the sink for rendered fragments. The dispatcher goroutine is
// the only caller, so implementations need no locking of their own.
type Display interface {
	SetRegion(region Region, fragment string)
	ClearRegion(region Region)
	ShowSection(section Section)
	ShowDialog()
	HideDialog()
}
