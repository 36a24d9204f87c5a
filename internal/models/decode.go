package models

import (
	"encoding/json"
	"fmt"

	"auction-console/internal/clienterrors"
)

// DecodeAuctions parses and validates an auction collection payload. A
// payload that fails validation is reported as ErrDecode so callers can
// handle it exactly like a transport failure.
func DecodeAuctions(data []byte) ([]Auction, error) {
	var auctions []Auction
	if err := json.Unmarshal(data, &auctions); err != nil {
		return nil, fmt.Errorf("%w: auction list: %v", clienterrors.ErrDecode, err)
	}

	for _, a := range auctions {
		if err := validateAuction(a); err != nil {
			return nil, err
		}
	}
	return auctions, nil
}

func validateAuction(a Auction) error {
	if a.AuctionID <= 0 {
		return fmt.Errorf("%w: auction with non-positive id %d", clienterrors.ErrDecode, a.AuctionID)
	}
	if a.StartingPrice < 0 || a.BidIncrement < 0 || a.CurrentHighestBid < 0 {
		return fmt.Errorf("%w: auction %d has a negative monetary amount", clienterrors.ErrDecode, a.AuctionID)
	}
	if a.TotalBids < 0 {
		return fmt.Errorf("%w: auction %d has negative bid count", clienterrors.ErrDecode, a.AuctionID)
	}
	return nil
}

// DecodeBids parses and validates a bid history payload.
func DecodeBids(data []byte) ([]Bid, error) {
	var bids []Bid
	if err := json.Unmarshal(data, &bids); err != nil {
		return nil, fmt.Errorf("%w: bid list: %v", clienterrors.ErrDecode, err)
	}

	for _, b := range bids {
		if b.AuctionID <= 0 {
			return nil, fmt.Errorf("%w: bid %d with non-positive auction id", clienterrors.ErrDecode, b.BidID)
		}
		if b.Amount < 0 {
			return nil, fmt.Errorf("%w: bid %d has negative amount", clienterrors.ErrDecode, b.BidID)
		}
	}
	return bids, nil
}

// DecodeWriteResult parses the {success, error} envelope shared by all write
// endpoints.
func DecodeWriteResult(data []byte) (WriteResult, error) {
	var res WriteResult
	if err := json.Unmarshal(data, &res); err != nil {
		return WriteResult{}, fmt.Errorf("%w: write envelope: %v", clienterrors.ErrDecode, err)
	}
	return res, nil
}

// DecodeStatus parses the status endpoint payload.
func DecodeStatus(data []byte) (ServerStatus, error) {
	var st ServerStatus
	if err := json.Unmarshal(data, &st); err != nil {
		return ServerStatus{}, fmt.Errorf("%w: status: %v", clienterrors.ErrDecode, err)
	}
	if st.Status == "" {
		return ServerStatus{}, fmt.Errorf("%w: status payload missing status field", clienterrors.ErrDecode)
	}
	return st, nil
}
