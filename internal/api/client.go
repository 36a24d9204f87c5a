package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"auction-console/internal/clienterrors"
	"auction-console/internal/models"
	"auction-console/utils"
)

// AuctionAPI is the consumed contract of the remote auction service. The
// backend is authoritative; everything the client checks before calling is
// advisory only.
type AuctionAPI interface {
	ListAuctions(ctx context.Context) ([]models.Auction, error)
	ListBids(ctx context.Context, auctionID int64) ([]models.Bid, error)
	PlaceBid(ctx context.Context, auctionID int64, bidderName string, amount float64) (models.WriteResult, error)
	CreateAuction(ctx context.Context, req models.CreateAuctionRequest) (models.WriteResult, error)
	RegisterUser(ctx context.Context, username, email string, isSeller bool) (models.WriteResult, error)
	Status(ctx context.Context) (string, error)
}

// Client talks to the auction service over HTTP. Reads decode with
// validation, writes are form-encoded and branch on the {success, error}
// envelope rather than on the transport status alone.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates an API client for the service at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// ListAuctions reads the full auction collection.
func (c *Client) ListAuctions(ctx context.Context) ([]models.Auction, error) {
	body, err := c.get(ctx, "/api/auctions", nil)
	if err != nil {
		return nil, fmt.Errorf("api: list auctions: %w", err)
	}
	return models.DecodeAuctions(body)
}

// ListBids reads the bid history of one auction.
func (c *Client) ListBids(ctx context.Context, auctionID int64) ([]models.Bid, error) {
	query := url.Values{"auctionId": {strconv.FormatInt(auctionID, 10)}}
	body, err := c.get(ctx, "/api/bids", query)
	if err != nil {
		return nil, fmt.Errorf("api: list bids for auction %d: %w", auctionID, err)
	}
	return models.DecodeBids(body)
}

// PlaceBid proposes a bid. A rejection by the backend comes back as
// ErrRejected carrying the verbatim reason.
func (c *Client) PlaceBid(ctx context.Context, auctionID int64, bidderName string, amount float64) (models.WriteResult, error) {
	form := url.Values{
		"auctionId":  {strconv.FormatInt(auctionID, 10)},
		"bidderName": {bidderName},
		"bidAmount":  {strconv.FormatFloat(amount, 'f', 2, 64)},
	}
	return c.postForm(ctx, "/api/bids", form)
}

// CreateAuction submits a new listing.
func (c *Client) CreateAuction(ctx context.Context, req models.CreateAuctionRequest) (models.WriteResult, error) {
	form := url.Values{
		"itemName":      {req.ItemName},
		"description":   {req.Description},
		"sellerName":    {req.SellerName},
		"startingPrice": {strconv.FormatFloat(req.StartingPrice, 'f', 2, 64)},
		"bidIncrement":  {strconv.FormatFloat(req.BidIncrement, 'f', 2, 64)},
		"duration":      {strconv.FormatInt(req.DurationMinutes, 10)},
	}
	return c.postForm(ctx, "/api/auctions", form)
}

// RegisterUser registers a participant.
func (c *Client) RegisterUser(ctx context.Context, username, email string, isSeller bool) (models.WriteResult, error) {
	form := url.Values{
		"username": {username},
		"email":    {email},
		"isSeller": {strconv.FormatBool(isSeller)},
	}
	return c.postForm(ctx, "/api/users", form)
}

// Status reads the backend health summary.
func (c *Client) Status(ctx context.Context) (string, error) {
	body, err := c.get(ctx, "/api/status", nil)
	if err != nil {
		return "", fmt.Errorf("api: status: %w", err)
	}
	st, err := models.DecodeStatus(body)
	if err != nil {
		return "", err
	}
	return st.Status, nil
}

// get performs a read and returns the raw body for decoding.
func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", clienterrors.ErrTransport, err)
	}
	return c.do(req)
}

// postForm performs a form-encoded write and decodes the shared envelope.
// A {success: false} envelope is mapped to ErrRejected with the backend's
// reason preserved verbatim.
func (c *Client) postForm(ctx context.Context, path string, form url.Values) (models.WriteResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return models.WriteResult{}, fmt.Errorf("%w: %v", clienterrors.ErrTransport, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	body, err := c.do(req)
	if err != nil {
		return models.WriteResult{}, fmt.Errorf("api: post %s: %w", path, err)
	}

	res, err := models.DecodeWriteResult(body)
	if err != nil {
		return models.WriteResult{}, err
	}
	if !res.Success {
		if res.Error == "" {
			return res, clienterrors.ErrRejected
		}
		return res, fmt.Errorf("%w: %s", clienterrors.ErrRejected, res.Error)
	}
	return res, nil
}

// do executes the request and reads the body. Network errors and non-2xx
// statuses both surface as ErrTransport.
func (c *Client) do(req *http.Request) ([]byte, error) {
	requestID := utils.GenerateID()
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		utils.Warn("request failed", map[string]any{
			"request_id": requestID,
			"method":     req.Method,
			"url":        req.URL.String(),
			"error":      err.Error(),
		})
		return nil, fmt.Errorf("%w: %v", clienterrors.ErrTransport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", clienterrors.ErrTransport, err)
	}

	utils.Info("request completed", map[string]any{
		"request_id": requestID,
		"method":     req.Method,
		"url":        req.URL.String(),
		"status":     resp.StatusCode,
		"latency":    time.Since(start).String(),
	})

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: unexpected status %d", clienterrors.ErrTransport, resp.StatusCode)
	}
	return body, nil
}
