// Package stubserver is a faithful in-process stand-in for the remote
// auction service. The real backend is an external collaborator; this one
// implements the same endpoint contracts for demo mode and the integration
// tests, and stays authoritative about bidding rules.
package stubserver

import (
	"fmt"
	"net/http"
	"time"

	"auction-console/internal/models"
	"auction-console/utils"

	"github.com/gin-gonic/gin"
)

type handler struct {
	store *Store
}

// SetupRouter configures all Gin routes for the stub backend.
func SetupRouter(store *Store) *gin.Engine {
	router := gin.New() // no default middleware, logging is ours

	router.Use(gin.Recovery())
	router.Use(requestLogger)

	h := &handler{store: store}

	api := router.Group("/api")
	{
		api.GET("/auctions", h.listAuctions)
		api.POST("/auctions", h.createAuction)
		api.GET("/bids", h.listBids)
		api.POST("/bids", h.placeBid)
		api.POST("/users", h.registerUser)
		api.GET("/status", h.status)
	}

	return router
}

// requestLogger logs incoming requests with timing.
func requestLogger(c *gin.Context) {
	start := time.Now()

	c.Next()

	utils.Info("HTTP Request", map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
	})
}

func (h *handler) listAuctions(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.ListAuctions())
}

type createAuctionForm struct {
	ItemName      string  `form:"itemName" binding:"required"`
	Description   string  `form:"description" binding:"required"`
	SellerName    string  `form:"sellerName" binding:"required"`
	StartingPrice float64 `form:"startingPrice" binding:"required,gt=0"`
	BidIncrement  float64 `form:"bidIncrement" binding:"required,gt=0"`
	Duration      int64   `form:"duration" binding:"required,gt=0"`
}

func (h *handler) createAuction(c *gin.Context) {
	var form createAuctionForm
	if err := c.ShouldBind(&form); err != nil {
		utils.RespondFailure(c, fmt.Errorf("invalid auction fields: %v", err))
		return
	}

	id := h.store.CreateAuction(models.CreateAuctionRequest{
		ItemName:        form.ItemName,
		Description:     form.Description,
		SellerName:      form.SellerName,
		StartingPrice:   form.StartingPrice,
		BidIncrement:    form.BidIncrement,
		DurationMinutes: form.Duration,
	})
	utils.RespondSuccess(c, gin.H{"auctionId": id})
}

type listBidsQuery struct {
	AuctionID int64 `form:"auctionId" binding:"required"`
}

func (h *handler) listBids(c *gin.Context) {
	var query listBidsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.RespondFailure(c, fmt.Errorf("invalid auctionId: %v", err))
		return
	}

	bids, err := h.store.BidsFor(query.AuctionID)
	if err != nil {
		utils.RespondFailure(c, err)
		return
	}
	if bids == nil {
		bids = []models.Bid{}
	}
	c.JSON(http.StatusOK, bids)
}

type placeBidForm struct {
	AuctionID  int64   `form:"auctionId" binding:"required"`
	BidderName string  `form:"bidderName" binding:"required"`
	BidAmount  float64 `form:"bidAmount" binding:"required,gt=0"`
}

func (h *handler) placeBid(c *gin.Context) {
	var form placeBidForm
	if err := c.ShouldBind(&form); err != nil {
		utils.RespondFailure(c, fmt.Errorf("invalid bid fields: %v", err))
		return
	}

	id, err := h.store.PlaceBid(form.AuctionID, form.BidderName, form.BidAmount)
	if err != nil {
		utils.RespondFailure(c, err)
		utils.Warn("bid rejected", map[string]any{
			"auction_id": form.AuctionID,
			"bidder":     form.BidderName,
			"amount":     form.BidAmount,
			"reason":     err.Error(),
		})
		return
	}
	utils.RespondSuccess(c, gin.H{"bidId": id})
}

type registerUserForm struct {
	Username string `form:"username" binding:"required"`
	Email    string `form:"email" binding:"required"`
	IsSeller bool   `form:"isSeller"`
}

func (h *handler) registerUser(c *gin.Context) {
	var form registerUserForm
	if err := c.ShouldBind(&form); err != nil {
		utils.RespondFailure(c, fmt.Errorf("invalid user fields: %v", err))
		return
	}

	if err := h.store.RegisterUser(form.Username, form.Email, form.IsSeller); err != nil {
		utils.RespondFailure(c, err)
		return
	}
	utils.RespondSuccess(c, nil)
}

func (h *handler) status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": h.store.StatusSummary()})
}
