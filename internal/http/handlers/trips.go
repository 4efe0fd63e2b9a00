package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"busbooking/internal/catalog"
	"busbooking/internal/inventory"
)

// SearchTrips lists trips matching the route search, sorted and
// filtered. Responses are cached per query when Redis is up.
func (h *Handlers) SearchTrips(c *gin.Context) {
	crit := catalog.Criteria{
		From:   c.Query("from"),
		To:     c.Query("to"),
		Date:   c.Query("date"),
		SortBy: c.Query("sort"),
		Filter: c.Query("filter"),
	}

	key := fmt.Sprintf("trips:%s:%s:%s:%s:%s", crit.From, crit.To, crit.Date, crit.SortBy, crit.Filter)
	if payload, ok := h.Cache.Get(c.Request.Context(), key); ok {
		c.Data(http.StatusOK, "application/json", payload)
		return
	}

	trips := h.Catalog.Search(crit)
	body := gin.H{"trips": trips, "count": len(trips)}
	if payload, err := json.Marshal(body); err == nil {
		h.Cache.Set(c.Request.Context(), key, payload)
	}
	c.JSON(http.StatusOK, body)
}

func (h *Handlers) GetTrip(c *gin.Context) {
	trip, err := h.Catalog.Get(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, trip)
}

// GetTripSeats returns the trip's seat layout with committed bookings
// applied.
func (h *Handlers) GetTripSeats(c *gin.Context) {
	seats, err := h.Booking.SeatsFor(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	available := 0
	for _, s := range seats {
		if s.IsAvailable {
			available++
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"seats":          seats,
		"total_seats":    len(seats),
		"available":      available,
		"max_selectable": inventory.MaxSelectable,
	})
}

type quoteRequest struct {
	SeatIDs []string `json:"seat_ids"`
}

// QuoteSelection prices a seat selection without committing it.
func (h *Handlers) QuoteSelection(c *gin.Context) {
	var req quoteRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	selection, total, err := h.Booking.Quote(c.Param("id"), req.SeatIDs)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"selection":    selection,
		"total_amount": total,
	})
}
