package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"busbooking/internal/domain/models"
	"busbooking/internal/http/middleware"
)

type createBookingRequest struct {
	TripID         string             `json:"trip_id"`
	SeatIDs        []string           `json:"seat_ids"`
	Passengers     []models.Passenger `json:"passengers"`
	IdempotencyKey string             `json:"idempotency_key"`
}

// CreateBooking commits a finalized selection. The payer identity
// comes from the bearer token when present, else the booking is
// recorded against "Guest".
func (h *Handlers) CreateBooking(c *gin.Context) {
	var req createBookingRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	idemKey := req.IdempotencyKey
	if header := c.GetHeader("Idempotency-Key"); header != "" {
		idemKey = header
	}

	booking, err := h.Booking.Commit(req.TripID, req.SeatIDs, req.Passengers, middleware.GetPayer(c), idemKey)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, booking)
}

func (h *Handlers) ListBookings(c *gin.Context) {
	bookings := h.Booking.Ledger.All()
	c.JSON(http.StatusOK, gin.H{"bookings": bookings, "count": len(bookings)})
}

func (h *Handlers) GetBooking(c *gin.Context) {
	booking, err := h.Booking.Ledger.Get(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// BookingSummary serves the dashboard headline numbers.
func (h *Handlers) BookingSummary(c *gin.Context) {
	c.JSON(http.StatusOK, h.Booking.Summarize())
}
