package bookings

import (
	"errors"
	"net/http"

	"bookly/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// BookSeat handles POST /api/v1/bookings/book
func (c *Controller) BookSeat(ctx *gin.Context) {
	var req BookingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid user ID", nil, err.Error())
		return
	}
	eventID, err := uuid.Parse(req.EventID)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid event ID", nil, err.Error())
		return
	}

	booking, err := c.service.BookSeat(ctx.Request.Context(), userID, eventID, req.SeatNumber)
	if err != nil {
		status, message := mapDomainError(err)
		response.RespondJSON(ctx, "error", status, message, nil, err.Error())
		return
	}

	resp := booking.ToResponse()
	resp.SeatNumber = req.SeatNumber
	response.RespondJSON(ctx, "success", http.StatusCreated, "Seat booked successfully", resp, nil)
}

// CancelBooking handles POST /api/v1/bookings/cancel/:bookingId
func (c *Controller) CancelBooking(ctx *gin.Context) {
	bookingID, err := uuid.Parse(ctx.Param("bookingId"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid booking ID", nil, err.Error())
		return
	}

	if err := c.service.CancelBooking(ctx.Request.Context(), bookingID); err != nil {
		status, message := mapDomainError(err)
		response.RespondJSON(ctx, "error", status, message, nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Booking cancelled successfully", nil, nil)
}

// GetUserBookings handles GET /api/v1/bookings/user/:userId
func (c *Controller) GetUserBookings(ctx *gin.Context) {
	userID, err := uuid.Parse(ctx.Param("userId"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid user ID", nil, err.Error())
		return
	}

	bookings, err := c.service.GetUserBookings(ctx.Request.Context(), userID)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get user bookings", nil, err.Error())
		return
	}

	result := make([]BookingResponse, 0, len(bookings))
	for i := range bookings {
		result = append(result, bookings[i].ToResponse())
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Bookings retrieved successfully", gin.H{
		"bookings": result,
		"count":    len(result),
	}, nil)
}

// mapDomainError translates booking domain errors to HTTP status codes
func mapDomainError(err error) (int, string) {
	switch {
	case errors.Is(err, ErrEventNotFound):
		return http.StatusNotFound, "Event not found"
	case errors.Is(err, ErrSeatNotFound):
		return http.StatusNotFound, "Seat not found"
	case errors.Is(err, ErrBookingNotFound):
		return http.StatusNotFound, "Booking not found"
	case errors.Is(err, ErrSeatAlreadyBooked):
		return http.StatusConflict, "Seat is already booked"
	case errors.Is(err, ErrDuplicateBooking):
		return http.StatusConflict, "An active booking already exists for this seat"
	case errors.Is(err, ErrNoCapacity):
		return http.StatusBadRequest, "Event has no seat capacity"
	default:
		return http.StatusInternalServerError, "Failed to process booking"
	}
}
