package handlers

import (
	"net/http"

	"riadsiena/models"
	"riadsiena/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler accepts booking submissions from the website forms.
type BookingHandler struct {
	Dispatcher *booking.Dispatcher
	Property   string
	Logger     *zap.Logger
}

func NewBookingHandler(dispatcher *booking.Dispatcher, property string, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Dispatcher: dispatcher, Property: property, Logger: logger}
}

// CreateBooking normalizes the raw payload and dispatches it to the
// persistence, webhook and email sinks. The response stays binary: the
// caller gets a bookingId on success and an opaque error otherwise.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var input models.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.Logger.Error("booking: malformed request body", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.BookingResponse{
			Success: false,
			Error:   "Server error",
		})
		return
	}

	b := booking.Resolve(input, h.Property)

	if err := h.Dispatcher.Dispatch(c.Request.Context(), &b); err != nil {
		h.Logger.Error("booking: dispatch failed",
			zap.String("bookingId", b.BookingID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.BookingResponse{
			Success: false,
			Error:   "Server error",
		})
		return
	}

	c.JSON(http.StatusOK, models.BookingResponse{
		Success:   true,
		BookingID: b.BookingID,
	})
}
