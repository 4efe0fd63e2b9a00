package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"busbooking/internal/http/middleware"
)

func (h *Handlers) GetBookingETicketPDF(c *gin.Context) {
	docs := h.Docs
	docs.RequestID = middleware.GetRequestID(c)

	pdf, filename, err := docs.GenerateETicket(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	servePDF(c, pdf, filename)
}

func (h *Handlers) GetBookingReceiptPDF(c *gin.Context) {
	docs := h.Docs
	docs.RequestID = middleware.GetRequestID(c)

	pdf, filename, err := docs.GenerateReceipt(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	servePDF(c, pdf, filename)
}

func servePDF(c *gin.Context, pdf []byte, filename string) {
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
