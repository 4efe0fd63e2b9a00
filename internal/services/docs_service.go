package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"

	"busbooking/internal/catalog"
	"busbooking/internal/domain/models"
	"busbooking/internal/ledger"
	"busbooking/internal/utils"
)

// DocsService renders e-tickets and receipts for committed bookings.
type DocsService struct {
	Ledger    *ledger.Ledger
	Catalog   *catalog.Catalog
	RequestID string
	Loader    func(string) (bookingDocData, error)
}

type bookingDocData struct {
	BookingID     string
	PNR           string
	Operator      string
	RouteFrom     string
	RouteTo       string
	DepartureTime string
	BookingDate   time.Time
	SeatNumbers   []string
	Passengers    []models.Passenger
	TotalAmount   int64
	Status        string
	PayerIdentity string
}

func (s DocsService) GenerateETicket(bookingID string) ([]byte, string, error) {
	data, err := s.loadBookingDocData(bookingID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_eticket", "booking_id="+bookingID)
	return buildETicketPDF(data)
}

func (s DocsService) GenerateReceipt(bookingID string) ([]byte, string, error) {
	data, err := s.loadBookingDocData(bookingID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_receipt", "booking_id="+bookingID)
	return buildReceiptPDF(data)
}

func (s DocsService) loadBookingDocData(bookingID string) (bookingDocData, error) {
	if s.Loader != nil {
		return s.Loader(bookingID)
	}
	var out bookingDocData
	booking, err := s.Ledger.Get(bookingID)
	if err != nil {
		return out, err
	}
	out.BookingID = booking.ID
	out.PNR = booking.PNR
	out.BookingDate = booking.BookingDate
	out.Passengers = booking.Passengers
	out.TotalAmount = booking.TotalAmount
	out.Status = string(booking.Status)
	out.PayerIdentity = booking.PayerIdentity
	for _, seat := range booking.SelectedSeats {
		out.SeatNumbers = append(out.SeatNumbers, seat.Number)
	}
	if trip, err := s.Catalog.Get(booking.TripID); err == nil {
		out.Operator = trip.Operator
		out.RouteFrom = trip.From
		out.RouteTo = trip.To
		out.DepartureTime = trip.DepartureTime
	}
	return out, nil
}

func buildETicketPDF(d bookingDocData) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("E-Ticket", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "E-TICKET")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("PNR            : %s", safe(d.PNR, "-")),
		fmt.Sprintf("Operator       : %s", safe(d.Operator, "-")),
		fmt.Sprintf("Route          : %s -> %s", safe(d.RouteFrom, "-"), safe(d.RouteTo, "-")),
		fmt.Sprintf("Departure      : %s", safe(d.DepartureTime, "-")),
		fmt.Sprintf("Seats          : %s", safe(strings.Join(d.SeatNumbers, ", "), "-")),
		fmt.Sprintf("Booked On      : %s", d.BookingDate.Format("2006-01-02 15:04")),
		fmt.Sprintf("Status         : %s", safe(d.Status, "-")),
		fmt.Sprintf("Booking Ref    : %s", safe(d.BookingID, "-")),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Passengers")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	for i, p := range d.Passengers {
		pdf.Cell(0, 6, fmt.Sprintf("%d) %s (%d, %s) - seat %s", i+1, safe(p.Name, "-"), p.Age, safe(p.Gender, "-"), safe(p.SeatNumber, "-")))
		pdf.Ln(6)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Please carry a valid ID and show this ticket at boarding.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("ETICKET_%s.pdf", safeFilenamePart(d.PNR))
	return buf.Bytes(), filename, nil
}

func buildReceiptPDF(d bookingDocData) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Receipt", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "RECEIPT")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Receipt No  : RCP-"+safeFilenamePart(d.PNR))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Date        : "+d.BookingDate.Format("2006-01-02 15:04"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Billed to:")
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, safe(d.PayerIdentity, "Guest"))
	pdf.Ln(10)

	desc := fmt.Sprintf("Bus ticket %s -> %s (%s, dep %s), seats %s",
		safe(d.RouteFrom, "-"), safe(d.RouteTo, "-"),
		safe(d.Operator, "-"), safe(d.DepartureTime, "-"),
		safe(strings.Join(d.SeatNumbers, ", "), "-"),
	)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Details:")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, "1) "+desc, "", "", false)
	pdf.Ln(2)
	pdf.Cell(0, 6, fmt.Sprintf("Seats booked: %d", len(d.SeatNumbers)))
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Total: "+utils.FormatRupee(d.TotalAmount))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, fmt.Sprintf("Booking %s, status %s.", safe(d.BookingID, "-"), safe(d.Status, "-")), "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("RECEIPT_%s.pdf", safeFilenamePart(d.PNR))
	return buf.Bytes(), filename, nil
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}
