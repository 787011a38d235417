package receipt

import (
	"bytes"
	"fmt"
	"strings"

	"movie-booking/internal/data/entity"

	"github.com/phpdave11/gofpdf"
)

// RenderPDF produces a one-page booking receipt. The layout is fixed A4
// portrait; the caller decides where the bytes go.
func RenderPDF(data *entity.ReceiptData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 12, "Booking Receipt")
	pdf.Ln(16)

	pdf.SetFont("Arial", "", 11)

	rows := []struct {
		label string
		value string
	}{
		{"Booking ID", data.BookingID.String()},
		{"Name", data.UserName},
		{"Movie", data.MovieTitle},
		{"Theater", data.TheaterName},
		{"Show Time", data.ShowTime.Format("Mon, 02 Jan 2006 15:04")},
		{"Seats", strings.Join(data.SeatNos, ", ")},
		{"Payment Mode", data.PaymentMode},
		{"Total Amount", fmt.Sprintf("%.2f", data.TotalAmount)},
		{"Booked At", data.BookingTime.Format("Mon, 02 Jan 2006 15:04")},
	}

	for _, row := range rows {
		pdf.SetFont("Arial", "B", 11)
		pdf.Cell(50, 8, row.label)
		pdf.SetFont("Arial", "", 11)
		pdf.MultiCell(0, 8, row.value, "", "L", false)
	}

	pdf.Ln(8)
	pdf.SetFont("Arial", "I", 9)
	pdf.Cell(0, 8, "Thank you for booking with us. Keep this receipt for entry.")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render receipt pdf: %w", err)
	}

	return buf.Bytes(), nil
}
