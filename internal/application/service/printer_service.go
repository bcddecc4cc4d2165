package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/dillkhus/cafe-pos/internal/config"
	"github.com/dillkhus/cafe-pos/internal/domain/entity"
	"github.com/dillkhus/cafe-pos/pkg/printer"
)

// PrinterService formats bills as thermal receipts and sends them to the
// counter printer.
type PrinterService struct {
	printer     printer.Printer
	sessions    *SessionService
	cafe        config.CafeConfig
	printerType string
	width       int
}

// NewPrinterService creates a new printer service
func NewPrinterService(p printer.Printer, sessions *SessionService, cafe config.CafeConfig, printerType string, width int) *PrinterService {
	return &PrinterService{
		printer:     p,
		sessions:    sessions,
		cafe:        cafe,
		printerType: printerType,
		width:       width,
	}
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetStatus returns printer connection status.
func (s *PrinterService) GetStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

// TestPrint sends a short test receipt to the printer.
func (s *PrinterService) TestPrint() error {
	doc := printer.NewDocument(s.width)
	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		Text("PRINTER TEST").
		SetBold(false).
		Text(s.cafe.Name).
		FeedLines(3).
		PartialCut()

	if err := s.printer.Print(doc.Bytes()); err != nil {
		return fmt.Errorf("test print failed: %w", err)
	}
	return nil
}

// PrintBillReceipt prints the finalized bill of a session as a thermal
// receipt. The formatted bill is returned either way so the handler can
// respond with it when no printer is attached.
func (s *PrinterService) PrintBillReceipt(ctx context.Context, sessionID uuid.UUID) (*entity.Bill, error) {
	bill, err := s.sessions.Bill(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	data := s.FormatBillReceipt(bill)
	if err := s.printer.Print(data); err != nil {
		log.Printf("Printer error (bill %s): %v", bill.BillNo, err)
		return bill, fmt.Errorf("failed to print receipt: %w", err)
	}
	return bill, nil
}

// FormatBillReceipt converts a bill into ESC/POS bytes.
func (s *PrinterService) FormatBillReceipt(bill *entity.Bill) []byte {
	doc := printer.NewDocument(s.width)

	// Header
	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(s.cafe.Name).
		SetFontSize(printer.FontNormal).
		SetBold(false)
	if s.cafe.Address != "" {
		doc.Text(s.cafe.Address)
	}
	if s.cafe.Phone != "" {
		doc.Text(s.cafe.Phone)
	}

	doc.SetAlign(printer.AlignLeft).
		Separator('-')

	// Visit info
	doc.KeyValue("Bill:", bill.BillNo).
		KeyValue("Customer:", bill.CustomerName).
		KeyValue("Phone:", bill.Phone).
		KeyValue("Visit:", bill.Window.String()).
		KeyValue("Date:", bill.Date).
		KeyValue("Time:", bill.BillTime)

	doc.Separator('-')

	// Items
	for _, item := range bill.Items {
		doc.ItemLine(item.Quantity, item.Name, fmt.Sprintf("%.2f", item.LineTotal))
		if item.Quantity > 1 {
			doc.TextF("  @ %.2f each", item.UnitPrice)
		}
	}

	doc.Separator('-')

	// Totals
	doc.KeyValue("Subtotal:", fmt.Sprintf("%.2f", bill.Subtotal))
	if bill.DiscountAmount > 0 {
		doc.KeyValue(fmt.Sprintf("Discount (%.0f%%):", bill.DiscountRate*100), fmt.Sprintf("-%.2f", bill.DiscountAmount))
		doc.KeyValue("Net:", fmt.Sprintf("%.2f", bill.NetSubtotal))
	}
	doc.KeyValue("GST (18%):", fmt.Sprintf("%.2f", bill.Tax))
	doc.SetBold(true).
		KeyValue("TOTAL:", fmt.Sprintf("%.2f", bill.Total)).
		SetBold(false)

	doc.Separator('-')

	// Footer
	doc.SetAlign(printer.AlignCenter).
		LineFeed().
		Text("Thank you for visiting!").
		LineFeed().
		SetAlign(printer.AlignLeft)

	doc.FeedLines(3).
		PartialCut()

	return doc.Bytes()
}
