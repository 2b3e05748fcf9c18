package service

import (
	"context"
	"fmt"

	"github.com/sangkips/lanchonete-pos/internal/domain/entity"
	"github.com/sangkips/lanchonete-pos/pkg/format"
	"github.com/sangkips/lanchonete-pos/pkg/printer"
	"github.com/sirupsen/logrus"
)

// PrinterService handles receipt formatting and thermal printing.
type PrinterService struct {
	printer     printer.Printer
	sales       *SaleService
	printerType string
	header      entity.ReceiptHeader
	width       int
	format      *format.Formatter
	log         *logrus.Logger
}

// PrinterOptions describes the configured printer and receipt layout.
type PrinterOptions struct {
	Type      string
	StoreName string
	Width     int
	Locale    string
}

// NewPrinterService creates a new printer service.
func NewPrinterService(p printer.Printer, sales *SaleService, opts PrinterOptions, log *logrus.Logger) *PrinterService {
	return &PrinterService{
		printer:     p,
		sales:       sales,
		printerType: opts.Type,
		header:      entity.ReceiptHeader{StoreName: opts.StoreName},
		width:       opts.Width,
		format:      format.New(opts.Locale),
		log:         log,
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

// PrintOrderReceipt prints the receipt of one order. The receipt is returned
// even when printing fails so the caller can still show it.
func (s *PrinterService) PrintOrderReceipt(ctx context.Context, orderKey string) (*entity.Receipt, error) {
	sales, err := s.sales.ListOrder(ctx, orderKey)
	if err != nil {
		return nil, err
	}

	receipt := entity.NewReceipt(s.header, orderKey, sales)
	data := FormatReceipt(receipt, s.width, s.format)
	if err := s.printer.Print(data); err != nil {
		s.log.WithError(err).WithField("pedido_id", orderKey).Warn("Printer error")
		return receipt, fmt.Errorf("failed to print receipt: %w", err)
	}

	return receipt, nil
}

// FormatReceipt converts a Receipt into ESC/POS bytes.
func FormatReceipt(r *entity.Receipt, width int, f *format.Formatter) []byte {
	doc := printer.NewDocument(width)

	// Header
	doc.Align(printer.AlignCenter).
		Bold(true).
		Size(printer.FontDouble).
		Text(r.Header.StoreName).
		Size(printer.FontNormal).
		Bold(false).
		Align(printer.AlignLeft).
		Rule('-')

	doc.Columns("Pedido:", r.OrderID).
		Columns("Data:", format.Date(r.Date)).
		Rule('-')

	// Items
	for _, item := range r.Items {
		doc.Item(item.Quantity, item.Name, f.Money(item.Total))
		if item.Quantity > 1 {
			doc.Textf("  %s cada", f.Currency(item.UnitPrice))
		}
	}

	doc.Rule('-').
		Bold(true).
		Columns("TOTAL:", f.Currency(r.Total)).
		Bold(false).
		Rule('-')

	// Footer
	doc.Align(printer.AlignCenter).
		Feed(1).
		Text("Obrigado pela preferência!").
		Align(printer.AlignLeft).
		Cut()

	return doc.Bytes()
}
