package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/platemate/platemate-api/internal/domain/entity"
	"github.com/platemate/platemate-api/internal/domain/repository"
	"github.com/platemate/platemate-api/pkg/apperror"
	"github.com/platemate/platemate-api/pkg/printer"
)

// PrinterService handles receipt formatting and thermal printing.
type PrinterService struct {
	printer     printer.Printer
	orderRepo   repository.OrderRepository
	branchRepo  repository.BranchRepository
	printerType string
}

// NewPrinterService creates a new printer service.
func NewPrinterService(
	p printer.Printer,
	orderRepo repository.OrderRepository,
	branchRepo repository.BranchRepository,
	printerType string,
) *PrinterService {
	return &PrinterService{
		printer:     p,
		orderRepo:   orderRepo,
		branchRepo:  branchRepo,
		printerType: printerType,
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

// TestPrint sends a test page to the printer.
// Returns the receipt data so the handler can return it as JSON when printer is disabled.
func (s *PrinterService) TestPrint() (*entity.Receipt, error) {
	receipt := &entity.Receipt{
		Header: entity.ReceiptHeader{
			BranchName: "PRINTER TEST",
			Address:    "Test Address",
			Phone:      "+1 000 000 0000",
		},
		OrderNumber: "TEST-001",
		Date:        "Test Date",
		Currency:    "USD",
		Items: []entity.ReceiptItem{
			{Name: "Test Item 1", Quantity: 1, UnitPrice: 10.00, Total: 10.00},
			{Name: "Test Item 2", Quantity: 2, UnitPrice: 5.00, Total: 10.00},
		},
		SubTotal: 20.00,
		Total:    20.00,
	}

	data := FormatReceipt(receipt)
	if err := s.printer.Print(data); err != nil {
		return receipt, fmt.Errorf("test print failed: %w", err)
	}

	return receipt, nil
}

// PrintOrderReceipt fetches an order (with lines) and prints its receipt.
func (s *PrinterService) PrintOrderReceipt(ctx context.Context, orderID uuid.UUID) (*entity.Receipt, error) {
	order, err := s.orderRepo.GetWithLines(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}

	receipt := &entity.Receipt{
		OrderNumber:    order.OrderNumber,
		OrderType:      order.OrderType.String(),
		Date:           order.OrderDate.Format("2006-01-02 15:04"),
		Currency:       order.Currency,
		SubTotal:       order.SubTotal,
		Discount:       order.DiscountAmount,
		Tax:            order.TaxAmount,
		ServiceCharges: order.ServiceCharges,
		Tip:            order.TipAmount,
		Total:          order.TotalAmount,
	}

	if order.CustomerName != nil {
		receipt.Customer = *order.CustomerName
	}

	branch, err := s.branchRepo.GetByID(ctx, order.BranchID)
	if err == nil && branch != nil {
		receipt.Header.BranchName = branch.Name
		if branch.Address != nil {
			receipt.Header.Address = *branch.Address
		}
		if branch.Phone != nil {
			receipt.Header.Phone = *branch.Phone
		}
	}

	for _, line := range order.Lines {
		item := entity.ReceiptItem{
			Name:      line.Name,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
			Total:     line.Total,
		}
		for _, m := range line.Modifiers {
			item.Extras = append(item.Extras, fmt.Sprintf("+ %dx %s", m.Quantity, m.Name))
		}
		for _, c := range line.Customizations {
			item.Extras = append(item.Extras, fmt.Sprintf("+ %s: %s", c.Name, c.Option))
		}
		receipt.Items = append(receipt.Items, item)
	}

	data := FormatReceipt(receipt)
	if err := s.printer.Print(data); err != nil {
		log.Printf("Printer error (order %s): %v", orderID, err)
		return receipt, fmt.Errorf("failed to print receipt: %w", err)
	}

	return receipt, nil
}

// FormatReceipt converts a Receipt into ESC/POS bytes.
func FormatReceipt(r *entity.Receipt) []byte {
	doc := printer.NewDocument(32) // 58mm paper = 32 chars

	// Header
	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(r.Header.BranchName).
		SetFontSize(printer.FontNormal).
		SetBold(false)

	if r.Header.Address != "" {
		doc.Text(r.Header.Address)
	}
	if r.Header.Phone != "" {
		doc.Text(r.Header.Phone)
	}

	doc.SetAlign(printer.AlignLeft).
		Separator('-')

	// Order info
	doc.KeyValue("Order:", r.OrderNumber).
		KeyValue("Date:", r.Date)

	if r.OrderType != "" {
		doc.KeyValue("Type:", r.OrderType)
	}
	if r.Customer != "" {
		doc.KeyValue("Customer:", r.Customer)
	}

	doc.Separator('-')

	// Items
	for _, item := range r.Items {
		doc.ItemLine(item.Quantity, item.Name, fmt.Sprintf("%.2f", item.Total))
		if item.Quantity > 1 {
			doc.TextF("  @ %.2f each", item.UnitPrice)
		}
		for _, extra := range item.Extras {
			doc.TextF("  %s", extra)
		}
	}

	doc.Separator('-')

	// Totals
	doc.KeyValue("Subtotal:", fmt.Sprintf("%.2f", r.SubTotal))
	if r.Discount > 0 {
		doc.KeyValue("Discount:", fmt.Sprintf("-%.2f", r.Discount))
	}
	if r.Tax > 0 {
		doc.KeyValue("Tax:", fmt.Sprintf("%.2f", r.Tax))
	}
	if r.ServiceCharges > 0 {
		doc.KeyValue("Service:", fmt.Sprintf("%.2f", r.ServiceCharges))
	}
	if r.Tip > 0 {
		doc.KeyValue("Tip:", fmt.Sprintf("%.2f", r.Tip))
	}
	doc.SetBold(true).
		KeyValue("TOTAL:", fmt.Sprintf("%.2f", r.Total)).
		SetBold(false)

	doc.Separator('-')

	// Footer
	doc.SetAlign(printer.AlignCenter).
		LineFeed().
		Text("Thank you, come again!").
		LineFeed().
		SetAlign(printer.AlignLeft)

	doc.FeedLines(3).
		PartialCut()

	return doc.Bytes()
}
