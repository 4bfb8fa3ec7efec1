package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cast"
	"github.com/talkincode/tillpos/internal/catalog"
	"github.com/talkincode/tillpos/internal/domain"
	"github.com/talkincode/tillpos/internal/ledger"
	"github.com/talkincode/tillpos/internal/receipt"
	"github.com/talkincode/tillpos/internal/register"
	"go.uber.org/zap"
)

// Menu is the interactive operator loop. It reads choices, delegates to the
// register and the repositories, and prints results; it holds no business
// logic of its own. Invalid input re-prompts and never ends the process.
type Menu struct {
	in       *bufio.Scanner
	out      io.Writer
	catalog  *catalog.Repository
	ledger   *ledger.Repository
	register *register.Service
	receipts *receipt.Generator
}

// NewMenu creates a menu loop over the given input and output streams.
func NewMenu(in io.Reader, out io.Writer,
	cat *catalog.Repository, led *ledger.Repository,
	reg *register.Service, gen *receipt.Generator) *Menu {
	return &Menu{
		in:       bufio.NewScanner(in),
		out:      out,
		catalog:  cat,
		ledger:   led,
		register: reg,
		receipts: gen,
	}
}

// Run drives the menu until the operator exits or input ends.
func (m *Menu) Run(ctx context.Context) error {
	for {
		m.println("")
		m.println("---- Till Register ----")
		m.println("1. List products")
		m.println("2. Sell products")
		m.println("3. Show sales history")
		m.println("4. Return product")
		m.println("5. Exit")
		choice, ok := m.prompt("Choose an option: ")
		if !ok {
			return nil
		}
		switch choice {
		case "1":
			if err := m.listProducts(ctx); err != nil {
				return err
			}
		case "2":
			if err := m.sell(ctx); err != nil {
				return err
			}
		case "3":
			if err := m.showHistory(ctx); err != nil {
				return err
			}
		case "4":
			if err := m.returnProduct(ctx); err != nil {
				return err
			}
		case "5":
			return nil
		default:
			m.println("Invalid option.")
		}
	}
}

func (m *Menu) listProducts(ctx context.Context) error {
	products, err := m.catalog.List(ctx)
	if err != nil {
		return err
	}
	for _, p := range products {
		m.printf("ID: %d, Name: %s, Price: %s, Stock: %d\n",
			p.ID, p.Name, domain.FormatCOP(p.Price), p.Stock)
	}
	return nil
}

func (m *Menu) sell(ctx context.Context) error {
	if err := m.listProducts(ctx); err != nil {
		return err
	}
	m.println("Enter products (leave the ID blank to finish):")
	var lines []register.SaleLine
	for {
		idText, ok := m.prompt("Product ID: ")
		if !ok || idText == "" {
			break
		}
		productID, err := cast.ToInt64E(idText)
		if err != nil {
			m.println("Please enter a valid product ID.")
			continue
		}
		qtyText, ok := m.prompt("Quantity to sell: ")
		if !ok {
			break
		}
		quantity, err := cast.ToIntE(qtyText)
		if err != nil {
			m.println("Please enter a valid number for the quantity.")
			continue
		}
		if quantity <= 0 {
			m.println("Quantity must be greater than zero.")
			continue
		}
		lines = append(lines, register.SaleLine{ProductID: productID, Quantity: quantity})
	}
	if len(lines) == 0 {
		m.println("No products entered for sale.")
		return nil
	}

	result, err := m.register.Sale(ctx, lines)
	if err != nil {
		return err
	}
	for _, skipped := range result.Skipped {
		if errors.Is(skipped.Err, domain.ErrInvalidQuantity) {
			m.printf("Product ID '%d': quantity must be greater than zero.\n", skipped.ProductID)
			continue
		}
		m.printf("Product ID '%d' not found or insufficient stock.\n", skipped.ProductID)
	}
	m.printf("Purchase completed. Total: %s\n", domain.FormatCOP(result.Total))

	// The sale is already committed; a receipt failure is reported, not
	// rolled back.
	if err := m.receipts.Write(result.Lines, result.Total, result.IssuedAt); err != nil {
		zap.L().Error("receipt generation failed", zap.Error(err))
		m.printf("Could not generate receipt: %v\n", err)
		return nil
	}
	m.printf("Receipt generated: %s\n", m.receipts.Path())
	return nil
}

func (m *Menu) showHistory(ctx context.Context) error {
	entries, err := m.ledger.All(ctx)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		m.println("No sales recorded.")
		return nil
	}
	m.println("Sales history:")
	for _, e := range entries {
		m.printf("Product: %s, Quantity: %d, Total: %s\n",
			e.ProductName, e.Quantity, domain.FormatCOP(e.Total))
	}
	return nil
}

func (m *Menu) returnProduct(ctx context.Context) error {
	if err := m.listProducts(ctx); err != nil {
		return err
	}
	idText, ok := m.prompt("ID of the product to return: ")
	if !ok {
		return nil
	}
	productID, err := cast.ToInt64E(idText)
	if err != nil {
		m.println("Please enter a valid product ID.")
		return nil
	}
	qtyText, ok := m.prompt("Quantity to return: ")
	if !ok {
		return nil
	}
	quantity, err := cast.ToIntE(qtyText)
	if err != nil {
		m.println("Please enter a valid number for the quantity.")
		return nil
	}
	if quantity <= 0 {
		m.println("Quantity must be greater than zero.")
		return nil
	}

	result, err := m.register.Return(ctx, productID, quantity)
	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		m.println("Product not found.")
		return nil
	case errors.Is(err, domain.ErrInsufficientHistory):
		m.println("Not enough recorded sales to return.")
		return nil
	case err != nil:
		return err
	}
	m.printf("Returned %d units of product ID '%d'.\n", result.Quantity, result.ProductID)
	return nil
}

// prompt prints a label and reads one trimmed input line. The second return
// value is false once input is exhausted.
func (m *Menu) prompt(label string) (string, bool) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

func (m *Menu) println(text string) {
	fmt.Fprintln(m.out, text)
}

func (m *Menu) printf(format string, args ...interface{}) {
	fmt.Fprintf(m.out, format, args...)
}
