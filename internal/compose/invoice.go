package compose

import (
	"strconv"
	"strings"

	"github.com/verolabs/docforge/internal/block"
	"github.com/verolabs/docforge/internal/record"
)

// Invoice builds the invoice block sequence: title, info table, items table,
// totals table, optional notes and payment instructions. The caller is
// responsible for rejecting records without items before building.
func Invoice(inv record.Invoice) []block.Block {
	inv = record.ResolveInvoice(inv)
	var blocks []block.Block

	blocks = append(blocks,
		block.NewCentered(block.Run{Text: "INVOICE", Bold: true, Size: 24, Color: accentColor}),
		block.NewSpacer(spacerHeight),
	)

	// 2x2 info grid: From | invoice details, Bill To | blank.
	info := [][]block.Cell{
		{
			{Text: partyLines("FROM:", inv.FromInfo, true)},
			{Text: strings.Join([]string{
				"Invoice #: " + inv.InvoiceNumber,
				"Date: " + inv.InvoiceDate,
				"Due Date: " + inv.DueDate,
			}, "\n")},
		},
		{
			{Text: partyLines("BILL TO:", inv.ToInfo, false)},
			{Text: ""},
		},
	}
	blocks = append(blocks,
		block.NewTable(info, false),
		block.NewSpacer(spacerHeight),
		block.NewSpacer(spacerHeight),
	)

	// Items table with a bold header row.
	rows := [][]block.Cell{{
		{Text: "Description", Bold: true},
		{Text: "Quantity", Bold: true},
		{Text: "Rate", Bold: true},
		{Text: "Amount", Bold: true},
	}}
	for _, it := range inv.Items {
		rows = append(rows, []block.Cell{
			{Text: it.Description},
			{Text: formatQuantity(it.Quantity)},
			{Text: USD(it.Rate)},
			{Text: USD(ItemAmount(it))},
		})
	}
	blocks = append(blocks,
		block.NewTable(rows, true),
		block.NewSpacer(spacerHeight),
	)

	totals := ComputeTotals(inv.Items, inv.TaxRate, inv.Discount)
	totalRows := [][]block.Cell{
		{{Text: "Subtotal:"}, {Text: USD(totals.Subtotal)}},
		{{Text: "Tax (" + formatRate(inv.TaxRate) + "%):"}, {Text: USD(totals.Tax)}},
		{{Text: "Discount:"}, {Text: "-" + USD(inv.Discount)}},
		{
			{Text: "TOTAL:", Bold: true, Size: 14},
			{Text: USD(totals.Total), Bold: true, Size: 14},
		},
	}
	totalsTable := block.NewTable(totalRows, false)
	totalsTable.Table.Align = block.AlignRight
	blocks = append(blocks,
		totalsTable,
		block.NewSpacer(spacerHeight),
		block.NewSpacer(spacerHeight),
	)

	if inv.Notes != "" {
		blocks = append(blocks,
			block.NewHeading("Notes:", 2),
			block.NewText(inv.Notes),
		)
	}
	if inv.PaymentInstructions != "" {
		blocks = append(blocks,
			block.NewSpacer(spacerHeight),
			block.NewHeading("Payment Instructions:", 2),
			block.NewText(inv.PaymentInstructions),
		)
	}

	return blocks
}

func partyLines(label string, p record.Party, phone bool) string {
	lines := []string{label, p.Name}
	if p.Address != "" {
		lines = append(lines, p.Address)
	}
	if p.Email != "" {
		lines = append(lines, p.Email)
	}
	if phone && p.Phone != "" {
		lines = append(lines, p.Phone)
	}
	return strings.Join(lines, "\n")
}

// formatQuantity prints whole quantities without a decimal tail.
func formatQuantity(q float64) string {
	if q == float64(int64(q)) {
		return strconv.FormatInt(int64(q), 10)
	}
	return strconv.FormatFloat(q, 'f', -1, 64)
}

func formatRate(r float64) string {
	return strconv.FormatFloat(r, 'f', -1, 64)
}
