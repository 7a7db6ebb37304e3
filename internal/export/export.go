// Package export writes the catalog snapshot as a spreadsheet for the shop
// owner.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/tealeg/xlsx/v3"

	"missingfit/internal/domain"
)

const SheetName = "Catalog"

// Columns is the header row, in order.
var Columns = []string{
	"ID", "Name", "Category", "Status", "Available After",
	"Rent (no jewellery)", "Rent (with jewellery)", "Security Deposit",
	"Sizes", "Images",
}

// CatalogWorkbook writes items to w as a single-sheet XLSX file. Amounts
// are written in rupees.
func CatalogWorkbook(items []domain.Item, w io.Writer) error {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet(SheetName)
	if err != nil {
		return fmt.Errorf("add sheet: %w", err)
	}

	header := sheet.AddRow()
	for _, c := range Columns {
		header.AddCell().SetString(c)
	}

	for _, it := range items {
		row := sheet.AddRow()
		row.AddCell().SetString(it.ID)
		row.AddCell().SetString(it.Name)
		row.AddCell().SetString(it.CategoryLabel())
		row.AddCell().SetString(it.Status.Label())
		after := row.AddCell()
		if it.AvailableAfter != nil {
			after.SetString(it.AvailableAfter.Format("2006-01-02"))
		}
		row.AddCell().SetFloat(it.PriceWithoutAccessories.InRupees())
		row.AddCell().SetFloat(it.PriceWithAccessories.InRupees())
		row.AddCell().SetFloat(it.SecurityDeposit.InRupees())
		row.AddCell().SetString(strings.Join(it.Sizes, ", "))
		row.AddCell().SetInt(len(it.Images))
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
