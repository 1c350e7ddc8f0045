package session

import (
	"strconv"

	ledgerdom "github.com/retailops/inventory-manager/internal/ledger/domain"
	"github.com/retailops/inventory-manager/internal/money"
	reportdom "github.com/retailops/inventory-manager/internal/report/domain"
)

var productHeader = []string{"ID", "Name", "Price", "Quantity"}

func productRows(products []ledgerdom.Product) [][]string {
	rows := make([][]string, 0, len(products))
	for _, p := range products {
		rows = append(rows, []string{
			strconv.FormatInt(p.ID, 10),
			p.Name,
			money.Format(p.Price),
			strconv.FormatInt(p.Quantity, 10),
		})
	}
	return rows
}

var profitHeader = []string{"ID", "Name", "Overhead Cost", "Total Sales", "Total Profit"}

func profitRows(report []reportdom.DepartmentProfit) [][]string {
	rows := make([][]string, 0, len(report))
	for _, d := range report {
		rows = append(rows, []string{
			strconv.FormatInt(d.DepartmentID, 10),
			d.Name,
			money.Format(d.OverheadCost),
			money.Format(d.TotalSales),
			money.Format(d.TotalProfit),
		})
	}
	return rows
}
