package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

const financialSheet = "Financial Summary"

var financialHeaders = []string{
	"Resident ID", "Resident", "Total Bills", "Total Billed",
	"Pending Bills", "Pending Amount", "Paid Bills", "Paid Amount",
	"Overdue Bills", "Overdue Amount", "Payments", "Total Paid",
}

type ExportService struct {
	Views *ViewService
}

func NewExportService(views *ViewService) *ExportService {
	return &ExportService{Views: views}
}

// FinancialSummaryXLSX renders the financial summary view as a workbook with
// a header row and one row per resident.
func (s *ExportService) FinancialSummaryXLSX() (*bytes.Buffer, error) {
	rows, err := s.Views.FinancialSummary()
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", financialSheet); err != nil {
		return nil, err
	}

	header := make([]interface{}, len(financialHeaders))
	for i, h := range financialHeaders {
		header[i] = h
	}
	if err := f.SetSheetRow(financialSheet, "A1", &header); err != nil {
		return nil, err
	}

	for i, r := range rows {
		values := []interface{}{
			r.ResidentID, r.ResidentName, r.TotalBills, r.TotalBilled,
			r.PendingBills, r.PendingAmount, r.PaidBills, r.PaidAmount,
			r.OverdueBills, r.OverdueAmount, r.PaymentCount, r.TotalPaid,
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(financialSheet, cell, &values); err != nil {
			return nil, err
		}
	}

	if err := f.SetPanes(financialSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, err
	}

	return f.WriteToBuffer()
}
