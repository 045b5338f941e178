// Package export writes loan lists to Excel workbooks. This is the real
// counterpart of the dashboard's "Export" action.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/loanflow/loanflow/internal/domain/entity"
)

const sheetName = "Loans"

var headers = []string{
	"Loan ID", "Application ID", "Applicant", "Amount", "Type", "Status",
	"Submitted", "Due", "Approved", "Risk Score", "Assigned To",
}

// LoanExporter writes loan lists to .xlsx files under a fixed output
// directory
type LoanExporter struct {
	outputDir string
	logger    *zap.Logger
}

// NewLoanExporter creates a LoanExporter writing into outputDir
func NewLoanExporter(outputDir string, logger *zap.Logger) *LoanExporter {
	return &LoanExporter{outputDir: outputDir, logger: logger}
}

// Export writes the given loans to a timestamped workbook and returns the
// written path
func (e *LoanExporter) Export(loans []entity.Loan) (string, error) {
	if err := os.MkdirAll(e.outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return "", fmt.Errorf("failed to rename sheet: %w", err)
	}

	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return "", err
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return "", fmt.Errorf("failed to write header %q: %w", h, err)
		}
	}

	for i, loan := range loans {
		row := i + 2
		values := []interface{}{
			loan.ID,
			loan.ApplicationID,
			loan.ApplicantName,
			loan.RawAmount.InexactFloat64(),
			loan.LoanType,
			loan.Status.Label(),
			loan.SubmittedDate.Format("2006-01-02"),
			loan.DueDate.Format("2006-01-02"),
			formatApproved(loan),
			loan.RiskScore,
			loan.AssignedTo,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return "", err
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return "", fmt.Errorf("failed to write row %d: %w", row, err)
			}
		}
	}

	path := filepath.Join(e.outputDir, fmt.Sprintf("loans_%s.xlsx", time.Now().Format("20060102_150405")))
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("failed to save workbook: %w", err)
	}

	e.logger.Info("loan list exported",
		zap.String("path", path),
		zap.Int("loans", len(loans)))

	return path, nil
}

func formatApproved(loan entity.Loan) string {
	if loan.ApprovedDate == nil {
		return "N/A"
	}
	return loan.ApprovedDate.Format("2006-01-02")
}
