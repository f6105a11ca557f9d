package dto

import (
	"github.com/ledgerly/backend/internal/application/usecase/dashboard"
)

// DashboardSummaryResponse represents the dashboard summary data.
type DashboardSummaryResponse struct {
	TotalIncome        string                `json:"total_income"`
	TotalExpenses      string                `json:"total_expenses"`
	NetBalance         string                `json:"net_balance"`
	Accounts           []AccountResponse     `json:"accounts"`
	RecentTransactions []TransactionResponse `json:"recent_transactions"`
}

// BudgetReportRowResponse represents one category row in the budget report.
type BudgetReportRowResponse struct {
	CategoryID      string `json:"category_id"`
	CategoryName    string `json:"category_name"`
	CategoryColor   string `json:"category_color"`
	BudgetAmount    string `json:"budget_amount"`
	SpentAmount     string `json:"spent_amount"`
	RemainingAmount string `json:"remaining_amount"`
	Percentage      string `json:"percentage"`
}

// BudgetReportResponse represents the monthly budget report.
type BudgetReportResponse struct {
	Month int                       `json:"month"`
	Year  int                       `json:"year"`
	Rows  []BudgetReportRowResponse `json:"rows"`
}

// ToDashboardSummaryResponse converts a summary use case output to its DTO.
func ToDashboardSummaryResponse(output *dashboard.GetSummaryOutput) DashboardSummaryResponse {
	accounts := make([]AccountResponse, len(output.Accounts))
	for i, account := range output.Accounts {
		accounts[i] = ToAccountResponse(account)
	}
	recent := make([]TransactionResponse, len(output.RecentTransactions))
	for i, txn := range output.RecentTransactions {
		recent[i] = ToTransactionResponse(txn)
	}
	return DashboardSummaryResponse{
		TotalIncome:        output.TotalIncome.String(),
		TotalExpenses:      output.TotalExpenses.String(),
		NetBalance:         output.NetBalance.String(),
		Accounts:           accounts,
		RecentTransactions: recent,
	}
}

// ToBudgetReportResponse converts a budget report use case output to its DTO.
func ToBudgetReportResponse(output *dashboard.GetBudgetReportOutput) BudgetReportResponse {
	rowResponses := make([]BudgetReportRowResponse, len(output.Rows))
	for i, row := range output.Rows {
		rowResponses[i] = BudgetReportRowResponse{
			CategoryID:      row.CategoryID.String(),
			CategoryName:    row.CategoryName,
			CategoryColor:   row.CategoryColor,
			BudgetAmount:    row.BudgetAmount.String(),
			SpentAmount:     row.SpentAmount.String(),
			RemainingAmount: row.RemainingAmount.String(),
			Percentage:      row.Percentage.Round(2).String(),
		}
	}
	return BudgetReportResponse{
		Month: output.Month,
		Year:  output.Year,
		Rows:  rowResponses,
	}
}
