package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vadiminshakov/coinreport/internal/domain"
)

var (
	highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	special   = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Background(highlight).
			Padding(0, 2).
			Bold(true).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(special).
			Bold(true).
			Width(24)

	blockStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(highlight).
			Padding(1, 2)
)

// Render returns a styled terminal block with the report's key figures.
func Render(r *domain.SummaryReport) string {
	coin := strings.ToUpper(r.Coin)
	cur := strings.ToUpper(r.Currency)

	row := func(label, value string) string {
		return labelStyle.Render(label) + value
	}

	lines := []string{
		row(fmt.Sprintf("Received (%s)", coin), r.TotalReceived.String()),
		row(fmt.Sprintf("Sent (%s)", coin), r.TotalSent.String()),
		row(fmt.Sprintf("Balance (%s)", coin), r.Balance.String()),
		row(fmt.Sprintf("Total cost (%s)", cur), r.TotalCost.String()),
		row(fmt.Sprintf("Current value (%s)", cur), r.CurrentValue.String()),
		row(fmt.Sprintf("Profit (%s)", cur), r.TotalProfit.String()),
		row(fmt.Sprintf("Fees (%s)", coin), r.TotalFeesCoin.String()),
		row(fmt.Sprintf("Fees (%s)", cur), r.TotalFeesCurrency.String()),
		row("Transactions", fmt.Sprintf("%d", r.TotalTransactions)),
	}
	for _, txType := range []domain.TxType{domain.TxReceived, domain.TxSent} {
		if count, ok := r.CountsByType[txType]; ok {
			lines = append(lines, row(fmt.Sprintf("  %s", txType), fmt.Sprintf("%d", count)))
		}
	}

	return titleStyle.Render(fmt.Sprintf("%s WALLET SUMMARY", coin)) + "\n" +
		blockStyle.Render(strings.Join(lines, "\n"))
}
