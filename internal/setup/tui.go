// Package setup prompts interactively for run parameters that were not
// supplied on the command line.
package setup

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/vadiminshakov/coinreport/config"
)

var (
	subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Background(highlight).
			Padding(1, 2).
			Bold(true).
			MarginBottom(1)
)

// Run fills in the wallet file path and currency when missing.
func Run(cfg *config.Config) error {
	fmt.Println(headerStyle.Render("COINREPORT"))
	fmt.Println(lipgloss.NewStyle().Foreground(subtle).Render("Analyze a wallet's transaction history.\n"))

	if cfg.File == "" {
		err := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Wallet file").
					Description("Path to the JSON file with the wallet's transactions").
					Value(&cfg.File).
					Validate(func(s string) error {
						if s == "" {
							return fmt.Errorf("file path cannot be empty")
						}
						if _, err := os.Stat(s); err != nil {
							return fmt.Errorf("cannot open %s", s)
						}
						return nil
					}),
			),
		).Run()
		if err != nil {
			return err
		}
	}

	if cfg.Currency == "" {
		options := make([]huh.Option[string], 0, len(config.SupportedCurrencies))
		for _, c := range config.SupportedCurrencies {
			options = append(options, huh.NewOption(c, c))
		}
		err := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Currency").
					Description("Fiat currency to value the wallet in").
					Options(options...).
					Value(&cfg.Currency),
			),
		).Run()
		if err != nil {
			return err
		}
	}

	return nil
}
