package cmd

import (
	"fmt"
	"os"

	"github.com/MichalMitros/marketplace-tracker/internal/platform/models"
	"github.com/MichalMitros/marketplace-tracker/internal/report"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func newReportCommand() *cobra.Command {
	var xlsxPath string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Renders prepared views.",
	}
	cmd.PersistentFlags().StringVar(&xlsxPath, "xlsx", "", "write spreadsheet to path instead of printing table")

	prices := &cobra.Command{
		Use:   "prices",
		Short: "Renders prepared prices of items.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			storage := getEnv(cmd.Context()).Storage

			items, err := storage.GetItems(cmd.Context())
			if err != nil {
				return fmt.Errorf("can't get items: %w", err)
			}

			views, err := storage.GetPreparedPrices(cmd.Context())
			if err != nil {
				return fmt.Errorf("can't get prepared prices: %w", err)
			}

			dates := report.Dates(lo.Map(views, func(view models.PreparedPrice, _ int) map[string]*models.PricePoint {
				return view.Prices
			})...)

			return render(cmd, xlsxPath, "prices", report.PriceColumns(dates), report.PriceRows(items, views))
		},
	}

	positions := &cobra.Command{
		Use:   "positions",
		Short: "Renders prepared search positions of keywords.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			storage := getEnv(cmd.Context()).Storage

			keywords, err := storage.GetKeywords(cmd.Context())
			if err != nil {
				return fmt.Errorf("can't get keywords: %w", err)
			}

			views, err := storage.GetPreparedPositions(cmd.Context())
			if err != nil {
				return fmt.Errorf("can't get prepared positions: %w", err)
			}

			dates := report.Dates(lo.Map(views, func(view models.PreparedPosition, _ int) map[string]*models.PositionPoint {
				return view.Positions
			})...)

			return render(cmd, xlsxPath, "positions", report.PositionColumns(dates), report.PositionRows(keywords, views))
		},
	}

	cmd.AddCommand(prices, positions)

	return cmd
}

func render[T any](cmd *cobra.Command, xlsxPath, sheet string, columns []report.Column[T], rows []T) error {
	if xlsxPath == "" {
		report.RenderText(cmd.OutOrStdout(), columns, rows)
		return nil
	}

	f, err := os.Create(xlsxPath)
	if err != nil {
		return fmt.Errorf("can't create %q: %w", xlsxPath, err)
	}
	defer f.Close()

	if err := report.RenderXLSX(f, sheet, columns, rows); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%d rows written to %s\n", len(rows), xlsxPath)
	return nil
}
