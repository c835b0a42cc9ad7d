package client

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/sheetcharts/internal/service"
	"github.com/MKhiriev/sheetcharts/models"
	"github.com/spf13/cobra"
)

func (a *App) previewCommand() *cobra.Command {
	var (
		axes      models.Axes
		chartType string
		out       string
		rows      int
	)

	cmd := &cobra.Command{
		Use:   "preview FILE",
		Short: "Parse a spreadsheet locally and chart two of its columns",
		Long: "Parses FILE without contacting the server, prints its first rows and the\n" +
			"series for the chosen columns. Missing --x/--y are asked for interactively.\n" +
			"With --out the chart is rendered to a .png or .pdf file.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			preview := a.rt.services.PreviewService

			format, err := outputFormat(out)
			if err != nil {
				return err
			}
			axes.ChartType = models.ChartType(chartType)
			if axes.ChartType != "" && !axes.ChartType.Valid() {
				return fmt.Errorf("%w: %q", service.ErrValidationChartType, chartType)
			}

			table, err := preview.Open(ctx, args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(a.out, "%s: %d rows, columns: %s\n", filepath.Base(args[0]), table.Len(), strings.Join(table.Columns, ", "))
			printRows(a.out, table.Columns, table.Records(), rows)

			if !axes.Complete() {
				if axes, err = a.rt.picker.PickAxes(ctx, table.Columns, axes); err != nil {
					return err
				}
			}
			axes.ChartType = axes.ChartType.OrDefault()

			dataset, err := preview.Dataset(table, axes)
			if err != nil {
				return err
			}

			fmt.Fprintf(a.out, "\n%s chart of %s by %s (%d points)\n", axes.ChartType, axes.YAxis, axes.XAxis, dataset.Len())
			printDataset(a.out, dataset)

			if out == "" {
				return nil
			}
			return a.renderTo(cmd, out, format, axes, dataset)
		},
	}

	addAxesFlags(cmd, &axes, &chartType)
	cmd.Flags().StringVarP(&out, "out", "o", "", "render the chart to this .png or .pdf file")
	cmd.Flags().IntVarP(&rows, "rows", "n", previewRows, "number of rows to print")

	return cmd
}

func (a *App) renderTo(cmd *cobra.Command, path string, format models.ExportFormat, axes models.Axes, dataset models.Dataset) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if err = a.rt.services.PreviewService.Render(f, format, axes, dataset); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return err
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}

	fmt.Fprintf(a.out, "Chart written to %s\n", path)
	return nil
}

// outputFormat picks the export format from the output file extension.
func outputFormat(path string) (models.ExportFormat, error) {
	if path == "" {
		return "", nil
	}

	format := models.ExportFormat(strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), "."))
	if !format.Valid() {
		return "", fmt.Errorf("%w: %q", errUnknownChartFormat, path)
	}
	return format, nil
}
