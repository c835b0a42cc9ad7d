package client

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/sheetcharts/models"
	"github.com/spf13/cobra"
)

func (a *App) analysisCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "analysis",
		Aliases: []string{"analyses"},
		Short:   "Manage saved chart configurations",
	}

	cmd.AddCommand(
		a.analysisSaveCommand(),
		a.analysisListCommand(),
		a.analysisRenameCommand(),
		a.analysisDeleteCommand(),
		a.analysisExportCommand(),
	)

	return cmd
}

func (a *App) analysisSaveCommand() *cobra.Command {
	var (
		historyID int64
		name      string
		axes      models.Axes
		chartType string
	)

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Save a chart configuration for an upload",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := a.session(cmd.Context())
			if err != nil {
				return err
			}

			analysis, err := a.rt.services.WorkspaceService.SaveAnalysis(cmd.Context(), session, models.SaveAnalysisRequest{
				HistoryID: models.HistoryRef{ID: historyID},
				Name:      name,
				XAxis:     axes.XAxis,
				YAxis:     axes.YAxis,
				ChartType: models.ChartType(chartType),
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(a.out, "Analysis #%d %q saved.\n", analysis.ID, analysis.Name)
			return nil
		},
	}

	cmd.Flags().Int64Var(&historyID, "history", 0, "history id the analysis belongs to")
	cmd.Flags().StringVar(&name, "name", "", "analysis name")
	addAxesFlags(cmd, &axes, &chartType)

	return cmd
}

func (a *App) analysisListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved analyses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := a.session(cmd.Context())
			if err != nil {
				return err
			}

			analyses, err := a.rt.services.WorkspaceService.ListAnalyses(cmd.Context(), session)
			if err != nil {
				return err
			}
			printAnalyses(a.out, analyses)
			return nil
		},
	}
}

func (a *App) analysisRenameCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rename ID NAME",
		Short: "Rename a saved analysis",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			session, err := a.session(cmd.Context())
			if err != nil {
				return err
			}

			analysis, err := a.rt.services.WorkspaceService.RenameAnalysis(cmd.Context(), session, id, args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Analysis #%d renamed to %q.\n", analysis.ID, analysis.Name)
			return nil
		},
	}
}

func (a *App) analysisDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a saved analysis",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			session, err := a.session(cmd.Context())
			if err != nil {
				return err
			}

			if err = a.rt.services.WorkspaceService.DeleteAnalysis(cmd.Context(), session, id); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Analysis #%d deleted.\n", id)
			return nil
		},
	}
}

func (a *App) analysisExportCommand() *cobra.Command {
	var format, out string

	cmd := &cobra.Command{
		Use:   "export ID",
		Short: "Render a saved analysis on the server as PNG or PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			session, err := a.session(cmd.Context())
			if err != nil {
				return err
			}

			export, err := a.rt.services.WorkspaceService.ExportAnalysis(cmd.Context(), session, id, models.ExportFormat(format))
			if err != nil {
				return err
			}

			path := out
			if path == "" {
				path = filepath.Base(export.FileName)
			}
			if err = os.WriteFile(path, export.Content, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
			fmt.Fprintf(a.out, "Saved %s (%s)\n", path, export.ContentType)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(models.ExportPNG), "png or pdf")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default: the name suggested by the server)")

	return cmd
}
