package client

import (
	"fmt"
	"strconv"

	"github.com/MKhiriev/sheetcharts/models"
	"github.com/spf13/cobra"
)

func (a *App) uploadCommand() *cobra.Command {
	var (
		axes      models.Axes
		chartType string
	)

	cmd := &cobra.Command{
		Use:   "upload FILE",
		Short: "Upload an .xls or .xlsx file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := a.session(cmd.Context())
			if err != nil {
				return err
			}

			axes.ChartType = models.ChartType(chartType)
			uploaded, err := a.rt.services.WorkspaceService.Upload(cmd.Context(), session, args[0], axes)
			if err != nil {
				return err
			}

			fmt.Fprintf(a.out, "%s\n", uploaded.Message)
			fmt.Fprintf(a.out, "History #%d: %s, %d rows, %s\n",
				uploaded.File.ID, uploaded.File.FileName, uploaded.File.Rows, humanSize(uploaded.File.FileSize))
			printRows(a.out, uploaded.Columns, uploaded.Data, previewRows)
			return nil
		},
	}

	addAxesFlags(cmd, &axes, &chartType)

	return cmd
}

func (a *App) historyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Manage uploaded files",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List uploads, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := a.session(cmd.Context())
			if err != nil {
				return err
			}

			histories, err := a.rt.services.WorkspaceService.ListHistory(cmd.Context(), session)
			if err != nil {
				return err
			}
			printHistory(a.out, histories)
			return nil
		},
	}

	del := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete an upload and its stored file",
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

			if err = a.rt.services.WorkspaceService.DeleteHistory(cmd.Context(), session, id); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "History #%d deleted.\n", id)
			return nil
		},
	}

	var dir string
	download := &cobra.Command{
		Use:   "download ID",
		Short: "Download the original spreadsheet",
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

			path, err := a.rt.services.WorkspaceService.DownloadFile(cmd.Context(), session, id, dir)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Saved %s\n", path)
			return nil
		},
	}
	download.Flags().StringVarP(&dir, "dir", "d", ".", "directory to save into")

	var xAxis, yAxis string
	dataset := &cobra.Command{
		Use:   "dataset ID",
		Short: "Print the chart series of a stored upload",
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

			resp, err := a.rt.services.WorkspaceService.Dataset(cmd.Context(), session, id, xAxis, yAxis)
			if err != nil {
				return err
			}
			printDataset(a.out, resp.Dataset)
			return nil
		},
	}
	dataset.Flags().StringVar(&xAxis, "x", "", "label column")
	dataset.Flags().StringVar(&yAxis, "y", "", "value column")

	cmd.AddCommand(list, del, download, dataset)

	return cmd
}

func addAxesFlags(cmd *cobra.Command, axes *models.Axes, chartType *string) {
	cmd.Flags().StringVar(&axes.XAxis, "x", "", "column used for labels")
	cmd.Flags().StringVar(&axes.YAxis, "y", "", "column used for values")
	cmd.Flags().StringVar(chartType, "type", "", "chart type: bar, line, pie, doughnut, polarArea, radar")
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", errInvalidID, raw)
	}
	return id, nil
}
