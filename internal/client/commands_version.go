package client

import (
	"fmt"

	"github.com/MKhiriev/sheetcharts/internal/logger"
	"github.com/MKhiriev/sheetcharts/internal/tui"
	"github.com/MKhiriev/sheetcharts/models"
	"github.com/spf13/cobra"
)

func (a *App) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show client and server build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var server *models.VersionResponse

			resp, err := a.rt.server.Version(cmd.Context())
			if err != nil {
				logger.FromContext(cmd.Context()).Debug().Err(err).Msg("server version unavailable")
			} else {
				server = &resp
			}

			fmt.Fprintln(a.out, tui.RenderVersion(a.buildInfo, server))
			return nil
		},
	}
}
