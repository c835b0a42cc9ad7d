package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/sheetcharts/internal/client"
	"github.com/MKhiriev/sheetcharts/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	app := client.NewApp(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), os.Stdin, os.Stdout, os.Stderr)
	err := app.Execute(ctx)
	stop()

	if err != nil {
		os.Exit(1)
	}
}
