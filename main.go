package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	log "github.com/sirupsen/logrus"

	"github.com/tayrics/tayrics/internal/artwork"
	"github.com/tayrics/tayrics/internal/assets"
	"github.com/tayrics/tayrics/internal/catalog"
	"github.com/tayrics/tayrics/internal/config"
	"github.com/tayrics/tayrics/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "io.tayrics.app"
	AppName = "Tayrics"
)

func main() {
	env, err := config.LoadEnvironment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read environment: %v\n", err)
		os.Exit(1)
	}
	config.ConfigureLogging(env, os.Stderr)

	logger := log.WithFields(log.Fields{"module": "main"})
	logger.Infof("%s v%s starting...", AppName, version)

	// The catalog is bundled; failing to read it is a build defect
	albums, err := catalog.LoadBundled()
	if err != nil {
		logger.WithError(err).Fatal("failed to load catalog")
	}

	// Create new Fyne app
	myApp := app.NewWithID(AppID)
	myApp.SetIcon(ui.AppIconResource())

	settings := config.NewSettings(myApp)
	myApp.Settings().SetTheme(ui.NewGroupedTheme(settings.GetThemeVariant()))

	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	covers := artwork.NewLibrary(assets.Covers(), artwork.DefaultThumbnailSize)

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, albums, covers)

	// Show and run
	myWindow.ShowAndRun()
}
