package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/tayrics/tayrics/internal/artwork"
	"github.com/tayrics/tayrics/internal/assets"
	"github.com/tayrics/tayrics/internal/catalog"
	"github.com/tayrics/tayrics/internal/config"
	"github.com/tayrics/tayrics/internal/platform"
	"github.com/tayrics/tayrics/internal/present"
	"github.com/tayrics/tayrics/internal/tui"
)

func main() {
	expandFlag := flag.Bool("expand", false, "Open every album on launch")
	logFlag := flag.String("log", "", "Log file path (defaults to the user cache directory)")
	flag.Parse()

	env, err := config.LoadEnvironment()
	if err != nil {
		log.WithError(err).Fatal("failed to read environment")
	}

	// The terminal belongs to the TUI, so logs go to a file
	out, closeLog := logOutput(*logFlag)
	defer closeLog()
	config.ConfigureLogging(env, out)

	albums, err := catalog.LoadBundled()
	if err != nil {
		fatal(os.Stderr, "failed to load catalog", err)
	}

	covers := artwork.NewLibrary(assets.Covers(), artwork.DefaultThumbnailSize)
	if err := tui.Run(present.Build(albums, covers), *expandFlag); err != nil {
		fatal(os.Stderr, "tui exited with error", err)
	}
}

// fatal reports err on the terminal as well as in the log file, then exits
func fatal(stderr io.Writer, msg string, err error) {
	reportError(stderr, msg, err)
	log.WithError(err).Fatal(msg)
}

func reportError(w io.Writer, msg string, err error) {
	fmt.Fprintf(w, "Error: %s: %v\n", msg, err)
}

func logOutput(path string) (io.Writer, func()) {
	if path == "" {
		defaultPath, err := platform.DefaultLogPath()
		if err != nil {
			return io.Discard, func() {}
		}
		path = defaultPath
	}

	f, err := platform.OpenLogFile(path)
	if err != nil {
		return io.Discard, func() {}
	}
	return f, func() { f.Close() }
}
