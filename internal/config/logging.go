package config

import (
	"io"

	nested "github.com/antonfisher/nested-logrus-formatter"
	log "github.com/sirupsen/logrus"
)

// ConfigureLogging applies the environment's level and the shared formatter
// to the standard logrus logger, writing to out.
func ConfigureLogging(env Environment, out io.Writer) {
	log.SetOutput(out)
	log.SetLevel(env.LogLevel)
	log.SetFormatter(&nested.Formatter{
		HideKeys:        true,
		FieldsOrder:     []string{"module", "cover", "file"},
		TimestampFormat: "15:04:05.000",
		NoColors:        false,
	})
}
