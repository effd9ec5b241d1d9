package cli

import (
	"bytes"
	"fmt"
	"io"
	"time"

	log "github.com/sirupsen/logrus"
)

type ActionsFormatter struct{}

// SetupLogging configures the global logger. The actions flag overrides the format.
func SetupLogging(out io.Writer, level, format string, actions, quiet bool) error {
	log.SetOutput(out)

	if actions {
		format = "actions"
	}

	switch format {
	case "actions":
		log.SetFormatter(&ActionsFormatter{})
	case "json":
		log.SetFormatter(&log.JSONFormatter{
			TimestampFormat: time.RFC3339Nano,
		})
	case "text":
		log.SetFormatter(&log.TextFormatter{
			FullTimestamp:          true,
			TimestampFormat:        time.RFC3339Nano,
			DisableLevelTruncation: true,
		})
	default:
		return fmt.Errorf("log format '%s' is not recognized", format)
	}

	logLevel, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("while setting log level: %s", err)
	}
	log.SetLevel(logLevel)

	if quiet {
		log.SetLevel(log.ErrorLevel)
	}

	return nil
}

func (a *ActionsFormatter) Format(e *log.Entry) ([]byte, error) {
	buf := &bytes.Buffer{}
	switch e.Level {
	case log.ErrorLevel, log.FatalLevel, log.PanicLevel:
		buf.WriteString("::error::")
	case log.WarnLevel:
		buf.WriteString("::warning::")
	case log.DebugLevel, log.TraceLevel:
		buf.WriteString("::debug::")
	default:
		buf.WriteString("[")
		buf.WriteString(e.Time.Format(time.RFC3339Nano))
		buf.WriteString("] ")
	}
	buf.WriteString(e.Message)
	buf.WriteRune('\n')
	return buf.Bytes(), nil
}
