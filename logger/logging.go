package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"resto-api/config"
)

// Setup configures the global logrus logger. With a log file set, output goes to
// both stdout and a rotated file.
func Setup(conf config.LoggingConfig) error {
	level, err := log.ParseLevel(conf.Level)
	if err != nil {
		return fmt.Errorf("unknown logging level %q: %w", conf.Level, err)
	}
	log.SetLevel(level)

	var out io.Writer = os.Stdout
	if conf.File != "" {
		out = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   conf.File,
			MaxSize:    32, // megabytes
			MaxBackups: 2,
			MaxAge:     28, // days
			Compress:   true,
		})
	}
	log.SetOutput(out)

	log.SetFormatter(&log.TextFormatter{
		PadLevelText:    true,
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: time.DateTime,
	})
	return nil
}
