// Package logger sets up file logging so output never interferes with the TUI
package logger

import (
	"fmt"
	"io"

	"github.com/jdlms/operadoras-dashboard/internal/config"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New returns a JSON logger writing to a rotating log file. The returned closer
// releases the file.
func New(cfg *config.Config) (*logrus.Logger, io.Closer, error) {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("parse log level %q: %w", cfg.LogLevel, err)
	}

	file := &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     28, // days
		Compress:   true,
	}

	log := logrus.New()
	log.SetLevel(level)
	log.SetFormatter(&logrus.JSONFormatter{TimestampFormat: "2006-01-02T15:04:05.000Z07:00"})
	log.SetOutput(file)

	log.WithFields(logrus.Fields{"log_level": level.String(), "file": cfg.LogFile}).Info("logger configured")
	return log, file, nil
}
