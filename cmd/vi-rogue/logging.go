package main

import (
	"io"
	"log"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/vi-rogue/config"
	"github.com/lixenwraith/vi-rogue/logger"
)

const (
	logDir      = logger.DefaultDir
	logFileName = logger.DefaultFileName
	maxLogSize  = logger.MaxSize
)

// setupLogging routes the standard logger and the game logger
// Without debug both discard, since the screen owns stdout and stderr
// With debug both write to logs/vi-rogue.log, rotating it once it outgrows maxLogSize
func setupLogging(cfg config.LogConfig) (*logrus.Logger, *os.File) {
	opts := logger.Options{Level: cfg.Level, Format: cfg.Format}
	if !cfg.Debug {
		log.SetOutput(io.Discard)
		return logger.New(opts), nil
	}

	logFile, err := logger.OpenRotating(logDir, logFileName, maxLogSize)
	if err != nil {
		log.SetOutput(io.Discard)
		return logger.New(opts), nil
	}

	log.SetOutput(logFile)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	opts.Output = logFile
	return logger.New(opts), logFile
}
