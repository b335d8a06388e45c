// Package logger provides structured logging for fillkit using zerolog.
//
// It supports multiple output formats (JSON, console), log level
// configuration, and component-scoped loggers with structured fields.
//
// # Usage
//
//	log := logger.Get("fill")
//	log.Info("fill applied", logger.Fields(logger.FieldStrategy, "deep"))
package logger
