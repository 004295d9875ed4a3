package go_nano

import (
	"os"

	"github.com/go-i2p/logger"
)

var log = logger.GetGoI2PLogger()

// LogInit initializes the logger with the specified level
func LogInit(level int) {
	logger.InitializeGoI2PLogger()

	switch level {
	case DEBUG, INFO:
		os.Setenv("DEBUG_I2P", "debug")
	case WARNING:
		os.Setenv("DEBUG_I2P", "warn")
	case ERROR:
		os.Setenv("DEBUG_I2P", "error")
	case FATAL:
		os.Setenv("DEBUG_I2P", "fatal")
		os.Setenv("WARNFAIL_I2P", "true")
	default:
		os.Setenv("DEBUG_I2P", "debug")
	}
	log = logger.GetGoI2PLogger()
}

// ParseLogLevel maps a level name ("debug", "warn", ...) to its constant.
// Unknown names map to ERROR.
func ParseLogLevel(name string) int {
	switch name {
	case "debug":
		return DEBUG
	case "info":
		return INFO
	case "warn", "warning":
		return WARNING
	case "fatal":
		return FATAL
	default:
		return ERROR
	}
}

// Debug logs a debug message with optional arguments.
func Debug(message string, args ...interface{}) {
	if len(args) == 0 {
		log.Debug(message)
		return
	}
	log.Debugf(message, args...)
}

// Info logs an info message with optional arguments.
// Note: Info maps to Warn level in the logger.
func Info(message string, args ...interface{}) {
	if len(args) == 0 {
		log.Warn(message)
		return
	}
	log.Warnf(message, args...)
}

// Warning logs a warning message with optional arguments.
func Warning(message string, args ...interface{}) {
	if len(args) == 0 {
		log.Warn(message)
		return
	}
	log.Warnf(message, args...)
}

// Error logs an error message with optional arguments.
func Error(message string, args ...interface{}) {
	if len(args) == 0 {
		log.Error(message)
		return
	}
	log.Errorf(message, args...)
}

// Fatal logs a fatal message with optional arguments.
// Note: Fatal maps to Error level in the logger and sets WARNFAIL_I2P.
func Fatal(message string, args ...interface{}) {
	os.Setenv("WARNFAIL_I2P", "true")
	if len(args) == 0 {
		log.Error(message)
		return
	}
	log.Errorf(message, args...)
}
