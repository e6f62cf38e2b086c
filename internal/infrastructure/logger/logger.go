package logger

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

var log = zerolog.New(os.Stdout).With().Timestamp().Logger()

// SetDebug включает debug-уровень логирования.
func SetDebug(enabled bool) {
	if enabled {
		log = log.Level(zerolog.DebugLevel)
	} else {
		log = log.Level(zerolog.InfoLevel)
	}
}

// Методы без форматирования
func Info(args ...interface{})  { log.Info().Msg(fmt.Sprint(args...)) }
func Error(args ...interface{}) { log.Error().Msg(fmt.Sprint(args...)) }
func Debug(args ...interface{}) { log.Debug().Msg(fmt.Sprint(args...)) }
func Warn(args ...interface{})  { log.Warn().Msg(fmt.Sprint(args...)) }
func Fatal(args ...interface{}) { log.Fatal().Msg(fmt.Sprint(args...)) }

// Методы с форматированием
func Infof(format string, args ...interface{})  { log.Info().Msgf(format, args...) }
func Errorf(format string, args ...interface{}) { log.Error().Msgf(format, args...) }
func Debugf(format string, args ...interface{}) { log.Debug().Msgf(format, args...) }
func Warnf(format string, args ...interface{})  { log.Warn().Msgf(format, args...) }
func Fatalf(format string, args ...interface{}) { log.Fatal().Msgf(format, args...) }
