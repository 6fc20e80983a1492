package logger

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

var Log = &Logger{}

// Logger writes JSON lines to a rotating file. With Echo set it also prints
// to stdout, which must stay off while a backend owns the terminal.
type Logger struct {
	echo bool
}

type Config struct {
	Filename   string
	MaxSize    int
	MaxBackups int
	MaxAge     int
	Compress   bool
	Level      string
	Echo       bool
}

// ReadConfig loads dir/logger.properties. A missing file yields defaults.
func ReadConfig(dir string) (Config, error) {
	v := viper.New()
	v.SetConfigName("logger")
	v.SetConfigType("properties")
	v.AddConfigPath(dir)

	v.SetDefault("logFilename", "pong.log")
	v.SetDefault("maxSize", 1)
	v.SetDefault("maxBackups", 3)
	v.SetDefault("maxAge", 7)
	v.SetDefault("compress", false)
	v.SetDefault("level", "Info")
	v.SetDefault("echo", false)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read logger properties: %w", err)
		}
	}

	return Config{
		Filename:   cast.ToString(v.Get("logFilename")),
		MaxSize:    cast.ToInt(v.Get("maxSize")),
		MaxBackups: cast.ToInt(v.Get("maxBackups")),
		MaxAge:     cast.ToInt(v.Get("maxAge")),
		Compress:   cast.ToBool(v.Get("compress")),
		Level:      cast.ToString(v.Get("level")),
		Echo:       cast.ToBool(v.Get("echo")),
	}, nil
}

func (l *Logger) Init(conf Config) {
	loggerConfig := &lumberjack.Logger{
		Filename:   conf.Filename,
		MaxSize:    conf.MaxSize,
		MaxBackups: conf.MaxBackups,
		MaxAge:     conf.MaxAge,
		Compress:   conf.Compress,
	}

	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(loggerConfig)
	logrus.SetLevel(levelFromName(conf.Level))

	l.echo = conf.Echo
}

func levelFromName(level string) logrus.Level {
	switch level {

	case "Trace":
		return logrus.TraceLevel

	case "Info":
		return logrus.InfoLevel

	case "Warn":
		return logrus.WarnLevel

	case "Error":
		return logrus.ErrorLevel

	case "Fatal":
		return logrus.FatalLevel

	default:
		return logrus.DebugLevel
	}
}

// WithMatch returns an entry tagged with the match id.
func (l *Logger) WithMatch(matchId string) *logrus.Entry {
	return logrus.WithField("match", matchId)
}

func (l *Logger) Info(message string) {
	logrus.Info(message)
	l.print("Info:", message)
}

func (l *Logger) Error(message string) {
	logrus.Error(message)
	l.print("Error:", message)
}

func (l *Logger) Debug(message string) {
	logrus.Debug(message)
	l.print("Debug:", message)
}

func (l *Logger) Warn(message string) {
	logrus.Warn(message)
	l.print("Warn:", message)
}

func (l *Logger) Fatal(message string) {
	l.print("Fatal:", message)
	logrus.Fatal(message)
}

func (l *Logger) print(prefix, message string) {
	if l.echo {
		fmt.Println(prefix, message)
	}
}
