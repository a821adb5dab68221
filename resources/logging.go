package resources

import (
	"io"
	"os"
	"path"
	"time"

	"github.com/lucascaro/hostman/config"
	"github.com/lucascaro/hostman/util"
	"github.com/rifflock/lfshook"
	log "github.com/sirupsen/logrus"
)

// initLogger creates the logger for logging diagnostics to out
func initLogger(logConfig *config.LogStaticCfg, out io.Writer) *log.Logger {
	var logs = &log.Logger{}

	logs.Formatter = new(log.TextFormatter)

	logs.Out = out
	logs.Hooks = make(log.LevelHooks)

	switch logConfig.LogLevel {
	case 3:
		logs.Level = log.DebugLevel
	case 2:
		logs.Level = log.InfoLevel
	case 1:
		logs.Level = log.WarnLevel
	default:
		logs.Level = log.ErrorLevel
	}
	return logs
}

func addFileLogger(logger *log.Logger, logPath string) error {
	time := time.Now().Format(util.TimeFormat)
	logPath = path.Join(logPath, time)
	_, err := os.Stat(logPath)
	if err != nil && os.IsNotExist(err) {
		err = os.MkdirAll(logPath, 0755)
		if err != nil {
			return err
		}
	}

	logger.Hooks.Add(lfshook.NewHook(lfshook.PathMap{
		log.DebugLevel: path.Join(logPath, "debug.log"),
		log.InfoLevel:  path.Join(logPath, "info.log"),
		log.WarnLevel:  path.Join(logPath, "warn.log"),
		log.ErrorLevel: path.Join(logPath, "error.log"),
		log.FatalLevel: path.Join(logPath, "fatal.log"),
		log.PanicLevel: path.Join(logPath, "panic.log"),
	}, nil))
	return nil
}
