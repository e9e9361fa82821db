package conf

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetLevel(loggerSetting.logLevel())

	if CfgIf("LoggerFile") {
		out := &lumberjack.Logger{
			Filename:  filepath.Join(loggerFileSetting.SavePath, loggerFileSetting.FileName+loggerFileSetting.FileExt),
			MaxSize:   600,
			MaxAge:    10,
			LocalTime: true,
		}
		logrus.SetOutput(io.MultiWriter(os.Stdout, out))
	}
}
