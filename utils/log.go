package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/sirupsen/logrus"
	"github.com/topfreegames/pitaya/v3/pkg/logger/interfaces"
	logruswrapper "github.com/topfreegames/pitaya/v3/pkg/logger/logrus"
)

const (
	logMaxAge   = 7 * 24 * time.Hour
	logRotation = 24 * time.Hour
)

// Formatter 单行格式: 时间 [级别] 文件:行 函数 内容
type Formatter struct{}

func (f *Formatter) Format(entry *logrus.Entry) ([]byte, error) {
	timestamp := entry.Time.Format(time.DateTime)
	level := strings.ToLower(entry.Level.String())

	fileName, funcName, line := "?", "?", 0
	if entry.Caller != nil {
		fileName = filepath.Base(entry.Caller.File)
		line = entry.Caller.Line
		parts := strings.Split(entry.Caller.Function, ".")
		funcName = parts[len(parts)-1]
	}

	logMessage := fmt.Sprintf("%s [%s] %s:%d %s %s\n", timestamp, level, fileName, line, funcName, entry.Message)
	return []byte(logMessage), nil
}

// NewLogger 构造接入pitaya的日志器: logrus + 按天轮转的文件输出.
// dir为日志目录, 宿主进程启动时经pitaya.SetLogger注入
func NewLogger(dir string, level logrus.Level) (interfaces.Logger, error) {
	writer, err := newRotateWriter(dir)
	if err != nil {
		return nil, err
	}
	l := logrus.New()
	l.SetOutput(writer)
	l.SetReportCaller(true)
	l.Formatter = &Formatter{}
	l.SetLevel(level)
	return logruswrapper.NewWithFieldLogger(l), nil
}

func newRotateWriter(dir string) (*RotateWriter, error) {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, err
	}
	pattern := filepath.Join(dir, fmt.Sprintf("%s-%%Y%%m%%d.log", filepath.Base(os.Args[0])))
	logs, err := rotatelogs.New(
		pattern,
		rotatelogs.WithMaxAge(logMaxAge),
		rotatelogs.WithRotationTime(logRotation),
	)
	if err != nil {
		return nil, err
	}
	return &RotateWriter{logs: logs, pattern: pattern}, nil
}

// RotateWriter 包装rotatelogs, 当前日志文件被外部删除时自动重建
type RotateWriter struct {
	logs    *rotatelogs.RotateLogs
	pattern string
}

func (w *RotateWriter) Write(p []byte) (n int, err error) {
	if current := w.logs.CurrentFileName(); current != "" {
		if _, err := os.Stat(current); os.IsNotExist(err) {
			logs, err := rotatelogs.New(
				w.pattern,
				rotatelogs.WithMaxAge(logMaxAge),
				rotatelogs.WithRotationTime(logRotation),
			)
			if err != nil {
				return 0, fmt.Errorf("recreate log writer: %w", err)
			}
			w.logs = logs
		}
	}
	return w.logs.Write(p)
}
