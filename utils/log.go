package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/sirupsen/logrus"
	"github.com/topfreegames/pitaya/v3/pkg/logger/interfaces"
	logruswrapper "github.com/topfreegames/pitaya/v3/pkg/logger/logrus"
)

// Formatter 单行日志：时间 [级别] 文件:行 函数 消息 k=v...
type Formatter struct{}

func (f *Formatter) Format(entry *logrus.Entry) ([]byte, error) {
	var sb strings.Builder
	sb.WriteString(entry.Time.Format(time.DateTime))
	sb.WriteString(" [")
	sb.WriteString(strings.ToLower(entry.Level.String()))
	sb.WriteString("] ")
	if entry.Caller != nil {
		fmt.Fprintf(&sb, "%s:%d %s ", filepath.Base(entry.Caller.File), entry.Caller.Line, lastPart(entry.Caller.Function, "."))
	}
	sb.WriteString(entry.Message)

	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		fmt.Fprintf(&sb, " %s=%v", k, entry.Data[k])
	}
	sb.WriteByte('\n')
	return []byte(sb.String()), nil
}

func lastPart(s, sep string) string {
	return s[strings.LastIndex(s, sep)+1:]
}

type logOptions struct {
	dir      string
	name     string
	maxAge   time.Duration
	rotation time.Duration
}

// LogOption 日志文件选项
type LogOption func(*logOptions)

// WithLogDir 日志目录，默认 ./logs
func WithLogDir(dir string) LogOption {
	return func(o *logOptions) {
		o.dir = dir
	}
}

// WithLogName 文件名前缀，默认程序名
func WithLogName(name string) LogOption {
	return func(o *logOptions) {
		o.name = name
	}
}

// WithLogMaxAge 日志保留时长
func WithLogMaxAge(d time.Duration) LogOption {
	return func(o *logOptions) {
		o.maxAge = d
	}
}

// Logger 按天轮转的 logrus 日志，包装为 pitaya logger
func Logger(level logrus.Level, opts ...LogOption) interfaces.Logger {
	l := logrus.New()
	if writer, err := NewWriter(opts...); err != nil {
		logrus.Errorf("Failed to create log writer, fall back to stderr: %v", err)
	} else {
		l.SetOutput(writer)
	}
	l.SetReportCaller(true)
	l.Formatter = &Formatter{}
	l.SetLevel(level)
	return logruswrapper.NewWithFieldLogger(l)
}

// NewWriter 创建日志轮转写入器
func NewWriter(opts ...LogOption) (*SafeRotateLogs, error) {
	o := &logOptions{
		dir:      "./logs",
		name:     filepath.Base(os.Args[0]),
		maxAge:   7 * 24 * time.Hour,
		rotation: 24 * time.Hour,
	}
	for _, opt := range opts {
		opt(o)
	}

	// 确保日志目录存在
	if err := os.MkdirAll(o.dir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	s := &SafeRotateLogs{
		logPattern: filepath.Join(o.dir, fmt.Sprintf("%s-%%Y%%m%%d.log", o.name)),
		maxAge:     o.maxAge,
		rotation:   o.rotation,
	}
	if err := s.open(); err != nil {
		return nil, err
	}
	return s, nil
}

// SafeRotateLogs 当前文件被删除时重新创建
type SafeRotateLogs struct {
	*rotatelogs.RotateLogs
	logPattern string
	maxAge     time.Duration
	rotation   time.Duration
}

func (s *SafeRotateLogs) open() error {
	writer, err := rotatelogs.New(
		s.logPattern,
		rotatelogs.WithMaxAge(s.maxAge),
		rotatelogs.WithRotationTime(s.rotation),
	)
	if err != nil {
		return fmt.Errorf("create log writer: %w", err)
	}
	s.RotateLogs = writer
	return nil
}

// Write 文件不存在时重新创建写入器
func (s *SafeRotateLogs) Write(p []byte) (n int, err error) {
	if current := s.RotateLogs.CurrentFileName(); current != "" {
		if _, err := os.Stat(current); os.IsNotExist(err) {
			if err := s.open(); err != nil {
				return 0, err
			}
		}
	}
	return s.RotateLogs.Write(p)
}
