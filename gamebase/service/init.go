package service

import (
	"strings"

	"github.com/kevin-chtw/tw_riichi/gamebase/score"
	"github.com/kevin-chtw/tw_riichi/utils"
	"github.com/sirupsen/logrus"
	pitaya "github.com/topfreegames/pitaya/v3/pkg"
	"github.com/topfreegames/pitaya/v3/pkg/component"
	"github.com/topfreegames/pitaya/v3/pkg/logger"
)

const RemoteName = "riichi"

type initOptions struct {
	ruleFile string
	logLevel logrus.Level
	logOpts  []utils.LogOption
	fileLog  bool
}

// Option 初始化选项
type Option func(*initOptions)

// WithRuleFile 档位配置文件
func WithRuleFile(file string) Option {
	return func(o *initOptions) {
		o.ruleFile = file
	}
}

// WithFileLog 使用按天轮转的文件日志
func WithFileLog(level logrus.Level, opts ...utils.LogOption) Option {
	return func(o *initOptions) {
		o.fileLog = true
		o.logLevel = level
		o.logOpts = opts
	}
}

// NewRemoteWithOptions 按选项创建服务但不注册
func NewRemoteWithOptions(opts ...Option) (*Remote, error) {
	o := &initOptions{}
	for _, opt := range opts {
		opt(o)
	}
	if o.fileLog {
		logger.SetLogger(utils.Logger(o.logLevel, o.logOpts...))
	}

	rule, err := score.LoadRule(o.ruleFile)
	if err != nil {
		return nil, err
	}
	return NewRemote(score.NewCalculator(rule)), nil
}

// Init 初始化并注册算分服务
func Init(app pitaya.Pitaya, opts ...Option) (*Remote, error) {
	remote, err := NewRemoteWithOptions(opts...)
	if err != nil {
		return nil, err
	}
	app.RegisterRemote(remote, component.WithName(RemoteName), component.WithNameFunc(strings.ToLower))
	return remote, nil
}
