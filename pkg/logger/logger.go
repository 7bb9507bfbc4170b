// Package logger 提供基于zerolog的结构化日志
//
// 设计说明：
// 1. 早期版本使用fmt/log输出，无法按字段检索，response.Error中一直留着
//    接入结构化日志的TODO，本包补上这一环
// 2. zerolog零分配、API简单，console格式用于开发，json格式用于生产采集
// 3. 通过Init配置全局logger（zerolog/log包），各处直接用log.Info()等
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config 日志配置（对应config.yaml的log段）
type Config struct {
	Level        string // debug | info | warn | error
	Format       string // console | json
	Output       string // stdout | stderr | /path/to/file
	EnableCaller bool   // 是否记录调用位置
}

// Init 初始化全局logger
// 返回配置好的zerolog.Logger，同时设置zerolog/log的全局实例
func Init(cfg Config) (zerolog.Logger, error) {
	// 1. 日志级别
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	// 2. 输出目标
	var out io.Writer
	switch cfg.Output {
	case "", "stdout":
		out = os.Stdout
	case "stderr":
		out = os.Stderr
	default:
		f, err := os.OpenFile(cfg.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Logger{}, err
		}
		out = f
	}

	// 3. 输出格式（console带颜色，便于开发；json用于生产）
	if cfg.Format == "console" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	logger := zerolog.New(out).Level(level).With().Timestamp().Logger()
	if cfg.EnableCaller {
		logger = logger.With().Caller().Logger()
	}

	// 设置全局实例，response.Error等处直接使用zerolog/log
	log.Logger = logger
	return logger, nil
}
