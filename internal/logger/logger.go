package logger

import (
	"go.uber.org/zap"
)

// New はレベル指定つきのzapロガーを作る。
func New(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}

	zapcfg := zap.NewProductionConfig()
	zapcfg.Level = lvl

	return zapcfg.Build()
}
