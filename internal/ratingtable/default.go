package ratingtable

import (
	"sync"

	"github.com/creditdesk/ratings/internal/config"
	"github.com/creditdesk/ratings/pkg/logger"
)

var (
	defaultOnce  sync.Once
	defaultTable *Table
	defaultErr   error
)

// Default returns the process-wide rating table, loading it on first use.
// The load result (including a load failure) is cached for the lifetime of
// the process.
func Default() (*Table, error) {
	defaultOnce.Do(func() {
		cfg, err := config.Load()
		if err != nil {
			defaultErr = err
			return
		}
		log := logger.New(logger.Config{Level: cfg.LogLevel, Pretty: cfg.LogPretty})
		defaultTable, defaultErr = Load(cfg, log)
	})
	return defaultTable, defaultErr
}
