package list

import (
	"github.com/benz9527/xlist/lib/infra"
	"github.com/benz9527/xlist/lib/xlog"
)

type listOption struct {
	logger    xlog.XLogger
	chunkSize uint32
}

type ListOption func(*listOption) error

// WithListLogger sets the logger of the structural events.
// The default logger drops everything.
func WithListLogger(logger xlog.XLogger) ListOption {
	return func(opt *listOption) error {
		if logger == nil {
			return infra.NewErrorStack("[linked-list] nil logger")
		}
		opt.logger = logger
		return nil
	}
}

// WithArenaChunkSize sets how many nodes are allocated at once.
func WithArenaChunkSize(size uint32) ListOption {
	return func(opt *listOption) error {
		if size < minArenaChunkSize {
			return infra.NewErrorStack("[linked-list] arena chunk size too small")
		}
		opt.chunkSize = size
		return nil
	}
}
