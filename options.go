package lineindex

import (
	"github.com/npillmayer/lineindex/lines"
	"github.com/npillmayer/lineindex/measure"
	"github.com/npillmayer/lineindex/notify"
)

// Option configures a Document.
type Option func(*options)

type options struct {
	lines    lines.Config
	hub      *notify.Hub
	measurer *measure.Measurer
}

// WithEstimatedLineHeight sets the height of lines which have not been
// measured yet.
func WithEstimatedLineHeight(h float64) Option {
	return func(o *options) {
		o.lines.EstimatedLineHeight = h
	}
}

// WithHub makes a document publish the change set of every edit to hub.
func WithHub(hub *notify.Hub) Option {
	return func(o *options) {
		o.hub = hub
	}
}

// WithMeasurer makes a document measure new and edited lines after every
// edit, and all lines when the text is replaced as a whole.
func WithMeasurer(ms measure.Measurer) Option {
	return func(o *options) {
		o.measurer = &ms
	}
}

func collect(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
