// Package sink receives the output of each detection pass.
package sink

import (
	"errors"

	"github.com/ironsheep/color-blob-mcp/internal/blob"
)

// Sink is a destination for detection results.
//
// Put must not retain or modify original, mask, or regions after it returns.
type Sink interface {
	Put(original, mask blob.Frame, regions []blob.Region) error
	Close() error
}

// Func adapts a plain function to a Sink with a no-op Close.
type Func func(original, mask blob.Frame, regions []blob.Region) error

// Put calls fn.
func (fn Func) Put(original, mask blob.Frame, regions []blob.Region) error {
	return fn(original, mask, regions)
}

// Close does nothing.
func (fn Func) Close() error { return nil }

// Multi fans each result out to every sink in order.
type Multi []Sink

// Put forwards to every sink, even after a failure, and joins the errors.
func (m Multi) Put(original, mask blob.Frame, regions []blob.Region) error {
	var errs []error
	for _, s := range m {
		if err := s.Put(original, mask, regions); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Close closes every sink and joins the errors.
func (m Multi) Close() error {
	var errs []error
	for _, s := range m {
		if err := s.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
