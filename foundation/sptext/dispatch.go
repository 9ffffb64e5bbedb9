// File: dispatch.go
// Title: Method Dispatcher
// Description: Resolves a method name in the registry, binds the loose
//              arguments into a typed call and invokes it. Lookup is exact
//              and case-sensitive; unknown names always fail.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial executor implementation
// - 2026-10-18 v0.2.0: Synchronous in-process dispatch onto stringx

package sptext

import (
	sperrors "github.com/msto63/sptext/foundation/core/errors"
	mdwlog "github.com/msto63/sptext/foundation/core/log"
)

// Options configures dispatcher behavior
type Options struct {
	Logger *mdwlog.Logger // nil uses the process default logger at call time
}

// Dispatcher routes method names to the registered text functions. It holds
// no mutable state and is safe for concurrent use.
type Dispatcher struct {
	logger *mdwlog.Logger
}

// New creates a dispatcher
func New(opts Options) *Dispatcher {
	d := &Dispatcher{}
	if opts.Logger != nil {
		d.logger = opts.Logger.WithField("component", "sptext-dispatcher")
	}
	return d
}

var defaultDispatcher = New(Options{})

// Dispatch invokes the method registered under name with args using the
// default dispatcher.
//
// Example:
//
//	v, err := sptext.Dispatch("trim", "/dir1/dir2/", "/") // "dir1/dir2", nil
func Dispatch(name string, args ...any) (any, error) {
	return defaultDispatcher.Dispatch(name, args...)
}

// Bind resolves name and binds args without invoking, using the default
// dispatcher.
func Bind(name string, args ...any) (Call, error) {
	return defaultDispatcher.Bind(name, args...)
}

// Dispatch invokes the method registered under name with args. On failure
// the result is nil.
func (d *Dispatcher) Dispatch(name string, args ...any) (any, error) {
	call, err := d.Bind(name, args...)
	if err != nil {
		return nil, err
	}

	result := Invoke(call)

	if logger := d.log(); logger.IsLevelEnabled(mdwlog.LevelDebug) {
		logger.Debug("method dispatched", mdwlog.Fields{
			"method":   name,
			"argCount": len(args),
		})
	}
	return result, nil
}

// Bind resolves name and converts args into the method's typed call.
// Missing trailing arguments are treated as absent.
func (d *Dispatcher) Bind(name string, args ...any) (Call, error) {
	method, ok := methods[name]
	if !ok {
		err := sperrors.UnknownMethod(sperrors.ModuleSptext, name)
		d.log().LogError(err)
		return nil, err
	}

	call, err := method.bind(args)
	if err != nil {
		d.log().LogError(err)
		return nil, err
	}
	return call, nil
}

func (d *Dispatcher) log() *mdwlog.Logger {
	if d.logger != nil {
		return d.logger
	}
	return mdwlog.GetDefault()
}
