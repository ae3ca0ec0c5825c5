// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parametric

import "sync"

// Model owns a parameter value and its latest build [Result], and
// regenerates in the background when the parameters change. Concurrent
// rebuild requests are resolved newest-wins: a build that finishes after
// a newer one was requested is discarded, successful results are swapped
// in atomically, and a failed build leaves the previous result in place.
type Model[P Mesher[P]] struct {
	// OnApply, if set, is called after a new result is swapped in.
	// It may be called from the build goroutine.
	OnApply func(res *Result)

	// OnError, if set, is called when a build fails; the previous
	// result remains current. It may be called from the build goroutine.
	OnError func(err error)

	mu         sync.Mutex
	params     P
	current    *Result
	generation uint64
	pending    string
	inflight   int

	// buildFunc runs one build pass; replaceable in tests.
	buildFunc func(params P) (*Result, error)
}

// NewModel returns a model over the given parameters. No build is run
// until [Model.Update] or [Model.Rebuild] is called.
func NewModel[P Mesher[P]](params P) *Model[P] {
	return &Model[P]{params: params, buildFunc: Build[P]}
}

// Params returns the live parameter value. Mutate it and call
// [Model.Update] to regenerate.
func (md *Model[P]) Params() P {
	return md.params
}

// Current returns the latest applied result, nil before the first
// successful build.
func (md *Model[P]) Current() *Result {
	md.mu.Lock()
	defer md.mu.Unlock()
	return md.current
}

// Busy reports whether any build is still in flight.
func (md *Model[P]) Busy() bool {
	md.mu.Lock()
	defer md.mu.Unlock()
	return md.inflight > 0
}

// Update requests a background rebuild if the parameters have changed
// since the last applied or requested build, returning whether a build
// was started. The parameters are cloned under the lock, so the caller
// may keep mutating them immediately.
func (md *Model[P]) Update() bool {
	md.mu.Lock()
	fp := md.params.Fingerprint()
	if md.inflight > 0 && fp == md.pending {
		md.mu.Unlock()
		return false
	}
	if md.inflight == 0 && md.current != nil && fp == md.current.Fingerprint {
		md.mu.Unlock()
		return false
	}
	md.generation++
	gen := md.generation
	md.pending = fp
	md.inflight++
	clone := md.params.Clone()
	bf := md.buildFunc
	md.mu.Unlock()

	go func() {
		res, err := bf(clone)
		md.finish(gen, res, err)
	}()
	return true
}

// Rebuild builds synchronously on the calling goroutine, regardless of
// fingerprint, and returns the build's result or error. The result is
// applied through the same newest-wins path as background builds.
func (md *Model[P]) Rebuild() (*Result, error) {
	md.mu.Lock()
	md.generation++
	gen := md.generation
	md.pending = md.params.Fingerprint()
	md.inflight++
	clone := md.params.Clone()
	bf := md.buildFunc
	md.mu.Unlock()

	res, err := bf(clone)
	md.finish(gen, res, err)
	return res, err
}

// finish applies one completed build: discarded if a newer build was
// requested meanwhile, reported via OnError on failure, otherwise
// swapped in as current and reported via OnApply.
func (md *Model[P]) finish(gen uint64, res *Result, err error) {
	md.mu.Lock()
	md.inflight--
	if gen != md.generation { // superseded
		md.mu.Unlock()
		return
	}
	if err != nil {
		onErr := md.OnError
		md.mu.Unlock()
		if onErr != nil {
			onErr(err)
		}
		return
	}
	md.current = res
	onApply := md.OnApply
	md.mu.Unlock()
	if onApply != nil {
		onApply(res)
	}
}
