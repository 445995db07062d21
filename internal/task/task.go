// Package task runs blocking work off the UI goroutine and hands the outcome
// back to it.
package task

import "fyne.io/fyne/v2"

// Executor decides where work and continuations run.
type Executor interface {
	// Go runs fn off the UI goroutine.
	Go(fn func())
	// Post schedules fn on the UI goroutine.
	Post(fn func())
}

// Result carries either the value produced by a task or its error.
type Result[T any] struct {
	Value T
	Err   error
}

func (r Result[T]) OK() bool {
	return r.Err == nil
}

// Run executes fn via ex.Go and delivers its result to done via ex.Post.
// There is no cancellation: once started, fn runs to completion.
func Run[T any](ex Executor, fn func() (T, error), done func(Result[T])) {
	ex.Go(func() {
		value, err := fn()
		res := Result[T]{Value: value, Err: err}
		ex.Post(func() {
			done(res)
		})
	})
}

// Fyne runs work on goroutines and continuations through fyne.Do, so
// continuations never interleave with other UI callbacks.
type Fyne struct{}

func (Fyne) Go(fn func()) {
	go fn()
}

func (Fyne) Post(fn func()) {
	fyne.Do(fn)
}

// Inline runs everything on the calling goroutine.
type Inline struct{}

func (Inline) Go(fn func())   { fn() }
func (Inline) Post(fn func()) { fn() }
