// Package effects is the capability surface the action layer consumes for
// user feedback: toast, haptic, tick sound, confetti and copy-to-clipboard.
// Every capability is optional; the constructor fills explicit defaults so
// consumers never nil-check or recover around a missing callback.
package effects

import (
	"errors"
	"sync"
)

// ErrNoClipboard is returned by the default CopyText capability.
var ErrNoClipboard = errors.New("effects: no clipboard capability")

type Options struct {
	Toast    func(msg string)
	Haptic   func()
	Tick     func()
	Confetti func()
	CopyText func(text string) error
}

// Context owns the feedback capabilities for one app instance. It has an
// explicit lifecycle: after Dispose all capabilities degrade to no-ops, so a
// late debounce timer or subscriber can fire feedback harmlessly during
// shutdown.
type Context struct {
	mu       sync.Mutex
	disposed bool

	toast    func(string)
	haptic   func()
	tick     func()
	confetti func()
	copyText func(string) error
}

func New(o Options) *Context {
	c := &Context{
		toast:    o.Toast,
		haptic:   o.Haptic,
		tick:     o.Tick,
		confetti: o.Confetti,
		copyText: o.CopyText,
	}
	if c.toast == nil {
		c.toast = func(string) {}
	}
	if c.haptic == nil {
		c.haptic = func() {}
	}
	if c.tick == nil {
		c.tick = func() {}
	}
	if c.confetti == nil {
		c.confetti = func() {}
	}
	if c.copyText == nil {
		c.copyText = func(string) error { return ErrNoClipboard }
	}
	return c
}

func (c *Context) Dispose() {
	c.mu.Lock()
	c.disposed = true
	c.mu.Unlock()
}

func (c *Context) alive() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return !c.disposed
}

// run invokes fn, swallowing panics: a throwing feedback callback never
// aborts the action that fired it.
func run(fn func()) {
	defer func() { _ = recover() }()
	fn()
}

func (c *Context) Toast(msg string) {
	if c == nil || !c.alive() {
		return
	}
	run(func() { c.toast(msg) })
}

func (c *Context) Haptic() {
	if c == nil || !c.alive() {
		return
	}
	run(c.haptic)
}

func (c *Context) Tick() {
	if c == nil || !c.alive() {
		return
	}
	run(c.tick)
}

func (c *Context) Confetti() {
	if c == nil || !c.alive() {
		return
	}
	run(c.confetti)
}

func (c *Context) CopyText(text string) error {
	if c == nil || !c.alive() {
		return ErrNoClipboard
	}
	err := ErrNoClipboard
	run(func() { err = c.copyText(text) })
	return err
}
