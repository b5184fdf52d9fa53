package wrapper

import (
	"sync"
)

// Context is the error and message channel shared between the service
// and a scriptlet being evaluated inside the VM. Scriptlets signal
// recoverable failures through it instead of raising.
type Context struct {
	sync.RWMutex
	message string
	isError bool
}

// NewContext creates a new, neutral Context object.
func NewContext() *Context {
	return &Context{}
}

// Reset brings the context back to its neutral state.
func (ctx *Context) Reset() {
	ctx.Lock()
	defer ctx.Unlock()
	ctx.message = ""
	ctx.isError = false
}

// Error puts the context in its error state with the given message.
func (ctx *Context) Error(msg string) {
	ctx.Lock()
	defer ctx.Unlock()
	ctx.message = msg
	ctx.isError = true
}

// IsError returns true if the context is in its error state.
func (ctx *Context) IsError() bool {
	ctx.RLock()
	defer ctx.RUnlock()
	return ctx.isError
}

// Message returns the last error message, or an empty string.
func (ctx *Context) Message() string {
	ctx.RLock()
	defer ctx.RUnlock()
	return ctx.message
}
