// Package runner executes JavaScript source with a substitute console and
// captures every console call as a Record.
package runner

import (
	"errors"
	"fmt"

	"github.com/dop251/goja"
)

// consoleParam is the only name bound into the executed function's scope.
const consoleParam = "console"

// maxCallStackSize bounds JS recursion so runaway recursion ends in a
// RangeError-style record instead of exhausting memory.
const maxCallStackSize = 10000

// stackOverflowMessage matches the message hosts report for exceeding the call stack.
const stackOverflowMessage = "Maximum call stack size exceeded"

var (
	errNotConstructor = errors.New("Function is not a constructor")
	errNotCallable    = errors.New("compiled source is not callable")
)

// Execute runs source as the body of a function taking a single console
// parameter and returns the captured records. It never fails: a compile or
// runtime error becomes one trailing error record.
//
// Execution is synchronous with no time bound; source that never terminates
// blocks the calling goroutine forever.
func Execute(source string) (result Result) {
	vm := goja.New()
	vm.SetMaxCallStackSize(maxCallStackSize)

	c, err := newConsole(vm)
	if err != nil {
		return Result{Records: []Record{{Kind: KindError, Message: err.Error()}}}
	}

	defer func() {
		if r := recover(); r != nil {
			msg := fmt.Sprint(r)
			if err, ok := r.(error); ok {
				msg = errorMessage(vm, err)
			}
			c.records = append(c.records, Record{Kind: KindError, Message: msg})
			result = Result{Records: c.records}
		}
	}()

	if err := run(vm, c, source); err != nil {
		c.records = append(c.records, Record{Kind: KindError, Message: errorMessage(vm, err)})
	}
	return Result{Records: c.records}
}

func run(vm *goja.Runtime, c *console, source string) error {
	obj, err := c.object()
	if err != nil {
		return err
	}

	ctor, ok := goja.AssertConstructor(vm.Get("Function"))
	if !ok {
		return errNotConstructor
	}
	compiled, err := ctor(nil, vm.ToValue(consoleParam), vm.ToValue(source))
	if err != nil {
		return err
	}
	fn, ok := goja.AssertFunction(compiled)
	if !ok {
		return errNotCallable
	}

	_, err = fn(goja.Undefined(), obj)
	return err
}

// errorMessage mirrors `e instanceof Error ? e.message : String(e)`.
func errorMessage(vm *goja.Runtime, err error) string {
	var overflow *goja.StackOverflowError
	if errors.As(err, &overflow) {
		return stackOverflowMessage
	}
	var ex *goja.Exception
	if !errors.As(err, &ex) {
		return err.Error()
	}
	val := ex.Value()
	if val == nil {
		return ex.Error()
	}
	if obj, ok := val.(*goja.Object); ok {
		if errorCtor, ok := vm.Get("Error").(*goja.Object); ok && vm.InstanceOf(obj, errorCtor) {
			if msg := obj.Get("message"); msg != nil {
				return msg.String()
			}
			return ""
		}
	}
	return val.String()
}
