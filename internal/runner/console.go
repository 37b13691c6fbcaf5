package runner

import (
	"errors"
	"strings"

	"github.com/dop251/goja"
)

// console is the substitute console object handed to executed code.
// Every method call appends exactly one record.
type console struct {
	vm        *goja.Runtime
	stringify goja.Callable
	toString  goja.Callable
	records   []Record
}

var (
	errNoStringify = errors.New("JSON.stringify is not callable")
	errNoString    = errors.New("String is not callable")
)

// newConsole captures the runtime's JSON.stringify and String before user
// code can rebind them.
func newConsole(vm *goja.Runtime) (*console, error) {
	stringify, ok := goja.AssertFunction(vm.Get("JSON").ToObject(vm).Get("stringify"))
	if !ok {
		return nil, errNoStringify
	}
	toString, ok := goja.AssertFunction(vm.Get("String"))
	if !ok {
		return nil, errNoString
	}
	return &console{vm: vm, stringify: stringify, toString: toString}, nil
}

// object builds the JS value exposing log, error, warn and info.
func (c *console) object() (*goja.Object, error) {
	obj := c.vm.NewObject()
	for _, kind := range Kinds {
		if err := obj.Set(string(kind), c.method(kind)); err != nil {
			return nil, err
		}
	}
	return obj, nil
}

func (c *console) method(kind Kind) func(goja.FunctionCall) goja.Value {
	return func(call goja.FunctionCall) goja.Value {
		parts := make([]string, len(call.Arguments))
		for i, arg := range call.Arguments {
			parts[i] = c.serialize(arg)
		}
		c.records = append(c.records, Record{Kind: kind, Message: strings.Join(parts, " ")})
		return goja.Undefined()
	}
}

// serialize renders one argument: objects (arrays and null included) as
// JSON indented by two spaces, everything else through String(arg).
func (c *console) serialize(arg goja.Value) string {
	if arg == nil {
		arg = goja.Undefined()
	}
	if goja.IsNull(arg) {
		return "null"
	}
	obj, ok := arg.(*goja.Object)
	if !ok {
		return c.call(c.toString, arg).String()
	}
	if _, callable := goja.AssertFunction(obj); callable {
		return c.call(c.toString, obj).String()
	}

	out := c.call(c.stringify, obj, goja.Null(), c.vm.ToValue(2))
	if goja.IsUndefined(out) {
		// Array.prototype.join renders undefined as an empty string.
		return ""
	}
	return out.String()
}

// call invokes fn and rethrows any failure into the executing script,
// e.g. TypeError on cyclic values.
func (c *console) call(fn goja.Callable, args ...goja.Value) goja.Value {
	out, err := fn(goja.Undefined(), args...)
	if err != nil {
		var overflow *goja.StackOverflowError
		if errors.As(err, &overflow) {
			// Not catchable by the script; unwinds to Execute.
			panic(err)
		}
		var ex *goja.Exception
		if errors.As(err, &ex) {
			panic(ex.Value())
		}
		panic(c.vm.NewGoError(err))
	}
	return out
}
