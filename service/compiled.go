package service

import (
	"encoding/json"
	"errors"
	"sync"

	"github.com/kernlab/vitals/storage"
	"github.com/kernlab/vitals/wrapper"

	pb "github.com/kernlab/vitals/proto"

	"github.com/robertkrimen/otto"
)

type compiled struct {
	sync.Mutex
	vm        *otto.Otto
	scriptlet *pb.Scriptlet
}

func (c *compiled) Scriptlet() *pb.Scriptlet {
	return c.scriptlet
}

// RunWithContext evaluates the run entry point of the scriptlet with
// the given arguments, giving it access to the profiles storage and
// the kernels through its globals. The return value is encoded as JSON.
func (c *compiled) RunWithContext(profiles *storage.Profiles, args []string) (*wrapper.Context, []byte, error) {
	var ret otto.Value
	var err error

	ctx := wrapper.NewContext()
	func() {
		c.Lock()
		defer c.Unlock()

		// define context and globals
		c.vm.Set("profiles", wrapper.WrapProfiles(profiles))
		c.vm.Set("kernels", wrapper.WrapKernels(ctx, profiles))
		c.vm.Set("ctx", ctx)

		callArgs := make([]interface{}, len(args))
		for i, arg := range args {
			callArgs[i] = arg
		}

		ret, err = c.vm.Call("run", nil, callArgs...)
	}()

	if err != nil {
		return ctx, nil, err
	} else if ctx.IsError() {
		return ctx, nil, errors.New(ctx.Message())
	}

	// TODO: find a more efficient way to transparently
	// encode scriptlet return values, json roundtripping
	// every call is not the optimal approach.
	obj, _ := ret.Export()
	raw, _ := json.Marshal(obj)

	return ctx, raw, nil
}
