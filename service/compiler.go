package service

import (
	"fmt"

	pb "github.com/kernlab/vitals/proto"

	"github.com/robertkrimen/otto"
)

// compileScriptlet evaluates the code of a raw scriptlet in a fresh vm
// and makes sure it defines a run entry point.
func compileScriptlet(scriptlet *pb.Scriptlet) (*compiled, error) {
	vm := otto.New()
	if _, err := vm.Run(scriptlet.Code); err != nil {
		return nil, err
	}

	if v, err := vm.Get("run"); err != nil {
		return nil, err
	} else if !v.IsFunction() {
		return nil, fmt.Errorf("scriptlet does not define a run function")
	}

	return &compiled{
		scriptlet: scriptlet,
		vm:        vm,
	}, nil
}
