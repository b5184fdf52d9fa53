package service

import (
	"fmt"

	pb "github.com/kernlab/vitals/proto"

	"golang.org/x/net/context"
)

func errScriptletResponse(format string, args ...interface{}) *pb.ScriptletResponse {
	return &pb.ScriptletResponse{Success: false, Msg: fmt.Sprintf(format, args...)}
}

func errCallResponse(format string, args ...interface{}) *pb.CallResponse {
	return &pb.CallResponse{Success: false, Msg: fmt.Sprintf(format, args...)}
}

// CreateScriptlet compiles and stores a raw *pb.Scriptlet object. If
// successful, the identifier of the newly created scriptlet is returned
// as the response message.
func (s *Service) CreateScriptlet(ctx context.Context, scriptlet *pb.Scriptlet) (*pb.ScriptletResponse, error) {
	if compiled, err := compileScriptlet(scriptlet); err != nil {
		return errScriptletResponse("%s", err), nil
	} else if err := s.scriptlets.Create(scriptlet); err != nil {
		return errScriptletResponse("%s", err), nil
	} else {
		s.cache.Add(scriptlet.Id, compiled)
	}
	return &pb.ScriptletResponse{Success: true, Msg: fmt.Sprintf("%d", scriptlet.Id)}, nil
}

// UpdateScriptlet updates the contents of a scriptlet with the ones of
// a raw *pb.Scriptlet object given its identifier.
func (s *Service) UpdateScriptlet(ctx context.Context, scriptlet *pb.Scriptlet) (*pb.ScriptletResponse, error) {
	if compiled, err := compileScriptlet(scriptlet); err != nil {
		return errScriptletResponse("%s", err), nil
	} else if err := s.scriptlets.Update(scriptlet); err != nil {
		return errScriptletResponse("%s", err), nil
	} else {
		s.cache.Add(scriptlet.Id, compiled)
	}
	return &pb.ScriptletResponse{Success: true}, nil
}

// ReadScriptlet returns a raw *pb.Scriptlet object given its identifier.
func (s *Service) ReadScriptlet(ctx context.Context, query *pb.ById) (*pb.ScriptletResponse, error) {
	scriptlet := s.scriptlets.Find(query.Id)
	if scriptlet == nil {
		return errScriptletResponse("scriptlet %d not found.", query.Id), nil
	}
	return &pb.ScriptletResponse{Success: true, Scriptlet: scriptlet}, nil
}

// DeleteScriptlet removes a scriptlet from the storage given its identifier.
func (s *Service) DeleteScriptlet(ctx context.Context, query *pb.ById) (*pb.ScriptletResponse, error) {
	if scriptlet := s.scriptlets.Delete(query.Id); scriptlet == nil {
		return errScriptletResponse("scriptlet %d not found.", query.Id), nil
	}
	s.cache.Del(query.Id)
	return &pb.ScriptletResponse{Success: true}, nil
}

// Run executes a compiled scriptlet given its identifier and a list of
// string arguments, returning its return value encoded as JSON.
func (s *Service) Run(ctx context.Context, call *pb.Call) (*pb.CallResponse, error) {
	compiled := s.cache.Get(call.ScriptletId)
	if compiled == nil {
		return errCallResponse("scriptlet %d not found.", call.ScriptletId), nil
	}

	_, raw, err := compiled.RunWithContext(s.profiles, call.Args)
	if err != nil {
		return errCallResponse("error while running scriptlet %d: %s", call.ScriptletId, err), nil
	}

	return &pb.CallResponse{
		Success: true,
		Json:    string(raw),
	}, nil
}
