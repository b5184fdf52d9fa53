package service

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kernlab/vitals/backend"
	"github.com/kernlab/vitals/storage"

	pb "github.com/kernlab/vitals/proto"

	"github.com/golang/protobuf/proto"
	"golang.org/x/net/context"
)

// Version is the current version of the service.
const Version = "1.0.0"

// Service exposes the health analytics kernels, the profiles storage
// and the scriptlets runtime over gRPC.
type Service struct {
	started    time.Time
	pid        uint64
	uid        uint64
	argv       []string
	profiles   *storage.Profiles
	scriptlets *storage.Scriptlets
	cache      *compiledCache
}

// New loads the profiles and scriptlets from the data path, compiles
// every stored scriptlet and returns a new *Service object.
func New(dataPath string) (*Service, error) {
	profiles, err := storage.LoadProfiles(filepath.Join(dataPath, "profiles"))
	if err != nil {
		return nil, err
	}

	scriptlets, err := storage.LoadScriptlets(filepath.Join(dataPath, "scriptlets"))
	if err != nil {
		return nil, err
	}

	cache := newCache()
	err = scriptlets.ForEach(func(m proto.Message) error {
		scriptlet := m.(*pb.Scriptlet)
		compiled, err := compileScriptlet(scriptlet)
		if err != nil {
			return fmt.Errorf("error compiling scriptlet %d: %s", scriptlet.Id, err)
		}
		cache.Add(scriptlet.Id, compiled)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &Service{
		started:    time.Now(),
		pid:        uint64(os.Getpid()),
		uid:        uint64(os.Getuid()),
		argv:       os.Args,
		profiles:   profiles,
		scriptlets: scriptlets,
		cache:      cache,
	}, nil
}

// NumProfiles returns the number of profiles currently loaded by the service.
func (s *Service) NumProfiles() int {
	return s.profiles.Size()
}

// NumScriptlets returns the number of scriptlets currently loaded by the service.
func (s *Service) NumScriptlets() int {
	return s.scriptlets.Size()
}

// Info returns a *pb.ServerInfo object with runtime information about
// the service.
func (s *Service) Info(ctx context.Context, dummy *pb.Empty) (*pb.ServerInfo, error) {
	return &pb.ServerInfo{
		Version:    Version,
		Uptime:     uint64(time.Since(s.started).Seconds()),
		Pid:        s.pid,
		Uid:        s.uid,
		Argv:       s.argv,
		Profiles:   uint64(s.profiles.Size()),
		Scriptlets: uint64(s.scriptlets.Size()),
		Backend:    backend.Name(),
	}, nil
}
