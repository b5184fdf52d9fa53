package storage

import (
	pb "github.com/kernlab/vitals/proto"
)

// Scriptlets is a thread safe data structure used to
// index and manage scriptlets.
type Scriptlets struct {
	*Index
}

// LoadScriptlets loads raw protobuf scriptlets from
// the data files found in a given path.
func LoadScriptlets(dataPath string) (*Scriptlets, error) {
	s := &Scriptlets{
		Index: WithDriver(dataPath, ScriptletDriver{}),
	}

	if err := s.Load(); err != nil {
		return nil, err
	}

	return s, nil
}

// Find returns a *pb.Scriptlet object given its identifier,
// or nil if not found.
func (s *Scriptlets) Find(id uint64) *pb.Scriptlet {
	if m := s.Index.Find(id); m != nil {
		return m.(*pb.Scriptlet)
	}
	return nil
}

// Delete removes a scriptlet from the index given its
// identifier, it returns the deleted raw *pb.Scriptlet
// object, or nil if not found.
func (s *Scriptlets) Delete(id uint64) *pb.Scriptlet {
	if m := s.Index.Delete(id); m != nil {
		return m.(*pb.Scriptlet)
	}
	return nil
}
