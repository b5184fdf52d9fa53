package storage

import (
	pb "github.com/kernlab/vitals/proto"
)

// Profiles is a thread safe data structure used to
// index and manage health profiles.
type Profiles struct {
	*Index
}

// LoadProfiles loads raw protobuf profiles from
// the data files found in a given path.
func LoadProfiles(dataPath string) (*Profiles, error) {
	p := &Profiles{
		Index: WithDriver(dataPath, ProfileDriver{}),
	}

	if err := p.Load(); err != nil {
		return nil, err
	}

	return p, nil
}

// Find returns a *pb.Profile object given its identifier,
// or nil if not found.
func (p *Profiles) Find(id uint64) *pb.Profile {
	if m := p.Index.Find(id); m != nil {
		return m.(*pb.Profile)
	}
	return nil
}

// Delete removes a profile from the index given its
// identifier, it returns the deleted raw *pb.Profile
// object, or nil if not found.
func (p *Profiles) Delete(id uint64) *pb.Profile {
	if m := p.Index.Delete(id); m != nil {
		return m.(*pb.Profile)
	}
	return nil
}
