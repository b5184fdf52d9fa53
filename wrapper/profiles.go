package wrapper

import (
	pb "github.com/kernlab/vitals/proto"
	"github.com/kernlab/vitals/storage"

	"github.com/golang/protobuf/proto"
)

// Profiles is an object that wraps *storage.Profiles in order to give
// access to those profiles to scriptlets during execution.
type Profiles struct {
	profiles *storage.Profiles
}

// WrapProfiles creates a Profiles wrapper around a *storage.Profiles object.
func WrapProfiles(profiles *storage.Profiles) Profiles {
	return Profiles{
		profiles: profiles,
	}
}

// Find returns a wrapped Profile given its identifier.
// If not found, the resulting profile will result as null
// (profile.IsNull() will be true).
func (w Profiles) Find(id uint64) *Profile {
	return WrapProfile(w.profiles.Find(id))
}

// All returns a wrapped list of the profiles in the current storage.
func (w Profiles) All() []*Profile {
	wrapped := make([]*Profile, w.profiles.Size())
	idx := 0
	w.profiles.ForEach(func(m proto.Message) error {
		wrapped[idx] = WrapProfile(m.(*pb.Profile))
		idx++
		return nil
	})
	return wrapped
}

// AllBut returns a wrapped list of the profiles in the current storage
// but the one specified.
func (w Profiles) AllBut(exclude *Profile) []*Profile {
	// NOTE: this preallocation assumes the excluded element will
	// be found in the list of profiles.
	wrapped := make([]*Profile, w.profiles.Size()-1)
	idx := 0
	w.profiles.ForEach(func(m proto.Message) error {
		profile := m.(*pb.Profile)
		if profile.Id != exclude.profile.Id {
			wrapped[idx] = WrapProfile(profile)
			idx++
		}
		return nil
	})
	return wrapped
}
