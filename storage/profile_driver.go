package storage

import (
	"github.com/golang/protobuf/proto"

	pb "github.com/kernlab/vitals/proto"
)

// ProfileDriver is the specialized implementation of a
// storage.Driver interface, used to access the internal
// fields of pb.Profile objects in the index.
type ProfileDriver struct {
}

// Make returns a new pb.Profile object.
func (d ProfileDriver) Make() proto.Message {
	return new(pb.Profile)
}

// GetID returns the unique identifier of the pb.Profile object.
func (d ProfileDriver) GetID(m proto.Message) uint64 {
	return m.(*pb.Profile).Id
}

// SetID sets the unique identifier of the pb.Profile object.
func (d ProfileDriver) SetID(m proto.Message, id uint64) {
	m.(*pb.Profile).Id = id
}

// Copy copies the Meta and Data fields, if filled, from the
// source object to the destination one.
func (d ProfileDriver) Copy(mdst proto.Message, msrc proto.Message) error {
	dst := mdst.(*pb.Profile)
	src := msrc.(*pb.Profile)
	if src.Meta != nil {
		dst.Meta = src.Meta
	}
	if src.Data != nil {
		dst.Data = src.Data
	}
	return nil
}
