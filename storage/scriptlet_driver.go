package storage

import (
	"github.com/golang/protobuf/proto"

	pb "github.com/kernlab/vitals/proto"
)

// ScriptletDriver is the specialized implementation of a
// storage.Driver interface, used to access the internal
// fields of pb.Scriptlet objects in the index.
type ScriptletDriver struct {
}

// Make returns a new pb.Scriptlet object.
func (d ScriptletDriver) Make() proto.Message {
	return new(pb.Scriptlet)
}

// GetID returns the unique identifier of the pb.Scriptlet object.
func (d ScriptletDriver) GetID(m proto.Message) uint64 {
	return m.(*pb.Scriptlet).Id
}

// SetID sets the unique identifier of the pb.Scriptlet object.
func (d ScriptletDriver) SetID(m proto.Message, id uint64) {
	m.(*pb.Scriptlet).Id = id
}

// Copy copies the Name and Code fields from the source
// object to the destination one.
func (d ScriptletDriver) Copy(mdst proto.Message, msrc proto.Message) error {
	dst := mdst.(*pb.Scriptlet)
	src := msrc.(*pb.Scriptlet)
	dst.Name = src.Name
	dst.Code = src.Code
	return nil
}
