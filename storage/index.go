package storage

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/golang/protobuf/proto"

	"github.com/evilsocket/islazy/log"
)

var (
	// ErrInvalidID is returned when the system detects a collision of
	// identifiers, usually due to multiple vitalsd instances running on
	// the same data path.
	ErrInvalidID = errors.New("identifier is not unique")
	// ErrNotFound is returned when the storage manager can't find an
	// object mapped to the queried identifier.
	ErrNotFound = errors.New("object not found")

	pathSep = string(os.PathSeparator)
)

// Index is a generic data structure used to map any type of protobuf
// encoded message to unique integer identifiers and persist them on
// disk transparently.
type Index struct {
	sync.RWMutex
	dataPath string
	index    map[uint64]proto.Message
	nextID   uint64
	driver   Driver
}

// dataPath already carries its trailing separator, WithDriver takes
// care of that, so a plain concatenation is enough here.
func (i *Index) pathForID(id uint64) string {
	return i.dataPath + strconv.FormatUint(id, 10) + DatFileExt
}

// WithDriver creates a new Index object with the specified storage.Driver
// used to handle the specifics of the protobuf messages being handled
// by this instance of the index.
func WithDriver(dataPath string, driver Driver) *Index {
	if !strings.HasSuffix(dataPath, pathSep) {
		dataPath += pathSep
	}
	return &Index{
		dataPath: dataPath,
		index:    make(map[uint64]proto.Message),
		nextID:   1,
		driver:   driver,
	}
}

// Load enumerates files in the data folder while deserializing them
// and mapping them into the index by their identifiers.
func (i *Index) Load() error {
	i.Lock()
	defer i.Unlock()

	absPath, files, err := ListPath(i.dataPath)
	if err != nil {
		return err
	}

	i.dataPath = absPath + pathSep
	i.nextID = 1
	if nfiles := len(files); nfiles > 0 {
		log.Info("loading %d data files from %s ...", nfiles, i.dataPath)
		for _, fileName := range files {
			record := i.driver.Make()
			if err := Load(fileName, record); err != nil {
				return err
			}
			recID := i.driver.GetID(record)
			i.index[recID] = record
			if recID >= i.nextID {
				i.nextID = recID + 1
			}
		}
	}

	return nil
}

// ForEach executes a callback passing as argument every element of the
// index, it interrupts the loop if the callback returns an error, the
// same error will be returned.
func (i *Index) ForEach(cb func(record proto.Message) error) error {
	i.RLock()
	defer i.RUnlock()
	for _, record := range i.index {
		if err := cb(record); err != nil {
			return err
		}
	}
	return nil
}

// Objects returns a list of the proto.Message objects stored in this index.
func (i *Index) Objects() []proto.Message {
	i.RLock()
	defer i.RUnlock()

	asSlice := make([]proto.Message, len(i.index))
	idx := 0
	for _, record := range i.index {
		asSlice[idx] = record
		idx++
	}
	return asSlice
}

// Size returns the number of elements stored in this index.
func (i *Index) Size() int {
	i.RLock()
	defer i.RUnlock()
	return len(i.index)
}

// NextID sets the value of the integer identifier to use for the next
// record. NOTE: This method is just for internal use and the only reason
// why it's exposed is because of unit tests, do not use.
func (i *Index) NextID(next uint64) {
	i.Lock()
	defer i.Unlock()
	i.nextID = next
}

// Create stores the protobuf message in the index, setting its
// identifier to a new, unique value. Once created the object is kept
// in memory and persisted on disk.
func (i *Index) Create(record proto.Message) error {
	i.Lock()
	defer i.Unlock()

	// make sure the id is unique and that we
	// are able to create the data file
	recID := i.nextID
	i.driver.SetID(record, recID)
	if _, found := i.index[recID]; found {
		return ErrInvalidID
	} else if err := Flush(record, i.pathForID(recID)); err != nil {
		return err
	}

	i.nextID++
	i.index[recID] = record

	return nil
}

// Update updates the contents of a stored object with the ones of a
// raw protobuf message given its identifier.
func (i *Index) Update(record proto.Message) error {
	i.Lock()
	defer i.Unlock()

	recID := i.driver.GetID(record)
	stored, found := i.index[recID]
	if !found {
		return ErrNotFound
	} else if err := i.driver.Copy(stored, record); err != nil {
		return err
	}
	return Flush(stored, i.pathForID(recID))
}

// Find returns the instance of a stored object given its identifier,
// or nil if the object can not be found.
func (i *Index) Find(id uint64) proto.Message {
	i.RLock()
	defer i.RUnlock()

	record, found := i.index[id]
	if found {
		return record
	}
	return nil
}

// Delete removes a stored object from the index given its identifier,
// it will return the removed object itself if found, or nil.
func (i *Index) Delete(id uint64) proto.Message {
	i.Lock()
	defer i.Unlock()

	record, found := i.index[id]
	if !found {
		return nil
	}

	delete(i.index, id)

	os.Remove(i.pathForID(id))

	return record
}
