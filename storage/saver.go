package storage

import (
	"fmt"
	"io/ioutil"

	"github.com/golang/protobuf/proto"
)

// Flush serializes a generic protobuf message to disk.
func Flush(m proto.Message, fileName string) error {
	data, err := proto.Marshal(m)
	if err != nil {
		return fmt.Errorf("error while serializing message to %s: %s", fileName, err)
	} else if err = ioutil.WriteFile(fileName, data, 0644); err != nil {
		return fmt.Errorf("error while saving message to %s: %s", fileName, err)
	}
	return nil
}
