package storage

import (
	"errors"
	"os"
	"reflect"
	"testing"

	pb "github.com/kernlab/vitals/proto"

	"github.com/golang/protobuf/proto"
)

var (
	errFound = errors.New("profile found")
	errTest  = errors.New("test error")
)

func setupIndex(folder string) *Index {
	return WithDriver(folder, ProfileDriver{})
}

func TestNewIndexWithProfileDriver(t *testing.T) {
	if i := setupIndex("12345"); i.Size() != 0 {
		t.Fatalf("unexpected index size %d", i.Size())
	}
}

func TestIndexLoad(t *testing.T) {
	setupProfiles(t, true, false)
	defer teardownProfiles(t)

	i := setupIndex(testFolder)
	if err := i.Load(); err != nil {
		t.Fatal(err)
	} else if i.Size() != testProfiles {
		t.Fatalf("expected %d profiles, got %d", testProfiles, i.Size())
	}

	for id := uint64(1); id <= testProfiles; id++ {
		testProfile.Id = id
		if m := i.Find(id); m == nil {
			t.Fatalf("expected profile %d not found", id)
		} else if o := m.(*pb.Profile); !sameProfile(*o, testProfile) {
			t.Fatalf("profiles do not match:\nexpected %v\ngot %v", testProfile, *o)
		}
	}
}

func TestIndexLoadWithNoFolder(t *testing.T) {
	i := setupIndex("/ilulzsomuch")
	if err := i.Load(); err == nil {
		t.Fatal("expected error")
	} else if i.Size() != 0 {
		t.Fatalf("unexpected index size %d", i.Size())
	}

	i = setupIndex("/dev/random")
	if err := i.Load(); err == nil {
		t.Fatal("expected error")
	} else if i.Size() != 0 {
		t.Fatalf("unexpected index size %d", i.Size())
	}
}

func TestIndexPathForID(t *testing.T) {
	i := setupIndex("/foo")
	if path := i.pathForID(1234); path != "/foo/1234.dat" {
		t.Fatalf("unpexpected path: %s", path)
	}
}

func TestIndexForEach(t *testing.T) {
	setupProfiles(t, true, false)
	defer teardownProfiles(t)

	i := setupIndex(testFolder)
	if err := i.Load(); err != nil {
		t.Fatal(err)
	} else if i.Size() != testProfiles {
		t.Fatalf("expected %d profiles, got %d", testProfiles, i.Size())
	}

	i.ForEach(func(m proto.Message) error {
		profile := m.(*pb.Profile)
		testProfile.Id = profile.Id
		if !sameProfile(*profile, testProfile) {
			t.Fatal("profiles should match")
		}
		return nil
	})
}

func TestIndexForEachShouldStopLoop(t *testing.T) {
	setupProfiles(t, true, false)
	defer teardownProfiles(t)

	i := setupIndex(testFolder)
	if err := i.Load(); err != nil {
		t.Fatal(err)
	} else if i.Size() != testProfiles {
		t.Fatalf("expected %d profiles, got %d", testProfiles, i.Size())
	}

	if err := i.ForEach(func(m proto.Message) error { return errTest }); err != errTest {
		t.Fatalf("expected %v, got %v", errTest, err)
	}
}

func TestIndexObjects(t *testing.T) {
	setupProfiles(t, true, false)
	defer teardownProfiles(t)

	i := setupIndex(testFolder)
	if err := i.Load(); err != nil {
		t.Fatal(err)
	}

	asSlice := i.Objects()
	inSlice := len(asSlice)
	if inSlice != testProfiles {
		t.Fatalf("expected %d profiles, got %d", testProfiles, inSlice)
	} else if inSlice != i.Size() {
		t.Fatalf("expected %d profiles, got %d", i.Size(), inSlice)
	}

	for _, objInSlice := range asSlice {
		err := i.ForEach(func(m proto.Message) error {
			if reflect.DeepEqual(m, objInSlice) {
				return errFound
			}
			return nil
		})
		if err != errFound {
			t.Fatal("object in slice not found in index")
		}
	}
}

func TestIndexCreateProfile(t *testing.T) {
	setupProfiles(t, false, false)
	defer teardownProfiles(t)

	i := setupIndex(testFolder)
	if err := i.Load(); err != nil {
		t.Fatal(err)
	} else if i.Size() != 0 {
		t.Fatalf("expected %d profiles, got %d", 0, i.Size())
	} else if err := i.Create(&testProfile); err != nil {
		t.Fatal(err)
	} else if i.Size() != 1 {
		t.Fatalf("expected %d profiles, got %d", 1, i.Size())
	} else if m := i.Find(testProfile.Id); m == nil {
		t.Fatalf("expected profile with id %d", testProfile.Id)
	} else if p := m.(*pb.Profile); !sameProfile(*p, testProfile) {
		t.Fatal("profiles should match")
	}
}

func TestIndexCreateProfileWithoutFolder(t *testing.T) {
	i := setupIndex("/ilulzsomuch")
	if err := i.Load(); err == nil {
		t.Fatal("expected error")
	} else if i.Size() != 0 {
		t.Fatalf("unexpected index size %d", i.Size())
	} else if err := i.Create(&testProfile); err == nil {
		t.Fatalf("expected error")
	} else if i.Size() != 0 {
		t.Fatalf("unexpected index size %d", i.Size())
	}
}

func TestIndexCreateProfileWithInvalidId(t *testing.T) {
	setupProfiles(t, true, false)
	defer teardownProfiles(t)

	i := setupIndex(testFolder)
	if err := i.Load(); err != nil {
		t.Fatal(err)
	} else if i.Size() != testProfiles {
		t.Fatalf("expected %d profiles, got %d", testProfiles, i.Size())
	}

	i.NextID(1)
	if err := i.Create(&testProfile); err != ErrInvalidID {
		t.Fatalf("expected invalid id error, got %v", err)
	}
}

func TestIndexUpdateProfile(t *testing.T) {
	setupProfiles(t, true, false)
	defer teardownProfiles(t)

	i := setupIndex(testFolder)
	if err := i.Load(); err != nil {
		t.Fatal(err)
	} else if i.Size() != testProfiles {
		t.Fatalf("expected %d profiles, got %d", testProfiles, i.Size())
	}

	updatedProfile.Id = 4
	if err := i.Update(&updatedProfile); err != nil {
		t.Fatal(err)
	} else if i.Size() != testProfiles {
		t.Fatalf("expected %d profiles, got %d", testProfiles, i.Size())
	} else if m := i.Find(updatedProfile.Id); m == nil {
		t.Fatalf("expected profile with id %d", updatedProfile.Id)
	} else if p := m.(*pb.Profile); !sameProfile(*p, updatedProfile) {
		t.Fatal("profiles should match")
	}
}

func TestIndexUpdateProfileWithInvalidId(t *testing.T) {
	setupProfiles(t, false, false)
	defer teardownProfiles(t)

	i := setupIndex(testFolder)
	if err := i.Load(); err != nil {
		t.Fatal(err)
	} else if i.Size() != 0 {
		t.Fatalf("expected %d profiles, got %d", 0, i.Size())
	}

	updatedProfile.Id = 666
	if err := i.Update(&updatedProfile); err != ErrNotFound {
		t.Fatalf("expected not found error, got %v", err)
	}
}

type faulty struct {
	ProfileDriver
}

func (d faulty) Copy(mdst proto.Message, msrc proto.Message) error {
	return errTest
}

func TestIndexUpdateProfileWithCopyError(t *testing.T) {
	setupProfiles(t, true, false)
	defer teardownProfiles(t)

	updatedProfile.Id = 1
	i := WithDriver(testFolder, faulty{})
	if err := i.Load(); err != nil {
		t.Fatal(err)
	} else if i.Size() != testProfiles {
		t.Fatalf("expected %d profiles, got %d", testProfiles, i.Size())
	} else if err := i.Update(&updatedProfile); err != errTest {
		t.Fatalf("expected the test error, got %v", err)
	}
}

func TestIndexFindProfileWithInvalidId(t *testing.T) {
	setupProfiles(t, true, false)
	defer teardownProfiles(t)

	i := setupIndex(testFolder)
	if err := i.Load(); err != nil {
		t.Fatal(err)
	} else if m := i.Find(666); m != nil {
		t.Fatalf("expected nil, got %v", m)
	}
}

func TestIndexDeleteProfile(t *testing.T) {
	setupProfiles(t, true, false)
	defer teardownProfiles(t)

	i := setupIndex(testFolder)
	if err := i.Load(); err != nil {
		t.Fatal(err)
	}

	for n := 0; n < testProfiles; n++ {
		id := uint64(n + 1)
		if m := i.Delete(id); m == nil {
			t.Fatalf("profile with id %d not found", id)
		} else if deleted := m.(*pb.Profile); deleted.Id != id {
			t.Fatalf("should have deleted profile with id %d, id is %d instead", id, deleted.Id)
		} else if i.Size() != testProfiles-int(id) {
			t.Fatalf("inconsistent index size of %d", i.Size())
		} else if _, err := os.Stat(i.pathForID(id)); err == nil {
			t.Fatalf("profile %d data file was not deleted", id)
		}
	}

	if i.Size() != 0 {
		t.Fatalf("expected empty index, found %d elements instead", i.Size())
	}
}

func TestIndexDeleteProfileWithInvalidId(t *testing.T) {
	setupProfiles(t, false, false)
	defer teardownProfiles(t)

	i := setupIndex(testFolder)
	if err := i.Load(); err != nil {
		t.Fatal(err)
	}

	for n := 0; n < testProfiles; n++ {
		if m := i.Delete(uint64(n + 1)); m != nil {
			t.Fatalf("profile with id %d was not expected to be found", n+1)
		}
	}
}
