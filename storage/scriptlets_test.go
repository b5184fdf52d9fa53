package storage

import (
	"io/ioutil"
	"os"
	"testing"

	pb "github.com/kernlab/vitals/proto"

	"github.com/golang/protobuf/proto"
)

var (
	testCorruptedScriptlet = testFolder + "/666.dat"
	testScriptlet          = pb.Scriptlet{
		Id:   666,
		Name: "score",
		Code: "function findSimilar(id, threshold) { return ctx.error('nope'); }",
	}
	updatedScriptlet = pb.Scriptlet{
		Id:   555,
		Name: "better_score",
		Code: "function findSimilar(id, threshold) { return []; }",
	}
)

func sameScriptlet(a, b pb.Scriptlet) bool {
	return a.Id == b.Id && a.Name == b.Name && a.Code == b.Code
}

func setupScriptlets(t testing.TB, withValid bool, withCorrupted bool) {
	// start clean
	teardownScriptlets(t)

	if err := os.MkdirAll(testFolder, 0755); err != nil {
		t.Fatalf("Error creating %s: %s", testFolder, err)
	}

	dummy, err := LoadScriptlets(testFolder)
	if err != nil {
		t.Fatal(err)
	}

	if withValid {
		for i := 1; i <= testProfiles; i++ {
			if err := dummy.Create(&testScriptlet); err != nil {
				t.Fatalf("Error creating scriptlet: %s", err)
			}
		}
	}

	if withCorrupted {
		if err := ioutil.WriteFile(testCorruptedScriptlet, []byte("i'm corrupted inside"), 0755); err != nil {
			t.Fatal(err)
		}
	}
}

func teardownScriptlets(t testing.TB) {
	if err := unlink(testFolder); err != nil {
		if os.IsNotExist(err) == false {
			t.Fatalf("Error deleting %s: %s", testFolder, err)
		}
	}
}

func TestLoadScriptlets(t *testing.T) {
	setupScriptlets(t, true, false)
	defer teardownScriptlets(t)

	scriptlets, err := LoadScriptlets(testFolder)
	if err != nil {
		t.Fatal(err)
	} else if scriptlets == nil {
		t.Fatal("expected valid scriptlets storage")
	} else if scriptlets.Size() != testProfiles {
		t.Fatalf("expected %d scriptlets, %d found in %s", testProfiles, scriptlets.Size(), testFolder)
	}

	scriptlets.ForEach(func(m proto.Message) error {
		s := m.(*pb.Scriptlet)
		// id was updated while saving the scriptlet
		if s.Id = testScriptlet.Id; !sameScriptlet(*s, testScriptlet) {
			t.Fatalf("scriptlets should be the same here")
		}
		return nil
	})
}

func TestLoadScriptletsWithCorruptedData(t *testing.T) {
	setupScriptlets(t, false, true)
	defer teardownScriptlets(t)

	if scriptlets, err := LoadScriptlets("/lulzlulz"); err == nil {
		t.Fatal("expected error")
	} else if scriptlets != nil {
		t.Fatal("expected no storage loaded")
	} else if scriptlets, err := LoadScriptlets(testFolder); err == nil {
		t.Fatal("expected error due to broken scriptlet dat file")
	} else if scriptlets != nil {
		t.Fatal("expected no storage loaded due to corrupted scriptlet dat file")
	}
}

func TestScriptletsCreate(t *testing.T) {
	setupScriptlets(t, false, false)
	defer teardownScriptlets(t)

	scriptlets, err := LoadScriptlets(testFolder)
	if err != nil {
		t.Fatal(err)
	} else if scriptlets.Size() != 0 {
		t.Fatal("expected empty scriptlet storage")
	} else if err := scriptlets.Create(&testScriptlet); err != nil {
		t.Fatal(err)
	} else if scriptlets.Size() != 1 {
		t.Fatalf("expected one scriptlet, got %d", scriptlets.Size())
	}
}

func TestScriptletsFind(t *testing.T) {
	setupScriptlets(t, true, false)
	defer teardownScriptlets(t)

	scriptlets, err := LoadScriptlets(testFolder)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < testProfiles; i++ {
		if scriptlet := scriptlets.Find(uint64(i + 1)); scriptlet == nil {
			t.Fatalf("scriptlet with id %d not found", i+1)
		}
	}

	if scriptlet := scriptlets.Find(666); scriptlet != nil {
		t.Fatalf("scriptlet with id 666 was not expected to be found")
	}
}

func TestScriptletsUpdate(t *testing.T) {
	setupScriptlets(t, true, false)
	defer teardownScriptlets(t)

	scriptlets, err := LoadScriptlets(testFolder)
	if err != nil {
		t.Fatal(err)
	}

	updatedScriptlet.Id = 1
	if err := scriptlets.Update(&updatedScriptlet); err != nil {
		t.Fatal(err)
	}

	if stored := scriptlets.Find(updatedScriptlet.Id); stored == nil {
		t.Fatal("expected stored scriptlet with id 1")
	} else if !sameScriptlet(*stored, updatedScriptlet) {
		t.Fatal("scriptlet has not been updated as expected")
	}
}

func TestScriptletsDelete(t *testing.T) {
	setupScriptlets(t, true, false)
	defer teardownScriptlets(t)

	scriptlets, err := LoadScriptlets(testFolder)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < testProfiles; i++ {
		id := uint64(i + 1)
		if deleted := scriptlets.Delete(id); deleted == nil {
			t.Fatalf("scriptlet with id %d not found", id)
		} else if deleted.Id != id {
			t.Fatalf("should have deleted scriptlet with id %d, id is %d instead", id, deleted.Id)
		}
	}

	if scriptlets.Size() != 0 {
		t.Fatalf("expected empty scriptlets storage, found %d instead", scriptlets.Size())
	}
}
