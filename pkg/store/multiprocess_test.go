package store

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"testing"
)

const writerRootEnv = "HOARD_TEST_WRITER_ROOT"

const childRecords = 50

// TestHelperWriterProcess is the child half of TestStore_MultiProcess. The
// parent re-executes the test binary with the root directory in the
// environment; in a normal test run it does nothing.
func TestHelperWriterProcess(t *testing.T) {
	rootDir := os.Getenv(writerRootEnv)
	if rootDir == "" {
		t.Skip("runs only as a child of TestStore_MultiProcess")
	}

	shared := New(Options{RootDir: rootDir, Namespace: "shared"})
	defer shared.Close()

	for i := 0; i < childRecords; i++ {
		key := []byte(fmt.Sprintf("child_%02d", i))
		if err := shared.Store(key, []byte("from_child")); err != nil {
			t.Fatalf("Child failed to store %q: %v", key, err)
		}
		if _, _, err := shared.Fetch(key); err != nil {
			t.Fatalf("Child failed to fetch %q: %v", key, err)
		}
	}
}

func TestStore_MultiProcess(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "hoard_test")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	shared := New(Options{RootDir: tmpDir, Namespace: "shared"})
	defer shared.Close()
	parentOnly := New(Options{RootDir: tmpDir, Namespace: "parent"})
	defer parentOnly.Close()

	// Open both namespace files before the child starts.
	if err := shared.Store([]byte("warmup"), []byte("x")); err != nil {
		t.Fatalf("Failed to open shared namespace: %v", err)
	}
	if err := parentOnly.Store([]byte("warmup"), []byte("x")); err != nil {
		t.Fatalf("Failed to open parent namespace: %v", err)
	}

	var childOut bytes.Buffer
	child := exec.Command(os.Args[0], "-test.run=^TestHelperWriterProcess$")
	child.Env = append(os.Environ(), writerRootEnv+"="+tmpDir)
	child.Stdout = &childOut
	child.Stderr = &childOut
	if err := child.Start(); err != nil {
		t.Fatalf("Failed to start writer process: %v", err)
	}

	// Write and read concurrently with the child, both against the shared
	// namespace file and against one the child never touches.
	for i := 0; i < childRecords; i++ {
		key := []byte(fmt.Sprintf("parent_%02d", i))
		if err := shared.Store(key, []byte("from_parent")); err != nil {
			t.Fatalf("Parent failed to store %q in shared: %v", key, err)
		}
		if err := parentOnly.Store(key, []byte("from_parent")); err != nil {
			t.Fatalf("Parent failed to store %q: %v", key, err)
		}
		if _, found, err := shared.Fetch(key); err != nil || !found {
			t.Fatalf("Parent lost its own record %q: found=%v err=%v", key, found, err)
		}
	}

	if err := child.Wait(); err != nil {
		t.Fatalf("Writer process failed: %v\n%s", err, childOut.String())
	}

	// Both writers' records survive in the shared namespace.
	for i := 0; i < childRecords; i++ {
		childKey := []byte(fmt.Sprintf("child_%02d", i))
		got, found, err := shared.Fetch(childKey)
		if err != nil || !found {
			t.Fatalf("Child record %q missing: found=%v err=%v", childKey, found, err)
		}
		if string(got) != "from_child" {
			t.Errorf("Child record %q corrupted: got %q", childKey, got)
		}

		parentKey := []byte(fmt.Sprintf("parent_%02d", i))
		got, found, err = shared.Fetch(parentKey)
		if err != nil || !found {
			t.Fatalf("Parent record %q missing: found=%v err=%v", parentKey, found, err)
		}
		if string(got) != "from_parent" {
			t.Errorf("Parent record %q corrupted: got %q", parentKey, got)
		}
	}

	keys, err := shared.Keys()
	if err != nil {
		t.Fatalf("Failed to enumerate shared keys: %v", err)
	}
	if want := 2*childRecords + 1; len(keys) != want {
		t.Errorf("Shared key count mismatch: got %d, want %d", len(keys), want)
	}

	// The namespace the child never opened is untouched by its writes.
	keys, err = parentOnly.Keys()
	if err != nil {
		t.Fatalf("Failed to enumerate parent keys: %v", err)
	}
	if want := childRecords + 1; len(keys) != want {
		t.Errorf("Parent key count mismatch: got %d, want %d", len(keys), want)
	}
}
