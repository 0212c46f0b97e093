package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestLineFormat(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf)
	log.now = func() time.Time {
		return time.Date(2026, 8, 30, 12, 34, 56, 0, time.UTC)
	}

	log.Infof("Saved: %s", "out.png")
	log.Warnf("nothing to do")
	log.Errorf("decode failed")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	want := []string{
		"2026-08-30 12:34:56 - INFO - Saved: out.png",
		"2026-08-30 12:34:56 - WARNING - nothing to do",
		"2026-08-30 12:34:56 - ERROR - decode failed",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), len(want), buf.String())
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestMirror(t *testing.T) {
	var primary, console bytes.Buffer
	log := New(&primary)
	log.Mirror(&console)

	log.Infof("hello")

	if primary.String() != console.String() {
		t.Fatalf("mirror diverged:\nprimary: %q\nconsole: %q", primary.String(), console.String())
	}
	if !strings.Contains(primary.String(), "hello") {
		t.Fatalf("message missing: %q", primary.String())
	}
}

func TestOpenAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.txt")

	log, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	log.Infof("first")
	if err := log.Close(); err != nil {
		t.Fatal(err)
	}

	log, err = Open(path)
	if err != nil {
		t.Fatal(err)
	}
	log.Infof("second")
	if err := log.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "first") || !strings.Contains(string(data), "second") {
		t.Fatalf("log did not append across opens:\n%s", data)
	}
}

func TestConcurrentWriters(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				log.Infof("worker line")
			}
		}()
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 16*50 {
		t.Fatalf("got %d lines, want %d", len(lines), 16*50)
	}
	for _, line := range lines {
		if !strings.HasSuffix(line, "worker line") {
			t.Fatalf("interleaved line: %q", line)
		}
	}
}
