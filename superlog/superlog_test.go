package superlog

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/coreos/go-systemd/journal"
)

func TestDefaultIsStderr(t *testing.T) {
	w, err := New(Config{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if w != os.Stderr {
		t.Fatalf("got %T, want os.Stderr", w)
	}
	var buf bytes.Buffer
	w, err = New(Config{Stderr: &buf})
	if err != nil || w != &buf {
		t.Fatalf("custom stderr not used: %T %v", w, err)
	}
}

func TestConfigDefaults(t *testing.T) {
	c := Config{}
	if c.priority() != journal.PriInfo {
		t.Errorf("priority %d", c.priority())
	}
	if c.tag() == "" {
		t.Errorf("empty tag")
	}
	c = Config{Priority: journal.PriDebug, Tag: "sinum"}
	if c.priority() != journal.PriDebug || c.tag() != "sinum" {
		t.Errorf("got %d %q", c.priority(), c.tag())
	}
}

func TestJournalUnavailable(t *testing.T) {
	if journal.Enabled() {
		t.Skip("journal is available")
	}
	var buf bytes.Buffer
	w, err := New(Config{Journal: true, Stderr: &buf})
	if err == nil {
		t.Fatalf("expected error without a journal")
	}
	if w != &buf {
		t.Fatalf("fallback writer not returned")
	}

	jw := &JournalWriter{Priority: journal.PriErr, Fallback: &buf}
	if _, err := jw.Write([]byte("hello\n")); err == nil {
		t.Fatalf("expected write error without a journal")
	}
	if !strings.Contains(buf.String(), "hello\n") {
		t.Fatalf("fallback did not get the entry: %q", buf.String())
	}
}
