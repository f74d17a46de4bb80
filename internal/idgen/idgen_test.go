package idgen

import (
	"strings"
	"testing"
)

func TestMessage_PrefixAndLength(t *testing.T) {
	id, err := Message()
	if err != nil {
		t.Fatalf("Message: %v", err)
	}
	if !strings.HasPrefix(id, "msg-") {
		t.Errorf("id %q missing msg- prefix", id)
	}
	if len(id) != len("msg-")+Length {
		t.Errorf("id %q has wrong length", id)
	}
}

func TestSession_Prefix(t *testing.T) {
	id, err := Session()
	if err != nil {
		t.Fatalf("Session: %v", err)
	}
	if !strings.HasPrefix(id, "sess-") {
		t.Errorf("id %q missing sess- prefix", id)
	}
}

func TestWithPrefix_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id, err := WithPrefix("x-")
		if err != nil {
			t.Fatalf("WithPrefix: %v", err)
		}
		if seen[id] {
			t.Fatalf("duplicate id %q after %d generations", id, i)
		}
		seen[id] = true
	}
}
