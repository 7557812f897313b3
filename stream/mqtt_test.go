package stream

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func decodeReply(t *testing.T, b []byte) Reply {
	t.Helper()
	var r Reply
	if err := json.Unmarshal(b, &r); err != nil {
		t.Fatalf("unexpected error decoding %s: %v", b, err)
	}
	return r
}

func TestControlHandler_Handle(t *testing.T) {
	c, strip, _ := newTestController(t)
	s := NewStreamer(c, strip, nil, 100)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.Run(ctx)

	h := NewControlHandler(s, "status", 0)

	r := decodeReply(t, h.Handle([]byte(`{"type":"add","texture":"green","duration":0.3}`)))
	if r.Error != "" || r.Status.NumFrames != 2 || r.Status.TotalDuration != 0.4 {
		t.Fatalf("unexpected reply: %+v", r)
	}

	r = decodeReply(t, h.Handle([]byte(`{"type":"remove","index":9}`)))
	if !strings.Contains(r.Error, "out of range") || r.Status.NumFrames != 2 {
		t.Fatalf("expected range error with unchanged status, got %+v", r)
	}

	r = decodeReply(t, h.Handle([]byte(`not json`)))
	if !strings.HasPrefix(r.Error, "decode command") {
		t.Fatalf("expected decode error, got %+v", r)
	}
}
