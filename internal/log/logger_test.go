package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestMemoryLoggerSequence(t *testing.T) {
	l := NewMemoryLogger()
	l.Log(NewTurnEvent(1, 0))
	l.Log(NewEndTurnEvent(1, 0))
	l.Log(NewTurnEvent(2, 1))

	events := l.Events()
	for i, e := range events {
		if e.Seq != i+1 {
			t.Errorf("event %d has seq %d", i, e.Seq)
		}
	}
	if got := len(l.EventsOfType(EventNewTurn)); got != 2 {
		t.Errorf("expected 2 NewTurn events, got %d", got)
	}
	if last := l.LastEvent(); last.Turn != 2 || last.Player != 1 {
		t.Errorf("unexpected last event %+v", last)
	}
	if (&MemoryLogger{}).LastEvent().Type != EventNewTurn {
		t.Error("empty logger returns a zero event")
	}
}

func TestFuncLoggerForwardsNumberedEvents(t *testing.T) {
	var got []GameEvent
	l := NewFuncLogger(func(e GameEvent) { got = append(got, e) })
	l.Log(NewKnockoutEvent(4, 1, "Sproutle", 1))
	l.Log(NewWinEvent(4, 0, "3 points"))

	if len(got) != 2 || got[0].Seq != 1 || got[1].Seq != 2 {
		t.Fatalf("unexpected forwarded events %+v", got)
	}
	if got[1].Type != EventWin {
		t.Errorf("expected Win, got %s", got[1].Type)
	}
	if len(l.Events()) != 2 {
		t.Errorf("func logger also keeps events, got %d", len(l.Events()))
	}
}

func TestTextLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewTextLogger(&buf)
	l.Log(NewEndTurnEvent(3, 1))

	line := strings.TrimSpace(buf.String())
	if !strings.HasPrefix(line, "T3") || !strings.Contains(line, "P2 ends the turn") {
		t.Errorf("unexpected line %q", line)
	}
	if FormatAll(l.Events()) != buf.String() {
		t.Error("FormatAll should match the streamed text")
	}
}

func TestEventTypeJSON(t *testing.T) {
	data, err := json.Marshal(NewTieEvent(9, "both players reached the point threshold"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"type":"Tie"`) {
		t.Errorf("event type should marshal by name: %s", data)
	}
}
