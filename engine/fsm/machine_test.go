package fsm

import (
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"

	"github.com/lixenwraith/meteor-fighter/event"
)

type testCtx struct {
	log     []string
	emitted []event.EventType
	cues    []string
}

const testGraph = `
initial = "Idle"

[states.Idle]
transitions = [
    { trigger = "EventGameStartRequest", target = "Warmup" },
]

[states.Warmup]
on_enter = [
    { action = "Record", event = "" },
    { action = "EmitEvent", event = "EventSoundRequest", payload = { cue = "go" } },
]
on_exit = [
    { action = "Record" },
]
transitions = [
    { trigger = "Tick", target = "Running", guard = "StateTimeExceeds", guard_args = { ms = 100 } },
]

[states.Running]
transitions = [
    { trigger = "EventPlayerDead", target = "Idle" },
]
`

func newTestMachine(t *testing.T) *Machine[*testCtx] {
	t.Helper()
	event.InitRegistry()

	m := NewMachine[*testCtx]()
	m.RegisterAction("Record", func(ctx *testCtx, args any) {
		ctx.log = append(ctx.log, "action")
	})
	m.RegisterAction("EmitEvent", func(ctx *testCtx, args any) {
		a := args.(*EmitEventArgs)
		ctx.emitted = append(ctx.emitted, a.Type)
		if p, ok := a.Payload.(*event.SoundRequestPayload); ok {
			ctx.cues = append(ctx.cues, p.Cue)
		}
	})
	m.RegisterGuardFactory("StateTimeExceeds", func(m *Machine[*testCtx], args map[string]any) (GuardFunc[*testCtx], error) {
		d, err := DurationArg(args, "ms")
		if err != nil {
			return nil, err
		}
		return func(*testCtx) bool { return m.TimeInState() >= d }, nil
	})
	m.SetTransitionHook(func(ctx *testCtx, from, to string) {
		ctx.log = append(ctx.log, from+"->"+to)
	})

	if err := m.LoadConfig([]byte(testGraph)); err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	return m
}

func TestMachineLifecycle(t *testing.T) {
	m := newTestMachine(t)
	ctx := &testCtx{}

	if err := m.Init(ctx); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if m.State() != "Idle" {
		t.Fatalf("State = %q, want Idle", m.State())
	}

	// Unrelated event is ignored
	if m.HandleEvent(ctx, event.EventPlayerDead) {
		t.Error("Idle must ignore EventPlayerDead")
	}

	if !m.HandleEvent(ctx, event.EventGameStartRequest) {
		t.Fatal("start request should transition")
	}
	if m.State() != "Warmup" {
		t.Fatalf("State = %q, want Warmup", m.State())
	}
	if len(ctx.cues) != 1 || ctx.cues[0] != "go" {
		t.Errorf("payload not decoded: %v", ctx.cues)
	}

	// Guarded tick transition
	m.Update(ctx, 60*time.Millisecond)
	if m.State() != "Warmup" {
		t.Fatal("left Warmup before the guard duration")
	}
	m.Update(ctx, 60*time.Millisecond)
	if m.State() != "Running" {
		t.Fatalf("State = %q, want Running", m.State())
	}
	if m.TimeInState() != 0 {
		t.Errorf("TimeInState not reset: %v", m.TimeInState())
	}

	want := "->Idle,Idle->Warmup,action,action,Warmup->Running"
	if got := strings.Join(ctx.log, ","); got != want {
		t.Errorf("log = %s\nwant  %s", got, want)
	}
}

func TestMachineReset(t *testing.T) {
	m := newTestMachine(t)
	ctx := &testCtx{}
	_ = m.Init(ctx)
	m.HandleEvent(ctx, event.EventGameStartRequest)

	if err := m.Reset(ctx); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if m.State() != "Idle" {
		t.Errorf("State after reset = %q", m.State())
	}
}

func TestLoadRejectsBadGraphs(t *testing.T) {
	event.InitRegistry()

	tests := []struct {
		name  string
		graph string
	}{
		{"unknown target", `initial = "A"
[states.A]
transitions = [{ trigger = "Tick", target = "B" }]`},
		{"unknown event", `initial = "A"
[states.A]
transitions = [{ trigger = "EventNope", target = "A" }]`},
		{"unknown guard", `initial = "A"
[states.A]
transitions = [{ trigger = "Tick", target = "A", guard = "Never" }]`},
		{"unknown action", `initial = "A"
[states.A]
on_enter = [{ action = "Explode" }]`},
		{"missing initial", `initial = "Z"
[states.A]`},
		{"no states", `initial = "A"`},
		{"syntax", `initial = `},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMachine[*testCtx]()
			if err := m.LoadConfig([]byte(tt.graph)); err == nil {
				t.Error("expected load error")
			}
		})
	}
}

func TestEdgeValidator(t *testing.T) {
	event.InitRegistry()
	m := NewMachine[*testCtx]()
	m.SetEdgeValidator(func(from, to string) error {
		if from == "B" && to == "A" {
			return errors.Errorf("backwards edge %s -> %s", from, to)
		}
		return nil
	})

	graph := `initial = "A"
[states.A]
transitions = [{ trigger = "Tick", target = "B" }]
[states.B]
transitions = [{ trigger = "Tick", target = "A" }]`

	err := m.LoadConfig([]byte(graph))
	if err == nil || !strings.Contains(err.Error(), "backwards edge") {
		t.Errorf("expected edge rejection, got %v", err)
	}
}

func TestDurationArg(t *testing.T) {
	if d, err := DurationArg(map[string]any{"ms": int64(1500)}, "ms"); err != nil || d != 1500*time.Millisecond {
		t.Errorf("int64: %v, %v", d, err)
	}
	if d, err := DurationArg(map[string]any{"ms": 2.5}, "ms"); err != nil || d != 2500*time.Microsecond {
		t.Errorf("float64: %v, %v", d, err)
	}
	if _, err := DurationArg(map[string]any{}, "ms"); err == nil {
		t.Error("missing key accepted")
	}
	if _, err := DurationArg(map[string]any{"ms": "soon"}, "ms"); err == nil {
		t.Error("string accepted")
	}
}
