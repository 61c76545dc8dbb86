package audit

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memWriter struct {
	mu     sync.Mutex
	events []Event
	block  chan struct{}
	fail   bool
}

func (w *memWriter) Log(ev Event) error {
	if w.block != nil {
		<-w.block
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.events = append(w.events, ev)
	if w.fail {
		return errors.New("db down")
	}
	return nil
}

func ptr(v uint) *uint { return &v }

func TestDispatcher_DeliversInOrder(t *testing.T) {
	w := &memWriter{}
	d := NewDispatcher(w, 10)

	d.Dispatch(Event{Action: "appointment_created", EntityID: ptr(1)})
	d.Dispatch(Event{Action: "appointment_cancelled", EntityID: ptr(1)})
	d.Close()

	require.Len(t, w.events, 2)
	assert.Equal(t, "appointment_created", w.events[0].Action)
	assert.Equal(t, "appointment_cancelled", w.events[1].Action)
}

func TestDispatcher_DropsWhenFull(t *testing.T) {
	w := &memWriter{block: make(chan struct{})}
	d := NewDispatcher(w, 1)

	for i := 0; i < 10; i++ {
		d.Dispatch(Event{Action: "x"})
	}
	close(w.block)
	d.Close()

	assert.Less(t, len(w.events), 10)
	assert.NotEmpty(t, w.events)
}

func TestDispatcher_WriterErrorsAreSwallowed(t *testing.T) {
	w := &memWriter{fail: true}
	d := NewDispatcher(w, 0)

	d.Dispatch(Event{Action: "x"})
	d.Close()

	assert.Len(t, w.events, 1)
}

func TestDispatcher_DispatchAfterClose(t *testing.T) {
	w := &memWriter{}
	d := NewDispatcher(w, 10)

	d.Dispatch(Event{Action: "before"})
	d.Close()

	assert.NotPanics(t, func() {
		d.Dispatch(Event{Action: "after"})
		d.Close()
	})
	require.Len(t, w.events, 1)
	assert.Equal(t, "before", w.events[0].Action)
}

func TestToModel(t *testing.T) {
	row := ToModel(Event{
		ActorID:  ptr(4),
		Action:   "appointment_confirmed",
		Entity:   "appointment",
		EntityID: ptr(9),
		Metadata: map[string]string{"status": "confirmed"},
	})

	assert.Equal(t, uint(4), *row.ActorID)
	assert.JSONEq(t, `{"status":"confirmed"}`, row.Metadata)
	assert.Empty(t, ToModel(Event{Action: "x"}).Metadata)
}
