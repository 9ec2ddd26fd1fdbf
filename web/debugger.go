package web

import (
	"log/slog"
	"net/http"

	"github.com/KaComet/okto8"
	"github.com/gorilla/websocket"
)

// Debugger streams a binary snapshot of the machine over a websocket after
// every step. Snapshots are dropped when no client is draining them so the
// console loop never blocks on a slow debugger.
type Debugger struct {
	Console       *okto8.Console
	CurrentOpCode uint16

	// SendEvery throttles the stream to every n-th step
	SendEvery uint

	send chan []byte
}

// NewDebugger creates a new debugger
// This method pauses the console and registers the step hooks
func NewDebugger(console *okto8.Console) *Debugger {
	deb := &Debugger{
		Console:       console,
		CurrentOpCode: 0,
		SendEvery:     1,
		send:          make(chan []byte, 16),
	}

	console.AddBeforeStepHook(deb.beforeStep)
	console.AddAfterStepHook(deb.afterStep)

	console.Stop()

	return deb
}

func (d *Debugger) Handle(upgrader *websocket.Upgrader) {
	http.HandleFunc("/debugger", func(w http.ResponseWriter, r *http.Request) {
		slog.Info("Connecting to debugger")
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			slog.Error("Error upgrading debugger connection", slog.Any("error", err))
			return
		}
		defer conn.Close()

		slog.Info("Listening for events")
		for {
			select {
			case event := <-d.send:
				if err := conn.WriteMessage(websocket.BinaryMessage, event); err != nil {
					slog.Error("Error writing debugger message", slog.Any("error", err))
					return
				}

			case <-r.Context().Done():
				return
			}
		}
	})
}

func (d *Debugger) beforeStep(m *okto8.Machine) {
	d.CurrentOpCode = m.Mem.ReadWord(m.PC)
}

func (d *Debugger) afterStep(m *okto8.Machine) {
	if d.SendEvery > 1 && m.Steps()%d.SendEvery != 0 {
		return
	}

	select {
	case d.send <- d.formatAsEvent(m):
	default:
		// no client draining; drop the snapshot
	}
}

func (d *Debugger) formatAsEvent(m *okto8.Machine) []byte {
	buf := make([]byte, 0, 64)

	buf = append(buf, byte(d.CurrentOpCode>>8), byte(d.CurrentOpCode))

	buf = append(buf, byte(m.PC>>8), byte(m.PC))
	buf = append(buf, m.V[:]...)
	buf = append(buf, byte(m.I>>8), byte(m.I))
	buf = append(buf, m.SP)
	for _, b := range m.Stack {
		buf = append(buf, byte(b>>8), byte(b))
	}
	buf = append(buf, m.Delay.Ceil())
	buf = append(buf, m.Sound.Ceil())
	buf = append(buf, byte(m.State()))

	return buf
}
