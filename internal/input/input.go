// Package input models the game's event queue and decodes raw terminal
// input into it.
package input

import (
	"bufio"
	"strconv"
)

// EventType identifies the kind of queued event.
type EventType int

const (
	EventQuit         EventType = iota // Window closed, Ctrl-C, Q, or input stream gone
	EventKeyPress                      // Any other key
	EventPointerPress                  // Left pointer button went down
	EventSpawn                         // Synthetic spawn-timer tick
)

// String returns a human-readable event name.
func (t EventType) String() string {
	switch t {
	case EventQuit:
		return "quit"
	case EventKeyPress:
		return "key"
	case EventPointerPress:
		return "pointer"
	case EventSpawn:
		return "spawn"
	default:
		return "unknown"
	}
}

// Event is one entry in the per-frame event queue.
type Event struct {
	Type EventType
	Key  byte // Raw key byte for EventKeyPress (final byte for escape sequences)
	X, Y int  // Pointer position for EventPointerPress, in source coordinates
}

// Stream delivers input bytes via a channel and decodes them into events.
// Pointer coordinates are 0-based terminal cells.
type Stream struct {
	ch       chan byte
	closed   bool
	pending  []byte // Incomplete escape sequence carried from the last read
	pointerX int
	pointerY int
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch: make(chan byte, 256),
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// Pointer returns the last pointer position reported by the terminal.
func (s *Stream) Pointer() (x, y int) {
	return s.pointerX, s.pointerY
}

// ReadEvents drains all available bytes from the stream (non-blocking) and
// returns the decoded events in arrival order.
func ReadEvents(s *Stream) []Event {
	buf := s.pending
	s.pending = nil
	carried := len(buf)

drain:
	for !s.closed {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	// Hold a split escape sequence for one more read, unless nothing new arrived.
	flush := len(buf) == carried || s.closed
	events := s.decode(buf, flush)

	if s.closed {
		events = append(events, Event{Type: EventQuit})
	}
	return events
}

// decode parses buf into events. Incomplete trailing escape sequences are kept
// in s.pending unless flush is set, in which case they become key presses.
func (s *Stream) decode(buf []byte, flush bool) []Event {
	var events []Event
	for i := 0; i < len(buf); {
		b := buf[i]
		if b != '\x1b' {
			events = append(events, keyEvent(b))
			i++
			continue
		}

		n, ev, ok := s.parseEscape(buf[i:])
		if n == 0 {
			if !flush {
				s.pending = append(s.pending, buf[i:]...)
				return events
			}
			// Lone or truncated escape: report it as the Escape key.
			events = append(events, Event{Type: EventKeyPress, Key: '\x1b'})
			i++
			continue
		}
		if ok {
			events = append(events, ev)
		}
		i += n
	}
	return events
}

// parseEscape decodes an escape sequence at the start of data. It returns the
// number of bytes consumed (0 if incomplete), the event, and whether the
// sequence produced an event at all (pointer motion does not).
func (s *Stream) parseEscape(data []byte) (int, Event, bool) {
	if len(data) < 2 {
		return 0, Event{}, false
	}
	if data[1] != '[' {
		// ESC followed by a regular byte: Alt+key or a bare Escape press.
		return 1, Event{Type: EventKeyPress, Key: '\x1b'}, true
	}
	if len(data) >= 3 && data[2] == '<' {
		return s.parseSGRMouse(data)
	}

	// CSI: ESC [ params* intermediates* final
	for i := 2; i < len(data); i++ {
		c := data[i]
		if c >= 0x40 && c <= 0x7e {
			return i + 1, Event{Type: EventKeyPress, Key: c}, true
		}
		if c < 0x20 || c > 0x3f {
			// Malformed: consume the introducer only.
			return 2, Event{Type: EventKeyPress, Key: '\x1b'}, true
		}
	}
	return 0, Event{}, false
}

// parseSGRMouse parses an SGR mouse report: ESC [ < Btn ; X ; Y (M|m).
// Every report updates the pointer; only a left-button press yields an event.
func (s *Stream) parseSGRMouse(data []byte) (int, Event, bool) {
	end := 3
	for end < len(data) && data[end] != 'M' && data[end] != 'm' {
		c := data[end]
		if (c < '0' || c > '9') && c != ';' {
			return 3, Event{}, false
		}
		end++
	}
	if end >= len(data) {
		return 0, Event{}, false
	}

	btn, x, y, ok := parseSGRParams(data[3:end])
	if !ok {
		return end + 1, Event{}, false
	}
	s.pointerX, s.pointerY = x-1, y-1 // Convert to 0-indexed

	press := data[end] == 'M'
	isMotion := btn&32 != 0
	isScroll := btn&64 != 0
	if press && !isMotion && !isScroll && btn&0x03 == 0 {
		return end + 1, Event{Type: EventPointerPress, X: s.pointerX, Y: s.pointerY}, true
	}
	return end + 1, Event{}, false
}

// parseSGRParams splits "btn;x;y".
func parseSGRParams(params []byte) (btn, x, y int, ok bool) {
	var fields [3]int
	field := 0
	start := 0
	for i := 0; i <= len(params); i++ {
		if i < len(params) && params[i] != ';' {
			continue
		}
		if field >= len(fields) {
			return 0, 0, 0, false
		}
		v, err := strconv.Atoi(string(params[start:i]))
		if err != nil {
			return 0, 0, 0, false
		}
		fields[field] = v
		field++
		start = i + 1
	}
	if field != len(fields) {
		return 0, 0, 0, false
	}
	return fields[0], fields[1], fields[2], true
}

// keyEvent maps a single byte to an event.
func keyEvent(b byte) Event {
	switch b {
	case 'q', 'Q', '\x03': // Ctrl-C arrives as a byte in raw mode
		return Event{Type: EventQuit}
	default:
		return Event{Type: EventKeyPress, Key: b}
	}
}
