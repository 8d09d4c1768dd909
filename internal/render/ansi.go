package render

import (
	"bufio"
	"io"
	"os"
	"strconv"
)

// Pre-allocated ANSI sequences
var (
	csiClear        = []byte("\x1b[2J")
	csiCursorRight1 = []byte("\x1b[1C")
	csiCursorShow   = []byte("\x1b[?25h")
	csiSGR0         = []byte("\x1b[0m")
	csiAltScreenOff = []byte("\x1b[?1049l")
	csiAutoWrapOn   = []byte("\x1b[?7h")
)

// writeGoto positions the cursor at 1-based column x, row y.
func writeGoto(w *bufio.Writer, x, y int) {
	var buf [24]byte
	b := append(buf[:0], 0x1b, '[')
	b = strconv.AppendInt(b, int64(y), 10)
	b = append(b, ';')
	b = strconv.AppendInt(b, int64(x), 10)
	b = append(b, 'H')
	w.Write(b)
}

// EmergencyReset writes the sequences that bring a terminal back to a usable
// state after a crash mid-frame. Errors are ignored.
func EmergencyReset(w io.Writer) {
	w.Write(csiSGR0)
	w.Write(csiCursorShow)
	w.Write(csiAltScreenOff)
	w.Write(csiAutoWrapOn)
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}
}
