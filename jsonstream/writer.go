package jsonstream

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
)

// Version identifies the writer implementation in output documents.
const Version = "1.0.0"

// IndentStep is the number of spaces per nesting level.
const IndentStep = 2

// bufferSize is the initial capacity of the stream buffer.
const bufferSize = 4096

// api encodes values with sorted map keys so documents are reproducible.
var api = jsoniter.Config{
	IndentionStep: IndentStep,
	SortMapKeys:   true,
}.Froze()

// frame is one open container.
type frame struct {
	array bool
	n     int // entries written so far
}

// Writer is a streaming JSON writer. It is not safe for concurrent use.
type Writer struct {
	stream   *jsoniter.Stream
	frames   []frame
	afterKey bool
	err      error
}

// New returns a Writer emitting to dst.
func New(dst io.Writer) *Writer {
	return &Writer{stream: jsoniter.NewStream(api, dst, bufferSize)}
}

// ObjectStart opens an object in value position.
func (w *Writer) ObjectStart() {
	if !w.beginValue("ObjectStart") {
		return
	}
	w.stream.WriteObjectStart()
	w.frames = append(w.frames, frame{})
}

// ObjectEnd closes the innermost object.
func (w *Writer) ObjectEnd() {
	if !w.closeFrame("ObjectEnd", false) {
		return
	}
	w.stream.WriteObjectEnd()
}

// ArrayStart opens an array in value position.
func (w *Writer) ArrayStart() {
	if !w.beginValue("ArrayStart") {
		return
	}
	w.stream.WriteArrayStart()
	w.frames = append(w.frames, frame{array: true})
}

// ArrayEnd closes the innermost array.
func (w *Writer) ArrayEnd() {
	if !w.closeFrame("ArrayEnd", true) {
		return
	}
	w.stream.WriteArrayEnd()
}

// Key writes an object key; the next call must produce its value.
func (w *Writer) Key(key string) {
	if w.err != nil {
		return
	}
	top := w.top()
	if top == nil || top.array || w.afterKey {
		w.fail(fmt.Errorf("Key(%q): %w", key, ErrState))

		return
	}
	if top.n > 0 {
		w.stream.WriteMore()
	}
	top.n++
	w.stream.WriteObjectField(key)
	w.afterKey = true
}

// Value writes v in value position (after a Key, as an array element, or as
// the whole document).
func (w *Writer) Value(v any) {
	if !w.beginValue("Value") {
		return
	}
	w.stream.WriteVal(v)
	if w.stream.Error != nil {
		w.fail(fmt.Errorf("Value: %v: %w", w.stream.Error, ErrEncode))
	}
}

// Pair writes key and v.
func (w *Writer) Pair(key string, v any) {
	w.Key(key)
	w.Value(v)
}

// Depth returns the number of open containers.
func (w *Writer) Depth() int { return len(w.frames) }

// Flush pushes everything written so far to the destination.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	if err := w.stream.Flush(); err != nil {
		w.fail(fmt.Errorf("Flush: %v: %w", err, ErrIO))
	}

	return w.err
}

// Close checks that every container is closed, terminates the document with
// a newline and flushes.
func (w *Writer) Close() error {
	if w.err == nil && (len(w.frames) > 0 || w.afterKey) {
		w.fail(fmt.Errorf("Close: %d open containers: %w", len(w.frames), ErrState))
	}
	if w.err != nil {
		return w.err
	}
	w.stream.WriteRaw("\n")

	return w.Flush()
}

// Err returns the first error recorded by the writer.
func (w *Writer) Err() error { return w.err }

func (w *Writer) top() *frame {
	if len(w.frames) == 0 {
		return nil
	}

	return &w.frames[len(w.frames)-1]
}

// beginValue writes the separator owed before a value and reports whether
// the value may be written.
func (w *Writer) beginValue(op string) bool {
	if w.err != nil {
		return false
	}
	if w.afterKey {
		w.afterKey = false

		return true
	}
	top := w.top()
	switch {
	case top == nil:
		return true
	case !top.array:
		w.fail(fmt.Errorf("%s: value without key: %w", op, ErrState))

		return false
	}
	if top.n > 0 {
		w.stream.WriteMore()
	}
	top.n++

	return true
}

// closeFrame pops the innermost container if it has the expected kind.
func (w *Writer) closeFrame(op string, array bool) bool {
	if w.err != nil {
		return false
	}
	top := w.top()
	if top == nil || top.array != array || w.afterKey {
		w.fail(fmt.Errorf("%s: %w", op, ErrState))

		return false
	}
	w.frames = w.frames[:len(w.frames)-1]

	return true
}

func (w *Writer) fail(err error) {
	if w.err == nil {
		w.err = err
	}
}
