package output

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sync"
)

// Writer handles line-oriented text output to a file or io.Writer.
// Each value is written as one line; no envelope, header, or footer.
type Writer struct {
	mu        sync.Mutex
	out       *bufio.Writer
	count     int
	closeFunc func() error
}

// NewWriter creates a line writer that writes to the specified output.
func NewWriter(w io.Writer) *Writer {
	return &Writer{out: bufio.NewWriter(w)}
}

// NewFileWriter creates a line writer that truncates and writes the named
// file. The caller must call Close() to flush and release the file on all
// exit paths.
func NewFileWriter(filename string) (*Writer, error) {
	file, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}

	return &Writer{
		out:       bufio.NewWriter(file),
		closeFunc: file.Close,
	}, nil
}

// WriteLine writes one value followed by a line terminator.
func (w *Writer) WriteLine(value string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, err := w.out.WriteString(value); err != nil {
		return fmt.Errorf("failed to write line: %w", err)
	}
	if err := w.out.WriteByte('\n'); err != nil {
		return fmt.Errorf("failed to write line: %w", err)
	}

	w.count++
	return nil
}

// Count returns the number of lines written.
func (w *Writer) Count() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.count
}

// Close flushes buffered output and closes the underlying file, if any.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	flushErr := w.out.Flush()
	if w.closeFunc != nil {
		if err := w.closeFunc(); err != nil {
			return err
		}
	}
	return flushErr
}
