package pawnpad

import (
	"bytes"
	"fmt"
	"sync"

	"golang.design/x/clipboard"
)

type Clipboard interface {
	Read() ([]byte, error)
	Write(bs []byte) error
}

var initSystemClipboard = sync.OnceValue(clipboard.Init)

// SystemClipboard is the desktop clipboard. It needs a display; without one
// every call fails with ErrInvalidState.
type SystemClipboard struct{}

func (SystemClipboard) Read() ([]byte, error) {
	if err := initSystemClipboard(); err != nil {
		return nil, fmt.Errorf("%w: clipboard: %v", ErrInvalidState, err)
	}
	return clipboard.Read(clipboard.FmtText), nil
}

func (SystemClipboard) Write(bs []byte) error {
	if err := initSystemClipboard(); err != nil {
		return fmt.Errorf("%w: clipboard: %v", ErrInvalidState, err)
	}
	clipboard.Write(clipboard.FmtText, bytes.Clone(bs))
	return nil
}

// MemoryClipboard keeps the clipboard inside the process.
type MemoryClipboard struct {
	mu   sync.Mutex
	data []byte
}

func (m *MemoryClipboard) Read() ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return bytes.Clone(m.data), nil
}

func (m *MemoryClipboard) Write(bs []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = bytes.Clone(bs)
	return nil
}
