package client

import (
	"strings"
	"sync"
)

// MultiError collects the failures of successive attempts.
type MultiError struct {
	mutex sync.Mutex
	errs  []error
}

func (m *MultiError) Push(err error) {
	if err == nil {
		return
	}
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.errs = append(m.errs, err)
}

// HasError returns m when at least one error was pushed, nil otherwise.
func (m *MultiError) HasError() error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if len(m.errs) == 0 {
		return nil
	}

	return m
}

func (m *MultiError) Errors() []error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	return append([]error(nil), m.errs...)
}

func (m *MultiError) Error() string {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	msgs := make([]string, 0, len(m.errs))
	for _, err := range m.errs {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Unwrap exposes every collected error to errors.Is and errors.As.
func (m *MultiError) Unwrap() []error {
	return m.Errors()
}
