package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"resume-builder/internal/model"
)

// fakeRenderer replays outputs in order, repeating the last one.
type fakeRenderer struct {
	mu      sync.Mutex
	outputs [][]byte
	errs    []error
	calls   int
	html    []string
}

func (f *fakeRenderer) RenderHTMLToPDF(_ context.Context, html string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	i := f.calls
	f.calls++
	f.html = append(f.html, html)
	var err error
	if i < len(f.errs) {
		err = f.errs[i]
	}
	if err != nil {
		return nil, err
	}
	if len(f.outputs) == 0 {
		return nil, errors.New("no output configured")
	}
	if i >= len(f.outputs) {
		i = len(f.outputs) - 1
	}
	return f.outputs[i], nil
}

func (f *fakeRenderer) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakeCache struct {
	mu     sync.Mutex
	items  map[string][]byte
	getErr error
}

func newFakeCache() *fakeCache { return &fakeCache{items: map[string][]byte{}} }

func (c *fakeCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	b, ok := c.items[key]
	return b, ok, nil
}

func (c *fakeCache) Set(_ context.Context, key string, pdf []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = pdf
	return nil
}

type memStorage struct {
	mu     sync.Mutex
	files  map[string][]byte
	putErr error
}

func newMemStorage() *memStorage { return &memStorage{files: map[string][]byte{}} }

func (s *memStorage) Put(_ context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.putErr != nil {
		return s.putErr
	}
	s.files[key] = data
	return nil
}

func (s *memStorage) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.files[key]
	if !ok {
		return nil, fmt.Errorf("no file %s", key)
	}
	return b, nil
}

func readyResume() model.ResumeData {
	r := completeResume()
	r.PersonalInfo.FullName = "Jane  Q Doe"
	return r
}
