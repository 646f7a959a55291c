package main

import (
	"sync"
	"testing"
)

func TestSizeTracker(t *testing.T) {
	s := newSizeTracker(80, 24)

	w, h, err := s.getSize()
	if err != nil || w != 80 || h != 24 {
		t.Fatalf("getSize() = (%d,%d,%v), want (80,24,nil)", w, h, err)
	}

	var wg sync.WaitGroup
	for i := range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.update(100+i, 40)
		}()
	}
	wg.Wait()

	s.update(120, 50)
	if w, h, _ := s.getSize(); w != 120 || h != 50 {
		t.Errorf("getSize() after update = (%d,%d), want (120,50)", w, h)
	}
}
