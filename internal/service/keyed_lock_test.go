package service

import (
	"sync"
	"testing"
)

func TestKeyedLockerSerializesSameKey(t *testing.T) {
	locker := NewKeyedLocker()
	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locker.Lock("shop-1")
			counter++
			unlock()
		}()
	}
	wg.Wait()
	if counter != 50 {
		t.Fatalf("expected 50, got %d", counter)
	}
	if len(locker.entries) != 0 {
		t.Fatalf("released keys must be dropped, got %d", len(locker.entries))
	}
}

func TestKeyedLockerIndependentKeys(t *testing.T) {
	locker := NewKeyedLocker()
	unlockA := locker.Lock("a")
	done := make(chan struct{})
	go func() {
		unlock := locker.Lock("b")
		unlock()
		close(done)
	}()
	<-done
	unlockA()
}
