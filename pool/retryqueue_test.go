// File: pool/retryqueue_test.go
package pool

import (
	"errors"
	"testing"

	"github.com/incrediblejr/ijcringbuffer/api"
)

func TestRetryQueueOfferAndDrain(t *testing.T) {
	sr := NewSafeRing(make([]byte, 8), 8)
	rq := NewRetryQueue()

	sr.Produce([]byte("abcdefgh")) // fills the ring

	payload := []byte("xy")
	if sr.Produce(payload) {
		t.Fatal("expected ring to be full")
	}
	rq.Offer(payload)
	if rq.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", rq.Len())
	}

	sr.Consume(8) // drain the original record, freeing space

	replayed, err := rq.Drain(sr.Produce)
	if err != nil {
		t.Fatalf("Drain returned unexpected error: %v", err)
	}
	if replayed != 1 {
		t.Fatalf("Drain replayed %d payloads, want 1", replayed)
	}
	if rq.Len() != 0 {
		t.Fatalf("Len() after drain = %d, want 0", rq.Len())
	}
}

func TestRetryQueueDrainStopsAtFirstRefusal(t *testing.T) {
	sr := NewSafeRing(make([]byte, 8), 8)
	rq := NewRetryQueue()

	rq.Offer([]byte("fits"))
	rq.Offer([]byte("toolongforring"))
	rq.Offer([]byte("more"))

	replayed, err := rq.Drain(sr.Produce)
	if !errors.Is(err, api.ErrCapacityExceeded) {
		t.Fatalf("Drain error = %v, want api.ErrCapacityExceeded", err)
	}
	if replayed != 1 {
		t.Fatalf("Drain replayed %d payloads, want 1", replayed)
	}
	if rq.Len() != 2 {
		t.Fatalf("Len() after partial drain = %d, want 2", rq.Len())
	}
}
