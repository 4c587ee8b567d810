package console

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jdjurisic/vgacons/internal/keys"
	"github.com/jdjurisic/vgacons/internal/vga"
)

func TestReadBlocksUntilLinePublished(t *testing.T) {
	c := New(vga.NewMemory())

	type result struct {
		n   int
		err error
		buf [16]byte
	}
	done := make(chan result, 1)
	go func() {
		var r result
		r.n, r.err = c.Read(context.Background(), r.buf[:])
		done <- r
	}()

	// Unpublished edit bytes must not wake the reader.
	c.Intr(feed(codes("hel")...))
	select {
	case r := <-done:
		t.Fatalf("Read returned early: %d, %v", r.n, r.err)
	case <-time.After(20 * time.Millisecond):
	}

	c.Intr(feed(codes("lo")...))
	c.Intr(feed('\n'))

	select {
	case r := <-done:
		if r.err != nil {
			t.Fatalf("Read: %v", r.err)
		}
		if got := string(r.buf[:r.n]); got != "hello\n" {
			t.Errorf("Read = %q, want \"hello\\n\"", got)
		}
	case <-time.After(time.Second):
		t.Fatal("Read did not wake after the line was published")
	}
}

func TestReadCancellation(t *testing.T) {
	c := New(vga.NewMemory())
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		var buf [8]byte
		_, err := c.Read(ctx, buf[:])
		done <- err
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, ErrInterrupted) {
			t.Errorf("Read = %v, want ErrInterrupted", err)
		}
	case <-time.After(time.Second):
		t.Fatal("cancelled Read did not return")
	}

	// The buffer was not disturbed: a later line is still delivered whole.
	c.Intr(feed(append(codes("ok"), '\n')...))
	var buf [8]byte
	n, err := c.Read(context.Background(), buf[:])
	if err != nil || string(buf[:n]) != "ok\n" {
		t.Errorf("Read after cancel = %q, %v", buf[:n], err)
	}
}

func TestReadEOFMarkerPushback(t *testing.T) {
	c := New(vga.NewMemory())
	c.Intr(feed('a', 'b', keys.CtrlD))

	var buf [16]byte
	n, err := c.Read(context.Background(), buf[:])
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(buf[:n]) != "ab" {
		t.Fatalf("Read = %q, want \"ab\"", buf[:n])
	}

	// The marker was held back so this read returns the 0-byte result.
	n, err = c.Read(context.Background(), buf[:])
	if err != nil || n != 0 {
		t.Errorf("second Read = %d, %v; want 0, nil", n, err)
	}

	// And it was consumed: the buffer is empty again.
	if !c.input.Empty() {
		t.Error("end-of-input marker left in the buffer")
	}
}

func TestReadEOFMarkerAlone(t *testing.T) {
	c := New(vga.NewMemory())
	c.Intr(feed(keys.CtrlD))

	var buf [4]byte
	n, err := c.Read(context.Background(), buf[:])
	if err != nil || n != 0 {
		t.Errorf("Read = %d, %v; want 0, nil", n, err)
	}
}

func TestReadShortBuffer(t *testing.T) {
	c := New(vga.NewMemory())
	c.Intr(feed(append(codes("hello"), '\n')...))

	var buf [3]byte
	n, err := c.Read(context.Background(), buf[:])
	if err != nil || string(buf[:n]) != "hel" {
		t.Fatalf("Read = %q, %v", buf[:n], err)
	}
	n, err = c.Read(context.Background(), buf[:])
	if err != nil || string(buf[:n]) != "lo\n" {
		t.Errorf("Read = %q, %v", buf[:n], err)
	}
}

func TestReadWholeLineByteCount(t *testing.T) {
	c := New(vga.NewMemory())
	line := "a full line\n"
	c.Intr(feed(codes(line)...))

	var buf [64]byte
	n, err := c.Read(context.Background(), buf[:])
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if n != len(line) {
		t.Errorf("Read = %d bytes, want %d (line plus newline)", n, len(line))
	}
}
