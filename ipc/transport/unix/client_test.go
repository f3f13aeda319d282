package unix

import (
	"errors"
	"io"
	"net"
	"path/filepath"
	"testing"

	"github.com/gopfly/gopfly/ipc/transport"
)

// TestConnectorName tests the transport name used in error messages
func TestConnectorName(t *testing.T) {
	if got := NewUnixConnector().GetName(); got != "unix" {
		t.Errorf("GetName() = %q, want %q", got, "unix")
	}
}

// TestOpenWithListener tests connecting to a live listener and that the
// resulting handle is usable for a send
func TestOpenWithListener(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pf.sock")

	listener, err := net.Listen("unix", path)
	if err != nil {
		t.Fatalf("failed to create test listener: %v", err)
	}
	defer listener.Close()

	received := make(chan []byte, 1)
	go func() {
		conn, err := listener.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		data, _ := io.ReadAll(conn)
		received <- data
	}()

	conn, err := transport.Open(NewUnixConnector(), path)
	if err != nil {
		t.Fatalf("failed to connect to test listener: %v", err)
	}

	payload := []byte("telemetry")
	if err := conn.Write(payload); err != nil {
		t.Fatalf("write on fresh connection failed: %v", err)
	}
	if err := conn.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	if got := <-received; string(got) != "telemetry" {
		t.Errorf("peer received %q, want %q", got, "telemetry")
	}
}

// TestOpenWithoutListener tests that a missing companion service surfaces as
// ErrConnect and produces no handle
func TestOpenWithoutListener(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.sock")

	conn, err := transport.Open(NewUnixConnector(), path)
	if err == nil {
		t.Fatal("connect to a missing socket succeeded")
	}
	if !errors.Is(err, transport.ErrConnect) {
		t.Errorf("error does not wrap ErrConnect: %v", err)
	}
	if conn != nil {
		t.Error("got a non-nil handle alongside an error")
	}
}

// TestWriteAfterClose tests that a closed handle rejects further writes
func TestWriteAfterClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pf.sock")

	listener, err := net.Listen("unix", path)
	if err != nil {
		t.Fatalf("failed to create test listener: %v", err)
	}
	defer listener.Close()
	go func() {
		conn, err := listener.Accept()
		if err == nil {
			defer conn.Close()
			_, _ = io.ReadAll(conn)
		}
	}()

	conn, err := transport.Open(NewUnixConnector(), path)
	if err != nil {
		t.Fatalf("failed to connect: %v", err)
	}
	if err := conn.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	if err := conn.Write([]byte("x")); err == nil {
		t.Error("write on a closed connection succeeded")
	}
}
