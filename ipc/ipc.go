// Package ipc serves the Unix-domain-socket command protocol of
// spec.md §6 / SPEC_FULL.md §4.13: a 4-byte little-endian length prefix
// followed by that many bytes of NUL-separated argv tokens, one command
// per connection. The accept-loop shape (accept, hand the connection to
// a handler, loop) follows the teacher's server.go listener pattern; the
// richer handshake/session protocol there is not carried over since this
// wire format has no session concept (see DESIGN.md).
package ipc

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
)

// maxFrameBytes bounds a single command frame, guarding against a
// misbehaving client sending an unbounded length prefix.
const maxFrameBytes = 64 * 1024

// Handler receives one parsed command's argv tokens per connection.
type Handler func(argv []string) error

// Server listens on a Unix-domain socket at Path and dispatches each
// connection's single command to Handle.
type Server struct {
	Path   string
	Handle Handler
	Log    *slog.Logger

	listener net.Listener
}

// Serve binds the socket, removing any stale file left by a previous
// crashed instance, and runs the accept loop until Close is called.
// Every per-connection error is logged and the loop continues — an IO
// error on one client must not take down the listener (spec.md §7
// "IO ... the socket listener loop continues on the next connection").
func (s *Server) Serve() error {
	_ = os.Remove(s.Path)

	ln, err := net.Listen("unix", s.Path)
	if err != nil {
		return fmt.Errorf("ipc: listen %s: %w", s.Path, err)
	}
	s.listener = ln

	for {
		conn, err := ln.Accept()
		if err != nil {
			if s.listener == nil {
				return nil
			}
			s.logf("accept error: %v", err)
			continue
		}
		go s.handleConn(conn)
	}
}

// Close releases the listener and removes the socket file.
func (s *Server) Close() error {
	ln := s.listener
	s.listener = nil
	if ln == nil {
		return nil
	}
	err := ln.Close()
	_ = os.Remove(s.Path)
	return err
}

func (s *Server) handleConn(conn net.Conn) {
	defer conn.Close()

	argv, err := ReadFrame(conn)
	if err != nil {
		s.logf("frame read error: %v", err)
		return
	}
	if err := s.Handle(argv); err != nil {
		s.logf("command error: %v", err)
	}
}

func (s *Server) logf(format string, args ...any) {
	if s.Log == nil {
		return
	}
	s.Log.Error(fmt.Sprintf(format, args...))
}

// ReadFrame reads one length-prefixed, NUL-separated argv frame from r.
func ReadFrame(r io.Reader) ([]string, error) {
	var lenBuf [4]byte
	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		return nil, fmt.Errorf("ipc: read length: %w", err)
	}
	n := binary.LittleEndian.Uint32(lenBuf[:])
	if n == 0 {
		return nil, nil
	}
	if n > maxFrameBytes {
		return nil, fmt.Errorf("ipc: frame too large: %d bytes", n)
	}

	payload := make([]byte, n)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, fmt.Errorf("ipc: read payload: %w", err)
	}
	return splitArgv(payload), nil
}

// WriteFrame writes argv as a length-prefixed, NUL-separated frame to w,
// for the client side of the protocol.
func WriteFrame(w io.Writer, argv []string) error {
	payload := bytes.Join(toBytes(argv), []byte{0})
	if len(argv) > 0 {
		payload = append(payload, 0)
	}

	var lenBuf [4]byte
	binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(payload)))
	if _, err := w.Write(lenBuf[:]); err != nil {
		return fmt.Errorf("ipc: write length: %w", err)
	}
	_, err := w.Write(payload)
	return err
}

func toBytes(argv []string) [][]byte {
	out := make([][]byte, len(argv))
	for i, a := range argv {
		out[i] = []byte(a)
	}
	return out
}

func splitArgv(payload []byte) []string {
	payload = bytes.TrimSuffix(payload, []byte{0})
	if len(payload) == 0 {
		return nil
	}
	parts := bytes.Split(payload, []byte{0})
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = string(p)
	}
	return out
}
