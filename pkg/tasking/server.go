package tasking

import (
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"strings"
	"sync"

	"golang.org/x/text/encoding/unicode"
)

const (
	DefaultAddr       = "127.0.0.1:8080"
	DefaultTask       = "SLEEP=3"
	DefaultBufferSize = 4096
)

var (
	ErrServerClosed = errors.New("tasking: server closed")
)

// Server answers each connection with the current task string.
// The current task is owned by the goroutine running Serve.
type Server struct {
	addr     string
	task     string
	bufSize  int
	prompter Prompter
	out      io.Writer

	mux      sync.Mutex
	listener net.Listener
	closed   bool
}

// Option configures a Server in New.
// If any Option returns an error, New stops and returns it.
type Option = func(s *Server) error

// WithAddr sets the host:port that ListenAndServe binds.
func WithAddr(addr string) Option {
	return func(s *Server) error {
		addr = strings.TrimSpace(addr)
		if len(addr) == 0 {
			return errors.New("empty listen address")
		}
		s.addr = addr
		return nil
	}
}

// WithDefaultTask sets the task served until the operator enters another one.
func WithDefaultTask(task string) Option {
	return func(s *Server) error {
		s.task = task
		return nil
	}
}

// WithPrompter sets how the operator is asked for the next task.
func WithPrompter(p Prompter) Option {
	return func(s *Server) error {
		if p == nil {
			return errors.New("nil prompter")
		}
		s.prompter = p
		return nil
	}
}

// WithOutput sets where status lines are written.
func WithOutput(out io.Writer) Option {
	return func(s *Server) error {
		if out == nil {
			out = io.Discard
		}
		s.out = out
		return nil
	}
}

// WithBufferSize sets the maximum number of request bytes read per connection.
// Anything the client sends beyond this is ignored.
func WithBufferSize(size int) Option {
	return func(s *Server) error {
		if size <= 0 {
			return fmt.Errorf("buffer size must be positive, got %d", size)
		}
		s.bufSize = size
		return nil
	}
}

// New creates a Server. Without options it listens on DefaultAddr, serves DefaultTask,
// and prompts on the process's standard input and output.
func New(opts ...Option) (*Server, error) {
	s := &Server{
		addr:    DefaultAddr,
		task:    DefaultTask,
		bufSize: DefaultBufferSize,
		out:     os.Stdout,
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	if s.prompter == nil {
		s.prompter = NewTerminalPrompter(os.Stdin, s.out)
	}
	return s, nil
}

// Task returns the current task string.
// It must not be called while Serve is running.
func (s *Server) Task() string {
	return s.task
}

// ListenAndServe binds the configured address and calls Serve.
func (s *Server) ListenAndServe() error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.addr, err)
	}
	return s.Serve(ln)
}

// Serve accepts and handles connections on ln one at a time until an error occurs.
// After Close it returns ErrServerClosed.
func (s *Server) Serve(ln net.Listener) error {
	s.mux.Lock()
	if s.closed {
		s.mux.Unlock()
		_ = ln.Close()
		return ErrServerClosed
	}
	s.listener = ln
	s.mux.Unlock()
	defer func() {
		_ = ln.Close()
	}()

	s.printf("[+] Listening on %s\n", ln.Addr())
	for {
		conn, err := ln.Accept()
		if err != nil {
			if s.isClosed() {
				return ErrServerClosed
			}
			return fmt.Errorf("failed to accept connection: %w", err)
		}
		if err := s.handle(conn); err != nil {
			return err
		}
	}
}

// Close stops Serve. A connection already being handled is not interrupted.
func (s *Server) Close() error {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.closed = true
	if s.listener == nil {
		return nil
	}
	return s.listener.Close()
}

func (s *Server) isClosed() bool {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.closed
}

func (s *Server) handle(conn net.Conn) error {
	defer func() {
		_ = conn.Close()
	}()
	s.printf("[+] Connection from %s\n", conn.RemoteAddr())

	buf := make([]byte, s.bufSize)
	n, err := conn.Read(buf)
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to read request from %s: %w", conn.RemoteAddr(), err)
	}
	s.showRequest(buf[:n])

	answer, err := s.prompter.Prompt(s.task)
	if err != nil {
		return fmt.Errorf("failed to read task: %w", err)
	}
	if answer = strings.TrimSpace(answer); len(answer) > 0 {
		s.task = answer
	}

	if _, err := conn.Write(Response(s.task)); err != nil {
		return fmt.Errorf("failed to send task to %s: %w", conn.RemoteAddr(), err)
	}
	if err := conn.Close(); err != nil {
		return fmt.Errorf("failed to close connection: %w", err)
	}
	s.printf("[>] Sent task: %s\n\n", s.task)
	return nil
}

func (s *Server) showRequest(data []byte) {
	text, err := unicode.UTF8.NewDecoder().Bytes(data)
	if err != nil {
		s.printf("[<] (binary request)\n")
		return
	}
	s.printf("[<] Request:\n%s\n", text)
}

func (s *Server) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}
