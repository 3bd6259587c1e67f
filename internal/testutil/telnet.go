package testutil

import (
	"bufio"
	"fmt"
	"net"
	"strings"
	"testing"
	"time"
)

// LineClient speaks the JSON line protocol for integration tests.
type LineClient struct {
	conn   net.Conn
	reader *bufio.Reader
	t      *testing.T
}

// NewLineClient dials the given address and returns a test client.
//
// Precondition: addr must be a valid "host:port" string with a listening server.
// Postcondition: Returns a connected LineClient or fails the test.
func NewLineClient(t *testing.T, addr string) *LineClient {
	t.Helper()
	start := time.Now()

	conn, err := net.DialTimeout("tcp", addr, 5*time.Second)
	if err != nil {
		t.Fatalf("connecting to %s: %v [%s]", addr, err, time.Since(start))
	}

	t.Cleanup(func() {
		conn.Close()
	})

	t.Logf("line client connected to %s [%s]", addr, time.Since(start))
	return &LineClient{
		conn:   conn,
		reader: bufio.NewReaderSize(conn, 64*1024),
		t:      t,
	}
}

// Send writes one request line.
//
// Precondition: text must not contain a newline.
func (c *LineClient) Send(text string) {
	c.t.Helper()
	_ = c.conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
	if _, err := fmt.Fprintf(c.conn, "%s\r\n", text); err != nil {
		c.t.Fatalf("sending %q: %v", text, err)
	}
}

// ReadLine returns the next response line without its terminator, or fails
// the test on timeout.
func (c *LineClient) ReadLine(timeout time.Duration) string {
	c.t.Helper()
	_ = c.conn.SetReadDeadline(time.Now().Add(timeout))
	line, err := c.reader.ReadString('\n')
	if err != nil {
		c.t.Fatalf("reading response: got %q, error: %v", line, err)
	}
	return strings.TrimRight(line, "\r\n")
}

// Request sends text and returns the response line.
func (c *LineClient) Request(text string) string {
	c.t.Helper()
	c.Send(text)
	return c.ReadLine(5 * time.Second)
}

// Close closes the underlying connection.
func (c *LineClient) Close() {
	c.conn.Close()
}
