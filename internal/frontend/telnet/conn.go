package telnet

import (
	"bufio"
	"bytes"
	"errors"
	"net"
	"sync"
	"time"
)

// Telnet IAC (Interpret As Command) constants per RFC 854.
const (
	IAC  byte = 255 // Interpret As Command
	DONT byte = 254
	DO   byte = 253
	WONT byte = 252
	WILL byte = 251
	SB   byte = 250 // Sub-negotiation Begin
	SE   byte = 240 // Sub-negotiation End
	NOP  byte = 241
	GA   byte = 249 // Go Ahead

	OptEcho            byte = 1
	OptSuppressGoAhead byte = 3
	OptLinemode        byte = 34
)

// DefaultMaxLineBytes is used when a Conn is created with a non-positive limit.
const DefaultMaxLineBytes = 1 << 20

// ErrLineTooLong is returned by ReadLine when a line exceeds the limit. The
// remainder of the line has been consumed, so the next ReadLine starts fresh.
var ErrLineTooLong = errors.New("line exceeds maximum length")

// Conn is one client of the line protocol. Telnet clients may interleave IAC
// sequences with their requests; those are dropped. JSON text is UTF-8 and
// never contains 0xFF, so filtering cannot corrupt a request.
type Conn struct {
	raw    net.Conn
	reader *bufio.Reader
	mu     sync.Mutex

	readTimeout  time.Duration
	writeTimeout time.Duration
	maxLine      int
}

// NewConn wraps a raw TCP connection.
//
// Precondition: raw must be a valid, open network connection.
// Postcondition: Returns a Conn ready for reading and writing.
func NewConn(raw net.Conn, readTimeout, writeTimeout time.Duration, maxLine int) *Conn {
	if maxLine <= 0 {
		maxLine = DefaultMaxLineBytes
	}
	return &Conn{
		raw:          raw,
		reader:       bufio.NewReaderSize(raw, 64*1024),
		readTimeout:  readTimeout,
		writeTimeout: writeTimeout,
		maxLine:      maxLine,
	}
}

// ReadLine reads one request line without its terminator.
//
// Postcondition: Returns the line, ErrLineTooLong for an oversized line, or a
// read error (including io.EOF).
func (c *Conn) ReadLine() ([]byte, error) {
	if c.readTimeout > 0 {
		_ = c.raw.SetReadDeadline(time.Now().Add(c.readTimeout))
	}

	var line bytes.Buffer
	overflow := false
	for {
		b, err := c.reader.ReadByte()
		if err != nil {
			return line.Bytes(), err
		}

		if b == IAC {
			if err := c.handleIAC(); err != nil {
				return line.Bytes(), err
			}
			continue
		}

		if b == '\n' {
			break
		}
		if b == '\r' {
			next, err := c.reader.Peek(1)
			if err == nil && len(next) > 0 && next[0] == '\n' {
				_, _ = c.reader.ReadByte()
			}
			break
		}

		if b < 32 && b != '\t' {
			continue
		}
		if overflow {
			continue
		}
		if line.Len() >= c.maxLine {
			overflow = true
			continue
		}
		line.WriteByte(b)
	}

	if overflow {
		return nil, ErrLineTooLong
	}
	return line.Bytes(), nil
}

// handleIAC consumes the rest of an IAC sequence.
func (c *Conn) handleIAC() error {
	cmd, err := c.reader.ReadByte()
	if err != nil {
		return err
	}

	switch cmd {
	case WILL, WONT, DO, DONT:
		_, err := c.reader.ReadByte()
		return err
	case SB:
		for {
			b, err := c.reader.ReadByte()
			if err != nil {
				return err
			}
			if b != IAC {
				continue
			}
			next, err := c.reader.ReadByte()
			if err != nil {
				return err
			}
			if next == SE {
				return nil
			}
		}
	}
	return nil
}

// WriteLine sends one response line terminated by "\n".
//
// Precondition: line must not contain a newline.
func (c *Conn) WriteLine(line []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.writeTimeout > 0 {
		_ = c.raw.SetWriteDeadline(time.Now().Add(c.writeTimeout))
	}
	buf := make([]byte, 0, len(line)+1)
	buf = append(buf, line...)
	buf = append(buf, '\n')
	_, err := c.raw.Write(buf)
	return err
}

// Close closes the underlying TCP connection.
func (c *Conn) Close() error {
	return c.raw.Close()
}

// RemoteAddr returns the remote network address of the client.
func (c *Conn) RemoteAddr() net.Addr {
	return c.raw.RemoteAddr()
}

// FilterIAC removes Telnet IAC sequences from raw input bytes.
//
// Postcondition: Returns input with all IAC sequences removed; an escaped
// IAC IAC becomes a single 0xFF.
func FilterIAC(input []byte) []byte {
	result := make([]byte, 0, len(input))
	i := 0
	for i < len(input) {
		if input[i] == IAC && i+1 < len(input) {
			switch input[i+1] {
			case WILL, WONT, DO, DONT:
				i += 3
				continue
			case SB:
				// An unterminated sub-negotiation swallows the rest of the input.
				j := len(input)
				for k := i + 2; k < len(input)-1; k++ {
					if input[k] == IAC && input[k+1] == SE {
						j = k + 2
						break
					}
				}
				i = j
				continue
			case IAC:
				result = append(result, IAC)
				i += 2
				continue
			default:
				i += 2
				continue
			}
		}
		result = append(result, input[i])
		i++
	}
	return result
}
