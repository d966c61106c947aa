package transport

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"strconv"
	"sync"

	"github.com/arloliu/luxdta/endian"
	"github.com/arloliu/luxdta/errs"
	"github.com/arloliu/luxdta/internal/pool"
	"github.com/arloliu/luxdta/live"
	"github.com/arloliu/luxdta/log"
)

// Command words of the live wire protocol.
const (
	CmdWriteParameter   int32 = 3002
	CmdReadParameters   int32 = 3003
	CmdReadCalculations int32 = 3004
	CmdReadVisibilities int32 = 3005
)

// Client talks to the controller's live TCP interface.
//
// Every frame is a sequence of big-endian int32 words. Requests on one
// Client are serialized; a Client is safe for concurrent use.
type Client struct {
	cfg  *clientConfig
	addr string

	mu   sync.Mutex
	conn net.Conn
	r    *bufio.Reader
}

// Dial connects to the live interface at addr. A missing port defaults to
// DefaultTCPPort.
//
// Parameters:
//   - ctx: Bounds the connection attempt
//   - addr: "host" or "host:port"
//   - opts: Client options
//
// Returns:
//   - *Client: Connected client
//   - error: Option or dial error
func Dial(ctx context.Context, addr string, opts ...Option) (*Client, error) {
	cfg, err := newClientConfig(opts)
	if err != nil {
		return nil, err
	}

	addr = withDefaultPort(addr, DefaultTCPPort)

	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", addr, err)
	}

	cfg.logger.Debug("connected to live interface", log.String("addr", addr))

	return &Client{
		cfg:  cfg,
		addr: addr,
		conn: conn,
		r:    bufio.NewReader(conn),
	}, nil
}

// Addr returns the remote address the client is connected to.
func (c *Client) Addr() string { return c.addr }

// Close closes the connection. Further requests fail with
// ErrConnectionNotActive, as they do after any failed exchange.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return nil
	}
	err := c.conn.Close()
	c.conn = nil

	return err
}

// ReadParameters reads the Parameters vector (command 3003).
func (c *Client) ReadParameters(ctx context.Context) ([]int32, error) {
	return c.readVector(ctx, CmdReadParameters)
}

// ReadCalculations reads the Calculations vector (command 3004).
func (c *Client) ReadCalculations(ctx context.Context) ([]int32, error) {
	return c.readVector(ctx, CmdReadCalculations)
}

// ReadVisibilities reads the Visibilities vector (command 3005).
func (c *Client) ReadVisibilities(ctx context.Context) ([]int32, error) {
	return c.readVector(ctx, CmdReadVisibilities)
}

// Read reads the raw array matching v.
func (c *Client) Read(ctx context.Context, v *live.Vector) ([]int32, error) {
	switch v {
	case live.Parameters():
		return c.ReadParameters(ctx)
	case live.Calculations():
		return c.ReadCalculations(ctx)
	case live.Visibilities():
		return c.ReadVisibilities(ctx)
	default:
		return nil, fmt.Errorf("%w: %s", errs.ErrUnknownVector, v.Name())
	}
}

// Write sends the write requests one by one (command 3002) and stops at the
// first failure.
func (c *Client) Write(ctx context.Context, reqs ...live.WriteRequest) error {
	for _, req := range reqs {
		if err := c.writeOne(ctx, req); err != nil {
			return fmt.Errorf("write position %d: %w", req.Position, err)
		}
	}

	return nil
}

func (c *Client) readVector(ctx context.Context, cmd int32) ([]int32, error) {
	var out []int32
	err := c.exchange(ctx, []int32{cmd, 0}, func(fr *frameReader) error {
		if err := fr.expect(cmd); err != nil {
			return err
		}
		if cmd == CmdReadCalculations {
			// status word
			if _, err := fr.int32(); err != nil {
				return err
			}
		}

		length, err := fr.int32()
		if err != nil {
			return err
		}
		if length < 0 || length > maxVectorLength {
			return fmt.Errorf("%w: command %d announced %d values", errs.ErrUnexpectedReply, cmd, length)
		}

		out = make([]int32, length)
		for i := range out {
			if cmd == CmdReadVisibilities {
				b, err := fr.int8()
				if err != nil {
					return err
				}
				out[i] = int32(b)

				continue
			}
			if out[i], err = fr.int32(); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	c.cfg.logger.Debug("read live vector",
		log.Int("command", int(cmd)),
		log.Int("values", len(out)),
	)

	return out, nil
}

func (c *Client) writeOne(ctx context.Context, req live.WriteRequest) error {
	return c.exchange(ctx, []int32{CmdWriteParameter, int32(req.Position), req.Value}, func(fr *frameReader) error {
		if err := fr.expect(CmdWriteParameter); err != nil {
			return err
		}
		status, err := fr.int32()
		if err != nil {
			return err
		}

		c.cfg.logger.Info("wrote parameter",
			log.Int("position", req.Position),
			log.Int64("value", int64(req.Value)),
			log.Int64("status", int64(status)),
		)

		return nil
	})
}

// exchange sends one request frame and hands the reply to read while
// holding the connection.
func (c *Client) exchange(ctx context.Context, words []int32, read func(*frameReader) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return errs.ErrConnectionNotActive
	}

	release := bindContext(ctx, c.conn, c.cfg.timeout)
	defer release()

	frame := pool.GetFrameBuffer()
	defer pool.PutFrameBuffer(frame)
	for _, w := range words {
		frame.AppendInt32(w)
	}
	if _, err := frame.WriteTo(c.conn); err != nil {
		_ = c.conn.Close()
		c.conn = nil

		return ctxErr(ctx, err)
	}

	if err := read(&frameReader{r: c.r, engine: endian.WireEngine()}); err != nil {
		if !errors.Is(err, errs.ErrUnexpectedReply) {
			err = ctxErr(ctx, err)
		}
		c.cfg.logger.Warn("live request failed, dropping connection",
			log.Int("command", int(words[0])),
			log.Err(err),
		)
		// the reply stream is out of step once a frame fails
		_ = c.conn.Close()
		c.conn = nil

		return err
	}

	return nil
}

type frameReader struct {
	r      io.Reader
	engine endian.EndianEngine
	buf    [4]byte
}

func (f *frameReader) int32() (int32, error) {
	if _, err := io.ReadFull(f.r, f.buf[:]); err != nil {
		return 0, err
	}

	return int32(f.engine.Uint32(f.buf[:])), nil
}

func (f *frameReader) int8() (int8, error) {
	if _, err := io.ReadFull(f.r, f.buf[:1]); err != nil {
		return 0, err
	}

	return int8(f.buf[0]), nil
}

func (f *frameReader) expect(cmd int32) error {
	got, err := f.int32()
	if err != nil {
		return err
	}
	if got != cmd {
		return fmt.Errorf("%w: sent command %d, reply echoes %d", errs.ErrUnexpectedReply, cmd, got)
	}

	return nil
}

func withDefaultPort(addr string, port int) string {
	if _, _, err := net.SplitHostPort(addr); err == nil {
		return addr
	}

	return net.JoinHostPort(addr, strconv.Itoa(port))
}
