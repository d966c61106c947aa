package transport

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/url"
	"slices"
	"strings"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/arloliu/luxdta/errs"
	"github.com/arloliu/luxdta/log"
	"github.com/arloliu/luxdta/sample"
	"github.com/arloliu/luxdta/value"
)

// WSSubprotocol is the subprotocol the controller's web interface requires.
const WSSubprotocol = "Lux_WS"

// informationMenu is the navigation entry holding the readable values.
const informationMenu = "Informationen"

// Root elements of WebSocket replies.
const (
	RootValues     = "values"
	RootNavigation = "Navigation"
	RootContent    = "Content"
)

// WSItem is one entry of a WebSocket reply.
type WSItem struct {
	ID    string
	Name  string
	Value string
}

// WSMessage is a parsed WebSocket reply.
type WSMessage struct {
	// Root is the root element name: RootValues, RootNavigation or RootContent.
	Root string
	// Items holds every item element of the document, depth first.
	Items []WSItem
}

// Find returns the first item called name.
func (m *WSMessage) Find(name string) (WSItem, bool) {
	for _, it := range m.Items {
		if it.Name == name {
			return it, true
		}
	}

	return WSItem{}, false
}

type xmlItem struct {
	ID    string    `xml:"id,attr"`
	Name  string    `xml:"name"`
	Value string    `xml:"value"`
	Items []xmlItem `xml:"item"`
}

type xmlDoc struct {
	XMLName xml.Name
	Items   []xmlItem `xml:"item"`
}

// ParseWSMessage parses an XML reply of the web interface.
func ParseWSMessage(data []byte) (*WSMessage, error) {
	var doc xmlDoc
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrUnexpectedReply, err)
	}

	msg := &WSMessage{Root: doc.XMLName.Local}
	var walk func(items []xmlItem)
	walk = func(items []xmlItem) {
		for _, it := range items {
			msg.Items = append(msg.Items, WSItem{
				ID:    it.ID,
				Name:  strings.TrimSpace(it.Name),
				Value: strings.TrimSpace(it.Value),
			})
			walk(it.Items)
		}
	}
	walk(doc.Items)

	return msg, nil
}

// Snapshot maps value names of the information menu to their display text.
type Snapshot map[string]string

// Sample converts the snapshot into a sample stamped with epoch. Fields are
// ordered by name and hold the display text, unit included.
func (s Snapshot) Sample(epoch int64) *sample.Sample {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	slices.Sort(names)

	out := sample.New(len(names) + 1)
	out.SetTime(epoch)
	for _, name := range names {
		out.Set(name, value.Of(s[name], ""))
	}

	return out
}

// WSClient talks to the controller's web interface.
type WSClient struct {
	cfg *clientConfig

	mu   sync.Mutex
	conn *websocket.Conn
}

// DialWS opens a WebSocket to host. A host without port uses DefaultWSPort;
// a full ws:// URL is used as is.
func DialWS(ctx context.Context, host string, opts ...Option) (*WSClient, error) {
	cfg, err := newClientConfig(opts)
	if err != nil {
		return nil, err
	}

	target := host
	if !strings.Contains(host, "://") {
		target = (&url.URL{Scheme: "ws", Host: withDefaultPort(host, DefaultWSPort), Path: "/"}).String()
	}

	dialer := websocket.Dialer{
		Subprotocols:     []string{WSSubprotocol},
		HandshakeTimeout: cfg.timeout,
	}
	conn, resp, err := dialer.DialContext(ctx, target, nil)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", target, err)
	}

	cfg.logger.Debug("connected to web interface",
		log.String("url", target),
		log.String("subprotocol", conn.Subprotocol()),
	)

	return &WSClient{cfg: cfg, conn: conn}, nil
}

// Close sends a normal closure and closes the connection.
func (c *WSClient) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return nil
	}
	_ = c.conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "ok"))
	err := c.conn.Close()
	c.conn = nil

	return err
}

// Request sends one text command and waits for its XML reply.
func (c *WSClient) Request(ctx context.Context, command string) (*WSMessage, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return nil, errs.ErrConnectionNotActive
	}

	release := bindContext(ctx, c.conn.NetConn(), c.cfg.timeout)
	defer release()

	c.cfg.logger.Debug("sending web command", log.String("command", redact(command)))
	if err := c.conn.WriteMessage(websocket.TextMessage, []byte(command)); err != nil {
		return nil, ctxErr(ctx, err)
	}

	_, data, err := c.conn.ReadMessage()
	if err != nil {
		return nil, ctxErr(ctx, err)
	}

	return ParseWSMessage(data)
}

// Fetch logs in and reads the information menu.
//
// The exchange is LOGIN, GET of the information menu, then REFRESH. The
// Content reply names the values and the values reply carries their text;
// both are joined by item id. An empty password is sent as "0".
//
// Returns:
//   - Snapshot: Value name to display text
//   - error: ErrLoginFailed if the navigation lacks the information menu,
//     ErrUnexpectedReply for replies with a different root element
func (c *WSClient) Fetch(ctx context.Context, password string) (Snapshot, error) {
	if password == "" {
		password = "0"
	}

	nav, err := c.Request(ctx, "LOGIN;"+password)
	if err != nil {
		return nil, err
	}
	if err := expectRoot(nav, RootNavigation); err != nil {
		return nil, err
	}
	menu, ok := nav.Find(informationMenu)
	if !ok {
		return nil, fmt.Errorf("%w: navigation has no %q entry", errs.ErrLoginFailed, informationMenu)
	}

	content, err := c.Request(ctx, "GET;"+menu.ID)
	if err != nil {
		return nil, err
	}
	if err := expectRoot(content, RootContent); err != nil {
		return nil, err
	}

	values, err := c.Request(ctx, "REFRESH")
	if err != nil {
		return nil, err
	}
	if err := expectRoot(values, RootValues); err != nil {
		return nil, err
	}

	names := make(map[string]string, len(content.Items))
	for _, it := range content.Items {
		if it.ID != "" && it.Name != "" {
			names[it.ID] = it.Name
		}
	}

	snap := make(Snapshot, len(values.Items))
	for _, it := range values.Items {
		if name, ok := names[it.ID]; ok {
			snap[name] = it.Value
		}
	}

	c.cfg.logger.Debug("fetched web values",
		log.Int("named", len(names)),
		log.Int("values", len(snap)),
	)

	return snap, nil
}

func expectRoot(msg *WSMessage, root string) error {
	if msg.Root != root {
		return fmt.Errorf("%w: expected <%s>, got <%s>", errs.ErrUnexpectedReply, root, msg.Root)
	}

	return nil
}

func redact(command string) string {
	if strings.HasPrefix(command, "LOGIN;") {
		return "LOGIN;***"
	}

	return command
}
