// Package transport implements the two network interfaces of a heat pump
// controller.
//
// Client speaks the live TCP protocol (port 8889). Every frame is a
// sequence of big-endian int32 words:
//
//	request                      reply
//	3003, 0                      3003, length, length x int32
//	3004, 0                      3004, status, length, length x int32
//	3005, 0                      3005, length, length x int8
//	3002, position, value        3002, status
//
// The arrays are decoded with the vectors of package live:
//
//	c, err := transport.Dial(ctx, "heatpump.local")
//	raw, err := c.ReadCalculations(ctx)
//	s := live.Calculations().Read(raw)
//
// WSClient speaks the XML protocol of the web interface (port 8214,
// subprotocol Lux_WS) and reads the display values of the information menu.
//
// Every blocking call takes a context. A failed exchange closes the TCP
// connection, since the reply stream can no longer be trusted.
package transport
