// Package ws implements the real-time broadcast channel: a WebSocket hub
// that fans every task mutation event out to every connected client.
//
// Delivery is best effort. There is no per-client filtering, no
// persistence of missed events, no acknowledgment, and no replay after a
// reconnect; a client that falls behind is disconnected rather than
// awaited.
package ws
