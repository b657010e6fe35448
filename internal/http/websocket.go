package http

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/fivetwenty-io/watson/internal/constants"
	"github.com/gorilla/websocket"
)

// DialWebsocket opens a websocket to path on the service host. The base URL
// scheme is switched to ws/wss and the handshake carries the same
// authentication and default headers as regular calls.
func (c *Client) DialWebsocket(ctx context.Context, path string, query url.Values) (*websocket.Conn, error) {
	wsURL := websocketURL(c.baseURL) + path
	if encoded := query.Encode(); encoded != "" {
		wsURL += "?" + encoded
	}

	handshake, err := http.NewRequestWithContext(ctx, http.MethodGet, wsURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating websocket request: %w", err)
	}

	for key, value := range c.defaultHeaders {
		setHeader(handshake.Header, key, value)
	}

	handshake.Header.Set(constants.HeaderUserAgent, c.userAgent)

	if c.authenticator != nil {
		err = c.authenticator.Authenticate(ctx, handshake)
		if err != nil {
			return nil, fmt.Errorf("authenticating websocket: %w", err)
		}
	}

	dialer := websocket.Dialer{
		HandshakeTimeout: constants.WebsocketHandshakeTimeout,
		Proxy:            http.ProxyFromEnvironment,
	}

	if c.insecure {
		dialer.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec // opt-in
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("Websocket Dial", map[string]interface{}{
			"url": redactURL(handshake.URL),
		})
	}

	conn, resp, err := dialer.DialContext(ctx, handshake.URL.String(), handshake.Header)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}

	if err != nil {
		if resp != nil {
			return nil, fmt.Errorf("dialing websocket (status %d): %w", resp.StatusCode, err)
		}

		return nil, fmt.Errorf("dialing websocket: %w", err)
	}

	conn.SetReadLimit(constants.WebsocketReadLimit)

	return conn, nil
}

func websocketURL(baseURL string) string {
	switch {
	case strings.HasPrefix(baseURL, "https://"):
		return "wss://" + strings.TrimPrefix(baseURL, "https://")
	case strings.HasPrefix(baseURL, "http://"):
		return "ws://" + strings.TrimPrefix(baseURL, "http://")
	default:
		return baseURL
	}
}
