package backupapi

//
// events.go - live event stream over a websocket
//

import (
	"context"
	"net/http"
	"net/url"

	"github.com/gorilla/websocket"
	"github.com/vaultline/backupsdk/internal/apijson"
	"github.com/vaultline/backupsdk/pkg/backupapi/apimodel"
)

// eventStreamPath is the URL path of the event stream.
const eventStreamPath = "/api/v1/events/stream"

// EventHandler handles an event received by [*Client.StreamEvents]. Returning
// an error stops the stream and causes StreamEvents to return the error.
type EventHandler func(ev *apimodel.StreamableEvent) error

// eventStreamAuth is the first message we send on the event stream.
type eventStreamAuth struct {
	Username string
	AuthType string
	Password string
}

// eventStreamURL returns the websocket URL of the event stream.
func (c *Client) eventStreamURL() (string, error) {
	URL, err := url.Parse(c.serverAddress)
	if err != nil {
		return "", err
	}
	switch URL.Scheme {
	case "https":
		URL.Scheme = "wss"
	default:
		URL.Scheme = "ws"
	}
	URL.RawQuery = ""
	return URL.JoinPath(eventStreamPath).String(), nil
}

// StreamEvents subscribes to the live event stream and calls handler for each
// event, in the order in which the server sends them. This function blocks
// until ctx is done, the handler fails, or the connection fails, and returns,
// respectively, ctx.Err(), the handler error, or the connection error. When
// the server rejects our credentials, it returns an [*APIError].
func (c *Client) StreamEvents(ctx context.Context, handler EventHandler) error {
	streamURL, err := c.eventStreamURL()
	if err != nil {
		return err
	}
	logger := c.endpoint.Logger
	dialer := websocket.Dialer{Proxy: http.ProxyFromEnvironment}
	headers := http.Header{}
	headers.Set("User-Agent", c.endpoint.UserAgent)
	logger.Debugf("backupapi: > GET %s", streamURL)
	conn, _, err := dialer.DialContext(ctx, streamURL, headers)
	if err != nil {
		logger.Debugf("backupapi: < %s", err.Error())
		return err
	}
	logger.Debug("backupapi: < 101")
	defer conn.Close()

	// unblock ReadMessage when the context is done
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	auth := &eventStreamAuth{
		Username: c.username,
		AuthType: apimodel.AuthTypePassword,
		Password: c.password,
	}
	if err := conn.WriteJSON(auth); err != nil {
		return streamError(ctx, err)
	}
	_, data, err := conn.ReadMessage()
	if err != nil {
		return streamError(ctx, err)
	}
	var envelope apimodel.APIResponseMessage
	if err := apijson.Unmarshal(data, &envelope); err != nil {
		return decodeError(eventStreamPath, err)
	}
	if !apimodel.IsSuccessStatus(envelope.Status) {
		return &APIError{Status: envelope.Status, Message: envelope.Message}
	}

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return streamError(ctx, err)
		}
		var ev apimodel.StreamableEvent
		if err := apijson.Unmarshal(data, &ev); err != nil {
			return decodeError(eventStreamPath, err)
		}
		logger.Debugf("backupapi: event %d for %s", ev.Type, ev.ResourceID)
		if err := handler(&ev); err != nil {
			return err
		}
	}
}

// streamError prefers the context error, since closing the connection
// when the context is done causes the pending read to fail.
func streamError(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	return err
}
