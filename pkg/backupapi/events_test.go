package backupapi

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/vaultline/backupsdk/internal/testingx"
	"github.com/vaultline/backupsdk/pkg/backupapi/apimodel"
)

func TestClientEventStreamURL(t *testing.T) {
	tests := []struct {
		serverAddress string
		want          string
	}{{
		serverAddress: "http://127.0.0.1:4411",
		want:          "ws://127.0.0.1:4411/api/v1/events/stream",
	}, {
		serverAddress: "https://backup.example.com/",
		want:          "wss://backup.example.com/api/v1/events/stream",
	}, {
		serverAddress: "https://backup.example.com/prefix/?x=1",
		want:          "wss://backup.example.com/prefix/api/v1/events/stream",
	}}
	for _, tt := range tests {
		t.Run(tt.serverAddress, func(t *testing.T) {
			client, err := NewClient(tt.serverAddress, "admin", "secret", nil)
			if err != nil {
				t.Fatal(err)
			}
			got, err := client.eventStreamURL()
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatal(diff)
			}
		})
	}
}

func TestClientStreamEvents(t *testing.T) {
	newServer := func() *testingx.HTTPServer {
		fs := testingx.NewFakeBackupServer("admin", "secret")
		fs.AddEvent(apimodel.StreamableEvent{ResourceID: "bob", Type: apimodel.EventUserNew})
		fs.AddEvent(apimodel.StreamableEvent{ResourceID: "job-1", Type: apimodel.EventJobNew})
		return testingx.MustNewHTTPServer(fs.NewMux())
	}

	t.Run("we deliver events in order until the handler fails", func(t *testing.T) {
		srv := newServer()
		defer srv.Close()
		client, err := NewClient(srv.URL, "admin", "secret", nil)
		if err != nil {
			t.Fatal(err)
		}
		expected := errors.New("mocked error")
		var got []string
		err = client.StreamEvents(context.Background(), func(ev *apimodel.StreamableEvent) error {
			got = append(got, ev.ResourceID)
			if len(got) >= 2 {
				return expected
			}
			return nil
		})
		if !errors.Is(err, expected) {
			t.Fatal("unexpected error", err)
		}
		if diff := cmp.Diff([]string{"bob", "job-1"}, got); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("we return the context error when the context is done", func(t *testing.T) {
		srv := newServer()
		defer srv.Close()
		client, err := NewClient(srv.URL, "admin", "secret", nil)
		if err != nil {
			t.Fatal(err)
		}
		ctx, cancel := context.WithTimeout(context.Background(), 250*time.Millisecond)
		defer cancel()
		var count int
		err = client.StreamEvents(ctx, func(ev *apimodel.StreamableEvent) error {
			count++
			return nil
		})
		if !errors.Is(err, context.DeadlineExceeded) {
			t.Fatal("unexpected error", err)
		}
		if count != 2 {
			t.Fatal("unexpected number of events", count)
		}
	})

	t.Run("we return an APIError when the credentials are wrong", func(t *testing.T) {
		srv := newServer()
		defer srv.Close()
		client, err := NewClient(srv.URL, "admin", "antani", nil)
		if err != nil {
			t.Fatal(err)
		}
		err = client.StreamEvents(context.Background(), func(ev *apimodel.StreamableEvent) error {
			t.Fatal("did not expect any event")
			return nil
		})
		var apiErr *APIError
		if !errors.As(err, &apiErr) || apiErr.Status != http.StatusForbidden {
			t.Fatal("unexpected error", err)
		}
	})
}
