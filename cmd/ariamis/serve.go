package main

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Deskbot/Ariamis/internal/demo"
	"github.com/Deskbot/Ariamis/pkg/render"
)

func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the interactive demo page",
		Long: `Serve the demo page over HTTP. Browser clicks are forwarded over a
WebSocket, dispatched into the server-held tree, and the re-rendered
page is pushed back. Prometheus metrics are exposed on /metrics.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			srv := newDemoServer()

			r := chi.NewRouter()
			r.Get("/", srv.handleIndex)
			r.Get("/live", srv.handleLive)
			r.Handle("/metrics", promhttp.Handler())

			success("Demo server listening on %s", addr)
			info("open http://localhost%s in a browser", addr)
			return http.ListenAndServe(addr, r)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", ":8080", "Listen address")

	return cmd
}

// demoServer holds one shared page tree. All dispatch and rendering happens
// under the mutex; the library itself is unsynchronized.
type demoServer struct {
	mu       sync.Mutex
	page     *demo.Page
	renderer *render.Renderer
	upgrader websocket.Upgrader
	tracer   trace.Tracer

	eventsTotal    *prometheus.CounterVec
	renderDuration prometheus.Histogram
}

func newDemoServer() *demoServer {
	return &demoServer{
		page:     demo.NewPage(),
		renderer: render.New(render.Config{EventMarkers: true}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // Demo only; all origins allowed
			},
		},
		tracer: otel.Tracer("ariamis/demo"),
		eventsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ariamis",
			Name:      "events_total",
			Help:      "Total number of demo events dispatched",
		}, []string{"id", "status"}),
		renderDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: "ariamis",
			Name:      "render_duration_seconds",
			Help:      "Page render duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}

// clickMessage is what the client script sends for each click on a marked
// element.
type clickMessage struct {
	ID string `json:"id"`
}

// updateMessage carries the re-rendered page back to the client.
type updateMessage struct {
	HTML  string `json:"html,omitempty"`
	Error string `json:"error,omitempty"`
}

func (s *demoServer) handleIndex(w http.ResponseWriter, r *http.Request) {
	html, err := s.renderPage()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, pageShell, html)
}

// handleLive upgrades to a WebSocket and dispatches click messages into the
// shared tree until the client disconnects.
func (s *demoServer) handleLive(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	for {
		var msg clickMessage
		if err := conn.ReadJSON(&msg); err != nil {
			return
		}

		update := s.dispatch(r.Context(), msg.ID)
		if err := conn.WriteJSON(update); err != nil {
			return
		}
	}
}

// dispatch runs one click through the tree inside a span and returns the
// re-rendered page.
func (s *demoServer) dispatch(ctx context.Context, id string) updateMessage {
	_, span := s.tracer.Start(ctx, "demo.click",
		trace.WithAttributes(attribute.String("element.id", id)),
	)
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.page.Click(id); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.eventsTotal.WithLabelValues(id, "error").Inc()
		return updateMessage{Error: err.Error()}
	}
	s.eventsTotal.WithLabelValues(id, "success").Inc()

	html, err := s.renderPageLocked()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return updateMessage{Error: err.Error()}
	}
	span.SetAttributes(attribute.Int("page.count", s.page.Count()))
	return updateMessage{HTML: html}
}

func (s *demoServer) renderPage() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.renderPageLocked()
}

func (s *demoServer) renderPageLocked() (string, error) {
	start := time.Now()
	html, err := s.renderer.ToString(s.page.Root())
	s.renderDuration.Observe(time.Since(start).Seconds())
	return html, err
}

// pageShell wraps the rendered tree with the client script that forwards
// clicks on marked elements and swaps in pushed updates.
const pageShell = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Ariamis demo</title>
</head>
<body>
%s
<script>
(function() {
    'use strict';

    var ws = new WebSocket((location.protocol === 'https:' ? 'wss:' : 'ws:') + '//' + location.host + '/live');

    ws.onmessage = function(e) {
        var msg;
        try {
            msg = JSON.parse(e.data);
        } catch (err) {
            return;
        }
        if (msg.error) {
            console.error('[Ariamis]', msg.error);
            return;
        }
        var app = document.getElementById('app');
        if (app && msg.html) {
            app.outerHTML = msg.html;
        }
    };

    document.addEventListener('click', function(e) {
        var target = e.target.closest('[data-on-click]');
        if (!target || ws.readyState !== WebSocket.OPEN) {
            return;
        }
        ws.send(JSON.stringify({id: target.id}));
    });
})();
</script>
</body>
</html>
`
