package livenav

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/net/websocket"

	"github.com/theoremus-urban-solutions/gnss-livenav/nav"
)

// Server is the HTTP surface over the navigation core.
type Server struct {
	nav  *nav.Navigator
	http *http.Server
}

// NewServer creates the HTTP server for the given navigator
func NewServer(navigator *nav.Navigator, port int) *Server {
	s := &Server{nav: navigator}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/route", s.handleCreateRoute)
	mux.HandleFunc("/api/route/clear", s.handleClearRoute)
	mux.HandleFunc("/api/gnss", s.handleFix)
	mux.HandleFunc("/api/gnss/gtfsrt", s.handleFixGTFSRT)
	mux.HandleFunc("/api/position/latest", s.handleLatestPosition)
	mux.HandleFunc("/api/nav", s.handleNavStatus)
	mux.Handle("/api/ws/nav", websocket.Handler(s.handleNavSocket))

	s.http = &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return s
}

// Start begins serving in the background.
func (s *Server) Start() {
	go func() {
		if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()
	log.Printf("server listening on %s", s.http.Addr)
}

// HandleGracefulShutdown blocks until a termination signal arrives and then
// drains the server.
func (s *Server) HandleGracefulShutdown() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	log.Printf("shutdown signal received")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.http.Shutdown(ctx); err != nil {
		log.Printf("server shutdown error: %v", err)
	} else {
		log.Printf("server shut down successfully")
	}
}
