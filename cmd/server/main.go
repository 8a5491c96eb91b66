package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/dlarsson/snaplet-oauth2/auth"
	"github.com/dlarsson/snaplet-oauth2/backend/memory"
	"github.com/dlarsson/snaplet-oauth2/clients"
	"github.com/dlarsson/snaplet-oauth2/internal/config"
	"github.com/dlarsson/snaplet-oauth2/scope"
	"github.com/dlarsson/snaplet-oauth2/server"
)

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
	log.Info().Msg("server stopped")
}

func run() (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			debug.PrintStack()
			returnError = errors.Errorf("panic recovered: %v", r)
		}
	}()

	c := config.New()
	displayAppname(c.GetAppName())

	handler, err := buildHandler(c)
	if err != nil {
		return err
	}

	httpServer := &http.Server{
		Addr:         c.GetPort(),
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	go listenAndServe(httpServer)
	waitForStopSignal()
	return shutdown(httpServer)
}

// buildHandler wires the in-memory backend, a demo scope vocabulary and a
// demo client into the OAuth2 server. The decider auto-grants every request;
// a real deployment supplies one that authenticates the resource owner.
func buildHandler(c config.Config) (http.Handler, error) {
	codec, err := scope.NewSimple([]string{"read", "write", "profile"}, "read")
	if err != nil {
		return nil, errors.Wrap(err, "[buildHandler] scope.NewSimple")
	}

	store := memory.New[string]()
	service, err := auth.NewService[string](store, codec,
		auth.WithGrantTTL[string](c.GetGrantTTL()),
		auth.WithTokenTTL[string](c.GetAccessTokenTTL()),
	)
	if err != nil {
		return nil, errors.Wrap(err, "[buildHandler] auth.NewService")
	}

	demoClient, err := clients.New("demo", "http://localhost:3000/callback")
	if err != nil {
		return nil, errors.Wrap(err, "[buildHandler] clients.New")
	}
	if err := service.RegisterClient(demoClient); err != nil {
		return nil, errors.Wrap(err, "[buildHandler] RegisterClient")
	}
	log.Info().Str("client_id", demoClient.ID).Msg("registered demo client")

	autoGrant := func(w http.ResponseWriter, r *http.Request, client *clients.Client, scopes []string) auth.Decision {
		return auth.DecisionGranted
	}

	srv, err := server.New[string](service, autoGrant,
		server.WithTokenRate[string](c.GetTokenRequestsPerSecond(), c.GetTokenRequestBurst()),
	)
	if err != nil {
		return nil, errors.Wrap(err, "[buildHandler] server.New")
	}

	mux := http.NewServeMux()
	mux.Handle("/", srv)
	mux.Handle("GET /me", srv.Protect([]string{"profile"}, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprintln(w, "hello, bearer")
	}))
	return mux, nil
}

func listenAndServe(httpServer *http.Server) {
	log.Info().Str("addr", httpServer.Addr).Msg("server listening")
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Err(err).Msg("server.ListenAndServe")
	}
}

func waitForStopSignal() {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
}

func shutdown(httpServer *http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		return errors.Wrap(err, "server.Shutdown")
	}
	return nil
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
