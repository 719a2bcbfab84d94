package main

import (
	"flag"
	"log"
	"time"

	lib "github.com/theoremus-urban-solutions/gnss-livenav"
	"github.com/theoremus-urban-solutions/gnss-livenav/config"
	"github.com/theoremus-urban-solutions/gnss-livenav/feed"
	"github.com/theoremus-urban-solutions/gnss-livenav/nav"
	"github.com/theoremus-urban-solutions/gnss-livenav/osrm"
	"github.com/theoremus-urban-solutions/gnss-livenav/route"
)

func main() {
	osrmURL := flag.String("osrm", "", "routing engine base URL (overrides config)")
	port := flag.Int("port", 0, "listen port (overrides config)")
	flag.Parse()

	lib.InitLogging()
	if err := config.LoadAppConfig(); err != nil {
		log.Fatalf("config: %v", err)
	}
	cfg := config.Config
	if *osrmURL != "" {
		cfg.OSRM.BaseURL = *osrmURL
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}

	client := osrm.NewClient(cfg.OSRM.BaseURL, cfg.OSRM.Profile, time.Duration(cfg.OSRM.TimeoutMS)*time.Millisecond)
	planner := route.NewPlanner(client, cfg.Nav.DensifyStepM)
	store := route.NewStore()
	adapter := feed.NewAdapter(time.Duration(cfg.Feed.HistorySeconds) * time.Second)
	tracker := nav.NewTracker(store, cfg.Nav.ProjectionWindow, cfg.Nav.BackwardTolerance)
	notifier := nav.NewNotifier()
	policy := nav.NewPolicy(nav.PolicyConfig{
		DriftThresholdM:       cfg.Nav.DriftThresholdM,
		Debounce:              time.Duration(cfg.Nav.DebounceMS) * time.Millisecond,
		Cooldown:              time.Duration(cfg.Nav.CooldownMS) * time.Millisecond,
		FailureCooldown:       time.Duration(cfg.Nav.FailureCooldownMS) * time.Millisecond,
		MaxAttempts:           cfg.Nav.MaxRerouteAttempts,
		WaypointPassedBufferM: cfg.Nav.WaypointPassedBufferM,
		CallTimeout:           time.Duration(cfg.OSRM.TimeoutMS) * time.Millisecond,
	}, store, planner, notifier)
	navigator := nav.NewNavigator(adapter, store, tracker, policy, planner, notifier)

	server := lib.NewServer(navigator, cfg.Server.Port)
	server.Start()
	server.HandleGracefulShutdown()
}
