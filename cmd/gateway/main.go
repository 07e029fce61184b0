package main

import (
	"context"
	"log"
	"net/http"
	"net/url"
	"os"
	"time"

	"restaurant-os/offline"
	"restaurant-os/realtime"

	"github.com/joho/godotenv"
)

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// wsURL derives the hub's socket address from the upstream HTTP address
func wsURL(upstream string) string {
	u, err := url.Parse(upstream)
	if err != nil {
		return "ws://localhost:8080/ws"
	}
	scheme := "ws"
	if u.Scheme == "https" {
		scheme = "wss"
	}
	return scheme + "://" + u.Host + "/ws"
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	upstream := getEnv("UPSTREAM_URL", "http://localhost:8080")
	port := getEnv("GATEWAY_PORT", "8090")

	gateway, err := offline.NewGateway(upstream, &http.Client{Timeout: 10 * time.Second})
	if err != nil {
		log.Fatal("Failed to create gateway:", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := gateway.Install(ctx); err != nil {
		// The shell precache is best-effort at boot; assets get cached
		// lazily on first request if the upstream was down.
		log.Printf("Shell precache incomplete: %v", err)
	}
	cancel()
	gateway.Activate()

	// Broadcast events mark related cached reads stale, the same way the
	// browser client re-fetches affected views on each event.
	eventPaths := map[string]string{
		realtime.EventNewOrder:              "/api/orders",
		realtime.EventOrderStatusUpdate:     "/api/orders",
		realtime.EventOrderItemStatusUpdate: "/api/orders",
		realtime.EventTableStatusUpdate:     "/api/tables",
	}
	client := realtime.NewClient(wsURL(upstream), func(msg realtime.Message) {
		if path, ok := eventPaths[msg.Type]; ok {
			gateway.InvalidateRelated(path)
		}
	})
	go client.Run()
	defer client.Close()

	addr := ":" + port
	log.Printf("🛰  Offline gateway for %s running on http://localhost%s", upstream, addr)
	if err := http.ListenAndServe(addr, gateway); err != nil {
		log.Fatal("Failed to start gateway:", err)
	}
}
