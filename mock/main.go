package main

import (
	"embed"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"time"
)

//go:embed files/*.json
var fixtures embed.FS

func main() {
	// Default port
	port := "8081"

	// Check if port is provided as command line argument
	if len(os.Args) > 1 {
		port = os.Args[1]
	}

	http.HandleFunc("/api/v1/flights/searchAirport", requireKey(SearchAirportHandler))
	http.HandleFunc("/api/v2/flights/searchFlights", requireKey(SearchFlightsHandler))

	addr := fmt.Sprintf(":%s", port)
	fmt.Printf("Sky-scrapper mock running on port %s...\n", port)
	if err := http.ListenAndServe(addr, nil); err != nil {
		log.Fatal(err)
	}
}

// requireKey rejects calls without a RapidAPI key the way the real gateway does.
func requireKey(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		if r.Header.Get("x-rapidapi-key") == "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"message":"Invalid API key. Go to https://docs.rapidapi.com/docs/keys for more info."}`))
			return
		}

		delay := 50 + rand.Intn(51) // 50 to 100ms
		time.Sleep(time.Duration(delay) * time.Millisecond)

		next(w, r)
	}
}
