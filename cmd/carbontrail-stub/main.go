// carbontrail-stub serves the development stand-in for the CarbonTrail
// backend, so the client can be exercised without the real API.
package main

import (
	"flag"
	"log"
	"net/http"
	"time"

	"github.com/carbontrail/carbontrail/internal/devstub"
)

func main() {
	addr := flag.String("addr", "127.0.0.1:8080", "listen address")
	secret := flag.String("secret", "dev-only-secret", "token signing secret")
	ttl := flag.Duration("ttl", 15*time.Minute, "access token lifetime")
	flag.Parse()

	log.Printf("carbontrail-stub listening on %s", *addr)
	if err := http.ListenAndServe(*addr, devstub.New([]byte(*secret), *ttl)); err != nil {
		log.Fatal(err)
	}
}
