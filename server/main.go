//go:build !js
// +build !js

// Development server for the GopherJS build: serves the embedded page and
// the compiled artifacts.
//
//	gopherjs build -o web/boxdodge.js github.com/hvirtanen/boxdodge
//	go run ./server -dir web -addr :8080
package main

import (
	_ "embed"
	"flag"
	"log"
	"net/http"
	"time"
)

//go:embed index.html
var indexHTML []byte

func main() {
	addr := flag.String("addr", ":8080", "HTTP listen address")
	dir := flag.String("dir", "web", "directory holding the compiled boxdodge.js")
	flag.Parse()

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(indexHTML)
	})

	fs := http.FileServer(http.Dir(*dir))
	mux.Handle("/boxdodge.js", fs)
	mux.Handle("/boxdodge.js.map", fs)

	log.Printf("serving boxdodge on %s (artifacts from %s)", *addr, *dir)
	if err := http.ListenAndServe(*addr, logRequests(mux)); err != nil {
		log.Fatal(err)
	}
}

// logRequests wraps a handler with per-request logging.
func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %s (%s)", r.RemoteAddr, r.Method, r.URL.Path, time.Since(start))
	})
}
