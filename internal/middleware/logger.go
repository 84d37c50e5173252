package middleware

import (
	"log"
	"net"
	"net/http"
	"time"
)

// RequestLogger mencatat setiap request (method, path, timestamp, IP klien).
// Murni side effect operasional; tidak pernah menghentikan request.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("[REQ] %s - %s %s - IP: %s",
			time.Now().Format(time.RFC3339), r.Method, r.URL.Path, clientIP(r))
		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	// RealIP middleware sudah menulis ulang RemoteAddr dari header proxy;
	// di sini tinggal buang port kalau masih ada.
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
