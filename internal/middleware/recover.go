package middleware

import (
	"log"
	"net/http"
	"runtime/debug"

	"github.com/ardiansyah-dp/buku-tamu-backend/internal/response"
)

// Recover adalah boundary terakhir: panic apa pun dari handler di bawahnya
// dicatat lengkap di log server, tapi klien hanya menerima amplop error
// generik tanpa stack trace.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				log.Printf("[SERVER ERROR] %v\n%s", rec, debug.Stack())
				response.InternalError(w, "Terjadi kesalahan fatal pada server.")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
