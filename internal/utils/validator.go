package utils

import (
	"encoding/json"
	"net/http"
	"strings"
)

// DecodeJSON decode request body ke struct
func DecodeJSON(r *http.Request, dst interface{}) error {
	decoder := json.NewDecoder(r.Body)
	return decoder.Decode(dst)
}

func SanitizeString(s string) string {
	return strings.TrimSpace(s)
}
