package handlers

import (
	"net/http"
	"strconv"
)

// queryInt parses an integer query parameter. Missing or non-numeric values
// return 0, which the services treat as "use the default".
func queryInt(r *http.Request, key string) int {
	v, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil {
		return 0
	}
	return v
}
