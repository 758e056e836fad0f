package web

import (
	"net/http"
	"strings"

	"github.com/starfederation/datastar-go/datastar"
)

const (
	// DataStarAcceptHeader is the Accept header value that indicates a DataStar request.
	DataStarAcceptHeader = "text/event-stream"
	// DataStarRequestHeader is set by the DataStar client on every action.
	DataStarRequestHeader = "Datastar-Request"
	// DataStarQueryParam is the query parameter used by DataStar for signals.
	DataStarQueryParam = "datastar"
)

// PatchOuter morphs the whole element; the content container is always
// patched this way so its class list follows the show marker.
const PatchOuter = datastar.ElementPatchModeOuter

// IsDataStar checks if the request was issued by the DataStar client.
func IsDataStar(r *http.Request) bool {
	if r.Header.Get(DataStarRequestHeader) == "true" {
		return true
	}
	if strings.Contains(r.Header.Get("Accept"), DataStarAcceptHeader) {
		return true
	}
	return r.URL.Query().Has(DataStarQueryParam)
}

// themeSignals mirror the theme attribute and transition markers on the client.
type themeSignals struct {
	Theme           string `json:"theme"`
	ThemeFade       bool   `json:"themeFade"`
	ThemeFadeActive bool   `json:"themeFadeActive"`
}
