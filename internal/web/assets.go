package web

import (
	"fmt"
	"strings"
)

// FileURL turns a file asset reference such as "file-<id>-<ext>" into its
// CDN URL. Anything else yields "".
func FileURL(ref, projectID, dataset string) string {
	if !strings.HasPrefix(ref, "file-") {
		return ""
	}
	rest := strings.TrimPrefix(ref, "file-")
	i := strings.LastIndex(rest, "-")
	if i <= 0 || i == len(rest)-1 {
		return ""
	}
	return fmt.Sprintf("https://cdn.sanity.io/files/%s/%s/%s.%s", projectID, dataset, rest[:i], rest[i+1:])
}
