// Package pathutil normalizes request paths into bounded metric labels.
package pathutil

import "strings"

// knownPaths are passed through unchanged.
var knownPaths = map[string]struct{}{
	"/convert/int-to-roman": {},
	"/convert/roman-to-int": {},
	"/check/parity":         {},
	"/check/prime":          {},
	"/compute/factorial":    {},
	"/operations":           {},
	"/health":               {},
	"/live":                 {},
	"/ready":                {},
	"/metrics":              {},
}

// Other is the label used for paths that match no route.
const Other = "other"

// NormalizePath maps a request path to a metrics label. Known routes map
// to themselves, /history/{operation} collapses to "/history/:operation"
// and everything else becomes Other, so arbitrary client paths cannot
// inflate label cardinality.
//
//	NormalizePath("/check/prime")       // "/check/prime"
//	NormalizePath("/history/prime/")    // "/history/:operation"
//	NormalizePath("/wp-login.php")      // "other"
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	if _, ok := knownPaths[path]; ok {
		return path
	}
	if rest, ok := strings.CutPrefix(path, "/history/"); ok && rest != "" && !strings.Contains(rest, "/") {
		return "/history/:operation"
	}
	return Other
}
