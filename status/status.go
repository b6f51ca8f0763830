// Package status exports the fixed table of canonical HTTP status titles
// used by renderers that need a default human-readable title when none is
// supplied. The table covers the 400–431 client-error range and the 500–511
// server-error range; codes outside the table have no default.
//
// The table is frozen at process startup. The problem package never consults
// it when resolving a descriptor — it exists for external renderers only.
package status

// titles is the canonical code-to-title table. It stays unexported so the
// table is immutable for the life of the process; readers go through Title
// or take a copy via Titles.
var titles = map[int]string{
	400: "Bad Request",
	401: "Unauthorized",
	402: "Payment Required",
	403: "Forbidden",
	404: "Not Found",
	405: "Method Not Allowed",
	406: "Not Acceptable",
	407: "Proxy Authentication Required",
	408: "Request Timeout",
	409: "Conflict",
	410: "Gone",
	411: "Length Required",
	412: "Precondition Failed",
	413: "Payload Too Large",
	414: "URI Too Long",
	415: "Unsupported Media Type",
	416: "Range Not Satisfiable",
	417: "Expectation Failed",
	418: "I'm a teapot",
	421: "Misdirected Request",
	422: "Unprocessable Entity",
	423: "Locked",
	424: "Failed Dependency",
	425: "Too Early",
	426: "Upgrade Required",
	428: "Precondition Required",
	429: "Too Many Requests",
	431: "Request Header Fields Too Large",

	500: "Internal Server Error",
	501: "Not Implemented",
	502: "Bad Gateway",
	503: "Service Unavailable",
	504: "Gateway Timeout",
	505: "HTTP Version Not Supported",
	506: "Variant Also Negotiates",
	507: "Insufficient Storage",
	508: "Loop Detected",
	510: "Not Extended",
	511: "Network Authentication Required",
}

// Title looks up the canonical title for a status code. The second return
// value reports whether the code is in the table; there is no fallback title
// for unlisted codes.
func Title(code int) (string, bool) {
	t, ok := titles[code]
	return t, ok
}

// Titles returns a defensive copy of the whole table for renderers that want
// to index it directly; the internal map is never handed out.
func Titles() map[int]string {
	out := make(map[int]string, len(titles))
	for code, title := range titles {
		out[code] = title
	}
	return out
}
