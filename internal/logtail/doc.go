// Package logtail reads the tail of foodie's log file and renders its JSON
// lines for humans.
//
// Read keeps a ring buffer of the last maxLines lines, so memory stays
// O(maxLines) regardless of file size. A missing file yields nil, nil.
//
// Format turns a zap JSON line such as
//
//	{"level":"info","ts":"2026-01-02T10:00:00.000Z","msg":"cookbook refreshed","recipes":12}
//
// into
//
//	2026-01-02T10:00:00.000Z INFO cookbook refreshed recipes=12
//
// Extra fields are sorted by key. Lines that are not JSON objects are
// returned unchanged.
package logtail
