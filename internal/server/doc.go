// Package server exposes the matcher over HTTP for browser chat pages.
//
// Endpoints:
//   - POST /chat    {"message": "..."} -> {"response": "...", ...}
//   - GET  /healthz {"status": "ok", "entries": N}
//
// The returned answer is plain text; escaping it for display is the
// caller's job.
package server
