// Package config loads qa-chat settings from YAML.
//
// Defaults are applied first, the file (if present) is decoded over them,
// then QA_CHAT_* environment variables override individual keys:
//
//	matcher:
//	  threshold: 3
//	  fallback: "..."
//	  max_input_runes: 512
//	corpus:
//	  path: ""            # empty = built-in corpus
//	server:
//	  addr: "127.0.0.1:8080"
//	  read_timeout_ms: 5000
//	  write_timeout_ms: 5000
//	  max_body_bytes: 8192
//	chat:
//	  reply_delay_ms: 500
//	log:
//	  level: info         # trace, debug, info, warn, error
//	  json: false
//	color: auto           # auto, always, never
package config
