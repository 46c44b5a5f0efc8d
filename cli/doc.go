// Package cli contains the command line interface for btcdeb.
//
// # Usage
//
// Expressions are evaluated from positional arguments, from files given
// with --source, or interactively:
//
//	btcdeb 'len(0x0102 || 0x03)'
//	btcdeb --source script.txt --vars vars.yaml
//	btcdeb tokens 'a = 1 + 2'
//	btcdeb tree 'rev(a || b)'
//	btcdeb repl
//
// # Configuration
//
// Flag defaults can be placed in a YAML config file (default path
// ~/.config/btcdeb/config.yaml), a flat mapping of flag names to values:
//
//	log-level: debug
//	log-format: text
//	log-pretty: true
//
// Command-line flags override config file values.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (json, text)
//   - --log-time-layout: Set timestamp format (RFC3339, RFC3339Nano, etc.)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Enable colorized pretty printing
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default:
//     ~/.cache/btcdeb/pprof)
package cli
