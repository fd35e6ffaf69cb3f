// Package log provides centralised audit logging for sift operations.
// Logs are stored in ~/.sift/log/sift-log.db and track all CLI commands
// and MCP tool invocations across workspaces.
//
// # Fluent API
//
// Use the fluent builder API to construct and write log entries:
//
//	log.Event("search:run", "search").
//		Query(query).
//		Count(len(results)).
//		Write(err)
//
//	log.Event("lists:rm", "delete").
//		List(id).
//		Write(err)
//
// The source parameter follows the format "{command}:{subcommand}" for CLI
// commands or "mcp:{tool}" for MCP tools. Examples: "search:run",
// "lists:create", "mcp:sift_search".
package log

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

var (
	global *Logger
	mu     sync.Mutex
)

// Entry represents a single log entry.
type Entry struct {
	Source string // e.g., "search:run", "mcp:sift_search"
	Action string // verb: search, create, delete, apply, etc.
	Query  string // input: the search query, if any
	List   string // input: the smart list id, if any

	// Output fields - populated after operation succeeds
	Count int // output: result count after truncation

	// Timing
	Start int64 // unix timestamp when Event() called
	End   int64 // unix timestamp when Write() called

	Success bool           // whether operation succeeded
	Error   string         // error message if failed
	Detail  map[string]any // additional operation-specific data
}

// Builder constructs a log entry using a fluent API.
// Create with [Event], chain methods to set fields, then call [Builder.Write]
// to write the entry.
type Builder struct {
	entry Entry
}

// Event creates a new log entry builder for an operation.
//
// The source identifies where the operation originated:
//   - CLI commands: "{command}:{subcommand}" (e.g., "search:run", "lists:create")
//   - MCP tools: "mcp:{tool}" (e.g., "mcp:sift_search", "mcp:sift_list_apply")
//
// The action describes what operation was performed:
//   - "search", "suggest", "create", "update", "delete", "duplicate",
//     "apply", "list", "clear", etc.
func Event(source, action string) *Builder {
	return &Builder{
		entry: Entry{
			Source: source,
			Action: action,
			Start:  time.Now().Unix(),
		},
	}
}

// Query sets the search query this operation ran.
//
// Leave unset for operations that don't take a query (e.g., list management).
func (b *Builder) Query(query string) *Builder {
	b.entry.Query = query
	return b
}

// List sets the smart list id this operation targets.
func (b *Builder) List(id string) *Builder {
	b.entry.List = id
	return b
}

// Count sets the result count produced by the operation (output).
//
// For searches: the number of results after truncation.
// For list application: the total matching entities.
func (b *Builder) Count(n int) *Builder {
	b.entry.Count = n
	return b
}

// Detail adds a key-value pair to the log entry's detail map.
//
// Use for operation-specific data that doesn't fit standard fields:
// requested entity types, filter dimensions, suggestion counts, etc.
// Can be called multiple times to add multiple details.
func (b *Builder) Detail(key string, value any) *Builder {
	if b.entry.Detail == nil {
		b.entry.Detail = make(map[string]any)
	}
	b.entry.Detail[key] = value
	return b
}

// Write writes the log entry to the database, deriving success/failure from err.
//
// If err is nil, the entry is logged as successful.
// If err is non-nil, the entry is logged as failed with the error message.
//
// Example:
//
//	results := eng.Search(query, opts)
//	log.Event("search:run", "search").Query(query).Count(len(results)).Write(nil)
func (b *Builder) Write(err error) {
	b.entry.End = time.Now().Unix()
	b.entry.Success = err == nil
	if err != nil {
		b.entry.Error = err.Error()
	}
	Log(b.entry)
}

// Open initialises the global logger. Safe to call multiple times.
// Errors are returned but callers may choose to ignore them (best-effort logging).
func Open() error {
	mu.Lock()
	defer mu.Unlock()

	if global != nil {
		return nil
	}

	p := dbPath()
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", p)
	if err != nil {
		return err
	}

	if err := migrate(db); err != nil {
		db.Close()
		return err
	}

	global = &Logger{db: db}
	return nil
}

// SetWorkspace sets the workspace identifier for subsequent log entries.
// The dir should be the absolute path to the directory holding the data file.
func SetWorkspace(dir string) {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.workspace = hash(dir)
	}
}

// Log writes an entry. Safe to call if logger not initialised (no-op).
func Log(e Entry) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return
	}
	l.log(e)
}

// Close closes the global logger.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.db.Close()
		global = nil
	}
}
