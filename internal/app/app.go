// Package app wires the engine together: data snapshot, durable store,
// history, smart list registry, and search engine. Both the CLI and the
// MCP server build an App and share the same composition.
package app

import (
	"fmt"

	"github.com/jpl-au/sift/internal/entity"
	"github.com/jpl-au/sift/internal/history"
	"github.com/jpl-au/sift/internal/search"
	"github.com/jpl-au/sift/internal/smartlist"
	"github.com/jpl-au/sift/internal/snapshot"
	"github.com/jpl-au/sift/internal/store"
)

// App is one fully wired engine instance.
type App struct {
	Data    *snapshot.Data
	Store   store.Store
	History *history.History
	Engine  *search.Engine
	Lists   *smartlist.Registry
}

// New loads the data file at dataPath, opens the durable store at dbPath,
// and builds indexes over the snapshot.
func New(dataPath, dbPath string) (*App, error) {
	data, err := snapshot.Load(dataPath)
	if err != nil {
		return nil, err
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}

	h := history.New(st)
	eng := search.New(h)
	eng.InitializeIndexes(data.Collections())

	return &App{
		Data:    data,
		Store:   st,
		History: h,
		Engine:  eng,
		Lists:   smartlist.NewRegistry(st),
	}, nil
}

// Close releases the durable store.
func (a *App) Close() error {
	return a.Store.Close()
}

// SuggestionData gathers the snapshot-derived suggestion sources.
func (a *App) SuggestionData() history.SuggestionData {
	return history.SuggestionData{
		Contexts: a.Data.ContextNames(),
		Projects: a.Data.ProjectTitles(),
		Tags:     a.Data.Tags(),
	}
}

// Collections returns the loaded entity collections.
func (a *App) Collections() entity.Collections {
	return a.Data.Collections()
}
