// Package studio implements the session state for the study-aid workspace:
// the uploaded-source registry, the saved-artifact store, and the flashcard
// and quiz review sessions hosted by a single-slot viewer.
//
// All state is in-memory and owned by one [Studio] instance created at
// application start and discarded when the session ends. State transitions
// run synchronously in response to single discrete events; the owning layer
// serializes access.
package studio

// Studio bundles the session-scoped state: sources, saved artifacts, and the
// viewer hosting the active review session.
type Studio struct {
	Sources *SourceRegistry
	Store   *ArtifactStore
	Viewer  *Viewer
}

// New creates an empty studio session.
func New() *Studio {
	return &Studio{
		Sources: NewSourceRegistry(),
		Store:   NewArtifactStore(),
		Viewer:  NewViewer(),
	}
}
