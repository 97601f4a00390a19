package model

// Viewer is the acting identity of a request. Authentication happens
// upstream; a nil *Viewer means an anonymous request.
type Viewer struct {
	ID       int64
	Username string
	IsAdmin  bool
}
