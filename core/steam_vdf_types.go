package core

type LibraryStatus int

const (
	LibrariesFound LibraryStatus = iota
	LibrariesEmpty
	ManifestNotFound
	ManifestParseError
)

func (s LibraryStatus) String() string {
	switch s {
	case LibrariesFound:
		return "found"
	case LibrariesEmpty:
		return "empty"
	case ManifestNotFound:
		return "not-found"
	case ManifestParseError:
		return "parse-error"
	default:
		return "unknown"
	}
}

// LibraryResult is the outcome of reading a libraryfolders.vdf manifest.
// Paths is only meaningful when Status is LibrariesFound; Err is set for
// ManifestNotFound and ManifestParseError.
type LibraryResult struct {
	Status LibraryStatus
	Paths  []string
	Err    error
}

func (r LibraryResult) Libraries() []string {
	if r.Status != LibrariesFound {
		return nil
	}
	return r.Paths
}
