package core

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/andygrunwald/vdf"
	"github.com/spf13/afero"
)

var ErrManifestNotFound = errors.New("library manifest not found")

func LibraryManifestPath(steamRoot string) string {
	return filepath.Join(steamRoot, "steamapps", "libraryfolders.vdf")
}

// LocateLibraries reads a Steam libraryfolders.vdf manifest and returns the
// library directories it lists, in manifest order. It never returns an error
// directly: failures are logged and reported through the result status.
func LocateLibraries(fs afero.Fs, manifestPath string) LibraryResult {
	logger := GetLogger("locator")

	manifest, err := fs.Open(manifestPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Error().Str("path", manifestPath).Msg("Library manifest not found")
			return LibraryResult{
				Status: ManifestNotFound,
				Err:    fmt.Errorf("%w: %s", ErrManifestNotFound, manifestPath),
			}
		}
		logger.Error().Err(err).Str("path", manifestPath).Msg("Error reading library manifest")
		return LibraryResult{Status: ManifestParseError, Err: err}
	}
	defer manifest.Close()

	paths, err := libraryPaths(manifest)
	if err != nil {
		logger.Error().Err(err).Str("path", manifestPath).Msg("Error parsing library manifest")
		return LibraryResult{
			Status: ManifestParseError,
			Err:    fmt.Errorf("parse %s: %w", manifestPath, err),
		}
	}

	if len(paths) == 0 {
		logger.Warn().Str("path", manifestPath).Msg("Library manifest lists no libraries")
		return LibraryResult{Status: LibrariesEmpty}
	}

	logger.Debug().Strs("libraries", paths).Msg("Found steam libraries")
	return LibraryResult{Status: LibrariesFound, Paths: paths}
}

// libraryPaths walks the manifest token by token. vdf.Parser folds blocks
// into a map, which loses both block order and repeated keys.
func libraryPaths(r io.Reader) ([]string, error) {
	w := &manifestWalker{s: vdf.NewScanner(r)}
	if err := w.expect(vdf.Ident); err != nil {
		return nil, err
	}
	if err := w.expect(vdf.CurlyBraceOpen); err != nil {
		return nil, err
	}

	paths := []string{}
	for {
		tok, key, err := w.next()
		if err != nil {
			return nil, err
		}
		if tok == vdf.CurlyBraceClose {
			return paths, nil
		}
		if tok != vdf.Ident {
			return nil, fmt.Errorf("expected a library key, found %q", key)
		}

		path := ""
		tok, value, err := w.next()
		if err != nil {
			return nil, err
		}
		switch tok {
		case vdf.Ident:
			// Manifests written before mid-2021 map the index straight to the path.
			path = value
		case vdf.CurlyBraceOpen:
			if path, err = w.blockPath(); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("expected a value for %q, found %q", key, value)
		}

		if isLibraryIndex(key) && path != "" {
			paths = append(paths, path)
		}
	}
}

func isLibraryIndex(key string) bool {
	_, err := strconv.ParseUint(key, 10, 64)
	return err == nil
}

type manifestWalker struct {
	s *vdf.Scanner
}

// next returns the next key, value or brace. Quoted strings come back as
// vdf.Ident with escapes removed.
func (w *manifestWalker) next() (vdf.Token, string, error) {
	for {
		tok, lit := w.s.Scan(false)
		switch tok {
		case vdf.WS, vdf.EOL:
			continue
		case vdf.CommentDoubleSlash:
			w.skipLine()
			continue
		case vdf.QuotationMark:
			text, err := w.quoted()
			return vdf.Ident, text, err
		case vdf.Ident, vdf.CurlyBraceOpen, vdf.CurlyBraceClose:
			return tok, lit, nil
		case vdf.EOF:
			return tok, lit, vdf.ErrNotValidFormat
		default:
			return tok, lit, fmt.Errorf("unexpected %q in manifest", lit)
		}
	}
}

func (w *manifestWalker) expect(want vdf.Token) error {
	tok, lit, err := w.next()
	if err != nil {
		return err
	}
	if tok != want {
		return fmt.Errorf("unexpected %q in manifest", lit)
	}
	return nil
}

func (w *manifestWalker) skipLine() {
	for {
		tok, _ := w.s.Scan(true)
		if tok == vdf.EOL || tok == vdf.EOF {
			return
		}
	}
}

func (w *manifestWalker) quoted() (string, error) {
	var sb strings.Builder
	escaped := false
	for {
		tok, lit := w.s.Scan(true)
		switch {
		case tok == vdf.EOF:
			return "", vdf.ErrNotValidFormat
		case tok == vdf.QuotationMark && !escaped:
			return sb.String(), nil
		case tok == vdf.EscapeSequence && !escaped:
			escaped = true
			continue
		}
		escaped = false
		sb.WriteString(lit)
	}
}

// blockPath reads a library block up to its closing brace and returns its
// "path" value. Nested blocks such as "apps" are skipped.
func (w *manifestWalker) blockPath() (string, error) {
	path, folded := "", ""
	for {
		tok, key, err := w.next()
		if err != nil {
			return "", err
		}
		if tok == vdf.CurlyBraceClose {
			if path == "" {
				path = folded
			}
			return path, nil
		}
		if tok != vdf.Ident {
			return "", fmt.Errorf("expected a key, found %q", key)
		}

		tok, value, err := w.next()
		if err != nil {
			return "", err
		}
		switch {
		case tok == vdf.CurlyBraceOpen:
			if err := w.skipBlock(); err != nil {
				return "", err
			}
		case tok != vdf.Ident:
			return "", fmt.Errorf("expected a value for %q, found %q", key, value)
		case key == "path":
			path = value
		case folded == "" && strings.EqualFold(key, "path"):
			folded = value
		}
	}
}

func (w *manifestWalker) skipBlock() error {
	for depth := 1; depth > 0; {
		tok, lit, err := w.next()
		if err != nil {
			return err
		}
		switch tok {
		case vdf.CurlyBraceOpen:
			depth++
		case vdf.CurlyBraceClose:
			depth--
		case vdf.Ident:
		default:
			return fmt.Errorf("unexpected %q in manifest", lit)
		}
	}
	return nil
}
