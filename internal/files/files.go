// Package files turns the ways a user can pick files (typed paths, glob
// patterns, pasted drag-and-drop text, command-line arguments and drop
// folder events) into pending-file descriptors for the chat widget.
package files

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/mattn/go-shellwords"
	"golang.org/x/sync/errgroup"

	"github.com/zhubert/ragchat/internal/errors"
	"github.com/zhubert/ragchat/internal/logger"
	"github.com/zhubert/ragchat/internal/widget"
)

// maxConcurrentStats bounds how many files are described at once.
const maxConcurrentStats = 8

// Describe stats path and returns its descriptor. Only regular files
// (or symlinks to them) can be described.
func Describe(path string) (widget.PendingFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return widget.PendingFile{}, errors.StatFailed(path, err)
	}
	if !info.Mode().IsRegular() {
		return widget.PendingFile{}, errors.NotRegularFile(path)
	}

	return widget.PendingFile{
		Name: info.Name(),
		Size: info.Size(),
		Path: path,
		Type: detectType(path),
	}, nil
}

// detectType sniffs the file header. Detection failures are not fatal.
func detectType(path string) string {
	m, err := mimetype.DetectFile(path)
	if err != nil {
		logger.Debug("files: type detection failed for %s: %v", path, err)
		return ""
	}
	mediaType, _, _ := strings.Cut(m.String(), ";")
	return mediaType
}

// DescribeAll describes paths concurrently. The result keeps the input
// order and holds only the paths that could be described; the errors for
// the rest are joined.
func DescribeAll(ctx context.Context, paths []string) ([]widget.PendingFile, error) {
	results, errs := describeEach(ctx, paths)

	var out []widget.PendingFile
	for i := range paths {
		if errs[i] == nil {
			out = append(out, results[i])
		}
	}
	return out, errors.Join(errs...)
}

// describeEach describes every path, reporting per-path results and errors.
func describeEach(ctx context.Context, paths []string) ([]widget.PendingFile, []error) {
	results := make([]widget.PendingFile, len(paths))
	errs := make([]error, len(paths))

	var g errgroup.Group
	g.SetLimit(maxConcurrentStats)
	for i, p := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return nil
			}
			results[i], errs[i] = Describe(p)
			return nil
		})
	}
	_ = g.Wait()
	return results, errs
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// absolute expands "~" and anchors relative paths at baseDir.
func absolute(baseDir, path string) string {
	path = ExpandHome(path)
	if !filepath.IsAbs(path) {
		path = filepath.Join(baseDir, path)
	}
	return filepath.Clean(path)
}

func hasMeta(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[")
}

type candidate struct {
	path     string
	fromGlob bool
}

// Resolve expands patterns into file descriptors. Relative patterns are
// resolved against baseDir. Glob patterns silently skip the directories
// they match; a pattern that matches nothing is an error. A path reached
// by more than one pattern is described once. Whatever could be resolved
// is returned alongside the joined errors.
func Resolve(ctx context.Context, baseDir string, patterns []string) ([]widget.PendingFile, error) {
	var (
		candidates []candidate
		errs       []error
		seen       = make(map[string]bool)
	)

	add := func(path string, fromGlob bool) {
		if seen[path] {
			return
		}
		seen[path] = true
		candidates = append(candidates, candidate{path: path, fromGlob: fromGlob})
	}

	for _, pattern := range patterns {
		if pattern == "" {
			continue
		}
		abs := absolute(baseDir, pattern)
		if !hasMeta(pattern) {
			add(abs, false)
			continue
		}

		matches, err := filepath.Glob(abs)
		if err != nil {
			errs = append(errs, errors.BadPattern(pattern, err))
			continue
		}
		if len(matches) == 0 {
			errs = append(errs, errors.NoMatch(pattern))
			continue
		}
		for _, m := range matches {
			add(m, true)
		}
	}

	paths := make([]string, len(candidates))
	for i, c := range candidates {
		paths[i] = c.path
	}
	results, describeErrs := describeEach(ctx, paths)

	var described []widget.PendingFile
	for i, c := range candidates {
		switch {
		case describeErrs[i] == nil:
			described = append(described, results[i])
		case c.fromGlob && errors.Is(describeErrs[i], errors.KindInvalid):
			// directory matched by a glob
		default:
			errs = append(errs, describeErrs[i])
		}
	}

	logger.Debug("files: resolved %d pattern(s) into %d file(s), %d error(s)", len(patterns), len(described), len(errs))
	return described, errors.Join(errs...)
}

// SplitArgs splits a line into words the way a POSIX shell would for
// simple input. Quotes and backslash escapes are honoured; shell
// operators such as ; or | are rejected rather than interpreted.
func SplitArgs(line string) ([]string, error) {
	const op = errors.Op("files.SplitArgs")

	p := shellwords.NewParser()
	words, err := p.Parse(line)
	if err != nil {
		return nil, errors.E(op, errors.KindInvalid, err)
	}
	if p.Position >= 0 {
		return nil, errors.E(op, errors.KindInvalid, "unexpected shell operator")
	}
	if len(words) == 0 {
		return nil, nil
	}
	return words, nil
}

// PastedPaths recognizes text pasted by a terminal when files are dragged
// onto it: one or more absolute paths or file:// URIs, possibly quoted or
// backslash-escaped. It only looks at the text, so it is cheap enough for
// the event loop.
func PastedPaths(text string) ([]string, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, false
	}

	tokens, err := SplitArgs(text)
	if err != nil || len(tokens) == 0 {
		return nil, false
	}

	paths := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		path, ok := pastedPath(tok)
		if !ok {
			return nil, false
		}
		paths = append(paths, path)
	}
	return paths, true
}

// ParsePaste describes the files named by a paste. It reports false
// unless every token names an existing regular file, so ordinary pasted
// prose is left alone.
func ParsePaste(ctx context.Context, text string) ([]widget.PendingFile, bool) {
	paths, ok := PastedPaths(text)
	if !ok {
		return nil, false
	}
	found, err := DescribeAll(ctx, paths)
	if err != nil || len(found) != len(paths) {
		return nil, false
	}
	return found, true
}

func pastedPath(token string) (string, bool) {
	if strings.HasPrefix(token, "file://") {
		u, err := url.Parse(token)
		if err != nil || u.Path == "" {
			return "", false
		}
		return filepath.FromSlash(u.Path), true
	}
	token = ExpandHome(token)
	if !filepath.IsAbs(token) {
		return "", false
	}
	return token, true
}
