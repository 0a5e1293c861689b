package sweep

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
)

var (
	// ErrNotDirectory means the sweep target is missing or not a directory.
	ErrNotDirectory = errors.New("does not exist or is not a directory")
	// ErrEmptyKeyword means the keyword was empty after trimming.
	ErrEmptyKeyword = errors.New("Keyword must not be empty.")
)

// Request describes one sweep of a target directory: files whose names
// contain Keyword move into Target/Keyword.
type Request struct {
	Target  string
	Keyword string
	Policy  *Policy
}

// Move records one relocated file.
type Move struct {
	Src string
	Dst string
}

// Normalize trims the keyword, resolves the target to an absolute path, and
// verifies the target is an existing directory.
func (r Request) Normalize() (Request, error) {
	r.Keyword = strings.TrimSpace(r.Keyword)
	if r.Keyword == "" {
		return r, ErrEmptyKeyword
	}
	abs, err := filepath.Abs(r.Target)
	if err != nil {
		return r, err
	}
	r.Target = abs
	st, err := os.Stat(r.Target)
	if err != nil || !st.IsDir() {
		return r, fmt.Errorf("Target directory '%s' %w.", r.Target, ErrNotDirectory)
	}
	return r, nil
}

// Dest returns the directory matched files move into.
func (r Request) Dest() string {
	return filepath.Join(r.Target, r.Keyword)
}

// Match reports whether a file name contains the keyword, ignoring case.
func Match(name, keyword string) bool {
	return strings.Contains(strings.ToLower(name), strings.ToLower(keyword))
}

// Scan walks the target and returns matching file paths in walk order. The
// destination subtree is never entered, so already swept files stay put, and
// protected directories are skipped with a warning.
func Scan(req Request) ([]string, error) {
	dest := req.Dest()
	var matches []string
	err := filepath.WalkDir(req.Target, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.WithError(err).WithField("path", path).Warn("skipping unreadable path")
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if within(path, dest) {
				return filepath.SkipDir
			}
			if path != req.Target && req.Policy.Blocked(d.Name()) {
				log.WithField("dir", path).Warn("skipping protected directory")
				return filepath.SkipDir
			}
			return nil
		}
		if Match(d.Name(), req.Keyword) {
			matches = append(matches, path)
		}
		return nil
	})
	return matches, err
}

// MoveAll moves each file into the destination, numbering name collisions.
// The destination directory is created on demand.
func MoveAll(req Request, paths []string) ([]Move, error) {
	if len(paths) == 0 {
		return nil, nil
	}
	dest := req.Dest()
	if err := os.MkdirAll(dest, 0o755); err != nil {
		return nil, err
	}
	moves := make([]Move, 0, len(paths))
	for _, src := range paths {
		dst, err := uniqueDestination(dest, filepath.Base(src))
		if err != nil {
			return moves, err
		}
		if err := moveFile(src, dst); err != nil {
			return moves, fmt.Errorf("move %s: %w", src, err)
		}
		log.WithFields(log.Fields{"src": src, "dst": dst}).Debug("moved file")
		moves = append(moves, Move{Src: src, Dst: dst})
	}
	return moves, nil
}

// Run scans and moves in one pass.
func Run(req Request) ([]string, []Move, error) {
	matches, err := Scan(req)
	if err != nil || len(matches) == 0 {
		return matches, nil, err
	}
	moves, err := MoveAll(req, matches)
	return matches, moves, err
}

// within reports whether path sits inside root (or is root itself).
func within(path, root string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

// uniqueDestination picks a path in dir that does not collide with an
// existing entry, numbering the stem: name.ext, name_1.ext, name_2.ext, ...
func uniqueDestination(dir, name string) (string, error) {
	candidate := filepath.Join(dir, name)
	if _, err := os.Lstat(candidate); os.IsNotExist(err) {
		return candidate, nil
	} else if err != nil {
		return "", err
	}
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	if stem == "" {
		stem, ext = name, ""
	}
	for i := 1; ; i++ {
		numbered := filepath.Join(dir, fmt.Sprintf("%s_%d%s", stem, i, ext))
		if _, err := os.Lstat(numbered); os.IsNotExist(err) {
			return numbered, nil
		} else if err != nil {
			return "", err
		}
	}
}

// moveFile renames src to dst, copying and removing when rename fails
// (typically across filesystems).
func moveFile(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	st, err := in.Stat()
	if err != nil {
		return err
	}
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, st.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		_ = os.Remove(dst)
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	return os.Remove(src)
}
