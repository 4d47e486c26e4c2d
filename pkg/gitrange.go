package nextversion

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"golang.org/x/mod/semver"
)

// ErrNoVersionTag is returned by LatestVersionTag when the repository has no
// tag matching the version style, i.e. the first-release state.
var ErrNoVersionTag = errors.New("no version tag found")

// Commit describes one commit in the range under evaluation.
type Commit struct {
	SHA          string
	Title        string
	ChangedFiles []string
}

// Repo runs git plumbing against the repository at Dir. The zero value uses
// the current working directory.
type Repo struct {
	Dir string
}

// CheckGit verifies that git is available on the system.
func CheckGit() error {
	if err := exec.Command("git", "--version").Run(); err != nil {
		return errors.New("git is not available on the system")
	}
	return nil
}

// git runs a git subcommand and returns its trimmed stdout.
func (r Repo) git(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("git %s failed: %v, detail: %s",
			strings.Join(args, " "), err, strings.TrimSpace(stderr.String()))
	}
	return strings.TrimSpace(stdout.String()), nil
}

// LatestVersionTag returns the highest tag that parses as a version in the
// given style. Tags that do not parse (release candidates, named tags) are
// skipped. Returns ErrNoVersionTag when no tag qualifies.
func (r Repo) LatestVersionTag(style Style) (string, error) {
	out, err := r.git("tag", "--list")
	if err != nil {
		return "", err
	}

	var best string
	var bestV Version
	for _, tag := range splitLines(out) {
		v, err := ParseVersion(tag, style)
		if err != nil {
			continue
		}
		if best == "" || newerVersion(v, bestV, style) {
			best, bestV = tag, v
		}
	}
	if best == "" {
		return "", ErrNoVersionTag
	}
	return best, nil
}

func newerVersion(a, b Version, style Style) bool {
	if style == StyleXYZ {
		return semver.Compare("v"+a.String(), "v"+b.String()) > 0
	}
	if a.Major != b.Major {
		return a.Major > b.Major
	}
	return a.Minor > b.Minor
}

// Head returns the SHA of the current commit.
func (r Repo) Head() (string, error) {
	return r.git("rev-parse", "HEAD")
}

// TagCommit returns the SHA of the commit a tag points at.
func (r Repo) TagCommit(tag string) (string, error) {
	return r.git("rev-list", "-n", "1", tag)
}

// IsAncestor reports whether ref is an ancestor of HEAD. A previous release
// tag that is not an ancestor means the branch has diverged and the range
// FIRST..HEAD is meaningless.
func (r Repo) IsAncestor(ref string) (bool, error) {
	cmd := exec.Command("git", "merge-base", "--is-ancestor", ref, "HEAD")
	cmd.Dir = r.Dir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	err := cmd.Run()
	if err == nil {
		return true, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
		return false, nil
	}
	return false, fmt.Errorf("git merge-base failed: %v, detail: %s",
		err, strings.TrimSpace(stderr.String()))
}

// CommitsSince returns the commits in base..HEAD, newest first, each with its
// title (subject line only) and the files it changed.
func (r Repo) CommitsSince(base string) ([]Commit, error) {
	out, err := r.git("rev-list", base+"..HEAD")
	if err != nil {
		return nil, err
	}
	shas := splitLines(out)

	commits := make([]Commit, 0, len(shas))
	for _, sha := range shas {
		title, err := r.git("show", "-s", "--format=%s", sha)
		if err != nil {
			return nil, err
		}
		files, err := r.git("diff-tree", "--no-commit-id", "--name-only", "-r", sha)
		if err != nil {
			return nil, err
		}
		commits = append(commits, Commit{
			SHA:          sha,
			Title:        title,
			ChangedFiles: splitLines(files),
		})
	}
	return commits, nil
}
