// Package main implements a CLI tool that computes the next semantic version
// for a repository from its tag history and the commits since the last
// release.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	nextversion "github.com/WIPACrepo/wipac-dev-next-version-action/pkg"
)

func usage() {
	msg := `Usage:
  next-version [options]

Computes the next version for the repository and prints it to stdout (no "v"
prefix). Prints nothing when no release is warranted. When GITHUB_OUTPUT is
set, also appends "version=<value>" for use as a GitHub Actions output.

Configuration is read from the environment (a .env file is honored):
  LATEST_VERSION_TAG              previous release tag; resolved from git tags when unset
  FIRST_COMMIT                    commit-range base; defaults to the previous tag
  VERSION_STYLE                   "X.Y.Z" (default) or "X.Y"
  IGNORE_PATHS                    newline-delimited glob patterns that never trigger a release
  FORCE_PATCH_IF_NO_COMMIT_TOKEN  patch-bump tokenless changes (default false)

Recognized commit-title tokens: [major], [minor], [patch], [fix], [bump], [no-bump]

Options:
`
	fmt.Fprint(os.Stderr, msg)
	flag.PrintDefaults()
}

func main() {
	repoDir := flag.String("C", ".", "Run as if started in this directory")
	verbose := flag.Bool("verbose", false, "Enable debug diagnostics on stderr")
	showVersion := flag.Bool("version", false, "Show CLI version and exit")
	help := flag.Bool("help", false, "Show help message and exit")

	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}
	if *showVersion {
		fmt.Println("next-version CLI version", Version)
		os.Exit(0)
	}
	if flag.NArg() > 0 {
		fmt.Fprintln(os.Stderr, "Error: next-version takes no positional arguments")
		usage()
		os.Exit(1)
	}

	log.SetFlags(0)
	nextversion.SetDebug(*verbose)

	// Local convenience; CI supplies real environment variables.
	_ = godotenv.Load()

	cfg, err := nextversion.ConfigFromEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	version, err := computeNextVersion(cfg, nextversion.Repo{Dir: *repoDir})
	if err != nil {
		// Git-level failures are pipeline warnings, never a crashed workflow.
		log.Printf("warning: %v; emitting no version", err)
		version = ""
	}
	emit(version)
}

// computeNextVersion wires the git collaborator to the decision engine:
// resolve the previous tag, run the sanity checks, gather the commit range,
// and hand everything to the engine as one record.
func computeNextVersion(cfg nextversion.Config, repo nextversion.Repo) (string, error) {
	if err := nextversion.CheckGit(); err != nil {
		return "", err
	}

	tag := cfg.LatestVersionTag
	if tag == "" {
		resolved, err := repo.LatestVersionTag(cfg.VersionStyle)
		if err != nil && !errors.Is(err, nextversion.ErrNoVersionTag) {
			return "", err
		}
		tag = resolved
	}

	in := nextversion.Inputs{
		Style:       cfg.VersionStyle,
		IgnorePaths: cfg.IgnorePaths,
		ForcePatch:  cfg.ForcePatch,
	}

	if tag != "" {
		in.PreviousVersion = strings.TrimPrefix(tag, "v")

		tagSHA, err := repo.TagCommit(tag)
		if err != nil {
			return "", err
		}
		head, err := repo.Head()
		if err != nil {
			return "", err
		}
		if head == tagSHA {
			log.Printf("HEAD is already tagged %s; nothing to release", tag)
			return "", nil
		}
		ancestor, err := repo.IsAncestor(tag)
		if err != nil {
			return "", err
		}
		if !ancestor {
			log.Printf("warning: tag %s is not an ancestor of HEAD; skipping release", tag)
			return "", nil
		}

		base := cfg.FirstCommit
		if base == "" {
			base = tag
		}
		commits, err := repo.CommitsSince(base)
		if err != nil {
			return "", err
		}
		for _, c := range commits {
			in.CommitTitles = append(in.CommitTitles, c.Title)
			in.ChangedPaths = append(in.ChangedPaths, c.ChangedFiles...)
		}
	}

	return nextversion.Next(in)
}

// emit writes the result to stdout and, when running under GitHub Actions,
// to the GITHUB_OUTPUT file. An empty version still records an empty output
// so downstream steps can test it.
func emit(version string) {
	if version != "" {
		fmt.Println(version)
	}
	outPath := os.Getenv("GITHUB_OUTPUT")
	if outPath == "" {
		return
	}
	f, err := os.OpenFile(outPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		log.Printf("warning: cannot write GITHUB_OUTPUT: %v", err)
		return
	}
	defer f.Close()
	if _, err := fmt.Fprintf(f, "version=%s\n", version); err != nil {
		log.Printf("warning: cannot write GITHUB_OUTPUT: %v", err)
	}
}
