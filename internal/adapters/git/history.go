package git

import (
	"bufio"
	"bytes"
	"context"
	"iter"
	"strings"

	"go.trai.ch/bump/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	fieldSep  = '\x1f'
	recordSep = '\x1e'
)

// Log streams the commits reachable from HEAD, newest first. A repository
// without commits yields nothing; any other git failure, including dir not
// being a repository, is yielded as an error. Breaking out of the loop stops
// git log.
func (g *Git) Log(ctx context.Context, dir string) iter.Seq2[domain.Commit, error] {
	return func(yield func(domain.Commit, error) bool) {
		if _, err := g.output(ctx, dir, "rev-parse", "--git-dir"); err != nil {
			yield(domain.Commit{}, err)
			return
		}
		if _, err := g.output(ctx, dir, "rev-parse", "--verify", "--quiet", "HEAD"); err != nil {
			// --verify --quiet exits 1 only when HEAD does not resolve: an unborn branch.
			if ctx.Err() == nil && exitCode(err) == 1 {
				return
			}
			yield(domain.Commit{}, err)
			return
		}

		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		var stderr bytes.Buffer
		args := []string{"log", "--no-color", "--format=%H%x1f%s%x1e", "HEAD"}
		cmd := g.command(ctx, dir, args...)
		cmd.Stderr = &stderr

		stdout, err := cmd.StdoutPipe()
		if err != nil {
			yield(domain.Commit{}, zerr.Wrap(err, "failed to open git log output"))
			return
		}
		if err := cmd.Start(); err != nil {
			yield(domain.Commit{}, commandError(err, args, ""))
			return
		}

		scanner := bufio.NewScanner(stdout)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		scanner.Split(splitRecords)

		for scanner.Scan() {
			commit, ok := parseRecord(scanner.Text())
			if !ok {
				continue
			}
			if !yield(commit, nil) {
				cancel()
				_ = cmd.Wait()
				return
			}
		}

		if err := scanner.Err(); err != nil {
			cancel()
			_ = cmd.Wait()
			yield(domain.Commit{}, zerr.Wrap(err, "failed to read git log output"))
			return
		}
		if err := cmd.Wait(); err != nil {
			yield(domain.Commit{}, commandError(err, args, stderr.String()))
		}
	}
}

// parseRecord decodes "<hash>\x1f<subject>". A subject that is a strict
// semantic version marks a version commit.
func parseRecord(record string) (domain.Commit, bool) {
	record = strings.TrimSpace(record)
	if record == "" {
		return domain.Commit{}, false
	}

	ref, subject, ok := strings.Cut(record, string(fieldSep))
	if !ok {
		return domain.Commit{}, false
	}

	commit := domain.Commit{
		Ref:     ref,
		Subject: strings.TrimSpace(subject),
		Kind:    domain.CommitKindOther,
	}
	if _, err := domain.ParseVersion(commit.Subject); err == nil {
		commit.Kind = domain.CommitKindVersion
	}
	return commit, true
}

func splitRecords(data []byte, atEOF bool) (int, []byte, error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, recordSep); i >= 0 {
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
