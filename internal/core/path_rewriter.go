package core

import (
	"bytes"
	"fmt"
	"path/filepath"
	"unicode/utf8"

	"abifix/internal/core/domain"
	"abifix/internal/ports"
)

type PathRewriter struct {
	fileSystem ports.FileSystem
	reporter   ports.Reporter
}

func ProvidePathRewriter(fileSystem ports.FileSystem, reporter ports.Reporter) PathRewriter {
	return PathRewriter{
		fileSystem: fileSystem,
		reporter:   reporter,
	}
}

// Rewrite replaces target.Search with target.Replace in every target file that exists.
// Missing directories and files are reported and skipped. The first read, write or
// encoding failure ends the run and is returned; files already rewritten stay rewritten.
func (r *PathRewriter) Rewrite(target domain.Target) (domain.RewriteSummary, error) {
	var summary domain.RewriteSummary

	for _, abiDir := range target.AbiDirs {
		abiPath := filepath.Join(target.BaseDir, abiDir)
		dirExists, err := r.fileSystem.DirExists(abiPath)
		if err != nil {
			return summary, err
		}
		if !dirExists {
			r.reporter.DirectoryNotFound(abiDir)
			summary.Entries = append(summary.Entries, domain.RewriteEntry{
				AbiDir:  abiDir,
				Path:    abiPath,
				Outcome: domain.OutcomeDirectoryNotFound,
			})
			continue
		}

		for _, filename := range target.Files {
			filePath := filepath.Join(abiPath, filename)
			entry, err := r.rewriteFile(filePath, target.Search, target.Replace)
			if err != nil {
				return summary, err
			}
			entry.AbiDir = abiDir
			summary.Entries = append(summary.Entries, entry)
		}
	}

	r.reporter.Done()
	return summary, nil
}

func (r *PathRewriter) rewriteFile(filePath string, search string, replace string) (domain.RewriteEntry, error) {
	entry := domain.RewriteEntry{Path: filePath}

	fileExists, err := r.fileSystem.FileExists(filePath)
	if err != nil {
		return entry, err
	}
	if !fileExists {
		r.reporter.FileNotFound(filePath)
		entry.Outcome = domain.OutcomeFileNotFound
		return entry, nil
	}

	r.reporter.Processing(filePath)

	content, err := r.fileSystem.ReadFile(filePath)
	if err != nil {
		return entry, fmt.Errorf("failed to read %s: %w", filePath, err)
	}
	if !utf8.Valid(content) {
		return entry, fmt.Errorf("failed to decode %s: %w", filePath, ErrInvalidEncoding)
	}

	rewritten, count := ReplaceAll(content, []byte(search), []byte(replace))

	if err := r.fileSystem.WriteFile(filePath, rewritten, ports.ReadAllWriteOwner); err != nil {
		return entry, fmt.Errorf("failed to write %s: %w", filePath, err)
	}

	r.reporter.Fixed(filePath)
	entry.Outcome = domain.OutcomeFixed
	entry.Replacements = count
	return entry, nil
}

// ReplaceAll replaces every non-overlapping occurrence of search, scanning left to right.
// Text produced by a replacement is never searched again.
func ReplaceAll(content []byte, search []byte, replace []byte) ([]byte, int) {
	count := bytes.Count(content, search)
	if count == 0 || len(search) == 0 {
		return content, 0
	}
	return bytes.ReplaceAll(content, search, replace), count
}
