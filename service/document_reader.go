package service

import (
	"bufio"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/ludo-technologies/simdoc/domain"
)

// DocumentReaderImpl implements the domain.DocumentReader interface.
//
// Documents are line-based: one document per non-empty line, with ids
// assigned by position over the retained lines. A directory input collects
// matching files in sorted path order and concatenates their lines.
type DocumentReaderImpl struct{}

// NewDocumentReader creates a new document reader service
func NewDocumentReader() *DocumentReaderImpl {
	return &DocumentReaderImpl{}
}

// ReadDocuments loads the corpus from a file or directory path.
func (r *DocumentReaderImpl) ReadDocuments(path string, includePatterns, excludePatterns []string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, domain.NewFileNotFoundError(path, err)
	}

	var files []string
	if info.IsDir() {
		files, err = r.collectFromDirectory(path, includePatterns, excludePatterns)
		if err != nil {
			return nil, err
		}
	} else {
		files = []string{path}
	}

	var documents []string
	for _, file := range files {
		docs, err := r.readLines(file)
		if err != nil {
			return nil, err
		}
		documents = append(documents, docs...)
	}

	if len(documents) == 0 {
		return nil, domain.NewInvalidInputError("no documents found in "+path, nil)
	}
	return documents, nil
}

// readLines reads one file, keeping non-empty lines.
func (r *DocumentReaderImpl) readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, domain.NewFileNotFoundError(path, err)
	}
	defer func() { _ = f.Close() }()

	var documents []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		documents = append(documents, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, domain.NewInvalidInputError("failed to read "+path, err)
	}
	return documents, nil
}

// collectFromDirectory walks a directory, applying include and exclude
// patterns to base names.
func (r *DocumentReaderImpl) collectFromDirectory(dirPath string, includePatterns, excludePatterns []string) ([]string, error) {
	var files []string
	err := filepath.Walk(dirPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if r.shouldIncludeFile(path, includePatterns, excludePatterns) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, domain.NewFileNotFoundError(dirPath, err)
	}
	sort.Strings(files)
	return files, nil
}

// shouldIncludeFile applies the include patterns (any must match) and the
// exclude patterns (none may match) to the file's base name.
func (r *DocumentReaderImpl) shouldIncludeFile(path string, includePatterns, excludePatterns []string) bool {
	base := filepath.Base(path)

	included := len(includePatterns) == 0
	for _, pattern := range includePatterns {
		if matched, err := doublestar.Match(pattern, base); err == nil && matched {
			included = true
			break
		}
	}
	if !included {
		return false
	}

	for _, pattern := range excludePatterns {
		if matched, err := doublestar.Match(pattern, base); err == nil && matched {
			return false
		}
	}
	return true
}
