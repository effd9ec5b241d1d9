// Package logarchive reads the gzipped tarballs produced by `bosh logs`.
package logarchive

import (
	"archive/tar"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
)

const LogExtension = ".log"

// Upper bound on a single extracted file.
var maxLogFileSize int64 = 512 << 20

var (
	ErrUnsafePath   = errors.New("archive entry escapes destination directory")
	ErrFileTooLarge = errors.New("archive entry exceeds extraction size limit")
	ErrShortEntry   = errors.New("archive entry is shorter than its header size")
)

// List returns the paths of all log files in the archive, in archive order.
func List(path string) ([]string, error) {
	logs := make([]string, 0)
	err := walk(path, func(header *tar.Header, _ io.Reader) error {
		logs = append(logs, header.Name)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return logs, nil
}

// Extract writes all log files in the archive below dest and returns the written paths.
func Extract(path, dest string) ([]string, error) {
	written := make([]string, 0)
	err := walk(path, func(header *tar.Header, content io.Reader) error {
		target := filepath.Join(dest, filepath.Clean(header.Name))
		rel, err := filepath.Rel(dest, target)
		if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return fmt.Errorf("%s: %w", header.Name, ErrUnsafePath)
		}
		if header.Size > maxLogFileSize {
			return fmt.Errorf("%s is %d bytes, limit %d: %w", header.Name, header.Size, maxLogFileSize, ErrFileTooLarge)
		}

		err = os.MkdirAll(filepath.Dir(target), 0o755)
		if err != nil {
			return err
		}

		file, err := os.OpenFile(target, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}
		n, err := io.Copy(file, io.LimitReader(content, maxLogFileSize))
		closeErr := file.Close()
		if err != nil {
			return fmt.Errorf("write %s: %w", target, err)
		}
		if closeErr != nil {
			return closeErr
		}
		if n != header.Size {
			return fmt.Errorf("%s: wrote %d of %d bytes: %w", header.Name, n, header.Size, ErrShortEntry)
		}

		written = append(written, target)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return written, nil
}

// IsLogFile reports whether an archive entry name has the log extension.
func IsLogFile(name string) bool {
	return filepath.Ext(name) == LogExtension
}

func walk(path string, fn func(header *tar.Header, content io.Reader) error) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open log archive: %w", err)
	}
	defer file.Close()

	gzReader, err := gzip.NewReader(file)
	if err != nil {
		return fmt.Errorf("%s: create gzip reader: %w", path, err)
	}
	defer gzReader.Close()

	tarReader := tar.NewReader(gzReader)
	for {
		header, err := tarReader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%s: read tar archive: %w", path, err)
		}
		if header.Typeflag != tar.TypeReg || !IsLogFile(header.Name) {
			continue
		}
		err = fn(header, tarReader)
		if err != nil {
			return err
		}
	}
}
