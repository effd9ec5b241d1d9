// Package boshjson decodes the structured output the BOSH v2 CLI prints when invoked with --json.
package boshjson

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// StdoutMarker tags a transcript block whose successor carries remote standard output.
const StdoutMarker = "stdout |"

var (
	ErrMissingBlocks  = errors.New("missing Blocks")
	ErrMissingTables  = errors.New("missing Tables")
	ErrNoTables       = errors.New("no tables in output")
	ErrMissingRows    = errors.New("missing Rows in first table")
	ErrDanglingMarker = errors.New("stdout marker is not followed by a content block")
)

// DecodeError is returned for output that is malformed or does not follow the expected schema.
type DecodeError struct {
	Err error
}

func (err *DecodeError) Error() string {
	return fmt.Sprintf("decode CLI output: %s", err.Err)
}

func (err *DecodeError) Unwrap() error {
	return err.Err
}

type transcript struct {
	Blocks *[]string `json:"Blocks"`
}

type listing struct {
	Tables *[]table `json:"Tables"`
}

type table struct {
	Rows *[]Row `json:"Rows"`
}

// Row is one line of a tabular listing, keyed by column name.
type Row map[string]any

// Field returns the string value of a column.
func (r Row) Field(key string) (string, error) {
	value, ok := r[key]
	if !ok {
		return "", &DecodeError{Err: fmt.Errorf("row has no %q column", key)}
	}
	s, ok := value.(string)
	if !ok {
		return "", &DecodeError{Err: fmt.Errorf("column %q is %T, not a string", key, value)}
	}
	return s, nil
}

// DecodeSSHTranscript extracts the remote standard output from `bosh --json ssh` output.
//
// Every block containing StdoutMarker is followed by exactly one content block.
// Content blocks are right-trimmed and joined with newlines, in order.
func DecodeSSHTranscript(raw []byte) (string, error) {
	doc := &transcript{}
	err := json.Unmarshal(raw, doc)
	if err != nil {
		return "", &DecodeError{Err: err}
	}
	if doc.Blocks == nil {
		return "", &DecodeError{Err: ErrMissingBlocks}
	}

	blocks := *doc.Blocks
	stdout := make([]string, 0)

	for i := 0; i < len(blocks); i++ {
		if !strings.Contains(blocks[i], StdoutMarker) {
			continue
		}
		if i+1 >= len(blocks) {
			return "", &DecodeError{Err: ErrDanglingMarker}
		}
		i++
		stdout = append(stdout, strings.TrimRightFunc(blocks[i], isSpace))
	}

	return strings.Join(stdout, "\n"), nil
}

// DecodeInstanceTable returns the rows of the first table in `bosh --json instances` output.
func DecodeInstanceTable(raw []byte) ([]Row, error) {
	doc := &listing{}
	err := json.Unmarshal(raw, doc)
	if err != nil {
		return nil, &DecodeError{Err: err}
	}

	switch {
	case doc.Tables == nil:
		return nil, &DecodeError{Err: ErrMissingTables}
	case len(*doc.Tables) == 0:
		return nil, &DecodeError{Err: ErrNoTables}
	case (*doc.Tables)[0].Rows == nil:
		return nil, &DecodeError{Err: ErrMissingRows}
	}

	return *(*doc.Tables)[0].Rows, nil
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f', 0:
		return true
	}
	return false
}
