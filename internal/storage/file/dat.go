package file

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/drakos74/mlviz/internal/storage"
	"github.com/rs/zerolog/log"
)

const Delimiter = ','

// Source reads comma-delimited data files from a directory.
// Files carry no header, no quoting and one record per line,
// a quote anywhere makes the file malformed.
type Source struct {
	dir string
}

// New creates a new file source for the given directory.
func New(dir string) *Source {
	return &Source{dir: dir}
}

// Path returns the full path of the named file.
func (s *Source) Path(name string) string {
	return filepath.Join(s.dir, name)
}

// Matrix loads an all-numeric file.
func (s *Source) Matrix(name string) ([][]float64, error) {
	records, err := s.read(name, 0)
	if err != nil {
		return nil, err
	}
	rows := make([][]float64, len(records))
	for i, record := range records {
		row := make([]float64, len(record))
		for j, field := range record {
			f, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("could not parse '%s' at %s:%d: %w", field, name, i+1, storage.MalformedInputErr)
			}
			row[j] = f
		}
		rows[i] = row
	}
	log.Debug().Str("file", name).Int("rows", len(rows)).Msg("loaded matrix")
	return rows, nil
}

// Mapping loads a two column file as key to value.
func (s *Source) Mapping(name string) (map[string]string, error) {
	records, err := s.read(name, 2)
	if err != nil {
		return nil, err
	}
	mapping := make(map[string]string, len(records))
	for _, record := range records {
		mapping[strings.TrimSpace(record[0])] = strings.TrimSpace(record[1])
	}
	log.Debug().Str("file", name).Int("keys", len(mapping)).Msg("loaded mapping")
	return mapping, nil
}

// Consume deletes the given files.
// All files are attempted, the first failure is returned.
func (s *Source) Consume(names ...string) error {
	var first error
	for _, name := range names {
		p := s.Path(name)
		err := os.Remove(p)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				err = fmt.Errorf("could not remove '%s': %w", p, storage.MissingInputErr)
			} else {
				err = fmt.Errorf("could not remove '%s': %w", p, err)
			}
			log.Error().Err(err).Str("file", p).Msg("could not consume input")
			if first == nil {
				first = err
			}
			continue
		}
		log.Debug().Str("file", p).Msg("consumed input")
	}
	return first
}

// read loads all records of the file, fields is the expected field count per record
// or 0 to only require that all records match the first one.
func (s *Source) read(name string, fields int) ([][]string, error) {
	p := s.Path(name)
	b, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("could not find '%s': %w", p, storage.MissingInputErr)
		}
		return nil, fmt.Errorf("could not open '%s': %w", p, err)
	}
	// fields are never quoted, the csv reader would strip quotes silently
	if i := bytes.IndexByte(b, '"'); i >= 0 {
		line := bytes.Count(b[:i], []byte{'\n'}) + 1
		return nil, fmt.Errorf("quote in '%s' at line %d: %w", p, line, storage.MalformedInputErr)
	}

	r := csv.NewReader(bytes.NewReader(b))
	r.Comma = Delimiter
	r.FieldsPerRecord = fields
	r.TrimLeadingSpace = true

	records := make([][]string, 0)
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("could not read '%s': %s: %w", p, err.Error(), storage.MalformedInputErr)
		}
		records = append(records, record)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("no records in '%s': %w", p, storage.MalformedInputErr)
	}
	return records, nil
}
