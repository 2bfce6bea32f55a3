package storage

import "fmt"

// MockSource keeps the input files in memory.
type MockSource struct {
	Matrices map[string][][]float64
	Mappings map[string]map[string]string
	Consumed []string
}

func NewMockSource() *MockSource {
	return &MockSource{
		Matrices: make(map[string][][]float64),
		Mappings: make(map[string]map[string]string),
		Consumed: make([]string, 0),
	}
}

// WithMatrix adds a numeric input.
func (m *MockSource) WithMatrix(name string, rows [][]float64) *MockSource {
	m.Matrices[name] = rows
	return m
}

// WithMapping adds a key-value input.
func (m *MockSource) WithMapping(name string, mapping map[string]string) *MockSource {
	m.Mappings[name] = mapping
	return m
}

func (m *MockSource) Matrix(name string) ([][]float64, error) {
	rows, ok := m.Matrices[name]
	if !ok {
		return nil, fmt.Errorf("could not find '%s': %w", name, MissingInputErr)
	}
	return rows, nil
}

func (m *MockSource) Mapping(name string) (map[string]string, error) {
	mapping, ok := m.Mappings[name]
	if !ok {
		return nil, fmt.Errorf("could not find '%s': %w", name, MissingInputErr)
	}
	return mapping, nil
}

func (m *MockSource) Consume(names ...string) error {
	for _, name := range names {
		_, isMatrix := m.Matrices[name]
		_, isMapping := m.Mappings[name]
		if !isMatrix && !isMapping {
			return fmt.Errorf("could not consume '%s': %w", name, MissingInputErr)
		}
		delete(m.Matrices, name)
		delete(m.Mappings, name)
		m.Consumed = append(m.Consumed, name)
	}
	return nil
}
