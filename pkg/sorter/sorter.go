package sorter

import (
	"github.com/pkg/errors"
)

// ErrNoImports reports that the input contained nothing matching the import
// grammar. Callers treat it as nothing to do rather than as a failure.
var ErrNoImports = errors.New("no import statements found")

// Config carries every knob the pipeline reads. The zero value keeps
// records in input order inside default-ordered buckets.
type Config struct {
	Priority            []Origin
	SeparateByOrigin    bool
	SeparateMultiline   bool
	SortBy              SortPolicy
	SortNamedBindings   bool
	SortNamedBindingsBy SortPolicy
	PathPrefixes        []string
}

type sorter struct {
	config Config
}

// New returns a sorter bound to the provided configuration.
func New(config Config) *sorter {
	return &sorter{config: config}
}

// Sort runs the full pipeline over a block of source text: extract the
// import statements, transform each into a record, order and render the
// records, and return the replacement block. ErrNoImports is returned when
// the text contains no import statement at all.
func (s *sorter) Sort(text string) (string, error) {
	statements := Extract(text)
	if len(statements) == 0 {
		return "", ErrNoImports
	}
	buckets := newBucketSet(s.config.Priority)
	for _, statement := range statements {
		record, err := s.Transform(statement)
		if err != nil {
			return "", err
		}
		if s.config.SortNamedBindings {
			sortNamedBindings(record, s.config.SortNamedBindingsBy)
		}
		buckets.add(record)
	}
	for _, origin := range buckets.order {
		records := buckets.records[origin]
		sortRecordsByPath(records, s.config.SortBy)
		for _, record := range records {
			renderRecord(record)
		}
		sortRecordsBySize(records, s.config.SortBy)
	}
	return s.assemble(buckets), nil
}
