package processor

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"sort"
	"strings"
	"sync"

	pkgerrors "github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/esimports/eis/pkg/diff"
	"github.com/esimports/eis/pkg/errors"
	"github.com/esimports/eis/pkg/sorter"
	"github.com/esimports/eis/pkg/utils"
)

type Config struct {
	Sorter sorter.Config // pipeline configuration applied to every file
	Write  bool          // rewrite files in place instead of printing
	Check  bool          // report unordered files without touching them
	Diff   bool          // print a unified diff instead of full content
}

// processor drives the sorter over files, directories, and standard input
type processor struct {
	config Config

	mu        sync.Mutex
	unordered []string
}

// New creates a new processor with the specified configuration
func New(config Config) *processor {
	return &processor{config: config}
}

// splice replaces the import statements inside src with the sorted block.
// The block lands at the position of the first original statement; every
// matched statement, plus one trailing newline each, is removed, and the
// text between statements is preserved after the block.
func (p *processor) splice(src string) (string, error) {
	spans := sorter.ExtractSpans(src)
	if len(spans) == 0 {
		return "", sorter.ErrNoImports
	}

	block, err := sorter.New(p.config.Sorter).Sort(src)
	if err != nil {
		return "", err
	}

	var out strings.Builder
	out.WriteString(src[:spans[0][0]])
	out.WriteString(block)
	out.WriteByte('\n')

	rest := spans[0][0]
	for _, span := range spans {
		out.WriteString(src[rest:span[0]])
		rest = span[1]
		if rest < len(src) && src[rest] == '\n' {
			rest++
		}
	}
	out.WriteString(src[rest:])

	return out.String(), nil
}

// ProcessFileWithOutput processes a source file with optional output control
func (p *processor) ProcessFileWithOutput(filePath string, verbose bool) error {
	src, err := os.ReadFile(filePath)
	if err != nil {
		return pkgerrors.Wrap(err, errors.ErrMsgFailedToReadFile)
	}

	result, err := p.splice(string(src))
	if err != nil {
		if pkgerrors.Is(err, sorter.ErrNoImports) {
			// No imports to process
			if verbose {
				fmt.Printf(errors.InfoMsgNoImportsFound+"\n", filePath)
			}
			return nil
		}
		return pkgerrors.Wrap(err, errors.ErrMsgFailedToSortImports)
	}

	changed := result != string(src)

	switch {
	case p.config.Check:
		if changed {
			p.mu.Lock()
			p.unordered = append(p.unordered, filePath)
			p.mu.Unlock()
		}
	case p.config.Diff:
		if changed {
			p.mu.Lock()
			fmt.Print(diff.Unified(filePath, string(src), result))
			p.mu.Unlock()
		}
	case p.config.Write:
		if !changed {
			return nil
		}
		if err := os.WriteFile(filePath, []byte(result), 0644); err != nil {
			return pkgerrors.Wrap(err, errors.ErrMsgFailedToWriteFile)
		}
	default:
		if verbose {
			fmt.Print(result)
		}
	}

	return nil
}

// ProcessFile processes a single source file and normalizes its imports
func (p *processor) ProcessFile(filePath string) error {
	return p.ProcessFileWithOutput(filePath, true)
}

// ProcessFiles processes multiple source files concurrently, continuing
// past per-file failures and reporting counts at the end
func (p *processor) ProcessFiles(filePaths []string) error {
	var (
		mu             sync.Mutex
		processedCount int
		errorCount     int
	)

	group := new(errgroup.Group)
	group.SetLimit(runtime.NumCPU())

	for _, filePath := range filePaths {
		group.Go(func() error {
			err := p.ProcessFileWithOutput(filePath, false)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				fmt.Printf(errors.InfoMsgErrorProcessing+"\n", filePath, err)
				errorCount++
				return nil
			}
			processedCount++
			if p.config.Write {
				fmt.Printf(errors.InfoMsgProcessedFiles+"\n", filePath)
			}
			return nil
		})
	}
	_ = group.Wait()

	fmt.Printf(errors.InfoMsgProcessedCount, processedCount)
	if errorCount > 0 {
		fmt.Printf(errors.InfoMsgErrorCount, errorCount)
	}
	fmt.Println()

	if errorCount > 0 {
		return fmt.Errorf(errors.ErrMsgFilesFailedToProcess, errorCount)
	}
	return nil
}

// ProcessPath processes a file or directory path
func (p *processor) ProcessPath(path string) error {
	isDir, err := utils.IsDirectory(path)
	if err != nil {
		return pkgerrors.Wrap(err, errors.ErrMsgFailedToCheckPath)
	}

	if !isDir {
		if err := p.ProcessFile(path); err != nil {
			return err
		}
		return p.checkResult()
	}

	// When processing directories, a result mode is recommended
	if !p.config.Write && !p.config.Check && !p.config.Diff {
		fmt.Printf(errors.WarnMsgProcessingDirWithoutWrite + "\n")
		fmt.Printf(errors.InfoMsgUseWriteFlag + "\n\n")
	}

	files, err := utils.FindSourceFiles(path)
	if err != nil {
		return pkgerrors.Wrap(err, errors.ErrMsgFailedToFindFiles)
	}

	if len(files) == 0 {
		fmt.Printf(errors.InfoMsgNoSourceFilesFound+"\n", path)
		return nil
	}

	fmt.Printf(errors.InfoMsgFoundSourceFiles+"\n\n", len(files), path)

	if err := p.ProcessFiles(files); err != nil {
		return err
	}
	return p.checkResult()
}

// ProcessStdin sorts the text arriving on standard input and prints the
// replacement block by itself
func (p *processor) ProcessStdin() error {
	src, err := io.ReadAll(os.Stdin)
	if err != nil {
		return pkgerrors.Wrap(err, errors.ErrMsgFailedToReadStdin)
	}

	block, err := sorter.New(p.config.Sorter).Sort(string(src))
	if err != nil {
		if pkgerrors.Is(err, sorter.ErrNoImports) {
			fmt.Printf(errors.InfoMsgNoImportsFound+"\n", "standard input")
			return nil
		}
		return pkgerrors.Wrap(err, errors.ErrMsgFailedToSortImports)
	}

	fmt.Println(block)
	return nil
}

// checkResult reports every file collected in check mode and turns a
// non-empty collection into a failure
func (p *processor) checkResult() error {
	if !p.config.Check {
		return nil
	}

	p.mu.Lock()
	unordered := make([]string, len(p.unordered))
	copy(unordered, p.unordered)
	p.mu.Unlock()

	if len(unordered) == 0 {
		return nil
	}

	sort.Strings(unordered)
	for _, filePath := range unordered {
		fmt.Printf(errors.InfoMsgUnorderedImports+"\n", filePath)
	}
	return fmt.Errorf(errors.ErrMsgFilesNeedReordering, len(unordered))
}
