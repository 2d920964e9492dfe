package internal

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"
)

// DecompressAll runs DecompressOnce for every source into destinationDir,
// at most concurrency at a time. destinationDir is created first so that
// every source lands in its own <destinationDir>/<stem>; an empty
// destinationDir keeps the per-source defaults. Returns the first error
// encountered.
func (handler *DecompressHandler) DecompressAll(sources []string, destinationDir string, concurrency int) error {
	if len(sources) == 0 {
		return newNoFilesToDecompressError()
	}
	if concurrency < 1 {
		concurrency = 1
	}
	if destinationDir != "" {
		if err := prepareDestinationDir(destinationDir); err != nil {
			return err
		}
	}

	var errorCollector errgroup.Group
	errorCollector.SetLimit(concurrency)
	for _, source := range sources {
		source := source
		errorCollector.Go(func() error {
			return handler.DecompressOnce(source, destinationDir)
		})
	}
	return errorCollector.Wait()
}

func prepareDestinationDir(destinationDir string) error {
	exists, isDir, err := statPath(destinationDir)
	if err != nil {
		return err
	}
	if exists && !isDir {
		return newPathConflictError(destinationDir)
	}
	if err = os.MkdirAll(destinationDir, 0755); err != nil {
		return newIOError(err, "failed to create destination directory '%s'", destinationDir)
	}
	return nil
}

func HandleDecompressAll(sources []string, destinationDir string) error {
	concurrency, err := GetMaxExtractConcurrency()
	if err != nil {
		return err
	}
	return NewDecompressHandler(GetUnpackOptions()).DecompressAll(sources, destinationDir, concurrency)
}

func GetMaxExtractConcurrency() (int, error) {
	concurrency := viper.GetInt(ExtractConcurrencySetting)
	if concurrency < 1 {
		return 0, errors.Errorf("%s should be a positive integer, got %d",
			ExtractConcurrencySetting, concurrency)
	}
	return concurrency, nil
}
