package commands

import (
	"fmt"

	"github.com/vacsync/vacsync-go/pkg/log"
)

// RunFilter writes events matching filter to a new log file and returns
// how many were copied.
func RunFilter(path string, filter log.Filter, output string) (int, error) {
	logger, err := log.NewFileLogger(output)
	if err != nil {
		return 0, fmt.Errorf("failed to create output logger: %w", err)
	}

	count := 0
	err = log.Each(path, filter, func(event log.Event) error {
		logger.Log(event)
		count++
		return nil
	})
	closeErr := logger.Close()
	if err != nil {
		return count, fmt.Errorf("read %s: %w", path, err)
	}
	if n := logger.Dropped(); n > 0 {
		return count - n, fmt.Errorf("%d events could not be written to %s", n, output)
	}
	return count, closeErr
}
