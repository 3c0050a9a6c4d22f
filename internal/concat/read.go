package concat

import (
	"context"
	"fmt"
	"sync"

	"github.com/harrison/mdconcat/internal/assemble"
	"github.com/harrison/mdconcat/internal/models"
)

// readDocuments reads and normalizes every entry with up to workers
// goroutines. Results keep the order of entries. The first failure stops
// the remaining reads and is returned.
func readDocuments(ctx context.Context, entries []models.FileEntry, workers int) ([]assemble.Document, error) {
	docs := make([]assemble.Document, len(entries))
	if len(entries) == 0 {
		return docs, nil
	}

	if workers < 1 {
		workers = 1
	}
	if workers > len(entries) {
		workers = len(entries)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		once     sync.Once
		firstErr error
		wg       sync.WaitGroup
	)
	fail := func(err error) {
		once.Do(func() {
			firstErr = err
			cancel()
		})
	}

	jobs := make(chan int)
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				if ctx.Err() != nil {
					continue
				}
				doc, err := assemble.ReadDocument(entries[i])
				if err != nil {
					fail(fmt.Errorf("%w %s: %w", ErrRead, entries[i].RelPath, err))
					continue
				}
				docs[i] = doc
			}
		}()
	}

feed:
	for i := range entries {
		select {
		case jobs <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	// Cancelled by the caller rather than by a read failure
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return docs, nil
}
