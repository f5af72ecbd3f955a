package concurrent

import "sync"

type JobFunc[T any] func(T)

// BackgroundWorker fans jobs out to a fixed pool of goroutines. Used by the
// extractor to flush record batches to the kv store while parsing continues.
type BackgroundWorker[T any] struct {
	workers   int
	msgC      chan T
	waitGroup sync.WaitGroup
	jobFunc   JobFunc[T]
}

func NewBackgroundWorker[T any](workers, buffer int, jobFunc JobFunc[T]) *BackgroundWorker[T] {
	return &BackgroundWorker[T]{
		workers: workers,
		msgC:    make(chan T, buffer),
		jobFunc: jobFunc,
	}
}

func (bw *BackgroundWorker[T]) TriggerProcessing(jobData T) {
	bw.msgC <- jobData
}

func (bw *BackgroundWorker[T]) Start() {
	bw.waitGroup.Add(bw.workers)
	for i := 0; i < bw.workers; i++ {
		go func() {
			for jobData := range bw.msgC {
				bw.jobFunc(jobData)
			}
			bw.waitGroup.Done()
		}()
	}
}

// Close stops accepting jobs and blocks until queued jobs finish.
func (bw *BackgroundWorker[T]) Close() {
	close(bw.msgC)
	bw.waitGroup.Wait()
}
