package dataframe

import (
	"context"
	goerrors "errors"
	"fmt"
	"runtime"
	"time"

	"github.com/go-sif/peek"
	"github.com/go-sif/peek/errors"
	"github.com/go-sif/peek/internal/partition"
	"github.com/go-sif/peek/internal/pcache"
	"github.com/go-sif/peek/internal/stats"
	"github.com/go-sif/peek/logging"
	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// ExecutorConfig configures the execution of a Plan
type ExecutorConfig struct {
	NumWorkers            int                             // maximum number of PartitionLoaders processed concurrently. Defaults to runtime.NumCPU().
	TempDir               string                          // where staged Partitions are swapped to when memory is full
	NumInMemoryPartitions int                             // number of staged Partitions kept in memory, compressed or not. Defaults to 100.
	CompressedFraction    float32                         // fraction of NumInMemoryPartitions kept compressed
	NewCompressor         func() peek.PartitionCompressor // produces the compressor for staged Partitions. Defaults to LZ4.
	Stats                 *stats.RunStatistics            // receives statistics for this run. May be nil.
	Logger                *logging.Logger                 // may be nil
}

func ensureDefaultExecutorConfigValues(conf *ExecutorConfig) {
	if conf.NumWorkers <= 0 {
		conf.NumWorkers = runtime.NumCPU()
	}
	if conf.NumInMemoryPartitions == 0 {
		conf.NumInMemoryPartitions = 100
	}
	if conf.NewCompressor == nil {
		conf.NewCompressor = partition.NewLZ4PartitionCompressor
	}
	if conf.Stats == nil {
		conf.Stats = &stats.RunStatistics{}
	}
	if conf.Logger == nil {
		conf.Logger = logging.Discard()
	}
}

// Execute runs a Plan to completion, returning the resulting non-empty Partitions
// in source order. If the Plan has a limit, at most that many Rows are returned.
func Execute(ctx context.Context, plan *Plan, conf *ExecutorConfig) (result []peek.CollectedPartition, err error) {
	ensureDefaultExecutorConfigValues(conf)
	if plan.source.IsStreaming() {
		return nil, fmt.Errorf("Cannot execute a DataFrame over a streaming DataSource")
	}
	pmap, err := plan.source.Analyze()
	if err != nil {
		return nil, err
	}
	loaders := []peek.PartitionLoader{}
	for pmap.HasNext() {
		loaders = append(loaders, pmap.Next())
	}
	cache, err := pcache.NewLRU(&pcache.LRUConfig{
		Size:               conf.NumInMemoryPartitions,
		CompressedFraction: conf.CompressedFraction,
		DiskPath:           conf.TempDir,
		Schema:             plan.schema,
		Compressor:         conf.NewCompressor(),
		Logger:             conf.Logger,
	})
	if err != nil {
		return nil, err
	}
	defer func() {
		if dErr := cache.Destroy(); dErr != nil {
			err = multierror.Append(err, dErr)
			result = nil
		}
	}()

	conf.Stats.Start()
	defer conf.Stats.Finish()
	conf.Logger.Debugf("Executing plan with %d tasks over %d partition loaders", plan.Size(), len(loaders))

	// keys[i] holds the cache keys of loader i's partitions, in order.
	// Each slot is written by exactly one worker.
	keys := make([][]string, len(loaders))
	g, gctx := errgroup.WithContext(ctx)
	sem := semaphore.NewWeighted(int64(conf.NumWorkers))
	for i, loader := range loaders {
		if err := sem.Acquire(gctx, 1); err != nil {
			break
		}
		i, loader := i, loader
		g.Go(func() error {
			defer sem.Release(1)
			loaded, err := runLoader(gctx, plan, loader, cache, conf)
			keys[i] = loaded
			if err != nil {
				return fmt.Errorf("%s: %w", loader.ToString(), err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// assemble results in (loader, partition) order
	result = make([]peek.CollectedPartition, 0)
	var collected int64
	for _, loaded := range keys {
		for _, key := range loaded {
			part, err := cache.Get(key)
			if err != nil {
				return nil, err
			}
			if plan.limit >= 0 && collected >= plan.limit {
				continue
			}
			if plan.limit >= 0 && collected+int64(part.GetNumRows()) > plan.limit {
				part = part.Head(int(plan.limit - collected))
			}
			collected += int64(part.GetNumRows())
			result = append(result, partition.CreateCollectedPartition(part))
		}
	}
	conf.Logger.Debugf("Collected %d rows in %d partitions", collected, len(result))
	return result, nil
}

// runLoader processes every Partition produced by a single PartitionLoader, in order,
// staging the non-empty results in the cache. It returns the keys of staged Partitions.
func runLoader(ctx context.Context, plan *Plan, loader peek.PartitionLoader, cache pcache.PartitionCache, conf *ExecutorConfig) (keys []string, err error) {
	it, err := loader.Load(plan.parser, plan.sourceSchema)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cErr := it.Close(); cErr != nil {
			err = multierror.Append(err, cErr)
		}
	}()
	var produced int64
	for it.HasNextPartition() {
		if plan.limit >= 0 && produced >= plan.limit {
			conf.Logger.Debugf("%s reached collection limit of %d rows", loader.ToString(), plan.limit)
			break
		}
		if err := ctx.Err(); err != nil {
			return keys, err
		}
		start := time.Now()
		part, err := it.NextPartition()
		if goerrors.As(err, &errors.NoMorePartitionsError{}) {
			break
		} else if err != nil {
			return keys, err
		}
		numLoaded := part.GetNumRows()
		if numLoaded == 0 {
			continue
		}
		part, err = plan.runTasks(part)
		if err != nil {
			return keys, err
		}
		conf.Stats.EndPartition(start, numLoaded)
		if part.GetNumRows() == 0 {
			continue
		}
		if err := cache.Add(part.ID(), part); err != nil {
			return keys, err
		}
		keys = append(keys, part.ID())
		produced += int64(part.GetNumRows())
	}
	return keys, nil
}
