package pcache

import (
	"bytes"
	"container/list"
	"fmt"
	"io/ioutil"
	"os"
	"path"
	"sync"

	"github.com/docker/docker/pkg/locker"
	"github.com/go-sif/peek"
	"github.com/go-sif/peek/logging"
	multierror "github.com/hashicorp/go-multierror"
)

// lru is an LRU cache for Partitions. The most recently added partitions are kept
// as-is, older ones are compressed in memory, and the oldest are swapped to disk.
type lru struct {
	config                 *LRUConfig
	plocks                 *locker.Locker // guards disk-swapped partition files, by key
	lock                   sync.Mutex
	pmap                   map[string]*list.Element
	compressedPmap         map[string]*list.Element
	diskPmap               map[string]*diskPartition
	recentUncompressedList *list.List // back is oldest, front is newest
	recentCompressedList   *list.List // back is oldest, front is newest
	maxUncompressed        int
	maxCompressed          int
	destroyed              bool
}

type cachedPartition struct {
	key   string
	value peek.OperablePartition
}

type cachedCompressedPartition struct {
	key   string
	value []byte
}

type diskPartition struct {
	path    string
	written chan struct{} // closed once the file write has finished
	err     error
}

// LRUConfig configures an LRU PartitionCache
type LRUConfig struct {
	Size               int                      // the number of partitions kept in memory, compressed or not
	CompressedFraction float32                  // the fraction of Size which is kept compressed
	DiskPath           string                   // where partitions are swapped to when memory is full
	Schema             peek.Schema              // the schema of every cached partition
	Compressor         peek.PartitionCompressor // owned by the cache, and destroyed with it
	Logger             *logging.Logger          // receives warnings about swap file cleanup. Defaults to logging.Default().
}

// NewLRU produces an LRU PartitionCache
func NewLRU(config *LRUConfig) (PartitionCache, error) {
	if config.Size < 5 {
		return nil, fmt.Errorf("LRUConfig.Size %d must be at least 5", config.Size)
	}
	if config.CompressedFraction < 0 || config.CompressedFraction > 1 {
		return nil, fmt.Errorf("LRUConfig.CompressedFraction %f must be between 0 and 1", config.CompressedFraction)
	}
	if config.Schema == nil {
		return nil, fmt.Errorf("LRUConfig.Schema must not be nil")
	}
	if config.Compressor == nil {
		return nil, fmt.Errorf("LRUConfig.Compressor must not be nil")
	}
	if config.Logger == nil {
		config.Logger = logging.Default()
	}
	maxUncompressed := int(float32(config.Size) * (1 - config.CompressedFraction))
	return &lru{
		config:                 config,
		plocks:                 locker.New(),
		pmap:                   make(map[string]*list.Element),
		compressedPmap:         make(map[string]*list.Element),
		diskPmap:               make(map[string]*diskPartition),
		recentUncompressedList: list.New(),
		recentCompressedList:   list.New(),
		maxUncompressed:        maxUncompressed,
		maxCompressed:          config.Size - maxUncompressed,
	}, nil
}

// CurrentSize returns the number of partitions in the cache, wherever they are stored
func (c *lru) CurrentSize() int {
	c.lock.Lock()
	defer c.lock.Unlock()
	return len(c.pmap) + len(c.compressedPmap) + len(c.diskPmap)
}

// Add inserts a partition, evicting older partitions to compressed memory and then to disk as necessary
func (c *lru) Add(key string, value peek.OperablePartition) error {
	c.lock.Lock()
	if c.destroyed {
		c.lock.Unlock()
		return fmt.Errorf("Cannot add partition %s to a destroyed cache", key)
	}
	if c.containsLocked(key) {
		c.lock.Unlock()
		return fmt.Errorf("Partition %s is already in the cache", key)
	}
	c.pmap[key] = c.recentUncompressedList.PushFront(&cachedPartition{key: key, value: value})
	// compress the oldest uncompressed partitions
	for c.recentUncompressedList.Len() > c.maxUncompressed {
		oldest := c.recentUncompressedList.Back()
		c.recentUncompressedList.Remove(oldest)
		cp := oldest.Value.(*cachedPartition)
		delete(c.pmap, cp.key)
		var buf bytes.Buffer
		if err := c.config.Compressor.Compress(&buf, cp.value); err != nil {
			c.lock.Unlock()
			return fmt.Errorf("Unable to compress partition %s: %w", cp.key, err)
		}
		c.compressedPmap[cp.key] = c.recentCompressedList.PushFront(&cachedCompressedPartition{key: cp.key, value: buf.Bytes()})
	}
	// and swap the oldest compressed ones to disk
	toDisk := make([]*cachedCompressedPartition, 0)
	for c.recentCompressedList.Len() > c.maxCompressed {
		oldest := c.recentCompressedList.Back()
		c.recentCompressedList.Remove(oldest)
		ccp := oldest.Value.(*cachedCompressedPartition)
		delete(c.compressedPmap, ccp.key)
		c.diskPmap[ccp.key] = &diskPartition{path: path.Join(c.config.DiskPath, ccp.key), written: make(chan struct{})}
		toDisk = append(toDisk, ccp)
	}
	entries := make([]*diskPartition, len(toDisk))
	for i, ccp := range toDisk {
		entries[i] = c.diskPmap[ccp.key]
	}
	c.lock.Unlock()

	var errs *multierror.Error
	for i, ccp := range toDisk {
		if err := c.evictToDisk(ccp, entries[i]); err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	return errs.ErrorOrNil()
}

func (c *lru) containsLocked(key string) bool {
	if _, ok := c.pmap[key]; ok {
		return true
	}
	if _, ok := c.compressedPmap[key]; ok {
		return true
	}
	_, ok := c.diskPmap[key]
	return ok
}

func (c *lru) evictToDisk(ccp *cachedCompressedPartition, entry *diskPartition) error {
	c.plocks.Lock(ccp.key)
	defer c.plocks.Unlock(ccp.key)
	defer close(entry.written)
	if err := ioutil.WriteFile(entry.path, ccp.value, 0600); err != nil {
		entry.err = fmt.Errorf("Unable to swap partition %s to disk: %w", ccp.key, err)
	}
	return entry.err
}

// Get removes the partition from the caches and returns it, if present. Returns an error otherwise.
func (c *lru) Get(key string) (value peek.OperablePartition, err error) {
	c.lock.Lock()
	if e, ok := c.pmap[key]; ok {
		delete(c.pmap, key)
		c.recentUncompressedList.Remove(e)
		c.lock.Unlock()
		return e.Value.(*cachedPartition).value, nil
	}
	if e, ok := c.compressedPmap[key]; ok {
		delete(c.compressedPmap, key)
		c.recentCompressedList.Remove(e)
		c.lock.Unlock()
		return c.config.Compressor.Decompress(bytes.NewReader(e.Value.(*cachedCompressedPartition).value), c.config.Schema)
	}
	if entry, ok := c.diskPmap[key]; ok {
		delete(c.diskPmap, key)
		c.lock.Unlock()
		return c.getFromDisk(key, entry)
	}
	c.lock.Unlock()
	return nil, fmt.Errorf("Partition %s is not in the cache", key)
}

// getFromDisk loads and removes a disk-swapped partition
func (c *lru) getFromDisk(key string, entry *diskPartition) (peek.OperablePartition, error) {
	<-entry.written
	if entry.err != nil {
		return nil, entry.err
	}
	c.plocks.Lock(key)
	defer c.plocks.Unlock(key)
	f, err := os.Open(entry.path)
	if err != nil {
		return nil, fmt.Errorf("Unable to load disk-swapped partition %s: %w", entry.path, err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			c.config.Logger.Warnf("Unable to close file %s: %v", entry.path, err)
		}
		if err := os.Remove(entry.path); err != nil {
			c.config.Logger.Warnf("Unable to remove file %s: %v", entry.path, err)
		}
	}()
	return c.config.Compressor.Decompress(f, c.config.Schema)
}

// Destroy empties the cache, removing any disk-swapped partitions, and releases the compressor
func (c *lru) Destroy() error {
	c.lock.Lock()
	if c.destroyed {
		c.lock.Unlock()
		return nil
	}
	c.destroyed = true
	onDisk := c.diskPmap
	c.pmap = make(map[string]*list.Element)
	c.compressedPmap = make(map[string]*list.Element)
	c.diskPmap = make(map[string]*diskPartition)
	c.recentUncompressedList.Init()
	c.recentCompressedList.Init()
	c.lock.Unlock()

	var errs *multierror.Error
	for key, entry := range onDisk {
		<-entry.written
		c.plocks.Lock(key)
		if err := os.Remove(entry.path); err != nil && !os.IsNotExist(err) {
			errs = multierror.Append(errs, err)
		}
		c.plocks.Unlock(key)
	}
	c.config.Compressor.Destroy()
	return errs.ErrorOrNil()
}
