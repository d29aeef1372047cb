package session

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/go-sif/peek"
	"github.com/go-sif/peek/internal/stats"
	uuid "github.com/gofrs/uuid"
	"github.com/hashicorp/go-multierror"
)

var (
	activeLock sync.Mutex
	active     *Session
)

// Session is a local execution context for DataFrames
type Session struct {
	id         string
	opts       *Options
	scratchDir string
	lock       sync.Mutex
	stopped    bool
	lastStats  *stats.RunStatistics
}

// SessionBuilder configures a Session before it is obtained
type SessionBuilder struct {
	opts *Options
}

// Builder returns a SessionBuilder with default Options
func Builder() *SessionBuilder {
	return &SessionBuilder{opts: &Options{}}
}

// AppName sets the name of the Session
func (b *SessionBuilder) AppName(name string) *SessionBuilder {
	b.opts.AppName = name
	return b
}

// Config replaces the Options of the Session. An AppName set on the
// builder is kept if opts does not specify one.
func (b *SessionBuilder) Config(opts *Options) *SessionBuilder {
	appName := b.opts.AppName
	b.opts = CloneOptions(opts)
	if len(b.opts.AppName) == 0 {
		b.opts.AppName = appName
	}
	return b
}

// GetOrCreate returns the active Session for this process if there is one, ignoring
// this builder's Options. Otherwise, it creates a Session and makes it the active one.
func (b *SessionBuilder) GetOrCreate() (*Session, error) {
	activeLock.Lock()
	defer activeLock.Unlock()
	if active != nil {
		active.opts.Logger.Debugf("Using existing session %s; new options are ignored", active.id)
		return active, nil
	}
	s, err := b.Create()
	if err != nil {
		return nil, err
	}
	active = s
	return s, nil
}

// Create always produces a new Session, which does not become the active one
func (b *SessionBuilder) Create() (*Session, error) {
	opts := CloneOptions(b.opts)
	if err := ensureDefaultOptionsValues(opts); err != nil {
		return nil, err
	}
	id, err := uuid.NewV4()
	if err != nil {
		return nil, fmt.Errorf("failed to generate UUID: %w", err)
	}
	scratchDir := filepath.Join(opts.TempDir, fmt.Sprintf("%s-%s", opts.AppName, id.String()))
	if err := os.MkdirAll(scratchDir, 0700); err != nil {
		return nil, fmt.Errorf("unable to create scratch directory: %w", err)
	}
	opts.Logger.Debugf("Started session %s (%s) with %d workers", id.String(), opts.AppName, opts.NumWorkers)
	return &Session{
		id:         id.String(),
		opts:       opts,
		scratchDir: scratchDir,
		lastStats:  &stats.RunStatistics{},
	}, nil
}

// ID returns the unique ID of this Session
func (s *Session) ID() string {
	return s.id
}

// Options returns a copy of the Options of this Session, with defaults filled in
func (s *Session) Options() *Options {
	return CloneOptions(s.opts)
}

// Read returns a Reader for loading DataFrames from files
func (s *Session) Read() *Reader {
	return &Reader{session: s, options: map[string]string{}}
}

// Statistics returns statistics for the most recent action run by this Session
func (s *Session) Statistics() peek.RuntimeStatistics {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.lastStats
}

// Stop releases the resources held by this Session. If it is the active Session,
// a later GetOrCreate will produce a new one. Stopping twice is a no-op.
func (s *Session) Stop() error {
	activeLock.Lock()
	if active == s {
		active = nil
	}
	activeLock.Unlock()

	s.lock.Lock()
	defer s.lock.Unlock()
	if s.stopped {
		return nil
	}
	s.stopped = true
	var errs *multierror.Error
	if err := os.RemoveAll(s.scratchDir); err != nil {
		errs = multierror.Append(errs, err)
	}
	s.opts.Logger.Debugf("Stopped session %s", s.id)
	return errs.ErrorOrNil()
}

func (s *Session) isStopped() bool {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.stopped
}
