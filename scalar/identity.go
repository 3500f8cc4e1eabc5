package scalar

import (
	"sync"

	"github.com/godruoyi/go-snowflake"
	"go.uber.org/atomic"
)

// IdentitySource hands out the correlation tokens attached to scalars. Tokens only
// need to be unique and positive; they are compared for equality and sign only.
type IdentitySource interface {
	Next() int64
}

type CounterSource struct {
	counter *atomic.Int64
}

// NewCounterSource counts up from 1.
func NewCounterSource() *CounterSource {
	return &CounterSource{
		counter: atomic.NewInt64(0),
	}
}

func (src *CounterSource) Next() int64 {
	return src.counter.Inc()
}

// Last returns the most recently issued identity, 0 if none.
func (src *CounterSource) Last() int64 {
	return src.counter.Load()
}

type snowflakeSource struct {
}

// NewSnowflakeSource issues snowflake ids, unique across processes that were
// given distinct machine ids.
func NewSnowflakeSource() IdentitySource {
	return &snowflakeSource{}
}

func (src *snowflakeSource) Next() int64 {
	return int64(snowflake.ID())
}

var (
	sourceLock sync.RWMutex
	source     IdentitySource = NewCounterSource()
)

// SetIdentitySource installs src for every scalar created afterwards and returns
// the previous source. A nil src installs a fresh counter.
func SetIdentitySource(src IdentitySource) IdentitySource {
	if src == nil {
		src = NewCounterSource()
	}

	sourceLock.Lock()
	defer sourceLock.Unlock()

	old := source
	source = src

	return old
}

func CurrentIdentitySource() IdentitySource {
	sourceLock.RLock()
	defer sourceLock.RUnlock()

	return source
}

func nextIdentity() int64 {
	return CurrentIdentitySource().Next()
}
