package falkorpool

import (
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/falkordb/falkordb-go/falkorerrors"
)

// ConnectionGuard is a scoped resource holding one borrowed connection.
// Release (deferred by the caller on every exit path) returns the
// connection to the pool unless the guard was poisoned, in which case
// the connection is dropped and the pool replaces it in the background.
// Using a guard after Release reports EmptyConnection.
type ConnectionGuard struct {
	pool     *Pool
	conn     *pooledConn
	poisoned bool
	released bool
	mu       sync.Mutex
}

// Conn returns the underlying go-redis dedicated connection for the
// duration of the caller's query. Safe to call only before Release.
func (g *ConnectionGuard) Conn() (*redis.Conn, falkorerrors.Error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.released {
		return nil, falkorerrors.FromString(
			falkorerrors.EmptyConnection,
			"connection guard used after its connection was released",
		)
	}

	return g.conn.conn, nil
}

// Poison marks the guard so Release drops the connection instead of
// returning it to the pool. Call this after an unrecoverable transport
// error.
func (g *ConnectionGuard) Poison() {
	g.mu.Lock()
	g.poisoned = true
	g.mu.Unlock()
}

// Release returns the connection to the pool, or — if the guard was
// poisoned — closes it and queues a background replacement so the pool
// stays at capacity. Safe to call more than once; only the first call
// has an effect. Meant to be deferred immediately after a successful
// Borrow.
func (g *ConnectionGuard) Release() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.released {
		return
	}

	g.released = true

	if !g.poisoned {
		g.pool.conns <- g.conn
		g.pool.log.Tracef("released connection %s", g.conn.id)

		return
	}

	g.pool.log.Warnf("dropping poisoned connection %s", g.conn.id)

	if err := g.conn.conn.Close(); err != nil {
		g.pool.log.Warnf("failed to close poisoned connection %s: %v", g.conn.id, err)
	}

	go g.pool.replace()
}
