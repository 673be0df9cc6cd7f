// Package falkorpool implements a fixed-size pool of dedicated Redis
// connections with blocking borrow/return semantics, built on
// go-redis's *redis.Client in its Conn() dedicated-connection mode. It
// keeps the teacher cache.Redis package's error-wrapping idiom around
// every go-redis call and its Ping/Close shape, but trades the shared
// pooled client for a bounded channel of exclusive connections, since
// every command in this protocol family must run on one connection for
// the duration of a query.
package falkorpool

import (
	"context"
	"crypto/tls"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/falkordb/falkordb-go/connectioninfo"
	"github.com/falkordb/falkordb-go/falkorerrors"
	"github.com/falkordb/falkordb-go/falkorlog"
	"github.com/falkordb/falkordb-go/yabackoff"
)

const (
	MinPoolSize = 1
	MaxPoolSize = 32
)

type pooledConn struct {
	id   string
	conn *redis.Conn
}

// Pool is a bounded channel of capacity exclusive connections, each
// created eagerly at construction. At rest, chan-length plus
// outstanding borrows always equals capacity.
type Pool struct {
	client   *redis.Client
	conns    chan *pooledConn
	capacity uint8
	log      falkorlog.Logger
}

// New dials capacity connections against info and returns a Pool ready
// to borrow from. capacity outside [1,32] is rejected with
// InvalidPoolSize before any connection is attempted.
func New(ctx context.Context, info connectioninfo.Info, capacity uint8, log falkorlog.Logger) (*Pool, falkorerrors.Error) {
	if capacity < MinPoolSize || capacity > MaxPoolSize {
		return nil, falkorerrors.FromString(
			falkorerrors.InvalidPoolSize,
			fmt.Sprintf("pool size %d outside [%d,%d]", capacity, MinPoolSize, MaxPoolSize),
		)
	}

	client := newRedisClient(info)

	pool := &Pool{
		client:   client,
		conns:    make(chan *pooledConn, capacity),
		capacity: capacity,
		log:      log.WithField(falkorlog.KeyComponent, "falkorpool"),
	}

	for range capacity {
		conn, err := pool.dial(ctx)
		if err != nil {
			pool.closeClient()

			return nil, err.Wrap("construct pool")
		}

		pool.conns <- conn
	}

	return pool, nil
}

func newRedisClient(info connectioninfo.Info) *redis.Client {
	if info.IsEmbeddedSocket() {
		return redis.NewClient(&redis.Options{
			Network: "unix",
			Addr:    info.SocketPath,
		})
	}

	opts := &redis.Options{
		Addr:     fmt.Sprintf("%s:%d", info.Addr, info.Port),
		Username: info.User,
		Password: info.Password,
	}

	if info.TLS {
		// go-redis negotiates TLS only when TLSConfig is non-nil; leaving
		// RootCAs unset verifies the server against the system roots.
		opts.TLSConfig = &tls.Config{ServerName: info.Addr, MinVersion: tls.VersionTLS12}
	}

	return redis.NewClient(opts)
}

func (p *Pool) dial(ctx context.Context) (*pooledConn, falkorerrors.Error) {
	conn := p.client.Conn()

	if err := conn.Ping(ctx).Err(); err != nil {
		return nil, falkorerrors.FromError(
			falkorerrors.ConnectionDown,
			err,
			"dial pool connection",
		)
	}

	return &pooledConn{id: uuid.NewString(), conn: conn}, nil
}

// Borrow blocks until a connection is available or ctx is done.
func (p *Pool) Borrow(ctx context.Context) (*ConnectionGuard, falkorerrors.Error) {
	select {
	case conn := <-p.conns:
		p.log.Tracef("borrowed connection %s", conn.id)

		return &ConnectionGuard{pool: p, conn: conn}, nil
	case <-ctx.Done():
		return nil, falkorerrors.FromError(
			falkorerrors.ConnectionDown,
			ctx.Err(),
			"borrow connection",
		)
	}
}

// replace dials one fresh connection in the background and enqueues it,
// backing off between dial attempts, so a poisoned guard's connection is
// eventually replaced rather than permanently shrinking the pool.
func (p *Pool) replace() {
	backoff := yabackoff.NewExponential(0, 0, 0, 0)

	for {
		conn, err := p.dial(context.Background())
		if err == nil {
			p.conns <- conn

			return
		}

		p.log.Warnf("failed to replace poisoned connection: %v", err)
		backoff.Wait()
	}
}

// Ping checks connectivity using a connection borrowed from the pool.
func (p *Pool) Ping(ctx context.Context) falkorerrors.Error {
	guard, err := p.Borrow(ctx)
	if err != nil {
		return err.Wrap("ping pool")
	}
	defer guard.Release()

	conn, err := guard.Conn()
	if err != nil {
		return err.Wrap("ping pool")
	}

	if pingErr := conn.Ping(ctx).Err(); pingErr != nil {
		guard.Poison()

		return falkorerrors.FromError(falkorerrors.ConnectionDown, pingErr, "ping pool")
	}

	return nil
}

// Close drains and closes every connection currently resting in the
// pool, then closes the underlying client. Connections on loan at the
// time of Close are not closed one by one here; releasing their guard
// afterwards puts them back into the pool's channel.
func (p *Pool) Close() falkorerrors.Error {
	for range p.capacity {
		select {
		case conn := <-p.conns:
			if err := conn.conn.Close(); err != nil {
				p.log.Warnf("failed to close pooled connection %s: %v", conn.id, err)
			}
		default:
		}
	}

	return p.closeClient()
}

func (p *Pool) closeClient() falkorerrors.Error {
	if err := p.client.Close(); err != nil {
		return falkorerrors.FromError(falkorerrors.ConnectionDown, err, "close pool client")
	}

	return nil
}

// Capacity reports the pool's fixed size.
func (p *Pool) Capacity() uint8 {
	return p.capacity
}
