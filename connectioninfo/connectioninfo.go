// Package connectioninfo parses the connection URLs FalkorDB clients
// accept into a small sum type: a Redis-like network address, or an
// embedded-server Unix socket path.
package connectioninfo

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/falkordb/falkordb-go/falkorerrors"
)

const (
	DefaultHost = "127.0.0.1"
	DefaultPort = 6379

	// MaxSocketPathLen is the OS-imposed ceiling on a Unix domain socket
	// path (sun_path is 104 bytes on macOS and the BSDs and 108 bytes on
	// Linux; the smaller figure is used here). The embedded-server
	// collaborator that spawns the listening process is responsible for
	// keeping its chosen path under this; we only check it here so a
	// bad path fails fast at parse time instead of at connect time.
	MaxSocketPathLen = 104
)

// Scheme is one of the three URL schemes this client recognizes.
type Scheme string

const (
	SchemeRedis  Scheme = "redis"
	SchemeRediss Scheme = "rediss"
	SchemeFalkor Scheme = "falkor"
)

// Info is a sum type: exactly one of RedisLike or EmbeddedSocket is set.
// Use the Kind method to discriminate before reading fields.
type Info struct {
	kind kind

	// RedisLike fields.
	Addr     string
	Port     int
	User     string
	Password string
	TLS      bool

	// EmbeddedSocket field.
	SocketPath string
}

type kind uint8

const (
	kindRedisLike kind = iota
	kindEmbeddedSocket
)

// IsEmbeddedSocket reports whether Info describes a Unix-socket
// embedded-server connection rather than a network address.
func (i Info) IsEmbeddedSocket() bool {
	return i.kind == kindEmbeddedSocket
}

// EmbeddedSocket builds an Info for a pre-spawned embedded server
// listening on path. The embedded-server collaborator is responsible
// for spawning that process; this only validates the path length.
func EmbeddedSocket(path string) (Info, falkorerrors.Error) {
	if len(path) > MaxSocketPathLen {
		return Info{}, falkorerrors.FromString(
			falkorerrors.InvalidConnectionInfo,
			"embedded socket path exceeds the OS limit of "+strconv.Itoa(MaxSocketPathLen)+" bytes",
		)
	}

	return Info{kind: kindEmbeddedSocket, SocketPath: path}, nil
}

// ParseURL parses a connection string of the form
// scheme://[user[:pass]@]host[:port] where scheme is one of redis,
// rediss, or falkor. Missing host defaults to 127.0.0.1, missing port
// to 6379, and an empty string defaults the whole thing to
// falkor://127.0.0.1:6379 (scheme falkor is treated as non-TLS).
func ParseURL(raw string) (Info, falkorerrors.Error) {
	if raw == "" {
		return Info{kind: kindRedisLike, Addr: DefaultHost, Port: DefaultPort}, nil
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return Info{}, falkorerrors.FromError(
			falkorerrors.InvalidConnectionInfo,
			err,
			"parse connection url",
		)
	}

	scheme := Scheme(strings.ToLower(parsed.Scheme))
	if scheme == "" {
		scheme = SchemeFalkor
	}

	switch scheme {
	case SchemeRedis, SchemeRediss, SchemeFalkor:
	default:
		return Info{}, falkorerrors.FromString(
			falkorerrors.InvalidConnectionInfo,
			"unrecognized connection scheme "+string(scheme),
		)
	}

	host := parsed.Hostname()
	if host == "" {
		host = DefaultHost
	}

	port := DefaultPort

	if p := parsed.Port(); p != "" {
		parsedPort, convErr := strconv.Atoi(p)
		if convErr != nil {
			return Info{}, falkorerrors.FromError(
				falkorerrors.InvalidConnectionInfo,
				convErr,
				"parse connection url port",
			)
		}

		port = parsedPort
	}

	info := Info{
		kind: kindRedisLike,
		Addr: host,
		Port: port,
		TLS:  scheme == SchemeRediss,
	}

	if parsed.User != nil {
		info.User = parsed.User.Username()
		info.Password, _ = parsed.User.Password()
	}

	return info, nil
}
