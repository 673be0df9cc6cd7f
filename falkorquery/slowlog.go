package falkorquery

import (
	"context"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/falkordb/falkordb-go/falkorerrors"
)

const slowlogEntryLen = 4

// SlowlogEntry is one row of GRAPH.SLOWLOG: one of the N slowest
// queries the server has serviced recently.
type SlowlogEntry struct {
	Timestamp int64
	Command   string
	Arguments string
	TimeTaken float64
}

func parseSlowlog(raw any) ([]SlowlogEntry, falkorerrors.Error) {
	rows, err := asOuterArray(raw)
	if err != nil {
		return nil, err.Wrap("decode slowlog")
	}

	out := make([]SlowlogEntry, 0, len(rows))

	for _, row := range rows {
		entry, entryErr := parseSlowlogEntry(row)
		if entryErr != nil {
			return nil, entryErr
		}

		out = append(out, entry)
	}

	return out, nil
}

func parseSlowlogEntry(raw any) (SlowlogEntry, falkorerrors.Error) {
	cols, err := asOuterArray(raw)
	if err != nil || len(cols) != slowlogEntryLen {
		return SlowlogEntry{}, falkorerrors.FromString(
			falkorerrors.MalformedResponse,
			"slowlog entry must be a 4-element array",
		)
	}

	timestampStr, ok := cols[0].(string)
	if !ok {
		return SlowlogEntry{}, falkorerrors.FromString(falkorerrors.ParsingI64, "slowlog timestamp is not a string")
	}

	timestamp, convErr := strconv.ParseInt(timestampStr, 10, 64)
	if convErr != nil {
		return SlowlogEntry{}, falkorerrors.FromError(falkorerrors.ParsingI64, convErr, "parse slowlog timestamp")
	}

	command, ok := cols[1].(string)
	if !ok {
		return SlowlogEntry{}, falkorerrors.FromString(falkorerrors.ParsingString, "slowlog command is not a string")
	}

	arguments, ok := cols[2].(string)
	if !ok {
		return SlowlogEntry{}, falkorerrors.FromString(falkorerrors.ParsingString, "slowlog arguments is not a string")
	}

	timeTakenStr, ok := cols[3].(string)
	if !ok {
		return SlowlogEntry{}, falkorerrors.FromString(falkorerrors.ParsingF64, "slowlog time_taken is not a string")
	}

	timeTaken, convErr := strconv.ParseFloat(timeTakenStr, 64)
	if convErr != nil {
		return SlowlogEntry{}, falkorerrors.FromError(falkorerrors.ParsingF64, convErr, "parse slowlog time_taken")
	}

	return SlowlogEntry{
		Timestamp: timestamp,
		Command:   command,
		Arguments: arguments,
		TimeTaken: timeTaken,
	}, nil
}

// RunSlowlog issues GRAPH.SLOWLOG for graphName.
func RunSlowlog(ctx context.Context, conn *redis.Conn, graphName string) ([]SlowlogEntry, falkorerrors.Error) {
	raw, err := doCommand(ctx, conn, []any{CommandSlowlog, graphName})
	if err != nil {
		return nil, err
	}

	elems, outerErr := asOuterArray(raw)
	if outerErr != nil {
		return nil, outerErr.Wrap("decode slowlog")
	}

	if len(elems) == 0 {
		return []SlowlogEntry{}, nil
	}

	return parseSlowlog(raw)
}

// RunSlowlogReset issues GRAPH.SLOWLOG RESET for graphName.
func RunSlowlogReset(ctx context.Context, conn *redis.Conn, graphName string) falkorerrors.Error {
	_, err := doCommand(ctx, conn, []any{CommandSlowlog, graphName, "RESET"})

	return err
}
