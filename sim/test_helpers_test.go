package sim

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func read(id, at, addr, size int64) Request {
	return NewRequest(id, at, OpRead, addr, size)
}

func write(id, at, addr, size int64) Request {
	return NewRequest(id, at, OpWrite, addr, size)
}

// byID indexes a result's completed requests.
func byID(t *testing.T, reqs []Request) map[int64]Request {
	t.Helper()
	out := make(map[int64]Request, len(reqs))
	for _, r := range reqs {
		_, dup := out[r.ID]
		require.False(t, dup, "request %d appears twice", r.ID)
		out[r.ID] = r
	}
	return out
}

func completedIDs(res Result) []int64 {
	ids := make([]int64, len(res.Completed))
	for i, r := range res.Completed {
		ids[i] = r.ID
	}
	return ids
}

// mixedWorkload has overlapping reads and writes, equal timestamps and bursts.
func mixedWorkload() []Request {
	return []Request{
		write(1, 0, 0, 8),
		read(2, 0, 4, 4),
		read(3, 1, 100, 2),
		write(4, 1, 6, 3),
		write(5, 2, 120, 5),
		read(6, 3, 0, 16),
		read(7, 3, 110, 20),
		write(8, 5, 300, 1),
		write(9, 5, 300, 1),
		read(10, 8, 2, 2),
		write(11, 8, 100, 30),
		read(12, 9, 101, 1),
		read(13, 20, 500, 7),
		write(14, 20, 505, 4),
		read(15, 21, 0, 1),
	}
}
