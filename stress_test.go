package fibheap_test

import (
	"math/rand"
	"testing"

	"github.com/davidvella/fibheap"
	"github.com/google/btree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	key int
	id  int
}

func entryLess(a, b entry) bool {
	if a.key != b.key {
		return a.key < b.key
	}
	return a.id < b.id
}

// live tracks handles still inside the heap and supports random removal.
type live struct {
	ids     []int
	index   map[int]int
	handles map[int]*fibheap.Node[int, int]
}

func newLive() *live {
	return &live{
		index:   make(map[int]int),
		handles: make(map[int]*fibheap.Node[int, int]),
	}
}

func (l *live) add(id int, n *fibheap.Node[int, int]) {
	l.index[id] = len(l.ids)
	l.ids = append(l.ids, id)
	l.handles[id] = n
}

func (l *live) remove(id int) {
	i := l.index[id]
	last := l.ids[len(l.ids)-1]
	l.ids[i] = last
	l.index[last] = i
	l.ids = l.ids[:len(l.ids)-1]
	delete(l.index, id)
	delete(l.handles, id)
}

func (l *live) random(r *rand.Rand) int {
	return l.ids[r.Intn(len(l.ids))]
}

func TestHeap_StressAgainstOracle(t *testing.T) {
	seeds := []int64{1, 7, 42}
	for _, seed := range seeds {
		r := rand.New(rand.NewSource(seed))
		h := fibheap.New[int, int]()
		oracle := btree.NewG[entry](8, entryLess)
		handles := newLive()
		nextID := 0

		for step := 0; step < 5000; step++ {
			switch op := r.Intn(10); {
			case op < 4 || len(handles.ids) == 0:
				key := r.Intn(10000)
				n, err := h.Push(nextID, key)
				require.NoError(t, err)
				oracle.ReplaceOrInsert(entry{key: key, id: nextID})
				handles.add(nextID, n)
				nextID++
			case op < 6:
				id := handles.random(r)
				n := handles.handles[id]
				oldKey := n.Key()
				newKey := oldKey - 1 - r.Intn(500)
				require.NoError(t, h.DecreaseKey(n, newKey))
				oracle.Delete(entry{key: oldKey, id: id})
				oracle.ReplaceOrInsert(entry{key: newKey, id: id})
			case op < 8:
				id := handles.random(r)
				n, err := h.Delete(handles.handles[id])
				require.NoError(t, err)
				require.Equal(t, id, n.Value())
				_, found := oracle.Delete(entry{key: n.Key(), id: id})
				require.True(t, found)
				handles.remove(id)
			default:
				want, _ := oracle.Min()
				n, err := h.ExtractMin()
				require.NoError(t, err)
				require.Equal(t, want.key, n.Key(), "seed %d step %d", seed, step)
				_, found := oracle.Delete(entry{key: n.Key(), id: n.Value()})
				require.True(t, found)
				handles.remove(n.Value())
			}

			require.Equal(t, oracle.Len(), h.Len())
			if step%250 == 0 {
				require.NoError(t, h.Check(), "seed %d step %d", seed, step)
			}
		}

		require.NoError(t, h.Check())
		var want, got []int
		oracle.Ascend(func(e entry) bool {
			want = append(want, e.key)
			return true
		})
		for _, key := range h.Drain() {
			got = append(got, key)
		}
		assert.Equal(t, want, got, "seed %d", seed)
	}
}

func TestHeap_StressMeld(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	oracle := btree.NewG[int](8, func(a, b int) bool { return a < b })
	h := fibheap.New[int, struct{}]()

	for round := 0; round < 50; round++ {
		other := fibheap.New[int, struct{}]()
		pushes, pops := r.Intn(40), r.Intn(10)
		for i := 0; i < pushes; i++ {
			key := round*1000 + i
			_, err := other.Push(struct{}{}, key)
			require.NoError(t, err)
			oracle.ReplaceOrInsert(key)
		}
		require.NoError(t, h.Meld(other))
		for i := 0; i < pops && !h.Empty(); i++ {
			n, err := h.ExtractMin()
			require.NoError(t, err)
			want, _ := oracle.DeleteMin()
			require.Equal(t, want, n.Key())
		}
		require.NoError(t, h.Check())
		require.Equal(t, oracle.Len(), h.Len())
	}
}
