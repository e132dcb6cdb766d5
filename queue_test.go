package optics

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSeedQueue_OrderedAscending(t *testing.T) {
	q := newSeedQueue()
	q.Insert(3, 2.5)
	q.Insert(1, 0.5)
	q.Insert(2, 1.5)

	expected := []int{1, 2, 3}
	if diff := cmp.Diff(expected, q.Ordered()); diff != "" {
		t.Errorf("ordered contents mismatch (-want +got):\n%s", diff)
	}
}

func TestSeedQueue_TieBreakByItem(t *testing.T) {
	q := newSeedQueue()
	q.Insert(9, 1.0)
	q.Insert(4, 1.0)
	q.Insert(7, 1.0)

	expected := []int{4, 7, 9}
	if diff := cmp.Diff(expected, q.Ordered()); diff != "" {
		t.Errorf("equal priorities must order by ascending item (-want +got):\n%s", diff)
	}
}

func TestSeedQueue_RemoveByIdentity(t *testing.T) {
	q := newSeedQueue()
	q.Insert(1, 0.5)
	q.Insert(2, 1.5)
	q.Insert(3, 2.5)

	q.Remove(2)
	expected := []int{1, 3}
	if diff := cmp.Diff(expected, q.Ordered()); diff != "" {
		t.Errorf("contents after Remove mismatch (-want +got):\n%s", diff)
	}
	if q.Len() != 2 {
		t.Errorf("Len = %d, expected 2", q.Len())
	}
}

func TestSeedQueue_RemoveAbsentIsNoop(t *testing.T) {
	q := newSeedQueue()
	q.Insert(1, 0.5)
	q.Remove(99)
	if q.Len() != 1 {
		t.Errorf("Len = %d after removing an absent item, expected 1", q.Len())
	}
}

func TestSeedQueue_LowerPriorityByReinsert(t *testing.T) {
	q := newSeedQueue()
	q.Insert(1, 1.0)
	q.Insert(2, 3.0)

	q.Remove(2)
	q.Insert(2, 0.5)

	expected := []int{2, 1}
	if diff := cmp.Diff(expected, q.Ordered()); diff != "" {
		t.Errorf("reinsertion at a lower priority not reflected (-want +got):\n%s", diff)
	}
}

func TestSeedQueue_OrderedDoesNotDrain(t *testing.T) {
	q := newSeedQueue()
	q.Insert(1, 1.0)
	q.Insert(2, 2.0)

	first := q.Ordered()
	second := q.Ordered()
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("consecutive Ordered calls disagree (-first +second):\n%s", diff)
	}
	if q.Len() != 2 {
		t.Errorf("Ordered drained the queue: Len = %d", q.Len())
	}
}

func TestSeedQueue_RandomizedAgainstSort(t *testing.T) {
	r := rand.New(rand.NewSource(13))
	q := newSeedQueue()

	type entry struct {
		item     int
		priority float64
	}
	live := map[int]float64{}

	for op := 0; op < 2000; op++ {
		if r.Intn(3) != 0 || len(live) == 0 {
			item := r.Intn(500)
			if _, ok := live[item]; ok {
				q.Remove(item)
			}
			p := r.Float64()
			live[item] = p
			q.Insert(item, p)
		} else {
			// Remove a random live item.
			for item := range live {
				q.Remove(item)
				delete(live, item)
				break
			}
		}
	}

	want := make([]entry, 0, len(live))
	for item, p := range live {
		want = append(want, entry{item, p})
	}
	sort.Slice(want, func(i, j int) bool {
		if want[i].priority != want[j].priority {
			return want[i].priority < want[j].priority
		}
		return want[i].item < want[j].item
	})
	wantItems := make([]int, len(want))
	for i, e := range want {
		wantItems[i] = e.item
	}

	if diff := cmp.Diff(wantItems, q.Ordered()); diff != "" {
		t.Errorf("queue order diverges from reference sort (-want +got):\n%s", diff)
	}
}
