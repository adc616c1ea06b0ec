package priority_queue

import "container/heap"

// A PriorityQueue implements heap.Interface and holds Items.
type PriorityQueue []*Item

// Len returns length of priorityQueue
func (pq PriorityQueue) Len() int { return len(pq) }

// Less is the function used for priority queue order
func (pq PriorityQueue) Less(i, j int) bool {
	// We want Pop to give us the lowest key; ties resolve by insertion sequence
	if pq[i].Key != pq[j].Key {
		return pq[i].Key < pq[j].Key
	}
	return pq[i].Seq < pq[j].Seq
}

// Swap swaps 2 elements
func (pq PriorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].Index = i
	pq[j].Index = j
}

// Push adds item in queue
func (pq *PriorityQueue) Push(x any) {
	n := len(*pq)
	item := x.(*Item)
	item.Index = n
	*pq = append(*pq, item)
}

// Pop returns first item in queue and removes it
func (pq *PriorityQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil  // avoid memory leak
	item.Index = -1 // for safety
	*pq = old[0 : n-1]
	return item
}

// Update modifies the key of an Item in the queue and restores heap order.
func (pq *PriorityQueue) Update(item *Item, key int) {
	item.Key = key
	heap.Fix(pq, item.Index)
}
