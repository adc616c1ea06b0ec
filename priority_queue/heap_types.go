package priority_queue

// Item is something we manage in a priority queue. Key is the scheduling
// selection value (burst time, remaining burst or priority) and Seq breaks
// ties deterministically: equal keys pop in ascending Seq order.
type Item struct {
	Pid   int
	Key   int
	Seq   int
	Index int
}
