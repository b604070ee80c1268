// Package priority implements a keyed priority queue that maintains a
// collection of key-priority pairs ordered by priority. The queue supports
// efficient insertion, deletion, and priority-based retrieval operations.
//
// The priority queue is backed by a Fibonacci heap with a map from keys to
// heap handles for O(1) key lookups. Lower priority values are returned first;
// negate priorities to get a max-queue.
//
// Key features:
//   - Generic implementation supporting any comparable key type and any
//     integer or floating point priority
//   - O(1) amortized insertion and priority decrease
//   - O(log n) amortized deletion and priority increase
//   - O(1) peek operations
//   - O(1) key-based lookups
//
// Basic usage:
//
//	pq := priority.NewQueue[string, int]()
//
//	// Add items
//	pq.Set("task1", 5)
//	pq.Set("task2", 3)
//	pq.Set("task3", 7)
//
//	// Get highest priority item
//	key, value, exists := pq.Peek()
//	if exists {
//	    fmt.Printf("Highest priority: %s = %d\n", key, value)
//	}
//
//	// Remove and return highest priority item
//	key, value, exists = pq.Pop()
//	if exists {
//	    fmt.Printf("Popped: %s = %d\n", key, value)
//	}
//
//	// Update priority
//	pq.Set("task1", 1)  // Updates existing key with new priority
//
//	// Remove specific key
//	pq.Remove("task3")
package priority
