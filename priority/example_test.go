package priority_test

import (
	"fmt"

	"github.com/davidvella/fibheap/priority"
)

// ExampleQueue_minHeap demonstrates using the priority queue as a min-heap.
func ExampleQueue_minHeap() {
	pq := priority.NewQueue[string, int]()

	// Add some items
	pq.Set("task1", 5)
	pq.Set("task2", 3)
	pq.Set("task3", 7)

	// Peek at highest priority item
	key, value, exists := pq.Peek()
	if exists {
		fmt.Printf("Highest priority: %s = %d\n", key, value)
	}

	// Pop items in priority order
	for pq.Len() > 0 {
		key, value, _ := pq.Pop()
		fmt.Printf("Popped: %s = %d\n", key, value)
	}

	// Output:
	// Highest priority: task2 = 3
	// Popped: task2 = 3
	// Popped: task1 = 5
	// Popped: task3 = 7
}

// ExampleQueue_maxHeap demonstrates a max-heap by negating priorities.
func ExampleQueue_maxHeap() {
	pq := priority.NewQueue[string, int]()

	// Add items
	pq.Set("A", -10)
	pq.Set("B", -20)
	pq.Set("C", -15)

	// Update priority of existing item
	pq.Set("A", -25)

	// Pop all items
	for pq.Len() > 0 {
		key, value, _ := pq.Pop()
		fmt.Printf("%s: %d\n", key, -value)
	}

	// Output:
	// A: 25
	// B: 20
	// C: 15
}

// ExampleQueue_customType demonstrates using the queue with struct keys.
func ExampleQueue_customType() {
	type Task struct {
		ID   int
		Name string
	}

	pq := priority.NewQueue[Task, float64]()

	// Add tasks
	pq.Set(Task{ID: 1, Name: "Low priority"}, 2)
	pq.Set(Task{ID: 2, Name: "High priority"}, 1)

	// Process tasks in priority order
	for pq.Len() > 0 {
		task, p, _ := pq.Pop()
		fmt.Printf("Processing: %s (priority %.0f)\n", task.Name, p)
	}

	// Output:
	// Processing: High priority (priority 1)
	// Processing: Low priority (priority 2)
}
