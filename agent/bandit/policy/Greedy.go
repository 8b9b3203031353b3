package policy

// NewGreedy creates a new greedy policy, which is an ε-greedy policy
// with ε = 0
func NewGreedy(actions int, seed uint64) (*EGreedy, error) {
	return NewEGreedy(0.0, actions, seed)
}
