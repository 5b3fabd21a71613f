package checkout

// Package checkout implements the mock order submission flow. There is no
// payment backend; submitting an order waits a fixed delay simulating network
// latency, then either completes (clearing the cart) or takes the simulated
// decline branch. One order is in flight at a time and a closed service
// discards late completions instead of acting on torn-down state.
