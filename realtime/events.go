package realtime

// Event types pushed by mutation handlers. The mapping is 1:1 between
// mutation endpoint and event type — no batching, no debouncing.
const (
	EventNewOrder              = "newOrder"
	EventOrderStatusUpdate     = "orderStatusUpdate"
	EventOrderItemStatusUpdate = "orderItemStatusUpdate"
	EventTableStatusUpdate     = "tableStatusUpdate"
)
