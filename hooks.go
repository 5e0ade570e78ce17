package skipmap

// Test hooks (kept separate so instrumentation doesn't clutter logic).
var (
	// linkLevelHook is invoked after a new node is spliced in at a level.
	linkLevelHook func(level int, pred, idx int32)

	// unlinkLevelHook is invoked after a node is unlinked at a level.
	unlinkLevelHook func(level int, pred, idx int32)
)
