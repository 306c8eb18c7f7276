package constants

// PipelineState is the orchestrator's position in handling one request.
type PipelineState string

// Stable values (logged, never stored).
const (
	StateBuilding   PipelineState = "BUILDING"   // rendering prompts
	StateCalling    PipelineState = "CALLING"    // completion call in flight
	StateValidating PipelineState = "VALIDATING" // checking model output against schema
	StateRetrying   PipelineState = "RETRYING"   // one bounded retry
	StateFinalizing PipelineState = "FINALIZING" // envelope + fire-and-forget persist
	StateDone       PipelineState = "DONE"       // terminal
)
