package messages

// PlayerInput is sent from a client each frame with the player's input state.
// Movement axes are relative to the player's camera and range over [-1, 1].
type PlayerInput struct {
	Sequence    uint32 // Incrementing ID; stale inputs are dropped
	MoveForward float64
	MoveRight   float64
	Jump        bool
	Punch       bool
	Timestamp   int64 // Client timestamp (Unix ms)
}
