package messages

// JoinRequest is sent by a client after connecting to request a player in
// the arena. Spectators never send it.
type JoinRequest struct {
	Version    string
	PlayerName string
}
