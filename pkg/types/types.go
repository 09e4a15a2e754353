package types

// BalanceResponse is the reply envelope for a balance lookup. The balance is
// rendered as a decimal string so 256 bit values survive JSON round-trips.
type BalanceResponse struct {
	Balance string `json:"balance"`
}
