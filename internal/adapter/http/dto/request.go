package dto

// WithdrawRequest asks for an on-chain send. Amount is a decimal tao
// string.
type WithdrawRequest struct {
	Address string `json:"address"`
	Amount  string `json:"amount"`
}

// TipRequest asks for an internal transfer to another account. ChannelID
// names the chat channel the command came from; the public
// acknowledgement goes there.
type TipRequest struct {
	To        string `json:"to"`
	Amount    string `json:"amount"`
	ChannelID string `json:"channel_id"`
}
