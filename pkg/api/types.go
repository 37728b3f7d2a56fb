package api

// Transaction is the relay representation of a transaction exchanged between peers.
type Transaction struct {
	Sender    string  `json:"sender"`
	Receiver  string  `json:"receiver"`
	Amount    float64 `json:"amount"`
	Signature string  `json:"signature"`
}

// Block is the relay representation of a committed block.
type Block struct {
	Index        uint64        `json:"index"`
	PreviousHash string        `json:"previous_hash"`
	Timestamp    float64       `json:"timestamp"`
	Proof        uint64        `json:"proof"`
	Transactions []Transaction `json:"transactions"`
}

type CreateTransactionRequest struct {
	Receiver string  `json:"receiver"`
	Amount   float64 `json:"amount"`
}

type AddNodeRequest struct {
	Node string `json:"node"`
}

type InfoResponse struct {
	Info string `json:"info"`
}

type WalletResponse struct {
	PublicKey  string  `json:"public_key"`
	PrivateKey string  `json:"private_key"`
	Balance    float64 `json:"balance"`
}

type NodesResponse struct {
	Nodes []string `json:"nodes"`
}

type AddNodeResponse struct {
	Info string `json:"info"`
	Node string `json:"node"`
}

type MineResponse struct {
	Info  string `json:"info"`
	Block Block  `json:"block"`
}

type TransactionResponse struct {
	Info                 string `json:"info"`
	TransactionSignature string `json:"transaction_signature"`
}

type BalanceResponse struct {
	Identity string  `json:"identity"`
	Balance  float64 `json:"balance"`
}

type ChainValidationResponse struct {
	Valid  bool    `json:"valid"`
	Length int     `json:"length"`
	Reason *string `json:"reason,omitempty"`
}

type HealthResponse struct {
	Healthy bool    `json:"healthy"`
	Height  uint64  `json:"height"`
	Reason  *string `json:"reason,omitempty"`
}
