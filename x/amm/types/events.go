package types

// Event types emitted by the amm module
const (
	EventTypePoolCreated      = "pool_created"
	EventTypeLiquidityAdded   = "liquidity_added"
	EventTypeLiquidityRemoved = "liquidity_removed"
	EventTypeSwap             = "swap"
	EventTypeFeesWithdrawn    = "fees_withdrawn"
	EventTypePaused           = "amm_paused"
	EventTypeResumed          = "amm_resumed"
)

// Event attribute keys
const (
	AttributeKeyPoolId       = "pool_id"
	AttributeKeyPairedDenom  = "paired_denom"
	AttributeKeyCreator      = "creator"
	AttributeKeyProvider     = "provider"
	AttributeKeyTrader       = "trader"
	AttributeKeyRecipient    = "recipient"
	AttributeKeyBaseAmount   = "base_amount"
	AttributeKeyPairedAmount = "paired_amount"
	AttributeKeyShares       = "shares"
	AttributeKeyBaseIn       = "base_in"
	AttributeKeyBaseOut      = "base_out"
	AttributeKeyPairedIn     = "paired_in"
	AttributeKeyPairedOut    = "paired_out"
	AttributeKeyFee          = "fee"
	AttributeKeyHeight       = "height"
)
