package domain

// Table is a mongo collection name
type Table string

const (
	TableListings       Table = "Listings"
	TableActiveListings Table = "ActiveListings"
	TableEscrowHoldings Table = "EscrowHoldings"
	TableBalances       Table = "Balances"
	TableMarketEvents   Table = "MarketEvents"
	TableSequences      Table = "Sequences"
	TableAssetStats     Table = "AssetStats"
	TableAccounts       Table = "Accounts"
	TableHealthCheck    Table = "HealthCheck"
)
