package contract

// PackContractABI is the ABI of the deployed pack contract: an ERC-1155
// whose ids 1..222 are packs and 223..888 are cards.
const PackContractABI = `[
  {"type":"function","name":"mintPacks","stateMutability":"payable",
   "inputs":[{"internalType":"uint256","name":"amount","type":"uint256"}],"outputs":[]},
  {"type":"function","name":"openPacks","stateMutability":"nonpayable",
   "inputs":[{"internalType":"uint256[]","name":"packIds","type":"uint256[]"}],"outputs":[]},
  {"type":"function","name":"openPack","stateMutability":"nonpayable",
   "inputs":[{"internalType":"uint256","name":"tokenId","type":"uint256"}],"outputs":[]},
  {"type":"function","name":"totalPacksMinted","stateMutability":"view",
   "inputs":[],"outputs":[{"internalType":"uint256","name":"","type":"uint256"}]},
  {"type":"function","name":"TOTAL_PACKS","stateMutability":"view",
   "inputs":[],"outputs":[{"internalType":"uint256","name":"","type":"uint256"}]},
  {"type":"function","name":"mintPrice","stateMutability":"view",
   "inputs":[],"outputs":[{"internalType":"uint256","name":"","type":"uint256"}]},
  {"type":"function","name":"balanceOf","stateMutability":"view",
   "inputs":[{"internalType":"address","name":"account","type":"address"},{"internalType":"uint256","name":"id","type":"uint256"}],
   "outputs":[{"internalType":"uint256","name":"","type":"uint256"}]},
  {"type":"function","name":"balanceOfBatch","stateMutability":"view",
   "inputs":[{"internalType":"address[]","name":"accounts","type":"address[]"},{"internalType":"uint256[]","name":"ids","type":"uint256[]"}],
   "outputs":[{"internalType":"uint256[]","name":"","type":"uint256[]"}]},
  {"type":"function","name":"uri","stateMutability":"view",
   "inputs":[{"internalType":"uint256","name":"tokenId","type":"uint256"}],
   "outputs":[{"internalType":"string","name":"","type":"string"}]},
  {"type":"function","name":"getPacksMetadataByOwner","stateMutability":"view",
   "inputs":[{"internalType":"address","name":"owner","type":"address"}],
   "outputs":[{"internalType":"struct Pack.PackMetadata[]","name":"","type":"tuple[]",
     "components":[{"internalType":"uint256","name":"tokenId","type":"uint256"},{"internalType":"string","name":"uri","type":"string"}]}]},
  {"type":"function","name":"getFreeMintCount","stateMutability":"view",
   "inputs":[{"internalType":"address","name":"holder","type":"address"}],
   "outputs":[{"internalType":"uint256","name":"","type":"uint256"}]},
  {"type":"function","name":"getDiscountedMintCount","stateMutability":"view",
   "inputs":[{"internalType":"address","name":"holder","type":"address"}],
   "outputs":[{"internalType":"uint256","name":"","type":"uint256"}]},
  {"type":"event","name":"TransferSingle","anonymous":false,
   "inputs":[{"indexed":true,"internalType":"address","name":"operator","type":"address"},
             {"indexed":true,"internalType":"address","name":"from","type":"address"},
             {"indexed":true,"internalType":"address","name":"to","type":"address"},
             {"indexed":false,"internalType":"uint256","name":"id","type":"uint256"},
             {"indexed":false,"internalType":"uint256","name":"value","type":"uint256"}]}
]`

// Contract method and event names
const (
	MethodMintPacks              = "mintPacks"
	MethodOpenPacks              = "openPacks"
	MethodTotalPacksMinted       = "totalPacksMinted"
	MethodTotalPacks             = "TOTAL_PACKS"
	MethodMintPrice              = "mintPrice"
	MethodBalanceOf              = "balanceOf"
	MethodBalanceOfBatch         = "balanceOfBatch"
	MethodURI                    = "uri"
	MethodGetPacksMetadata       = "getPacksMetadataByOwner"
	MethodGetFreeMintCount       = "getFreeMintCount"
	MethodGetDiscountedMintCount = "getDiscountedMintCount"

	EventTransferSingle = "TransferSingle"
)
