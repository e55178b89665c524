package chain

// SavingsCircleABI covers the read and write surface used against the SavingsCircle contract.
const SavingsCircleABI = `[
	{
		"type": "function",
		"name": "getCircleInfo",
		"stateMutability": "view",
		"inputs": [{"name": "circleId", "type": "uint256"}],
		"outputs": [
			{"name": "name", "type": "string"},
			{"name": "creator", "type": "address"},
			{"name": "contributionAmount", "type": "uint256"},
			{"name": "totalMembers", "type": "uint256"},
			{"name": "currentRound", "type": "uint256"},
			{"name": "status", "type": "uint8"},
			{"name": "createdAt", "type": "uint256"},
			{"name": "startBlock", "type": "uint256"},
			{"name": "roundDuration", "type": "uint256"},
			{"name": "gracePeriod", "type": "uint256"},
			{"name": "totalContributed", "type": "uint256"},
			{"name": "totalPaidOut", "type": "uint256"},
			{"name": "tokenType", "type": "uint8"},
			{"name": "tokenContract", "type": "address"}
		]
	},
	{
		"type": "function",
		"name": "startCircle",
		"stateMutability": "nonpayable",
		"inputs": [{"name": "circleId", "type": "uint256"}],
		"outputs": []
	}
]`

// ERC20ABI is the subset of the ERC-20 interface used for token drips.
const ERC20ABI = `[
	{
		"type": "function",
		"name": "transfer",
		"stateMutability": "nonpayable",
		"inputs": [
			{"name": "to", "type": "address"},
			{"name": "amount", "type": "uint256"}
		],
		"outputs": [{"name": "", "type": "bool"}]
	},
	{
		"type": "function",
		"name": "balanceOf",
		"stateMutability": "view",
		"inputs": [{"name": "account", "type": "address"}],
		"outputs": [{"name": "", "type": "uint256"}]
	}
]`
