package consts

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// ArbRetryableTxAddress is the precompile managing retryable tickets on every child chain
var ArbRetryableTxAddress = common.HexToAddress("0x000000000000000000000000000000000000006E")

var InboxABI, _ = abi.JSON(strings.NewReader(`
[
  {
    "inputs": [
      { "internalType": "address", "name": "to", "type": "address" },
      { "internalType": "uint256", "name": "l2CallValue", "type": "uint256" },
      { "internalType": "uint256", "name": "maxSubmissionCost", "type": "uint256" },
      { "internalType": "address", "name": "excessFeeRefundAddress", "type": "address" },
      { "internalType": "address", "name": "callValueRefundAddress", "type": "address" },
      { "internalType": "uint256", "name": "gasLimit", "type": "uint256" },
      { "internalType": "uint256", "name": "maxFeePerGas", "type": "uint256" },
      { "internalType": "bytes", "name": "data", "type": "bytes" }
    ],
    "name": "createRetryableTicket",
    "outputs": [
      { "internalType": "uint256", "name": "", "type": "uint256" }
    ],
    "stateMutability": "payable",
    "type": "function"
  },
  {
    "anonymous": false,
    "inputs": [
      { "indexed": true, "internalType": "uint256", "name": "messageNum", "type": "uint256" },
      { "indexed": false, "internalType": "bytes", "name": "data", "type": "bytes" }
    ],
    "name": "InboxMessageDelivered",
    "type": "event"
  }
]
`))

var BridgeABI, _ = abi.JSON(strings.NewReader(`
[
  {
    "anonymous": false,
    "inputs": [
      { "indexed": true, "internalType": "uint256", "name": "messageIndex", "type": "uint256" },
      { "indexed": true, "internalType": "bytes32", "name": "beforeInboxAcc", "type": "bytes32" },
      { "indexed": false, "internalType": "address", "name": "inbox", "type": "address" },
      { "indexed": false, "internalType": "uint8", "name": "kind", "type": "uint8" },
      { "indexed": false, "internalType": "address", "name": "sender", "type": "address" },
      { "indexed": false, "internalType": "bytes32", "name": "messageDataHash", "type": "bytes32" },
      { "indexed": false, "internalType": "uint256", "name": "baseFeeL1", "type": "uint256" },
      { "indexed": false, "internalType": "uint64", "name": "timestamp", "type": "uint64" }
    ],
    "name": "MessageDelivered",
    "type": "event"
  }
]
`))

var ArbRetryableTxABI, _ = abi.JSON(strings.NewReader(`
[
  {
    "inputs": [
      { "internalType": "bytes32", "name": "ticketId", "type": "bytes32" }
    ],
    "name": "getTimeout",
    "outputs": [
      { "internalType": "uint256", "name": "", "type": "uint256" }
    ],
    "stateMutability": "view",
    "type": "function"
  },
  {
    "anonymous": false,
    "inputs": [
      { "indexed": true, "internalType": "bytes32", "name": "ticketId", "type": "bytes32" },
      { "indexed": true, "internalType": "bytes32", "name": "retryTxHash", "type": "bytes32" },
      { "indexed": true, "internalType": "uint64", "name": "sequenceNum", "type": "uint64" },
      { "indexed": false, "internalType": "uint64", "name": "donatedGas", "type": "uint64" },
      { "indexed": false, "internalType": "address", "name": "gasDonor", "type": "address" },
      { "indexed": false, "internalType": "uint256", "name": "maxRefund", "type": "uint256" },
      { "indexed": false, "internalType": "uint256", "name": "submissionFeeRefund", "type": "uint256" }
    ],
    "name": "RedeemScheduled",
    "type": "event"
  }
]
`))

var GatewayRouterABI, _ = abi.JSON(strings.NewReader(`
[
  {
    "inputs": [
      { "internalType": "address", "name": "_token", "type": "address" }
    ],
    "name": "getGateway",
    "outputs": [
      { "internalType": "address", "name": "gateway", "type": "address" }
    ],
    "stateMutability": "view",
    "type": "function"
  },
  {
    "inputs": [
      { "internalType": "address", "name": "l1ERC20", "type": "address" }
    ],
    "name": "calculateL2TokenAddress",
    "outputs": [
      { "internalType": "address", "name": "", "type": "address" }
    ],
    "stateMutability": "view",
    "type": "function"
  },
  {
    "inputs": [
      { "internalType": "address", "name": "", "type": "address" }
    ],
    "name": "l1TokenToGateway",
    "outputs": [
      { "internalType": "address", "name": "", "type": "address" }
    ],
    "stateMutability": "view",
    "type": "function"
  }
]
`))

var GatewayABI, _ = abi.JSON(strings.NewReader(`
[
  {
    "inputs": [
      { "internalType": "address", "name": "_token", "type": "address" },
      { "internalType": "address", "name": "_from", "type": "address" },
      { "internalType": "address", "name": "_to", "type": "address" },
      { "internalType": "uint256", "name": "_amount", "type": "uint256" },
      { "internalType": "bytes", "name": "_data", "type": "bytes" }
    ],
    "name": "finalizeInboundTransfer",
    "outputs": [],
    "stateMutability": "payable",
    "type": "function"
  }
]
`))
