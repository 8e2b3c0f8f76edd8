package consts

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

const teleportParamsComponents = `
[
  { "internalType": "address", "name": "l1Token", "type": "address" },
  { "internalType": "address", "name": "l1FeeToken", "type": "address" },
  { "internalType": "address", "name": "l1l2Router", "type": "address" },
  { "internalType": "address", "name": "l2l3RouterOrInbox", "type": "address" },
  { "internalType": "address", "name": "to", "type": "address" },
  { "internalType": "uint256", "name": "amount", "type": "uint256" },
  {
    "components": [
      { "internalType": "uint256", "name": "l2GasPriceBid", "type": "uint256" },
      { "internalType": "uint256", "name": "l3GasPriceBid", "type": "uint256" },
      { "internalType": "uint256", "name": "l2ForwarderFactoryGasLimit", "type": "uint256" },
      { "internalType": "uint256", "name": "l1l2FeeTokenBridgeGasLimit", "type": "uint256" },
      { "internalType": "uint256", "name": "l1l2TokenBridgeGasLimit", "type": "uint256" },
      { "internalType": "uint256", "name": "l2l3TokenBridgeGasLimit", "type": "uint256" },
      { "internalType": "uint256", "name": "l2ForwarderFactoryMaxSubmissionCost", "type": "uint256" },
      { "internalType": "uint256", "name": "l1l2FeeTokenBridgeMaxSubmissionCost", "type": "uint256" },
      { "internalType": "uint256", "name": "l1l2TokenBridgeMaxSubmissionCost", "type": "uint256" },
      { "internalType": "uint256", "name": "l2l3TokenBridgeMaxSubmissionCost", "type": "uint256" }
    ],
    "internalType": "struct IL1Teleporter.RetryableGasParams",
    "name": "gasParams",
    "type": "tuple"
  }
]`

const l2ForwarderParamsComponents = `
[
  { "internalType": "address", "name": "owner", "type": "address" },
  { "internalType": "address", "name": "l2Token", "type": "address" },
  { "internalType": "address", "name": "routerOrInbox", "type": "address" },
  { "internalType": "address", "name": "to", "type": "address" },
  { "internalType": "uint256", "name": "gasLimit", "type": "uint256" },
  { "internalType": "uint256", "name": "gasPriceBid", "type": "uint256" },
  { "internalType": "uint256", "name": "relayerPayment", "type": "uint256" }
]`

var TeleporterABI, _ = abi.JSON(strings.NewReader(`
[
  {
    "inputs": [
      {
        "components": ` + teleportParamsComponents + `,
        "internalType": "struct IL1Teleporter.TeleportParams",
        "name": "params",
        "type": "tuple"
      }
    ],
    "name": "teleport",
    "outputs": [],
    "stateMutability": "payable",
    "type": "function"
  },
  {
    "inputs": [
      {
        "components": ` + teleportParamsComponents + `,
        "internalType": "struct IL1Teleporter.TeleportParams",
        "name": "params",
        "type": "tuple"
      },
      {
        "components": ` + l2ForwarderParamsComponents + `,
        "internalType": "struct IL2Forwarder.L2ForwarderParams",
        "name": "forwarderParams",
        "type": "tuple"
      },
      { "internalType": "uint256", "name": "l2ChainId", "type": "uint256" }
    ],
    "name": "relayedTeleport",
    "outputs": [],
    "stateMutability": "payable",
    "type": "function"
  }
]
`))

var ForwarderFactoryABI, _ = abi.JSON(strings.NewReader(`
[
  {
    "inputs": [
      {
        "components": ` + l2ForwarderParamsComponents + `,
        "internalType": "struct IL2Forwarder.L2ForwarderParams",
        "name": "params",
        "type": "tuple"
      }
    ],
    "name": "callForwarder",
    "outputs": [
      { "internalType": "address", "name": "", "type": "address" }
    ],
    "stateMutability": "payable",
    "type": "function"
  },
  {
    "anonymous": false,
    "inputs": [
      { "indexed": true, "internalType": "address", "name": "l2Forwarder", "type": "address" },
      {
        "components": ` + l2ForwarderParamsComponents + `,
        "indexed": false,
        "internalType": "struct IL2Forwarder.L2ForwarderParams",
        "name": "params",
        "type": "tuple"
      }
    ],
    "name": "CalledL2Forwarder",
    "type": "event"
  }
]
`))
