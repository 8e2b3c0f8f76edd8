package bridger_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/sprintertech/sprinter-teleport/bridger"
	mock_bridger "github.com/sprintertech/sprinter-teleport/bridger/mock"
	"github.com/sprintertech/sprinter-teleport/chains/evm/calls/consts"
	"github.com/sprintertech/sprinter-teleport/chains/evm/calls/contracts"
	"github.com/sprintertech/sprinter-teleport/chains/evm/calls/events"
	"github.com/sprintertech/sprinter-teleport/forwarder"
	"github.com/sprintertech/sprinter-teleport/network"
	"github.com/sprintertech/sprinter-teleport/retryable"
	"github.com/sprintertech/sprinter-teleport/retryable/retryabletest"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type Erc20StatusTestSuite struct {
	suite.Suite

	l2          *chain
	l3          *chain
	mockWatcher *mock_bridger.MockTicketWatcher
	bridger     *bridger.Erc20Bridger

	l2Network       network.Network
	l3Network       network.Network
	forwarderParams contracts.L2ForwarderParams
	forwarder       common.Address
	states          map[common.Hash]*retryable.TicketState
}

func TestRunErc20StatusTestSuite(t *testing.T) {
	suite.Run(t, new(Erc20StatusTestSuite))
}

func (s *Erc20StatusTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.l2 = newChain(ctrl, 42161, 2, 100)
	s.l3 = newChain(ctrl, 660279, 1, 50)
	s.mockWatcher = mock_bridger.NewMockTicketWatcher(ctrl)
	s.l2Network = testL2()
	s.l3Network = testL3(false)

	var err error
	s.bridger, err = bridger.NewErc20Bridger(testTriple(false), s.mockWatcher)
	s.Nil(err)

	s.forwarderParams = contracts.L2ForwarderParams{
		Owner:          retryable.ApplyL1ToL2Alias(sender),
		L2Token:        l2Token,
		RouterOrInbox:  s.l3Network.TokenBridge.ParentGatewayRouter,
		To:             receiver,
		GasLimit:       big.NewInt(1_000_000),
		GasPriceBid:    big.NewInt(150),
		RelayerPayment: big.NewInt(0),
	}
	teleporter := s.l2Network.Teleporter
	s.forwarder = forwarder.NewCalculator(teleporter.L2ForwarderFactory, teleporter.L2ForwarderImplementation).Address(forwarder.Params{
		Owner:  s.forwarderParams.Owner,
		Token:  s.forwarderParams.L2Token,
		Router: s.forwarderParams.RouterOrInbox,
		To:     s.forwarderParams.To,
	})

	s.states = make(map[common.Hash]*retryable.TicketState)
	s.mockWatcher.EXPECT().Status(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, client retryable.ChildClient, ticket *retryable.Ticket) (*retryable.TicketState, error) {
			state, ok := s.states[ticket.ID]
			if !ok {
				return retryable.NotCreatedState(ticket), nil
			}
			return state, nil
		},
	).AnyTimes()
}

func submission(dest common.Address, data []byte) *retryable.Submission {
	return &retryable.Submission{
		DestAddress:            dest,
		L2CallValue:            big.NewInt(0),
		L1Value:                big.NewInt(1),
		MaxSubmissionFee:       big.NewInt(1),
		ExcessFeeRefundAddress: sender,
		CallValueRefundAddress: sender,
		GasLimit:               big.NewInt(1_000_000),
		MaxFeePerGas:           big.NewInt(300),
		Data:                   data,
	}
}

func (s *Erc20StatusTestSuite) tokenTicket(to common.Address) retryabletest.Message {
	data, err := consts.GatewayABI.Pack("finalizeInboundTransfer", l1Token, sender, to, big.NewInt(1000), []byte{})
	s.Nil(err)
	return retryabletest.Message{
		Number:     big.NewInt(1),
		Sender:     s.l2Network.TokenBridge.ParentERC20Gateway,
		BaseFee:    big.NewInt(10),
		Submission: submission(s.l2Network.TokenBridge.ChildERC20Gateway, data),
	}
}

func (s *Erc20StatusTestSuite) factoryTicket() retryabletest.Message {
	data, err := consts.ForwarderFactoryABI.Pack("callForwarder", s.forwarderParams)
	s.Nil(err)
	return retryabletest.Message{
		Number:     big.NewInt(2),
		Sender:     s.l2Network.Teleporter.L1Teleporter,
		BaseFee:    big.NewInt(10),
		Submission: submission(s.l2Network.Teleporter.L2ForwarderFactory, data),
	}
}

func (s *Erc20StatusTestSuite) l1Receipt(messages ...retryabletest.Message) (*types.Receipt, []*retryable.Ticket) {
	receipt, err := retryabletest.Receipt(s.l2Network, messages...)
	s.Nil(err)
	tickets, err := retryable.ParseTickets(receipt, s.l2Network)
	s.Nil(err)
	return receipt, tickets
}

// forwarderReceipt is an l2 receipt of a forwarder call that submitted the l3 ticket
func (s *Erc20StatusTestSuite) forwarderReceipt(hash common.Hash) (*types.Receipt, *retryable.Ticket) {
	data, err := consts.ForwarderFactoryABI.Events["CalledL2Forwarder"].Inputs.NonIndexed().Pack(s.forwarderParams)
	s.Nil(err)

	receipt, err := retryabletest.Receipt(s.l3Network, retryabletest.Message{
		Number:     big.NewInt(7),
		Sender:     retryable.ApplyL1ToL2Alias(s.forwarder),
		BaseFee:    big.NewInt(2),
		Submission: submission(s.l3Network.TokenBridge.ChildERC20Gateway, []byte{0x01}),
	})
	s.Nil(err)
	receipt.TxHash = hash
	receipt.Logs = append(receipt.Logs, &types.Log{
		Address: s.l2Network.Teleporter.L2ForwarderFactory,
		Topics:  []common.Hash{events.CalledL2ForwarderSig.GetTopic(), common.BytesToHash(s.forwarder.Bytes())},
		Data:    data,
	})

	l3Tickets, err := retryable.ParseTickets(receipt, s.l3Network)
	s.Nil(err)
	s.Len(l3Tickets, 1)
	return receipt, l3Tickets[0]
}

func (s *Erc20StatusTestSuite) Test_GetDepositStatus_NothingCreated() {
	receipt, _ := s.l1Receipt(s.tokenTicket(s.forwarder), s.factoryTicket())

	status, err := s.bridger.GetDepositStatus(context.Background(), receipt, s.l2.client, s.l3.client)

	s.Nil(err)
	s.Equal(retryable.NotYetCreated, status.BridgeToL2.Status)
	s.Equal(retryable.NotYetCreated, status.RetryableL2ForwarderCall.Status)
	s.Nil(status.BridgeGasTokenToL2)
	s.Nil(status.L2ForwarderCall)
	s.Equal(retryable.NotYetCreated, status.BridgeToL3.Status)
	s.False(status.Completed)
}

func (s *Erc20StatusTestSuite) Test_GetDepositStatus_Completed() {
	receipt, tickets := s.l1Receipt(s.tokenTicket(s.forwarder), s.factoryTicket())
	forwarderReceipt, l3Ticket := s.forwarderReceipt(common.HexToHash("0xf0"))
	s.states[tickets[0].ID] = &retryable.TicketState{Status: retryable.Redeemed, CreationReceipt: &types.Receipt{BlockNumber: big.NewInt(10)}}
	s.states[tickets[1].ID] = &retryable.TicketState{Status: retryable.Redeemed, RedeemReceipt: forwarderReceipt}
	s.states[l3Ticket.ID] = &retryable.TicketState{Status: retryable.Redeemed}

	status, err := s.bridger.GetDepositStatus(context.Background(), receipt, s.l2.client, s.l3.client)

	s.Nil(err)
	s.Equal(forwarderReceipt, status.L2ForwarderCall)
	s.Equal(retryable.Redeemed, status.BridgeToL3.Status)
	s.True(status.Completed)
}

func (s *Erc20StatusTestSuite) Test_GetDepositStatus_ForwarderCalledByThirdParty() {
	receipt, tickets := s.l1Receipt(s.tokenTicket(s.forwarder), s.factoryTicket())
	callHash := common.HexToHash("0xf1")
	forwarderReceipt, l3Ticket := s.forwarderReceipt(callHash)
	s.states[tickets[0].ID] = &retryable.TicketState{Status: retryable.Redeemed, CreationReceipt: &types.Receipt{BlockNumber: big.NewInt(10)}}
	s.states[tickets[1].ID] = &retryable.TicketState{Status: retryable.FundsDepositedOnL2}
	s.states[l3Ticket.ID] = &retryable.TicketState{Status: retryable.FundsDepositedOnL2}
	s.l2.client.EXPECT().FilterLogs(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, q ethereum.FilterQuery) ([]types.Log, error) {
		s.Equal("10", q.FromBlock.String())
		s.Equal(common.BytesToHash(s.forwarder.Bytes()), q.Topics[1][0])
		return []types.Log{{TxHash: callHash}}, nil
	})
	s.l2.client.EXPECT().TransactionReceipt(gomock.Any(), callHash).Return(forwarderReceipt, nil)

	status, err := s.bridger.GetDepositStatus(context.Background(), receipt, s.l2.client, s.l3.client)

	s.Nil(err)
	s.Equal(retryable.FundsDepositedOnL2, status.RetryableL2ForwarderCall.Status)
	s.Equal(forwarderReceipt, status.L2ForwarderCall)
	s.Equal(retryable.FundsDepositedOnL2, status.BridgeToL3.Status)
	s.False(status.Completed)
}

func (s *Erc20StatusTestSuite) Test_GetDepositStatus_SkipsFailedForwarderCalls() {
	receipt, tickets := s.l1Receipt(s.tokenTicket(s.forwarder), s.factoryTicket())
	failedHash := common.HexToHash("0xf2")
	s.states[tickets[0].ID] = &retryable.TicketState{Status: retryable.Redeemed, CreationReceipt: &types.Receipt{BlockNumber: big.NewInt(10)}}
	s.l2.client.EXPECT().FilterLogs(gomock.Any(), gomock.Any()).Return([]types.Log{{TxHash: failedHash}}, nil)
	s.l2.client.EXPECT().TransactionReceipt(gomock.Any(), failedHash).Return(&types.Receipt{Status: types.ReceiptStatusFailed}, nil)

	status, err := s.bridger.GetDepositStatus(context.Background(), receipt, s.l2.client, s.l3.client)

	s.Nil(err)
	s.Nil(status.L2ForwarderCall)
	s.Equal(retryable.NotYetCreated, status.BridgeToL3.Status)
}

func (s *Erc20StatusTestSuite) Test_GetDepositStatus_WithFeeTokenTicket() {
	feeTicket := s.tokenTicket(s.forwarder)
	feeTicket.Number = big.NewInt(0)
	receipt, tickets := s.l1Receipt(feeTicket, s.tokenTicket(s.forwarder), s.factoryTicket())
	s.states[tickets[0].ID] = &retryable.TicketState{Status: retryable.Redeemed}

	status, err := s.bridger.GetDepositStatus(context.Background(), receipt, s.l2.client, s.l3.client)

	s.Nil(err)
	s.Equal(retryable.Redeemed, status.BridgeGasTokenToL2.Status)
	s.Equal(tickets[1].ID, status.BridgeToL2.Ticket.ID)
}

func (s *Erc20StatusTestSuite) Test_GetDepositStatus_RelayedFunding() {
	funding := retryabletest.Message{
		Number:     big.NewInt(2),
		BaseFee:    big.NewInt(10),
		Submission: submission(s.forwarder, []byte{}),
	}
	receipt, _ := s.l1Receipt(s.tokenTicket(s.forwarder), funding)

	status, err := s.bridger.GetDepositStatus(context.Background(), receipt, s.l2.client, s.l3.client)

	s.Nil(err)
	s.False(status.Completed)
}

func (s *Erc20StatusTestSuite) Test_GetDepositStatus_RelayAdvancesOnlyLaterHops() {
	funding := retryabletest.Message{
		Number:     big.NewInt(2),
		BaseFee:    big.NewInt(10),
		Submission: submission(s.forwarder, []byte{}),
	}
	receipt, tickets := s.l1Receipt(s.tokenTicket(s.forwarder), funding)
	relayHash := common.HexToHash("0xf3")
	forwarderReceipt, l3Ticket := s.forwarderReceipt(relayHash)
	s.states[tickets[0].ID] = &retryable.TicketState{Status: retryable.Redeemed, CreationReceipt: &types.Receipt{BlockNumber: big.NewInt(10)}}
	s.states[tickets[1].ID] = &retryable.TicketState{Status: retryable.Redeemed, RedeemReceipt: &types.Receipt{TxHash: common.HexToHash("0xaa")}}

	relayed := false
	s.l2.client.EXPECT().FilterLogs(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, q ethereum.FilterQuery) ([]types.Log, error) {
		if !relayed {
			return []types.Log{}, nil
		}
		return []types.Log{{TxHash: relayHash}}, nil
	}).Times(2)
	s.l2.client.EXPECT().TransactionReceipt(gomock.Any(), relayHash).Return(forwarderReceipt, nil)

	before, err := s.bridger.GetDepositStatus(context.Background(), receipt, s.l2.client, s.l3.client)
	s.Nil(err)
	s.Nil(before.L2ForwarderCall)
	s.Equal(retryable.NotYetCreated, before.BridgeToL3.Status)

	relayed = true
	s.states[l3Ticket.ID] = &retryable.TicketState{Status: retryable.FundsDepositedOnL2}
	after, err := s.bridger.GetDepositStatus(context.Background(), receipt, s.l2.client, s.l3.client)
	s.Nil(err)

	s.Equal(before.BridgeToL2, after.BridgeToL2)
	s.Equal(before.RetryableL2ForwarderCall, after.RetryableL2ForwarderCall)
	s.Nil(after.BridgeGasTokenToL2)
	s.Equal(forwarderReceipt, after.L2ForwarderCall)
	s.Equal(retryable.FundsDepositedOnL2, after.BridgeToL3.Status)
	s.False(after.Completed)
}

func (s *Erc20StatusTestSuite) Test_GetDepositStatus_TokensNotSentToForwarder() {
	receipt, _ := s.l1Receipt(s.tokenTicket(receiver), s.factoryTicket())

	_, err := s.bridger.GetDepositStatus(context.Background(), receipt, s.l2.client, s.l3.client)

	s.ErrorIs(err, bridger.ErrNotTeleport)
}

func (s *Erc20StatusTestSuite) Test_GetDepositStatus_NotATeleport() {
	receipt, _ := s.l1Receipt(s.tokenTicket(s.forwarder))

	_, err := s.bridger.GetDepositStatus(context.Background(), receipt, s.l2.client, s.l3.client)

	s.ErrorIs(err, bridger.ErrNotTeleport)
}
