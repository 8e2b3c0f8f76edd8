// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package retryable

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
)

const (
	wordSize = 32
	// destination, l2 call value, l1 value, max submission fee, excess fee refund,
	// call value refund, gas limit, max fee per gas and the inner data length
	fixedWords    = 9
	fixedSize     = fixedWords * wordSize
	maxDataLength = 1 << 32
)

// Submission is the decoded payload of a retryable ticket submission message
type Submission struct {
	DestAddress            common.Address `json:"destAddress"`
	L2CallValue            *big.Int       `json:"l2CallValue"`
	L1Value                *big.Int       `json:"l1Value"`
	MaxSubmissionFee       *big.Int       `json:"maxSubmissionFee"`
	ExcessFeeRefundAddress common.Address `json:"excessFeeRefundAddress"`
	CallValueRefundAddress common.Address `json:"callValueRefundAddress"`
	GasLimit               *big.Int       `json:"gasLimit"`
	MaxFeePerGas           *big.Int       `json:"maxFeePerGas"`
	Data                   []byte         `json:"data"`
}

type MalformedPayloadError struct {
	Length int
	Reason string
}

func (e *MalformedPayloadError) Error() string {
	return fmt.Sprintf("malformed retryable payload of %d bytes: %s", e.Length, e.Reason)
}

// DecodeSubmission decodes the fixed words of a submission followed by its
// length prefixed inner data. Bytes trailing the inner data are ignored.
func DecodeSubmission(payload []byte) (*Submission, error) {
	if len(payload) < fixedSize {
		return nil, &MalformedPayloadError{
			Length: len(payload),
			Reason: fmt.Sprintf("shorter than the %d byte fixed region", fixedSize),
		}
	}

	words := make([]*big.Int, fixedWords)
	for i := range words {
		words[i] = new(big.Int).SetBytes(payload[i*wordSize : (i+1)*wordSize])
	}

	dataLength := words[8]
	available := len(payload) - fixedSize
	if !dataLength.IsInt64() || dataLength.Int64() > int64(available) {
		return nil, &MalformedPayloadError{
			Length: len(payload),
			Reason: fmt.Sprintf("declared data length %s overruns %d available bytes", dataLength, available),
		}
	}

	data := make([]byte, dataLength.Int64())
	copy(data, payload[fixedSize:])

	return &Submission{
		DestAddress:            wordToAddress(payload, 0),
		L2CallValue:            words[1],
		L1Value:                words[2],
		MaxSubmissionFee:       words[3],
		ExcessFeeRefundAddress: wordToAddress(payload, 4),
		CallValueRefundAddress: wordToAddress(payload, 5),
		GasLimit:               words[6],
		MaxFeePerGas:           words[7],
		Data:                   data,
	}, nil
}

// Encode is the inverse of DecodeSubmission
func (s *Submission) Encode() ([]byte, error) {
	if len(s.Data) >= maxDataLength {
		return nil, fmt.Errorf("inner data of %d bytes is too long", len(s.Data))
	}

	values := []*big.Int{s.L2CallValue, s.L1Value, s.MaxSubmissionFee, s.GasLimit, s.MaxFeePerGas}
	for _, v := range values {
		if v != nil && (v.Sign() < 0 || v.BitLen() > 256) {
			return nil, fmt.Errorf("value %s does not fit into a word", v)
		}
	}

	out := make([]byte, 0, fixedSize+len(s.Data))
	out = append(out, common.LeftPadBytes(s.DestAddress.Bytes(), wordSize)...)
	out = append(out, uintWord(s.L2CallValue)...)
	out = append(out, uintWord(s.L1Value)...)
	out = append(out, uintWord(s.MaxSubmissionFee)...)
	out = append(out, common.LeftPadBytes(s.ExcessFeeRefundAddress.Bytes(), wordSize)...)
	out = append(out, common.LeftPadBytes(s.CallValueRefundAddress.Bytes(), wordSize)...)
	out = append(out, uintWord(s.GasLimit)...)
	out = append(out, uintWord(s.MaxFeePerGas)...)
	out = append(out, uintWord(big.NewInt(int64(len(s.Data))))...)
	out = append(out, s.Data...)
	return out, nil
}

func wordToAddress(payload []byte, index int) common.Address {
	return common.BytesToAddress(payload[index*wordSize : (index+1)*wordSize])
}

func uintWord(v *big.Int) []byte {
	if v == nil {
		return make([]byte, wordSize)
	}
	return math.U256Bytes(new(big.Int).Set(v))
}
