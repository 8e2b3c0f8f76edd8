package forwarder_test

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/sprintertech/sprinter-teleport/forwarder"
	"github.com/stretchr/testify/suite"
)

type AddressTestSuite struct {
	suite.Suite

	factory        common.Address
	implementation common.Address
	params         forwarder.Params
}

func TestRunAddressTestSuite(t *testing.T) {
	suite.Run(t, new(AddressTestSuite))
}

func (s *AddressTestSuite) SetupTest() {
	s.factory = common.HexToAddress("0x791d2AbC6c3A459E13B9AdF54Fb5e97B7Af38f87")
	s.implementation = common.HexToAddress("0x302275067251F5FcdB9359Bda735fD8f7A4A54c0")
	s.params = forwarder.Params{
		Owner:  common.HexToAddress("0xb4B8b6F88361F48403514059F1F16C8E78d61fFd"),
		Token:  common.HexToAddress("0xFd086bC7CD5C481DCC9C85ebE478A1C0b69FCbb9"),
		Router: common.HexToAddress("0xd9969a8Cb9E4c6B13673f2fF29179c7A573dEF3c"),
		To:     common.HexToAddress("0xa3A7B6F88361F48403514059F1F16C8E78d60EeC"),
	}
}

func (s *AddressTestSuite) Test_CloneCodeHash_MinimalProxy() {
	code := common.FromHex("0x3d602d80600a3d3981f3363d3d373d3d3d363d73" +
		"302275067251f5fcdb9359bda735fd8f7a4a54c0" +
		"5af43d82803e903d91602b57fd5bf3")

	s.Equal(crypto.Keccak256Hash(code), forwarder.CloneCodeHash(s.implementation))
}

func (s *AddressTestSuite) Test_Salt_AbiEncodedParams() {
	encoded := make([]byte, 0, 128)
	for _, a := range []common.Address{s.params.Owner, s.params.Token, s.params.Router, s.params.To} {
		encoded = append(encoded, common.LeftPadBytes(a.Bytes(), 32)...)
	}

	s.Equal(crypto.Keccak256Hash(encoded), forwarder.Salt(s.params))
}

func (s *AddressTestSuite) Test_Address_Create2() {
	codeHash := forwarder.CloneCodeHash(s.implementation)
	expected := crypto.CreateAddress2(s.factory, forwarder.Salt(s.params), codeHash.Bytes())

	s.Equal(expected, forwarder.Address(s.factory, codeHash, s.params))
	s.Equal(expected, forwarder.NewCalculator(s.factory, s.implementation).Address(s.params))
}

func (s *AddressTestSuite) Test_Address_Deterministic() {
	c := forwarder.NewCalculator(s.factory, s.implementation)

	s.Equal(c.Address(s.params), c.Address(s.params))
}

func (s *AddressTestSuite) Test_Address_ChangesWithEveryParam() {
	c := forwarder.NewCalculator(s.factory, s.implementation)
	base := c.Address(s.params)
	other := common.HexToAddress("0x0000000000000000000000000000000000000fff")

	variants := []forwarder.Params{s.params, s.params, s.params, s.params}
	variants[0].Owner = other
	variants[1].Token = other
	variants[2].Router = other
	variants[3].To = other

	for _, v := range variants {
		s.NotEqual(base, c.Address(v))
	}
	s.NotEqual(base, forwarder.NewCalculator(other, s.implementation).Address(s.params))
}
