package chain

import (
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// NativeAsset names the chain's native currency in a TxSpec. Args[0] is the recipient.
const NativeAsset = "native"

// Registry names for the contracts the service talks to.
const (
	ContractSavingsCircle = "savings_circle"
	ContractToken         = "token"
)

var (
	ErrUnknownContract     = errors.New("unknown contract")
	ErrSignerNotConfigured = errors.New("signing key not configured")
	ErrInvalidTransferArgs = errors.New("native transfer requires a single recipient address")
	errCircleNotFound      = errors.New("circle not found on chain")
)

// TxSpec describes a ledger-mutating call: Function(Args...) on the named registry contract.
type TxSpec struct {
	Contract string
	Function string
	Args     []interface{}
	Value    *big.Int
}

// CircleInfo is the decoded result of SavingsCircle.getCircleInfo.
type CircleInfo struct {
	Name               string
	Creator            string
	ContributionAmount *big.Int
	TotalMembers       *big.Int
	CurrentRound       *big.Int
	Status             uint8
	CreatedAt          *big.Int
	StartBlock         *big.Int
	RoundDuration      *big.Int
	GracePeriod        *big.Int
	TotalContributed   *big.Int
	TotalPaidOut       *big.Int
	TokenType          uint8
	TokenContract      *string
}

// circleInfoOutput mirrors the ABI outputs for UnpackIntoInterface.
type circleInfoOutput struct {
	Name               string
	Creator            common.Address
	ContributionAmount *big.Int
	TotalMembers       *big.Int
	CurrentRound       *big.Int
	Status             uint8
	CreatedAt          *big.Int
	StartBlock         *big.Int
	RoundDuration      *big.Int
	GracePeriod        *big.Int
	TotalContributed   *big.Int
	TotalPaidOut       *big.Int
	TokenType          uint8
	TokenContract      common.Address
}

func (o circleInfoOutput) toCircleInfo() *CircleInfo {
	info := &CircleInfo{
		Name:               o.Name,
		Creator:            o.Creator.Hex(),
		ContributionAmount: o.ContributionAmount,
		TotalMembers:       o.TotalMembers,
		CurrentRound:       o.CurrentRound,
		Status:             o.Status,
		CreatedAt:          o.CreatedAt,
		StartBlock:         o.StartBlock,
		RoundDuration:      o.RoundDuration,
		GracePeriod:        o.GracePeriod,
		TotalContributed:   o.TotalContributed,
		TotalPaidOut:       o.TotalPaidOut,
		TokenType:          o.TokenType,
	}
	if o.TokenContract != (common.Address{}) {
		token := o.TokenContract.Hex()
		info.TokenContract = &token
	}
	return info
}
