package auth

import (
	"encoding/hex"
	"strings"

	"github.com/cyphera/cyphera-circles/internal/helpers"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// web3AuthNamespace scopes user ids derived from non-uuid Web3Auth subjects.
var web3AuthNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://web3auth.io/users"))

// Web3AuthWallet represents a wallet entry in the Web3Auth ID token
type Web3AuthWallet struct {
	PublicKey string `json:"public_key"`
	Type      string `json:"type"`
	Curve     string `json:"curve,omitempty"`
	Address   string `json:"address,omitempty"`
}

// Web3AuthClaims represents the Web3Auth JWT claims used by this service
type Web3AuthClaims struct {
	jwt.RegisteredClaims
	Email      string           `json:"email"`
	Name       string           `json:"name"`
	Verifier   string           `json:"verifier"`
	VerifierId string           `json:"verifierId"`
	UserId     string           `json:"userId"`
	Wallets    []Web3AuthWallet `json:"wallets,omitempty"`
}

// UserID returns a stable user id for the token holder. A uuid userId or sub is used as is;
// anything else is mapped to a name-based uuid.
func (c *Web3AuthClaims) UserID() (uuid.UUID, error) {
	subject := c.UserId
	if subject == "" {
		subject = c.Subject
	}
	if subject == "" {
		return uuid.Nil, ErrInvalidSubject
	}
	if id, err := uuid.Parse(subject); err == nil {
		return id, nil
	}
	return uuid.NewSHA1(web3AuthNamespace, []byte(c.Issuer+"|"+subject)), nil
}

// WalletAddress returns the first EVM address in the token. Wallets that only carry a
// secp256k1 public key have their address derived from it.
func (c *Web3AuthClaims) WalletAddress() (string, error) {
	for _, w := range c.Wallets {
		if helpers.IsAddressValid(w.Address) {
			return common.HexToAddress(w.Address).Hex(), nil
		}
	}
	for _, w := range c.Wallets {
		if w.Curve != "" && !strings.EqualFold(w.Curve, "secp256k1") {
			continue
		}
		if addr, ok := addressFromPublicKey(w.PublicKey); ok {
			return addr, nil
		}
	}
	return "", ErrNoWalletClaim
}

func addressFromPublicKey(publicKey string) (string, bool) {
	raw, err := hex.DecodeString(strings.TrimPrefix(publicKey, "0x"))
	if err != nil {
		return "", false
	}
	switch len(raw) {
	case 33:
		pub, err := crypto.DecompressPubkey(raw)
		if err != nil {
			return "", false
		}
		return crypto.PubkeyToAddress(*pub).Hex(), true
	case 65:
		pub, err := crypto.UnmarshalPubkey(raw)
		if err != nil {
			return "", false
		}
		return crypto.PubkeyToAddress(*pub).Hex(), true
	default:
		return "", false
	}
}
