package action

import (
	"crypto/ecdsa"

	errorsmod "cosmossdk.io/errors"
	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/argus-labs/gravity/x/gravity/types"
)

// DelegateKeysSignBytes returns the protobuf bytes of the DelegateKeysSignMsg for the validator and
// its account sequence. These bytes are hashed and signed with the ethereum key being delegated.
func DelegateKeysSignBytes(validator string, nonce uint64) ([]byte, error) {
	signMsg := &DelegateKeysSignMsg{ValidatorAddress: validator, Nonce: nonce}
	envelope, err := Encode(signMsg)
	if err != nil {
		return nil, err
	}
	return envelope.Value, nil
}

// SignDelegateKeys signs the DelegateKeysSignMsg with key in the personal_sign format the gravity
// module verifies.
func SignDelegateKeys(key *ecdsa.PrivateKey, validator string, nonce uint64) ([]byte, error) {
	bz, err := DelegateKeysSignBytes(validator, nonce)
	if err != nil {
		return nil, err
	}
	hash := crypto.Keccak256Hash(bz)
	return crypto.Sign(accounts.TextHash(hash.Bytes()), key)
}

// VerifyDelegateKeysSignature checks that sig over the DelegateKeysSignMsg was produced by ethAddress.
func VerifyDelegateKeysSignature(sig []byte, ethAddress string, validator string, nonce uint64) error {
	if !common.IsHexAddress(ethAddress) {
		return types.ErrInvalidEthAddress.Wrap(ethAddress)
	}
	if len(sig) != crypto.SignatureLength {
		return types.ErrInvalidSignature.Wrapf("expected %d bytes, got %d", crypto.SignatureLength, len(sig))
	}
	bz, err := DelegateKeysSignBytes(validator, nonce)
	if err != nil {
		return err
	}

	// copy so V can be normalised without touching the caller's slice
	sigCopy := make([]byte, len(sig))
	copy(sigCopy, sig)
	if sigCopy[crypto.RecoveryIDOffset] == 27 || sigCopy[crypto.RecoveryIDOffset] == 28 {
		sigCopy[crypto.RecoveryIDOffset] -= 27
	}

	hash := crypto.Keccak256Hash(bz)
	pubKey, err := crypto.SigToPub(accounts.TextHash(hash.Bytes()), sigCopy)
	if err != nil {
		return errorsmod.Wrap(types.ErrInvalidSignature, err.Error())
	}
	if signer := crypto.PubkeyToAddress(*pubKey); signer != common.HexToAddress(ethAddress) {
		return types.ErrInvalidSignature.Wrapf("signed by %s, not %s", signer.Hex(), ethAddress)
	}
	return nil
}

// NewSetDelegateKeys builds a SetDelegateKeys action signed with the ethereum key being registered.
// nonce is the validator account's current sequence.
func NewSetDelegateKeys(key *ecdsa.PrivateKey, validator, orchestrator string, nonce uint64) (*SetDelegateKeys, error) {
	sig, err := SignDelegateKeys(key, validator, nonce)
	if err != nil {
		return nil, err
	}
	return &SetDelegateKeys{
		ValidatorAddress:    validator,
		OrchestratorAddress: orchestrator,
		EthereumAddress:     crypto.PubkeyToAddress(key.PublicKey).Hex(),
		EthSignature:        sig,
	}, nil
}
