package action_test

import (
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"gotest.tools/assert"

	"github.com/argus-labs/gravity/x/gravity/action"
	"github.com/argus-labs/gravity/x/gravity/types"
)

func TestSignDelegateKeys(t *testing.T) {
	key, err := crypto.GenerateKey()
	assert.NilError(t, err)
	ethAddress := crypto.PubkeyToAddress(key.PublicKey).Hex()

	sig, err := action.SignDelegateKeys(key, validator, 5)
	assert.NilError(t, err)
	assert.Equal(t, crypto.SignatureLength, len(sig))
	assert.NilError(t, action.VerifyDelegateKeysSignature(sig, ethAddress, validator, 5))

	// signatures produced with a 27/28 recovery id verify as well
	legacy := append([]byte{}, sig...)
	legacy[crypto.RecoveryIDOffset] += 27
	assert.NilError(t, action.VerifyDelegateKeysSignature(legacy, ethAddress, validator, 5))
	assert.Equal(t, sig[crypto.RecoveryIDOffset]+27, legacy[crypto.RecoveryIDOffset])

	err = action.VerifyDelegateKeysSignature(sig, ethAddress, validator, 6)
	assert.Assert(t, errors.Is(err, types.ErrInvalidSignature))
}

func TestVerifyDelegateKeysSignatureRejects(t *testing.T) {
	key, err := crypto.GenerateKey()
	assert.NilError(t, err)
	other, err := crypto.GenerateKey()
	assert.NilError(t, err)
	sig, err := action.SignDelegateKeys(key, validator, 1)
	assert.NilError(t, err)

	err = action.VerifyDelegateKeysSignature(sig, "not-an-address", validator, 1)
	assert.Assert(t, errors.Is(err, types.ErrInvalidEthAddress))

	err = action.VerifyDelegateKeysSignature(sig[:10], crypto.PubkeyToAddress(key.PublicKey).Hex(), validator, 1)
	assert.Assert(t, errors.Is(err, types.ErrInvalidSignature))

	err = action.VerifyDelegateKeysSignature(sig, crypto.PubkeyToAddress(other.PublicKey).Hex(), validator, 1)
	assert.Assert(t, errors.Is(err, types.ErrInvalidSignature))
}

func TestNewSetDelegateKeys(t *testing.T) {
	key, err := crypto.GenerateKey()
	assert.NilError(t, err)

	a, err := action.NewSetDelegateKeys(key, validator, sender, 3)
	assert.NilError(t, err)
	assert.Equal(t, crypto.PubkeyToAddress(key.PublicKey).Hex(), a.EthereumAddress)
	assert.NilError(t, action.VerifyDelegateKeysSignature(a.EthSignature, a.EthereumAddress, validator, 3))

	msg, ok := a.Msg().(*types.MsgDelegateKeys)
	assert.Assert(t, ok)
	assert.NilError(t, msg.ValidateBasic())

	body, err := action.IntoTx(a)
	assert.NilError(t, err)
	assert.Equal(t, "/gravity.v1.MsgDelegateKeys", body.Messages[0].TypeUrl)
}

func TestDelegateKeysSignBytesMatchEnvelope(t *testing.T) {
	bz, err := action.DelegateKeysSignBytes(validator, 9)
	assert.NilError(t, err)

	envelope, err := action.Encode(&action.DelegateKeysSignMsg{ValidatorAddress: validator, Nonce: 9})
	assert.NilError(t, err)
	assert.DeepEqual(t, envelope.Value, bz)
}
