package cli

import (
	"github.com/cosmos/cosmos-sdk/client"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/gogo/protobuf/proto"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/argus-labs/gravity/x/gravity/action"
	"github.com/argus-labs/gravity/x/gravity/types"
)

const flagAny = "any"

// NewEncodeCmd returns the commands that print the unsigned tx body of a gravity action.
func NewEncodeCmd() *cobra.Command {
	encodeCmd := &cobra.Command{
		Use:                        "encode",
		Short:                      "Encode gravity actions into unsigned transaction bodies",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	encodeCmd.AddCommand(
		cmdSendToEthereum(),
		cmdCancelSendToEthereum(),
		cmdRequestBatchTx(),
		cmdEthereumHeightVote(),
		cmdSetDelegateKeys(),
		cmdDelegateKeysSignMsg(),
		cmdContractCallTxConfirmation(),
		cmdBatchTxConfirmation(),
		cmdSignerSetTxConfirmation(),
		cmdSubmitEthereumTxConfirmation(),
		cmdSubmitEthereumEvent(),
	)
	return encodeCmd
}

// printAction validates the action's message and prints its tx body, or its envelope when the
// --any flag is set.
func printAction(cmd *cobra.Command, a action.Action) error {
	if msg, ok := a.Msg().(sdk.Msg); ok {
		if err := msg.ValidateBasic(); err != nil {
			return errors.Wrapf(err, "invalid %s", a.Name())
		}
	}
	clientCtx, err := GetContext(cmd)
	if err != nil {
		return err
	}

	var out proto.Message
	if asAny, _ := cmd.Flags().GetBool(flagAny); asAny {
		out, err = action.Encode(a)
	} else {
		out, err = action.IntoTx(a)
	}
	if err != nil {
		return err
	}
	return clientCtx.printProto(cmd.OutOrStdout(), out)
}

// printEnvelope prints the Any envelope of an action that never roots a transaction.
func printEnvelope(cmd *cobra.Command, a action.Action) error {
	clientCtx, err := GetContext(cmd)
	if err != nil {
		return err
	}
	envelope, err := action.Encode(a)
	if err != nil {
		return err
	}
	return clientCtx.printProto(cmd.OutOrStdout(), envelope)
}

func addAnyFlag(cmd *cobra.Command) *cobra.Command {
	cmd.Flags().Bool(flagAny, false, "print the Any envelope instead of a tx body")
	return cmd
}

func cmdSendToEthereum() *cobra.Command {
	return addAnyFlag(&cobra.Command{
		Use:   "send-to-ethereum [sender] [eth-recipient] [amount] [bridge-fee]",
		Short: "Send tokens from cosmos to an ethereum address",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := sdk.ParseCoinNormalized(args[2])
			if err != nil {
				return errors.Wrap(err, "amount")
			}
			fee, err := sdk.ParseCoinNormalized(args[3])
			if err != nil {
				return errors.Wrap(err, "bridge fee")
			}
			return printAction(cmd, &action.SendToEthereum{
				Sender:            args[0],
				EthereumRecipient: args[1],
				Amount:            amount,
				BridgeFee:         fee,
			})
		},
	})
}

func cmdCancelSendToEthereum() *cobra.Command {
	return addAnyFlag(&cobra.Command{
		Use:   "cancel-send-to-ethereum [sender] [id]",
		Short: "Cancel a pending send to ethereum",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cast.ToUint64E(args[1])
			if err != nil {
				return errors.Wrapf(err, "invalid id %q", args[1])
			}
			return printAction(cmd, &action.CancelSendToEthereum{Sender: args[0], ID: id})
		},
	})
}

func cmdRequestBatchTx() *cobra.Command {
	return addAnyFlag(&cobra.Command{
		Use:   "request-batch-tx [denom] [signer]",
		Short: "Request a batch of pending sends for a denom",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printAction(cmd, &action.RequestBatchTx{Denom: args[0], Signer: args[1]})
		},
	})
}

func cmdEthereumHeightVote() *cobra.Command {
	return addAnyFlag(&cobra.Command{
		Use:   "ethereum-height-vote [height] [signer]",
		Short: "Vote for the latest observed ethereum height",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			height, err := cast.ToUint64E(args[0])
			if err != nil {
				return errors.Wrapf(err, "invalid height %q", args[0])
			}
			return printAction(cmd, &action.SubmitEthereumHeightVote{EthereumHeight: height, Signer: args[1]})
		},
	})
}

func cmdSetDelegateKeys() *cobra.Command {
	return addAnyFlag(&cobra.Command{
		Use:   "set-delegate-keys [validator] [orchestrator] [eth-private-key] [nonce]",
		Short: "Register an orchestrator and ethereum key for a validator",
		Long: `Register an orchestrator and ethereum key for a validator. The ethereum key is given as
hex and signs the delegation; nonce is the validator account's current sequence.`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := crypto.HexToECDSA(trimHexPrefix(args[2]))
			if err != nil {
				return errors.Wrap(err, "invalid ethereum private key")
			}
			nonce, err := parseNonce(args[3])
			if err != nil {
				return err
			}
			a, err := action.NewSetDelegateKeys(key, args[0], args[1], nonce)
			if err != nil {
				return err
			}
			return printAction(cmd, a)
		},
	})
}

func cmdDelegateKeysSignMsg() *cobra.Command {
	return &cobra.Command{
		Use:   "delegate-keys-sign-msg [validator] [nonce]",
		Short: "Print the envelope of the payload signed when registering delegate keys",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			nonce, err := parseNonce(args[1])
			if err != nil {
				return err
			}
			return printEnvelope(cmd, &action.DelegateKeysSignMsg{ValidatorAddress: args[0], Nonce: nonce})
		},
	}
}

func cmdContractCallTxConfirmation() *cobra.Command {
	return &cobra.Command{
		Use:   "contract-call-tx-confirmation [invalidation-scope] [invalidation-nonce] [eth-signer] [signature]",
		Short: "Print the envelope of a contract call confirmation",
		Long: `Print the envelope of a contract call confirmation. The scope and signature are hex; the
output is meant to be passed to submit-ethereum-tx-confirmation.`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			scope, err := parseScope(args[0])
			if err != nil {
				return err
			}
			nonce, err := parseNonce(args[1])
			if err != nil {
				return err
			}
			signature, err := parseSignature(args[3])
			if err != nil {
				return err
			}
			return printEnvelope(cmd, &action.ContractCallTxConfirmation{
				InvalidationScope: scope,
				InvalidationNonce: nonce,
				EthereumSigner:    args[2],
				Signature:         signature,
			})
		},
	}
}

func cmdBatchTxConfirmation() *cobra.Command {
	return &cobra.Command{
		Use:   "batch-tx-confirmation [token-contract] [batch-nonce] [eth-signer] [signature]",
		Short: "Print the envelope of a batch confirmation",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			nonce, err := parseNonce(args[1])
			if err != nil {
				return err
			}
			signature, err := parseSignature(args[3])
			if err != nil {
				return err
			}
			return printEnvelope(cmd, &action.BatchTxConfirmation{
				TokenContract:  args[0],
				BatchNonce:     nonce,
				EthereumSigner: args[2],
				Signature:      signature,
			})
		},
	}
}

func cmdSignerSetTxConfirmation() *cobra.Command {
	return &cobra.Command{
		Use:   "signer-set-tx-confirmation [signer-set-nonce] [eth-signer] [signature]",
		Short: "Print the envelope of a signer set confirmation",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			nonce, err := parseNonce(args[0])
			if err != nil {
				return err
			}
			signature, err := parseSignature(args[2])
			if err != nil {
				return err
			}
			return printEnvelope(cmd, &action.SignerSetTxConfirmation{
				SignerSetNonce: nonce,
				EthereumSigner: args[1],
				Signature:      signature,
			})
		},
	}
}

func cmdSubmitEthereumTxConfirmation() *cobra.Command {
	return addAnyFlag(&cobra.Command{
		Use:   "submit-ethereum-tx-confirmation [signer] [confirmation-json]",
		Short: "Submit a confirmation printed by one of the *-tx-confirmation commands",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := GetContext(cmd)
			if err != nil {
				return err
			}
			var conf types.EthereumTxConfirmation
			confirmation, err := clientCtx.unpackJSON(args[1], &conf)
			if err != nil {
				return errors.Wrap(err, "confirmation")
			}
			return printAction(cmd, &action.SubmitEthereumTxConfirmation{Confirmation: confirmation, Signer: args[0]})
		},
	})
}

func cmdSubmitEthereumEvent() *cobra.Command {
	return addAnyFlag(&cobra.Command{
		Use:   "submit-ethereum-event [signer] [event-json]",
		Short: "Submit an observed ethereum event",
		Long: `Submit an observed ethereum event. The event is the JSON form of an Any, for example
{"@type":"/gravity.v1.SendToCosmosEvent","event_nonce":"1",...}.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := GetContext(cmd)
			if err != nil {
				return err
			}
			var event types.EthereumEvent
			packed, err := clientCtx.unpackJSON(args[1], &event)
			if err != nil {
				return errors.Wrap(err, "event")
			}
			return printAction(cmd, &action.SubmitEthereumEvent{Event: packed, Signer: args[0]})
		},
	})
}

func parseSignature(arg string) ([]byte, error) {
	signature := common.FromHex(arg)
	if len(signature) == 0 {
		return nil, errors.Errorf("invalid signature %q", arg)
	}
	return signature, nil
}

func trimHexPrefix(s string) string {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}
