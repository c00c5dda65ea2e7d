package cli

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/types/query"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gogo/protobuf/proto"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/argus-labs/gravity/x/gravity/querier"
	"github.com/argus-labs/gravity/x/gravity/types"
)

// NewQueryCmd returns the gravity query commands.
func NewQueryCmd() *cobra.Command {
	queryCmd := &cobra.Command{
		Use:                        "query",
		Aliases:                    []string{"q"},
		Short:                      "Query the gravity module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	queryCmd.AddCommand(
		cmdParams(),
		cmdSignerSetTx(),
		cmdLatestSignerSetTx(),
		cmdBatchTx(),
		cmdContractCallTx(),
		cmdSignerSetTxs(),
		cmdBatchTxs(),
		cmdContractCallTxs(),
		cmdSignerSetTxConfirmations(),
		cmdBatchTxConfirmations(),
		cmdContractCallTxConfirmations(),
		cmdUnsignedSignerSetTxs(),
		cmdUnsignedBatchTxs(),
		cmdUnsignedContractCallTxs(),
		cmdLastSubmittedEthereumEvent(),
		cmdERC20ToDenom(),
		cmdDenomToERC20Params(),
		cmdDenomToERC20(),
		cmdDelegateKeysByValidator(),
		cmdDelegateKeysByEthereumSigner(),
		cmdDelegateKeysByOrchestrator(),
		cmdDelegateKeys(),
		cmdBatchedSendToEthereums(),
		cmdUnbatchedSendToEthereums(),
	)
	return queryCmd
}

// runQuery resolves the client context, performs call under the query timeout and prints the result.
func runQuery[Resp proto.Message](cmd *cobra.Command, call func(context.Context, *querier.Querier) (Resp, error)) error {
	clientCtx, err := GetContext(cmd)
	if err != nil {
		return err
	}
	if clientCtx.Querier == nil {
		return errors.New("gravity querier not configured")
	}
	ctx, cancel := clientCtx.queryContext(cmd.Context())
	defer cancel()

	res, err := call(ctx, clientCtx.Querier)
	if err != nil {
		return err
	}
	return clientCtx.printProto(cmd.OutOrStdout(), res)
}

// runStringQuery is runQuery for the queries that resolve to a single string.
func runStringQuery(cmd *cobra.Command, call func(context.Context, *querier.Querier) (string, error)) error {
	clientCtx, err := GetContext(cmd)
	if err != nil {
		return err
	}
	if clientCtx.Querier == nil {
		return errors.New("gravity querier not configured")
	}
	ctx, cancel := clientCtx.queryContext(cmd.Context())
	defer cancel()

	res, err := call(ctx, clientCtx.Querier)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), res)
	return err
}

func parseNonce(arg string) (uint64, error) {
	nonce, err := cast.ToUint64E(arg)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid nonce %q", arg)
	}
	return nonce, nil
}

// parseScope decodes a hex invalidation scope, with or without the 0x prefix.
func parseScope(arg string) ([]byte, error) {
	if len(arg) == 0 {
		return nil, errors.New("invalidation scope cannot be empty")
	}
	scope := common.FromHex(arg)
	if len(scope) == 0 {
		return nil, errors.Errorf("invalid invalidation scope %q", arg)
	}
	return scope, nil
}

// readPageRequest reads the pagination flags. The page key is printed base64 encoded in responses,
// so it is accepted in that form as well.
func readPageRequest(cmd *cobra.Command) (*query.PageRequest, error) {
	page, err := client.ReadPageRequest(cmd.Flags())
	if err != nil {
		return nil, err
	}
	if len(page.Key) > 0 {
		if key, err := base64.StdEncoding.DecodeString(string(page.Key)); err == nil {
			page.Key = key
		}
	}
	return page, nil
}

func cmdParams() *cobra.Command {
	return &cobra.Command{
		Use:   "params",
		Short: "Query the gravity module parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, func(ctx context.Context, q *querier.Querier) (*types.ParamsResponse, error) {
				return q.Params(ctx)
			})
		},
	}
}

func cmdSignerSetTx() *cobra.Command {
	return &cobra.Command{
		Use:   "signer-set-tx [nonce]",
		Short: "Query a signer set tx by nonce",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nonce, err := parseNonce(args[0])
			if err != nil {
				return err
			}
			return runQuery(cmd, func(ctx context.Context, q *querier.Querier) (*types.SignerSetTxResponse, error) {
				return q.SignerSetTx(ctx, nonce)
			})
		},
	}
}

func cmdLatestSignerSetTx() *cobra.Command {
	return &cobra.Command{
		Use:   "latest-signer-set-tx",
		Short: "Query the latest signer set tx",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, func(ctx context.Context, q *querier.Querier) (*types.SignerSetTxResponse, error) {
				return q.LatestSignerSetTx(ctx)
			})
		},
	}
}

func cmdBatchTx() *cobra.Command {
	return &cobra.Command{
		Use:   "batch-tx [token-contract] [nonce]",
		Short: "Query a batch tx by token contract and nonce",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			nonce, err := parseNonce(args[1])
			if err != nil {
				return err
			}
			return runQuery(cmd, func(ctx context.Context, q *querier.Querier) (*types.BatchTxResponse, error) {
				return q.BatchTx(ctx, args[0], nonce)
			})
		},
	}
}

func cmdContractCallTx() *cobra.Command {
	return &cobra.Command{
		Use:   "contract-call-tx [scope] [nonce]",
		Short: "Query a contract call tx by hex invalidation scope and nonce",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			scope, err := parseScope(args[0])
			if err != nil {
				return err
			}
			nonce, err := parseNonce(args[1])
			if err != nil {
				return err
			}
			return runQuery(cmd, func(ctx context.Context, q *querier.Querier) (*types.ContractCallTxResponse, error) {
				return q.ContractCallTx(ctx, scope, nonce)
			})
		},
	}
}

func cmdSignerSetTxs() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "signer-set-txs",
		Short: "List signer set txs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := readPageRequest(cmd)
			if err != nil {
				return err
			}
			return runQuery(cmd, func(ctx context.Context, q *querier.Querier) (*types.SignerSetTxsResponse, error) {
				return q.SignerSetTxs(ctx, page)
			})
		},
	}
	flags.AddPaginationFlagsToCmd(cmd, "signer set txs")
	return cmd
}

func cmdBatchTxs() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch-txs",
		Short: "List batch txs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := readPageRequest(cmd)
			if err != nil {
				return err
			}
			return runQuery(cmd, func(ctx context.Context, q *querier.Querier) (*types.BatchTxsResponse, error) {
				return q.BatchTxs(ctx, page)
			})
		},
	}
	flags.AddPaginationFlagsToCmd(cmd, "batch txs")
	return cmd
}

func cmdContractCallTxs() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contract-call-txs",
		Short: "List contract call txs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := readPageRequest(cmd)
			if err != nil {
				return err
			}
			return runQuery(cmd, func(ctx context.Context, q *querier.Querier) (*types.ContractCallTxsResponse, error) {
				return q.ContractCallTxs(ctx, page)
			})
		},
	}
	flags.AddPaginationFlagsToCmd(cmd, "contract call txs")
	return cmd
}

func cmdSignerSetTxConfirmations() *cobra.Command {
	return &cobra.Command{
		Use:   "signer-set-tx-confirmations [nonce]",
		Short: "Query the confirmations of a signer set tx",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nonce, err := parseNonce(args[0])
			if err != nil {
				return err
			}
			return runQuery(cmd, func(ctx context.Context, q *querier.Querier) (*types.SignerSetTxConfirmationsResponse, error) {
				return q.SignerSetTxConfirmations(ctx, nonce)
			})
		},
	}
}

func cmdBatchTxConfirmations() *cobra.Command {
	return &cobra.Command{
		Use:   "batch-tx-confirmations [nonce] [token-contract]",
		Short: "Query the confirmations of a batch tx",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			nonce, err := parseNonce(args[0])
			if err != nil {
				return err
			}
			return runQuery(cmd, func(ctx context.Context, q *querier.Querier) (*types.BatchTxConfirmationsResponse, error) {
				return q.BatchTxConfirmations(ctx, nonce, args[1])
			})
		},
	}
}

func cmdContractCallTxConfirmations() *cobra.Command {
	return &cobra.Command{
		Use:   "contract-call-tx-confirmations [scope] [nonce]",
		Short: "Query the confirmations of a contract call tx",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			scope, err := parseScope(args[0])
			if err != nil {
				return err
			}
			nonce, err := parseNonce(args[1])
			if err != nil {
				return err
			}
			return runQuery(cmd, func(ctx context.Context, q *querier.Querier) (*types.ContractCallTxConfirmationsResponse, error) {
				return q.ContractCallTxConfirmations(ctx, scope, nonce)
			})
		},
	}
}

func cmdUnsignedSignerSetTxs() *cobra.Command {
	return &cobra.Command{
		Use:   "unsigned-signer-set-txs [validator-or-orchestrator]",
		Short: "Query the signer set txs the address has not confirmed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, func(ctx context.Context, q *querier.Querier) (*types.UnsignedSignerSetTxsResponse, error) {
				return q.UnsignedSignerSetTxs(ctx, args[0])
			})
		},
	}
}

func cmdUnsignedBatchTxs() *cobra.Command {
	return &cobra.Command{
		Use:   "unsigned-batch-txs [validator-or-orchestrator]",
		Short: "Query the batch txs the address has not confirmed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, func(ctx context.Context, q *querier.Querier) (*types.UnsignedBatchTxsResponse, error) {
				return q.UnsignedBatchTxs(ctx, args[0])
			})
		},
	}
}

func cmdUnsignedContractCallTxs() *cobra.Command {
	return &cobra.Command{
		Use:   "unsigned-contract-call-txs [validator-or-orchestrator]",
		Short: "Query the contract call txs the address has not confirmed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, func(ctx context.Context, q *querier.Querier) (*types.UnsignedContractCallTxsResponse, error) {
				return q.UnsignedContractCallTxs(ctx, args[0])
			})
		},
	}
}

func cmdLastSubmittedEthereumEvent() *cobra.Command {
	return &cobra.Command{
		Use:   "last-submitted-ethereum-event [validator-or-orchestrator]",
		Short: "Query the nonce of the last ethereum event the address attested to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, func(ctx context.Context, q *querier.Querier) (*types.LastSubmittedEthereumEventResponse, error) {
				return q.LastSubmittedEthereumEvent(ctx, args[0])
			})
		},
	}
}

func cmdERC20ToDenom() *cobra.Command {
	return &cobra.Command{
		Use:   "erc20-to-denom [erc20]",
		Short: "Query the cosmos denom of an ERC20 contract",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStringQuery(cmd, func(ctx context.Context, q *querier.Querier) (string, error) {
				return q.ERC20ToDenom(ctx, args[0])
			})
		},
	}
}

func cmdDenomToERC20Params() *cobra.Command {
	return &cobra.Command{
		Use:   "denom-to-erc20-params [denom]",
		Short: "Query the ERC20 deployment parameters of a cosmos denom",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, func(ctx context.Context, q *querier.Querier) (*types.DenomToERC20ParamsResponse, error) {
				return q.DenomToERC20Params(ctx, args[0])
			})
		},
	}
}

func cmdDenomToERC20() *cobra.Command {
	return &cobra.Command{
		Use:   "denom-to-erc20 [denom]",
		Short: "Query the ERC20 contract of a cosmos denom",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStringQuery(cmd, func(ctx context.Context, q *querier.Querier) (string, error) {
				return q.DenomToERC20(ctx, args[0])
			})
		},
	}
}

func cmdDelegateKeysByValidator() *cobra.Command {
	return &cobra.Command{
		Use:   "delegate-keys-by-validator [validator]",
		Short: "Query the delegate keys of a validator",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, func(ctx context.Context, q *querier.Querier) (*types.DelegateKeysByValidatorResponse, error) {
				return q.DelegateKeysByValidator(ctx, args[0])
			})
		},
	}
}

func cmdDelegateKeysByEthereumSigner() *cobra.Command {
	return &cobra.Command{
		Use:   "delegate-keys-by-ethereum-signer [ethereum-signer]",
		Short: "Query the delegate keys registered for an ethereum signer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, func(ctx context.Context, q *querier.Querier) (*types.DelegateKeysByEthereumSignerResponse, error) {
				return q.DelegateKeysByEthereumSigner(ctx, args[0])
			})
		},
	}
}

func cmdDelegateKeysByOrchestrator() *cobra.Command {
	return &cobra.Command{
		Use:   "delegate-keys-by-orchestrator [orchestrator]",
		Short: "Query the delegate keys registered for an orchestrator",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, func(ctx context.Context, q *querier.Querier) (*types.DelegateKeysByOrchestratorResponse, error) {
				return q.DelegateKeysByOrchestrator(ctx, args[0])
			})
		},
	}
}

func cmdDelegateKeys() *cobra.Command {
	return &cobra.Command{
		Use:   "delegate-keys",
		Short: "Query every registered delegate key set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, func(ctx context.Context, q *querier.Querier) (*types.DelegateKeysResponse, error) {
				return q.DelegateKeys(ctx)
			})
		},
	}
}

func cmdBatchedSendToEthereums() *cobra.Command {
	return &cobra.Command{
		Use:   "batched-send-to-ethereums [sender]",
		Short: "Query the sender's transfers already included in a batch",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, func(ctx context.Context, q *querier.Querier) (*types.BatchedSendToEthereumsResponse, error) {
				return q.BatchedSendToEthereums(ctx, args[0])
			})
		},
	}
}

func cmdUnbatchedSendToEthereums() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unbatched-send-to-ethereums [sender]",
		Short: "Query the sender's transfers waiting in the outgoing pool",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := readPageRequest(cmd)
			if err != nil {
				return err
			}
			return runQuery(cmd, func(ctx context.Context, q *querier.Querier) (*types.UnbatchedSendToEthereumsResponse, error) {
				return q.UnbatchedSendToEthereums(ctx, args[0], page)
			})
		},
	}
	flags.AddPaginationFlagsToCmd(cmd, "unbatched send to ethereums")
	return cmd
}
