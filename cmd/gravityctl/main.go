package main

import (
	"context"
	"fmt"
	"os"

	"github.com/argus-labs/gravity/cmd/gravityctl/cmd"
	"github.com/argus-labs/gravity/x/gravity/client/cli"
)

func main() {
	rootCmd := cmd.NewRootCmd()
	if err := rootCmd.ExecuteContext(cli.WithContext(context.Background(), &cli.Context{})); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
