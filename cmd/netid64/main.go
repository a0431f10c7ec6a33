package main

import (
	"fmt"
	"os"

	"github.com/pisoj/go-netid64"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(zerolog.WarnLevel).
		With().Timestamp().Logger()

	var verbose bool

	rootCmd := &cobra.Command{
		Use:          "netid64",
		Short:        "Inspect and build [KIND:8][NODE:16][COUNTER:40] identifiers",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger = logger.Level(zerolog.DebugLevel)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug output")

	inspectCmd := &cobra.Command{
		Use:   "inspect <id>",
		Short: "Decode an identifier given as kind:node:counter or 0x-prefixed hex",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := netid64.Parse(args[0])
			if err != nil {
				return err
			}
			logger.Debug().Str("input", args[0]).Uint64("raw", id.Uint64Value()).Msg("parsed identifier")
			printID(id)
			return nil
		},
	}
	rootCmd.AddCommand(inspectCmd)

	makeCmd := &cobra.Command{
		Use:   "make",
		Short: "Build an identifier from its three fields",
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, _ := cmd.Flags().GetUint8("kind")
			node, _ := cmd.Flags().GetUint16("node")
			counter, _ := cmd.Flags().GetUint64("counter")

			id, err := netid64.Make(kind, node, counter)
			if err != nil {
				return err
			}
			printID(id)
			return nil
		},
	}
	makeCmd.Flags().Uint8("kind", 0, "8-bit kind tag")
	makeCmd.Flags().Uint16("node", 0, "16-bit node tag")
	makeCmd.Flags().Uint64("counter", 0, "40-bit counter")
	rootCmd.AddCommand(makeCmd)

	nextCmd := &cobra.Command{
		Use:   "next",
		Short: "Emit a run of sequential identifiers for one (kind, node) pair",
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, _ := cmd.Flags().GetUint8("kind")
			node, _ := cmd.Flags().GetUint16("node")
			start, _ := cmd.Flags().GetUint64("start")
			count, _ := cmd.Flags().GetInt("count")

			seq, err := netid64.SequenceFrom(kind, node, start)
			if err != nil {
				return err
			}
			logger.Debug().
				Uint8("kind", kind).
				Uint16("node", node).
				Uint64("start", start).
				Int("count", count).
				Msg("emitting sequence")

			for i := 0; i < count; i++ {
				id, err := seq.Next()
				if err != nil {
					return err
				}
				fmt.Println(id)
			}
			return nil
		},
	}
	nextCmd.Flags().Uint8("kind", 0, "8-bit kind tag")
	nextCmd.Flags().Uint16("node", 0, "16-bit node tag")
	nextCmd.Flags().Uint64("start", 0, "counter of the first identifier")
	nextCmd.Flags().Int("count", 1, "number of identifiers to emit")
	rootCmd.AddCommand(nextCmd)

	if err := rootCmd.Execute(); err != nil {
		logger.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func printID(id netid64.NetID64) {
	b := id.ToBytes()
	fmt.Printf("id:      %s\n", id)
	fmt.Printf("hex:     %s\n", id.ToHex())
	fmt.Printf("kind:    %d\n", id.GetKind())
	fmt.Printf("node:    %d\n", id.GetNode())
	fmt.Printf("counter: %d\n", id.GetCounter())
	fmt.Printf("bytes:   %v\n", b[:])
	fmt.Printf("signed:  %d\n", netid64.SignedNetID64.FromID(id))
}
