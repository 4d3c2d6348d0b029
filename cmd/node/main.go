// Command node is the CLI entry point: serve the HTTP façade, mint a
// wallet, or mine one block, generalizing the teacher's
// cmd/main.go + wallet_server/main.go flag-parsing entry points into a
// single cobra-based binary, in the style orbas1-Synnergy structures
// its command tree.
package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/everestp/blockchain/internal/chain"
	"github.com/everestp/blockchain/internal/config"
	"github.com/everestp/blockchain/internal/core"
	"github.com/everestp/blockchain/internal/httpapi"
	"github.com/everestp/blockchain/internal/metrics"
	"github.com/everestp/blockchain/internal/wallet"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	var (
		flagPort       uint16
		flagDifficulty int
		flagMiner      string
	)

	root := &cobra.Command{Use: "node", Short: "Minimal educational cryptocurrency node"}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP/JSON façade in front of a fresh chain",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if flagPort != 0 {
				cfg.Port = flagPort
			}
			if flagDifficulty != 0 {
				cfg.Difficulty = flagDifficulty
			}
			if flagMiner != "" {
				cfg.MinerAddress = flagMiner
			}
			if cfg.MinerAddress == "" {
				w, err := wallet.New()
				if err != nil {
					return fmt.Errorf("generate miner wallet: %w", err)
				}
				cfg.MinerAddress = w.Address()
				log.WithField("address", cfg.MinerAddress).Info("generated miner wallet for this session")
			}

			collectors := metrics.NewCollectors(prometheus.DefaultRegisterer)
			node := core.New(cfg.MinerAddress, log,
				chain.WithDifficulty(cfg.Difficulty),
				chain.WithMineObserver(collectors.Observe),
			)
			server := httpapi.NewServer(node, log)

			addr := fmt.Sprintf("0.0.0.0:%d", cfg.Port)
			log.WithField("addr", addr).Info("listening")
			return http.ListenAndServe(addr, server)
		},
	}
	serveCmd.Flags().Uint16Var(&flagPort, "port", 0, "listen port (overrides PORT)")
	serveCmd.Flags().IntVar(&flagDifficulty, "difficulty", 0, "proof-of-work difficulty (overrides DIFFICULTY)")
	serveCmd.Flags().StringVar(&flagMiner, "miner-address", "", "miner address (overrides MINER_ADDRESS)")

	mineCmd := &cobra.Command{
		Use:   "mine",
		Short: "Build a fresh chain for a miner address and mine one block",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if flagDifficulty != 0 {
				cfg.Difficulty = flagDifficulty
			}
			if flagMiner != "" {
				cfg.MinerAddress = flagMiner
			}
			if cfg.MinerAddress == "" {
				w, err := wallet.New()
				if err != nil {
					return fmt.Errorf("generate miner wallet: %w", err)
				}
				cfg.MinerAddress = w.Address()
				log.WithField("address", cfg.MinerAddress).Info("generated miner wallet for this session")
			}

			node := core.New(cfg.MinerAddress, log, chain.WithDifficulty(cfg.Difficulty))
			if !node.Mine() {
				return fmt.Errorf("mining failed")
			}
			mined := node.Chain.Blocks()[node.Chain.Len()-1]
			fmt.Printf("index:         %d\n", node.Chain.Len()-1)
			fmt.Printf("hash:          %s\n", chain.BlockHashHex(mined))
			fmt.Printf("nonce:         %d\n", mined.Nonce())
			fmt.Printf("transactions:  %d\n", len(mined.Transactions()))
			return nil
		},
	}
	mineCmd.Flags().IntVar(&flagDifficulty, "difficulty", 0, "proof-of-work difficulty (overrides DIFFICULTY)")
	mineCmd.Flags().StringVar(&flagMiner, "miner-address", "", "miner address (overrides MINER_ADDRESS)")

	walletCmd := &cobra.Command{Use: "wallet", Short: "Wallet operations"}
	walletNewCmd := &cobra.Command{
		Use:   "new",
		Short: "Generate a new wallet and print its keys and address",
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := wallet.New()
			if err != nil {
				return err
			}
			fmt.Printf("address:     %s\n", w.Address())
			fmt.Printf("public_key:  %s\n", w.PublicKeyStr())
			fmt.Printf("private_key: %s\n", w.PrivateKeyStr())
			return nil
		},
	}
	walletCmd.AddCommand(walletNewCmd)

	root.AddCommand(serveCmd, walletCmd, mineCmd)

	if err := root.Execute(); err != nil {
		log.WithError(err).Error("command failed")
		os.Exit(1)
	}
}
