// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Command gg18d is the process entrypoint: it either runs the signaling
// server ("serve") over the parameters loaded from --params, or drives an
// in-process keygen+signing round-trip for local testing ("simulate") with
// t and n taken from its own -t/-n flags. Grounded on luxfi-threshold/cmd/threshold-cli/main.go's
// cobra root/subcommand/persistent-flag structure.
package main

import (
	"context"
	"crypto/sha256"
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/tss-gg18/signer/common"
	"github.com/tss-gg18/signer/config"
	"github.com/tss-gg18/signer/keygen"
	"github.com/tss-gg18/signer/server"
	"github.com/tss-gg18/signer/signing"
)

var (
	paramsPath string
	listenAddr string
	logLevel   string

	simulateThreshold int
	simulateParties   int
	simulateMessage   string

	rootCmd = &cobra.Command{
		Use:   "gg18d",
		Short: "GG18 threshold-ECDSA signaling server and local simulator",
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Run the signaling/message-manager server",
		RunE:  runServe,
	}

	simulateCmd = &cobra.Command{
		Use:   "simulate",
		Short: "Run a full in-process keygen and signing round-trip",
		RunE:  runSimulate,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&paramsPath, "params", "params.json", "path to params.json ({t,n})")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level for the gg18 logging subsystem")

	serveCmd.Flags().StringVar(&listenAddr, "addr", ":3000", "address for the signaling server to listen on")

	simulateCmd.Flags().IntVarP(&simulateThreshold, "threshold", "t", 1, "threshold t (t+1 parties required to sign)")
	simulateCmd.Flags().IntVarP(&simulateParties, "parties", "n", 3, "total parties n")
	simulateCmd.Flags().StringVarP(&simulateMessage, "message", "m", "hello gg18", "message to sign")

	rootCmd.AddCommand(serveCmd, simulateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	if err := common.SetLogLevel("gg18", logLevel); err != nil {
		return err
	}

	params, err := config.LoadParams(paramsPath)
	if err != nil {
		return err
	}
	env := config.LoadEnv()

	srv := server.New(params, env.TaskServiceURL, env.CounterpartyScript, 16)
	common.Logger.Infof("gg18d: listening on %s (parties=%d threshold=%d)", listenAddr, params.Parties, params.Threshold)
	return http.ListenAndServe(listenAddr, srv.Router())
}

func runSimulate(cmd *cobra.Command, args []string) error {
	if err := common.SetLogLevel("gg18", logLevel); err != nil {
		return err
	}
	if simulateThreshold < 0 || simulateThreshold >= simulateParties {
		return fmt.Errorf("threshold must satisfy 0 <= t < n (got t=%d n=%d)", simulateThreshold, simulateParties)
	}

	saves, err := simulateKeygen(simulateParties, simulateThreshold)
	if err != nil {
		return fmt.Errorf("keygen simulation failed: %w", err)
	}
	common.Logger.Infof("simulate: keygen complete, address %s", saves[0].Address)

	messageHash := sha256.Sum256([]byte(simulateMessage))
	quorum := make([]int, simulateThreshold+1)
	for i := range quorum {
		quorum[i] = i + 1
	}

	sig, err := simulateSigning(quorum, saves, messageHash[:])
	if err != nil {
		return fmt.Errorf("signing simulation failed: %w", err)
	}

	fmt.Printf("address: %s\n", saves[0].Address)
	fmt.Printf("signature: r=%x s=%x recovery=%d\n", sig.R, sig.S, sig.Recovery)
	return nil
}

// simulateKeygen drives n in-process keygen.Context values through every
// round, the same sequence transport.Client/server would drive over HTTP.
func simulateKeygen(n, t int) ([]*keygen.SaveData, error) {
	ctx := context.Background()
	uuid := "simulate-keygen"

	parties := make([]*keygen.Context, n)
	for i := range parties {
		parties[i] = keygen.NewContext(keygen.Params{
			PartyNumInt: i + 1,
			ShareCount:  n,
			Threshold:   t,
			UUID:        uuid,
		})
	}

	r1 := make(map[int]*keygen.Round1Result, n)
	for i, p := range parties {
		res, err := p.Round1(ctx)
		if err != nil {
			return nil, err
		}
		r1[i+1] = res
	}

	r2 := make(map[int]*keygen.Round2Result, n)
	for i, p := range parties {
		res, err := p.Round2()
		if err != nil {
			return nil, err
		}
		r2[i+1] = res
	}

	r3 := make([]map[int]*keygen.Round3Message, n)
	for i, p := range parties {
		out, err := p.Round3(exclude(r1, i+1), exclude(r2, i+1))
		if err != nil {
			return nil, err
		}
		r3[i] = out
	}

	r4 := make(map[int]*keygen.Round4Result, n)
	for i, p := range parties {
		inbound := make(map[int]*keygen.Round3Message, n-1)
		for j := range parties {
			if j == i {
				continue
			}
			inbound[j+1] = r3[j][i+1]
		}
		res, err := p.Round4(inbound)
		if err != nil {
			return nil, err
		}
		r4[i+1] = res
	}

	saves := make([]*keygen.SaveData, n)
	for i, p := range parties {
		save, err := p.Round5(exclude(r4, i+1))
		if err != nil {
			return nil, err
		}
		saves[i] = save
	}
	return saves, nil
}

// simulateSigning drives the signing quorum through every round the same way.
func simulateSigning(quorum []int, saves []*keygen.SaveData, messageHash []byte) (*signing.Signature, error) {
	ctxs := make(map[int]*signing.Context, len(quorum))
	for _, p := range quorum {
		ctxs[p] = signing.NewContext(signing.Params{
			PartyNumInt: p,
			Quorum:      quorum,
			UUID:        "simulate-signing",
		}, saves[p-1], messageHash)
	}

	r1 := make(map[int]*signing.Round1Result, len(quorum))
	for _, p := range quorum {
		res, err := ctxs[p].Round1()
		if err != nil {
			return nil, err
		}
		r1[p] = res
	}

	r2 := make(map[int]map[int]*signing.Round2Message, len(quorum))
	for _, p := range quorum {
		out, err := ctxs[p].Round2()
		if err != nil {
			return nil, err
		}
		r2[p] = out
	}

	r3 := make(map[int]map[int]*signing.Round3Message, len(quorum))
	for _, p := range quorum {
		inbound := make(map[int]*signing.Round2Message, len(quorum)-1)
		for _, other := range quorum {
			if other == p {
				continue
			}
			inbound[other] = r2[other][p]
		}
		out, err := ctxs[p].Round3(inbound)
		if err != nil {
			return nil, err
		}
		r3[p] = out
	}

	r4 := make(map[int]*signing.Round4Result, len(quorum))
	for _, p := range quorum {
		inbound := make(map[int]*signing.Round3Message, len(quorum)-1)
		for _, other := range quorum {
			if other == p {
				continue
			}
			inbound[other] = r3[other][p]
		}
		res, err := ctxs[p].Round4(inbound)
		if err != nil {
			return nil, err
		}
		r4[p] = res
	}

	r5 := make(map[int]*signing.Round5Result, len(quorum))
	for _, p := range quorum {
		res, err := ctxs[p].Round5(excludeSlice(r4, quorum, p))
		if err != nil {
			return nil, err
		}
		r5[p] = res
	}

	r6 := make(map[int]*signing.Round6Result, len(quorum))
	for _, p := range quorum {
		res, err := ctxs[p].Round6(excludeSlice(r1, quorum, p), excludeSlice(r5, quorum, p))
		if err != nil {
			return nil, err
		}
		r6[p] = res
	}

	r7 := make(map[int]*signing.Round7Result, len(quorum))
	for _, p := range quorum {
		res, err := ctxs[p].Round7()
		if err != nil {
			return nil, err
		}
		r7[p] = res
	}

	r8 := make(map[int]*signing.Round8Result, len(quorum))
	for _, p := range quorum {
		res, err := ctxs[p].Round8(excludeSlice(r6, quorum, p), excludeSlice(r7, quorum, p))
		if err != nil {
			return nil, err
		}
		r8[p] = res
	}

	r9 := make(map[int]*signing.Round9Result, len(quorum))
	for _, p := range quorum {
		r9[p] = ctxs[p].Round9()
	}

	var sig *signing.Signature
	for _, p := range quorum {
		s, err := ctxs[p].Round10(excludeSlice(r8, quorum, p), excludeSlice(r9, quorum, p))
		if err != nil {
			return nil, err
		}
		sig = s
	}
	return sig, nil
}

func exclude[T any](m map[int]*T, self int) map[int]*T {
	out := make(map[int]*T, len(m)-1)
	for k, v := range m {
		if k == self {
			continue
		}
		out[k] = v
	}
	return out
}

func excludeSlice[T any](m map[int]*T, quorum []int, self int) map[int]*T {
	out := make(map[int]*T, len(quorum)-1)
	for _, p := range quorum {
		if p == self {
			continue
		}
		out[p] = m[p]
	}
	return out
}
