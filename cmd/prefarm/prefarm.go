// Copyright (c) 2021 The peas developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// The prefarm command rebuilds the two genesis prefarm puzzles, derives
// their puzzle hashes and addresses, then evaluates each puzzle and checks
// that the created coins pay out exactly the height-zero pool and farmer
// rewards.
package main

import (
	"fmt"
	"math/big"
	"os"

	"github.com/peasproject/peasd/consensus"
	"github.com/peasproject/peasd/core/address"
	"github.com/peasproject/peasd/core/conditions"
	"github.com/peasproject/peasd/core/sexp"
	"github.com/peasproject/peasd/engine/clvm"
	"github.com/peasproject/peasd/log"
)

var plog = log.New("PFRM")

func main() {
	os.Exit(realMain())
}

func realMain() int {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer log.Close()

	addr1, err := address.DecodeAddress(cfg.Address1)
	if err != nil {
		plog.Errorf("Invalid address1 %s: %v", cfg.Address1, err)
		return 1
	}
	addr2, err := address.DecodeAddress(cfg.Address2)
	if err != nil {
		plog.Errorf("Invalid address2 %s: %v", cfg.Address2, err)
		return 1
	}
	for _, a := range []*address.Address{addr1, addr2} {
		if !a.IsForNet(cfg.net) {
			plog.Errorf("Address %s is not for the %s network",
				a, cfg.net.Name)
			return 1
		}
	}

	poolReward := consensus.CalcPoolReward(cfg.Height, cfg.net)
	farmerReward := consensus.CalcBaseFarmerReward(cfg.Height, cfg.net)

	// Each recipient takes exactly half of each reward, so both amounts
	// must be even.
	if poolReward%2 != 0 || farmerReward%2 != 0 {
		plog.Errorf("Height %d rewards do not split evenly: "+
			"pool %d, farmer %d", cfg.Height, poolReward, farmerReward)
		return 1
	}

	total := new(big.Int)
	fmt.Println("Pool address: ")
	poolTotal, err := runPuzzle(cfg, addr1, addr2, poolReward/2)
	if err != nil {
		plog.Errorf("Pool puzzle failed: %v", err)
		return 1
	}
	total.Add(total, poolTotal)

	fmt.Println("\nFarmer address: ")
	farmerTotal, err := runPuzzle(cfg, addr1, addr2, farmerReward/2)
	if err != nil {
		plog.Errorf("Farmer puzzle failed: %v", err)
		return 1
	}
	total.Add(total, farmerTotal)

	// The two puzzles together must pay out the whole coinbase for the
	// height.  At height zero the sum overflows uint64, so it is carried
	// in a big.Int.
	want := new(big.Int).SetUint64(poolReward)
	want.Add(want, new(big.Int).SetUint64(farmerReward))
	if total.Cmp(want) != 0 {
		plog.Errorf("Created coins total %s, want %s", total, want)
		return 1
	}
	plog.Infof("Prefarm verified: %s mojos across both puzzles", total)
	return 0
}

// makePuzzle renders the prefarm puzzle source paying amount mojos to each
// of the two puzzle hashes.  The puzzle ignores its solution: it is a
// quoted condition list.
func makePuzzle(ph1, ph2 []byte, amount uint64) string {
	return fmt.Sprintf("(q . ((51 0x%x %d) (51 0x%x %d)))",
		ph1, amount, ph2, amount)
}

// runPuzzle assembles the puzzle paying amount to each recipient, prints
// its program, puzzle hash and address, evaluates it with an empty
// solution, and returns the sum of the created coin amounts.
func runPuzzle(cfg *Config, addr1, addr2 *address.Address, amount uint64) (*big.Int, error) {
	ph1 := addr1.PuzzleHash()
	ph2 := addr2.PuzzleHash()
	src := makePuzzle(ph1.Bytes(), ph2.Bytes(), amount)

	prog, err := sexp.AssembleProgram(src)
	if err != nil {
		return nil, err
	}
	puzzleHash := prog.TreeHash()
	puzzleAddr, err := address.NewAddress(puzzleHash.Bytes(), cfg.net)
	if err != nil {
		return nil, err
	}

	fmt.Println("Program: ", prog)
	fmt.Println("PH", puzzleHash)
	fmt.Printf("Address: %s\n", puzzleAddr)

	output, cost, err := clvm.RunProgram(prog, sexp.Nil(), cfg.CostLimit)
	if err != nil {
		return nil, err
	}
	plog.Debugf("Puzzle %s evaluated at cost %d", puzzleHash, cost)

	conds, err := conditions.Parse(output)
	if err != nil {
		return nil, err
	}

	total := new(big.Int)
	for _, cond := range conds {
		coinHash, err := cond.PuzzleHash()
		if err != nil {
			return nil, err
		}
		coinAmount, err := cond.Amount()
		if err != nil {
			return nil, err
		}
		coinAddr, err := address.NewAddress(coinHash.Bytes(), cfg.net)
		if err != nil {
			return nil, err
		}
		fmt.Printf("%s: %s, amount: %d\n", cond.Opcode, coinAddr, coinAmount)
		total.Add(total, new(big.Int).SetUint64(coinAmount))
	}
	return total, nil
}
