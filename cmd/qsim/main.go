package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"time"

	"github.com/theapemachine/qsim"
)

func main() {
	qubits := flag.Int("qubits", 4, "length of the qubit chain")
	steps := flag.Int("steps", 1, "number of timesteps to run")
	seed := flag.Uint64("seed", 0, "random seed (0 seeds from the clock)")
	flag.Parse()

	s := *seed
	if s == 0 {
		s = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(s, s))

	cfg := qsim.NewConfig()
	cfg.NumQubits = *qubits
	cfg.Steps = *steps

	driver, err := qsim.NewDriver(cfg, rng, qsim.NewVectorSimulator(rng))
	if err != nil {
		log.Fatal(err)
	}

	reports, err := driver.Run(context.Background())
	for _, report := range reports {
		fmt.Print(qsim.RenderReport(report))
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
