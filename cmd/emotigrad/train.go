package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/emotigrad-ml/emotigrad/emotion"
	"github.com/emotigrad-ml/emotigrad/optim"
)

var (
	trainPersonality string
	trainEvery       int
	trainSteps       int
	trainLR          float64
	trainOptimizer   string
	trainConfigPath  string
	trainVerbose     bool
	trainSeed        uint64
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Run a small linear-regression training demo",
	Long: `Fits y = w*x + b to noisy synthetic data with the chosen optimizer,
wrapped in an EmotionalOptimizer so you can watch it react to the loss.`,
	RunE: runTrain,
}

func init() {
	trainCmd.Flags().StringVarP(&trainPersonality, "personality", "p", "wholesome", "personality to train with")
	trainCmd.Flags().IntVarP(&trainEvery, "every", "e", 10, "steps between messages (0 disables)")
	trainCmd.Flags().IntVarP(&trainSteps, "steps", "n", 200, "training steps")
	trainCmd.Flags().Float64Var(&trainLR, "lr", 0.05, "learning rate")
	trainCmd.Flags().StringVar(&trainOptimizer, "optimizer", "sgd", "wrapped optimizer: sgd or adam")
	trainCmd.Flags().StringVarP(&trainConfigPath, "config", "c", "", "YAML config file (flags override it)")
	trainCmd.Flags().BoolVarP(&trainVerbose, "verbose", "v", false, "log swallowed personality failures")
	trainCmd.Flags().Uint64Var(&trainSeed, "seed", 42, "seed for the synthetic dataset")
}

func runTrain(cmd *cobra.Command, args []string) error {
	cfg := emotion.DefaultConfig()
	if trainConfigPath != "" {
		loaded, err := emotion.LoadConfig(trainConfigPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if cmd.Flags().Changed("personality") || trainConfigPath == "" {
		cfg.Personality = trainPersonality
	}
	if cmd.Flags().Changed("every") || trainConfigPath == "" {
		cfg.MessageEvery = trainEvery
	}
	if noColor {
		cfg.Colors = false
	}

	logger := zap.NewNop()
	if trainVerbose {
		dev, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("building logger: %w", err)
		}
		defer dev.Sync() //nolint:errcheck
		logger = dev
	}

	// Synthetic dataset around y = 2.5x - 0.7.
	rng := rand.New(rand.NewPCG(trainSeed, 0))
	const samples = 64
	xs := make([]float64, samples)
	ys := make([]float64, samples)
	for i := range xs {
		xs[i] = rng.Float64()*4 - 2
		ys[i] = 2.5*xs[i] - 0.7 + rng.NormFloat64()*0.1
	}

	w := optim.NewParameter("w", []float64{0})
	b := optim.NewParameter("b", []float64{0})
	params := []*optim.Parameter{w, b}

	var base emotion.Optimizer
	switch trainOptimizer {
	case "sgd":
		sgd, err := optim.NewSGD(params, optim.SGDConfig{LR: trainLR, Momentum: 0.9})
		if err != nil {
			return err
		}
		base = sgd
	case "adam":
		adam, err := optim.NewAdam(params, optim.AdamConfig{LR: trainLR})
		if err != nil {
			return err
		}
		base = adam
	default:
		return fmt.Errorf("unknown optimizer %q (want sgd or adam)", trainOptimizer)
	}

	opt, err := emotion.New(base, append(cfg.Options(), emotion.WithLogger(logger))...)
	if err != nil {
		return err
	}

	var loss float64
	for step := 0; step < trainSteps; step++ {
		opt.ZeroGrad()

		// Mean squared error and its gradients over the full batch.
		loss = 0
		var gradW, gradB float64
		for i := range xs {
			pred := w.Data[0]*xs[i] + b.Data[0]
			diff := pred - ys[i]
			loss += diff * diff
			gradW += 2 * diff * xs[i]
			gradB += 2 * diff
		}
		loss /= samples
		w.Grad[0] = gradW / samples
		b.Grad[0] = gradB / samples

		if err := opt.StepWithLoss(loss); err != nil {
			return err
		}
	}

	fmt.Printf("\nDone after %d steps: w=%.3f b=%.3f loss=%.6f\n", opt.StepCount(), w.Data[0], b.Data[0], loss)
	return nil
}
