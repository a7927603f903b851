package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/theapemachine/qsim"
)

// flagValues holds the parsed flags of one command tree.
type flagValues struct {
	configPath   string
	presetName   string
	instructions []string
	qubitCount   int
	seed         uint64
	shots        int
	workers      int
	trace        bool
}

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	noteStyle    = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("11"))
)

// newRootCmd builds a fresh command tree with its own flag state.
func newRootCmd() *cobra.Command {
	flags := &flagValues{}

	rootCmd := &cobra.Command{
		Use:   "qsim",
		Short: "A real-amplitude single-qubit circuit simulator",
		Long: `qsim runs circuits of single-qubit gates over a register of
independent qubits and reports amplitudes, Bloch coordinates and outcome counts.`,
		SilenceUsage: true,
	}
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run a circuit once, then sample it",
		RunE:  flags.runRunCommand,
	}
	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "List the named circuit presets",
		Args:  cobra.NoArgs,
		RunE:  runPresetsCommand,
	}
	qasmCmd := &cobra.Command{
		Use:   "qasm",
		Short: "Print the configured circuit as OpenQASM 2.0",
		RunE:  flags.runQASMCommand,
	}

	rootCmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Configuration file (yaml, toml or json)")
	rootCmd.PersistentFlags().StringVarP(&flags.presetName, "preset", "p", "", "Named circuit preset")
	rootCmd.PersistentFlags().StringArrayVarP(&flags.instructions, "instruction", "i", nil, `Instruction such as "Qubit 0: Hadamard" (repeatable)`)
	rootCmd.PersistentFlags().IntVarP(&flags.qubitCount, "qubits", "q", 0, "Number of qubits in the register")

	runCmd.Flags().Uint64Var(&flags.seed, "seed", 0, "Seed for the random source")
	runCmd.Flags().IntVar(&flags.shots, "shots", 0, "Number of shots to sample")
	runCmd.Flags().IntVar(&flags.workers, "workers", 0, "Number of concurrent sampling workers")
	runCmd.Flags().BoolVar(&flags.trace, "trace", false, "Print the register after every instruction")

	rootCmd.AddCommand(runCmd, presetsCmd, qasmCmd)
	return rootCmd
}

// loadConfig layers explicitly set flags over the file and environment.
func (f *flagValues) loadConfig(cmd *cobra.Command) (*qsim.Config, error) {
	cfg, err := qsim.LoadConfig(f.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()

	if flags.Changed("preset") {
		cfg.Preset = f.presetName
		cfg.Circuit = nil
	}
	if flags.Changed("instruction") {
		cfg.Circuit = f.instructions
		cfg.Preset = ""
	}
	if flags.Changed("qubits") {
		cfg.Qubits = f.qubitCount
	}
	if flags.Changed("seed") {
		cfg.Seed = f.seed
	}
	if flags.Changed("shots") {
		cfg.Shots = f.shots
	}
	if flags.Changed("workers") {
		cfg.Workers = f.workers
	}

	return cfg, cfg.Validate()
}

func (f *flagValues) runRunCommand(cmd *cobra.Command, args []string) error {
	cfg, err := f.loadConfig(cmd)
	if err != nil {
		return err
	}

	sim, err := qsim.NewSimulator(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	var opts []qsim.RunOption
	if f.trace {
		opts = append(opts, qsim.WithStepHook(func(step int, ins qsim.Instruction, reg *qsim.Register) {
			fmt.Fprintf(out, "%s %v\n", labelStyle.Render(fmt.Sprintf("step %d", step)), ins)
			printRegister(out, reg)
		}))
	}

	if _, err := sim.Run(opts...); err != nil {
		return err
	}

	fmt.Fprintln(out, headingStyle.Render("Register"))
	printRegister(out, sim.Register())

	dist, err := sim.Sample(context.Background())
	if err != nil {
		return err
	}

	fmt.Fprintln(out, headingStyle.Render(fmt.Sprintf("Sampled %d shots", dist.Shots)))
	for i, h := range dist.PerQubit {
		p0, p1 := h.Frequencies()
		fmt.Fprintf(out, "  q%d  0: %-6d 1: %-6d  (%.3f / %.3f)\n", i, h[qsim.Zero], h[qsim.One], p0, p1)
	}

	if cfg.Preset != "" {
		if desc, err := qsim.PresetDescription(cfg.Preset); err == nil {
			fmt.Fprintln(out, noteStyle.Render(desc))
		}
	}

	return nil
}

func printRegister(out io.Writer, reg *qsim.Register) {
	for i, q := range reg.Qubits() {
		x, y, z := q.BlochCoordinates()
		p0, p1 := q.Probabilities()
		m, _ := reg.MeasurementOf(i)

		fmt.Fprintf(
			out,
			"  q%d  %s  P=(%.3f, %.3f)  bloch=(%.3f, %.3f, %.3f)  measured=%v\n",
			i, q.Describe(), p0, p1, x, y, z, m,
		)
	}

	h := qsim.HistogramOf(reg)
	fmt.Fprintf(out, "  %s 0: %d  1: %d\n", labelStyle.Render("histogram"), h[qsim.Zero], h[qsim.One])
}

func runPresetsCommand(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	for _, name := range qsim.Presets() {
		instructions, err := qsim.Preset(name)
		if err != nil {
			return err
		}

		desc, err := qsim.PresetDescription(name)
		if err != nil {
			return err
		}

		steps := make([]string, len(instructions))
		for i, ins := range instructions {
			steps[i] = ins.String()
		}

		fmt.Fprintln(out, headingStyle.Render(name))
		fmt.Fprintf(out, "  %s\n", strings.Join(steps, "; "))
		fmt.Fprintf(out, "  %s\n", noteStyle.Render(desc))
	}

	return nil
}

func (f *flagValues) runQASMCommand(cmd *cobra.Command, args []string) error {
	cfg, err := f.loadConfig(cmd)
	if err != nil {
		return err
	}

	circuit, err := cfg.BuildCircuit()
	if err != nil {
		return err
	}

	qasm, err := circuit.QASM(cfg.Qubits)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), qasm)
	return nil
}
