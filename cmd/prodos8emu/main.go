package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/halfbit/prodos8emu/internal/cpu"
	"github.com/halfbit/prodos8emu/internal/memory"
	"github.com/halfbit/prodos8emu/internal/mli"
	"github.com/halfbit/prodos8emu/internal/system"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "prodos8emu",
		Short: "ProDOS 8 / 65C02 host emulator core",
	}

	rootCmd.AddCommand(newRunCmd(), newConvertCmd(), newUnpackCmd())
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRunCmd() *cobra.Command {
	cfg := system.Config{
		LoadAddr:        system.DefaultLoadAddr,
		Entry:           system.DefaultEntry,
		MaxInstructions: system.DefaultMaxInstructions,
	}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Load a ROM and system file, then run the CPU to completion",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEmulator(cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cfg.ROMPath, "rom", "", "ROM image file ($D000-$FFFF, 12 KiB or less)")
	flags.StringVar(&cfg.VolumesRoot, "volumes-root", "", "Host directory whose top-level entries are exposed as ProDOS volumes")
	flags.StringVar(&cfg.SystemPath, "system", "", "System file to load and run")
	flags.IntVar(&cfg.MaxInstructions, "max-instructions", system.DefaultMaxInstructions, "Instruction budget before the run is aborted")
	flags.StringVar(&cfg.MLILogPath, "mli-log", "", "Append MLI trap activity to this file")
	flags.StringVar(&cfg.COUTLogPath, "cout-log", "", "Append COUT character output to this file")
	cmd.MarkFlagRequired("rom")
	cmd.MarkFlagRequired("volumes-root")
	cmd.MarkFlagRequired("system")

	return cmd
}

func newConvertCmd() *cobra.Command {
	var toHost bool
	var toProDOS bool

	cmd := &cobra.Command{
		Use:   "convert <in> <out>",
		Short: "Convert a text file between ProDOS and host line-ending/high-bit conventions",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if toHost == toProDOS {
				return fmt.Errorf("specify exactly one of --to-host or --to-prodos")
			}
			in, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer in.Close()
			out, err := os.Create(args[1])
			if err != nil {
				return err
			}
			defer out.Close()
			return system.ConvertText(in, out, toHost)
		},
	}
	cmd.Flags().BoolVar(&toHost, "to-host", false, "Convert ProDOS text to host text")
	cmd.Flags().BoolVar(&toProDOS, "to-prodos", false, "Convert host text to ProDOS text")
	return cmd
}

func newUnpackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unpack <image> <dest-dir>",
		Short: "Unpack a raw ProDOS-order disk image onto the host filesystem",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return system.UnpackVolume(args[0], args[1])
		},
	}
}

// runEmulator wires a Memory, CPU, and MLI Dispatcher per cfg, resets
// the core at the system file's entry point, runs it to completion or
// to the instruction budget, and prints the execution summary.
func runEmulator(cfg system.Config) error {
	mem := memory.New()
	if err := system.LoadROMFile(mem, cfg.ROMPath); err != nil {
		return err
	}
	if err := system.LoadSystemFile(mem, cfg.SystemPath, cfg.LoadAddr); err != nil {
		return err
	}

	c := cpu.New(mem)
	c.SetDispatcher(mli.NewDispatcher(cfg.VolumesRoot))

	if cfg.MLILogPath != "" {
		f, err := openLogFile(cfg.MLILogPath)
		if err != nil {
			return err
		}
		defer f.Close()
		c.SetMLILog(&cpu.WriterSink{W: f})
	}
	if cfg.COUTLogPath != "" {
		f, err := openLogFile(cfg.COUTLogPath)
		if err != nil {
			return err
		}
		defer f.Close()
		c.SetCOUTLog(&cpu.WriterSink{W: f})
	}

	c.Reset()
	c.SetRegisters(withEntry(c.Registers(), cfg.Entry))

	executed := c.Run(cfg.MaxInstructions)

	reg := c.Registers()
	stopReason := "instruction budget exhausted"
	switch {
	case c.Stopped():
		stopReason = "STP / QUIT"
	case c.Waiting():
		stopReason = "WAI (parked awaiting an interrupt)"
	case executed < cfg.MaxInstructions:
		stopReason = "run loop exited early"
	}

	fmt.Printf("Executed %d instructions (%d cycles). Stop reason: %s\n", executed, c.Cycles(), stopReason)
	fmt.Printf("PC=$%04X A=$%02X X=$%02X Y=$%02X S=$%02X P=$%02X\n",
		reg.PC, reg.A, reg.X, reg.Y, reg.S, reg.P)
	return nil
}

func withEntry(r cpu.Registers, entry uint16) cpu.Registers {
	r.PC = entry
	return r
}

func openLogFile(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}
